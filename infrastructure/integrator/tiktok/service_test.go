package tiktok

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tiktokdomain "github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
)

type fakeClient struct {
	advertiser      *tiktokdomain.Advertiser
	advertiserCalls int
	campaigns       []tiktokdomain.Campaign
	reportRows      []tiktokdomain.ReportRow
}

func (f *fakeClient) GetAdvertiserInfo(ctx context.Context) (*tiktokdomain.Advertiser, error) {
	f.advertiserCalls++
	return f.advertiser, nil
}

func (f *fakeClient) GetCampaigns(ctx context.Context, campaignIDs []string) ([]tiktokdomain.Campaign, error) {
	return f.campaigns, nil
}

func (f *fakeClient) GetAds(ctx context.Context, adIDs []string) ([]tiktokdomain.Ad, error) {
	return nil, nil
}

func (f *fakeClient) SearchVideos(ctx context.Context, videoIDs []string) ([]tiktokdomain.Video, error) {
	return nil, nil
}

func (f *fakeClient) GetReport(ctx context.Context, dataLevel, idDimension, startDate, endDate string) ([]tiktokdomain.ReportRow, error) {
	return f.reportRows, nil
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.TikTok.AdvertiserID = "adv-1"
	return cfg
}

func TestFetchAdvertiserName_CachesResult(t *testing.T) {
	client := &fakeClient{
		advertiser: &tiktokdomain.Advertiser{AdvertiserID: "adv-1", AdvertiserName: "Acme Ads"},
	}
	integrator := New(testConfig(), client)

	name, err := integrator.FetchAdvertiserName(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Acme Ads", name)

	_, err = integrator.FetchAdvertiserName(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, client.advertiserCalls)
}

func TestFetchCampaignMetadata_FillsAdvertiserName(t *testing.T) {
	client := &fakeClient{
		advertiser: &tiktokdomain.Advertiser{AdvertiserName: "Acme Ads"},
		campaigns: []tiktokdomain.Campaign{
			{CampaignID: "c1", CampaignName: "camp one", AdvertiserID: "adv-1", OperationStatus: "ENABLE"},
		},
	}
	integrator := New(testConfig(), client)

	metadata, err := integrator.FetchCampaignMetadata(context.Background(), []string{"c1"})

	assert.NoError(t, err)
	assert.Len(t, metadata, 1)
	assert.Equal(t, "Acme Ads", metadata[0].AdvertiserName)
	assert.Equal(t, "ENABLE", metadata[0].OperationStatus)
	assert.False(t, metadata[0].LastUpdatedAt.IsZero())
}

func TestFetchInsights_ConvertsMetricsAndDates(t *testing.T) {
	client := &fakeClient{
		reportRows: []tiktokdomain.ReportRow{
			{
				Dimensions: tiktokdomain.ReportDimensions{CampaignID: "c1", StatTimeDay: "2026-08-29 00:00:00"},
				Metrics: tiktokdomain.ReportMetrics{
					Spend:       "12.50",
					Impressions: "1000",
					Result:      "-",
				},
			},
			{
				Dimensions: tiktokdomain.ReportDimensions{CampaignID: "c2", StatTimeDay: "not a date"},
			},
		},
	}
	integrator := New(testConfig(), client)

	dateRange := domain.DateRange{
		Start: time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
	}

	rows, err := integrator.FetchInsights(context.Background(), domain.LayerCampaign, dateRange)

	assert.NoError(t, err)
	// The row with the bad stat date is skipped, not fatal
	assert.Len(t, rows, 1)
	assert.Equal(t, "c1", rows[0].EntityID)
	assert.Equal(t, "adv-1", rows[0].AdvertiserID)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), rows[0].StatDate)
	assert.Equal(t, 12.5, rows[0].Metrics.Spend)
	assert.Equal(t, float64(1000), rows[0].Metrics.Impressions)
	assert.Zero(t, rows[0].Metrics.Result)
}

func TestParseMetric(t *testing.T) {
	assert.Equal(t, 12.5, parseMetric("12.5"))
	assert.Zero(t, parseMetric("-"))
	assert.Zero(t, parseMetric(""))
	assert.Zero(t, parseMetric("n/a"))
}
