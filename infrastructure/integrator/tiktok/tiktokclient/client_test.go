package tiktokclient

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	tiktokdomain "github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
)

func testClient(serverURL string, pageSize int) *TikTokClient {
	cfg := &config.Config{}
	cfg.TikTok.URL = serverURL
	cfg.TikTok.AccessToken = "test-token"
	cfg.TikTok.AdvertiserID = "adv-1"
	cfg.TikTok.PageSize = pageSize
	cfg.TikTok.MaxAttempts = 2
	cfg.TikTok.RetryDelaySecs = 0
	cfg.TikTok.TimeoutSeconds = 5

	return &TikTokClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{},
	}
}

func TestGetCampaigns_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/campaign/get/", r.URL.Path)
		assert.Equal(t, "test-token", r.Header.Get("Access-Token"))
		assert.Equal(t, "adv-1", r.URL.Query().Get("advertiser_id"))

		fmt.Fprint(w, `{
			"code": 0,
			"message": "OK",
			"request_id": "req-1",
			"data": {
				"list": [
					{"campaign_id": "c1", "campaign_name": "camp one", "operation_status": "ENABLE"},
					{"campaign_id": "c2", "campaign_name": "camp two", "operation_status": "DISABLE"}
				],
				"page_info": {"page": 1, "page_size": 10, "total_number": 2, "total_page": 1}
			}
		}`)
	}))
	defer server.Close()

	client := testClient(server.URL, 10)

	campaigns, err := client.GetCampaigns(context.Background(), nil)

	assert.NoError(t, err)
	assert.Len(t, campaigns, 2)
	assert.Equal(t, "c1", campaigns[0].CampaignID)
	assert.Equal(t, "DISABLE", campaigns[1].OperationStatus)
}

func TestGetReport_PaginatesUntilShortPage(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/report/integrated/get/", r.URL.Path)
		assert.Equal(t, "BASIC", r.URL.Query().Get("report_type"))
		assert.Equal(t, "AUCTION_CAMPAIGN", r.URL.Query().Get("data_level"))

		// Two full pages followed by a short one
		switch r.URL.Query().Get("page") {
		case "1", "2":
			fmt.Fprint(w, `{
				"code": 0,
				"data": {
					"list": [
						{"dimensions": {"campaign_id": "c1", "stat_time_day": "2026-08-29 00:00:00"}, "metrics": {"spend": "10.5"}},
						{"dimensions": {"campaign_id": "c2", "stat_time_day": "2026-08-29 00:00:00"}, "metrics": {"spend": "3.2"}}
					]
				}
			}`)
		default:
			fmt.Fprint(w, `{
				"code": 0,
				"data": {
					"list": [
						{"dimensions": {"campaign_id": "c3", "stat_time_day": "2026-08-29 00:00:00"}, "metrics": {"spend": "-"}}
					]
				}
			}`)
		}
	}))
	defer server.Close()

	client := testClient(server.URL, 2)

	rows, err := client.GetReport(context.Background(), "AUCTION_CAMPAIGN", "campaign_id", "2026-08-29", "2026-08-29")

	assert.NoError(t, err)
	assert.Equal(t, 3, requests)
	assert.Len(t, rows, 5)
	assert.Equal(t, "c1", rows[0].EntityID())
	assert.Equal(t, "-", rows[4].Metrics.Spend)
}

func TestDoGet_RetriesOnServerError(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, `{"code": 0, "data": {"list": [], "page_info": {}}}`)
	}))
	defer server.Close()

	client := testClient(server.URL, 10)

	campaigns, err := client.GetCampaigns(context.Background(), nil)

	assert.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.Empty(t, campaigns)
}

func TestDoGet_DoesNotRetryAuthErrors(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		fmt.Fprint(w, `{"code": 40105, "message": "Access token is expired", "request_id": "req-9"}`)
	}))
	defer server.Close()

	client := testClient(server.URL, 10)

	_, err := client.GetCampaigns(context.Background(), nil)

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)

	apiErr, ok := err.(*tiktokdomain.APIError)
	assert.True(t, ok)
	assert.True(t, apiErr.IsAuthError())
}

func TestDoGet_GivesUpAfterMaxAttempts(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		fmt.Fprint(w, `{"code": 40100, "message": "Too many requests", "request_id": "req-2"}`)
	}))
	defer server.Close()

	client := testClient(server.URL, 10)

	_, err := client.GetCampaigns(context.Background(), nil)

	assert.Error(t, err)
	assert.Equal(t, 2, attempts)

	apiErr, ok := err.(*tiktokdomain.APIError)
	assert.True(t, ok)
	assert.True(t, apiErr.IsRateLimited())
}

func TestGetCampaigns_ChunksFilterList(t *testing.T) {
	var filters []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		filters = append(filters, r.URL.Query().Get("filtering"))
		fmt.Fprint(w, `{"code": 0, "data": {"list": [{"campaign_id": "c"}], "page_info": {}}}`)
	}))
	defer server.Close()

	client := testClient(server.URL, 1000)

	ids := make([]string, campaignFilterLimit+1)
	for i := range ids {
		ids[i] = fmt.Sprintf("c%d", i)
	}

	campaigns, err := client.GetCampaigns(context.Background(), ids)

	assert.NoError(t, err)
	assert.Len(t, filters, 2)
	assert.Len(t, campaigns, 2)
	assert.Contains(t, filters[0], "campaign_ids")
}

func TestChunk(t *testing.T) {
	assert.Nil(t, chunk(nil, 2))
	assert.Nil(t, chunk([]string{"a"}, 0))

	batches := chunk([]string{"a", "b", "c", "d", "e"}, 2)
	assert.Len(t, batches, 3)
	assert.Equal(t, []string{"a", "b"}, batches[0])
	assert.Equal(t, []string{"e"}, batches[2])
}
