package tiktok

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/pkg/utils"
)

// Integrator is the ads API surface the use cases depend on.
type Integrator interface {
	FetchAdvertiserName(ctx context.Context) (string, error)
	FetchCampaignMetadata(ctx context.Context, campaignIDs []string) ([]domain.CampaignMetadata, error)
	FetchAdMetadata(ctx context.Context, adIDs []string) ([]domain.AdMetadata, error)
	FetchAdCreatives(ctx context.Context, videoIDs []string) ([]domain.AdCreative, error)
	FetchInsights(ctx context.Context, layer domain.Layer, dateRange domain.DateRange) ([]domain.InsightRow, error)
}

type TikTokIntegrator struct {
	cfg    *config.Config
	Client tiktokclient.Client

	mu             sync.Mutex
	advertiserName string
}

func New(cfg *config.Config, client tiktokclient.Client) *TikTokIntegrator {
	return &TikTokIntegrator{
		cfg:    cfg,
		Client: client,
	}
}

// FetchAdvertiserName resolves the advertiser display name once and caches
// it for the rest of the run.
func (s *TikTokIntegrator) FetchAdvertiserName(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.advertiserName != "" {
		return s.advertiserName, nil
	}

	advertiser, err := s.Client.GetAdvertiserInfo(ctx)
	if err != nil {
		logrus.WithError(err).Error("tiktok: failed to get advertiser info")
		return "", err
	}

	s.advertiserName = advertiser.AdvertiserName
	return s.advertiserName, nil
}

func (s *TikTokIntegrator) FetchCampaignMetadata(ctx context.Context, campaignIDs []string) ([]domain.CampaignMetadata, error) {
	advertiserName, err := s.FetchAdvertiserName(ctx)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.Client.GetCampaigns(ctx, campaignIDs)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_ids": len(campaignIDs),
			"error":        err.Error(),
		}).Error("tiktok: failed to get campaigns")
		return nil, err
	}

	now := time.Now().UTC()
	metadata := make([]domain.CampaignMetadata, 0, len(campaigns))
	for _, campaign := range campaigns {
		metadata = append(metadata, domain.CampaignMetadata{
			CampaignID:      campaign.CampaignID,
			CampaignName:    campaign.CampaignName,
			AdvertiserID:    campaign.AdvertiserID,
			AdvertiserName:  advertiserName,
			ObjectiveType:   campaign.ObjectiveType,
			OperationStatus: campaign.OperationStatus,
			CreateTime:      campaign.CreateTime,
			ModifyTime:      campaign.ModifyTime,
			LastUpdatedAt:   now,
		})
	}

	logrus.WithField("total_campaigns", len(metadata)).Debug("tiktok: campaign metadata retrieved")

	return metadata, nil
}

func (s *TikTokIntegrator) FetchAdMetadata(ctx context.Context, adIDs []string) ([]domain.AdMetadata, error) {
	advertiserName, err := s.FetchAdvertiserName(ctx)
	if err != nil {
		return nil, err
	}

	ads, err := s.Client.GetAds(ctx, adIDs)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_ids": len(adIDs),
			"error":  err.Error(),
		}).Error("tiktok: failed to get ads")
		return nil, err
	}

	now := time.Now().UTC()
	metadata := make([]domain.AdMetadata, 0, len(ads))
	for _, ad := range ads {
		metadata = append(metadata, domain.AdMetadata{
			AdID:            ad.AdID,
			AdName:          ad.AdName,
			AdgroupID:       ad.AdgroupID,
			AdgroupName:     ad.AdgroupName,
			CampaignID:      ad.CampaignID,
			CampaignName:    ad.CampaignName,
			AdvertiserID:    ad.AdvertiserID,
			AdvertiserName:  advertiserName,
			OperationStatus: ad.OperationStatus,
			VideoID:         ad.VideoID,
			CreateTime:      ad.CreateTime,
			ModifyTime:      ad.ModifyTime,
			LastUpdatedAt:   now,
		})
	}

	logrus.WithField("total_ads", len(metadata)).Debug("tiktok: ad metadata retrieved")

	return metadata, nil
}

func (s *TikTokIntegrator) FetchAdCreatives(ctx context.Context, videoIDs []string) ([]domain.AdCreative, error) {
	videos, err := s.Client.SearchVideos(ctx, videoIDs)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"video_ids": len(videoIDs),
			"error":     err.Error(),
		}).Error("tiktok: failed to search videos")
		return nil, err
	}

	now := time.Now().UTC()
	creatives := make([]domain.AdCreative, 0, len(videos))
	for _, video := range videos {
		creatives = append(creatives, domain.AdCreative{
			VideoID:       video.VideoID,
			CoverURL:      video.VideoCoverURL,
			PreviewURL:    video.PreviewURL,
			Duration:      video.Duration,
			Width:         video.Width,
			Height:        video.Height,
			LastUpdatedAt: now,
		})
	}

	return creatives, nil
}

func (s *TikTokIntegrator) FetchInsights(ctx context.Context, layer domain.Layer, dateRange domain.DateRange) ([]domain.InsightRow, error) {
	rows, err := s.Client.GetReport(
		ctx,
		layer.DataLevel(),
		layer.IDDimension(),
		utils.FormatDate(dateRange.Start),
		utils.FormatDate(dateRange.End),
	)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"layer": layer.String(),
			"error": err.Error(),
		}).Error("tiktok: failed to get report")
		return nil, err
	}

	insights := make([]domain.InsightRow, 0, len(rows))
	for _, row := range rows {
		// stat_time_day comes as "2026-08-30 00:00:00"
		statDay := row.Dimensions.StatTimeDay
		if len(statDay) > 10 {
			statDay = statDay[:10]
		}
		statDate, err := utils.ParseDate(statDay)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"stat_time_day": row.Dimensions.StatTimeDay,
				"error":         err.Error(),
			}).Warn("tiktok: skipping report row with invalid stat date")
			continue
		}

		insights = append(insights, domain.InsightRow{
			EntityID:     row.EntityID(),
			AdvertiserID: s.cfg.TikTok.AdvertiserID,
			StatDate:     *statDate,
			Metrics:      convertMetrics(row.Metrics),
		})
	}

	logrus.WithFields(logrus.Fields{
		"layer":      layer.String(),
		"total_rows": len(insights),
	}).Debug("tiktok: report retrieved")

	return insights, nil
}

func convertMetrics(m tiktokdomain.ReportMetrics) domain.InsightMetrics {
	return domain.InsightMetrics{
		ObjectiveType:         m.ObjectiveType,
		Result:                parseMetric(m.Result),
		Spend:                 parseMetric(m.Spend),
		Impressions:           parseMetric(m.Impressions),
		Clicks:                parseMetric(m.Clicks),
		VideoWatched2s:        parseMetric(m.VideoWatched2s),
		Purchase:              parseMetric(m.Purchase),
		CompletePayment:       parseMetric(m.CompletePayment),
		OnsiteTotalPurchase:   parseMetric(m.OnsiteTotalPurchase),
		OfflineShoppingEvents: parseMetric(m.OfflineShoppingEvents),
		OnsiteShopping:        parseMetric(m.OnsiteShopping),
		DirectMessages:        parseMetric(m.DirectMessages),
	}
}

// parseMetric coerces a string metric. The API answers "-" for metrics the
// objective does not track; those count as zero.
func parseMetric(value string) float64 {
	if value == "" || value == "-" {
		return 0
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return parsed
}
