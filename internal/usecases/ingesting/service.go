package ingesting

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/repository"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/pipeline"
	"github.com/vfg2006/tiktok-ads-pipeline/pkg/utils"
)

type Service struct {
	integrator       tiktok.Integrator
	insightRepo      repository.InsightRepository
	campaignMetaRepo repository.CampaignMetadataRepository
	adMetaRepo       repository.AdMetadataRepository
	creativeRepo     repository.AdCreativeRepository
	stats            *pipeline.Stats
}

func NewService(
	integrator tiktok.Integrator,
	insightRepo repository.InsightRepository,
	campaignMetaRepo repository.CampaignMetadataRepository,
	adMetaRepo repository.AdMetadataRepository,
	creativeRepo repository.AdCreativeRepository,
	stats *pipeline.Stats,
) Ingester {
	return &Service{
		integrator:       integrator,
		insightRepo:      insightRepo,
		campaignMetaRepo: campaignMetaRepo,
		adMetaRepo:       adMetaRepo,
		creativeRepo:     creativeRepo,
		stats:            stats,
	}
}

// IngestInsights pulls the report for the whole range, then loads it into
// the monthly raw tables date by date: ensure the table, delete rows
// already present for the date, append the fresh ones.
func (s *Service) IngestInsights(ctx context.Context, layer domain.Layer, dateRange domain.DateRange) ([]string, error) {
	rows, err := s.integrator.FetchInsights(ctx, layer, dateRange)
	if err != nil {
		return nil, errors.Wrapf(err, "ingesting: error fetching %s insights", layer)
	}

	s.stats.AddInsightsFetched(int64(len(rows)))

	if len(rows) == 0 {
		logrus.WithFields(logrus.Fields{
			"layer":      layer.String(),
			"date_range": dateRange.Label(),
		}).Info("ingesting: no insight rows returned for range")
		return nil, nil
	}

	now := time.Now()
	rows = dedupeRows(rows)
	byDate := make(map[string][]domain.InsightRow)
	touched := make(map[string]struct{})

	for i := range rows {
		rows[i].Stamp(now)
		key := utils.FormatDate(rows[i].StatDate)
		byDate[key] = append(byDate[key], rows[i])
		touched[rows[i].EntityID] = struct{}{}
	}

	dates := make([]string, 0, len(byDate))
	for date := range byDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	ensuredMonths := make(map[string]struct{})
	for _, date := range dates {
		dateRows := byDate[date]
		statDate := dateRows[0].StatDate

		month := utils.MonthSuffix(statDate)
		if _, ok := ensuredMonths[month]; !ok {
			if err := s.insightRepo.EnsureMonthlyTable(ctx, layer, statDate); err != nil {
				return nil, errors.Wrap(err, "ingesting: error ensuring monthly table")
			}
			ensuredMonths[month] = struct{}{}
		}

		deleted, err := s.insightRepo.DeleteByDate(ctx, layer, statDate)
		if err != nil {
			return nil, errors.Wrapf(err, "ingesting: error deleting existing rows for %s", date)
		}

		inserted, err := s.insightRepo.InsertRows(ctx, layer, dateRows)
		if err != nil {
			return nil, errors.Wrapf(err, "ingesting: error inserting rows for %s", date)
		}

		s.stats.AddInsightsIngested(inserted)

		logrus.WithFields(logrus.Fields{
			"layer":    layer.String(),
			"date":     date,
			"deleted":  deleted,
			"inserted": inserted,
		}).Debug("ingesting: date loaded")
	}

	touchedIDs := make([]string, 0, len(touched))
	for id := range touched {
		touchedIDs = append(touchedIDs, id)
	}
	sort.Strings(touchedIDs)

	logrus.WithFields(logrus.Fields{
		"layer":          layer.String(),
		"date_range":     dateRange.Label(),
		"total_rows":     len(rows),
		"total_entities": len(touchedIDs),
	}).Info("ingesting: insights loaded")

	return touchedIDs, nil
}

func (s *Service) IngestCampaignMetadata(ctx context.Context, campaignIDs []string) (int64, error) {
	metadata, err := s.integrator.FetchCampaignMetadata(ctx, campaignIDs)
	if err != nil {
		return 0, errors.Wrap(err, "ingesting: error fetching campaign metadata")
	}

	upserted, err := s.campaignMetaRepo.SaveOrUpdate(ctx, metadata)
	if err != nil {
		return 0, errors.Wrap(err, "ingesting: error upserting campaign metadata")
	}

	s.stats.AddMetadataUpserted(upserted)

	return upserted, nil
}

func (s *Service) IngestAdMetadata(ctx context.Context, adIDs []string) (int64, error) {
	metadata, err := s.integrator.FetchAdMetadata(ctx, adIDs)
	if err != nil {
		return 0, errors.Wrap(err, "ingesting: error fetching ad metadata")
	}

	upserted, err := s.adMetaRepo.SaveOrUpdate(ctx, metadata)
	if err != nil {
		return 0, errors.Wrap(err, "ingesting: error upserting ad metadata")
	}

	s.stats.AddMetadataUpserted(upserted)

	return upserted, nil
}

// IngestAdCreatives resolves the video IDs behind the given ads from the
// freshly upserted metadata and refreshes the creative catalog for them.
func (s *Service) IngestAdCreatives(ctx context.Context, adIDs []string) (int64, error) {
	videoIDs, err := s.adMetaRepo.GetVideoIDsByAdIDs(ctx, adIDs)
	if err != nil {
		return 0, errors.Wrap(err, "ingesting: error resolving video ids")
	}

	if len(videoIDs) == 0 {
		logrus.Debug("ingesting: no video ids behind the updated ads")
		return 0, nil
	}

	creatives, err := s.integrator.FetchAdCreatives(ctx, videoIDs)
	if err != nil {
		return 0, errors.Wrap(err, "ingesting: error fetching creatives")
	}

	upserted, err := s.creativeRepo.SaveOrUpdate(ctx, creatives)
	if err != nil {
		return 0, errors.Wrap(err, "ingesting: error upserting creatives")
	}

	s.stats.AddCreativesUpserted(upserted)

	return upserted, nil
}

// dedupeRows keeps the last row per (entity, date) pair, the API can echo a
// dimension twice across pages.
func dedupeRows(rows []domain.InsightRow) []domain.InsightRow {
	type key struct {
		entityID string
		date     string
	}

	seen := make(map[key]int, len(rows))
	result := make([]domain.InsightRow, 0, len(rows))

	for _, row := range rows {
		k := key{entityID: row.EntityID, date: utils.FormatDate(row.StatDate)}
		if idx, ok := seen[k]; ok {
			result[idx] = row
			continue
		}
		seen[k] = len(result)
		result = append(result, row)
	}

	return result
}
