package staging

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/repository"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/pipeline"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/enriching"
)

// Stager rebuilds the staging layer of a run's layer from the raw tables.
type Stager interface {
	RebuildLayer(ctx context.Context, layer domain.Layer) (int64, error)
}

type Service struct {
	insightRepo repository.InsightRepository
	stagingRepo repository.StagingRepository
	enricher    enriching.Enricher
	stats       *pipeline.Stats
}

func NewService(
	insightRepo repository.InsightRepository,
	stagingRepo repository.StagingRepository,
	enricher enriching.Enricher,
	stats *pipeline.Stats,
) Stager {
	return &Service{
		insightRepo: insightRepo,
		stagingRepo: stagingRepo,
		enricher:    enricher,
		stats:       stats,
	}
}

// RebuildLayer scans every monthly raw table of the layer, joins the
// metadata, enriches the rows and swaps the staging table content.
func (s *Service) RebuildLayer(ctx context.Context, layer domain.Layer) (int64, error) {
	tables, err := s.insightRepo.ListMonthlyTables(ctx, layer)
	if err != nil {
		return 0, errors.Wrap(err, "staging: error listing monthly tables")
	}

	if len(tables) == 0 {
		logrus.WithField("layer", layer.String()).Info("staging: no raw tables to stage")
		return 0, nil
	}

	var total int64
	switch layer {
	case domain.LayerCampaign:
		total, err = s.rebuildCampaign(ctx, tables)
	case domain.LayerAd:
		total, err = s.rebuildAd(ctx, tables)
	default:
		return 0, errors.Errorf("staging: unknown layer %q", layer)
	}
	if err != nil {
		return 0, err
	}

	s.stats.SetStagingRows(total)

	logrus.WithFields(logrus.Fields{
		"layer":      layer.String(),
		"raw_tables": len(tables),
		"total_rows": total,
	}).Info("staging: layer rebuilt")

	return total, nil
}

func (s *Service) rebuildCampaign(ctx context.Context, tables []string) (int64, error) {
	rows, err := s.stagingRepo.FetchCampaignRows(ctx, tables)
	if err != nil {
		return 0, errors.Wrap(err, "staging: error fetching campaign rows")
	}

	for i := range rows {
		s.enricher.EnrichCampaignRow(&rows[i])
	}

	if err := s.stagingRepo.ReplaceCampaignRows(ctx, rows); err != nil {
		return 0, errors.Wrap(err, "staging: error replacing campaign staging table")
	}

	return int64(len(rows)), nil
}

func (s *Service) rebuildAd(ctx context.Context, tables []string) (int64, error) {
	rows, err := s.stagingRepo.FetchAdRows(ctx, tables)
	if err != nil {
		return 0, errors.Wrap(err, "staging: error fetching ad rows")
	}

	for i := range rows {
		s.enricher.EnrichAdRow(&rows[i])
	}

	if err := s.stagingRepo.ReplaceAdRows(ctx, rows); err != nil {
		return 0, errors.Wrap(err, "staging: error replacing ad staging table")
	}

	return int64(len(rows)), nil
}
