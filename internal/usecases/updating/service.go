package updating

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/pipeline"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/ingesting"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/materializing"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/staging"
)

// Updater runs the full pipeline for one layer: raw ingest, metadata
// refresh, staging rebuild, mart rebuild.
type Updater interface {
	UpdateLayer(ctx context.Context, layer domain.Layer, dateRange domain.DateRange) error
}

type Service struct {
	ingester     ingesting.Ingester
	stager       staging.Stager
	materializer materializing.Materializer
	stats        *pipeline.Stats
}

func NewService(
	ingester ingesting.Ingester,
	stager staging.Stager,
	materializer materializing.Materializer,
	stats *pipeline.Stats,
) Updater {
	return &Service{
		ingester:     ingester,
		stager:       stager,
		materializer: materializer,
		stats:        stats,
	}
}

func (s *Service) UpdateLayer(ctx context.Context, layer domain.Layer, dateRange domain.DateRange) error {
	s.stats.Start(time.Now())
	defer s.stats.Finish(time.Now())

	log := logrus.WithFields(logrus.Fields{
		"layer":      layer.String(),
		"date_range": dateRange.Label(),
	})
	log.Info("updating: pipeline run started")

	touchedIDs, err := s.ingester.IngestInsights(ctx, layer, dateRange)
	if err != nil {
		return errors.Wrap(err, "updating: insight ingest failed")
	}

	if len(touchedIDs) == 0 {
		log.Info("updating: no entities touched, skipping downstream steps")
		return nil
	}

	if err := s.refreshMetadata(ctx, layer, touchedIDs); err != nil {
		return err
	}

	if _, err := s.stager.RebuildLayer(ctx, layer); err != nil {
		return errors.Wrap(err, "updating: staging rebuild failed")
	}

	if err := s.materializer.RebuildLayer(ctx, layer); err != nil {
		return errors.Wrap(err, "updating: mart rebuild failed")
	}

	log.WithFields(logrus.Fields(s.stats.Snapshot())).Info("updating: pipeline run finished")

	return nil
}

// refreshMetadata upserts the metadata of the touched entities; the ad
// layer also refreshes the creative catalog behind them.
func (s *Service) refreshMetadata(ctx context.Context, layer domain.Layer, touchedIDs []string) error {
	switch layer {
	case domain.LayerCampaign:
		if _, err := s.ingester.IngestCampaignMetadata(ctx, touchedIDs); err != nil {
			return errors.Wrap(err, "updating: campaign metadata refresh failed")
		}
	case domain.LayerAd:
		if _, err := s.ingester.IngestAdMetadata(ctx, touchedIDs); err != nil {
			return errors.Wrap(err, "updating: ad metadata refresh failed")
		}
		if _, err := s.ingester.IngestAdCreatives(ctx, touchedIDs); err != nil {
			return errors.Wrap(err, "updating: creative refresh failed")
		}
	default:
		return errors.Errorf("updating: unknown layer %q", layer)
	}

	return nil
}
