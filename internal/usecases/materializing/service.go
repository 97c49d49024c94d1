package materializing

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/repository"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
)

// Materializer rebuilds the mart tables from staging.
type Materializer interface {
	RebuildLayer(ctx context.Context, layer domain.Layer) error
	ListCampaignPerformance(ctx context.Context, startDate, endDate time.Time) ([]domain.CampaignPerformance, error)
	ListCreativePerformance(ctx context.Context, startDate, endDate time.Time) ([]domain.CreativePerformance, error)
}

type Service struct {
	martRepo repository.MartRepository
}

func NewService(martRepo repository.MartRepository) Materializer {
	return &Service{
		martRepo: martRepo,
	}
}

// RebuildLayer materializes the mart table fed by the layer's staging
// table: campaign performance for the campaign layer, creative performance
// for the ad layer.
func (s *Service) RebuildLayer(ctx context.Context, layer domain.Layer) error {
	started := time.Now()

	var err error
	switch layer {
	case domain.LayerCampaign:
		err = s.martRepo.RebuildCampaignPerformance(ctx)
	case domain.LayerAd:
		err = s.martRepo.RebuildCreativePerformance(ctx)
	default:
		return errors.Errorf("materializing: unknown layer %q", layer)
	}
	if err != nil {
		return errors.Wrapf(err, "materializing: error rebuilding %s mart", layer)
	}

	logrus.WithFields(logrus.Fields{
		"layer":       layer.String(),
		"duration_ms": time.Since(started).Milliseconds(),
	}).Info("materializing: mart rebuilt")

	return nil
}

func (s *Service) ListCampaignPerformance(ctx context.Context, startDate, endDate time.Time) ([]domain.CampaignPerformance, error) {
	return s.martRepo.ListCampaignPerformance(ctx, startDate, endDate)
}

func (s *Service) ListCreativePerformance(ctx context.Context, startDate, endDate time.Time) ([]domain.CreativePerformance, error) {
	return s.martRepo.ListCreativePerformance(ctx, startDate, endDate)
}
