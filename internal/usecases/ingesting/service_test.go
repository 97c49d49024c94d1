package ingesting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	tiktokmocks "github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok/mocks"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/pipeline"
	"go.uber.org/mock/gomock"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIngestInsights_LoadsPerDateAndReturnsTouchedIDs(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := tiktokmocks.NewMockIntegrator(ctrl)
	mockInsightRepo := mocks.NewMockInsightRepository(ctrl)

	dateRange := domain.DateRange{Start: day(2026, 8, 28), End: day(2026, 8, 29)}

	rows := []domain.InsightRow{
		{EntityID: "c2", StatDate: day(2026, 8, 28), Metrics: domain.InsightMetrics{Spend: 5}},
		{EntityID: "c1", StatDate: day(2026, 8, 28), Metrics: domain.InsightMetrics{Spend: 10}},
		{EntityID: "c1", StatDate: day(2026, 8, 29), Metrics: domain.InsightMetrics{Spend: 12}},
	}

	mockIntegrator.EXPECT().
		FetchInsights(gomock.Any(), domain.LayerCampaign, dateRange).
		Return(rows, nil)

	// Both dates fall into the same month, the table is ensured once.
	mockInsightRepo.EXPECT().
		EnsureMonthlyTable(gomock.Any(), domain.LayerCampaign, day(2026, 8, 28)).
		Return(nil)

	mockInsightRepo.EXPECT().
		DeleteByDate(gomock.Any(), domain.LayerCampaign, day(2026, 8, 28)).
		Return(int64(2), nil)
	mockInsightRepo.EXPECT().
		InsertRows(gomock.Any(), domain.LayerCampaign, gomock.Len(2)).
		DoAndReturn(func(_ context.Context, _ domain.Layer, dateRows []domain.InsightRow) (int64, error) {
			assert.Equal(t, "2026-08-28_to_2026-08-28", dateRows[0].DateRange)
			assert.False(t, dateRows[0].LastUpdatedAt.IsZero())
			return int64(len(dateRows)), nil
		})

	mockInsightRepo.EXPECT().
		DeleteByDate(gomock.Any(), domain.LayerCampaign, day(2026, 8, 29)).
		Return(int64(0), nil)
	mockInsightRepo.EXPECT().
		InsertRows(gomock.Any(), domain.LayerCampaign, gomock.Len(1)).
		Return(int64(1), nil)

	stats := pipeline.NewStats()
	service := NewService(mockIntegrator, mockInsightRepo, nil, nil, nil, stats)

	touchedIDs, err := service.IngestInsights(context.Background(), domain.LayerCampaign, dateRange)

	assert.NoError(t, err)
	assert.Equal(t, []string{"c1", "c2"}, touchedIDs)
}

func TestIngestInsights_EmptyRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := tiktokmocks.NewMockIntegrator(ctrl)
	mockInsightRepo := mocks.NewMockInsightRepository(ctrl)

	dateRange := domain.DateRange{Start: day(2026, 8, 30), End: day(2026, 8, 30)}

	mockIntegrator.EXPECT().
		FetchInsights(gomock.Any(), domain.LayerAd, dateRange).
		Return(nil, nil)

	service := NewService(mockIntegrator, mockInsightRepo, nil, nil, nil, pipeline.NewStats())

	touchedIDs, err := service.IngestInsights(context.Background(), domain.LayerAd, dateRange)

	assert.NoError(t, err)
	assert.Empty(t, touchedIDs)
}

func TestIngestInsights_DuplicateRowsLastWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := tiktokmocks.NewMockIntegrator(ctrl)
	mockInsightRepo := mocks.NewMockInsightRepository(ctrl)

	dateRange := domain.DateRange{Start: day(2026, 8, 29), End: day(2026, 8, 29)}

	rows := []domain.InsightRow{
		{EntityID: "c1", StatDate: day(2026, 8, 29), Metrics: domain.InsightMetrics{Spend: 1}},
		{EntityID: "c1", StatDate: day(2026, 8, 29), Metrics: domain.InsightMetrics{Spend: 7}},
	}

	mockIntegrator.EXPECT().
		FetchInsights(gomock.Any(), domain.LayerCampaign, dateRange).
		Return(rows, nil)

	mockInsightRepo.EXPECT().
		EnsureMonthlyTable(gomock.Any(), domain.LayerCampaign, gomock.Any()).
		Return(nil)
	mockInsightRepo.EXPECT().
		DeleteByDate(gomock.Any(), domain.LayerCampaign, gomock.Any()).
		Return(int64(0), nil)
	mockInsightRepo.EXPECT().
		InsertRows(gomock.Any(), domain.LayerCampaign, gomock.Len(1)).
		DoAndReturn(func(_ context.Context, _ domain.Layer, dateRows []domain.InsightRow) (int64, error) {
			assert.Equal(t, float64(7), dateRows[0].Metrics.Spend)
			return 1, nil
		})

	service := NewService(mockIntegrator, mockInsightRepo, nil, nil, nil, pipeline.NewStats())

	touchedIDs, err := service.IngestInsights(context.Background(), domain.LayerCampaign, dateRange)

	assert.NoError(t, err)
	assert.Equal(t, []string{"c1"}, touchedIDs)
}

func TestIngestCampaignMetadata(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := tiktokmocks.NewMockIntegrator(ctrl)
	mockCampaignRepo := mocks.NewMockCampaignMetadataRepository(ctrl)

	metadata := []domain.CampaignMetadata{
		{CampaignID: "c1", CampaignName: "camp one"},
	}

	mockIntegrator.EXPECT().
		FetchCampaignMetadata(gomock.Any(), []string{"c1"}).
		Return(metadata, nil)
	mockCampaignRepo.EXPECT().
		SaveOrUpdate(gomock.Any(), metadata).
		Return(int64(1), nil)

	service := NewService(mockIntegrator, nil, mockCampaignRepo, nil, nil, pipeline.NewStats())

	upserted, err := service.IngestCampaignMetadata(context.Background(), []string{"c1"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), upserted)
}

func TestIngestAdCreatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := tiktokmocks.NewMockIntegrator(ctrl)
	mockAdMetaRepo := mocks.NewMockAdMetadataRepository(ctrl)
	mockCreativeRepo := mocks.NewMockAdCreativeRepository(ctrl)

	creatives := []domain.AdCreative{
		{VideoID: "v1", PreviewURL: "https://example.test/v1"},
	}

	mockAdMetaRepo.EXPECT().
		GetVideoIDsByAdIDs(gomock.Any(), []string{"a1", "a2"}).
		Return([]string{"v1"}, nil)
	mockIntegrator.EXPECT().
		FetchAdCreatives(gomock.Any(), []string{"v1"}).
		Return(creatives, nil)
	mockCreativeRepo.EXPECT().
		SaveOrUpdate(gomock.Any(), creatives).
		Return(int64(1), nil)

	service := NewService(mockIntegrator, nil, nil, mockAdMetaRepo, mockCreativeRepo, pipeline.NewStats())

	upserted, err := service.IngestAdCreatives(context.Background(), []string{"a1", "a2"})

	assert.NoError(t, err)
	assert.Equal(t, int64(1), upserted)
}

func TestIngestAdCreatives_NoVideos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := tiktokmocks.NewMockIntegrator(ctrl)
	mockAdMetaRepo := mocks.NewMockAdMetadataRepository(ctrl)

	mockAdMetaRepo.EXPECT().
		GetVideoIDsByAdIDs(gomock.Any(), []string{"a1"}).
		Return(nil, nil)

	service := NewService(mockIntegrator, nil, nil, mockAdMetaRepo, nil, pipeline.NewStats())

	upserted, err := service.IngestAdCreatives(context.Background(), []string{"a1"})

	assert.NoError(t, err)
	assert.Zero(t, upserted)
}
