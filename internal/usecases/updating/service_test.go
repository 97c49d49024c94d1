package updating

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/pipeline"
	ingestingmocks "github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/ingesting/mocks"
	materializingmocks "github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/materializing/mocks"
	stagingmocks "github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/staging/mocks"
	"go.uber.org/mock/gomock"
)

func testDateRange() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2026, 8, 27, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC),
	}
}

func TestUpdateLayer_CampaignRunsAllSteps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := ingestingmocks.NewMockIngester(ctrl)
	mockStager := stagingmocks.NewMockStager(ctrl)
	mockMaterializer := materializingmocks.NewMockMaterializer(ctrl)

	dateRange := testDateRange()

	gomock.InOrder(
		mockIngester.EXPECT().
			IngestInsights(gomock.Any(), domain.LayerCampaign, dateRange).
			Return([]string{"c1", "c2"}, nil),
		mockIngester.EXPECT().
			IngestCampaignMetadata(gomock.Any(), []string{"c1", "c2"}).
			Return(int64(2), nil),
		mockStager.EXPECT().
			RebuildLayer(gomock.Any(), domain.LayerCampaign).
			Return(int64(10), nil),
		mockMaterializer.EXPECT().
			RebuildLayer(gomock.Any(), domain.LayerCampaign).
			Return(nil),
	)

	service := NewService(mockIngester, mockStager, mockMaterializer, pipeline.NewStats())

	err := service.UpdateLayer(context.Background(), domain.LayerCampaign, dateRange)

	assert.NoError(t, err)
}

func TestUpdateLayer_AdAlsoRefreshesCreatives(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := ingestingmocks.NewMockIngester(ctrl)
	mockStager := stagingmocks.NewMockStager(ctrl)
	mockMaterializer := materializingmocks.NewMockMaterializer(ctrl)

	dateRange := testDateRange()

	gomock.InOrder(
		mockIngester.EXPECT().
			IngestInsights(gomock.Any(), domain.LayerAd, dateRange).
			Return([]string{"a1"}, nil),
		mockIngester.EXPECT().
			IngestAdMetadata(gomock.Any(), []string{"a1"}).
			Return(int64(1), nil),
		mockIngester.EXPECT().
			IngestAdCreatives(gomock.Any(), []string{"a1"}).
			Return(int64(1), nil),
		mockStager.EXPECT().
			RebuildLayer(gomock.Any(), domain.LayerAd).
			Return(int64(5), nil),
		mockMaterializer.EXPECT().
			RebuildLayer(gomock.Any(), domain.LayerAd).
			Return(nil),
	)

	service := NewService(mockIngester, mockStager, mockMaterializer, pipeline.NewStats())

	err := service.UpdateLayer(context.Background(), domain.LayerAd, dateRange)

	assert.NoError(t, err)
}

func TestUpdateLayer_SkipsDownstreamWhenNothingTouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := ingestingmocks.NewMockIngester(ctrl)
	mockStager := stagingmocks.NewMockStager(ctrl)
	mockMaterializer := materializingmocks.NewMockMaterializer(ctrl)

	dateRange := testDateRange()

	mockIngester.EXPECT().
		IngestInsights(gomock.Any(), domain.LayerCampaign, dateRange).
		Return(nil, nil)

	service := NewService(mockIngester, mockStager, mockMaterializer, pipeline.NewStats())

	err := service.UpdateLayer(context.Background(), domain.LayerCampaign, dateRange)

	assert.NoError(t, err)
}

func TestUpdateLayer_StagingFailureStopsRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIngester := ingestingmocks.NewMockIngester(ctrl)
	mockStager := stagingmocks.NewMockStager(ctrl)
	mockMaterializer := materializingmocks.NewMockMaterializer(ctrl)

	dateRange := testDateRange()

	mockIngester.EXPECT().
		IngestInsights(gomock.Any(), domain.LayerCampaign, dateRange).
		Return([]string{"c1"}, nil)
	mockIngester.EXPECT().
		IngestCampaignMetadata(gomock.Any(), []string{"c1"}).
		Return(int64(1), nil)
	mockStager.EXPECT().
		RebuildLayer(gomock.Any(), domain.LayerCampaign).
		Return(int64(0), assert.AnError)

	service := NewService(mockIngester, mockStager, mockMaterializer, pipeline.NewStats())

	err := service.UpdateLayer(context.Background(), domain.LayerCampaign, dateRange)

	assert.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
