package staging

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/repository/mocks"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/pipeline"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/enriching"
	"go.uber.org/mock/gomock"
)

func TestRebuildLayer_CampaignEnrichesBeforeReplacing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsightRepo := mocks.NewMockInsightRepository(ctrl)
	mockStagingRepo := mocks.NewMockStagingRepository(ctrl)

	tables := []string{"campaign_insights_m082026"}
	rows := []domain.StagingCampaignRow{
		{
			CampaignID:   "c1",
			CampaignName: "video_north_B1_B2_fashion_owner_free_program_content",
			DateStart:    time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	mockInsightRepo.EXPECT().
		ListMonthlyTables(gomock.Any(), domain.LayerCampaign).
		Return(tables, nil)
	mockStagingRepo.EXPECT().
		FetchCampaignRows(gomock.Any(), tables).
		Return(rows, nil)
	mockStagingRepo.EXPECT().
		ReplaceCampaignRows(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, replaced []domain.StagingCampaignRow) error {
			assert.Len(t, replaced, 1)
			assert.True(t, replaced[0].Enrichment.ValidCampaignName)
			assert.Equal(t, "video", replaced[0].Enrichment.Format)
			assert.Equal(t, "2026-08", replaced[0].Enrichment.Month)
			return nil
		})

	service := NewService(mockInsightRepo, mockStagingRepo, enriching.NewService(), pipeline.NewStats())

	total, err := service.RebuildLayer(context.Background(), domain.LayerCampaign)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
}

func TestRebuildLayer_NoRawTables(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsightRepo := mocks.NewMockInsightRepository(ctrl)
	mockStagingRepo := mocks.NewMockStagingRepository(ctrl)

	mockInsightRepo.EXPECT().
		ListMonthlyTables(gomock.Any(), domain.LayerAd).
		Return(nil, nil)

	service := NewService(mockInsightRepo, mockStagingRepo, enriching.NewService(), pipeline.NewStats())

	total, err := service.RebuildLayer(context.Background(), domain.LayerAd)

	assert.NoError(t, err)
	assert.Zero(t, total)
}

func TestRebuildLayer_AdLayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInsightRepo := mocks.NewMockInsightRepository(ctrl)
	mockStagingRepo := mocks.NewMockStagingRepository(ctrl)

	tables := []string{"ad_insights_m072026", "ad_insights_m082026"}
	rows := []domain.StagingAdRow{
		{
			AdID:         "a1",
			CampaignName: "video_north_B1_B2_fashion_owner_free_program_content",
			AdgroupName:  "feed_broad_video",
			DateStart:    time.Date(2026, 7, 4, 0, 0, 0, 0, time.UTC),
		},
	}

	mockInsightRepo.EXPECT().
		ListMonthlyTables(gomock.Any(), domain.LayerAd).
		Return(tables, nil)
	mockStagingRepo.EXPECT().
		FetchAdRows(gomock.Any(), tables).
		Return(rows, nil)
	mockStagingRepo.EXPECT().
		ReplaceAdRows(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, replaced []domain.StagingAdRow) error {
			assert.True(t, replaced[0].Enrichment.ValidAdgroupName)
			assert.Equal(t, "feed", replaced[0].Enrichment.Placement)
			assert.Equal(t, "2026-07", replaced[0].Enrichment.Month)
			return nil
		})

	service := NewService(mockInsightRepo, mockStagingRepo, enriching.NewService(), pipeline.NewStats())

	total, err := service.RebuildLayer(context.Background(), domain.LayerAd)

	assert.NoError(t, err)
	assert.Equal(t, int64(1), total)
}
