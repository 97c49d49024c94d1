package scheduler

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/pipeline"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/updating/mocks"
	"go.uber.org/mock/gomock"
)

func testSyncService(t *testing.T, updater *mocks.MockUpdater) *InsightSyncService {
	t.Helper()
	return NewInsightSyncService(
		domain.LayerCampaign,
		InsightSyncConfig{
			CronSchedule: "0 3 * * *",
			Mode:         "last3days",
			SyncEnabled:  true,
		},
		updater,
		pipeline.NewStats(),
		&config.Config{},
	)
}

func TestSyncLayer_RunsUpdaterWithResolvedRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUpdater := mocks.NewMockUpdater(ctrl)

	mockUpdater.EXPECT().
		UpdateLayer(gomock.Any(), domain.LayerCampaign, gomock.Any()).
		DoAndReturn(func(_ any, _ domain.Layer, dateRange domain.DateRange) error {
			assert.Len(t, dateRange.Days(), 4)
			return nil
		})

	service := testSyncService(t, mockUpdater)

	service.syncLayer()

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestSyncLayer_InvalidModeDoesNotRunUpdater(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUpdater := mocks.NewMockUpdater(ctrl)

	service := testSyncService(t, mockUpdater)
	service.config.Mode = "someday"

	service.syncLayer()

	assert.True(t, service.lastSyncCompletedAt.IsZero())
}

func TestSyncLayer_SkipsWhenAlreadyRunning(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUpdater := mocks.NewMockUpdater(ctrl)

	service := testSyncService(t, mockUpdater)
	service.syncRunning = true

	service.syncLayer()

	assert.True(t, service.lastSyncStartedAt.IsZero())
}

func TestSyncLayer_FailedRunLeavesCompletionUnset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUpdater := mocks.NewMockUpdater(ctrl)

	mockUpdater.EXPECT().
		UpdateLayer(gomock.Any(), domain.LayerCampaign, gomock.Any()).
		Return(assert.AnError)

	service := testSyncService(t, mockUpdater)

	service.syncLayer()

	assert.False(t, service.lastSyncStartedAt.IsZero())
	assert.True(t, service.lastSyncCompletedAt.IsZero())
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUpdater := mocks.NewMockUpdater(ctrl)

	service := testSyncService(t, mockUpdater)
	service.lastSyncStartedAt = time.Date(2026, 8, 30, 3, 0, 0, 0, time.UTC)

	status := service.GetStatus()

	assert.Equal(t, "campaign", status["sync_layer"])
	assert.Equal(t, true, status["sync_enabled"])
	assert.Equal(t, "0 3 * * *", status["sync_cron"])
	assert.Equal(t, "last3days", status["sync_mode"])
	assert.Contains(t, status, "insights_fetched")
	assert.Contains(t, status, "insights_ingested")
}

func TestGetStatus_ConcurrentWithSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUpdater := mocks.NewMockUpdater(ctrl)

	mockUpdater.EXPECT().
		UpdateLayer(gomock.Any(), domain.LayerCampaign, gomock.Any()).
		Return(nil).
		AnyTimes()

	service := testSyncService(t, mockUpdater)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			service.syncLayer()
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			status := service.GetStatus()
			assert.Contains(t, status, "last_sync_started_at")
		}()
	}
	wg.Wait()
}
