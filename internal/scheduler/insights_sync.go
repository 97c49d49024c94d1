package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/pipeline"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/updating"
)

// InsightSyncConfig holds the scheduling knobs of a single layer sync.
type InsightSyncConfig struct {
	CronSchedule        string
	Mode                string
	RequestDelaySeconds int
	MaxConcurrentJobs   int
	SyncEnabled         bool
}

// InsightSyncService schedules and runs the nightly pipeline refresh for
// one layer. The campaign and ad layers each get their own instance so
// their cron schedules and cadences stay independent.
type InsightSyncService struct {
	scheduler           *gocron.Scheduler
	config              InsightSyncConfig
	appConfig           *config.Config
	layer               domain.Layer
	updater             updating.Updater
	stats               *pipeline.Stats
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewInsightSyncService creates the sync service for a layer.
func NewInsightSyncService(
	layer domain.Layer,
	syncConfig InsightSyncConfig,
	updater updating.Updater,
	stats *pipeline.Stats,
	appConfig *config.Config,
) *InsightSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"layer":                 layer.String(),
		"cron_schedule":         syncConfig.CronSchedule,
		"mode":                  syncConfig.Mode,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"max_concurrent_jobs":   syncConfig.MaxConcurrentJobs,
		"sync_enabled":          syncConfig.SyncEnabled,
	}).Info("Insight sync scheduler configuration loaded")

	return &InsightSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		layer:       layer,
		updater:     updater,
		stats:       stats,
		syncRunning: false,
	}
}

// Start schedules the sync and keeps it running until the context is
// cancelled.
func (s *InsightSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.WithField("layer", s.layer.String()).Info("Insight sync disabled by configuration")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"layer": s.layer.String(),
		"cron":  s.config.CronSchedule,
	}).Info("Starting insight sync scheduler")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncLayer()
	})
	if err != nil {
		return fmt.Errorf("error scheduling %s insight sync: %w", s.layer.String(), err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("layer", s.layer.String()).Info("Stopping insight sync scheduler")
		s.scheduler.Stop()
	}()

	return nil
}

// syncLayer runs the full refresh for the configured mode. Overlapping
// runs are skipped rather than queued.
func (s *InsightSyncService) syncLayer() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("layer", s.layer.String()).Info("Insight sync already running, skipping")
		return
	}
	startTime := time.Now()
	s.syncRunning = true
	s.lastSyncStartedAt = startTime
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	dateRange, err := domain.NewDateRangeFromMode(s.config.Mode, time.Now())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"layer": s.layer.String(),
			"mode":  s.config.Mode,
			"error": err.Error(),
		}).Error("Error resolving the insight sync date range")
		return
	}

	logrus.WithFields(logrus.Fields{
		"layer":      s.layer.String(),
		"mode":       s.config.Mode,
		"start_date": dateRange.Start.Format(time.DateOnly),
		"end_date":   dateRange.End.Format(time.DateOnly),
	}).Info("Starting insight sync run")

	ctx := context.Background()
	if err := s.updater.UpdateLayer(ctx, s.layer, dateRange); err != nil {
		logrus.WithFields(logrus.Fields{
			"layer": s.layer.String(),
			"error": err.Error(),
		}).Error("Insight sync run failed")
		return
	}

	duration := time.Since(startTime)
	logrus.WithFields(logrus.Fields{
		"layer":    s.layer.String(),
		"duration": duration.String(),
	}).Info("Insight sync run completed")

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()
}

// TriggerManualSync starts a sync outside the cron schedule.
func (s *InsightSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.WithField("layer", s.layer.String()).Info("Insight sync already running, ignoring manual request")
		return
	}
	s.syncMutex.Unlock()

	logrus.WithField("layer", s.layer.String()).Info("Starting manual insight sync")
	go s.syncLayer()
}

// GetStatus returns the current scheduler state.
func (s *InsightSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	lastStarted := s.lastSyncStartedAt
	lastCompleted := s.lastSyncCompletedAt
	s.syncMutex.Unlock()

	status := map[string]any{
		"sync_layer":             s.layer.String(),
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_mode":              s.config.Mode,
		"sync_max_concurrent":    s.config.MaxConcurrentJobs,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"last_sync_started_at":   lastStarted,
		"last_sync_completed_at": lastCompleted,
	}

	for key, value := range s.stats.Snapshot() {
		status[key] = value
	}

	return status
}
