package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok/tiktokclient"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/migration"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/repository"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/api"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/pipeline"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/scheduler"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/enriching"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/ingesting"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/materializing"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/staging"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/usecases/updating"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Invalid log level: %s, falling back to 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Log level set to: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.EnsureSchema(ctx, pgConn, cfg); err != nil {
		logrus.WithError(err).Fatal("Error preparing the warehouse schemas")
	}

	insightRepo := repository.NewInsightRepository(pgConn, cfg)
	campaignMetaRepo := repository.NewCampaignMetadataRepository(pgConn, cfg)
	adMetaRepo := repository.NewAdMetadataRepository(pgConn, cfg)
	creativeRepo := repository.NewAdCreativeRepository(pgConn, cfg)
	stagingRepo := repository.NewStagingRepository(pgConn, cfg)
	martRepo := repository.NewMartRepository(pgConn, cfg)

	tiktokClient := tiktokclient.NewClient(cfg)
	tiktokIntegrator := tiktok.New(cfg, tiktokClient)

	stats := pipeline.NewStats()

	ingestingService := ingesting.NewService(
		tiktokIntegrator,
		insightRepo,
		campaignMetaRepo,
		adMetaRepo,
		creativeRepo,
		stats,
	)
	stagingService := staging.NewService(insightRepo, stagingRepo, enriching.NewService(), stats)
	materializingService := materializing.NewService(martRepo)
	updatingService := updating.NewService(ingestingService, stagingService, materializingService, stats)

	// A configured layer means a one-shot batch run: refresh that layer
	// for the configured mode and exit.
	if cfg.Pipeline.Layer != "" {
		runOnce(ctx, cfg, updatingService)
		return
	}

	campaignSyncService := scheduler.NewInsightSyncService(
		domain.LayerCampaign,
		scheduler.InsightSyncConfig{
			CronSchedule:        cfg.CampaignInsightSync.CronSchedule,
			Mode:                cfg.CampaignInsightSync.Mode,
			RequestDelaySeconds: cfg.CampaignInsightSync.RequestDelaySeconds,
			MaxConcurrentJobs:   cfg.CampaignInsightSync.MaxConcurrentJobs,
			SyncEnabled:         cfg.CampaignInsightSync.Enabled,
		},
		updatingService,
		stats,
		cfg,
	)

	adSyncService := scheduler.NewInsightSyncService(
		domain.LayerAd,
		scheduler.InsightSyncConfig{
			CronSchedule:        cfg.AdInsightSync.CronSchedule,
			Mode:                cfg.AdInsightSync.Mode,
			RequestDelaySeconds: cfg.AdInsightSync.RequestDelaySeconds,
			MaxConcurrentJobs:   cfg.AdInsightSync.MaxConcurrentJobs,
			SyncEnabled:         cfg.AdInsightSync.Enabled,
		},
		updatingService,
		stats,
		cfg,
	)

	if err := campaignSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting the campaign insight sync scheduler")
	} else {
		logrus.Info("Campaign insight sync scheduler started")
	}

	if err := adSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Error starting the ad insight sync scheduler")
	} else {
		logrus.Info("Ad insight sync scheduler started")
	}

	server, err := api.New(
		cfg,
		materializingService,
		campaignSyncService,
		adSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// runOnce executes a single pipeline refresh for the configured layer and
// mode.
func runOnce(ctx context.Context, cfg *config.Config, updater updating.Updater) {
	layer, err := domain.ParseLayer(cfg.Pipeline.Layer)
	if err != nil {
		logrus.WithError(err).Fatal("Invalid LAYER configuration")
	}

	dateRange, err := domain.NewDateRangeFromMode(cfg.Pipeline.Mode, time.Now())
	if err != nil {
		logrus.WithError(err).Fatal("Invalid MODE configuration")
	}

	logrus.WithFields(logrus.Fields{
		"layer":      layer.String(),
		"mode":       cfg.Pipeline.Mode,
		"start_date": dateRange.Start.Format(time.DateOnly),
		"end_date":   dateRange.End.Format(time.DateOnly),
	}).Info("Starting one-shot pipeline run")

	if err := updater.UpdateLayer(ctx, layer, dateRange); err != nil {
		logrus.WithError(err).Fatal("Pipeline run failed")
	}

	logrus.Info("Pipeline run completed")
}

func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Error pinging PostgreSQL")
	}

	logrus.Info("PostgreSQL connection established")
	return conn
}
