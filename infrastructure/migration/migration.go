package migration

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
)

const stagingMetricColumns = `
	objective_type TEXT,
	result NUMERIC NOT NULL DEFAULT 0,
	spend NUMERIC NOT NULL DEFAULT 0,
	impressions NUMERIC NOT NULL DEFAULT 0,
	clicks NUMERIC NOT NULL DEFAULT 0,
	video_watched_2s NUMERIC NOT NULL DEFAULT 0,
	purchase NUMERIC NOT NULL DEFAULT 0,
	complete_payment NUMERIC NOT NULL DEFAULT 0,
	onsite_total_purchase NUMERIC NOT NULL DEFAULT 0,
	offline_shopping_events NUMERIC NOT NULL DEFAULT 0,
	onsite_shopping NUMERIC NOT NULL DEFAULT 0,
	direct_messages NUMERIC NOT NULL DEFAULT 0`

// EnsureSchema creates the warehouse schemas and the fixed tables at
// startup. Monthly raw tables are created lazily by the ingest.
func EnsureSchema(ctx context.Context, conn postgres.Conn, cfg *config.Config) error {
	statements := []string{
		fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", cfg.RawDataset()),
		fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", cfg.StagingDataset()),
		fmt.Sprintf("CREATE SCHEMA IF NOT EXISTS %s", cfg.MartDataset()),

		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s.campaign_metadata (
				campaign_id TEXT NOT NULL,
				campaign_name TEXT NOT NULL DEFAULT '',
				advertiser_id TEXT NOT NULL,
				advertiser_name TEXT NOT NULL DEFAULT '',
				objective_type TEXT NOT NULL DEFAULT '',
				operation_status TEXT NOT NULL DEFAULT '',
				create_time TEXT NOT NULL DEFAULT '',
				modify_time TEXT NOT NULL DEFAULT '',
				last_updated_at TIMESTAMPTZ NOT NULL,
				PRIMARY KEY (campaign_id, advertiser_id)
			)`, cfg.RawDataset()),

		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s.ad_metadata (
				ad_id TEXT NOT NULL,
				ad_name TEXT NOT NULL DEFAULT '',
				adgroup_id TEXT NOT NULL DEFAULT '',
				adgroup_name TEXT NOT NULL DEFAULT '',
				campaign_id TEXT NOT NULL DEFAULT '',
				campaign_name TEXT NOT NULL DEFAULT '',
				advertiser_id TEXT NOT NULL,
				advertiser_name TEXT NOT NULL DEFAULT '',
				operation_status TEXT NOT NULL DEFAULT '',
				video_id TEXT NOT NULL DEFAULT '',
				create_time TEXT NOT NULL DEFAULT '',
				modify_time TEXT NOT NULL DEFAULT '',
				last_updated_at TIMESTAMPTZ NOT NULL,
				PRIMARY KEY (ad_id, advertiser_id)
			)`, cfg.RawDataset()),

		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s.ad_creative (
				video_id TEXT PRIMARY KEY,
				video_cover_url TEXT NOT NULL DEFAULT '',
				preview_url TEXT NOT NULL DEFAULT '',
				duration NUMERIC NOT NULL DEFAULT 0,
				width BIGINT NOT NULL DEFAULT 0,
				height BIGINT NOT NULL DEFAULT 0,
				last_updated_at TIMESTAMPTZ NOT NULL
			)`, cfg.RawDataset()),

		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s.campaign_insights (
				campaign_id TEXT NOT NULL,
				campaign_name TEXT NOT NULL DEFAULT '',
				account_id TEXT NOT NULL,
				account_name TEXT NOT NULL DEFAULT '',
				result_type TEXT NOT NULL DEFAULT '',
				delivery_status TEXT NOT NULL DEFAULT '',
				date_start DATE NOT NULL,
				date_range TEXT NOT NULL DEFAULT '',
				last_updated_at TIMESTAMPTZ NOT NULL,
				%s,
				format TEXT NOT NULL DEFAULT '',
				region TEXT NOT NULL DEFAULT '',
				budget_code_l1 TEXT NOT NULL DEFAULT '',
				budget_code_l2 TEXT NOT NULL DEFAULT '',
				category TEXT NOT NULL DEFAULT '',
				owner TEXT NOT NULL DEFAULT '',
				program TEXT NOT NULL DEFAULT '',
				content TEXT NOT NULL DEFAULT '',
				month TEXT NOT NULL DEFAULT '',
				valid_campaign_name BOOLEAN NOT NULL DEFAULT FALSE
			)`, cfg.StagingDataset(), stagingMetricColumns),

		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s.ad_insights (
				ad_id TEXT NOT NULL,
				ad_name TEXT NOT NULL DEFAULT '',
				adgroup_id TEXT NOT NULL DEFAULT '',
				adgroup_name TEXT NOT NULL DEFAULT '',
				campaign_id TEXT NOT NULL DEFAULT '',
				campaign_name TEXT NOT NULL DEFAULT '',
				account_id TEXT NOT NULL,
				account_name TEXT NOT NULL DEFAULT '',
				result_type TEXT NOT NULL DEFAULT '',
				delivery_status TEXT NOT NULL DEFAULT '',
				video_id TEXT NOT NULL DEFAULT '',
				video_cover_url TEXT NOT NULL DEFAULT '',
				preview_url TEXT NOT NULL DEFAULT '',
				video_duration NUMERIC NOT NULL DEFAULT 0,
				date_start DATE NOT NULL,
				date_range TEXT NOT NULL DEFAULT '',
				last_updated_at TIMESTAMPTZ NOT NULL,
				%s,
				format TEXT NOT NULL DEFAULT '',
				region TEXT NOT NULL DEFAULT '',
				budget_code_l1 TEXT NOT NULL DEFAULT '',
				budget_code_l2 TEXT NOT NULL DEFAULT '',
				category TEXT NOT NULL DEFAULT '',
				owner TEXT NOT NULL DEFAULT '',
				program TEXT NOT NULL DEFAULT '',
				content TEXT NOT NULL DEFAULT '',
				month TEXT NOT NULL DEFAULT '',
				placement TEXT NOT NULL DEFAULT '',
				audience TEXT NOT NULL DEFAULT '',
				ad_format TEXT NOT NULL DEFAULT '',
				valid_campaign_name BOOLEAN NOT NULL DEFAULT FALSE,
				valid_adgroup_name BOOLEAN NOT NULL DEFAULT FALSE
			)`, cfg.StagingDataset(), stagingMetricColumns),

		fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS idx_staging_campaign_insights_date ON %s.campaign_insights (date_start)",
			cfg.StagingDataset()),
		fmt.Sprintf(
			"CREATE INDEX IF NOT EXISTS idx_staging_ad_insights_date ON %s.ad_insights (date_start)",
			cfg.StagingDataset()),
	}

	for _, statement := range statements {
		if _, err := conn.Exec(ctx, statement); err != nil {
			return errors.Wrap(err, "migration: error ensuring warehouse schema")
		}
	}

	logrus.WithFields(logrus.Fields{
		"raw_schema":     cfg.RawDataset(),
		"staging_schema": cfg.StagingDataset(),
		"mart_schema":    cfg.MartDataset(),
	}).Info("migration: warehouse schema ensured")

	return nil
}
