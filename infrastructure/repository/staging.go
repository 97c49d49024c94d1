package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
)

type StagingRepository interface {
	FetchCampaignRows(ctx context.Context, monthlyTables []string) ([]domain.StagingCampaignRow, error)
	ReplaceCampaignRows(ctx context.Context, rows []domain.StagingCampaignRow) error
	FetchAdRows(ctx context.Context, monthlyTables []string) ([]domain.StagingAdRow, error)
	ReplaceAdRows(ctx context.Context, rows []domain.StagingAdRow) error
}

type stagingRepository struct {
	conn          postgres.Conn
	rawSchema     string
	stagingSchema string
}

func NewStagingRepository(conn postgres.Conn, cfg *config.Config) StagingRepository {
	return &stagingRepository{
		conn:          conn,
		rawSchema:     cfg.RawDataset(),
		stagingSchema: cfg.StagingDataset(),
	}
}

func (r *stagingRepository) campaignTable() string {
	return fmt.Sprintf("%s.campaign_insights", r.stagingSchema)
}

func (r *stagingRepository) adTable() string {
	return fmt.Sprintf("%s.ad_insights", r.stagingSchema)
}

const stagingMetricSelect = `
	i.objective_type, i.result, i.spend, i.impressions, i.clicks,
	i.video_watched_2s, i.purchase, i.complete_payment,
	i.onsite_total_purchase, i.offline_shopping_events, i.onsite_shopping,
	i.direct_messages`

// FetchCampaignRows unions every monthly raw table and joins the campaign
// metadata, producing the un-enriched staging rows.
func (r *stagingRepository) FetchCampaignRows(ctx context.Context, monthlyTables []string) ([]domain.StagingCampaignRow, error) {
	if len(monthlyTables) == 0 {
		return nil, nil
	}

	selects := make([]string, 0, len(monthlyTables))
	for _, table := range monthlyTables {
		selects = append(selects, fmt.Sprintf(`
			SELECT
				i.campaign_id,
				COALESCE(m.campaign_name, '') AS campaign_name,
				i.advertiser_id AS account_id,
				COALESCE(m.advertiser_name, '') AS account_name,
				COALESCE(NULLIF(i.objective_type, ''), m.objective_type, '') AS result_type,
				COALESCE(m.operation_status, '') AS delivery_status,
				i.date_start,
				i.date_range,
				i.last_updated_at,
				%s
			FROM %s.%s i
			LEFT JOIN %s.campaign_metadata m
				ON i.campaign_id = m.campaign_id
				AND i.advertiser_id = m.advertiser_id`,
			stagingMetricSelect, r.rawSchema, table, r.rawSchema,
		))
	}

	query := strings.Join(selects, "\nUNION ALL\n")

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.StagingCampaignRow, 0)
	for rows.Next() {
		var row domain.StagingCampaignRow
		err := rows.Scan(
			&row.CampaignID,
			&row.CampaignName,
			&row.AccountID,
			&row.AccountName,
			&row.ResultType,
			&row.DeliveryStatus,
			&row.DateStart,
			&row.DateRange,
			&row.LastUpdatedAt,
			&row.Metrics.ObjectiveType,
			&row.Metrics.Result,
			&row.Metrics.Spend,
			&row.Metrics.Impressions,
			&row.Metrics.Clicks,
			&row.Metrics.VideoWatched2s,
			&row.Metrics.Purchase,
			&row.Metrics.CompletePayment,
			&row.Metrics.OnsiteTotalPurchase,
			&row.Metrics.OfflineShoppingEvents,
			&row.Metrics.OnsiteShopping,
			&row.Metrics.DirectMessages,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning staging campaign row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

// ReplaceCampaignRows rebuilds the campaign staging table in one
// transaction, truncate then append.
func (r *stagingRepository) ReplaceCampaignRows(ctx context.Context, rows []domain.StagingCampaignRow) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", r.campaignTable())); err != nil {
			return fmt.Errorf("error truncating staging table: %w", err)
		}

		for start := 0; start < len(rows); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(rows) {
				end = len(rows)
			}
			if err := r.insertCampaignBatch(ctx, tx, rows[start:end]); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *stagingRepository) insertCampaignBatch(ctx context.Context, tx *sql.Tx, rows []domain.StagingCampaignRow) error {
	query := squirrel.StatementBuilder.
		Insert(r.campaignTable()).
		Columns(
			"campaign_id", "campaign_name", "account_id", "account_name",
			"result_type", "delivery_status", "date_start", "date_range",
			"last_updated_at",
			"objective_type", "result", "spend", "impressions", "clicks",
			"video_watched_2s", "purchase", "complete_payment",
			"onsite_total_purchase", "offline_shopping_events",
			"onsite_shopping", "direct_messages",
			"format", "region", "budget_code_l1", "budget_code_l2",
			"category", "owner", "program", "content", "month",
			"valid_campaign_name",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		query = query.Values(
			row.CampaignID,
			row.CampaignName,
			row.AccountID,
			row.AccountName,
			row.ResultType,
			row.DeliveryStatus,
			row.DateStart,
			row.DateRange,
			row.LastUpdatedAt,
			row.Metrics.ObjectiveType,
			row.Metrics.Result,
			row.Metrics.Spend,
			row.Metrics.Impressions,
			row.Metrics.Clicks,
			row.Metrics.VideoWatched2s,
			row.Metrics.Purchase,
			row.Metrics.CompletePayment,
			row.Metrics.OnsiteTotalPurchase,
			row.Metrics.OfflineShoppingEvents,
			row.Metrics.OnsiteShopping,
			row.Metrics.DirectMessages,
			row.Enrichment.Format,
			row.Enrichment.Region,
			row.Enrichment.BudgetCodeL1,
			row.Enrichment.BudgetCodeL2,
			row.Enrichment.Category,
			row.Enrichment.Owner,
			row.Enrichment.Program,
			row.Enrichment.Content,
			row.Enrichment.Month,
			row.Enrichment.ValidCampaignName,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("error inserting staging campaign rows: %w", err)
	}

	return nil
}

// FetchAdRows unions every monthly raw table and joins ad metadata plus the
// creative catalog.
func (r *stagingRepository) FetchAdRows(ctx context.Context, monthlyTables []string) ([]domain.StagingAdRow, error) {
	if len(monthlyTables) == 0 {
		return nil, nil
	}

	selects := make([]string, 0, len(monthlyTables))
	for _, table := range monthlyTables {
		selects = append(selects, fmt.Sprintf(`
			SELECT
				i.ad_id,
				COALESCE(m.ad_name, '') AS ad_name,
				COALESCE(m.adgroup_id, '') AS adgroup_id,
				COALESCE(m.adgroup_name, '') AS adgroup_name,
				COALESCE(m.campaign_id, '') AS campaign_id,
				COALESCE(m.campaign_name, '') AS campaign_name,
				i.advertiser_id AS account_id,
				COALESCE(m.advertiser_name, '') AS account_name,
				COALESCE(NULLIF(i.objective_type, ''), '') AS result_type,
				COALESCE(m.operation_status, '') AS delivery_status,
				COALESCE(m.video_id, '') AS video_id,
				COALESCE(c.video_cover_url, '') AS video_cover_url,
				COALESCE(c.preview_url, '') AS preview_url,
				COALESCE(c.duration, 0) AS video_duration,
				i.date_start,
				i.date_range,
				i.last_updated_at,
				%s
			FROM %s.%s i
			LEFT JOIN %s.ad_metadata m
				ON i.ad_id = m.ad_id
				AND i.advertiser_id = m.advertiser_id
			LEFT JOIN %s.ad_creative c
				ON m.video_id = c.video_id`,
			stagingMetricSelect, r.rawSchema, table, r.rawSchema, r.rawSchema,
		))
	}

	query := strings.Join(selects, "\nUNION ALL\n")

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.StagingAdRow, 0)
	for rows.Next() {
		var row domain.StagingAdRow
		err := rows.Scan(
			&row.AdID,
			&row.AdName,
			&row.AdgroupID,
			&row.AdgroupName,
			&row.CampaignID,
			&row.CampaignName,
			&row.AccountID,
			&row.AccountName,
			&row.ResultType,
			&row.DeliveryStatus,
			&row.VideoID,
			&row.CoverURL,
			&row.PreviewURL,
			&row.VideoDuration,
			&row.DateStart,
			&row.DateRange,
			&row.LastUpdatedAt,
			&row.Metrics.ObjectiveType,
			&row.Metrics.Result,
			&row.Metrics.Spend,
			&row.Metrics.Impressions,
			&row.Metrics.Clicks,
			&row.Metrics.VideoWatched2s,
			&row.Metrics.Purchase,
			&row.Metrics.CompletePayment,
			&row.Metrics.OnsiteTotalPurchase,
			&row.Metrics.OfflineShoppingEvents,
			&row.Metrics.OnsiteShopping,
			&row.Metrics.DirectMessages,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning staging ad row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

// ReplaceAdRows rebuilds the ad staging table in one transaction.
func (r *stagingRepository) ReplaceAdRows(ctx context.Context, rows []domain.StagingAdRow) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, fmt.Sprintf("TRUNCATE TABLE %s", r.adTable())); err != nil {
			return fmt.Errorf("error truncating staging table: %w", err)
		}

		for start := 0; start < len(rows); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(rows) {
				end = len(rows)
			}
			if err := r.insertAdBatch(ctx, tx, rows[start:end]); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *stagingRepository) insertAdBatch(ctx context.Context, tx *sql.Tx, rows []domain.StagingAdRow) error {
	query := squirrel.StatementBuilder.
		Insert(r.adTable()).
		Columns(
			"ad_id", "ad_name", "adgroup_id", "adgroup_name",
			"campaign_id", "campaign_name", "account_id", "account_name",
			"result_type", "delivery_status", "video_id", "video_cover_url",
			"preview_url", "video_duration", "date_start", "date_range",
			"last_updated_at",
			"objective_type", "result", "spend", "impressions", "clicks",
			"video_watched_2s", "purchase", "complete_payment",
			"onsite_total_purchase", "offline_shopping_events",
			"onsite_shopping", "direct_messages",
			"format", "region", "budget_code_l1", "budget_code_l2",
			"category", "owner", "program", "content", "month",
			"placement", "audience", "ad_format",
			"valid_campaign_name", "valid_adgroup_name",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		query = query.Values(
			row.AdID,
			row.AdName,
			row.AdgroupID,
			row.AdgroupName,
			row.CampaignID,
			row.CampaignName,
			row.AccountID,
			row.AccountName,
			row.ResultType,
			row.DeliveryStatus,
			row.VideoID,
			row.CoverURL,
			row.PreviewURL,
			row.VideoDuration,
			row.DateStart,
			row.DateRange,
			row.LastUpdatedAt,
			row.Metrics.ObjectiveType,
			row.Metrics.Result,
			row.Metrics.Spend,
			row.Metrics.Impressions,
			row.Metrics.Clicks,
			row.Metrics.VideoWatched2s,
			row.Metrics.Purchase,
			row.Metrics.CompletePayment,
			row.Metrics.OnsiteTotalPurchase,
			row.Metrics.OfflineShoppingEvents,
			row.Metrics.OnsiteShopping,
			row.Metrics.DirectMessages,
			row.Enrichment.Format,
			row.Enrichment.Region,
			row.Enrichment.BudgetCodeL1,
			row.Enrichment.BudgetCodeL2,
			row.Enrichment.Category,
			row.Enrichment.Owner,
			row.Enrichment.Program,
			row.Enrichment.Content,
			row.Enrichment.Month,
			row.Enrichment.Placement,
			row.Enrichment.Audience,
			row.Enrichment.AdFormat,
			row.Enrichment.ValidCampaignName,
			row.Enrichment.ValidAdgroupName,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("error building query: %w", err)
	}

	if _, err := tx.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("error inserting staging ad rows: %w", err)
	}

	return nil
}
