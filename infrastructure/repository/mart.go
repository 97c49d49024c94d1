package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/pkg/utils"
)

type MartRepository interface {
	RebuildCampaignPerformance(ctx context.Context) error
	RebuildCreativePerformance(ctx context.Context) error
	ListCampaignPerformance(ctx context.Context, startDate, endDate time.Time) ([]domain.CampaignPerformance, error)
	ListCreativePerformance(ctx context.Context, startDate, endDate time.Time) ([]domain.CreativePerformance, error)
}

type martRepository struct {
	conn          postgres.Conn
	stagingSchema string
	martSchema    string
}

func NewMartRepository(conn postgres.Conn, cfg *config.Config) MartRepository {
	return &martRepository{
		conn:          conn,
		stagingSchema: cfg.StagingDataset(),
		martSchema:    cfg.MartDataset(),
	}
}

// statusSymbolCase renders the delivery status symbol in SQL, mirroring
// domain.StatusSymbol.
const statusSymbolCase = `
	CASE
		WHEN UPPER(delivery_status) LIKE '%DISABLE%' THEN '⚪'
		WHEN UPPER(delivery_status) LIKE '%ENABLE%' THEN '🟢'
		ELSE '❓'
	END AS status_symbol`

// rebuild materializes selectSQL into table via a temporary swap table, so
// readers never observe a half-built mart.
func (r *martRepository) rebuild(ctx context.Context, table, selectSQL string, indexColumns []string) error {
	suffix, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("error generating swap suffix: %w", err)
	}
	swapTable := fmt.Sprintf("%s_swap_%s", table, strings.ToLower(suffix))

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		createSQL := fmt.Sprintf("CREATE TABLE %s.%s AS %s", r.martSchema, swapTable, selectSQL)
		if _, err := tx.ExecContext(ctx, createSQL); err != nil {
			return fmt.Errorf("error building mart swap table: %w", err)
		}

		dropSQL := fmt.Sprintf("DROP TABLE IF EXISTS %s.%s", r.martSchema, table)
		if _, err := tx.ExecContext(ctx, dropSQL); err != nil {
			return fmt.Errorf("error dropping mart table: %w", err)
		}

		renameSQL := fmt.Sprintf("ALTER TABLE %s.%s RENAME TO %s", r.martSchema, swapTable, table)
		if _, err := tx.ExecContext(ctx, renameSQL); err != nil {
			return fmt.Errorf("error renaming mart swap table: %w", err)
		}

		for _, column := range indexColumns {
			indexSQL := fmt.Sprintf(
				"CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s.%s (%s)",
				table, column, r.martSchema, table, column,
			)
			if _, err := tx.ExecContext(ctx, indexSQL); err != nil {
				return fmt.Errorf("error indexing mart table: %w", err)
			}
		}

		return nil
	})
}

func (r *martRepository) RebuildCampaignPerformance(ctx context.Context) error {
	selectSQL := fmt.Sprintf(`
		SELECT
			date_start::date AS date,
			campaign_id,
			campaign_name,
			account_name,
			owner,
			budget_code_l1,
			budget_code_l2,
			region,
			category,
			program,
			content,
			format,
			month,
			result_type,
			%s,
			result::numeric AS result,
			spend::numeric AS spend,
			impressions::numeric AS impressions,
			clicks::numeric AS clicks,
			(purchase + complete_payment + onsite_total_purchase)::numeric AS purchases,
			direct_messages::numeric AS conversations
		FROM %s.campaign_insights`,
		statusSymbolCase, r.stagingSchema,
	)

	return r.rebuild(ctx, "campaign_performance", selectSQL,
		[]string{"date", "owner", "budget_code_l1", "category", "program"})
}

func (r *martRepository) RebuildCreativePerformance(ctx context.Context) error {
	selectSQL := fmt.Sprintf(`
		SELECT
			date_start::date AS date,
			ad_id,
			ad_name,
			adgroup_name,
			campaign_name,
			account_name,
			owner,
			region,
			content,
			format,
			placement,
			audience,
			ad_format,
			month,
			video_id,
			preview_url,
			%s,
			result::numeric AS result,
			spend::numeric AS spend,
			impressions::numeric AS impressions,
			clicks::numeric AS clicks,
			video_watched_2s::numeric AS video_watched_2s
		FROM %s.ad_insights`,
		statusSymbolCase, r.stagingSchema,
	)

	return r.rebuild(ctx, "creative_performance", selectSQL,
		[]string{"date", "owner", "placement", "ad_format"})
}

func (r *martRepository) ListCampaignPerformance(ctx context.Context, startDate, endDate time.Time) ([]domain.CampaignPerformance, error) {
	query, args, err := squirrel.
		Select(
			"date", "campaign_id", "campaign_name", "account_name", "owner",
			"budget_code_l1", "region", "category", "program", "content",
			"format", "result_type", "status_symbol", "result", "spend",
			"impressions", "clicks", "purchases", "conversations",
		).
		From(fmt.Sprintf("%s.campaign_performance", r.martSchema)).
		Where(squirrel.GtOrEq{"date": utils.FormatDate(startDate)}).
		Where(squirrel.LtOrEq{"date": utils.FormatDate(endDate)}).
		OrderBy("date ASC, spend DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	performances := make([]domain.CampaignPerformance, 0)
	for rows.Next() {
		var p domain.CampaignPerformance
		err := rows.Scan(
			&p.Date,
			&p.CampaignID,
			&p.CampaignName,
			&p.AccountName,
			&p.Owner,
			&p.BudgetCodeL1,
			&p.Region,
			&p.Category,
			&p.Program,
			&p.Content,
			&p.Format,
			&p.ResultType,
			&p.StatusSymbol,
			&p.Result,
			&p.Spend,
			&p.Impressions,
			&p.Clicks,
			&p.Purchases,
			&p.Conversations,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning campaign performance: %w", err)
		}
		performances = append(performances, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return performances, nil
}

func (r *martRepository) ListCreativePerformance(ctx context.Context, startDate, endDate time.Time) ([]domain.CreativePerformance, error) {
	query, args, err := squirrel.
		Select(
			"date", "ad_id", "ad_name", "campaign_name", "account_name",
			"owner", "region", "content", "format", "placement",
			"audience", "ad_format", "video_id", "preview_url",
			"status_symbol", "result", "spend", "impressions", "clicks",
			"video_watched_2s",
		).
		From(fmt.Sprintf("%s.creative_performance", r.martSchema)).
		Where(squirrel.GtOrEq{"date": utils.FormatDate(startDate)}).
		Where(squirrel.LtOrEq{"date": utils.FormatDate(endDate)}).
		OrderBy("date ASC, spend DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("error building query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	performances := make([]domain.CreativePerformance, 0)
	for rows.Next() {
		var p domain.CreativePerformance
		err := rows.Scan(
			&p.Date,
			&p.AdID,
			&p.AdName,
			&p.CampaignName,
			&p.AccountName,
			&p.Owner,
			&p.Region,
			&p.Content,
			&p.Format,
			&p.Placement,
			&p.Audience,
			&p.AdFormat,
			&p.VideoID,
			&p.PreviewURL,
			&p.StatusSymbol,
			&p.Result,
			&p.Spend,
			&p.Impressions,
			&p.Clicks,
			&p.VideoWatched2s,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning creative performance: %w", err)
		}
		performances = append(performances, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return performances, nil
}
