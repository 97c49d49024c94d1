package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/pkg/utils"
)

// insertBatchSize keeps multi-row inserts under the driver parameter limit.
const insertBatchSize = 1000

type InsightRepository interface {
	EnsureMonthlyTable(ctx context.Context, layer domain.Layer, month time.Time) error
	DeleteByDate(ctx context.Context, layer domain.Layer, date time.Time) (int64, error)
	InsertRows(ctx context.Context, layer domain.Layer, rows []domain.InsightRow) (int64, error)
	ListMonthlyTables(ctx context.Context, layer domain.Layer) ([]string, error)
}

type insightRepository struct {
	conn   postgres.Conn
	schema string
}

func NewInsightRepository(conn postgres.Conn, cfg *config.Config) InsightRepository {
	return &insightRepository{
		conn:   conn,
		schema: cfg.RawDataset(),
	}
}

func (r *insightRepository) monthlyTable(layer domain.Layer, month time.Time) string {
	return fmt.Sprintf("%s.%s_insights_%s", r.schema, layer, utils.MonthSuffix(month))
}

// metric columns shared by both layers, in insert order.
var insightMetricColumns = []string{
	"objective_type",
	"result",
	"spend",
	"impressions",
	"clicks",
	"video_watched_2s",
	"purchase",
	"complete_payment",
	"onsite_total_purchase",
	"offline_shopping_events",
	"onsite_shopping",
	"direct_messages",
}

// EnsureMonthlyTable creates the raw monthly table of the layer when it does
// not exist yet, with the lookup indexes the staging scan relies on.
func (r *insightRepository) EnsureMonthlyTable(ctx context.Context, layer domain.Layer, month time.Time) error {
	table := r.monthlyTable(layer, month)
	idColumn := layer.IDDimension()

	ddl := fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			%s TEXT NOT NULL,
			advertiser_id TEXT NOT NULL,
			date DATE NOT NULL,
			year INT NOT NULL,
			month INT NOT NULL,
			date_start DATE NOT NULL,
			date_range TEXT NOT NULL,
			last_updated_at TIMESTAMPTZ NOT NULL,
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
			direct_messages NUMERIC NOT NULL DEFAULT 0,
			PRIMARY KEY (%s, date)
		)
	`, table, idColumn, idColumn)

	if _, err := r.conn.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("error creating monthly table %s: %w", table, err)
	}

	indexDDL := fmt.Sprintf(
		"CREATE INDEX IF NOT EXISTS idx_%s_insights_%s_date ON %s (date)",
		layer, utils.MonthSuffix(month), table,
	)
	if _, err := r.conn.Exec(ctx, indexDDL); err != nil {
		return fmt.Errorf("error creating index on %s: %w", table, err)
	}

	return nil
}

// DeleteByDate removes rows already loaded for a stat date so the new load
// can append cleanly.
func (r *insightRepository) DeleteByDate(ctx context.Context, layer domain.Layer, date time.Time) (int64, error) {
	table := r.monthlyTable(layer, date)

	query, args, err := squirrel.
		Delete(table).
		Where(squirrel.Eq{"date": utils.FormatDate(date)}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %w", err)
	}

	return rowsAffected, nil
}

// InsertRows appends insight rows into the monthly tables their stat dates
// belong to.
func (r *insightRepository) InsertRows(ctx context.Context, layer domain.Layer, rows []domain.InsightRow) (int64, error) {
	if len(rows) == 0 {
		return 0, nil
	}

	var total int64
	for start := 0; start < len(rows); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows) {
			end = len(rows)
		}

		inserted, err := r.insertBatch(ctx, layer, rows[start:end])
		if err != nil {
			return total, err
		}
		total += inserted
	}

	return total, nil
}

func (r *insightRepository) insertBatch(ctx context.Context, layer domain.Layer, rows []domain.InsightRow) (int64, error) {
	// The callers ingest date by date, so a batch never spans months.
	table := r.monthlyTable(layer, rows[0].StatDate)

	columns := append([]string{
		layer.IDDimension(), "advertiser_id", "date", "year", "month",
		"date_start", "date_range", "last_updated_at",
	}, insightMetricColumns...)

	query := squirrel.StatementBuilder.
		Insert(table).
		Columns(columns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range rows {
		query = query.Values(
			row.EntityID,
			row.AdvertiserID,
			utils.FormatDate(row.StatDate),
			row.Year(),
			row.Month(),
			row.DateStart(),
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
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building query: %w", err)
	}

	result, err := r.conn.Exec(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return 0, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return 0, fmt.Errorf("error executing query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("error reading affected rows: %w", err)
	}

	return rowsAffected, nil
}

// ListMonthlyTables finds every monthly raw table of the layer, ordered by
// name, for the staging scan.
func (r *insightRepository) ListMonthlyTables(ctx context.Context, layer domain.Layer) ([]string, error) {
	query, args, err := squirrel.
		Select("table_name").
		From("information_schema.tables").
		Where(squirrel.Eq{"table_schema": r.schema}).
		Where(squirrel.Expr("table_name ~ ?", fmt.Sprintf(`^%s_insights_m\d{6}$`, layer))).
		OrderBy("table_name ASC").
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

	tables := make([]string, 0)
	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			return nil, fmt.Errorf("error scanning table name: %w", err)
		}
		tables = append(tables, table)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return tables, nil
}
