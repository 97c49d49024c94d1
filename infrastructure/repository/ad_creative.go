package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
)

type AdCreativeRepository interface {
	SaveOrUpdate(ctx context.Context, creatives []domain.AdCreative) (int64, error)
}

type adCreativeRepository struct {
	conn   postgres.Conn
	schema string
}

func NewAdCreativeRepository(conn postgres.Conn, cfg *config.Config) AdCreativeRepository {
	return &adCreativeRepository{
		conn:   conn,
		schema: cfg.RawDataset(),
	}
}

func (r *adCreativeRepository) table() string {
	return fmt.Sprintf("%s.ad_creative", r.schema)
}

// SaveOrUpdate upserts creative rows keyed by video_id.
func (r *adCreativeRepository) SaveOrUpdate(ctx context.Context, creatives []domain.AdCreative) (int64, error) {
	if len(creatives) == 0 {
		return 0, nil
	}

	query := squirrel.StatementBuilder.
		Insert(r.table()).
		Columns(
			"video_id", "video_cover_url", "preview_url",
			"duration", "width", "height", "last_updated_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, c := range creatives {
		query = query.Values(
			c.VideoID,
			c.CoverURL,
			c.PreviewURL,
			c.Duration,
			c.Width,
			c.Height,
			c.LastUpdatedAt,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (video_id) DO UPDATE SET
			video_cover_url = EXCLUDED.video_cover_url,
			preview_url = EXCLUDED.preview_url,
			duration = EXCLUDED.duration,
			width = EXCLUDED.width,
			height = EXCLUDED.height,
			last_updated_at = EXCLUDED.last_updated_at
	`)

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
