package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/tiktok-ads-pipeline/infrastructure/database/postgres"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
)

type AdMetadataRepository interface {
	SaveOrUpdate(ctx context.Context, metadata []domain.AdMetadata) (int64, error)
	GetVideoIDsByAdIDs(ctx context.Context, adIDs []string) ([]string, error)
}

type adMetadataRepository struct {
	conn   postgres.Conn
	schema string
}

func NewAdMetadataRepository(conn postgres.Conn, cfg *config.Config) AdMetadataRepository {
	return &adMetadataRepository{
		conn:   conn,
		schema: cfg.RawDataset(),
	}
}

func (r *adMetadataRepository) table() string {
	return fmt.Sprintf("%s.ad_metadata", r.schema)
}

// SaveOrUpdate upserts metadata rows keyed by (ad_id, advertiser_id).
func (r *adMetadataRepository) SaveOrUpdate(ctx context.Context, metadata []domain.AdMetadata) (int64, error) {
	if len(metadata) == 0 {
		return 0, nil
	}

	query := squirrel.StatementBuilder.
		Insert(r.table()).
		Columns(
			"ad_id", "ad_name", "adgroup_id", "adgroup_name",
			"campaign_id", "campaign_name", "advertiser_id", "advertiser_name",
			"operation_status", "video_id", "create_time", "modify_time",
			"last_updated_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, m := range metadata {
		query = query.Values(
			m.AdID,
			m.AdName,
			m.AdgroupID,
			m.AdgroupName,
			m.CampaignID,
			m.CampaignName,
			m.AdvertiserID,
			m.AdvertiserName,
			m.OperationStatus,
			m.VideoID,
			m.CreateTime,
			m.ModifyTime,
			m.LastUpdatedAt,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (ad_id, advertiser_id) DO UPDATE SET
			ad_name = EXCLUDED.ad_name,
			adgroup_id = EXCLUDED.adgroup_id,
			adgroup_name = EXCLUDED.adgroup_name,
			campaign_id = EXCLUDED.campaign_id,
			campaign_name = EXCLUDED.campaign_name,
			advertiser_name = EXCLUDED.advertiser_name,
			operation_status = EXCLUDED.operation_status,
			video_id = EXCLUDED.video_id,
			create_time = EXCLUDED.create_time,
			modify_time = EXCLUDED.modify_time,
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

// GetVideoIDsByAdIDs lists the distinct non-empty video IDs behind the
// given ads, feeding the creative search.
func (r *adMetadataRepository) GetVideoIDsByAdIDs(ctx context.Context, adIDs []string) ([]string, error) {
	if len(adIDs) == 0 {
		return nil, nil
	}

	query, args, err := squirrel.
		Select("DISTINCT video_id").
		From(r.table()).
		Where(squirrel.Eq{"ad_id": adIDs}).
		Where(squirrel.NotEq{"video_id": ""}).
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

	videoIDs := make([]string, 0)
	for rows.Next() {
		var videoID string
		if err := rows.Scan(&videoID); err != nil {
			return nil, fmt.Errorf("error scanning video id: %w", err)
		}
		videoIDs = append(videoIDs, videoID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return videoIDs, nil
}
