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

type CampaignMetadataRepository interface {
	SaveOrUpdate(ctx context.Context, metadata []domain.CampaignMetadata) (int64, error)
	GetByIDs(ctx context.Context, campaignIDs []string) ([]domain.CampaignMetadata, error)
}

type campaignMetadataRepository struct {
	conn   postgres.Conn
	schema string
}

func NewCampaignMetadataRepository(conn postgres.Conn, cfg *config.Config) CampaignMetadataRepository {
	return &campaignMetadataRepository{
		conn:   conn,
		schema: cfg.RawDataset(),
	}
}

func (r *campaignMetadataRepository) table() string {
	return fmt.Sprintf("%s.campaign_metadata", r.schema)
}

// SaveOrUpdate upserts metadata rows keyed by (campaign_id, advertiser_id).
func (r *campaignMetadataRepository) SaveOrUpdate(ctx context.Context, metadata []domain.CampaignMetadata) (int64, error) {
	if len(metadata) == 0 {
		return 0, nil
	}

	query := squirrel.StatementBuilder.
		Insert(r.table()).
		Columns(
			"campaign_id", "campaign_name", "advertiser_id", "advertiser_name",
			"objective_type", "operation_status", "create_time", "modify_time",
			"last_updated_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, m := range metadata {
		query = query.Values(
			m.CampaignID,
			m.CampaignName,
			m.AdvertiserID,
			m.AdvertiserName,
			m.ObjectiveType,
			m.OperationStatus,
			m.CreateTime,
			m.ModifyTime,
			m.LastUpdatedAt,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (campaign_id, advertiser_id) DO UPDATE SET
			campaign_name = EXCLUDED.campaign_name,
			advertiser_name = EXCLUDED.advertiser_name,
			objective_type = EXCLUDED.objective_type,
			operation_status = EXCLUDED.operation_status,
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

func (r *campaignMetadataRepository) GetByIDs(ctx context.Context, campaignIDs []string) ([]domain.CampaignMetadata, error) {
	builder := squirrel.
		Select(
			"campaign_id", "campaign_name", "advertiser_id", "advertiser_name",
			"objective_type", "operation_status", "create_time", "modify_time",
			"last_updated_at",
		).
		From(r.table()).
		PlaceholderFormat(squirrel.Dollar)

	if len(campaignIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"campaign_id": campaignIDs})
	}

	query, args, err := builder.ToSql()
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

	metadata := make([]domain.CampaignMetadata, 0)
	for rows.Next() {
		var m domain.CampaignMetadata
		err := rows.Scan(
			&m.CampaignID,
			&m.CampaignName,
			&m.AdvertiserID,
			&m.AdvertiserName,
			&m.ObjectiveType,
			&m.OperationStatus,
			&m.CreateTime,
			&m.ModifyTime,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning campaign metadata: %w", err)
		}
		metadata = append(metadata, m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return metadata, nil
}
