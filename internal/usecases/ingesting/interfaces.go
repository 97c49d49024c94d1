package ingesting

import (
	"context"

	"github.com/vfg2006/tiktok-ads-pipeline/internal/domain"
)

// Ingester loads fetched API data into the raw layer.
type Ingester interface {
	// IngestInsights loads daily insights for the layer over the range and
	// returns the distinct entity IDs that received data.
	IngestInsights(ctx context.Context, layer domain.Layer, dateRange domain.DateRange) ([]string, error)

	// IngestCampaignMetadata refreshes metadata for the given campaigns.
	IngestCampaignMetadata(ctx context.Context, campaignIDs []string) (int64, error)

	// IngestAdMetadata refreshes metadata for the given ads.
	IngestAdMetadata(ctx context.Context, adIDs []string) (int64, error)

	// IngestAdCreatives refreshes the creative catalog behind the given ads.
	IngestAdCreatives(ctx context.Context, adIDs []string) (int64, error)
}
