package domain

import "time"

// Enrichment holds the fields parsed out of the campaign/adgroup naming
// convention. Rows whose names do not follow the convention keep empty
// fields and a false validity flag.
type Enrichment struct {
	Format       string `json:"format"`
	Region       string `json:"region"`
	BudgetCodeL1 string `json:"budget_code_l1"`
	BudgetCodeL2 string `json:"budget_code_l2"`
	Category     string `json:"category"`
	Owner        string `json:"owner"`
	Program      string `json:"program"`
	Content      string `json:"content"`
	Placement    string `json:"placement"`
	Audience     string `json:"audience"`
	AdFormat     string `json:"ad_format"`
	Month        string `json:"month"`

	ValidCampaignName bool `json:"valid_campaign_name"`
	ValidAdgroupName  bool `json:"valid_adgroup_name"`
}

// StagingCampaignRow is one enriched campaign-day in the staging layer.
type StagingCampaignRow struct {
	CampaignID     string    `json:"campaign_id"`
	CampaignName   string    `json:"campaign_name"`
	AccountID      string    `json:"account_id"`
	AccountName    string    `json:"account_name"`
	ResultType     string    `json:"result_type"`
	DeliveryStatus string    `json:"delivery_status"`
	DateStart      time.Time `json:"date_start"`
	DateRange      string    `json:"date_range"`
	LastUpdatedAt  time.Time `json:"last_updated_at"`

	Metrics    InsightMetrics `json:"metrics"`
	Enrichment Enrichment     `json:"enrichment"`
}

// StagingAdRow is one enriched ad-day in the staging layer.
type StagingAdRow struct {
	AdID           string    `json:"ad_id"`
	AdName         string    `json:"ad_name"`
	AdgroupID      string    `json:"adgroup_id"`
	AdgroupName    string    `json:"adgroup_name"`
	CampaignID     string    `json:"campaign_id"`
	CampaignName   string    `json:"campaign_name"`
	AccountID      string    `json:"account_id"`
	AccountName    string    `json:"account_name"`
	ResultType     string    `json:"result_type"`
	DeliveryStatus string    `json:"delivery_status"`
	VideoID        string    `json:"video_id"`
	CoverURL       string    `json:"video_cover_url"`
	PreviewURL     string    `json:"preview_url"`
	VideoDuration  float64   `json:"video_duration"`
	DateStart      time.Time `json:"date_start"`
	DateRange      string    `json:"date_range"`
	LastUpdatedAt  time.Time `json:"last_updated_at"`

	Metrics    InsightMetrics `json:"metrics"`
	Enrichment Enrichment     `json:"enrichment"`
}
