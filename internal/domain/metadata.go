package domain

import "time"

// CampaignMetadata is a campaign row stored in the raw layer.
type CampaignMetadata struct {
	CampaignID      string    `json:"campaign_id"`
	CampaignName    string    `json:"campaign_name"`
	AdvertiserID    string    `json:"advertiser_id"`
	AdvertiserName  string    `json:"advertiser_name"`
	ObjectiveType   string    `json:"objective_type"`
	OperationStatus string    `json:"operation_status"`
	CreateTime      string    `json:"create_time"`
	ModifyTime      string    `json:"modify_time"`
	LastUpdatedAt   time.Time `json:"last_updated_at"`
}

// AdMetadata is an ad row stored in the raw layer.
type AdMetadata struct {
	AdID            string    `json:"ad_id"`
	AdName          string    `json:"ad_name"`
	AdgroupID       string    `json:"adgroup_id"`
	AdgroupName     string    `json:"adgroup_name"`
	CampaignID      string    `json:"campaign_id"`
	CampaignName    string    `json:"campaign_name"`
	AdvertiserID    string    `json:"advertiser_id"`
	AdvertiserName  string    `json:"advertiser_name"`
	OperationStatus string    `json:"operation_status"`
	VideoID         string    `json:"video_id"`
	CreateTime      string    `json:"create_time"`
	ModifyTime      string    `json:"modify_time"`
	LastUpdatedAt   time.Time `json:"last_updated_at"`
}

// AdCreative is a video creative row stored in the raw layer.
type AdCreative struct {
	VideoID       string    `json:"video_id"`
	CoverURL      string    `json:"video_cover_url"`
	PreviewURL    string    `json:"preview_url"`
	Duration      float64   `json:"duration"`
	Width         int64     `json:"width"`
	Height        int64     `json:"height"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
}
