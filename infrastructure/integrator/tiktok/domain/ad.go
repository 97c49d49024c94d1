package tiktokdomain

// Ad comes from /ad/get/.
type Ad struct {
	AdID            string `json:"ad_id"`
	AdName          string `json:"ad_name"`
	AdgroupID       string `json:"adgroup_id"`
	AdgroupName     string `json:"adgroup_name"`
	CampaignID      string `json:"campaign_id"`
	CampaignName    string `json:"campaign_name"`
	AdvertiserID    string `json:"advertiser_id"`
	OperationStatus string `json:"operation_status"`
	VideoID         string `json:"video_id"`
	CreateTime      string `json:"create_time"`
	ModifyTime      string `json:"modify_time"`
}

// Video comes from /file/video/ad/search/.
type Video struct {
	VideoID       string  `json:"video_id"`
	VideoCoverURL string  `json:"video_cover_url"`
	PreviewURL    string  `json:"preview_url"`
	Duration      float64 `json:"duration"`
	Width         int64   `json:"width"`
	Height        int64   `json:"height"`
}
