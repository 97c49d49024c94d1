package tiktokdomain

// Advertiser comes from /advertiser/info/.
type Advertiser struct {
	AdvertiserID   string `json:"advertiser_id"`
	AdvertiserName string `json:"name"`
	Currency       string `json:"currency"`
	Timezone       string `json:"timezone"`
	Status         string `json:"status"`
}

// Campaign comes from /campaign/get/.
type Campaign struct {
	CampaignID      string `json:"campaign_id"`
	CampaignName    string `json:"campaign_name"`
	AdvertiserID    string `json:"advertiser_id"`
	ObjectiveType   string `json:"objective_type"`
	OperationStatus string `json:"operation_status"`
	CreateTime      string `json:"create_time"`
	ModifyTime      string `json:"modify_time"`
}
