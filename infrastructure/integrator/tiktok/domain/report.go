package tiktokdomain

// ReportMetricNames is the metric set pulled for every report, campaign and
// ad level alike.
var ReportMetricNames = []string{
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
	"messaging_total_conversation_tiktok_direct_message",
}

// ReportDimensions locates a report row. campaign_id or ad_id is set
// depending on the requested data level.
type ReportDimensions struct {
	CampaignID  string `json:"campaign_id"`
	AdID        string `json:"ad_id"`
	StatTimeDay string `json:"stat_time_day"`
}

// ReportMetrics carries the metric values, serialized by the API as strings.
type ReportMetrics struct {
	ObjectiveType         string `json:"objective_type"`
	Result                string `json:"result"`
	Spend                 string `json:"spend"`
	Impressions           string `json:"impressions"`
	Clicks                string `json:"clicks"`
	VideoWatched2s        string `json:"video_watched_2s"`
	Purchase              string `json:"purchase"`
	CompletePayment       string `json:"complete_payment"`
	OnsiteTotalPurchase   string `json:"onsite_total_purchase"`
	OfflineShoppingEvents string `json:"offline_shopping_events"`
	OnsiteShopping        string `json:"onsite_shopping"`
	DirectMessages        string `json:"messaging_total_conversation_tiktok_direct_message"`
}

// ReportRow comes from /report/integrated/get/.
type ReportRow struct {
	Dimensions ReportDimensions `json:"dimensions"`
	Metrics    ReportMetrics    `json:"metrics"`
}

// EntityID returns whichever dimension ID the data level filled.
func (r ReportRow) EntityID() string {
	if r.Dimensions.AdID != "" {
		return r.Dimensions.AdID
	}
	return r.Dimensions.CampaignID
}
