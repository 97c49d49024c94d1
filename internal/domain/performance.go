package domain

import (
	"strings"
	"time"
)

// Delivery status symbols shown by the dashboards reading the mart layer.
const (
	StatusEnabled  = "🟢"
	StatusDisabled = "⚪"
	StatusUnknown  = "❓"
)

// StatusSymbol maps a raw delivery status onto its display symbol.
func StatusSymbol(deliveryStatus string) string {
	status := strings.ToUpper(deliveryStatus)
	switch {
	case strings.Contains(status, "DISABLE"):
		return StatusDisabled
	case strings.Contains(status, "ENABLE"):
		return StatusEnabled
	default:
		return StatusUnknown
	}
}

// CampaignPerformance is a mart row served by the performance endpoints.
type CampaignPerformance struct {
	Date          time.Time `json:"date"`
	CampaignID    string    `json:"campaign_id"`
	CampaignName  string    `json:"campaign_name"`
	AccountName   string    `json:"account_name"`
	Owner         string    `json:"owner"`
	BudgetCodeL1  string    `json:"budget_code_l1"`
	Region        string    `json:"region"`
	Category      string    `json:"category"`
	Program       string    `json:"program"`
	Content       string    `json:"content"`
	Format        string    `json:"format"`
	ResultType    string    `json:"result_type"`
	StatusSymbol  string    `json:"status_symbol"`
	Result        float64   `json:"result"`
	Spend         float64   `json:"spend"`
	Impressions   float64   `json:"impressions"`
	Clicks        float64   `json:"clicks"`
	Purchases     float64   `json:"purchases"`
	Conversations float64   `json:"conversations"`
}

// CreativePerformance is a mart row served by the performance endpoints.
type CreativePerformance struct {
	Date           time.Time `json:"date"`
	AdID           string    `json:"ad_id"`
	AdName         string    `json:"ad_name"`
	CampaignName   string    `json:"campaign_name"`
	AccountName    string    `json:"account_name"`
	Owner          string    `json:"owner"`
	Region         string    `json:"region"`
	Content        string    `json:"content"`
	Format         string    `json:"format"`
	Placement      string    `json:"placement"`
	Audience       string    `json:"audience"`
	AdFormat       string    `json:"ad_format"`
	VideoID        string    `json:"video_id"`
	PreviewURL     string    `json:"preview_url"`
	StatusSymbol   string    `json:"status_symbol"`
	Result         float64   `json:"result"`
	Spend          float64   `json:"spend"`
	Impressions    float64   `json:"impressions"`
	Clicks         float64   `json:"clicks"`
	VideoWatched2s float64   `json:"video_watched_2s"`
}
