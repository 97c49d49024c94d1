package domain

import (
	"time"

	"github.com/vfg2006/tiktok-ads-pipeline/pkg/utils"
)

// InsightMetrics carries the daily report metrics pulled for an entity.
// The ads API serializes every metric as a string; values are coerced at
// the integrator boundary.
type InsightMetrics struct {
	ObjectiveType         string  `json:"objective_type"`
	Result                float64 `json:"result"`
	Spend                 float64 `json:"spend"`
	Impressions           float64 `json:"impressions"`
	Clicks                float64 `json:"clicks"`
	VideoWatched2s        float64 `json:"video_watched_2s"`
	Purchase              float64 `json:"purchase"`
	CompletePayment       float64 `json:"complete_payment"`
	OnsiteTotalPurchase   float64 `json:"onsite_total_purchase"`
	OfflineShoppingEvents float64 `json:"offline_shopping_events"`
	OnsiteShopping        float64 `json:"onsite_shopping"`
	DirectMessages        float64 `json:"messaging_total_conversation_tiktok_direct_message"`
}

// InsightRow is a daily insight for one entity of a layer, stamped with the
// run it was loaded by.
type InsightRow struct {
	EntityID      string         `json:"entity_id"`
	AdvertiserID  string         `json:"advertiser_id"`
	StatDate      time.Time      `json:"stat_date"`
	Metrics       InsightMetrics `json:"metrics"`
	DateRange     string         `json:"date_range"`
	LastUpdatedAt time.Time      `json:"last_updated_at"`
}

// Stamp fills the load bookkeeping columns. Rows carry their own stat
// date as the range, matching the per-date loads downstream.
func (r *InsightRow) Stamp(now time.Time) {
	date := utils.FormatDate(r.StatDate)
	r.DateRange = date + "_to_" + date
	r.LastUpdatedAt = now.UTC()
}

// Year and Month derive the partition columns from the stat date.
func (r *InsightRow) Year() int {
	return r.StatDate.Year()
}

func (r *InsightRow) Month() int {
	return int(r.StatDate.Month())
}

func (r *InsightRow) DateStart() string {
	return utils.FormatDate(r.StatDate)
}
