package tiktokclient

import (
	"context"
	"net/url"
	"strconv"

	tiktokdomain "github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok/domain"
)

// GetReport pulls the daily BASIC report for the advertiser between
// startDate and endDate (inclusive, YYYY-MM-DD). dataLevel selects the
// aggregation (AUCTION_CAMPAIGN or AUCTION_AD) and idDimension the entity
// dimension matching it.
func (c *TikTokClient) GetReport(ctx context.Context, dataLevel, idDimension, startDate, endDate string) ([]tiktokdomain.ReportRow, error) {
	dimensions, err := json.Marshal([]string{idDimension, "stat_time_day"})
	if err != nil {
		return nil, err
	}
	metrics, err := json.Marshal(tiktokdomain.ReportMetricNames)
	if err != nil {
		return nil, err
	}

	var rows []tiktokdomain.ReportRow

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("advertiser_id", c.Cfg.TikTok.AdvertiserID)
		params.Set("report_type", "BASIC")
		params.Set("data_level", dataLevel)
		params.Set("dimensions", string(dimensions))
		params.Set("metrics", string(metrics))
		params.Set("start_date", startDate)
		params.Set("end_date", endDate)
		params.Set("page", strconv.Itoa(page))
		params.Set("page_size", strconv.Itoa(c.Cfg.TikTok.PageSize))

		data, err := c.doGet(ctx, "/report/integrated/get/", params)
		if err != nil {
			return nil, err
		}

		var result tiktokdomain.Page[tiktokdomain.ReportRow]
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, err
		}

		rows = append(rows, result.List...)

		if len(result.List) < c.Cfg.TikTok.PageSize {
			break
		}
	}

	return rows, nil
}
