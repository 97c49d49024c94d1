package tiktokclient

import (
	"context"
	"net/url"
	"strconv"

	tiktokdomain "github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok/domain"
)

// campaignFilterLimit caps the campaign_ids filtering list per request.
const campaignFilterLimit = 100

// GetCampaigns pulls campaign metadata, optionally filtered by IDs. An
// empty filter returns every campaign of the advertiser.
func (c *TikTokClient) GetCampaigns(ctx context.Context, campaignIDs []string) ([]tiktokdomain.Campaign, error) {
	if len(campaignIDs) == 0 {
		return c.getCampaignsPage(ctx, nil)
	}

	var campaigns []tiktokdomain.Campaign
	for _, batch := range chunk(campaignIDs, campaignFilterLimit) {
		page, err := c.getCampaignsPage(ctx, batch)
		if err != nil {
			return nil, err
		}
		campaigns = append(campaigns, page...)
	}
	return campaigns, nil
}

func (c *TikTokClient) getCampaignsPage(ctx context.Context, campaignIDs []string) ([]tiktokdomain.Campaign, error) {
	var campaigns []tiktokdomain.Campaign

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("advertiser_id", c.Cfg.TikTok.AdvertiserID)
		params.Set("page", strconv.Itoa(page))
		params.Set("page_size", strconv.Itoa(c.Cfg.TikTok.PageSize))

		if len(campaignIDs) > 0 {
			filtering, err := json.Marshal(map[string][]string{"campaign_ids": campaignIDs})
			if err != nil {
				return nil, err
			}
			params.Set("filtering", string(filtering))
		}

		data, err := c.doGet(ctx, "/campaign/get/", params)
		if err != nil {
			return nil, err
		}

		var result tiktokdomain.Page[tiktokdomain.Campaign]
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, err
		}

		campaigns = append(campaigns, result.List...)

		if len(result.List) < c.Cfg.TikTok.PageSize {
			break
		}
	}

	return campaigns, nil
}
