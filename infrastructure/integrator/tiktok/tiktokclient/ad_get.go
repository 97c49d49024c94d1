package tiktokclient

import (
	"context"
	"net/url"
	"strconv"

	tiktokdomain "github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok/domain"
)

const adFilterLimit = 100

// GetAds pulls ad metadata, optionally filtered by IDs.
func (c *TikTokClient) GetAds(ctx context.Context, adIDs []string) ([]tiktokdomain.Ad, error) {
	if len(adIDs) == 0 {
		return c.getAdsPage(ctx, nil)
	}

	var ads []tiktokdomain.Ad
	for _, batch := range chunk(adIDs, adFilterLimit) {
		page, err := c.getAdsPage(ctx, batch)
		if err != nil {
			return nil, err
		}
		ads = append(ads, page...)
	}
	return ads, nil
}

func (c *TikTokClient) getAdsPage(ctx context.Context, adIDs []string) ([]tiktokdomain.Ad, error) {
	var ads []tiktokdomain.Ad

	for page := 1; ; page++ {
		params := url.Values{}
		params.Set("advertiser_id", c.Cfg.TikTok.AdvertiserID)
		params.Set("page", strconv.Itoa(page))
		params.Set("page_size", strconv.Itoa(c.Cfg.TikTok.PageSize))

		if len(adIDs) > 0 {
			filtering, err := json.Marshal(map[string][]string{"ad_ids": adIDs})
			if err != nil {
				return nil, err
			}
			params.Set("filtering", string(filtering))
		}

		data, err := c.doGet(ctx, "/ad/get/", params)
		if err != nil {
			return nil, err
		}

		var result tiktokdomain.Page[tiktokdomain.Ad]
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, err
		}

		ads = append(ads, result.List...)

		if len(result.List) < c.Cfg.TikTok.PageSize {
			break
		}
	}

	return ads, nil
}
