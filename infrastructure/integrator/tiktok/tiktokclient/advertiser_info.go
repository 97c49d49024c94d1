package tiktokclient

import (
	"context"
	"errors"
	"net/url"

	tiktokdomain "github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok/domain"
)

func (c *TikTokClient) GetAdvertiserInfo(ctx context.Context) (*tiktokdomain.Advertiser, error) {
	ids, err := json.Marshal([]string{c.Cfg.TikTok.AdvertiserID})
	if err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("advertiser_ids", string(ids))

	data, err := c.doGet(ctx, "/advertiser/info/", params)
	if err != nil {
		return nil, err
	}

	var page tiktokdomain.Page[tiktokdomain.Advertiser]
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, err
	}

	if len(page.List) == 0 {
		return nil, errors.New("tiktok: advertiser not found")
	}

	return &page.List[0], nil
}
