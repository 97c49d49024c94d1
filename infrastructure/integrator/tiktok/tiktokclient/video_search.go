package tiktokclient

import (
	"context"
	"net/url"
	"strconv"

	tiktokdomain "github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok/domain"
)

// The video search accepts at most 60 video_ids per filtering list.
const videoFilterLimit = 60

// SearchVideos pulls creative metadata for the given video IDs. The search
// paginates on page/total_page rather than short pages.
func (c *TikTokClient) SearchVideos(ctx context.Context, videoIDs []string) ([]tiktokdomain.Video, error) {
	if len(videoIDs) == 0 {
		return nil, nil
	}

	var videos []tiktokdomain.Video
	for _, batch := range chunk(videoIDs, videoFilterLimit) {
		page, err := c.searchVideosPage(ctx, batch)
		if err != nil {
			return nil, err
		}
		videos = append(videos, page...)
	}
	return videos, nil
}

func (c *TikTokClient) searchVideosPage(ctx context.Context, videoIDs []string) ([]tiktokdomain.Video, error) {
	var videos []tiktokdomain.Video

	for page := 1; ; page++ {
		filtering, err := json.Marshal(map[string][]string{"video_ids": videoIDs})
		if err != nil {
			return nil, err
		}

		params := url.Values{}
		params.Set("advertiser_id", c.Cfg.TikTok.AdvertiserID)
		params.Set("page", strconv.Itoa(page))
		params.Set("page_size", strconv.Itoa(c.Cfg.TikTok.PageSize))
		params.Set("filtering", string(filtering))

		data, err := c.doGet(ctx, "/file/video/ad/search/", params)
		if err != nil {
			return nil, err
		}

		var result tiktokdomain.Page[tiktokdomain.Video]
		if err := json.Unmarshal(data, &result); err != nil {
			return nil, err
		}

		videos = append(videos, result.List...)

		if result.PageInfo.Page >= result.PageInfo.TotalPage {
			break
		}
	}

	return videos, nil
}
