package tiktokclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	tiktokdomain "github.com/vfg2006/tiktok-ads-pipeline/infrastructure/integrator/tiktok/domain"
	"github.com/vfg2006/tiktok-ads-pipeline/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetAdvertiserInfo(ctx context.Context) (*tiktokdomain.Advertiser, error)
	GetCampaigns(ctx context.Context, campaignIDs []string) ([]tiktokdomain.Campaign, error)
	GetAds(ctx context.Context, adIDs []string) ([]tiktokdomain.Ad, error)
	SearchVideos(ctx context.Context, videoIDs []string) ([]tiktokdomain.Video, error)
	GetReport(ctx context.Context, dataLevel, idDimension, startDate, endDate string) ([]tiktokdomain.ReportRow, error)
}

type TikTokClient struct {
	Cfg        *config.Config
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.TikTok.TimeoutSeconds) * time.Second
	return &TikTokClient{
		Cfg:        cfg,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

// doGet performs an authenticated GET with the configured bounded retry.
// Transport failures and retryable API codes are retried after a fixed
// delay; the last error wins.
func (c *TikTokClient) doGet(ctx context.Context, path string, params url.Values) (jsoniter.RawMessage, error) {
	fullURL := fmt.Sprintf("%s%s?%s", c.Cfg.TikTok.URL, path, params.Encode())

	var lastErr error
	for attempt := 1; attempt <= c.Cfg.TikTok.MaxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(c.Cfg.TikTok.RetryDelaySecs) * time.Second):
			}
		}

		data, err := c.request(ctx, fullURL)
		if err == nil {
			return data, nil
		}
		lastErr = err

		logrus.WithFields(logrus.Fields{
			"path":    path,
			"attempt": attempt,
			"error":   err.Error(),
		}).Warn("tiktok: request failed")

		if apiErr, ok := err.(*tiktokdomain.APIError); ok && apiErr.IsAuthError() {
			break
		}
	}

	return nil, lastErr
}

func (c *TikTokClient) request(ctx context.Context, fullURL string) (jsoniter.RawMessage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Access-Token", c.Cfg.TikTok.AccessToken)
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}

// HandleResponse unwraps the API envelope, turning non-zero codes and
// non-200 statuses into APIError.
func (c *TikTokClient) HandleResponse(resp *http.Response) (jsoniter.RawMessage, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &tiktokdomain.APIError{
			Code:       resp.StatusCode,
			Message:    string(body),
			HTTPStatus: resp.StatusCode,
		}
	}

	var envelope tiktokdomain.Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	if envelope.Code != 0 {
		return nil, &tiktokdomain.APIError{
			Code:       envelope.Code,
			Message:    envelope.Message,
			RequestID:  envelope.RequestID,
			HTTPStatus: resp.StatusCode,
		}
	}

	return envelope.Data, nil
}

// chunk splits ids into filter-sized batches, the API caps filtering lists.
func chunk(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	var batches [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		batches = append(batches, ids[start:end])
	}
	return batches
}
