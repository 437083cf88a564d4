package client

import (
	"context"
	"fmt"
	"time"

	"igold/scraper/internal/config"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// Fetcher is the single network surface of the crawler. GetPage returns raw
// markup after bounded retries; GetAsset returns binary content. Both pace
// themselves through a shared rate limiter.
type Fetcher interface {
	GetPage(ctx context.Context, url string) (string, error)
	GetAsset(ctx context.Context, url string) ([]byte, error)
}

type igoldClient struct {
	rl         ratelimit.Limiter
	httpClient *resty.Client
}

func NewIGoldClient(cfg config.SiteConfig) Fetcher {
	httpClient := resty.New().
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetRetryCount(cfg.MaxRetries).
		SetRetryWaitTime(time.Duration(cfg.RetryWait)*time.Second).
		SetHeader("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36").
		SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8").
		SetHeader("Accept-Language", "bg,en-US;q=0.7,en;q=0.5")

	rps := cfg.MaxRequestsPerSecond
	if rps <= 0 {
		rps = 1
	}

	return &igoldClient{
		rl:         ratelimit.New(rps),
		httpClient: httpClient,
	}
}

func (c *igoldClient) GetPage(ctx context.Context, url string) (string, error) {
	c.rl.Take()

	log.Infof("Fetching: %s", url)

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return "", fmt.Errorf("failed to fetch URL: %w", err)
	}

	if resp.IsError() {
		return "", fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	return resp.String(), nil
}

func (c *igoldClient) GetAsset(ctx context.Context, url string) ([]byte, error) {
	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		Get(url)

	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch asset: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	return resp.Bytes(), nil
}
