// Package usgs fetches the USGS GeoJSON earthquake summary feed.
package usgs

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/rishik-kumar/Earthquake-Visualizer/internal/domain"
)

// Client fetches and normalizes one earthquake feed URL.
type Client struct {
	feedURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a feed client. The timeout bounds the whole request,
// including reading the body.
func NewClient(feedURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// FetchQuakes performs one GET against the feed and returns the normalized
// quake set. Any transport failure, non-2xx status, or malformed body is
// returned as an error; callers collapse all of them into one failed state.
func (c *Client) FetchQuakes(ctx context.Context) ([]domain.Quake, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("feed status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}

	quakes, err := domain.ParseFeed(body)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("feed fetched", "url", c.feedURL, "quakes", len(quakes))
	return quakes, nil
}
