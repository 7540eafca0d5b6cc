package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/cbodonnell/pong/pkg/repositories/models"
)

const (
	// StatsPath is the stats endpoint relative to the backend URL
	StatsPath = "/api/stats"
	// DefaultTimeout bounds a single stats request
	DefaultTimeout = 5 * time.Second
)

// Client talks to the stats service.
type Client struct {
	backendURL string
	httpClient *http.Client
}

type NewClientOptions struct {
	// BackendURL is the scheme and host of the stats service, e.g. http://localhost:5000.
	// An empty BackendURL targets the local default.
	BackendURL string
	HTTPClient *http.Client
}

func NewClient(opts NewClientOptions) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		backendURL: strings.TrimRight(opts.BackendURL, "/"),
		httpClient: httpClient,
	}
}

// URL returns the stats endpoint.
func (c *Client) URL() string {
	return c.backendURL + StatsPath
}

// Fetch reads the current aggregate stats.
func (c *Client) Fetch(ctx context.Context) (*models.Stats, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send stats request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to fetch stats: status: %s, body: %s", resp.Status, string(b))
	}

	stats := &models.Stats{}
	if err := json.NewDecoder(resp.Body).Decode(stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats response: %v", err)
	}

	return stats, nil
}

// Report posts the result of a finished game.
func (c *Client) Report(ctx context.Context, result types.GameResult) error {
	body, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal game result: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create stats request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send stats request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("failed to report game result: status: %s, body: %s", resp.Status, string(b))
	}

	return nil
}
