// Package feed polls the external price endpoint and keeps the series the
// chart pages through.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"
)

// Snapshot is the body served by the upstream /data endpoint. A nil slice
// means the field was absent.
type Snapshot struct {
	Timestamps   []string          `json:"timestamps"`
	Prices       []decimal.Decimal `json:"prices"`
	MarketOpen   bool              `json:"market_open"`
	CurrentPrice *decimal.Decimal  `json:"current_price,omitempty"`
}

// StatusError is returned when the upstream answers with a non-200 status.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("price feed returned status %d", e.StatusCode)
}

type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient builds a client for the feed rooted at baseURL. A nil httpClient
// uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// Fetch retrieves the current series, bypassing any intermediate cache.
func (c *Client) Fetch(ctx context.Context) (Snapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data", nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("build price request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("fetch prices: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Snapshot{}, &StatusError{StatusCode: resp.StatusCode}
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode prices: %w", err)
	}
	return snap, nil
}
