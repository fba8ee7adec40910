// Package metals provides an HTTP client for the metalpriceapi.com spot
// price service. A single XAU→INR rate feeds the gold price tool; the
// credential is optional and its absence degrades that tool, not the server.
package metals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/TheRanomial/SwarnaMitra-Backend/internal/resilience"
)

// gramsPerTroyOunce converts the per-ounce spot rate to per-gram prices.
const gramsPerTroyOunce = 31.1035

// ErrNoCredential is returned when no market-data API key is configured.
var ErrNoCredential = errors.New("metals: no API key configured")

// Quote is one XAU→INR spot observation.
type Quote struct {
	INRPerOunce float64   `json:"inr_per_ounce"`
	FetchedAt   time.Time `json:"fetched_at"`
}

// GramPrice24K returns the 24-karat price of one gram of gold in INR.
func (q Quote) GramPrice24K() float64 {
	return q.INRPerOunce / gramsPerTroyOunce
}

// Client fetches spot quotes from the metalpriceapi-compatible endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	breaker    *resilience.Breaker
	now        func() time.Time
}

// NewClient creates a metals client. An empty apiKey is allowed; calls then
// fail with ErrNoCredential.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		now: time.Now,
	}
}

// SetBreaker attaches a circuit breaker to all outgoing HTTP calls.
func (c *Client) SetBreaker(b *resilience.Breaker) {
	c.breaker = b
}

// SpotINR fetches the latest XAU→INR rate.
func (c *Client) SpotINR(ctx context.Context) (Quote, error) {
	if c.apiKey == "" {
		return Quote{}, ErrNoCredential
	}

	q := url.Values{}
	q.Set("api_key", c.apiKey)
	q.Set("base", "XAU")
	q.Set("currencies", "INR")
	endpoint := c.baseURL + "/v1/latest?" + q.Encode()

	var quote Quote
	call := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("http request: %w", err)
		}
		defer func() { _ = resp.Body.Close() }()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read response: %w", err)
		}
		if resp.StatusCode >= 400 {
			return fmt.Errorf("metals API error %d: %s", resp.StatusCode, string(data))
		}

		var body struct {
			Success bool `json:"success"`
			Error   *struct {
				Info string `json:"info"`
			} `json:"error,omitempty"`
			Rates map[string]float64 `json:"rates"`
		}
		if err := json.Unmarshal(data, &body); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
		if !body.Success {
			info := "unknown error"
			if body.Error != nil && body.Error.Info != "" {
				info = body.Error.Info
			}
			return fmt.Errorf("metals API error: %s", info)
		}

		rate, ok := body.Rates["INR"]
		if !ok || rate <= 0 {
			return fmt.Errorf("metals API returned no usable INR rate")
		}

		quote = Quote{INRPerOunce: rate, FetchedAt: c.now()}
		return nil
	}

	if c.breaker != nil {
		if err := c.breaker.Execute(call); err != nil {
			return Quote{}, err
		}
		return quote, nil
	}

	if err := call(); err != nil {
		return Quote{}, err
	}
	return quote, nil
}
