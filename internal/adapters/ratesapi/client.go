package ratesapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	portssvc "github.com/SscSPs/books_core/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// DefaultBaseURL is the public vatcomply endpoint.
const DefaultBaseURL = "https://api.vatcomply.com"

// maxBodySize bounds how much of a response is read.
const maxBodySize = 1 << 20

// Client fetches daily reference rates from a vatcomply compatible API:
// GET <base>/rates?date=YYYY-MM-DD&base=FROM&symbols=TO -> {"rates": {"TO": 1.23}}
type Client struct {
	baseURL string
	client  *http.Client
}

// NewClient creates a new Client. A zero timeout leaves cancellation to the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

var _ portssvc.RateProvider = (*Client)(nil)

type ratesResponse struct {
	Base  string                     `json:"base"`
	Date  string                     `json:"date"`
	Rates map[string]decimal.Decimal `json:"rates"`
}

// FetchRate makes a single request; there is no retry.
func (c *Client) FetchRate(ctx context.Context, date, from, to string) (decimal.Decimal, error) {
	query := url.Values{}
	query.Set("date", date)
	query.Set("base", from)
	query.Set("symbols", to)
	endpoint := c.baseURL + "/rates?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to build rate request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return decimal.Zero, fmt.Errorf("rate request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to read rate response: %w", err)
	}

	if resp.StatusCode >= 400 {
		return decimal.Zero, NewError(resp.StatusCode, body)
	}

	var payload ratesResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode rate response: %w", err)
	}

	rate, ok := payload.Rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("rate response has no %s entry", to)
	}
	return rate, nil
}
