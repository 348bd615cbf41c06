// Package backend is the HTTP client for the remote portfolio API.
// It exposes one method per backend operation, attaches the bearer
// credential when one is supplied, and translates every non-2xx
// response into a typed *APIError at the boundary.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/alphadash/dashboard/internal/model"
)

// Client provides methods for calling the portfolio API.
// All business computation (pricing, gain/loss, rollups) happens on
// the backend; this client only moves typed data back and forth.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a portfolio API client for the given base URL,
// e.g. "http://localhost:8000/api/v1".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// GetPortfolioSummary fetches the authenticated user's portfolio
// summary, including the server-computed valuation of every holding.
func (c *Client) GetPortfolioSummary(ctx context.Context, token string) (model.PortfolioSummary, error) {
	var summary model.PortfolioSummary
	err := c.do(ctx, http.MethodGet, "/portfolio/holdings/", token, nil, nil, &summary)
	return summary, err
}

// GetUserAssetSummary fetches the per-asset rollup of the user's
// holdings (total quantity and weighted-average purchase price).
func (c *Client) GetUserAssetSummary(ctx context.Context, token string) ([]model.UserAssetSummaryItem, error) {
	var items []model.UserAssetSummaryItem
	err := c.do(ctx, http.MethodGet, "/users/me/asset-summary", token, nil, nil, &items)
	return items, err
}

// GetAssetHistory fetches the historical price series for a symbol.
// The endpoint is unauthenticated by design, so no credential is sent.
func (c *Client) GetAssetHistory(ctx context.Context, symbol string, size model.OutputSize) ([]model.HistoricalPricePoint, error) {
	query := url.Values{"outputsize": {string(size)}}
	path := fmt.Sprintf("/market-data/%s/history", url.PathEscape(symbol))

	var points []model.HistoricalPricePoint
	err := c.do(ctx, http.MethodGet, path, "", query, nil, &points)
	return points, err
}

// GetAssetBySymbol looks up an asset by its symbol, returning the
// first match. A 404 or an empty result list means the asset does not
// exist and is reported as (nil, nil), not as an error, so callers can
// give the user an actionable message.
func (c *Client) GetAssetBySymbol(ctx context.Context, token, symbol string) (*model.Asset, error) {
	query := url.Values{"symbol": {symbol}}

	var assets []model.Asset
	err := c.do(ctx, http.MethodGet, "/assets/", token, query, nil, &assets)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if len(assets) == 0 {
		return nil, nil
	}
	return &assets[0], nil
}

// CreateAsset registers a new tradable asset.
func (c *Client) CreateAsset(ctx context.Context, token string, req model.CreateAssetRequest) (model.Asset, error) {
	var asset model.Asset
	err := c.do(ctx, http.MethodPost, "/assets/", token, nil, req, &asset)
	return asset, err
}

// CreateHolding records a new purchase lot.
func (c *Client) CreateHolding(ctx context.Context, token string, req model.CreateHoldingRequest) (model.Holding, error) {
	var holding model.Holding
	err := c.do(ctx, http.MethodPost, "/portfolio/holdings/", token, nil, req, &holding)
	return holding, err
}

// UpdateHolding replaces the mutable fields of an existing holding.
// The asset binding cannot be changed.
func (c *Client) UpdateHolding(ctx context.Context, token string, id int64, req model.UpdateHoldingRequest) (model.Holding, error) {
	var holding model.Holding
	path := fmt.Sprintf("/portfolio/holdings/%d", id)
	err := c.do(ctx, http.MethodPut, path, token, nil, req, &holding)
	return holding, err
}

// DeleteHolding removes a holding.
func (c *Client) DeleteHolding(ctx context.Context, token string, id int64) error {
	path := fmt.Sprintf("/portfolio/holdings/%d", id)
	return c.do(ctx, http.MethodDelete, path, token, nil, nil, nil)
}

// do executes one API request. It attaches the Authorization header
// when token is non-empty, decodes 2xx bodies into out, and converts
// any other response into an *APIError. Failures are logged here so
// every caller gets diagnostics for free before deciding how to react.
func (c *Client) do(ctx context.Context, method, path, token string, query url.Values, body, out interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("backend: %s %s failed: %v", method, path, err)
		return fmt.Errorf("network error: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Printf("backend: %s %s read failed: %v", method, path, err)
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := parseAPIError(resp.StatusCode, data)
		log.Printf("backend: %s %s returned %d: %s", method, path, resp.StatusCode, apiErr.Detail)
		return apiErr
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
