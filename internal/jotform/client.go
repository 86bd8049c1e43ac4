// Package jotform provides a client for the JotForm REST API.
package jotform

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/The-AI-Workshops/jotform-mcp-server/log"
)

// DefaultBaseURL is the JotForm API endpoint for non-EU accounts.
const DefaultBaseURL = "https://api.jotform.com"

const userAgent = "JOTFORM_GO_WRAPPER"

// ClientConfig holds the JotForm API client configuration.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Debug   bool
	Timeout time.Duration
}

// Client is a JotForm API client. It is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	debug      bool
	httpClient *http.Client
}

// NewClient creates a new JotForm API client.
func NewClient(config ClientConfig) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	return &Client{
		apiKey:     config.APIKey,
		baseURL:    strings.TrimSuffix(config.BaseURL, "/"),
		debug:      config.Debug,
		httpClient: &http.Client{Timeout: config.Timeout},
	}
}

// apiResponse is the envelope every JotForm endpoint wraps its payload in.
type apiResponse struct {
	ResponseCode int             `json:"responseCode"`
	Message      string          `json:"message"`
	Content      json.RawMessage `json:"content"`
}

func (c *Client) executeGet(ctx context.Context, path string, params url.Values) (any, error) {
	return c.execute(ctx, http.MethodGet, path, params, nil)
}

func (c *Client) executePost(ctx context.Context, path string, params url.Values) (any, error) {
	return c.execute(ctx, http.MethodPost, path, nil, strings.NewReader(params.Encode()))
}

func (c *Client) executePut(ctx context.Context, path string, body string) (any, error) {
	return c.execute(ctx, http.MethodPut, path, nil, strings.NewReader(body))
}

func (c *Client) executeDelete(ctx context.Context, path string) (any, error) {
	return c.execute(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) execute(ctx context.Context, method, path string, params url.Values, body io.Reader) (any, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	if c.debug {
		log.Debugf("jotform: %s %s", method, reqURL)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("APIKEY", c.apiKey)
	req.Header.Set("User-Agent", userAgent)
	if method == http.MethodPost {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	if method == http.MethodPut {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if c.debug {
		log.Debugf("jotform: %s %s -> %d (%d bytes)", method, path, resp.StatusCode, len(data))
	}

	var envelope apiResponse
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("unexpected response (HTTP %d): %s", resp.StatusCode, truncate(string(data), 200))
	}
	if resp.StatusCode != http.StatusOK || (envelope.ResponseCode != 0 && envelope.ResponseCode != http.StatusOK) {
		msg := envelope.Message
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return nil, fmt.Errorf("API returned %d: %s", responseCode(resp.StatusCode, envelope.ResponseCode), msg)
	}

	var content any
	if len(envelope.Content) > 0 {
		if err := json.Unmarshal(envelope.Content, &content); err != nil {
			return nil, fmt.Errorf("failed to decode response content: %w", err)
		}
	}
	return content, nil
}

func responseCode(httpStatus, apiCode int) int {
	if apiCode != 0 {
		return apiCode
	}
	return httpStatus
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

// createConditions assembles the shared pagination/filter/order query
// parameters used by the list endpoints. The filter map is JSON-encoded
// into a single "filter" parameter, e.g. {"created_at:gt":"2024-01-01 00:00:00"}.
func createConditions(offset, limit int, filter map[string]any, orderBy string) (url.Values, error) {
	params := url.Values{}
	if offset > 0 {
		params.Set("offset", strconv.Itoa(offset))
	}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	if len(filter) > 0 {
		encoded, err := json.Marshal(filter)
		if err != nil {
			return nil, fmt.Errorf("failed to encode filter: %w", err)
		}
		params.Set("filter", string(encoded))
	}
	if orderBy != "" {
		params.Set("orderby", orderBy)
	}
	return params, nil
}
