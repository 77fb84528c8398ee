// Package client is the HTTP implementation of the form.Dispatcher
// boundary, used by portfolioctl and anything else driving the form
// controller outside a browser.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go-portfolio-backend/pkg/form"
)

// envelope mirrors the API's standard JSON response shape.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		MessageID string `json:"message_id"`
	} `json:"data"`
	Error *struct {
		Category string `json:"category"`
		Details  string `json:"details"`
	} `json:"error"`
}

// Client talks to the portfolio backend API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the API at baseURL (e.g. http://localhost:8080).
func New(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Dispatch posts the submission to the contact endpoint. A non-JSON or
// undecodable response is reported as form.ErrMalformedResponse so the
// controller can distinguish it from a structured failure.
func (c *Client) Dispatch(ctx context.Context, sub form.Submission) (*form.Result, error) {
	body, err := json.Marshal(sub)
	if err != nil {
		return nil, fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/contact", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("contact request failed: %w", err)
	}
	defer resp.Body.Close()

	// A proxy or crash page comes back as HTML; never try to parse that
	// as the failure shape.
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "application/json") {
		return nil, fmt.Errorf("%w: content-type %q", form.ErrMalformedResponse, ct)
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: %v", form.ErrMalformedResponse, err)
	}

	res := &form.Result{
		Success:   env.Success,
		MessageID: env.Data.MessageID,
		Summary:   env.Message,
	}
	if env.Error != nil {
		res.Category = env.Error.Category
		res.Details = env.Error.Details
	}
	return res, nil
}

// Health pings the health endpoint.
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return nil
}
