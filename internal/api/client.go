// Copyright (c) 2025 Caritas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"caritas/cli/internal/config"
	apperrors "caritas/cli/internal/errors"
)

// Client implements API and ContentAPI over REST endpoints.
// The user record from the me endpoint is cached in memory to support
// offline scenarios and reduce backend calls.
type Client struct {
	// baseURL is the base URL for all HTTP requests (e.g., "https://script.caritas.ngo")
	baseURL string
	// endpoints contains the URL paths for the backend API
	endpoints config.Endpoints
	// client is the underlying HTTP client with configured timeout
	client *http.Client
	// meCache stores the user record from the me endpoint for offline access
	meCache UserRecord
	// meCacheTime tracks when the cache was last updated
	meCacheTime time.Time
}

// meCacheTTL bounds how long a cached user record is served without a
// fresh backend call.
const meCacheTTL = 10 * time.Minute

// New creates an HTTP client for the content backend.
func New(baseURL string, endpoints config.Endpoints, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		endpoints: endpoints,
		client:    &http.Client{Timeout: timeout},
	}
}

// setStandardHeaders applies the headers every backend request carries.
// Each request gets a fresh ID so backend logs can be correlated.
func (c *Client) setStandardHeaders(req *http.Request) {
	req.Header.Set("User-Agent", "caritas-cli/1.0")
	req.Header.Set("Accept", "application/json, */*")
	req.Header.Set("X-Request-ID", uuid.NewString())
}

// doJSON performs an authenticated JSON request and decodes the response
// into out when out is non-nil. Errors carry a kind: transport failures are
// NetworkError, 401 is InvalidCredentials, 5xx is NetworkError, anything
// else Unknown.
func (c *Client) doJSON(ctx context.Context, method, path, accessToken string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return apperrors.Wrap(apperrors.Unknown, "encode request", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return apperrors.Wrap(apperrors.Unknown, "create request", err)
	}
	c.setStandardHeaders(req)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return apperrors.Wrap(apperrors.NetworkError, "backend unreachable", err)
	}
	defer resp.Body.Close()

	if err := classifyStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.Wrap(apperrors.Unknown, "decode response", err)
	}
	return nil
}

// classifyStatus maps a non-2xx response to a typed error.
func classifyStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusUnauthorized:
		return apperrors.New(apperrors.InvalidCredentials, "unauthorized")
	case resp.StatusCode >= 500:
		return apperrors.New(apperrors.NetworkError, readErrorBody(resp))
	default:
		return apperrors.New(apperrors.Unknown, readErrorBody(resp))
	}
}

// readErrorBody extracts a short human-readable message from an error
// response, preferring the backend's own "error"/"message" fields.
func readErrorBody(resp *http.Response) string {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var payload map[string]any
	if err := json.Unmarshal(b, &payload); err == nil {
		for _, key := range []string{"error", "message"} {
			if v, ok := payload[key].(string); ok && v != "" {
				return v
			}
		}
	}
	if s := strings.TrimSpace(string(b)); s != "" {
		if len(s) > 200 {
			s = s[:200]
		}
		return s
	}
	return resp.Status
}

// GetVersion calls the version endpoint and returns the backend version
// string when available. No authentication required; useful as a
// connectivity check.
func (c *Client) GetVersion(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+c.endpoints.Version, nil)
	if err != nil {
		return "", err
	}
	c.setStandardHeaders(req)
	resp, err := c.client.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.NetworkError, "backend unreachable", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "unknown", nil
	}
	var out struct {
		Version string `json:"version"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	if out.Version == "" {
		return "unknown", nil
	}
	return out.Version, nil
}
