package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/daiki-beppu/ui-gohan/internal/common"
	"github.com/daiki-beppu/ui-gohan/internal/syncapi"
)

const defaultRequestTimeout = 15 * time.Second

// HTTPClient talks JSON over HTTP to the sync server. One request per call,
// bounded by the client timeout so a dead endpoint cannot hang startup.
type HTTPClient struct {
	baseURL   string
	authToken string
	http      *http.Client
}

// NewHTTPClient builds a transport for the given endpoint. authToken may be
// empty when the server runs in open mode. A non-positive timeout falls back
// to the default.
func NewHTTPClient(baseURL, authToken string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	return &HTTPClient{
		baseURL:   strings.TrimRight(baseURL, "/"),
		authToken: authToken,
		http:      &http.Client{Timeout: timeout},
	}
}

func (c *HTTPClient) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authToken != "" {
		req.Header.Set(common.AuthHeaderName, common.BearerPrefix+c.authToken)
	}
	return req, nil
}

// Ping probes the health endpoint.
func (c *HTTPClient) Ping(ctx context.Context) error {
	req, err := c.newRequest(ctx, http.MethodGet, "/healthz", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ErrUnavailable
	}
	return nil
}

// Sync posts local changes and returns the remote ones.
func (c *HTTPClient) Sync(ctx context.Context, syncReq *syncapi.SyncRequest) (*syncapi.SyncResponse, error) {
	payload, err := json.Marshal(syncReq)
	if err != nil {
		return nil, fmt.Errorf("failed to encode sync request: %w", err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, common.SyncPath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := c.mapStatus(resp.StatusCode); err != nil {
		return nil, err
	}

	var syncResp syncapi.SyncResponse
	if err := json.NewDecoder(resp.Body).Decode(&syncResp); err != nil {
		return nil, fmt.Errorf("failed to decode sync response: %w", err)
	}
	return &syncResp, nil
}

func (c *HTTPClient) mapStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return ErrUnauthorized
	case code >= 500:
		return ErrUnavailable
	default:
		return fmt.Errorf("unexpected status: %d", code)
	}
}

// Close releases idle connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}
