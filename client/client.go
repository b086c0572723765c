// Package client wraps the cleaning-marketplace REST API: one configured
// HTTP client with bearer-token auth and a single, serialized
// refresh-and-retry on 401, plus typed pass-through functions for each
// backend resource.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sanketrautel17-hash/Home-Cleaning-Service/models"
)

const apiPrefix = "/api"

// TokenStore is the durable storage for the access/refresh token pair,
// shared with the session manager.
type TokenStore interface {
	Tokens() (access, refresh string)
	SetTokens(pair models.TokenPair) error
	Clear() error
}

// APIClient talks to the backend. All methods take a context so callers
// can cancel in-flight requests when the invoking command is torn down.
type APIClient struct {
	baseURL    string
	httpClient *http.Client
	store      TokenStore
	logger     *zap.Logger

	// refreshMu serializes token refresh: concurrent 401s elect one
	// refresher, the rest wait on the mutex and reuse its outcome.
	refreshMu sync.Mutex
}

// New creates a client for the backend at baseURL. timeout bounds each
// request; zero means unbounded (cancellation via context only).
func New(baseURL string, store TokenStore, logger *zap.Logger, timeout time.Duration) *APIClient {
	return &APIClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		store:      store,
		logger:     logger,
	}
}

// StoredTokens exposes the current token pair for display purposes.
func (c *APIClient) StoredTokens() (access, refresh string) {
	return c.store.Tokens()
}

// do issues one API call: JSON-encode body, attach the stored access
// token, send, and decode the response into out. A 401 on a request
// that carried a token triggers exactly one refresh followed by exactly
// one retry; a second 401 is returned as-is.
func (c *APIClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
	}

	access, _ := c.store.Tokens()
	resp, err := c.send(ctx, method, path, query, payload, access)
	if err != nil {
		return err
	}

	if resp.StatusCode == http.StatusUnauthorized && access != "" {
		resp.Body.Close()
		newAccess, refreshErr := c.refreshAccessToken(ctx, access)
		if refreshErr != nil {
			return refreshErr
		}
		resp, err = c.send(ctx, method, path, query, payload, newAccess)
		if err != nil {
			return err
		}
	}

	return decodeResponse(resp, out)
}

// send builds and executes a single HTTP request.
func (c *APIClient) send(ctx context.Context, method, path string, query url.Values, payload []byte, access string) (*http.Response, error) {
	u := c.baseURL + apiPrefix + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if access != "" {
		req.Header.Set("Authorization", "Bearer "+access)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// refreshAccessToken exchanges the refresh token for a new pair and
// persists it. staleAccess is the token that just got a 401: if the
// stored token already differs, another caller refreshed while we
// waited, and we reuse its result without a second refresh call.
// On a missing refresh token or a failed exchange both tokens are
// cleared and ErrSessionExpired is returned.
func (c *APIClient) refreshAccessToken(ctx context.Context, staleAccess string) (string, error) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	access, refresh := c.store.Tokens()
	if access != "" && access != staleAccess {
		return access, nil
	}
	if refresh == "" {
		if err := c.store.Clear(); err != nil {
			c.logger.Warn("failed to clear token store", zap.Error(err))
		}
		return "", ErrSessionExpired
	}

	payload, err := json.Marshal(map[string]string{"refresh_token": refresh})
	if err != nil {
		return "", fmt.Errorf("failed to encode refresh request: %w", err)
	}

	resp, err := c.send(ctx, http.MethodPost, "/auth/refresh", nil, payload, "")
	if err != nil {
		return "", err
	}

	var refreshed models.AuthResponse
	if err := decodeResponse(resp, &refreshed); err != nil || refreshed.Tokens == nil || refreshed.Tokens.AccessToken == "" {
		c.logger.Debug("token refresh rejected", zap.Error(err))
		if clearErr := c.store.Clear(); clearErr != nil {
			c.logger.Warn("failed to clear token store", zap.Error(clearErr))
		}
		return "", ErrSessionExpired
	}

	if err := c.store.SetTokens(*refreshed.Tokens); err != nil {
		return "", fmt.Errorf("failed to persist refreshed tokens: %w", err)
	}
	return refreshed.Tokens.AccessToken, nil
}

// decodeResponse drains the body, mapping non-2xx statuses to *APIError
// and decoding success bodies into out when given.
func decodeResponse(resp *http.Response, out any) error {
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return newAPIError(resp.StatusCode, raw)
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
