package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const maxResponseBytes = 4 << 20

// Credentials supplies the bearer token for authenticated calls and is told
// when the backend rejects it.
type Credentials interface {
	Token() string
	Revoke(ctx context.Context) error
}

// Client is a client for the classification backend.
type Client struct {
	baseURL    string
	routes     Routes
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient creates a new backend client. A zero timeout leaves requests unbounded.
func NewClient(baseURL string, routes Routes, timeout time.Duration, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		routes:  routes,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

func (c *Client) Routes() Routes {
	return c.routes
}

// Call performs one request and classifies the answer:
//   - 401/422 on an authenticated endpoint: creds are revoked, ErrAuthRejected
//   - other non-2xx, or a 2xx envelope with a non-success status: *RequestFailedError
//   - transport failure or undecodable body: ErrUnreachable
//
// payload is sent as JSON when non-nil; out, when non-nil, receives the decoded body.
func (c *Client) Call(ctx context.Context, creds Credentials, ep Endpoint, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		jsonData, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("failed to marshal %s request: %w", ep.Name, err)
		}
		body = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, ep.Method, c.baseURL+ep.Path, body)
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", ep.Name, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if ep.Auth && creds != nil {
		if token := creds.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Backend request failed", zap.String("endpoint", ep.Name), zap.Error(err))
		return fmt.Errorf("%w: %s: %v", ErrUnreachable, ep.Name, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		c.logger.Error("Failed to read backend response", zap.String("endpoint", ep.Name), zap.Error(err))
		return fmt.Errorf("%w: %s: %v", ErrUnreachable, ep.Name, err)
	}

	if ep.Auth && (resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusUnprocessableEntity) {
		return c.reject(ctx, creds, ep, resp.StatusCode)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := extractMessage(raw)
		if ep.Auth && isTokenFailure(message) {
			return c.reject(ctx, creds, ep, resp.StatusCode)
		}
		c.logger.Warn("Backend returned non-OK status",
			zap.String("endpoint", ep.Name),
			zap.Int("status", resp.StatusCode),
			zap.String("message", message),
		)
		return &RequestFailedError{Status: resp.StatusCode, Message: message}
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err == nil && env.Status != "" && env.Status != "success" {
			message := env.text()
			if message == "" {
				message = genericFailure
			}
			return &RequestFailedError{Status: resp.StatusCode, Message: message}
		}
	}

	if out == nil || len(trimmed) == 0 {
		return nil
	}
	if err := json.Unmarshal(trimmed, out); err != nil {
		c.logger.Error("Failed to decode backend response", zap.String("endpoint", ep.Name), zap.Error(err))
		return fmt.Errorf("%w: failed to decode %s response: %v", ErrUnreachable, ep.Name, err)
	}
	return nil
}

func (c *Client) reject(ctx context.Context, creds Credentials, ep Endpoint, status int) error {
	c.logger.Info("Backend rejected session token", zap.String("endpoint", ep.Name), zap.Int("status", status))
	if creds != nil {
		if err := creds.Revoke(ctx); err != nil {
			c.logger.Error("Failed to revoke session", zap.Error(err))
		}
	}
	return ErrAuthRejected
}
