package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Client is the HTTP transport shared by every collection service. It owns
// base-URL joining, JSON coding, the bearer header and error mapping; the
// services own everything above that.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	token   string
}

// New creates a Client for the given API base URL. The trailing slash is
// stripped so path joins always produce exactly one separator.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

// BaseURL returns the configured API base without a trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetToken installs the session bearer token on subsequent requests. The
// client is driven from a single goroutine, matching the event-driven UI it
// serves; there is no locking here.
func (c *Client) SetToken(token string) {
	c.token = token
}

// Get issues a GET and decodes the JSON body into an untyped payload for
// the adapters to normalize.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (any, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPost, path, nil, body)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (any, error) {
	return c.do(ctx, http.MethodPut, path, nil, body)
}

// Delete issues a DELETE; the response body is discarded.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil)
	return err
}

// Upload sends image bytes as multipart form data under the given field
// name, the way the backend expects recipe photos and avatars.
func (c *Client) Upload(ctx context.Context, path, field, filename string, data []byte) (any, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return nil, fmt.Errorf("failed to build multipart body: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write multipart body: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.join(path, nil), &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return c.send(req)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.join(path, query), reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return c.send(req)
}

func (c *Client) send(req *http.Request) (any, error) {
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("request failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Error(err))
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug("request completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Status: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return payload, nil
}

func (c *Client) join(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}
