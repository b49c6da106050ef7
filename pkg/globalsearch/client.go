package globalsearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// RequestIDHeader carries a per-call correlation ID. Retries of the same call
// reuse it.
const RequestIDHeader = "X-Request-ID"

// Client talks to a GlobalSearch server.
type Client struct {
	config *Config
	client *http.Client
	logger hclog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger. The client logs under the "globalsearch" name.
func WithLogger(logger hclog.Logger) Option {
	return func(c *Client) {
		c.logger = logger.Named("globalsearch")
	}
}

// WithHTTPClient replaces the HTTP client built from the config.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// NewClient creates a new GlobalSearch client. Zero config values are replaced
// with defaults before validation.
func NewClient(cfg *Config, opts ...Option) (*Client, error) {
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid GlobalSearch client config: %w", err)
	}

	c := &Client{
		config: cfg,
		client: cfg.NewHTTPClient(),
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// BaseURL returns the configured server root.
func (c *Client) BaseURL() string {
	return c.config.BaseURL
}

// doRequest executes an HTTP request with retry logic and error handling.
func (c *Client) doRequest(
	ctx context.Context,
	method, path string,
	body interface{},
	result interface{},
) error {
	endpoint := strings.TrimRight(c.config.BaseURL, "/") + path

	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	requestID := uuid.NewString()
	logger := c.logger.With("method", method, "path", path, "request_id", requestID)

	attempt := 0
	operation := func() error {
		attempt++

		var bodyReader io.Reader
		if bodyBytes != nil {
			bodyReader = bytes.NewReader(bodyBytes)
		}

		req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}

		req.SetBasicAuth(c.config.Username, c.config.Password)
		req.Header.Set("Accept", "application/json")
		req.Header.Set(RequestIDHeader, requestID)
		if bodyBytes != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		logger.Debug("sending request", "attempt", attempt)

		resp, err := c.client.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(ctx.Err())
			}
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			apiErr := newAPIError(resp.StatusCode, respBody, requestID)
			if apiErr.Retryable() {
				return apiErr
			}
			return backoff.Permanent(apiErr)
		}

		if result != nil && len(bytes.TrimSpace(respBody)) > 0 {
			if err := json.Unmarshal(respBody, result); err != nil {
				return backoff.Permanent(fmt.Errorf("failed to decode response: %w", err))
			}
		}

		logger.Debug("request complete", "status", resp.StatusCode, "attempt", attempt)
		return nil
	}

	notify := func(err error, wait time.Duration) {
		logger.Warn("request failed, retrying", "attempt", attempt, "wait", wait, "error", err)
	}

	if err := backoff.RetryNotify(operation, c.retryPolicy(ctx), notify); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return fmt.Errorf("request failed after %d attempts: %w", attempt, err)
	}

	return nil
}

func (c *Client) retryPolicy(ctx context.Context) backoff.BackOffContext {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.config.RetryDelay
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0
	b.Reset()

	return backoff.WithContext(
		backoff.WithMaxRetries(b, uint64(*c.config.MaxRetries)),
		ctx,
	)
}

// buildPath joins escaped path segments under the API root.
func buildPath(segments ...interface{}) string {
	var sb strings.Builder
	sb.WriteString("/api")
	for _, s := range segments {
		sb.WriteByte('/')
		sb.WriteString(url.PathEscape(fmt.Sprint(s)))
	}
	return sb.String()
}
