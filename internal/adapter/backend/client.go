package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	domainerrors "github.com/polkiloo/foodfront/internal/domain/errors"
)

const (
	// EnvDevelopment selects the relative /api base behind the dev proxy.
	EnvDevelopment = "development"

	defaultDevOrigin = "http://localhost:8081"
	defaultAPIURL    = "http://localhost:8081/api"
	devBasePath      = "/api"
)

// ResolveBaseURL picks the backend base address for the running environment.
// Development talks to the relative /api path of the dev proxy origin, every other
// environment uses the absolute API URL.
func ResolveBaseURL(env, apiURL, devOrigin string) (string, error) {
	if strings.EqualFold(strings.TrimSpace(env), EnvDevelopment) {
		origin := strings.TrimSpace(devOrigin)
		if origin == "" {
			origin = defaultDevOrigin
		}
		base, err := url.Parse(origin)
		if err != nil {
			return "", fmt.Errorf("parse dev origin: %w", err)
		}
		if !base.IsAbs() {
			return "", fmt.Errorf("dev origin must be absolute")
		}
		return base.ResolveReference(&url.URL{Path: devBasePath}).String(), nil
	}

	raw := strings.TrimSpace(apiURL)
	if raw == "" {
		raw = defaultAPIURL
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("parse api url: %w", err)
	}
	if !parsed.IsAbs() {
		return "", fmt.Errorf("api url must be absolute")
	}
	return strings.TrimRight(parsed.String(), "/"), nil
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
	Kind       error
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d: %v", e.StatusCode, e.Kind)
	}
	return fmt.Sprintf("backend responded %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error { return e.Kind }

func kindForStatus(code int) error {
	switch code {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return domainerrors.ErrValidation
	case http.StatusUnauthorized, http.StatusForbidden:
		return domainerrors.ErrUnauthorized
	case http.StatusNotFound:
		return domainerrors.ErrNotFound
	default:
		return domainerrors.ErrRejected
	}
}

// Message extracts a human readable reason from err, falling back to err.Error().
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	if err == nil {
		return ""
	}
	return err.Error()
}

// HTTPClient implements Client over the backend REST API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

// Option customizes HTTPClient.
type Option func(*HTTPClient)

// WithTimeout bounds every request. Zero keeps transport defaults.
func WithTimeout(d time.Duration) Option {
	return func(c *HTTPClient) {
		c.httpClient.Timeout = d
	}
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *HTTPClient) {
		c.tokens = ts
	}
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *HTTPClient) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// NewHTTPClient creates a backend client rooted at baseURL.
func NewHTTPClient(baseURL string, logger *slog.Logger, opts ...Option) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("backend url must be absolute")
	}
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	c := &HTTPClient{
		baseURL:    parsed,
		httpClient: &http.Client{},
		tokens:     ContextTokenSource(),
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the resolved backend root.
func (c *HTTPClient) BaseURL() string {
	return c.baseURL.String()
}

func (c *HTTPClient) endpoint(query url.Values, segments ...string) string {
	u := *c.baseURL
	u.Path = path.Join(append([]string{"/", u.Path}, segments...)...)
	u.RawQuery = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.tokens != nil {
		if token, ok := c.tokens.Token(ctx); ok && token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("backend request failed", slog.String("method", method), slog.String("url", endpoint), slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", domainerrors.ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read body: %w", domainerrors.ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data),
			Kind:       kindForStatus(resp.StatusCode),
		}
		c.logger.Error("backend rejected request",
			slog.String("method", method),
			slog.String("url", endpoint),
			slog.Int("status", resp.StatusCode),
			slog.String("message", apiErr.Message),
		)
		return apiErr
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, endpoint, err)
	}
	return nil
}

func errorMessage(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(trimmed, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		return payload.Error
	}
	if trimmed[0] == '{' || trimmed[0] == '[' {
		return ""
	}
	return string(trimmed)
}
