// Package httpapi is the coaching platform's REST client. It attaches the stored bearer token,
// decodes JSON bodies and turns every failure into a *domain.APIError.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/bnema/coach-cli/internal/domain"
	"github.com/bnema/coach-cli/internal/ports"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxResponseBytes      = 1 << 20
	defaultRequestTimeout = 30 * time.Second
	requestIDHeader       = "X-Request-ID"
)

type Client struct {
	baseURL        string
	tokens         ports.SecretStore
	httpClient     *http.Client
	logger         *zap.Logger
	requestTimeout time.Duration
}

var (
	_ ports.AuthAPI    = (*Client)(nil)
	_ ports.ProfileAPI = (*Client)(nil)
	_ ports.CatalogAPI = (*Client)(nil)
	_ ports.ReviewAPI  = (*Client)(nil)
	_ ports.MeetingAPI = (*Client)(nil)
)

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithRequestTimeout bounds requests whose context has no deadline of its own.
func WithRequestTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.requestTimeout = timeout
		}
	}
}

// NewClient builds a client for baseURL. tokens may be nil, in which case requests are anonymous.
func NewClient(baseURL string, tokens ports.SecretStore, opts ...Option) (*Client, error) {
	if err := validateBaseURL(baseURL); err != nil {
		return nil, err
	}

	client := &Client{
		baseURL:        strings.TrimRight(baseURL, "/"),
		tokens:         tokens,
		httpClient:     http.DefaultClient,
		logger:         zap.NewNop(),
		requestTimeout: defaultRequestTimeout,
	}
	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, "", out)
}

func (c *Client) postJSON(ctx context.Context, path string, in any, out any) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		body = bytes.NewReader(data)
		contentType = "application/json"
	}

	return c.do(ctx, http.MethodPost, path, body, contentType, out)
}

// postMultipart sends fields as form values and file, when set, as a file part named fileField.
func (c *Client) postMultipart(ctx context.Context, path string, fields map[string]string, fileField string, file *domain.FileUpload, out any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		if err := writer.WriteField(key, fields[key]); err != nil {
			return fmt.Errorf("write form field %q: %w", key, err)
		}
	}
	if file != nil {
		part, err := writer.CreateFormFile(fileField, file.Name)
		if err != nil {
			return fmt.Errorf("create form file %q: %w", fileField, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return fmt.Errorf("write form file %q: %w", fileField, err)
		}
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart body: %w", err)
	}

	return c.do(ctx, http.MethodPost, path, &buf, writer.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out any) error {
	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, method, c.endpoint(path), body)
	if err != nil {
		return fmt.Errorf("create %s %s request: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if err := c.authorize(ctx, req); err != nil {
		return err
	}

	requestID := uuid.NewString()
	req.Header.Set(requestIDHeader, requestID)
	logger := c.logger.With(
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
	)
	logger.Debug("api request")

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug("api transport error", zap.Duration("duration", time.Since(started)), zap.Error(err))
		return &domain.APIError{Kind: domain.KindNetwork, Err: fmt.Errorf("%s %s: %w", method, path, err)}
	}
	defer func() { _ = resp.Body.Close() }()

	logger.Debug("api response", zap.Int("status", resp.StatusCode), zap.Duration("duration", time.Since(started)))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))
		return nil
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(out); err != nil {
		return &domain.APIError{
			Kind:       domain.KindServerRejected,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("decode %s %s response: %w", method, path, err),
		}
	}

	return nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}

	token, err := c.tokens.Get(ctx, domain.TokenKey)
	if err != nil {
		if errors.Is(err, domain.ErrSecretNotFound) {
			return nil
		}
		return fmt.Errorf("load auth token: %w", err)
	}
	if token = strings.TrimSpace(token); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return nil
}

func (c *Client) endpoint(path string) string {
	return c.baseURL + "/" + strings.TrimLeft(path, "/")
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	return context.WithTimeout(ctx, c.requestTimeout)
}

type errorResponse struct {
	Message string `json:"message"`
}

func decodeAPIError(resp *http.Response) error {
	kind := domain.KindServerRejected
	switch resp.StatusCode {
	case http.StatusUnauthorized:
		kind = domain.KindUnauthenticated
	case http.StatusNotFound:
		kind = domain.KindNotFound
	}

	var payload errorResponse
	_ = json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&payload)

	return &domain.APIError{
		Kind:       kind,
		StatusCode: resp.StatusCode,
		Message:    strings.TrimSpace(payload.Message),
	}
}

func validateBaseURL(baseURL string) error {
	if strings.TrimSpace(baseURL) == "" {
		return errors.New("api base url is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("parse api base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("api base url must use http or https")
	}
	if parsed.Host == "" {
		return errors.New("api base url host is required")
	}

	return nil
}
