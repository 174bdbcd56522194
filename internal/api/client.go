package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/thenoetrevino/lbl/internal/models"
)

const (
	labelsPath         = "/api/label"
	defaultTimeout     = 15 * time.Second
	defaultTokenHeader = "X-Session-Token"
	requestIDHeader    = "X-Request-Id"

	// maxErrorBody caps how much of an error response is read for decoding
	maxErrorBody = 1 << 20
)

// Client talks to the label REST endpoints of a remote backend.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	token       string
	tokenHeader string
	logger      *slog.Logger
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the session token and the header it is sent in.
// An empty header keeps the default.
func WithToken(token, header string) ClientOption {
	return func(c *Client) {
		c.token = token
		if header != "" {
			c.tokenHeader = header
		}
	}
}

// WithTimeout sets the per-request timeout of the default http.Client.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a Client rooted at baseURL (e.g. "http://localhost:3000").
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", baseURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base url %q: scheme must be http or https", baseURL)
	}

	c := &Client{
		baseURL:     u,
		httpClient:  &http.Client{Timeout: defaultTimeout},
		tokenHeader: defaultTokenHeader,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// List fetches every label.
func (c *Client) List(ctx context.Context) ([]*models.Label, error) {
	var labels []*models.Label
	if err := c.do(ctx, http.MethodGet, labelsPath, nil, &labels); err != nil {
		return nil, err
	}
	return labels, nil
}

// Create posts a new label and returns the stored copy.
func (c *Client) Create(ctx context.Context, label *models.Label) (*models.Label, error) {
	var created models.Label
	if err := c.do(ctx, http.MethodPost, labelsPath, label, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update replaces an existing label and returns the stored copy.
func (c *Client) Update(ctx context.Context, label *models.Label) (*models.Label, error) {
	if label.IsNew() {
		return nil, models.ErrInvalidLabelID
	}
	var updated models.Label
	if err := c.do(ctx, http.MethodPut, labelPath(label.ID), label, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a label by ID.
func (c *Client) Delete(ctx context.Context, id int) error {
	if id <= 0 {
		return models.ErrInvalidLabelID
	}
	return c.do(ctx, http.MethodDelete, labelPath(id), nil, nil)
}

func labelPath(id int) string {
	return labelsPath + "/" + strconv.Itoa(id)
}

// do performs one request. A nil out discards the response body.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	endpoint := c.baseURL.JoinPath(path)
	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, requestID)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set(c.tokenHeader, c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("label api request failed",
			"method", method, "path", path, "request_id", requestID, "error", err)
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			c.logger.Error("error closing response body", "error", closeErr)
		}
	}()

	c.logger.Debug("label api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", requestID,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeError(resp)
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %w", ErrMalformedResponse, method, path, err)
	}
	return nil
}

// decodeError reads a failed response into an *Error. Bodies that are not a
// JSON object leave Data empty.
func decodeError(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(bytes.TrimSpace(raw)) == 0 {
		return apiErr
	}

	var data ErrorData
	if json.Unmarshal(raw, &data) == nil {
		apiErr.Data = data
	}
	return apiErr
}
