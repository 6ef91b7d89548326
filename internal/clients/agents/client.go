// Package agents provides a client for the multi-agent analysis service
package agents

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/rathishpadman/stockpulse/internal/common"
	"github.com/rathishpadman/stockpulse/internal/interfaces"
	"github.com/rathishpadman/stockpulse/internal/models"
)

const (
	DefaultBaseURL   = "http://localhost:8090"
	DefaultTimeout   = 2 * time.Minute
	DefaultRateLimit = 5 // requests per second
)

// ErrTimeout marks an outbound call that exceeded the fixed deadline.
// Endpoints translate it to 504 rather than a generic failure.
var ErrTimeout = errors.New("agent service timeout")

// StatusError carries a non-success downstream response so the endpoint
// can pass status and body through verbatim.
type StatusError struct {
	StatusCode int
	Body       []byte
	Path       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("agent service error (status: %d, path: %s)", e.StatusCode, e.Path)
}

// analysisPaths maps each analysis type to its fixed downstream path.
var analysisPaths = map[string]string{
	models.AnalysisWeekly:      "/api/analysis/weekly-wrap",
	models.AnalysisMonthly:     "/api/analysis/monthly-wrap",
	models.AnalysisSeasonality: "/api/analysis/seasonality",
}

// Client implements the AgentsClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
	timeout    time.Duration
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the per-call deadline
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// NewClient creates a new agents client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:     common.NewSilentLogger(),
		timeout:    DefaultTimeout,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// FetchAnalysis performs exactly one bounded GET against the downstream
// path for the analysis type. No retry and no caching at this layer.
func (c *Client) FetchAnalysis(ctx context.Context, analysisType, ticker, sector string) (json.RawMessage, error) {
	path, ok := analysisPaths[analysisType]
	if !ok {
		return nil, fmt.Errorf("no downstream path for analysis type %q", analysisType)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	query := url.Values{}
	if ticker != "" {
		query.Set("ticker", ticker)
	}
	if sector != "" {
		query.Set("sector", sector)
	}
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("path", path).Str("type", analysisType).Msg("Agent service request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, ErrTimeout
		}
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       body,
			Path:       path,
		}
	}

	return json.RawMessage(body), nil
}

// isTimeout reports whether err is a deadline expiry, either from the
// context or from the transport.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Timeout()
	}
	return false
}

// Ensure Client implements AgentsClient
var _ interfaces.AgentsClient = (*Client)(nil)
