// Package featurable provides a client for the Featurable widget API
package featurable

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/evertonthomazi/go-google-reviews/internal/common"
	"github.com/evertonthomazi/go-google-reviews/internal/interfaces"
	"github.com/evertonthomazi/go-google-reviews/internal/models"
)

const (
	DefaultBaseURL   = "https://featurable.com/api/v1"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client implements the FeaturableClient interface
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
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

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Featurable client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Featurable API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("url", reqURL).Msg("Featurable API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// widgetResponse is the API response for a widget lookup
type widgetResponse struct {
	Success          bool             `json:"success"`
	Reviews          []reviewResponse `json:"reviews"`
	ProfileURL       string           `json:"profileUrl"`
	TotalReviewCount *int             `json:"totalReviewCount"`
	AverageRating    *float64         `json:"averageRating"`
}

type reviewResponse struct {
	Reviewer struct {
		DisplayName string `json:"displayName"`
		IsAnonymous bool   `json:"isAnonymous"`
	} `json:"reviewer"`
	Comment    string `json:"comment"`
	StarRating int    `json:"starRating"`
	CreateTime string `json:"createTime"`
}

// GetWidget retrieves the reviews and aggregate figures for a widget
func (c *Client) GetWidget(ctx context.Context, featurableID string) (*models.FeaturableWidget, error) {
	path := fmt.Sprintf("/widgets/%s", url.PathEscape(featurableID))

	var resp widgetResponse
	if err := c.get(ctx, path, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		return nil, fmt.Errorf("widget lookup for %q reported failure", featurableID)
	}

	widget := &models.FeaturableWidget{
		Reviews:          make([]models.Review, len(resp.Reviews)),
		ProfileURL:       resp.ProfileURL,
		TotalReviewCount: resp.TotalReviewCount,
		AverageRating:    resp.AverageRating,
	}

	for i, r := range resp.Reviews {
		createTime, _ := time.Parse(time.RFC3339, r.CreateTime)
		widget.Reviews[i] = models.Review{
			Reviewer: models.Reviewer{
				DisplayName: r.Reviewer.DisplayName,
				IsAnonymous: r.Reviewer.IsAnonymous,
			},
			Comment:    r.Comment,
			StarRating: r.StarRating,
			CreateTime: createTime,
		}
	}

	c.logger.Debug().
		Str("widget", featurableID).
		Int("reviews", len(widget.Reviews)).
		Msg("Featurable widget retrieved")

	return widget, nil
}

// Ensure Client implements FeaturableClient
var _ interfaces.FeaturableClient = (*Client)(nil)
