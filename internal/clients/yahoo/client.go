// Package yahoo provides a client for the Yahoo Finance chart API
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/Fazlur4471/portfolio-tracker/internal/common"
	"github.com/Fazlur4471/portfolio-tracker/internal/interfaces"
	"github.com/Fazlur4471/portfolio-tracker/internal/models"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// periodRanges maps the tracker's period names to Yahoo range parameters
var periodRanges = map[string]string{
	"1m": "1mo",
	"3m": "3mo",
	"6m": "6mo",
	"1y": "1y",
	"2y": "2y",
	"5y": "5y",
}

// Client implements the MarketClient interface
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

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a new Yahoo Finance client
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

// APIError represents an upstream API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yahoo API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "portfolio-tracker/"+common.GetVersion())

	c.logger.Debug().Str("url", c.baseURL+path).Msg("Yahoo API request")

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

// chartResponse mirrors the Yahoo v8 chart API envelope.
// Quote arrays use pointers because Yahoo emits null for halted sessions.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency           string  `json:"currency"`
				Symbol             string  `json:"symbol"`
				LongName           string  `json:"longName"`
				ShortName          string  `json:"shortName"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				PreviousClose      float64 `json:"chartPreviousClose"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*int64   `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// fetchChart retrieves and validates a chart payload for a ticker
func (c *Client) fetchChart(ctx context.Context, ticker, rangeParam, interval string) (*chartResponse, error) {
	params := url.Values{}
	params.Set("range", rangeParam)
	params.Set("interval", interval)

	path := fmt.Sprintf("/v8/finance/chart/%s", url.PathEscape(ticker))

	var resp chartResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart error for %s: %s", ticker, resp.Chart.Error.Description)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("no chart data for %s", ticker)
	}

	return &resp, nil
}

// GetQuote retrieves a live quote for a ticker
func (c *Client) GetQuote(ctx context.Context, ticker string) (*models.Quote, error) {
	resp, err := c.fetchChart(ctx, ticker, "1d", "1d")
	if err != nil {
		return nil, err
	}

	meta := resp.Chart.Result[0].Meta

	name := meta.LongName
	if name == "" {
		name = meta.ShortName
	}
	if name == "" {
		name = ticker
	}

	quote := &models.Quote{
		Ticker:   ticker,
		Price:    meta.RegularMarketPrice,
		Name:     name,
		Currency: meta.Currency,
	}

	if meta.PreviousClose > 0 {
		quote.Change = meta.RegularMarketPrice - meta.PreviousClose
		quote.ChangePct = quote.Change / meta.PreviousClose * 100
	}

	return quote, nil
}

// GetHistory retrieves a chronological price series for a ticker.
// Sessions with a null close are dropped.
func (c *Client) GetHistory(ctx context.Context, ticker string, period string) (*models.History, error) {
	rangeParam, ok := periodRanges[period]
	if !ok {
		return nil, fmt.Errorf("unsupported period %q", period)
	}

	// Weekly bars keep 5-year series at a manageable size
	interval := "1d"
	if period == "5y" {
		interval = "1wk"
	}

	resp, err := c.fetchChart(ctx, ticker, rangeParam, interval)
	if err != nil {
		return nil, err
	}

	result := resp.Chart.Result[0]
	if len(result.Indicators.Quote) == 0 {
		return nil, fmt.Errorf("no quote data for %s", ticker)
	}
	bars := result.Indicators.Quote[0]

	name := result.Meta.LongName
	if name == "" {
		name = result.Meta.ShortName
	}
	if name == "" {
		name = ticker
	}

	history := &models.History{
		Ticker:   ticker,
		Name:     name,
		Currency: result.Meta.Currency,
		Points:   make([]models.PricePoint, 0, len(result.Timestamp)),
	}

	deref := func(vals []*float64, i int) float64 {
		if i < len(vals) && vals[i] != nil {
			return *vals[i]
		}
		return 0
	}

	for i, ts := range result.Timestamp {
		if i >= len(bars.Close) || bars.Close[i] == nil {
			continue
		}
		var volume int64
		if i < len(bars.Volume) && bars.Volume[i] != nil {
			volume = *bars.Volume[i]
		}
		history.Points = append(history.Points, models.PricePoint{
			Date:   time.Unix(ts, 0).UTC(),
			Open:   deref(bars.Open, i),
			High:   deref(bars.High, i),
			Low:    deref(bars.Low, i),
			Close:  *bars.Close[i],
			Volume: volume,
		})
	}

	if len(history.Points) == 0 {
		return nil, fmt.Errorf("no usable price data for %s", ticker)
	}

	c.logger.Debug().Str("ticker", ticker).Int("points", len(history.Points)).Msg("History fetched")

	return history, nil
}

// Ensure Client implements MarketClient
var _ interfaces.MarketClient = (*Client)(nil)
