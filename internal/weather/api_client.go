package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Client implements Fetcher against the dashboard backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	opts       Options
	breaker    *gobreaker.CircuitBreaker
	logger     *zap.Logger
}

// NewClient creates a backend client rooted at baseURL
func NewClient(baseURL string, opts Options, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
		userAgent: "WeatherTerminal/1.0 (github.com/ngmaloney/weather-terminal)",
		opts:      opts,
		breaker:   newBreaker("weather-api", opts.BreakerTimeout, logger),
		logger:    logger,
	}
}

// CurrentByCity retrieves current conditions for a place name
func (c *Client) CurrentByCity(ctx context.Context, city string) (*models.WeatherSnapshot, error) {
	reqURL := fmt.Sprintf("%s/api/weather/city/%s", c.baseURL, url.PathEscape(city))
	return c.fetchCurrent(ctx, reqURL, msgFetchFailed)
}

// CurrentByCoords retrieves current conditions for a position
func (c *Client) CurrentByCoords(ctx context.Context, lat, lon float64) (*models.WeatherSnapshot, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))

	reqURL := fmt.Sprintf("%s/api/weather/coordinates?%s", c.baseURL, params.Encode())
	return c.fetchCurrent(ctx, reqURL, msgCoordsFetchFailed)
}

// Forecast retrieves the short-term forecast for a place name
func (c *Client) Forecast(ctx context.Context, city string) (*models.ForecastSnapshot, error) {
	reqURL := fmt.Sprintf("%s/api/forecast/%s", c.baseURL, url.PathEscape(city))

	resp, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForecastUnavailable, err)
	}
	if !resp.ok() {
		return nil, fmt.Errorf("%w: %w", ErrForecastUnavailable, newHTTPError(resp, msgFetchFailed))
	}

	forecast, err := parseForecast(resp.body, city)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForecastUnavailable, err)
	}
	return forecast, nil
}

func (c *Client) fetchCurrent(ctx context.Context, reqURL, fallback string) (*models.WeatherSnapshot, error) {
	resp, err := c.get(ctx, reqURL)
	if err != nil {
		return nil, fmt.Errorf("fetching weather: %w", err)
	}
	if !resp.ok() {
		return nil, newHTTPError(resp, fallback)
	}
	return parseCurrent(resp.body)
}

// newHTTPError builds an HTTPError, preferring the backend's "error" field
func newHTTPError(resp *response, fallback string) *HTTPError {
	var body errorResponse
	if err := json.Unmarshal(resp.body, &body); err == nil && body.Error != "" {
		return &HTTPError{Status: resp.status, Message: body.Error}
	}
	return &HTTPError{Status: resp.status, Message: fallback}
}
