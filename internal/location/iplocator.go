package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/ngmaloney/weather-terminal/internal/models"
	"go.uber.org/zap"
)

const userAgent = "WeatherTerminal/1.0"

// IPLocator estimates the position from the machine's public IP address
// using an ip-api compatible endpoint.
type IPLocator struct {
	url        string
	httpClient *http.Client
	logger     *zap.Logger
	lastCall   time.Time
	mu         sync.Mutex
}

// NewIPLocator creates an IPLocator for the given endpoint
func NewIPLocator(url string, logger *zap.Logger) *IPLocator {
	return &IPLocator{
		url: url,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// ipResponse represents the ip-api JSON response
type ipResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	City    string  `json:"city"`
}

// Locate performs a single lookup
func (l *IPLocator) Locate(ctx context.Context) (models.Coordinates, error) {
	if err := l.wait(ctx); err != nil {
		return models.Coordinates{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.url, nil)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		if isTimeout(ctx, err) {
			return models.Coordinates{}, ErrLocationTimeout
		}
		return models.Coordinates{}, fmt.Errorf("%w: %v", ErrPositionUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return models.Coordinates{}, ErrPermissionDenied
	case resp.StatusCode != http.StatusOK:
		return models.Coordinates{}, fmt.Errorf("%w: status %d", ErrPositionUnavailable, resp.StatusCode)
	}

	var result ipResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: decoding response: %v", ErrPositionUnavailable, err)
	}

	if result.Status != "success" {
		msg := strings.ToLower(result.Message)
		if strings.Contains(msg, "denied") || strings.Contains(msg, "reserved") {
			return models.Coordinates{}, ErrPermissionDenied
		}
		return models.Coordinates{}, fmt.Errorf("%w: %s", ErrPositionUnavailable, result.Message)
	}

	l.logger.Debug("Located by IP",
		zap.String("city", result.City),
		zap.Float64("lat", result.Lat),
		zap.Float64("lon", result.Lon))

	return models.Coordinates{Latitude: result.Lat, Longitude: result.Lon}, nil
}

// wait reserves the next request slot. Free ip-api tiers allow roughly
// one request per second.
func (l *IPLocator) wait(ctx context.Context) error {
	l.mu.Lock()
	now := time.Now()
	var delay time.Duration
	if !l.lastCall.IsZero() {
		if next := l.lastCall.Add(time.Second); now.Before(next) {
			delay = next.Sub(now)
			now = next
		}
	}
	l.lastCall = now
	l.mu.Unlock()

	if delay == 0 {
		return nil
	}

	select {
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return ErrLocationTimeout
		}
		return fmt.Errorf("%w: %v", ErrPositionUnavailable, ctx.Err())
	case <-time.After(delay):
		return nil
	}
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}
