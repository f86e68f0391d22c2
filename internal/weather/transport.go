package weather

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// Options tunes the HTTP transport
type Options struct {
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration
	Multiplier     float64
	BreakerTimeout time.Duration
}

// DefaultOptions returns the transport settings used when none are configured
func DefaultOptions() Options {
	return Options{
		Timeout:        10 * time.Second,
		MaxRetries:     1,
		RetryDelay:     500 * time.Millisecond,
		Multiplier:     2,
		BreakerTimeout: 30 * time.Second,
	}
}

// response is a fully-read HTTP response
type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool {
	return r.status >= 200 && r.status < 300
}

// retryable reports whether another attempt could change the outcome
func (r *response) retryable() bool {
	return r.status >= 500 || r.status == http.StatusTooManyRequests
}

func newBreaker(name string, timeout time.Duration, logger *zap.Logger) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("Circuit breaker state changed",
				zap.String("client", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()))
		},
	})
}

// get performs a GET through the circuit breaker. Any response that was
// received is returned, including 4xx/5xx; err is set only when no usable
// response exists.
func (c *Client) get(ctx context.Context, url string) (*response, error) {
	var resp *response

	_, err := c.breaker.Execute(func() (interface{}, error) {
		r, err := c.getWithRetry(ctx, url)
		if err != nil {
			return nil, err
		}
		resp = r
		// Client errors are the caller's problem, not a sign of an unhealthy backend
		if r.retryable() {
			return nil, fmt.Errorf("HTTP %d", r.status)
		}
		return nil, nil
	})

	if resp != nil {
		return resp, nil
	}
	return nil, err
}

func (c *Client) getWithRetry(ctx context.Context, url string) (*response, error) {
	var lastErr error
	var lastResp *response
	requestID := uuid.NewString()

	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(float64(c.opts.RetryDelay) * math.Pow(c.opts.Multiplier, float64(attempt-1)))
			c.logger.Debug("Retrying request",
				zap.String("url", url),
				zap.String("request_id", requestID),
				zap.Int("attempt", attempt),
				zap.Duration("delay", delay))

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		resp, err := c.doGet(ctx, url, requestID)
		if err != nil {
			lastErr = err
			c.logger.Warn("HTTP request failed",
				zap.String("url", url),
				zap.String("request_id", requestID),
				zap.Int("attempt", attempt),
				zap.Error(err))
			if ctx.Err() != nil {
				return nil, err
			}
			continue
		}

		c.logger.Debug("Request complete",
			zap.String("url", url),
			zap.String("request_id", requestID),
			zap.Int("status", resp.status),
			zap.Int("body_size", len(resp.body)))

		lastResp = resp
		if !resp.retryable() {
			return resp, nil
		}
	}

	if lastResp != nil {
		return lastResp, nil
	}
	return nil, fmt.Errorf("max retries exceeded, last error: %w", lastErr)
}

func (c *Client) doGet(ctx context.Context, url, requestID string) (*response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	return &response{status: resp.StatusCode, body: body}, nil
}
