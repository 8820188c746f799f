package worldbank

// HTTP client for the World Bank indicator download API
// This file is the transport layer - it performs the single CSV download
// and knows nothing about parsing or fallbacks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"popchart/internal/infra/log"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	// IndicatorCSVURL is the total population indicator download endpoint.
	IndicatorCSVURL = "http://api.worldbank.org/v2/en/indicator/SP.POP.TOTL?downloadformat=csv"

	// DefaultRequestTimeout bounds the one download attempt.
	DefaultRequestTimeout = 10 * time.Second

	// DefaultMaxResponseSize caps the downloaded body (20MB).
	DefaultMaxResponseSize = 20 * 1024 * 1024
)

// Client downloads the population indicator CSV. One instance is safe for
// concurrent use; the limiter and breaker only matter when a client is
// shared across many runs (tests, long-lived callers).
type Client struct {
	indicatorURL    string
	httpClient      *http.Client
	rateLimiter     *rate.Limiter
	circuitBreaker  *gobreaker.CircuitBreaker
	maxResponseSize int64
}

// NewClient builds a client for the given indicator URL. Zero values fall
// back to the package defaults.
func NewClient(indicatorURL string, timeout time.Duration, maxResponseSize int64) *Client {
	if indicatorURL == "" {
		indicatorURL = IndicatorCSVURL
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if maxResponseSize <= 0 {
		maxResponseSize = DefaultMaxResponseSize
	}

	rateLimiter := rate.NewLimiter(rate.Limit(1), 2)

	circuitBreaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "WorldBankAPI",
		MaxRequests: 1,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 2
		},
	})

	return &Client{
		indicatorURL:    indicatorURL,
		rateLimiter:     rateLimiter,
		circuitBreaker:  circuitBreaker,
		maxResponseSize: maxResponseSize,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DisableKeepAlives: false,
				MaxIdleConns:      10,
				IdleConnTimeout:   90 * time.Second,
			},
		},
	}
}

// FetchCSV performs exactly one GET against the indicator URL and returns
// the raw body. There is no retry: a failed attempt surfaces as an error
// and the caller decides what to do with it.
func (c *Client) FetchCSV(ctx context.Context) ([]byte, error) {
	requestID := log.GenerateRequestID()
	startTime := time.Now()

	if ctx.Err() != nil {
		return nil, fmt.Errorf("context cancelled: %w", ctx.Err())
	}

	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter wait failed: %w", err)
		}
	}

	var respBody []byte
	var err error

	if c.circuitBreaker != nil {
		_, err = c.circuitBreaker.Execute(func() (interface{}, error) {
			body, err := c.fetchWithContext(ctx, requestID, startTime)
			if err != nil {
				return nil, err
			}
			respBody = body
			return body, nil
		})
		if err != nil {
			return nil, err
		}
	} else {
		respBody, err = c.fetchWithContext(ctx, requestID, startTime)
		if err != nil {
			return nil, err
		}
	}

	return respBody, nil
}

func (c *Client) fetchWithContext(ctx context.Context, requestID string, startTime time.Time) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.indicatorURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", "popchart/1.0")
	req.Header.Set("Accept", "text/csv, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	log.LogRequest(requestID, "GET", c.indicatorURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		duration := time.Since(startTime).Milliseconds()
		log.LogResponse(requestID, 0, duration, zap.String("endpoint", c.indicatorURL), zap.Error(err))
		return nil, fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	limitedReader := io.LimitReader(resp.Body, c.maxResponseSize)

	respBody, err := io.ReadAll(limitedReader)
	if err != nil {
		duration := time.Since(startTime).Milliseconds()
		log.LogResponse(requestID, resp.StatusCode, duration, zap.String("endpoint", c.indicatorURL), zap.Error(err))
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	duration := time.Since(startTime).Milliseconds()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.LogResponse(requestID, resp.StatusCode, duration, zap.String("endpoint", c.indicatorURL), zap.String("error", "API error response received"))
		return nil, fmt.Errorf("World Bank API error (%d)", resp.StatusCode)
	}

	log.LogResponse(requestID, resp.StatusCode, duration, zap.String("endpoint", c.indicatorURL), zap.Int("body_bytes", len(respBody)))

	return respBody, nil
}
