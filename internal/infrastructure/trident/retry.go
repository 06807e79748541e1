package trident

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"

	"github.com/DanielPopoola/trident-gateway/internal/config"
)

// RetryTransport re-sends a request that failed on the network or with a 5xx.
// With MaxRetries <= 1 it makes exactly one attempt.
type RetryTransport struct {
	inner      Transport
	baseDelay  time.Duration
	maxRetries int
}

func NewRetryTransport(inner Transport, cfg config.RetryConfig) *RetryTransport {
	maxRetries := cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &RetryTransport{
		inner:      inner,
		baseDelay:  cfg.BaseDelay,
		maxRetries: maxRetries,
	}
}

func (r *RetryTransport) Post(ctx context.Context, url string, body string, headers http.Header) (*RawResponse, error) {
	var lastErr error

	for attempt := 0; attempt < r.maxRetries; attempt++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		resp, err := r.inner.Post(ctx, url, body, headers)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) {
			return nil, err
		}

		if attempt < r.maxRetries-1 {
			if err := r.wait(ctx, attempt); err != nil {
				return nil, err
			}
		}
	}

	if r.maxRetries == 1 {
		return nil, lastErr
	}
	return nil, fmt.Errorf("maximum retries exceeded: %w", lastErr)
}

// Helper: to check retryable errors
func isRetryable(err error) bool {
	if errors.Is(err, context.Canceled) {
		return false
	}

	if transportErr, ok := IsTransportError(err); ok {
		return transportErr.IsRetryable()
	}

	return true
}

func (r *RetryTransport) wait(ctx context.Context, attempt int) error {
	timer := time.NewTimer(r.backoff(attempt))
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff calculation with exponential delay and jitter
func (r *RetryTransport) backoff(attempt int) time.Duration {
	if r.baseDelay <= 0 {
		return 0
	}

	base := r.baseDelay * time.Duration(1<<attempt)
	jitter := time.Duration(rand.Int63n(int64(r.baseDelay)))

	return base + jitter
}
