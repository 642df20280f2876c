package api

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"time"
)

// retryAPI implements automatic retry logic with exponential backoff.
// This handles transient failures by retrying requests with increasing
// delays while respecting context cancellation.
type retryAPI struct {
	next       CoreAPI
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
}

// RetryMiddleware creates middleware that automatically retries failed
// requests with exponential backoff. Only GET requests are retried;
// mutating requests such as review submissions must not be replayed, a
// duplicate submission would trip the backend's cooldown check.
func RetryMiddleware(maxRetries int, baseDelay, maxDelay time.Duration) Middleware {
	return func(next CoreAPI) CoreAPI {
		return &retryAPI{
			next:       next,
			maxRetries: maxRetries,
			baseDelay:  baseDelay,
			maxDelay:   maxDelay,
		}
	}
}

// Do executes the request with automatic retry logic.
// Non-retryable failures, validation, auth, conflict and cooldown
// rejections among them, propagate immediately.
func (r *retryAPI) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Method != http.MethodGet {
		return r.next.Do(ctx, req)
	}

	var lastErr error

	for attempt := 0; attempt <= r.maxRetries; attempt++ {
		resp, err := r.next.Do(ctx, req)
		if err == nil {
			return resp, nil
		}

		lastErr = err

		if !isRetryable(err) || ctx.Err() != nil {
			return nil, err
		}

		if attempt == r.maxRetries {
			break
		}

		delay := r.calculateDelay(attempt)

		select {
		case <-ctx.Done():
			return nil, classifyContextError(ctx.Err())
		case <-time.After(delay):
			// Continue to next attempt.
		}
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", r.maxRetries+1, lastErr)
}

func (r *retryAPI) calculateDelay(attempt int) time.Duration {
	// Exponential backoff with jitter.
	if attempt < 0 {
		attempt = 0
	}
	if attempt > 30 {
		attempt = 30
	}
	// #nosec G115 - attempt is bounded between 0 and 30
	multiplier := 1 << uint(attempt)
	delay := time.Duration(float64(r.baseDelay) * float64(multiplier))

	// Add jitter (±25%)
	// #nosec G404 - Using weak RNG is acceptable for jitter calculation
	jitter := time.Duration(rand.Float64() * float64(delay) * 0.5)
	delay = delay + jitter - (delay / 4)

	if delay > r.maxDelay {
		delay = r.maxDelay
	}

	return delay
}

// isRetryable reports whether the failure is worth another attempt.
func isRetryable(err error) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.IsRetryable()
	}
	return false
}
