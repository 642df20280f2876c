package api

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

// rateLimitedAPI implements rate limiting using a token bucket
// algorithm. This keeps request pacing consistent and avoids tripping
// the backend's throttling.
type rateLimitedAPI struct {
	next    CoreAPI
	limiter *rate.Limiter
}

// RateLimitMiddleware creates middleware that enforces rate limiting
// using a token bucket algorithm. The limit parameter sets requests per
// second, while burst allows temporary spikes above the sustained rate.
func RateLimitMiddleware(limit rate.Limit, burst int) Middleware {
	limiter := rate.NewLimiter(limit, burst)

	return func(next CoreAPI) CoreAPI {
		return &rateLimitedAPI{
			next:    next,
			limiter: limiter,
		}
	}
}

// Do waits for rate limit permission before forwarding the request.
// This blocks the calling goroutine until a token is available.
func (r *rateLimitedAPI) Do(ctx context.Context, req *Request) (*Response, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	return r.next.Do(ctx, req)
}
