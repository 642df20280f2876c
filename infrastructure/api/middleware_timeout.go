package api

import (
	"context"
	"time"
)

// timeoutAPI implements per-request timeout functionality on top of the
// core's own deadline, useful for bounding an entire retry sequence.
type timeoutAPI struct {
	next    CoreAPI
	timeout time.Duration
}

// TimeoutMiddleware creates middleware that enforces request timeouts.
// Placed outside RetryMiddleware it caps the whole retry sequence;
// placed inside it caps each individual attempt.
func TimeoutMiddleware(timeout time.Duration) Middleware {
	return func(next CoreAPI) CoreAPI {
		return &timeoutAPI{
			next:    next,
			timeout: timeout,
		}
	}
}

// Do executes the request with a timeout context.
func (t *timeoutAPI) Do(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.next.Do(ctx, req)
}
