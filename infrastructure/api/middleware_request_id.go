package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// requestIDHeader is the correlation header the backend echoes into its
// own logs.
const requestIDHeader = "X-Request-Id"

// requestIDAPI stamps every outgoing request with a fresh correlation
// identifier so client and backend logs can be joined.
type requestIDAPI struct {
	next CoreAPI
}

// RequestIDMiddleware creates middleware that assigns each request a
// unique identifier. Requests that already carry one keep it, so a
// retried request is traceable as a single logical operation when the
// retry layer sits outside this one.
func RequestIDMiddleware() Middleware {
	return func(next CoreAPI) CoreAPI {
		return &requestIDAPI{next: next}
	}
}

// Do stamps the correlation header and forwards the request.
func (r *requestIDAPI) Do(ctx context.Context, req *Request) (*Response, error) {
	if req.Header == nil {
		req.Header = make(http.Header)
	}
	if req.Header.Get(requestIDHeader) == "" {
		req.Header.Set(requestIDHeader, uuid.NewString())
	}
	return r.next.Do(ctx, req)
}
