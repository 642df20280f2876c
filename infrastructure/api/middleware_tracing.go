package api

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// tracedAPI implements distributed tracing for request observability.
// Each backend call becomes an OpenTelemetry span carrying the endpoint
// and outcome.
type tracedAPI struct {
	next        CoreAPI
	serviceName string
}

// TracingMiddleware creates middleware that wraps every backend call in
// an OpenTelemetry span for debugging and performance analysis.
func TracingMiddleware(serviceName string) Middleware {
	return func(next CoreAPI) CoreAPI {
		return &tracedAPI{
			next:        next,
			serviceName: serviceName,
		}
	}
}

// Do executes the request within a trace span, recording the endpoint,
// response status and any failure.
func (t *tracedAPI) Do(ctx context.Context, req *Request) (*Response, error) {
	tracer := otel.Tracer("backend-client")
	ctx, span := tracer.Start(ctx, "backend.request",
		trace.WithAttributes(
			attribute.String("service.name", t.serviceName),
			attribute.String("http.method", req.Method),
			attribute.String("http.path", req.Path),
		),
	)
	defer span.End()

	resp, err := t.next.Do(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	span.SetStatus(codes.Ok, "")
	return resp, nil
}
