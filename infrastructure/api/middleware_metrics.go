package api

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/uongozi/uongozi/internal/ports"
)

// metricsAPI implements request metrics collection.
// This provides observability into request patterns, latency and error
// rates for operational monitoring.
type metricsAPI struct {
	next      CoreAPI
	collector ports.MetricsCollector
}

// MetricsMiddleware creates middleware that collects request metrics.
// This enables monitoring of backend usage and performance per endpoint.
func MetricsMiddleware(collector ports.MetricsCollector) Middleware {
	return func(next CoreAPI) CoreAPI {
		return &metricsAPI{
			next:      next,
			collector: collector,
		}
	}
}

// Do executes the request while collecting latency, status and error
// classification metrics.
func (m *metricsAPI) Do(ctx context.Context, req *Request) (*Response, error) {
	start := time.Now()
	resp, err := m.next.Do(ctx, req)

	labels := map[string]string{
		"method": req.Method,
		"path":   req.Path,
		"status": "success",
	}

	if err != nil {
		labels["status"] = classifyForMetrics(ctx, err)
	} else {
		labels["code"] = strconv.Itoa(resp.StatusCode)
	}

	if m.collector != nil {
		m.collector.RecordHistogram("backend_request_duration_seconds", time.Since(start).Seconds(), labels)
		m.collector.RecordCounter("backend_requests_total", 1, labels)
	}

	return resp, err
}

// classifyForMetrics maps a failure to a stable status label.
func classifyForMetrics(ctx context.Context, err error) string {
	if ctx.Err() == context.DeadlineExceeded {
		return "timeout"
	}

	var ce *CooldownError
	if errors.As(err, &ce) {
		return "cooldown"
	}

	var ae *APIError
	if errors.As(err, &ae) {
		if s := ae.typeString(); s != "" {
			return s
		}
	}
	return "error"
}
