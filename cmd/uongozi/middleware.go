package main

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/uongozi/uongozi/infrastructure/api"
	"github.com/uongozi/uongozi/infrastructure/middleware"
	"github.com/uongozi/uongozi/internal/application"
)

// buildMiddleware assembles the backend client's middleware chain from
// configuration. Order matters: the request id must survive retries, so
// it sits outside the retry layer; rate limiting paces every attempt.
func buildMiddleware(cfg *application.Config) []api.Middleware {
	chain := []api.Middleware{
		api.RequestIDMiddleware(),
		api.TracingMiddleware("uongozi-cli"),
		api.MetricsMiddleware(middleware.NewPrometheusMetrics()),
	}

	if cfg.CircuitBreaker.MaxFailures > 0 {
		chain = append(chain, api.CircuitBreakerMiddleware(
			cfg.CircuitBreaker.MaxFailures,
			time.Duration(cfg.CircuitBreaker.CooldownSeconds)*time.Second,
		))
	}

	if cfg.Retry.MaxAttempts > 0 {
		chain = append(chain, api.RetryMiddleware(
			cfg.Retry.MaxAttempts,
			time.Duration(cfg.Retry.InitialWait)*time.Millisecond,
			time.Duration(cfg.Retry.MaxWait)*time.Millisecond,
		))
	}

	if cfg.RateLimit.RequestsPerSecond > 0 {
		chain = append(chain, api.RateLimitMiddleware(
			rate.Limit(cfg.RateLimit.RequestsPerSecond),
			cfg.RateLimit.Burst,
		))
	}

	return chain
}
