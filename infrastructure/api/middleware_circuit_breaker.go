package api

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrCircuitOpen indicates that the circuit breaker rejected a request.
// This error is returned when the circuit is open and prevents
// requests from reaching the backend.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// CircuitBreakerState represents the current state of a circuit breaker.
type CircuitBreakerState int

// Circuit breaker states.
const (
	// StateClosed allows all requests to pass through normally.
	// This is the default state when the backend is healthy.
	StateClosed CircuitBreakerState = iota

	// StateOpen rejects all requests immediately to prevent cascading failures.
	// The circuit enters this state after too many consecutive failures.
	StateOpen

	// StateHalfOpen allows limited requests to test backend recovery.
	// The circuit transitions to this state after the cooldown period expires.
	StateHalfOpen
)

// CircuitBreaker tracks consecutive transient failures and opens when
// they exceed the threshold, then tests recovery through half-open
// states.
type CircuitBreaker struct {
	mu               sync.RWMutex
	state            CircuitBreakerState
	failureCount     int
	maxFailures      int
	cooldownDuration time.Duration
	lastFailure      time.Time
}

// NewCircuitBreaker creates a circuit breaker with the specified
// configuration. The circuit opens after maxFailures consecutive
// transient errors and stays open for cooldownDuration before testing
// recovery.
func NewCircuitBreaker(maxFailures int, cooldownDuration time.Duration) *CircuitBreaker {
	return &CircuitBreaker{
		state:            StateClosed,
		maxFailures:      maxFailures,
		cooldownDuration: cooldownDuration,
	}
}

// Call executes a function through the circuit breaker.
// If the circuit is open, this returns ErrCircuitOpen immediately.
// Only transient failures count against the threshold; validation,
// auth, conflict and cooldown rejections are the backend working as
// intended and must not trip the circuit.
func (cb *CircuitBreaker) Call(fn func() error) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	switch cb.state {
	case StateOpen:
		if time.Since(cb.lastFailure) < cb.cooldownDuration {
			return ErrCircuitOpen
		}
		cb.state = StateHalfOpen
		fallthrough
	case StateHalfOpen:
		err := fn()
		if err != nil && countsAsFailure(err) {
			cb.failureCount++
			cb.lastFailure = time.Now()
			cb.state = StateOpen
			return err
		}
		cb.failureCount = 0
		cb.state = StateClosed
		return err
	case StateClosed:
		err := fn()
		if err != nil && countsAsFailure(err) {
			cb.failureCount++
			cb.lastFailure = time.Now()
			if cb.failureCount >= cb.maxFailures {
				cb.state = StateOpen
			}
			return err
		}
		cb.failureCount = 0
		return err
	}
	return nil
}

// GetState returns the current circuit breaker state.
func (cb *CircuitBreaker) GetState() CircuitBreakerState {
	cb.mu.RLock()
	defer cb.mu.RUnlock()
	return cb.state
}

// countsAsFailure reports whether an error indicates backend ill
// health. Client-side mistakes and deliberate rejections do not.
func countsAsFailure(err error) bool {
	var ae *APIError
	if errors.As(err, &ae) {
		return ae.IsRetryable()
	}
	var ce *CooldownError
	return !errors.As(err, &ce)
}

// circuitBreakedAPI routes every request through a shared circuit
// breaker so a down backend fails fast instead of stacking timeouts.
type circuitBreakedAPI struct {
	next CoreAPI
	cb   *CircuitBreaker
}

// CircuitBreakerMiddleware creates middleware that implements the
// circuit breaker pattern. The circuit opens after maxFailures
// consecutive transient errors and stays open for the cooldown duration
// before attempting recovery.
func CircuitBreakerMiddleware(maxFailures int, cooldown time.Duration) Middleware {
	cb := NewCircuitBreaker(maxFailures, cooldown)
	return func(next CoreAPI) CoreAPI {
		return &circuitBreakedAPI{next: next, cb: cb}
	}
}

// Do executes the request through the circuit breaker.
// If the circuit is open, this fails immediately without calling the
// backend.
func (c *circuitBreakedAPI) Do(ctx context.Context, req *Request) (*Response, error) {
	var resp *Response

	err := c.cb.Call(func() error {
		var err error
		resp, err = c.next.Do(ctx, req)
		return err
	})
	if err != nil {
		return nil, err
	}
	return resp, nil
}
