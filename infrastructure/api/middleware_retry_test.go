package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getRequest() *Request {
	return &Request{Method: http.MethodGet, Path: "/leaders/getLeaders"}
}

func TestRetryMiddleware_SuccessOnFirstAttempt(t *testing.T) {
	mock := NewMockCoreAPI()
	middleware := RetryMiddleware(3, 100*time.Millisecond, 1*time.Second)
	wrapped := middleware(mock)

	resp, err := wrapped.Do(context.Background(), getRequest())

	require.NoError(t, err, "request should succeed")
	assert.Equal(t, 200, resp.StatusCode, "status should match")
	assert.Equal(t, 1, mock.GetCallCount(), "should only call once on success")
}

func TestRetryMiddleware_RetriesOnTransientError(t *testing.T) {
	// Fails twice with a retryable server error, then succeeds.
	mock := NewMockCoreAPI()
	mock.FailUntilAttempt = 2
	middleware := RetryMiddleware(3, 10*time.Millisecond, 1*time.Second)
	wrapped := middleware(mock)

	resp, err := wrapped.Do(context.Background(), getRequest())

	require.NoError(t, err, "request should eventually succeed")
	assert.Equal(t, 200, resp.StatusCode, "status should match")
	assert.Equal(t, 3, mock.GetCallCount(), "should retry until success")
}

func TestRetryMiddleware_FailsAfterMaxRetries(t *testing.T) {
	mock := NewMockCoreAPI()
	mock.Error = &APIError{Type: ErrorTypeServer, StatusCode: 500, Message: "persistent error"}
	middleware := RetryMiddleware(2, 10*time.Millisecond, 1*time.Second)
	wrapped := middleware(mock)

	_, err := wrapped.Do(context.Background(), getRequest())

	require.Error(t, err, "request should fail")
	assert.Contains(t, err.Error(), "request failed after 3 attempts", "error should indicate retry exhaustion")
	assert.Contains(t, err.Error(), "persistent error", "error should contain original error")
	assert.Equal(t, 3, mock.GetCallCount(), "should attempt max retries + 1")
}

func TestRetryMiddleware_DoesNotRetryMutatingRequests(t *testing.T) {
	mock := NewMockCoreAPI()
	mock.Error = &APIError{Type: ErrorTypeServer, StatusCode: 500, Message: "flaky"}
	middleware := RetryMiddleware(3, 10*time.Millisecond, 1*time.Second)
	wrapped := middleware(mock)

	_, err := wrapped.Do(context.Background(), &Request{Method: http.MethodPost, Path: "/reviews"})

	require.Error(t, err, "request should fail")
	assert.Equal(t, 1, mock.GetCallCount(), "mutating requests must not be replayed")
}

func TestRetryMiddleware_DoesNotRetryNonRetryableErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{
			name: "validation rejection",
			err:  &APIError{Type: ErrorTypeValidation, StatusCode: 400, Message: "bad payload"},
		},
		{
			name: "auth rejection",
			err:  &APIError{Type: ErrorTypeAuthentication, StatusCode: 401, Message: "token expired"},
		},
		{
			name: "cooldown rejection",
			err:  &CooldownError{RetryAfter: time.Now().AddDate(0, 3, 0)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockCoreAPI()
			mock.Error = tt.err
			middleware := RetryMiddleware(3, 10*time.Millisecond, 1*time.Second)
			wrapped := middleware(mock)

			_, err := wrapped.Do(context.Background(), getRequest())

			require.Error(t, err, "request should fail")
			assert.Equal(t, 1, mock.GetCallCount(), "should not retry")
		})
	}
}

func TestRetryMiddleware_RespectsContextCancellation(t *testing.T) {
	mock := NewMockCoreAPI()
	mock.Error = &APIError{Type: ErrorTypeServer, StatusCode: 500, Message: "slow error"}
	mock.ResponseDelay = 50 * time.Millisecond
	middleware := RetryMiddleware(5, 10*time.Millisecond, 1*time.Second)
	wrapped := middleware(mock)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	_, err := wrapped.Do(ctx, getRequest())

	require.Error(t, err, "request should fail")
	assert.Less(t, mock.GetCallCount(), 5, "should stop retrying on context cancellation")
}

func TestRetryMiddleware_ExponentialBackoff(t *testing.T) {
	mock := NewMockCoreAPI()
	mock.FailUntilAttempt = 3
	middleware := RetryMiddleware(5, 10*time.Millisecond, 1*time.Second)
	wrapped := middleware(mock)

	_, err := wrapped.Do(context.Background(), getRequest())

	require.NoError(t, err, "request should eventually succeed")
	assert.Equal(t, 4, mock.GetCallCount(), "should make expected number of attempts")

	delay1 := mock.GetTimeBetweenCalls(0, 1)
	delay2 := mock.GetTimeBetweenCalls(1, 2)
	delay3 := mock.GetTimeBetweenCalls(2, 3)

	require.NotNil(t, delay1, "should have delay between first retry")
	require.NotNil(t, delay2, "should have delay between second retry")
	require.NotNil(t, delay3, "should have delay between third retry")

	// Each delay should grow relative to the previous, accounting for jitter.
	assert.Greater(t, delay2.Milliseconds(), delay1.Milliseconds()/2,
		"second delay should be larger than half of first delay")
	assert.Greater(t, delay3.Milliseconds(), delay2.Milliseconds()/2,
		"third delay should be larger than half of second delay")
}

func TestRetryMiddleware_CalculateDelayEdgeCases(t *testing.T) {
	r := &retryAPI{
		baseDelay: 10 * time.Millisecond,
		maxDelay:  1 * time.Second,
	}

	tests := []struct {
		name    string
		attempt int
	}{
		{"negative attempt", -1},
		{"zero attempt", 0},
		{"normal attempt", 5},
		{"very large attempt", 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			delay := r.calculateDelay(tt.attempt)
			assert.Greater(t, delay, 0*time.Millisecond, "delay should be positive")
			assert.LessOrEqual(t, delay, r.maxDelay, "delay should not exceed max delay")
		})
	}
}
