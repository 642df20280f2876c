package api

import (
	"context"
	"sync"
	"time"
)

// MockCoreAPI provides a configurable mock implementation of CoreAPI
// for testing. It allows precise control over response behavior, timing
// and error conditions to facilitate comprehensive middleware testing.
type MockCoreAPI struct {
	mu sync.Mutex

	// Response configuration
	Response      *Response
	Error         error
	ResponseDelay time.Duration

	// FailUntilAttempt fails the first N calls, then succeeds.
	FailUntilAttempt int

	// Tracking
	CallCount      int
	LastRequest    *Request
	Requests       []*Request
	CallTimestamps []time.Time
}

// NewMockCoreAPI creates a new mock CoreAPI with default successful
// behavior.
func NewMockCoreAPI() *MockCoreAPI {
	return &MockCoreAPI{
		Response:       &Response{StatusCode: 200, Body: []byte(`{}`)},
		Requests:       make([]*Request, 0),
		CallTimestamps: make([]time.Time, 0),
	}
}

// Do implements the CoreAPI interface with configurable behavior.
func (m *MockCoreAPI) Do(ctx context.Context, req *Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.CallCount++
	m.LastRequest = req
	m.Requests = append(m.Requests, req)
	m.CallTimestamps = append(m.CallTimestamps, time.Now())

	if m.ResponseDelay > 0 {
		select {
		case <-time.After(m.ResponseDelay):
		case <-ctx.Done():
			return nil, classifyContextError(ctx.Err())
		}
	}

	if m.FailUntilAttempt > 0 && m.CallCount <= m.FailUntilAttempt {
		if m.Error != nil {
			return nil, m.Error
		}
		return nil, &APIError{Type: ErrorTypeServer, StatusCode: 503, Message: "simulated failure"}
	}

	if m.Error != nil {
		return nil, m.Error
	}

	return m.Response, nil
}

// GetCallCount returns the number of times Do was called.
func (m *MockCoreAPI) GetCallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// GetTimeBetweenCalls calculates the duration between consecutive
// calls. Returns nil if either call index is out of range.
func (m *MockCoreAPI) GetTimeBetweenCalls(call1, call2 int) *time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()

	if call1 < 0 || call2 < 0 || call1 >= len(m.CallTimestamps) || call2 >= len(m.CallTimestamps) {
		return nil
	}

	duration := m.CallTimestamps[call2].Sub(m.CallTimestamps[call1])
	return &duration
}
