package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/uongozi/uongozi/internal/ports"
)

// Request describes one backend call before middleware and transport
// handling. Body, when non-nil, is JSON-encoded by the core.
type Request struct {
	// Method is the HTTP method.
	Method string

	// Path is the endpoint path relative to the configured base URL.
	Path string

	// Query holds optional URL query parameters.
	Query url.Values

	// Header carries request headers; middleware may add to it.
	Header http.Header

	// Body is the payload to JSON-encode, nil for no body.
	Body any
}

// Response is the decoded outcome of one backend call. Non-2xx statuses
// are already converted to errors by the core, so a Response always
// represents success.
type Response struct {
	// StatusCode is the HTTP status, always 2xx.
	StatusCode int

	// Body is the raw response payload.
	Body []byte
}

// CoreAPI is the minimal transport interface the middleware chain
// wraps. The core implementation speaks HTTP; test doubles substitute
// canned responses.
type CoreAPI interface {
	// Do executes the request and returns the successful response.
	// Failures, including non-2xx statuses, return a classified
	// *APIError (or *CooldownError for cooldown rejections).
	Do(ctx context.Context, req *Request) (*Response, error)
}

// Middleware wraps a CoreAPI to add cross-cutting functionality.
// This pattern allows composition of retries, rate limiting, metrics
// and tracing without modifying transport logic.
type Middleware func(CoreAPI) CoreAPI

// TokenSource supplies the current bearer token, or an empty string
// when no session exists. The store's session slice is the usual
// implementation.
type TokenSource func() string

// ClientConfig holds all configuration options for creating a backend
// client.
type ClientConfig struct {
	// BaseURL is the backend API root, e.g. "http://localhost:5000/api".
	BaseURL string

	// Token supplies the bearer token for authorized endpoints.
	// Nil means requests are sent unauthenticated.
	Token TokenSource

	// Timeout bounds each individual request. Zero applies
	// defaultRequestTimeout.
	Timeout time.Duration

	// HTTPClient overrides the transport, mainly for tests.
	HTTPClient *http.Client

	// Middleware is applied in the order specified; the first entry
	// is the outermost wrapper.
	Middleware []Middleware
}

const defaultRequestTimeout = 15 * time.Second

// Client implements the ports.AuthService, ports.LeaderService and
// ports.ReviewService interfaces over the assembled middleware chain.
type Client struct {
	core CoreAPI
}

// Compile-time verification that Client implements the service ports.
var (
	_ ports.AuthService   = (*Client)(nil)
	_ ports.LeaderService = (*Client)(nil)
	_ ports.ReviewService = (*Client)(nil)
)

// NewClient assembles the middleware chain around the HTTP core and
// validates configuration before returning a ready-to-use client.
func NewClient(config ClientConfig) (*Client, error) {
	if config.BaseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	var core CoreAPI = &httpCore{
		baseURL: strings.TrimRight(config.BaseURL, "/"),
		token:   config.Token,
		client:  httpClient,
		timeout: timeout,
	}

	// Apply middleware in reverse order so the first middleware is the
	// outermost.
	for i := len(config.Middleware) - 1; i >= 0; i-- {
		core = config.Middleware[i](core)
	}

	return &Client{core: core}, nil
}

// httpCore is the transport-level CoreAPI implementation.
type httpCore struct {
	baseURL string
	token   TokenSource
	client  *http.Client
	timeout time.Duration
}

// backendError is the error envelope the backend wraps failures in.
type backendError struct {
	Error        string `json:"error"`
	Message      string `json:"message"`
	NextEligible string `json:"next_eligible"`
}

func (c *httpCore) Do(ctx context.Context, req *Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var body io.Reader
	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	endpoint := c.baseURL + "/" + strings.TrimLeft(req.Path, "/")
	if len(req.Query) > 0 {
		endpoint += "?" + req.Query.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	for k, vs := range req.Header {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}
	if req.Body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if token := c.token(); token != "" {
			httpReq.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, classifyContextError(ctx.Err())
		}
		return nil, &APIError{Type: ErrorTypeNetwork, Message: "request failed", WrappedError: err}
	}
	defer func() { _ = resp.Body.Close() }()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Type: ErrorTypeNetwork, Message: "read response", WrappedError: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeFailure(resp.StatusCode, payload)
	}

	return &Response{StatusCode: resp.StatusCode, Body: payload}, nil
}

// decodeFailure converts a non-2xx response into the structured error
// the rest of the client handles. Cooldown rejections carry a
// next-eligible date and become a *CooldownError; everything else is
// classified by status code.
func decodeFailure(statusCode int, payload []byte) error {
	var be backendError
	_ = json.Unmarshal(payload, &be) // an unparseable body still classifies by status

	if be.Error == "cooldown_active" || be.NextEligible != "" {
		if retryAfter, err := time.Parse(time.RFC3339, be.NextEligible); err == nil {
			return &CooldownError{RetryAfter: retryAfter, Message: be.Message}
		}
	}

	message := be.Message
	if message == "" {
		message = strings.TrimSpace(string(payload))
	}
	return classifyHTTPError(statusCode, message, nil)
}

// get executes a GET against path and decodes the JSON payload into out.
func (c *Client) get(ctx context.Context, path string, out any) error {
	resp, err := c.core.Do(ctx, &Request{Method: http.MethodGet, Path: path})
	if err != nil {
		return err
	}
	return decodeBody(resp.Body, out)
}

// send executes a mutating request and, when out is non-nil, decodes
// the JSON payload into it.
func (c *Client) send(ctx context.Context, method, path string, in, out any) error {
	resp, err := c.core.Do(ctx, &Request{Method: method, Path: path, Body: in})
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decodeBody(resp.Body, out)
}

func decodeBody(payload []byte, out any) error {
	if len(payload) == 0 {
		return ErrEmptyResponse
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return &APIError{Type: ErrorTypeValidation, Message: "malformed response payload", WrappedError: err}
	}
	return nil
}
