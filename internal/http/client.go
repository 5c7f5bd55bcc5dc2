// Package http implements the default fortie.Transport on top of a
// retrying HTTP client.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/fortie/internal/constants"
	"github.com/fivetwenty-io/fortie/pkg/fortie"
)

// Logger is the logging surface used by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Credentials are attached to every request as Fortnox auth headers.
type Credentials struct {
	AccessToken  string
	ClientSecret string
}

// Client is a retrying HTTP client that implements fortie.Transport.
type Client struct {
	httpClient  *retryablehttp.Client
	credentials *Credentials
	logger      Logger
	debug       bool
	userAgent   string
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithRetryConfig sets retry behavior. retryMax of zero disables retries.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// Request is a single outbound request.
type Request struct {
	Method  string
	URL     string
	Payload *fortie.Payload
	Headers map[string]string
}

// NewClient creates a new HTTP client. credentials may be nil.
func NewClient(credentials *Credentials, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	retryClient.Logger = nil
	// Hand the final response back instead of a "giving up" error so the
	// caller sees the real status and body.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		httpClient:  retryClient,
		credentials: credentials,
		userAgent:   constants.DefaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient.RequestLogHook = client.logRetry

	return client
}

// Do executes a request. For a non-2xx status both the response and a
// *fortie.TransportError are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*fortie.Response, error) {
	var rawBody interface{}

	contentType := ""

	if req.Payload != nil && req.Payload.Body != nil {
		rawBody = req.Payload.Body
		contentType = req.Payload.ContentType
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, req.URL, rawBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	httpReq.Header.Set("Accept", constants.ContentTypeJSON)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	if c.credentials != nil {
		if c.credentials.AccessToken != "" {
			httpReq.Header.Set(constants.HeaderAccessToken, c.credentials.AccessToken)
		}

		if c.credentials.ClientSecret != "" {
			httpReq.Header.Set(constants.HeaderClientSecret, c.credentials.ClientSecret)
		}
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    req.URL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &fortie.TransportError{Method: req.Method, URL: req.URL, Err: err}
	}

	defer func() {
		_ = httpResp.Body.Close()
	}()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &fortie.TransportError{
			Method:     req.Method,
			URL:        req.URL,
			StatusCode: httpResp.StatusCode,
			Header:     httpResp.Header,
			Err:        fmt.Errorf("reading response body: %w", err),
		}
	}

	resp := &fortie.Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       body,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         req.URL,
			"status_code": resp.StatusCode,
			"bytes":       len(body),
		})
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, &fortie.TransportError{
			Method:     req.Method,
			URL:        req.URL,
			StatusCode: resp.StatusCode,
			Header:     resp.Header,
			Body:       body,
		}
	}

	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*fortie.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, URL: url})
}

// Post performs a POST request. payload may be nil.
func (c *Client) Post(ctx context.Context, url string, payload *fortie.Payload) (*fortie.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, URL: url, Payload: payload})
}

// Put performs a PUT request. payload may be nil.
func (c *Client) Put(ctx context.Context, url string, payload *fortie.Payload) (*fortie.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, URL: url, Payload: payload})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, url string) (*fortie.Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, URL: url})
}

func (c *Client) logRetry(_ retryablehttp.Logger, req *http.Request, attempt int) {
	if attempt == 0 || c.logger == nil {
		return
	}

	c.logger.Warn("Retrying HTTP request", map[string]interface{}{
		"method":  req.Method,
		"url":     req.URL.String(),
		"attempt": attempt,
	})
}
