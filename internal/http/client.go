// Package http implements the dispatch engine of the SDK: it builds the
// final request (URL join, query encoding, mandatory headers), sends it, and
// classifies the response into the typed error taxonomy of pkg/renewly.
package http

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/renewly-io/renewly-client/internal/constants"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// ConfigSource supplies the credentials and version for each request. It is
// read fresh on every dispatch rather than snapshotted at construction, so a
// client-level version switch takes effect for all subsequent requests,
// including the remaining pages of an in-progress traversal.
type ConfigSource interface {
	AccessToken() string
	APIVersion() renewly.APIVersion
}

// Request represents an HTTP request to the Renewly API.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response represents a completed HTTP exchange.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client is the transport client. All resource clients dispatch through it.
type Client struct {
	baseURL      string
	source       ConfigSource
	httpClient   *retryablehttp.Client
	logger       renewly.Logger
	debug        bool
	userAgent    string
	cache        renewly.Cache
	cacheTTL     time.Duration
	interceptors *renewly.InterceptorChain
}

// Option configures the client.
type Option func(*Client)

// WithLogger sets a logger for the client.
func WithLogger(logger renewly.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging through the configured logger.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout sets the per-request transport timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithRetryConfig opts in to automatic retries for transient failures
// (>=500, 429, connection errors). Off by default: without this option every
// failure propagates to the caller after a single attempt.
func WithRetryConfig(retryMax int, retryWaitMin, retryWaitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = retryWaitMin
		c.httpClient.RetryWaitMax = retryWaitMax
	}
}

// WithCache enables GET response caching with the given backend and TTL.
func WithCache(cache renewly.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// WithInterceptors attaches an interceptor chain executed around every
// dispatch.
func WithInterceptors(chain *renewly.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a transport client for the given base URL. The source
// may be nil for unauthenticated use in tests.
func NewClient(baseURL string, source ConfigSource, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout
	// Hand the final response back even when retries are exhausted, so a 429
	// or 5xx is classified from its status rather than reported as a
	// transport failure.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		source:     source,
		httpClient: retryClient,
		userAgent:  "renewly-client-go",
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do sends one request and classifies the response. On HTTP errors (status
// >= 400) both the response and a typed error are returned, so callers can
// still inspect status and headers.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.buildURL(req.Path, req.Query)

	body, err := encodeBody(req.Body)
	if err != nil {
		return nil, err
	}

	intercepted := &InterceptedExchange{
		chain: c.interceptors,
		request: &renewly.InterceptedRequest{
			Method:   req.Method,
			Path:     req.Path,
			Headers:  make(http.Header),
			Body:     body,
			Metadata: make(map[string]interface{}),
		},
	}

	err = intercepted.before(ctx)
	if err != nil {
		return nil, err
	}

	if resp, ok := c.cachedResponse(ctx, req, fullURL); ok {
		return resp, nil
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	c.setHeaders(httpReq, req.Headers, intercepted.request.Headers)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// The transport's own error type is deliberately not propagated;
		// callers get a stable taxonomy regardless of transport.
		reqErr := &renewly.RequestError{
			Method: req.Method,
			URL:    fullURL,
			Reason: err.Error(),
		}
		_ = intercepted.after(ctx, nil, reqErr)

		return nil, reqErr
	}
	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := readBody(httpResp)
	if err != nil {
		return nil, err
	}

	response := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": response.StatusCode,
		})
	}

	classified := classifyResponse(response)
	_ = intercepted.after(ctx, response, classified)

	if classified != nil {
		return response, classified
	}

	c.storeResponse(ctx, req, fullURL, response)

	return response, nil
}

// Get sends a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post sends a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put sends a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch sends a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete sends a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// buildURL joins base URL and path with exactly one separating slash,
// whatever the surrounding slashes on either fragment, and appends the
// encoded query when present.
func (c *Client) buildURL(path string, query url.Values) string {
	full := c.baseURL + "/" + strings.Trim(path, "/")

	if len(query) > 0 {
		full += "?" + query.Encode()
	}

	return full
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, custom map[string]string, intercepted http.Header) {
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)

	if c.source != nil {
		httpReq.Header.Set(constants.AccessTokenHeader, c.source.AccessToken())
		httpReq.Header.Set(constants.APIVersionHeader, c.source.APIVersion().String())
	}

	for key, values := range intercepted {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}

	for key, value := range custom {
		httpReq.Header.Set(key, value)
	}
}

func (c *Client) cachedResponse(ctx context.Context, req *Request, fullURL string) (*Response, bool) {
	if c.cache == nil || req.Method != http.MethodGet {
		return nil, false
	}

	entry, err := c.cache.Get(ctx, c.cacheKey(fullURL))
	if err != nil {
		return nil, false
	}

	return &Response{
		StatusCode: entry.StatusCode,
		Headers:    entry.Headers,
		Body:       entry.Body,
	}, true
}

func (c *Client) storeResponse(ctx context.Context, req *Request, fullURL string, resp *Response) {
	if c.cache == nil || req.Method != http.MethodGet {
		return
	}

	_ = c.cache.Set(ctx, c.cacheKey(fullURL), &renewly.CacheEntry{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
		StoredAt:   time.Now(),
		TTL:        c.cacheTTL,
	})
}

// cacheKey namespaces entries by version: the two dialects answer the same
// URL differently.
func (c *Client) cacheKey(fullURL string) string {
	version := renewly.DefaultAPIVersion
	if c.source != nil {
		version = c.source.APIVersion()
	}

	return version.String() + " GET " + fullURL
}

// encodeBody serializes a JSON body. Serialization failure is fatal, never
// silently swallowed.
func encodeBody(body interface{}) ([]byte, error) {
	if body == nil {
		return nil, nil
	}

	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	return data, nil
}

func readBody(resp *http.Response) ([]byte, error) {
	data, err := readAll(resp)
	if err != nil {
		return nil, &renewly.RequestError{
			Method: resp.Request.Method,
			URL:    resp.Request.URL.String(),
			Reason: "reading response body: " + err.Error(),
		}
	}

	return data, nil
}

// classifyResponse maps status codes onto the error taxonomy. Bodies that
// fail to decode are treated as empty mappings.
func classifyResponse(resp *Response) error {
	if resp.StatusCode < http.StatusBadRequest {
		return nil
	}

	body := decodeErrorBody(resp.Body)
	message := renewly.ErrorMessageFromBody(body, http.StatusText(resp.StatusCode))

	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return &renewly.AuthenticationError{
			StatusCode: resp.StatusCode,
			Message:    message,
			Body:       body,
		}
	case http.StatusTooManyRequests:
		return &renewly.RateLimitError{
			StatusCode: resp.StatusCode,
			Message:    message,
			Body:       body,
			RateLimit:  renewly.ParseRateLimit(resp.Headers),
		}
	default:
		return &renewly.APIStatusError{
			StatusCode: resp.StatusCode,
			Message:    message,
			Body:       body,
		}
	}
}

func decodeErrorBody(data []byte) map[string]interface{} {
	body := make(map[string]interface{})
	if len(data) == 0 {
		return body
	}

	if err := json.Unmarshal(data, &body); err != nil {
		return make(map[string]interface{})
	}

	return body
}

// InterceptedExchange threads one dispatch through the interceptor chain.
type InterceptedExchange struct {
	chain   *renewly.InterceptorChain
	request *renewly.InterceptedRequest
}

func (e *InterceptedExchange) before(ctx context.Context) error {
	if e.chain == nil {
		return nil
	}

	return e.chain.ExecuteRequestInterceptors(ctx, e.request)
}

func (e *InterceptedExchange) after(ctx context.Context, resp *Response, classifyErr error) error {
	if e.chain == nil {
		return nil
	}

	intercepted := &renewly.InterceptedResponse{Error: classifyErr}
	if resp != nil {
		intercepted.StatusCode = resp.StatusCode
		intercepted.Headers = resp.Headers
		intercepted.Body = resp.Body
	}

	return e.chain.ExecuteResponseInterceptors(ctx, e.request, intercepted)
}

func readAll(resp *http.Response) ([]byte, error) {
	if resp.Body == nil {
		return nil, nil
	}

	return io.ReadAll(resp.Body)
}
