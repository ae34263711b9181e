package renewly

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired      = errors.New("config is required")
	ErrAccessTokenRequired = errors.New("access token is required")
	ErrTimeoutTooShort     = errors.New("HTTP timeout must be at least one second")
	ErrNoMoreItems         = errors.New("no more items")
	ErrMissingSignature    = errors.New("missing webhook signature")
	ErrWebhookSecretUnset  = errors.New("webhook secret is not configured")
)

// RequestError represents a transport-level failure: connection refused, DNS
// failure, timeout. It deliberately records only the text of the underlying
// error so that callers never depend on the concrete error types of whichever
// transport implementation is in use.
type RequestError struct {
	Method string
	URL    string
	Reason string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %s %s: %s", e.Method, e.URL, e.Reason)
}

// APIStatusError represents a non-2xx response from the Renewly API that is
// neither an authentication nor a rate-limit failure. Body holds the full
// decoded error body for programmatic inspection.
type APIStatusError struct {
	StatusCode int
	Message    string
	Body       map[string]interface{}
}

// Error implements the error interface.
func (e *APIStatusError) Error() string {
	return fmt.Sprintf("%s (status: %d)", e.Message, e.StatusCode)
}

// AuthenticationError represents an HTTP 401 or 403 response. It is a
// distinct type so callers can special-case credential problems.
type AuthenticationError struct {
	StatusCode int
	Message    string
	Body       map[string]interface{}
}

// Error implements the error interface.
func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed: %s (status: %d)", e.Message, e.StatusCode)
}

// RateLimitError represents an HTTP 429 response, carrying the parsed
// rate-limit headers so callers can implement informed backoff.
type RateLimitError struct {
	StatusCode int
	Message    string
	Body       map[string]interface{}
	RateLimit  RateLimitInfo
}

// Error implements the error interface.
func (e *RateLimitError) Error() string {
	if e.RateLimit.RetryAfter > 0 {
		return fmt.Sprintf("rate limited: %s (retry after %ds)", e.Message, e.RateLimit.RetryAfter)
	}

	return fmt.Sprintf("rate limited: %s (status: %d)", e.Message, e.StatusCode)
}

// InvalidSortError is raised locally, before any request is dispatched, when
// a raw sort_by string is not in the legal set for the resource. The message
// enumerates every legal token to aid discovery.
type InvalidSortError struct {
	Value string
	Legal []string
}

// Error implements the error interface.
func (e *InvalidSortError) Error() string {
	return fmt.Sprintf("invalid sort_by value %q, must be one of: %v", e.Value, e.Legal)
}

// IsRequestFailure checks if the error is a transport-level failure.
func IsRequestFailure(err error) bool {
	reqErr := &RequestError{}

	return errors.As(err, &reqErr)
}

// IsAuthentication checks if the error is an authentication failure (401/403).
func IsAuthentication(err error) bool {
	authErr := &AuthenticationError{}

	return errors.As(err, &authErr)
}

// IsRateLimited checks if the error is a 429 rate-limit failure.
func IsRateLimited(err error) bool {
	rlErr := &RateLimitError{}

	return errors.As(err, &rlErr)
}

// IsNotFound checks if the error is a 404 API failure.
func IsNotFound(err error) bool {
	apiErr := &APIStatusError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}

	return false
}

// ErrorMessageFromBody derives a human-readable message from a decoded error
// body. It prefers the "error" field, then "errors"; either may be a plain
// string or a nested structure, in which case the structure is serialized
// back to JSON. When neither field is present the fallback (normally the HTTP
// status text) is returned.
func ErrorMessageFromBody(body map[string]interface{}, fallback string) string {
	for _, key := range []string{"error", "errors"} {
		value, ok := body[key]
		if !ok || value == nil {
			continue
		}

		if s, ok := value.(string); ok {
			return s
		}

		serialized, err := json.Marshal(value)
		if err != nil {
			continue
		}

		return string(serialized)
	}

	return fallback
}
