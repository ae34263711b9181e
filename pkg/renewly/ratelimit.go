package renewly

import (
	"net/http"
	"strconv"
)

// RateLimitInfo holds rate-limit metadata parsed from response headers. All
// fields are optional; a header that is absent or non-numeric leaves its
// field zero.
type RateLimitInfo struct {
	// Limit is the request quota for the current window (X-RateLimit-Limit).
	Limit int
	// Remaining is the number of requests left in the window
	// (X-RateLimit-Remaining).
	Remaining int
	// Reset is the Unix timestamp at which the window resets
	// (X-RateLimit-Reset).
	Reset int64
	// RetryAfter is the suggested wait in seconds before retrying
	// (Retry-After).
	RetryAfter int
}

// ParseRateLimit extracts rate-limit metadata from response headers.
func ParseRateLimit(headers http.Header) RateLimitInfo {
	var info RateLimitInfo

	if v, err := strconv.Atoi(headers.Get("X-RateLimit-Limit")); err == nil {
		info.Limit = v
	}

	if v, err := strconv.Atoi(headers.Get("X-RateLimit-Remaining")); err == nil {
		info.Remaining = v
	}

	if v, err := strconv.ParseInt(headers.Get("X-RateLimit-Reset"), 10, 64); err == nil {
		info.Reset = v
	}

	if v, err := strconv.Atoi(headers.Get("Retry-After")); err == nil {
		info.RetryAfter = v
	}

	return info
}
