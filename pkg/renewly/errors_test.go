package renewly_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renewly-io/renewly-client/pkg/renewly"
)

func TestRequestError(t *testing.T) {
	err := &renewly.RequestError{
		Method: "GET",
		URL:    "https://api.renewly.test/subscriptions",
		Reason: "connection refused",
	}

	assert.Contains(t, err.Error(), "GET")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, renewly.IsRequestFailure(err))
	assert.True(t, renewly.IsRequestFailure(fmt.Errorf("listing: %w", err)))
	assert.False(t, renewly.IsRequestFailure(assert.AnError))
}

func TestAuthenticationError(t *testing.T) {
	err := &renewly.AuthenticationError{StatusCode: 401, Message: "invalid token"}

	assert.Contains(t, err.Error(), "authentication failed")
	assert.Contains(t, err.Error(), "invalid token")
	assert.True(t, renewly.IsAuthentication(err))
	assert.False(t, renewly.IsAuthentication(&renewly.APIStatusError{StatusCode: 401}))
}

func TestRateLimitError(t *testing.T) {
	t.Run("with retry-after", func(t *testing.T) {
		err := &renewly.RateLimitError{
			StatusCode: 429,
			Message:    "slow down",
			RateLimit:  renewly.RateLimitInfo{RetryAfter: 30},
		}

		assert.Contains(t, err.Error(), "retry after 30s")
		assert.True(t, renewly.IsRateLimited(err))
	})

	t.Run("without retry-after", func(t *testing.T) {
		err := &renewly.RateLimitError{StatusCode: 429, Message: "slow down"}

		assert.Contains(t, err.Error(), "status: 429")
	})
}

func TestAPIStatusError(t *testing.T) {
	err := &renewly.APIStatusError{StatusCode: 422, Message: "validation failed"}

	assert.Equal(t, "validation failed (status: 422)", err.Error())
	assert.False(t, renewly.IsNotFound(err))
	assert.True(t, renewly.IsNotFound(&renewly.APIStatusError{StatusCode: 404}))
}

func TestInvalidSortError(t *testing.T) {
	err := &renewly.InvalidSortError{
		Value: "price-desc",
		Legal: []string{"id-asc", "id-desc"},
	}

	assert.Contains(t, err.Error(), `"price-desc"`)
	assert.Contains(t, err.Error(), "id-asc")
	assert.Contains(t, err.Error(), "id-desc")
}

func TestErrorMessageFromBody(t *testing.T) {
	tests := []struct {
		name     string
		body     map[string]interface{}
		expected string
	}{
		{
			name:     "error string",
			body:     map[string]interface{}{"error": "not found"},
			expected: "not found",
		},
		{
			name:     "errors string",
			body:     map[string]interface{}{"errors": "several things broke"},
			expected: "several things broke",
		},
		{
			name:     "error preferred over errors",
			body:     map[string]interface{}{"error": "first", "errors": "second"},
			expected: "first",
		},
		{
			name:     "nested errors serialized",
			body:     map[string]interface{}{"errors": map[string]interface{}{"quantity": []interface{}{"must be positive"}}},
			expected: `{"quantity":["must be positive"]}`,
		},
		{
			name:     "empty body falls back",
			body:     map[string]interface{}{},
			expected: http.StatusText(http.StatusInternalServerError),
		},
		{
			name:     "null error falls back",
			body:     map[string]interface{}{"error": nil},
			expected: http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			message := renewly.ErrorMessageFromBody(testCase.body, http.StatusText(http.StatusInternalServerError))
			assert.Equal(t, testCase.expected, message)
		})
	}
}

func TestParseRateLimit(t *testing.T) {
	headers := http.Header{}
	headers.Set("X-RateLimit-Limit", "100")
	headers.Set("X-RateLimit-Remaining", "20")
	headers.Set("X-RateLimit-Reset", "1700000000")
	headers.Set("Retry-After", "15")

	info := renewly.ParseRateLimit(headers)
	assert.Equal(t, 100, info.Limit)
	assert.Equal(t, 20, info.Remaining)
	assert.Equal(t, int64(1700000000), info.Reset)
	assert.Equal(t, 15, info.RetryAfter)
}

func TestParseRateLimit_MissingHeaders(t *testing.T) {
	info := renewly.ParseRateLimit(http.Header{})
	assert.Zero(t, info.Limit)
	assert.Zero(t, info.Remaining)
	assert.Zero(t, info.Reset)
	assert.Zero(t, info.RetryAfter)
}
