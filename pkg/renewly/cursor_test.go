package renewly_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/renewly-io/renewly-client/pkg/renewly"
)

func rawResponse(body string, headers http.Header) *renewly.RawResponse {
	if headers == nil {
		headers = http.Header{}
	}

	return &renewly.RawResponse{
		StatusCode: http.StatusOK,
		Headers:    headers,
		Body:       renewly.DecodeRawBody([]byte(body)),
	}
}

func TestExtractCursors_ModernBodyFields(t *testing.T) {
	resp := rawResponse(`{"next_cursor": "abc", "previous_cursor": "xyz"}`, nil)

	next, previous := renewly.ExtractCursors(resp, renewly.APIVersion202406)
	assert.Equal(t, "abc", next)
	assert.Equal(t, "xyz", previous)
}

func TestExtractCursors_ModernNullCursor(t *testing.T) {
	resp := rawResponse(`{"next_cursor": null, "previous_cursor": "xyz"}`, nil)

	next, previous := renewly.ExtractCursors(resp, renewly.APIVersion202406)
	assert.Empty(t, next)
	assert.Equal(t, "xyz", previous)
}

func TestExtractCursors_ModernIgnoresLinkHeader(t *testing.T) {
	headers := http.Header{}
	headers.Set("Link", `<https://api.renewly.test/charges?cursor=ghost>; rel="next"`)

	resp := rawResponse(`{}`, headers)

	next, previous := renewly.ExtractCursors(resp, renewly.APIVersion202406)
	assert.Empty(t, next)
	assert.Empty(t, previous)
}

func TestExtractCursors_LegacyLinkHeader(t *testing.T) {
	headers := http.Header{}
	headers.Set("Link",
		`<https://api.renewly.test/charges?cursor=n1&limit=50>; rel="next", `+
			`<https://api.renewly.test/charges?cursor=p1&limit=50>; rel="previous"`)

	resp := rawResponse(`{}`, headers)

	next, previous := renewly.ExtractCursors(resp, renewly.APIVersion202301)
	assert.Equal(t, "n1", next)
	assert.Equal(t, "p1", previous)
}

func TestExtractCursors_LegacyPercentDecoding(t *testing.T) {
	headers := http.Header{}
	headers.Set("Link", `<https://api.renewly.test/charges?cursor=a%3Db%26c>; rel="next"`)

	resp := rawResponse(`{}`, headers)

	next, _ := renewly.ExtractCursors(resp, renewly.APIVersion202301)
	assert.Equal(t, "a=b&c", next)
}

// Legacy responses without a Link header fall back to body cursor fields.
func TestExtractCursors_LegacyBodyFallback(t *testing.T) {
	resp := rawResponse(`{"next_cursor": "abc"}`, nil)

	next, previous := renewly.ExtractCursors(resp, renewly.APIVersion202301)
	assert.Equal(t, "abc", next)
	assert.Empty(t, previous)
}

// A present Link header wins over body fields under the legacy dialect.
func TestExtractCursors_LegacyHeaderWinsOverBody(t *testing.T) {
	headers := http.Header{}
	headers.Set("Link", `<https://api.renewly.test/charges?cursor=header>; rel="next"`)

	resp := rawResponse(`{"next_cursor": "body"}`, headers)

	next, _ := renewly.ExtractCursors(resp, renewly.APIVersion202301)
	assert.Equal(t, "header", next)
}

func TestExtractCursors_LegacyUnknownRelIgnored(t *testing.T) {
	headers := http.Header{}
	headers.Set("Link", `<https://api.renewly.test/charges?cursor=x>; rel="last"`)

	resp := rawResponse(`{}`, headers)

	next, previous := renewly.ExtractCursors(resp, renewly.APIVersion202301)
	assert.Empty(t, next)
	assert.Empty(t, previous)
}

func TestExtractCursors_LegacyLinkWithoutCursorParam(t *testing.T) {
	headers := http.Header{}
	headers.Set("Link", `<https://api.renewly.test/charges?page=2>; rel="next"`)

	resp := rawResponse(`{}`, headers)

	next, _ := renewly.ExtractCursors(resp, renewly.APIVersion202301)
	assert.Empty(t, next)
}

func TestExtractCursors_MalformedLinkHeader(t *testing.T) {
	headers := http.Header{}
	headers.Set("Link", `not a link header at all`)

	resp := rawResponse(`{}`, headers)

	next, previous := renewly.ExtractCursors(resp, renewly.APIVersion202301)
	assert.Empty(t, next)
	assert.Empty(t, previous)
}

func TestExtractCursors_NilResponse(t *testing.T) {
	next, previous := renewly.ExtractCursors(nil, renewly.APIVersion202406)
	assert.Empty(t, next)
	assert.Empty(t, previous)
}

func TestExtractCursors_NonStringCursorTolerated(t *testing.T) {
	resp := rawResponse(`{"next_cursor": 42}`, nil)

	next, _ := renewly.ExtractCursors(resp, renewly.APIVersion202406)
	assert.Empty(t, next)
}

func TestDecodeRawBody(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		assert.Empty(t, renewly.DecodeRawBody(nil))
	})

	t.Run("undecodable body", func(t *testing.T) {
		assert.Empty(t, renewly.DecodeRawBody([]byte(`not json`)))
	})

	t.Run("fields preserved", func(t *testing.T) {
		body := renewly.DecodeRawBody([]byte(`{"widgets": [], "next_cursor": "a"}`))
		assert.Contains(t, body, "widgets")
		assert.Contains(t, body, "next_cursor")
	})
}
