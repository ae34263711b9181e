package renewly

import (
	"encoding/json"
	"net/url"
	"regexp"
)

// linkEntryPattern matches one entry of a Link header of the form
// <https://host/path?cursor=abc>; rel="next".
var linkEntryPattern = regexp.MustCompile(`<([^>]*)>\s*;\s*rel="(\w+)"`)

// ExtractCursors pulls the next/previous pagination cursors out of a raw
// response using the extraction strategy of the given version. 2024-06 reads
// the next_cursor/previous_cursor body fields; 2023-01 parses the Link
// response header, falling back to the body fields for the legacy endpoints
// that never grew the header. Empty strings mean no cursor: a response with
// neither signals an exhausted collection.
func ExtractCursors(resp *RawResponse, version APIVersion) (next, previous string) {
	if resp == nil {
		return "", ""
	}

	if version == APIVersion202301 {
		next, previous = cursorsFromLinkHeader(resp.Headers.Get("Link"))
		if next != "" || previous != "" {
			return next, previous
		}
	}

	return cursorsFromBody(resp.Body)
}

// cursorsFromLinkHeader parses comma-separated angle-bracketed URLs with rel
// attributes and extracts the cursor query parameter of each. URL decoding is
// handled by the query parser.
func cursorsFromLinkHeader(header string) (next, previous string) {
	for _, entry := range linkEntryPattern.FindAllStringSubmatch(header, -1) {
		parsed, err := url.Parse(entry[1])
		if err != nil {
			continue
		}

		cursor := parsed.Query().Get("cursor")
		if cursor == "" {
			continue
		}

		switch entry[2] {
		case "next":
			next = cursor
		case "previous":
			previous = cursor
		}
	}

	return next, previous
}

func cursorsFromBody(body map[string]json.RawMessage) (next, previous string) {
	return stringField(body, "next_cursor"), stringField(body, "previous_cursor")
}

// stringField reads an optional string body field, tolerating null and
// non-string values.
func stringField(body map[string]json.RawMessage, key string) string {
	raw, ok := body[key]
	if !ok {
		return ""
	}

	var value *string

	err := json.Unmarshal(raw, &value)
	if err != nil || value == nil {
		return ""
	}

	return *value
}
