package renewly

import (
	"errors"
	"fmt"
)

// APIVersion selects which wire dialect of the Renewly API is spoken. The
// value is sent verbatim in the X-Renewly-Version header and decides how
// pagination cursors are extracted from responses.
type APIVersion string

const (
	// APIVersion202301 is the legacy dialect. Pagination cursors travel in a
	// Link response header; a handful of endpoints still embed them in the
	// body instead.
	APIVersion202301 APIVersion = "2023-01"

	// APIVersion202406 is the current dialect. Pagination cursors are
	// top-level next_cursor/previous_cursor fields of the response body.
	APIVersion202406 APIVersion = "2024-06"

	// DefaultAPIVersion is used when a Config does not name a version.
	DefaultAPIVersion = APIVersion202406
)

// ErrUnsupportedAPIVersion is returned when a Config names a version the SDK
// does not speak.
var ErrUnsupportedAPIVersion = errors.New("unsupported API version")

// String returns the wire value of the version.
func (v APIVersion) String() string {
	return string(v)
}

// Valid reports whether v is a version this SDK supports.
func (v APIVersion) Valid() bool {
	return v == APIVersion202301 || v == APIVersion202406
}

// CheckAPIVersion validates v, returning ErrUnsupportedAPIVersion with the
// offending value in the message when it is unknown.
func CheckAPIVersion(v APIVersion) error {
	if !v.Valid() {
		return fmt.Errorf("%w: %q (supported: %s, %s)", ErrUnsupportedAPIVersion, v, APIVersion202301, APIVersion202406)
	}

	return nil
}
