package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// MinHTTPTimeout is the smallest timeout a Config may carry.
	MinHTTPTimeout = 1 * time.Second
)

// Retry limits. Retries are off by default; these apply when a caller opts
// in via Config.RetryMax.
const (
	// DefaultRetryWaitMin is the minimum backoff between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum backoff between retries.
	DefaultRetryWaitMax = 30 * time.Second
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page requested by
	// the CLI.
	DefaultPageSize = 50

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 250
)

// Output format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for tabular output format.
	FormatTable = "table"
)

// JSONIndentSize is the number of spaces for JSON and YAML indentation.
const JSONIndentSize = 2

// DefaultAPIEndpoint is the production Renewly API endpoint.
const DefaultAPIEndpoint = "https://api.renewly.com"

// Header names injected on every request.
const (
	// AccessTokenHeader carries the merchant API token.
	AccessTokenHeader = "X-Renewly-Access-Token"

	// APIVersionHeader selects the wire dialect.
	APIVersionHeader = "X-Renewly-Version"
)
