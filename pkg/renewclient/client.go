// Package renewclient provides the main entry point for creating Renewly API clients
package renewclient

import (
	"fmt"
	"strings"

	"github.com/renewly-io/renewly-client/internal/client"
	"github.com/renewly-io/renewly-client/internal/constants"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// New creates a new Renewly API client. The config is validated and
// normalized before any transport is built: the access token is required,
// the endpoint gets a https scheme when none is present, and a pinned API
// version must be one the SDK supports.
func New(config renewly.Config) (renewly.Client, error) {
	if config.AccessToken == "" {
		return nil, renewly.ErrAccessTokenRequired
	}

	if config.APIVersion != "" {
		err := renewly.CheckAPIVersion(config.APIVersion)
		if err != nil {
			return nil, err
		}
	}

	if config.HTTPTimeout != 0 && config.HTTPTimeout < constants.MinHTTPTimeout {
		return nil, renewly.ErrTimeoutTooShort
	}

	config.APIEndpoint = normalizeEndpoint(config.APIEndpoint)

	apiClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return apiClient, nil
}

// NewWithToken creates a client for the default endpoint from an access
// token.
func NewWithToken(accessToken string) (renewly.Client, error) {
	return New(renewly.Config{AccessToken: accessToken})
}

// NewWithEndpoint creates a client for a non-default endpoint, such as a
// sandbox environment.
func NewWithEndpoint(apiEndpoint, accessToken string) (renewly.Client, error) {
	return New(renewly.Config{
		AccessToken: accessToken,
		APIEndpoint: apiEndpoint,
	})
}

// normalizeEndpoint trims a trailing slash, defaults the scheme to https,
// and falls back to the production endpoint when empty.
func normalizeEndpoint(endpoint string) string {
	if endpoint == "" {
		return constants.DefaultAPIEndpoint
	}

	endpoint = strings.TrimSuffix(endpoint, "/")
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}

	return endpoint
}
