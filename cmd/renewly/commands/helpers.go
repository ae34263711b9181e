package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/renewly-io/renewly-client/pkg/renewclient"
	"github.com/renewly-io/renewly-client/pkg/renewly"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"

	// Output formats.
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"

	// YAML formatting.
	defaultYAMLIndent = 2

	dateFormat = "2006-01-02"
)

// CreateClient builds an API client from the effective CLI configuration
// (flags, environment, config file).
func CreateClient() (renewly.Client, error) {
	config := renewly.Config{
		AccessToken: viper.GetString("token"),
		APIEndpoint: viper.GetString("api"),
		APIVersion:  renewly.APIVersion(viper.GetString("api_version")),
		Debug:       viper.GetBool("verbose"),
	}

	client, err := renewclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("creating API client: %w", err)
	}

	return client, nil
}

// StandardJSONRenderer encodes data as indented JSON to stdout.
func StandardJSONRenderer[T any](data T) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to JSON: %w", err)
	}

	return nil
}

// StandardYAMLRenderer encodes data as YAML to stdout.
func StandardYAMLRenderer[T any](data T) error {
	encoder := yaml.NewEncoder(os.Stdout)
	encoder.SetIndent(defaultYAMLIndent)

	err := encoder.Encode(data)
	if err != nil {
		return fmt.Errorf("encoding data to YAML: %w", err)
	}

	return nil
}

// renderWithFormat dispatches to the renderer matching the configured output
// format.
func renderWithFormat[T any](data T, renderTable func(T) error) error {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		return StandardJSONRenderer(data)
	case OutputFormatYAML:
		return StandardYAMLRenderer(data)
	default:
		return renderTable(data)
	}
}

// buildListParams assembles ListParams from the shared list flags.
func buildListParams(limit int, sort string, filters map[string]string) *renewly.ListParams {
	params := renewly.NewListParams()

	if limit > 0 {
		params = params.WithLimit(limit)
	}

	if sort != "" {
		params = params.WithSortRaw(sort)
	}

	for key, value := range filters {
		params = params.WithFilter(key, value)
	}

	return params
}

// collectPage pulls items from a paginator, honoring --all versus --limit.
func collectPage[T any](cmd *cobra.Command, paginator *renewly.Paginator[T], allPages bool, limit int) ([]T, error) {
	ctx := cmd.Context()

	if allPages {
		items, err := paginator.All(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching all pages: %w", err)
		}

		return items, nil
	}

	items, err := paginator.Take(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("fetching results: %w", err)
	}

	return items, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return NotAvailable
	}

	return t.Format(dateFormat)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return NotAvailable
	}

	return t.Format(dateFormat)
}
