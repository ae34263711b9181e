package client

import (
	"context"
	"fmt"

	"github.com/renewly-io/renewly-client/internal/http"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// MetafieldsClient implements renewly.MetafieldsClient
type MetafieldsClient struct {
	httpClient *http.Client
	fetcher    renewly.PageFetcher
}

// NewMetafieldsClient creates a new metafields client
func NewMetafieldsClient(httpClient *http.Client, fetcher renewly.PageFetcher) *MetafieldsClient {
	return &MetafieldsClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements renewly.MetafieldsClient.Get
func (c *MetafieldsClient) Get(ctx context.Context, id string) (*renewly.Metafield, error) {
	path := fmt.Sprintf("/metafields/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting metafield: %w", err)
	}

	return decodeResource[renewly.Metafield](resp.Body, "metafield")
}

// Create implements renewly.MetafieldsClient.Create
func (c *MetafieldsClient) Create(ctx context.Context, request *renewly.MetafieldCreateRequest) (*renewly.Metafield, error) {
	resp, err := c.httpClient.Post(ctx, "/metafields", request)
	if err != nil {
		return nil, fmt.Errorf("creating metafield: %w", err)
	}

	return decodeResource[renewly.Metafield](resp.Body, "metafield")
}

// Update implements renewly.MetafieldsClient.Update
func (c *MetafieldsClient) Update(ctx context.Context, id string, request *renewly.MetafieldUpdateRequest) (*renewly.Metafield, error) {
	path := fmt.Sprintf("/metafields/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating metafield: %w", err)
	}

	return decodeResource[renewly.Metafield](resp.Body, "metafield")
}

// Delete implements renewly.MetafieldsClient.Delete
func (c *MetafieldsClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/metafields/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting metafield: %w", err)
	}

	return nil
}

// List implements renewly.MetafieldsClient.List
func (c *MetafieldsClient) List(params *renewly.ListParams) *renewly.Paginator[renewly.Metafield] {
	return listPaginator[renewly.Metafield](c.fetcher, "/metafields", "metafields", params, renewly.GenericSortSet())
}
