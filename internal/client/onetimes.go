package client

import (
	"context"
	"fmt"

	"github.com/renewly-io/renewly-client/internal/http"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// OnetimesClient implements renewly.OnetimesClient
type OnetimesClient struct {
	httpClient *http.Client
	fetcher    renewly.PageFetcher
}

// NewOnetimesClient creates a new onetimes client
func NewOnetimesClient(httpClient *http.Client, fetcher renewly.PageFetcher) *OnetimesClient {
	return &OnetimesClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements renewly.OnetimesClient.Get
func (c *OnetimesClient) Get(ctx context.Context, id string) (*renewly.Onetime, error) {
	path := fmt.Sprintf("/onetimes/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting onetime: %w", err)
	}

	return decodeResource[renewly.Onetime](resp.Body, "onetime")
}

// Create implements renewly.OnetimesClient.Create
func (c *OnetimesClient) Create(ctx context.Context, request *renewly.OnetimeCreateRequest) (*renewly.Onetime, error) {
	resp, err := c.httpClient.Post(ctx, "/onetimes", request)
	if err != nil {
		return nil, fmt.Errorf("creating onetime: %w", err)
	}

	return decodeResource[renewly.Onetime](resp.Body, "onetime")
}

// Update implements renewly.OnetimesClient.Update
func (c *OnetimesClient) Update(ctx context.Context, id string, request *renewly.OnetimeUpdateRequest) (*renewly.Onetime, error) {
	path := fmt.Sprintf("/onetimes/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating onetime: %w", err)
	}

	return decodeResource[renewly.Onetime](resp.Body, "onetime")
}

// Delete implements renewly.OnetimesClient.Delete
func (c *OnetimesClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/onetimes/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting onetime: %w", err)
	}

	return nil
}

// List implements renewly.OnetimesClient.List
func (c *OnetimesClient) List(params *renewly.ListParams) *renewly.Paginator[renewly.Onetime] {
	return listPaginator[renewly.Onetime](c.fetcher, "/onetimes", "onetimes", params, renewly.GenericSortSet())
}
