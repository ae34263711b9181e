package client

import (
	"context"
	"fmt"

	"github.com/renewly-io/renewly-client/internal/http"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// AddressesClient implements renewly.AddressesClient
type AddressesClient struct {
	httpClient *http.Client
	fetcher    renewly.PageFetcher
}

// NewAddressesClient creates a new addresses client
func NewAddressesClient(httpClient *http.Client, fetcher renewly.PageFetcher) *AddressesClient {
	return &AddressesClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements renewly.AddressesClient.Get
func (c *AddressesClient) Get(ctx context.Context, id string) (*renewly.Address, error) {
	path := fmt.Sprintf("/addresses/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting address: %w", err)
	}

	return decodeResource[renewly.Address](resp.Body, "address")
}

// Create implements renewly.AddressesClient.Create
func (c *AddressesClient) Create(ctx context.Context, request *renewly.AddressCreateRequest) (*renewly.Address, error) {
	resp, err := c.httpClient.Post(ctx, "/addresses", request)
	if err != nil {
		return nil, fmt.Errorf("creating address: %w", err)
	}

	return decodeResource[renewly.Address](resp.Body, "address")
}

// Update implements renewly.AddressesClient.Update
func (c *AddressesClient) Update(ctx context.Context, id string, request *renewly.AddressUpdateRequest) (*renewly.Address, error) {
	path := fmt.Sprintf("/addresses/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating address: %w", err)
	}

	return decodeResource[renewly.Address](resp.Body, "address")
}

// Delete implements renewly.AddressesClient.Delete
func (c *AddressesClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/addresses/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting address: %w", err)
	}

	return nil
}

// List implements renewly.AddressesClient.List
func (c *AddressesClient) List(params *renewly.ListParams) *renewly.Paginator[renewly.Address] {
	return listPaginator[renewly.Address](c.fetcher, "/addresses", "addresses", params, renewly.GenericSortSet())
}
