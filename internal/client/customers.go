package client

import (
	"context"
	"fmt"

	"github.com/renewly-io/renewly-client/internal/http"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// CustomersClient implements renewly.CustomersClient
type CustomersClient struct {
	httpClient *http.Client
	fetcher    renewly.PageFetcher
}

// NewCustomersClient creates a new customers client
func NewCustomersClient(httpClient *http.Client, fetcher renewly.PageFetcher) *CustomersClient {
	return &CustomersClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements renewly.CustomersClient.Get
func (c *CustomersClient) Get(ctx context.Context, id string) (*renewly.Customer, error) {
	path := fmt.Sprintf("/customers/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting customer: %w", err)
	}

	return decodeResource[renewly.Customer](resp.Body, "customer")
}

// Create implements renewly.CustomersClient.Create
func (c *CustomersClient) Create(ctx context.Context, request *renewly.CustomerCreateRequest) (*renewly.Customer, error) {
	resp, err := c.httpClient.Post(ctx, "/customers", request)
	if err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}

	return decodeResource[renewly.Customer](resp.Body, "customer")
}

// Update implements renewly.CustomersClient.Update
func (c *CustomersClient) Update(ctx context.Context, id string, request *renewly.CustomerUpdateRequest) (*renewly.Customer, error) {
	path := fmt.Sprintf("/customers/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}

	return decodeResource[renewly.Customer](resp.Body, "customer")
}

// Delete implements renewly.CustomersClient.Delete
func (c *CustomersClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/customers/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting customer: %w", err)
	}

	return nil
}

// List implements renewly.CustomersClient.List
func (c *CustomersClient) List(params *renewly.ListParams) *renewly.Paginator[renewly.Customer] {
	return listPaginator[renewly.Customer](c.fetcher, "/customers", "customers", params, renewly.CustomerSortSet())
}
