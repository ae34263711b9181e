package client

import (
	"context"
	"fmt"

	"github.com/renewly-io/renewly-client/internal/http"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// OrdersClient implements renewly.OrdersClient
type OrdersClient struct {
	httpClient *http.Client
	fetcher    renewly.PageFetcher
}

// NewOrdersClient creates a new orders client
func NewOrdersClient(httpClient *http.Client, fetcher renewly.PageFetcher) *OrdersClient {
	return &OrdersClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements renewly.OrdersClient.Get
func (c *OrdersClient) Get(ctx context.Context, id string) (*renewly.Order, error) {
	path := fmt.Sprintf("/orders/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting order: %w", err)
	}

	return decodeResource[renewly.Order](resp.Body, "order")
}

// Update implements renewly.OrdersClient.Update
func (c *OrdersClient) Update(ctx context.Context, id string, request *renewly.OrderUpdateRequest) (*renewly.Order, error) {
	path := fmt.Sprintf("/orders/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating order: %w", err)
	}

	return decodeResource[renewly.Order](resp.Body, "order")
}

// Delete implements renewly.OrdersClient.Delete
func (c *OrdersClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/orders/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting order: %w", err)
	}

	return nil
}

// List implements renewly.OrdersClient.List
func (c *OrdersClient) List(params *renewly.ListParams) *renewly.Paginator[renewly.Order] {
	return listPaginator[renewly.Order](c.fetcher, "/orders", "orders", params, renewly.OrderSortSet())
}
