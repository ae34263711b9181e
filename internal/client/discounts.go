package client

import (
	"context"
	"fmt"

	"github.com/renewly-io/renewly-client/internal/http"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// DiscountsClient implements renewly.DiscountsClient
type DiscountsClient struct {
	httpClient *http.Client
	fetcher    renewly.PageFetcher
}

// NewDiscountsClient creates a new discounts client
func NewDiscountsClient(httpClient *http.Client, fetcher renewly.PageFetcher) *DiscountsClient {
	return &DiscountsClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements renewly.DiscountsClient.Get
func (c *DiscountsClient) Get(ctx context.Context, id string) (*renewly.Discount, error) {
	path := fmt.Sprintf("/discounts/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting discount: %w", err)
	}

	return decodeResource[renewly.Discount](resp.Body, "discount")
}

// Create implements renewly.DiscountsClient.Create
func (c *DiscountsClient) Create(ctx context.Context, request *renewly.DiscountCreateRequest) (*renewly.Discount, error) {
	resp, err := c.httpClient.Post(ctx, "/discounts", request)
	if err != nil {
		return nil, fmt.Errorf("creating discount: %w", err)
	}

	return decodeResource[renewly.Discount](resp.Body, "discount")
}

// Update implements renewly.DiscountsClient.Update
func (c *DiscountsClient) Update(ctx context.Context, id string, request *renewly.DiscountUpdateRequest) (*renewly.Discount, error) {
	path := fmt.Sprintf("/discounts/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating discount: %w", err)
	}

	return decodeResource[renewly.Discount](resp.Body, "discount")
}

// Delete implements renewly.DiscountsClient.Delete
func (c *DiscountsClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/discounts/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting discount: %w", err)
	}

	return nil
}

// List implements renewly.DiscountsClient.List
func (c *DiscountsClient) List(params *renewly.ListParams) *renewly.Paginator[renewly.Discount] {
	return listPaginator[renewly.Discount](c.fetcher, "/discounts", "discounts", params, renewly.GenericSortSet())
}
