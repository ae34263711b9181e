package client

import (
	"context"
	"fmt"

	"github.com/renewly-io/renewly-client/internal/http"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// ChargesClient implements renewly.ChargesClient
type ChargesClient struct {
	httpClient *http.Client
	fetcher    renewly.PageFetcher
}

// NewChargesClient creates a new charges client
func NewChargesClient(httpClient *http.Client, fetcher renewly.PageFetcher) *ChargesClient {
	return &ChargesClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements renewly.ChargesClient.Get
func (c *ChargesClient) Get(ctx context.Context, id string) (*renewly.Charge, error) {
	path := fmt.Sprintf("/charges/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting charge: %w", err)
	}

	return decodeResource[renewly.Charge](resp.Body, "charge")
}

// List implements renewly.ChargesClient.List
func (c *ChargesClient) List(params *renewly.ListParams) *renewly.Paginator[renewly.Charge] {
	return listPaginator[renewly.Charge](c.fetcher, "/charges", "charges", params, renewly.ChargeSortSet())
}

// Skip implements renewly.ChargesClient.Skip
func (c *ChargesClient) Skip(ctx context.Context, id string, request *renewly.ChargeSkipRequest) (*renewly.Charge, error) {
	path := fmt.Sprintf("/charges/%s/skip", id)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("skipping charge: %w", err)
	}

	return decodeResource[renewly.Charge](resp.Body, "charge")
}

// Refund implements renewly.ChargesClient.Refund
func (c *ChargesClient) Refund(ctx context.Context, id string, request *renewly.ChargeRefundRequest) (*renewly.Charge, error) {
	path := fmt.Sprintf("/charges/%s/refund", id)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("refunding charge: %w", err)
	}

	return decodeResource[renewly.Charge](resp.Body, "charge")
}
