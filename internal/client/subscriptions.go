package client

import (
	"context"
	"fmt"

	"github.com/renewly-io/renewly-client/internal/http"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// SubscriptionsClient implements renewly.SubscriptionsClient
type SubscriptionsClient struct {
	httpClient *http.Client
	fetcher    renewly.PageFetcher
}

// NewSubscriptionsClient creates a new subscriptions client
func NewSubscriptionsClient(httpClient *http.Client, fetcher renewly.PageFetcher) *SubscriptionsClient {
	return &SubscriptionsClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements renewly.SubscriptionsClient.Get
func (c *SubscriptionsClient) Get(ctx context.Context, id string) (*renewly.Subscription, error) {
	path := fmt.Sprintf("/subscriptions/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting subscription: %w", err)
	}

	return decodeSubscription(resp.Body)
}

// Create implements renewly.SubscriptionsClient.Create
func (c *SubscriptionsClient) Create(ctx context.Context, request *renewly.SubscriptionCreateRequest) (*renewly.Subscription, error) {
	resp, err := c.httpClient.Post(ctx, "/subscriptions", request)
	if err != nil {
		return nil, fmt.Errorf("creating subscription: %w", err)
	}

	return decodeSubscription(resp.Body)
}

// Update implements renewly.SubscriptionsClient.Update
func (c *SubscriptionsClient) Update(ctx context.Context, id string, request *renewly.SubscriptionUpdateRequest) (*renewly.Subscription, error) {
	path := fmt.Sprintf("/subscriptions/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating subscription: %w", err)
	}

	return decodeSubscription(resp.Body)
}

// Delete implements renewly.SubscriptionsClient.Delete
func (c *SubscriptionsClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/subscriptions/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting subscription: %w", err)
	}

	return nil
}

// List implements renewly.SubscriptionsClient.List. No request is issued
// until items are pulled from the paginator.
func (c *SubscriptionsClient) List(params *renewly.ListParams) *renewly.Paginator[renewly.Subscription] {
	return listPaginator[renewly.Subscription](c.fetcher, "/subscriptions", "subscriptions", params, renewly.SubscriptionSortSet())
}

// Activate implements renewly.SubscriptionsClient.Activate
func (c *SubscriptionsClient) Activate(ctx context.Context, id string) (*renewly.Subscription, error) {
	path := fmt.Sprintf("/subscriptions/%s/activate", id)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("activating subscription: %w", err)
	}

	return decodeSubscription(resp.Body)
}

// Cancel implements renewly.SubscriptionsClient.Cancel
func (c *SubscriptionsClient) Cancel(ctx context.Context, id string, request *renewly.SubscriptionCancelRequest) (*renewly.Subscription, error) {
	path := fmt.Sprintf("/subscriptions/%s/cancel", id)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("cancelling subscription: %w", err)
	}

	return decodeSubscription(resp.Body)
}

func decodeSubscription(body []byte) (*renewly.Subscription, error) {
	return decodeResource[renewly.Subscription](body, "subscription")
}
