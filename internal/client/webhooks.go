package client

import (
	"context"
	"fmt"

	"github.com/renewly-io/renewly-client/internal/http"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// WebhooksClient implements renewly.WebhooksClient
type WebhooksClient struct {
	httpClient *http.Client
	fetcher    renewly.PageFetcher
}

// NewWebhooksClient creates a new webhooks client
func NewWebhooksClient(httpClient *http.Client, fetcher renewly.PageFetcher) *WebhooksClient {
	return &WebhooksClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements renewly.WebhooksClient.Get
func (c *WebhooksClient) Get(ctx context.Context, id string) (*renewly.Webhook, error) {
	path := fmt.Sprintf("/webhooks/%s", id)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting webhook: %w", err)
	}

	return decodeResource[renewly.Webhook](resp.Body, "webhook")
}

// Create implements renewly.WebhooksClient.Create
func (c *WebhooksClient) Create(ctx context.Context, request *renewly.WebhookCreateRequest) (*renewly.Webhook, error) {
	resp, err := c.httpClient.Post(ctx, "/webhooks", request)
	if err != nil {
		return nil, fmt.Errorf("creating webhook: %w", err)
	}

	return decodeResource[renewly.Webhook](resp.Body, "webhook")
}

// Update implements renewly.WebhooksClient.Update
func (c *WebhooksClient) Update(ctx context.Context, id string, request *renewly.WebhookUpdateRequest) (*renewly.Webhook, error) {
	path := fmt.Sprintf("/webhooks/%s", id)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating webhook: %w", err)
	}

	return decodeResource[renewly.Webhook](resp.Body, "webhook")
}

// Delete implements renewly.WebhooksClient.Delete
func (c *WebhooksClient) Delete(ctx context.Context, id string) error {
	path := fmt.Sprintf("/webhooks/%s", id)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting webhook: %w", err)
	}

	return nil
}

// List implements renewly.WebhooksClient.List
func (c *WebhooksClient) List(params *renewly.ListParams) *renewly.Paginator[renewly.Webhook] {
	return listPaginator[renewly.Webhook](c.fetcher, "/webhooks", "webhooks", params, renewly.GenericSortSet())
}

// Test implements renewly.WebhooksClient.Test. The server sends a test
// delivery to the registered address.
func (c *WebhooksClient) Test(ctx context.Context, id string) (*renewly.Webhook, error) {
	path := fmt.Sprintf("/webhooks/%s/test", id)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("testing webhook: %w", err)
	}

	return decodeResource[renewly.Webhook](resp.Body, "webhook")
}
