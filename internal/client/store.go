package client

import (
	"context"
	"fmt"

	"github.com/renewly-io/renewly-client/internal/http"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// StoreClient implements renewly.StoreClient
type StoreClient struct {
	httpClient *http.Client
	fetcher    renewly.PageFetcher
}

// NewStoreClient creates a new store client
func NewStoreClient(httpClient *http.Client, fetcher renewly.PageFetcher) *StoreClient {
	return &StoreClient{
		httpClient: httpClient,
		fetcher:    fetcher,
	}
}

// Get implements renewly.StoreClient.Get. The endpoint moved between
// dialects: 2023-01 serves /shop, 2024-06 serves /store. The path is picked
// from the version active at call time.
func (c *StoreClient) Get(ctx context.Context) (*renewly.Store, error) {
	path := "/store"
	key := "store"

	if c.fetcher.ActiveVersion() == renewly.APIVersion202301 {
		path = "/shop"
		key = "shop"
	}

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting store: %w", err)
	}

	return decodeResource[renewly.Store](resp.Body, key)
}
