// Package client implements the renewly.Client interface on top of the
// internal HTTP dispatch client.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"

	"github.com/renewly-io/renewly-client/internal/constants"
	"github.com/renewly-io/renewly-client/internal/http"
	"github.com/renewly-io/renewly-client/pkg/renewly"
)

// Client implements the renewly.Client interface.
type Client struct {
	httpClient *http.Client

	mu     sync.RWMutex
	config renewly.Config

	// Resource clients
	subscriptions renewly.SubscriptionsClient
	customers     renewly.CustomersClient
	charges       renewly.ChargesClient
	orders        renewly.OrdersClient
	discounts     renewly.DiscountsClient
	addresses     renewly.AddressesClient
	webhooks      renewly.WebhooksClient
	metafields    renewly.MetafieldsClient
	onetimes      renewly.OnetimesClient
	store         renewly.StoreClient
}

// New creates a new Renewly API client from a validated config. Validation
// and endpoint normalization happen in pkg/renewclient; this constructor
// assumes a well-formed config.
func New(config renewly.Config) (*Client, error) {
	client := &Client{config: config}

	httpOpts, err := buildHTTPClientOptions(config)
	if err != nil {
		return nil, err
	}

	// The client is its own config source so that SetAPIVersion is seen by
	// every request issued afterwards, including mid-traversal page fetches.
	client.httpClient = http.NewClient(config.APIEndpoint, client, httpOpts...)

	client.initializeResourceClients()

	return client, nil
}

// buildHTTPClientOptions maps config knobs onto HTTP client options.
func buildHTTPClientOptions(config renewly.Config) ([]http.Option, error) {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.Cache != nil {
		cache, err := renewly.NewCacheFromConfig(config.Cache)
		if err != nil {
			return nil, err
		}

		httpOpts = append(httpOpts, http.WithCache(cache, config.Cache.EntryTTL()))
	}

	return httpOpts, nil
}

// AccessToken implements http.ConfigSource.
func (c *Client) AccessToken() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.config.AccessToken
}

// APIVersion implements http.ConfigSource.
func (c *Client) APIVersion() renewly.APIVersion {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.config.Version()
}

// GetConfig implements renewly.Client.GetConfig.
func (c *Client) GetConfig() renewly.Config {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.config
}

// SetAPIVersion implements renewly.Client.SetAPIVersion. The configuration is
// replaced with an updated copy; requests already in flight finish on the old
// version, subsequent requests use the new one.
func (c *Client) SetAPIVersion(v renewly.APIVersion) error {
	err := renewly.CheckAPIVersion(v)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.config = c.config.WithAPIVersion(v)
	c.mu.Unlock()

	return nil
}

// FetchPage implements renewly.PageFetcher: one header-aware GET whose body
// is decoded into the field mapping the pagination engine consumes.
func (c *Client) FetchPage(ctx context.Context, endpoint string, query url.Values) (*renewly.RawResponse, error) {
	resp, err := c.httpClient.Get(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}

	return &renewly.RawResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       renewly.DecodeRawBody(resp.Body),
	}, nil
}

// ActiveVersion implements renewly.PageFetcher. Read fresh on every page
// boundary, never snapshotted.
func (c *Client) ActiveVersion() renewly.APIVersion {
	return c.APIVersion()
}

// Resource client accessors

// Subscriptions implements renewly.Client.Subscriptions.
func (c *Client) Subscriptions() renewly.SubscriptionsClient {
	return c.subscriptions
}

// Customers implements renewly.Client.Customers.
func (c *Client) Customers() renewly.CustomersClient {
	return c.customers
}

// Charges implements renewly.Client.Charges.
func (c *Client) Charges() renewly.ChargesClient {
	return c.charges
}

// Orders implements renewly.Client.Orders.
func (c *Client) Orders() renewly.OrdersClient {
	return c.orders
}

// Discounts implements renewly.Client.Discounts.
func (c *Client) Discounts() renewly.DiscountsClient {
	return c.discounts
}

// Addresses implements renewly.Client.Addresses.
func (c *Client) Addresses() renewly.AddressesClient {
	return c.addresses
}

// Webhooks implements renewly.Client.Webhooks.
func (c *Client) Webhooks() renewly.WebhooksClient {
	return c.webhooks
}

// Metafields implements renewly.Client.Metafields.
func (c *Client) Metafields() renewly.MetafieldsClient {
	return c.metafields
}

// Onetimes implements renewly.Client.Onetimes.
func (c *Client) Onetimes() renewly.OnetimesClient {
	return c.onetimes
}

// Store implements renewly.Client.Store.
func (c *Client) Store() renewly.StoreClient {
	return c.store
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.subscriptions = NewSubscriptionsClient(c.httpClient, c)
	c.customers = NewCustomersClient(c.httpClient, c)
	c.charges = NewChargesClient(c.httpClient, c)
	c.orders = NewOrdersClient(c.httpClient, c)
	c.discounts = NewDiscountsClient(c.httpClient, c)
	c.addresses = NewAddressesClient(c.httpClient, c)
	c.webhooks = NewWebhooksClient(c.httpClient, c)
	c.metafields = NewMetafieldsClient(c.httpClient, c)
	c.onetimes = NewOnetimesClient(c.httpClient, c)
	c.store = NewStoreClient(c.httpClient, c)
}

// listPaginator builds the paginator for a List call. Sort validation happens
// here, before any dispatch: an invalid raw sort token yields a paginator
// whose first pull fails with the validation error and never touches the
// network.
func listPaginator[T any](
	fetcher renewly.PageFetcher,
	endpoint, itemsKey string,
	params *renewly.ListParams,
	set renewly.SortSet,
) *renewly.Paginator[T] {
	values, err := params.Values(set)
	if err != nil {
		return renewly.NewPaginator[T](&failFetcher{err: err}, endpoint, itemsKey, nil)
	}

	return renewly.NewPaginator[T](fetcher, endpoint, itemsKey, values)
}

// decodeResource unwraps a single-resource envelope. The API returns
// {"<key>": {...}}; a bare object is accepted as a fallback.
func decodeResource[T any](body []byte, key string) (*T, error) {
	var envelope map[string]json.RawMessage

	if err := json.Unmarshal(body, &envelope); err == nil {
		if raw, ok := envelope[key]; ok {
			var resource T
			if err := json.Unmarshal(raw, &resource); err != nil {
				return nil, fmt.Errorf("parsing %s response: %w", key, err)
			}

			return &resource, nil
		}
	}

	var resource T
	if err := json.Unmarshal(body, &resource); err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", key, err)
	}

	return &resource, nil
}

// failFetcher carries a pre-dispatch validation error into a traversal.
type failFetcher struct {
	err error
}

func (f *failFetcher) FetchPage(context.Context, string, url.Values) (*renewly.RawResponse, error) {
	return nil, f.err
}

func (f *failFetcher) ActiveVersion() renewly.APIVersion {
	return renewly.DefaultAPIVersion
}

var (
	_ renewly.Client      = (*Client)(nil)
	_ http.ConfigSource   = (*Client)(nil)
	_ renewly.PageFetcher = (*Client)(nil)
)
