package renewly

import (
	"context"
	"time"
)

// BillingClients provides access to the billing-side resource clients.
type BillingClients interface {
	Subscriptions() SubscriptionsClient
	Charges() ChargesClient
	Orders() OrdersClient
	Onetimes() OnetimesClient
}

// AccountClients provides access to customer-account resource clients.
type AccountClients interface {
	Customers() CustomersClient
	Addresses() AddressesClient
}

// CatalogClients provides access to catalog and promotion resource clients.
type CatalogClients interface {
	Discounts() DiscountsClient
	Metafields() MetafieldsClient
}

// IntegrationClients provides access to integration-facing resource clients.
type IntegrationClients interface {
	Webhooks() WebhooksClient
	Store() StoreClient
}

// Client is the full Renewly API client surface.
type Client interface {
	BillingClients
	AccountClients
	CatalogClients
	IntegrationClients

	// GetConfig returns the configuration currently in effect. The returned
	// value is a copy; mutating it has no effect on the client.
	GetConfig() Config

	// SetAPIVersion switches the wire dialect for all subsequent requests,
	// replacing the client's configuration with an updated copy. A Paginator
	// mid-traversal reads the version fresh on every page boundary, so a
	// switch takes effect for the pages that follow.
	SetAPIVersion(v APIVersion) error
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config carries everything needed to build a client. It is a value type:
// "changing the version" means producing an updated copy (see WithAPIVersion),
// never mutating a Config in place.
//
// renewclient.New validates that AccessToken is non-empty and that HTTPTimeout,
// when set, is at least one second, and normalizes APIEndpoint by trimming a
// trailing slash and adding "https://" when no scheme is present.
type Config struct {
	// AccessToken is sent in the X-Renewly-Access-Token header on every
	// request. Required.
	AccessToken string

	// APIEndpoint is the base URL for the Renewly API. Defaults to
	// https://api.renewly.com.
	APIEndpoint string

	// APIVersion selects the wire dialect. Defaults to DefaultAPIVersion.
	APIVersion APIVersion

	// WebhookSecret is used by VerifyWebhookSignature. Optional.
	WebhookSecret string

	// HTTPTimeout is the per-request transport timeout. Defaults to 30s.
	// Must be >= 1s when set.
	HTTPTimeout time.Duration

	// RetryMax is the maximum number of automatic retries for transient
	// failures (>=500, 429, connection errors). The default is 0: the SDK
	// performs no automatic retries and every failure propagates to the
	// caller unchanged.
	RetryMax int
	// RetryWaitMin is the minimum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMin time.Duration
	// RetryWaitMax is the maximum backoff between retries. Applied when
	// RetryMax > 0.
	RetryWaitMax time.Duration

	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header sent by the client.
	UserAgent string

	// Cache configures optional response caching for GET requests. Nil
	// disables caching.
	Cache *CacheConfig
}

// WithAPIVersion returns a copy of the config with the active version
// replaced.
func (c Config) WithAPIVersion(v APIVersion) Config {
	c.APIVersion = v

	return c
}

// Version returns the configured version, falling back to DefaultAPIVersion.
func (c Config) Version() APIVersion {
	if c.APIVersion == "" {
		return DefaultAPIVersion
	}

	return c.APIVersion
}

// SubscriptionsClient manages subscription resources.
type SubscriptionsClient interface {
	Get(ctx context.Context, id string) (*Subscription, error)
	Create(ctx context.Context, request *SubscriptionCreateRequest) (*Subscription, error)
	Update(ctx context.Context, id string, request *SubscriptionUpdateRequest) (*Subscription, error)
	Delete(ctx context.Context, id string) error
	List(params *ListParams) *Paginator[Subscription]
	Activate(ctx context.Context, id string) (*Subscription, error)
	Cancel(ctx context.Context, id string, request *SubscriptionCancelRequest) (*Subscription, error)
}

// CustomersClient manages customer resources.
type CustomersClient interface {
	Get(ctx context.Context, id string) (*Customer, error)
	Create(ctx context.Context, request *CustomerCreateRequest) (*Customer, error)
	Update(ctx context.Context, id string, request *CustomerUpdateRequest) (*Customer, error)
	Delete(ctx context.Context, id string) error
	List(params *ListParams) *Paginator[Customer]
}

// ChargesClient manages charge resources.
type ChargesClient interface {
	Get(ctx context.Context, id string) (*Charge, error)
	List(params *ListParams) *Paginator[Charge]
	Skip(ctx context.Context, id string, request *ChargeSkipRequest) (*Charge, error)
	Refund(ctx context.Context, id string, request *ChargeRefundRequest) (*Charge, error)
}

// OrdersClient manages order resources.
type OrdersClient interface {
	Get(ctx context.Context, id string) (*Order, error)
	Update(ctx context.Context, id string, request *OrderUpdateRequest) (*Order, error)
	Delete(ctx context.Context, id string) error
	List(params *ListParams) *Paginator[Order]
}

// DiscountsClient manages discount resources.
type DiscountsClient interface {
	Get(ctx context.Context, id string) (*Discount, error)
	Create(ctx context.Context, request *DiscountCreateRequest) (*Discount, error)
	Update(ctx context.Context, id string, request *DiscountUpdateRequest) (*Discount, error)
	Delete(ctx context.Context, id string) error
	List(params *ListParams) *Paginator[Discount]
}

// AddressesClient manages address resources.
type AddressesClient interface {
	Get(ctx context.Context, id string) (*Address, error)
	Create(ctx context.Context, request *AddressCreateRequest) (*Address, error)
	Update(ctx context.Context, id string, request *AddressUpdateRequest) (*Address, error)
	Delete(ctx context.Context, id string) error
	List(params *ListParams) *Paginator[Address]
}

// WebhooksClient manages webhook endpoint registrations.
type WebhooksClient interface {
	Get(ctx context.Context, id string) (*Webhook, error)
	Create(ctx context.Context, request *WebhookCreateRequest) (*Webhook, error)
	Update(ctx context.Context, id string, request *WebhookUpdateRequest) (*Webhook, error)
	Delete(ctx context.Context, id string) error
	List(params *ListParams) *Paginator[Webhook]
	Test(ctx context.Context, id string) (*Webhook, error)
}

// MetafieldsClient manages metafield resources.
type MetafieldsClient interface {
	Get(ctx context.Context, id string) (*Metafield, error)
	Create(ctx context.Context, request *MetafieldCreateRequest) (*Metafield, error)
	Update(ctx context.Context, id string, request *MetafieldUpdateRequest) (*Metafield, error)
	Delete(ctx context.Context, id string) error
	List(params *ListParams) *Paginator[Metafield]
}

// OnetimesClient manages one-time purchase resources.
type OnetimesClient interface {
	Get(ctx context.Context, id string) (*Onetime, error)
	Create(ctx context.Context, request *OnetimeCreateRequest) (*Onetime, error)
	Update(ctx context.Context, id string, request *OnetimeUpdateRequest) (*Onetime, error)
	Delete(ctx context.Context, id string) error
	List(params *ListParams) *Paginator[Onetime]
}

// StoreClient exposes store-level information. The backing endpoint differs
// by version: /store on 2024-06, /shop on 2023-01.
type StoreClient interface {
	Get(ctx context.Context) (*Store, error)
}
