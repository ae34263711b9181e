package renewly

import (
	"time"
)

// Resource is the base structure shared by Renewly API resources.
type Resource struct {
	ID        string    `json:"id"         yaml:"id"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt time.Time `json:"updated_at" yaml:"updated_at"`
}

// SubscriptionStatus enumerates subscription lifecycle states.
type SubscriptionStatus string

// Subscription statuses.
const (
	SubscriptionStatusActive    SubscriptionStatus = "active"
	SubscriptionStatusCancelled SubscriptionStatus = "cancelled"
	SubscriptionStatusExpired   SubscriptionStatus = "expired"
	SubscriptionStatusPaused    SubscriptionStatus = "paused"
)

// Subscription represents a recurring purchase of one product variant.
type Subscription struct {
	Resource

	CustomerID          string             `json:"customer_id"                    yaml:"customer_id"`
	AddressID           string             `json:"address_id"                     yaml:"address_id"`
	Status              SubscriptionStatus `json:"status"                         yaml:"status"`
	ProductTitle        string             `json:"product_title"                  yaml:"product_title"`
	VariantTitle        string             `json:"variant_title,omitempty"        yaml:"variant_title,omitempty"`
	SKU                 string             `json:"sku,omitempty"                  yaml:"sku,omitempty"`
	Price               string             `json:"price"                          yaml:"price"`
	Quantity            int                `json:"quantity"                       yaml:"quantity"`
	OrderIntervalUnit   string             `json:"order_interval_unit"            yaml:"order_interval_unit"`
	OrderIntervalFreq   int                `json:"order_interval_frequency"       yaml:"order_interval_frequency"`
	ChargeIntervalFreq  int                `json:"charge_interval_frequency"      yaml:"charge_interval_frequency"`
	NextChargeScheduled *time.Time         `json:"next_charge_scheduled_at"       yaml:"next_charge_scheduled_at"`
	CancelledAt         *time.Time         `json:"cancelled_at,omitempty"         yaml:"cancelled_at,omitempty"`
	CancellationReason  string             `json:"cancellation_reason,omitempty"  yaml:"cancellation_reason,omitempty"`
}

// SubscriptionCreateRequest creates a subscription.
type SubscriptionCreateRequest struct {
	CustomerID         string `json:"customer_id"`
	AddressID          string `json:"address_id"`
	VariantID          string `json:"variant_id"`
	Price              string `json:"price,omitempty"`
	Quantity           int    `json:"quantity"`
	OrderIntervalUnit  string `json:"order_interval_unit"`
	OrderIntervalFreq  int    `json:"order_interval_frequency"`
	ChargeIntervalFreq int    `json:"charge_interval_frequency"`
}

// SubscriptionUpdateRequest updates a subscription.
type SubscriptionUpdateRequest struct {
	Price              *string `json:"price,omitempty"`
	Quantity           *int    `json:"quantity,omitempty"`
	OrderIntervalUnit  *string `json:"order_interval_unit,omitempty"`
	OrderIntervalFreq  *int    `json:"order_interval_frequency,omitempty"`
	ChargeIntervalFreq *int    `json:"charge_interval_frequency,omitempty"`
}

// SubscriptionCancelRequest cancels a subscription.
type SubscriptionCancelRequest struct {
	CancellationReason         string `json:"cancellation_reason"`
	CancellationReasonComments string `json:"cancellation_reason_comments,omitempty"`
	SendEmail                  bool   `json:"send_email,omitempty"`
}

// Customer represents a buyer with a stored payment method.
type Customer struct {
	Resource

	Email               string `json:"email"                     yaml:"email"`
	FirstName           string `json:"first_name"                yaml:"first_name"`
	LastName            string `json:"last_name"                 yaml:"last_name"`
	Phone               string `json:"phone,omitempty"           yaml:"phone,omitempty"`
	ExternalID          string `json:"external_id,omitempty"     yaml:"external_id,omitempty"`
	SubscriptionsActive int    `json:"subscriptions_active_count" yaml:"subscriptions_active_count"`
	SubscriptionsTotal  int    `json:"subscriptions_total_count"  yaml:"subscriptions_total_count"`
}

// CustomerCreateRequest creates a customer.
type CustomerCreateRequest struct {
	Email      string `json:"email"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Phone      string `json:"phone,omitempty"`
	ExternalID string `json:"external_id,omitempty"`
}

// CustomerUpdateRequest updates a customer.
type CustomerUpdateRequest struct {
	Email     *string `json:"email,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// ChargeStatus enumerates charge lifecycle states.
type ChargeStatus string

// Charge statuses.
const (
	ChargeStatusQueued   ChargeStatus = "queued"
	ChargeStatusSuccess  ChargeStatus = "success"
	ChargeStatusError    ChargeStatus = "error"
	ChargeStatusRefunded ChargeStatus = "refunded"
	ChargeStatusSkipped  ChargeStatus = "skipped"
)

// ChargeLineItem is one billed line of a charge.
type ChargeLineItem struct {
	SubscriptionID string `json:"subscription_id" yaml:"subscription_id"`
	Title          string `json:"title"           yaml:"title"`
	Quantity       int    `json:"quantity"        yaml:"quantity"`
	UnitPrice      string `json:"unit_price"      yaml:"unit_price"`
	TotalPrice     string `json:"total_price"     yaml:"total_price"`
}

// Charge represents one billing attempt against a customer.
type Charge struct {
	Resource

	CustomerID    string           `json:"customer_id"              yaml:"customer_id"`
	AddressID     string           `json:"address_id"               yaml:"address_id"`
	Status        ChargeStatus     `json:"status"                   yaml:"status"`
	ScheduledAt   *time.Time       `json:"scheduled_at"             yaml:"scheduled_at"`
	ProcessedAt   *time.Time       `json:"processed_at,omitempty"   yaml:"processed_at,omitempty"`
	Subtotal      string           `json:"subtotal_price"           yaml:"subtotal_price"`
	TotalPrice    string           `json:"total_price"              yaml:"total_price"`
	TotalRefunds  string           `json:"total_refunds,omitempty"  yaml:"total_refunds,omitempty"`
	Currency      string           `json:"currency"                 yaml:"currency"`
	ErrorMessage  string           `json:"error,omitempty"          yaml:"error,omitempty"`
	RetryAttempts int              `json:"retry_attempts,omitempty" yaml:"retry_attempts,omitempty"`
	LineItems     []ChargeLineItem `json:"line_items"               yaml:"line_items"`
}

// ChargeSkipRequest skips an upcoming charge for specific subscriptions.
type ChargeSkipRequest struct {
	SubscriptionIDs []string `json:"subscription_ids"`
}

// ChargeRefundRequest refunds a processed charge.
type ChargeRefundRequest struct {
	Amount     string `json:"amount"`
	FullRefund bool   `json:"full_refund,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

// Order represents a fulfillable order produced by a successful charge.
type Order struct {
	Resource

	CustomerID  string     `json:"customer_id"            yaml:"customer_id"`
	ChargeID    string     `json:"charge_id"              yaml:"charge_id"`
	Status      string     `json:"status"                 yaml:"status"`
	TotalPrice  string     `json:"total_price"            yaml:"total_price"`
	Currency    string     `json:"currency"               yaml:"currency"`
	ShippedDate *time.Time `json:"shipped_date,omitempty" yaml:"shipped_date,omitempty"`
	IsPrepaid   bool       `json:"is_prepaid"             yaml:"is_prepaid"`
}

// OrderUpdateRequest updates an order.
type OrderUpdateRequest struct {
	Status      *string    `json:"status,omitempty"`
	ShippedDate *time.Time `json:"shipped_date,omitempty"`
}

// Discount represents a promotion applicable to charges.
type Discount struct {
	Resource

	Code       string     `json:"code"                 yaml:"code"`
	Value      string     `json:"value"                yaml:"value"`
	ValueType  string     `json:"value_type"           yaml:"value_type"`
	Status     string     `json:"status"               yaml:"status"`
	UsageLimit int        `json:"usage_limit,omitempty" yaml:"usage_limit,omitempty"`
	TimesUsed  int        `json:"times_used"           yaml:"times_used"`
	StartsAt   *time.Time `json:"starts_at,omitempty" yaml:"starts_at,omitempty"`
	EndsAt     *time.Time `json:"ends_at,omitempty"   yaml:"ends_at,omitempty"`
}

// DiscountCreateRequest creates a discount.
type DiscountCreateRequest struct {
	Code       string     `json:"code"`
	Value      string     `json:"value"`
	ValueType  string     `json:"value_type"`
	UsageLimit int        `json:"usage_limit,omitempty"`
	StartsAt   *time.Time `json:"starts_at,omitempty"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
}

// DiscountUpdateRequest updates a discount.
type DiscountUpdateRequest struct {
	Status     *string    `json:"status,omitempty"`
	UsageLimit *int       `json:"usage_limit,omitempty"`
	EndsAt     *time.Time `json:"ends_at,omitempty"`
}

// Address represents a shipping address owned by a customer.
type Address struct {
	Resource

	CustomerID string `json:"customer_id"       yaml:"customer_id"`
	Address1   string `json:"address1"          yaml:"address1"`
	Address2   string `json:"address2,omitempty" yaml:"address2,omitempty"`
	City       string `json:"city"              yaml:"city"`
	Province   string `json:"province,omitempty" yaml:"province,omitempty"`
	Zip        string `json:"zip"               yaml:"zip"`
	Country    string `json:"country"           yaml:"country"`
	Phone      string `json:"phone,omitempty"   yaml:"phone,omitempty"`
}

// AddressCreateRequest creates an address.
type AddressCreateRequest struct {
	CustomerID string `json:"customer_id"`
	Address1   string `json:"address1"`
	Address2   string `json:"address2,omitempty"`
	City       string `json:"city"`
	Province   string `json:"province,omitempty"`
	Zip        string `json:"zip"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

// AddressUpdateRequest updates an address.
type AddressUpdateRequest struct {
	Address1 *string `json:"address1,omitempty"`
	Address2 *string `json:"address2,omitempty"`
	City     *string `json:"city,omitempty"`
	Province *string `json:"province,omitempty"`
	Zip      *string `json:"zip,omitempty"`
	Country  *string `json:"country,omitempty"`
	Phone    *string `json:"phone,omitempty"`
}

// WebhookTopic identifies one event stream a webhook can subscribe to.
type WebhookTopic string

// Webhook topics.
const (
	WebhookTopicSubscriptionCreated   WebhookTopic = "subscription/created"
	WebhookTopicSubscriptionUpdated   WebhookTopic = "subscription/updated"
	WebhookTopicSubscriptionCancelled WebhookTopic = "subscription/cancelled"
	WebhookTopicChargeSuccess         WebhookTopic = "charge/success"
	WebhookTopicChargeFailed          WebhookTopic = "charge/failed"
	WebhookTopicOrderCreated          WebhookTopic = "order/created"
	WebhookTopicCustomerCreated       WebhookTopic = "customer/created"
)

// Webhook represents a registered webhook endpoint.
type Webhook struct {
	Resource

	URL    string         `json:"url"    yaml:"url"`
	Topics []WebhookTopic `json:"topics" yaml:"topics"`
}

// WebhookCreateRequest registers a webhook endpoint.
type WebhookCreateRequest struct {
	URL    string         `json:"url"`
	Topics []WebhookTopic `json:"topics"`
}

// WebhookUpdateRequest updates a webhook registration.
type WebhookUpdateRequest struct {
	URL    *string        `json:"url,omitempty"`
	Topics []WebhookTopic `json:"topics,omitempty"`
}

// Metafield attaches merchant-defined data to another resource.
type Metafield struct {
	Resource

	OwnerResource string `json:"owner_resource" yaml:"owner_resource"`
	OwnerID       string `json:"owner_id"       yaml:"owner_id"`
	Namespace     string `json:"namespace"      yaml:"namespace"`
	Key           string `json:"key"            yaml:"key"`
	Value         string `json:"value"          yaml:"value"`
	ValueType     string `json:"value_type"     yaml:"value_type"`
}

// MetafieldCreateRequest creates a metafield.
type MetafieldCreateRequest struct {
	OwnerResource string `json:"owner_resource"`
	OwnerID       string `json:"owner_id"`
	Namespace     string `json:"namespace"`
	Key           string `json:"key"`
	Value         string `json:"value"`
	ValueType     string `json:"value_type"`
}

// MetafieldUpdateRequest updates a metafield.
type MetafieldUpdateRequest struct {
	Value     *string `json:"value,omitempty"`
	ValueType *string `json:"value_type,omitempty"`
}

// Onetime represents a one-time product added to an upcoming delivery.
type Onetime struct {
	Resource

	AddressID      string     `json:"address_id"               yaml:"address_id"`
	CustomerID     string     `json:"customer_id"              yaml:"customer_id"`
	ProductTitle   string     `json:"product_title"            yaml:"product_title"`
	VariantID      string     `json:"variant_id"               yaml:"variant_id"`
	Price          string     `json:"price"                    yaml:"price"`
	Quantity       int        `json:"quantity"                 yaml:"quantity"`
	NextChargeDate *time.Time `json:"next_charge_scheduled_at" yaml:"next_charge_scheduled_at"`
}

// OnetimeCreateRequest creates a one-time purchase.
type OnetimeCreateRequest struct {
	AddressID      string     `json:"address_id"`
	VariantID      string     `json:"variant_id"`
	Price          string     `json:"price,omitempty"`
	Quantity       int        `json:"quantity"`
	NextChargeDate *time.Time `json:"next_charge_scheduled_at"`
}

// OnetimeUpdateRequest updates a one-time purchase.
type OnetimeUpdateRequest struct {
	Price          *string    `json:"price,omitempty"`
	Quantity       *int       `json:"quantity,omitempty"`
	NextChargeDate *time.Time `json:"next_charge_scheduled_at,omitempty"`
}

// Store represents store-level settings and identity.
type Store struct {
	ID        string    `json:"id"         yaml:"id"`
	Name      string    `json:"name"       yaml:"name"`
	Domain    string    `json:"domain"     yaml:"domain"`
	Email     string    `json:"email"      yaml:"email"`
	Currency  string    `json:"currency"   yaml:"currency"`
	Timezone  string    `json:"timezone"   yaml:"timezone"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
