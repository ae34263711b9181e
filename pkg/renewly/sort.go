package renewly

import (
	"net/url"
	"strings"
)

// SortValue is implemented by the per-resource sort enums. A symbolic sort is
// by construction drawn from the legal set for its resource, so it is
// canonicalized without any legality check.
type SortValue interface {
	sortToken() string
}

// Sort is the tagged sort_by input: either a symbolic enum member or a raw
// string. Raw strings are validated against the resource's legal set before
// any request is dispatched; symbolic values pass through unconditionally.
type Sort struct {
	value    string
	symbolic bool
}

// SortBy wraps a symbolic sort value.
func SortBy(v SortValue) Sort {
	return Sort{value: v.sortToken(), symbolic: true}
}

// SortByRaw wraps a raw sort string, to be validated at dispatch time.
func SortByRaw(s string) Sort {
	return Sort{value: s}
}

// IsZero reports whether no sort was supplied.
func (s Sort) IsZero() bool {
	return s.value == "" && !s.symbolic
}

// SortSet is a resource-scoped closed set of legal sort tokens. A folding set
// upper-cases both sides before comparison, resolving any-cased input to the
// canonical token.
type SortSet struct {
	tokens   []string
	foldCase bool
}

// NewSortSet builds a case-sensitive sort set. Token order is preserved for
// error messages.
func NewSortSet(tokens ...string) SortSet {
	return SortSet{tokens: tokens}
}

// NewFoldingSortSet builds a sort set whose tokens accept any case.
func NewFoldingSortSet(tokens ...string) SortSet {
	return SortSet{tokens: tokens, foldCase: true}
}

// Tokens returns the legal tokens in declaration order.
func (s SortSet) Tokens() []string {
	return s.tokens
}

// Resolve maps input to its canonical token, reporting whether it is legal.
func (s SortSet) Resolve(input string) (string, bool) {
	folded := strings.ToUpper(input)

	for _, token := range s.tokens {
		if token == input {
			return token, true
		}

		if s.foldCase && strings.ToUpper(token) == folded {
			return token, true
		}
	}

	return "", false
}

// NormalizeSort guarantees that the sort_by entry of values, if any, is one
// of the legal tokens of set. Symbolic sorts are written through
// unconditionally; raw sorts (whether supplied as a Sort or already present
// in values) are resolved against the set, and an illegal value yields an
// InvalidSortError enumerating every legal token.
func NormalizeSort(values url.Values, sort Sort, set SortSet) error {
	if sort.symbolic {
		values.Set("sort_by", sort.value)

		return nil
	}

	raw := sort.value
	if raw == "" {
		raw = values.Get("sort_by")
	}

	if raw == "" {
		return nil
	}

	canonical, ok := set.Resolve(raw)
	if !ok {
		return &InvalidSortError{Value: raw, Legal: set.Tokens()}
	}

	values.Set("sort_by", canonical)

	return nil
}

// SubscriptionSort enumerates the legal sort tokens for subscriptions.
type SubscriptionSort string

func (s SubscriptionSort) sortToken() string { return string(s) }

// Subscription sort tokens.
const (
	SubscriptionSortIDAsc         SubscriptionSort = "id-asc"
	SubscriptionSortIDDesc        SubscriptionSort = "id-desc"
	SubscriptionSortCreatedAtAsc  SubscriptionSort = "created_at-asc"
	SubscriptionSortCreatedAtDesc SubscriptionSort = "created_at-desc"
	SubscriptionSortUpdatedAtAsc  SubscriptionSort = "updated_at-asc"
	SubscriptionSortUpdatedAtDesc SubscriptionSort = "updated_at-desc"
)

// SubscriptionSortSet is the legal set for subscription listing.
func SubscriptionSortSet() SortSet {
	return NewSortSet(
		string(SubscriptionSortIDAsc), string(SubscriptionSortIDDesc),
		string(SubscriptionSortCreatedAtAsc), string(SubscriptionSortCreatedAtDesc),
		string(SubscriptionSortUpdatedAtAsc), string(SubscriptionSortUpdatedAtDesc),
	)
}

// CustomerSort enumerates the legal sort tokens for customers.
type CustomerSort string

func (s CustomerSort) sortToken() string { return string(s) }

// Customer sort tokens.
const (
	CustomerSortIDAsc         CustomerSort = "id-asc"
	CustomerSortIDDesc        CustomerSort = "id-desc"
	CustomerSortCreatedAtAsc  CustomerSort = "created_at-asc"
	CustomerSortCreatedAtDesc CustomerSort = "created_at-desc"
	CustomerSortUpdatedAtAsc  CustomerSort = "updated_at-asc"
	CustomerSortUpdatedAtDesc CustomerSort = "updated_at-desc"
)

// CustomerSortSet is the legal set for customer listing.
func CustomerSortSet() SortSet {
	return NewSortSet(
		string(CustomerSortIDAsc), string(CustomerSortIDDesc),
		string(CustomerSortCreatedAtAsc), string(CustomerSortCreatedAtDesc),
		string(CustomerSortUpdatedAtAsc), string(CustomerSortUpdatedAtDesc),
	)
}

// ChargeSort enumerates the legal sort tokens for charges. Status tokens are
// matched case-insensitively: any casing is accepted and resolved to the
// canonical token.
type ChargeSort string

func (s ChargeSort) sortToken() string { return string(s) }

// Charge sort tokens.
const (
	ChargeSortIDAsc           ChargeSort = "id-asc"
	ChargeSortIDDesc          ChargeSort = "id-desc"
	ChargeSortCreatedAtAsc    ChargeSort = "created_at-asc"
	ChargeSortCreatedAtDesc   ChargeSort = "created_at-desc"
	ChargeSortScheduledAtAsc  ChargeSort = "scheduled_at-asc"
	ChargeSortScheduledAtDesc ChargeSort = "scheduled_at-desc"
	ChargeSortStatusAsc       ChargeSort = "status-asc"
	ChargeSortStatusDesc      ChargeSort = "status-desc"
)

// ChargeSortSet is the legal set for charge listing.
func ChargeSortSet() SortSet {
	return NewFoldingSortSet(
		string(ChargeSortIDAsc), string(ChargeSortIDDesc),
		string(ChargeSortCreatedAtAsc), string(ChargeSortCreatedAtDesc),
		string(ChargeSortScheduledAtAsc), string(ChargeSortScheduledAtDesc),
		string(ChargeSortStatusAsc), string(ChargeSortStatusDesc),
	)
}

// OrderSort enumerates the legal sort tokens for orders.
type OrderSort string

func (s OrderSort) sortToken() string { return string(s) }

// Order sort tokens.
const (
	OrderSortIDAsc           OrderSort = "id-asc"
	OrderSortIDDesc          OrderSort = "id-desc"
	OrderSortCreatedAtAsc    OrderSort = "created_at-asc"
	OrderSortCreatedAtDesc   OrderSort = "created_at-desc"
	OrderSortShippedDateAsc  OrderSort = "shipped_date-asc"
	OrderSortShippedDateDesc OrderSort = "shipped_date-desc"
)

// OrderSortSet is the legal set for order listing.
func OrderSortSet() SortSet {
	return NewSortSet(
		string(OrderSortIDAsc), string(OrderSortIDDesc),
		string(OrderSortCreatedAtAsc), string(OrderSortCreatedAtDesc),
		string(OrderSortShippedDateAsc), string(OrderSortShippedDateDesc),
	)
}

// GenericSort enumerates the sort tokens shared by the remaining list
// endpoints (discounts, addresses, webhooks, metafields, onetimes).
type GenericSort string

func (s GenericSort) sortToken() string { return string(s) }

// Generic sort tokens.
const (
	GenericSortIDAsc         GenericSort = "id-asc"
	GenericSortIDDesc        GenericSort = "id-desc"
	GenericSortCreatedAtAsc  GenericSort = "created_at-asc"
	GenericSortCreatedAtDesc GenericSort = "created_at-desc"
	GenericSortUpdatedAtAsc  GenericSort = "updated_at-asc"
	GenericSortUpdatedAtDesc GenericSort = "updated_at-desc"
)

// GenericSortSet is the legal set shared by the remaining list endpoints.
func GenericSortSet() SortSet {
	return NewSortSet(
		string(GenericSortIDAsc), string(GenericSortIDDesc),
		string(GenericSortCreatedAtAsc), string(GenericSortCreatedAtDesc),
		string(GenericSortUpdatedAtAsc), string(GenericSortUpdatedAtDesc),
	)
}
