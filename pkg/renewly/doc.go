// Package renewly provides types, interfaces, and helpers for working with the
// Renewly subscription payments API.
//
// # Overview
//
// The renewly package defines the domain types (e.g., Subscription, Customer,
// Charge, Order, Discount) and the interfaces for resource-oriented clients
// (e.g., SubscriptionsClient, CustomersClient). A concrete implementation of
// these clients is provided by the renewclient package, which wires
// configuration, transport, and authentication. Most consumers should import
// renewclient to construct a client and then interact with the resource client
// interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/renewly-io/renewly-client/pkg/renewclient"
//	  "github.com/renewly-io/renewly-client/pkg/renewly"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := renewclient.New(&renewly.Config{AccessToken: "sk_test_xxx"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Collect every subscription, fetching pages on demand
//	  subs, err := cli.Subscriptions().List(nil).All(ctx)
//	  if err != nil { log.Fatal(err) }
//	  _ = subs
//	}
//
// # API versions and pagination
//
// The Renewly API speaks two wire dialects selected by the X-Renewly-Version
// header: 2023-01 carries pagination cursors in a Link response header, while
// 2024-06 embeds next_cursor/previous_cursor in the response body. The
// Paginator hides the difference: it extracts the cursor appropriate to the
// client's active version on every page boundary and round-trips it verbatim
// as the cursor query parameter of the next request.
//
//	pager := cli.Charges().List(nil)
//	it := pager.Iter()
//	for it.HasNext() {
//	  charge, err := it.Next(ctx)
//	  if err != nil { break }
//	  _ = charge
//	}
//
// Bounded helpers (First, Take, Chunk) never fetch more pages than needed to
// satisfy their bound; All and Count drain the collection and may issue an
// unbounded number of requests.
//
// # Errors
//
// Failures are represented by typed errors: RequestError for transport-level
// failures, AuthenticationError for 401/403, RateLimitError for 429 (carrying
// parsed RateLimitInfo), APIStatusError for any other status >= 400, and
// InvalidSortError for sort tokens rejected before dispatch. Helpers such as
// IsAuthentication, IsRateLimited, and IsNotFound make it easy to branch on
// common cases at the point of iteration.
//
// # Interceptors and caching
//
// The package includes generic building blocks such as request/response
// interceptors (for logging and client-side rate limiting) and a pluggable
// Cache abstraction with in-memory and NATS JetStream KV backends. The
// renewclient package composes these pieces for a sensible default client;
// applications with advanced needs can also use these primitives directly.
package renewly
