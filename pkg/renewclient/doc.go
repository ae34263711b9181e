// Package renewclient provides the primary entry point for constructing a
// Renewly API client that implements the renewly.Client interface.
//
// It layers configuration validation, endpoint normalization, and the HTTP
// transport on top of the resource interfaces and types defined in the
// renewly package. Most applications should import renewclient to build a
// client, then use the returned renewly.Client to access resource-specific
// clients, for example Subscriptions(), Customers(), Charges(), etc.
//
// Quick start
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
//
//	  // Minimal: an access token against the default endpoint.
//	  cli, err := renewclient.New(renewly.Config{AccessToken: "sk_live_..."})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or pinned to the legacy wire dialect:
//	  cli, err = renewclient.New(renewly.Config{
//	    AccessToken: "sk_live_...",
//	    APIVersion:  renewly.APIVersion202301,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  // Use resource clients via the renewly.Client interface
//	  subs, err := cli.Subscriptions().List(nil).Take(ctx, 10)
//	  if err != nil { log.Fatal(err) }
//	  _ = subs
//	}
//
// # Helpers
//
// The package also provides convenience constructors NewWithToken and
// NewWithEndpoint that wrap New with the appropriate configuration.
package renewclient
