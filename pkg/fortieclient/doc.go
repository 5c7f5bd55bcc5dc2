// Package fortieclient is the entry point for building a Fortnox API client
// that implements the fortie.Client interface.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/fortie/pkg/fortie"
//	  "github.com/fivetwenty-io/fortie/pkg/fortieclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  cli, err := fortieclient.NewWithToken("access-token", "client-secret")
//	  if err != nil { log.Fatal(err) }
//
//	  suppliers, err := cli.Suppliers().All(ctx, fortie.NewQueryParams().WithLimit(100))
//	  if err != nil { log.Fatal(err) }
//	  _ = suppliers
//
//	  created, err := cli.Suppliers().Create(ctx, fortie.Record{"Name": "Acme AB"})
//	  if err != nil { log.Fatal(err) }
//	  _ = created
//	}
//
// # Configuration
//
// New works on a copy of the config: defaults and the trimmed base URL
// apply to the client only, and the caller's struct is left as passed.
//
// # Transport
//
// New builds a retrying HTTP transport from the config unless
// Config.Transport is set, in which case every request goes through it.
package fortieclient
