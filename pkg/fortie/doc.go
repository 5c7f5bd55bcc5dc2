// Package fortie provides types, interfaces, and helpers for working with
// the Fortnox accounting REST API.
//
// # Overview
//
// The fortie package defines the shared vocabulary of the client: Record
// (one resource instance as a generic mapping), ResourceSchema (which
// fields are readable, writeable and required), QueryParams, the Transport
// capability requests are sent through, and the resource client
// interfaces. A concrete client is provided by the fortieclient package.
//
// Getting a client
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
//	  cli, err := fortieclient.New(ctx, &fortie.Config{
//	    AccessToken:  "token",
//	    ClientSecret: "secret",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  supplier, err := cli.Suppliers().Create(ctx, fortie.Record{"Name": "Acme"})
//	  if err != nil { log.Fatal(err) }
//	  _ = supplier
//	}
//
// # Writes
//
// Create and Update drop every field that is not writeable for the
// resource and fail with a *MissingRequiredAttributeError when a required
// field is absent. The remaining fields are wrapped under the resource's
// singular name, e.g. {"Supplier": {"Name": "Acme"}}.
//
// # Errors
//
// Failed HTTP exchanges surface as *TransportError carrying the status and
// body. Helpers such as IsNotFound and IsUnauthorized branch on common
// cases; APIError parses the Fortnox ErrorInformation block.
package fortie
