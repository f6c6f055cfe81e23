// Package docstore is a high-level, typed client for a document-store REST
// API, layered over the wire client in the transport subpackage.
//
// The core of the package is the Perform family: generic dispatchers that
// validate a domain request, convert it to a wire request, execute it
// synchronously or asynchronously, and convert the wire outcome back into a
// typed response or a typed error.
//
//	client, err := docstore.New(transport.Config{
//	    BaseURL: "https://store.example.com",
//	})
//
//	doc, err := client.Get(ctx, docstore.NewGetRequest("movies", "1"))
//	if err != nil {
//	    // *docstore.StatusError for HTTP-level failures
//	}
//
// Non-2xx statuses can be whitelisted per call via the ignore set: Get passes
// 404 so that a missing document parses as a regular Found=false response
// instead of failing. When a whitelisted response cannot be parsed, the call
// falls back to the translated HTTP error.
//
// Asynchronous variants deliver exactly one outcome to a Listener:
//
//	client.GetAsync(ctx, req, docstore.ListenerFuncs[*docstore.GetResponse]{
//	    ResponseFn: func(doc *docstore.GetResponse) { ... },
//	    FailureFn:  func(err error) { ... },
//	})
package docstore
