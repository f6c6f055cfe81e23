// Package transport is the low-level wire client for the document store.
//
// It executes single HTTP round trips: URL resolution against a base URL,
// body encoding, default headers, authentication and TLS. Responses outside
// the 2xx range are returned as a *ResponseError carrying the fully captured
// *Response, so higher layers can inspect the status, headers and body.
//
//	client, err := transport.New(transport.Config{
//	    BaseURL: "https://store.example.com",
//	    Timeout: 10 * time.Second,
//	    Auth:    transport.BearerAuth("my-token"),
//	})
//
//	resp, err := client.Perform(ctx, transport.Request{
//	    Method: http.MethodGet,
//	    Path:   "/movies/_doc/1",
//	})
//
// PerformAsync runs the same round trip on the transport's own goroutine and
// delivers exactly one outcome to a ResponseListener.
//
// The transport is single-attempt: no retries, no backoff, no circuit
// breaking. Resilience belongs to the embedding application.
package transport
