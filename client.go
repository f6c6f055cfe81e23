package docstore

import (
	"context"

	"github.com/kbukum/docstore/transport"
)

// Client is the high-level document-store client. It builds wire requests
// from typed domain requests, dispatches them through the wire client, and
// converts wire responses and failures back into typed results.
type Client struct {
	transport *transport.Client
}

// New creates a client from a transport configuration.
func New(cfg transport.Config, opts ...transport.Option) (*Client, error) {
	t, err := transport.New(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Client{transport: t}, nil
}

// NewFromTransport creates a client over an existing wire client. The wire
// client remains owned by the caller.
func NewFromTransport(t *transport.Client) *Client {
	return &Client{transport: t}
}

// Transport returns the underlying wire client.
func (c *Client) Transport() *transport.Client {
	return c.transport
}

// Ping checks that the remote store is reachable. Returns true when the
// store answered with a 200.
func (c *Client) Ping(ctx context.Context) (bool, error) {
	return Perform(ctx, c, &PingRequest{}, buildPingRequest, convertExistsResponse)
}

// Get retrieves a document by id. A 404 with a well-formed not-found body is
// returned as a GetResponse with Found=false rather than an error.
func (c *Client) Get(ctx context.Context, req *GetRequest) (*GetResponse, error) {
	return PerformAndParseEntity(ctx, c, req, buildGetRequest, decodeGetResponse, 404)
}

// GetAsync retrieves a document by id without blocking. The listener
// receives exactly one outcome.
func (c *Client) GetAsync(ctx context.Context, req *GetRequest, listener Listener[*GetResponse]) {
	PerformAsyncAndParseEntity(ctx, c, req, buildGetRequest, decodeGetResponse, listener, 404)
}

// Exists checks whether a document exists. A 404 reports false, not an error.
func (c *Client) Exists(ctx context.Context, req *GetRequest) (bool, error) {
	return Perform(ctx, c, req, buildExistsRequest, convertExistsResponse, 404)
}

// ExistsAsync checks whether a document exists without blocking. The
// listener receives exactly one outcome.
func (c *Client) ExistsAsync(ctx context.Context, req *GetRequest, listener Listener[bool]) {
	PerformAsync(ctx, c, req, buildExistsRequest, convertExistsResponse, listener, 404)
}
