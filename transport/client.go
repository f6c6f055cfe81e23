package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/kbukum/docstore/transport"

// Client executes single wire round trips against a document-store endpoint.
// It handles URL resolution, body encoding, auth, TLS, and the capture of
// non-2xx responses as *ResponseError values. It performs no retries.
type Client struct {
	httpClient *http.Client
	config     Config
	log        zerolog.Logger
	tracer     trace.Tracer
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger sets the logger used for per-request debug logging.
func WithLogger(log zerolog.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// New creates a new wire client with the given configuration.
func New(cfg Config, opts ...Option) (*Client, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpTransport := http.DefaultTransport.(*http.Transport).Clone()

	if cfg.TLS != nil {
		tlsCfg, err := cfg.TLS.Build()
		if err != nil {
			return nil, err
		}
		if tlsCfg != nil {
			httpTransport.TLSClientConfig = tlsCfg
		}
	}

	c := &Client{
		httpClient: &http.Client{
			Transport: httpTransport,
			Timeout:   cfg.Timeout,
		},
		config: cfg,
		log:    zerolog.Nop(),
		tracer: otel.Tracer(tracerName),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// Perform executes one blocking round trip. A 2xx outcome returns the wire
// response. A non-2xx outcome returns the captured response together with a
// *ResponseError wrapping it. Errors before a response was received are
// returned as *Error.
func (c *Client) Perform(ctx context.Context, req Request) (*Response, error) {
	ctx, span := c.tracer.Start(ctx, "docstore.transport.perform",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", req.Method),
			attribute.String("url.path", req.Path),
		),
	)
	defer span.End()

	start := time.Now()
	resp, err := c.perform(ctx, req)
	duration := time.Since(start)

	evt := c.log.Debug().
		Str("method", req.Method).
		Str("path", req.Path).
		Int64("duration_ms", duration.Milliseconds())
	if resp != nil {
		evt = evt.Int("status", resp.StatusCode)
		span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))
	}
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		evt.Err(err).Msg("request failed")
	} else {
		evt.Msg("request completed")
	}

	return resp, err
}

// PerformAsync executes the round trip without blocking the calling
// goroutine. The listener receives exactly one of OnSuccess/OnFailure, on the
// transport's own goroutine.
func (c *Client) PerformAsync(ctx context.Context, req Request, listener ResponseListener) {
	go func() {
		resp, err := c.Perform(ctx, req)
		if err != nil {
			listener.OnFailure(err)
			return
		}
		listener.OnSuccess(resp)
	}()
}

// Unwrap returns the underlying *http.Client for advanced use cases.
func (c *Client) Unwrap() *http.Client {
	return c.httpClient
}

// Close releases idle connections held by the client.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// perform builds and sends the HTTP request and captures the response.
func (c *Client) perform(ctx context.Context, req Request) (*Response, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		if ctx.Err() != nil {
			return nil, NewTimeoutError(err)
		}
		return nil, NewConnectionError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, NewConnectionError(fmt.Errorf("read response body: %w", err))
	}

	result := &Response{
		Method:     req.Method,
		Path:       req.Path,
		StatusCode: resp.StatusCode,
		Headers:    flattenHeaders(resp.Header),
	}
	if len(body) > 0 {
		result.Entity = &Entity{
			ContentType: resp.Header.Get("Content-Type"),
			Body:        body,
		}
	}

	if !result.IsSuccess() {
		return result, &ResponseError{Response: result}
	}
	return result, nil
}

// buildRequest constructs an *http.Request from the client config and request.
func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	// Resolve URL
	url := req.Path
	if c.config.BaseURL != "" && !strings.HasPrefix(req.Path, "http://") && !strings.HasPrefix(req.Path, "https://") {
		url = strings.TrimRight(c.config.BaseURL, "/") + "/" + strings.TrimLeft(req.Path, "/")
	}

	body, contentType, err := encodeBody(req.Body)
	if err != nil {
		return nil, NewRequestError(fmt.Sprintf("encode body: %v", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, url, body)
	if err != nil {
		return nil, NewRequestError(fmt.Sprintf("create request: %v", err))
	}

	if len(req.Query) > 0 {
		q := httpReq.URL.Query()
		for k, v := range req.Query {
			q.Set(k, v)
		}
		httpReq.URL.RawQuery = q.Encode()
	}

	// Default headers first, then request-specific overrides
	for k, v := range c.config.Headers {
		httpReq.Header.Set(k, v)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	if httpReq.Header.Get("X-Request-ID") == "" {
		httpReq.Header.Set("X-Request-ID", uuid.NewString())
	}

	if body != nil && httpReq.Header.Get("Content-Type") == "" && contentType != "" {
		httpReq.Header.Set("Content-Type", contentType)
	}

	// Request-level auth overrides the client-level config
	auth := c.config.Auth
	if req.Auth != nil {
		auth = req.Auth
	}
	auth.apply(httpReq)

	return httpReq, nil
}

// encodeBody converts a body value into an io.Reader and content type.
func encodeBody(body any) (io.Reader, string, error) {
	if body == nil {
		return nil, "", nil
	}
	switch v := body.(type) {
	case io.Reader:
		return v, "", nil
	case []byte:
		return bytes.NewReader(v), "", nil
	case string:
		return strings.NewReader(v), "text/plain", nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, "", err
		}
		return bytes.NewReader(data), "application/json", nil
	}
}

// flattenHeaders converts multi-value headers to single-value.
func flattenHeaders(h http.Header) map[string]string {
	result := make(map[string]string, len(h))
	for k, v := range h {
		if len(v) > 0 {
			result[k] = v[0]
		}
	}
	return result
}
