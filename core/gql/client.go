package gql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/hrforge/cvclient/core/apierror"
)

// DoFunc dispatches a request and returns the raw data payload.
type DoFunc func(ctx context.Context, req Request) (json.RawMessage, error)

// Interceptor decorates a DoFunc. Interceptors compose in registration
// order: the first registered sees the request first.
type Interceptor func(next DoFunc) DoFunc

// Client issues GraphQL operations over HTTP POST. The zero value is not
// usable; construct with New.
type Client struct {
	endpoint     string
	httpClient   *http.Client
	header       http.Header
	log          *slog.Logger
	interceptors []Interceptor
	dispatch     DoFunc
}

// Option configures the client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithHeader adds a header attached to every outgoing request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.header.Set(key, value)
	}
}

// WithLogger sets the logger used by the client and its interceptors.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithInterceptors appends interceptors to the dispatch chain.
func WithInterceptors(interceptors ...Interceptor) Option {
	return func(c *Client) {
		c.interceptors = append(c.interceptors, interceptors...)
	}
}

// New creates a client for the given GraphQL endpoint.
func New(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, ErrEmptyEndpoint
	}

	c := &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		header:     make(http.Header),
		log:        slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.dispatch = chain(c.interceptors, c.roundTrip)

	return c, nil
}

// Use appends interceptors to the dispatch chain after construction. The
// chain is fixed once requests start flowing; Use is not safe to call
// concurrently with Do.
func (c *Client) Use(interceptors ...Interceptor) {
	c.interceptors = append(c.interceptors, interceptors...)
	c.dispatch = chain(c.interceptors, c.roundTrip)
}

// Do dispatches the request through the interceptor chain and unmarshals
// the data payload into out when out is non-nil. The returned error is
// either a categorized *apierror.Error (transport failures) or carries the
// server's verbatim message for later categorization.
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	if req.Header == nil {
		req.Header = make(http.Header)
	}

	data, err := c.dispatch(ctx, req)
	if err != nil {
		return err
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Join(ErrResponseDecoding, err)
	}
	return nil
}

// roundTrip is the innermost DoFunc: one HTTP POST, no retries.
func (c *Client) roundTrip(ctx context.Context, req Request) (json.RawMessage, error) {
	body, err := json.Marshal(payload{
		Query:         req.Query,
		OperationName: req.OperationName,
		Variables:     req.Variables,
	})
	if err != nil {
		return nil, errors.Join(ErrRequestEncoding, err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(ErrRequestEncoding, err)
	}

	for k, v := range c.header {
		httpReq.Header[k] = append([]string(nil), v...)
	}
	for k, v := range req.Header {
		httpReq.Header[k] = append([]string(nil), v...)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		// The request never produced a response; categorized here because
		// there is no server message to match later.
		return nil, apierror.New(apierror.KindNetworkUnavailable, err)
	}
	defer func() { _ = httpResp.Body.Close() }()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, apierror.New(apierror.KindNetworkUnavailable, err)
	}

	var resp response
	if err := json.Unmarshal(raw, &resp); err != nil {
		if httpResp.StatusCode != http.StatusOK {
			return nil, errors.Join(ErrResponseDecoding,
				fmt.Errorf("unexpected status %d", httpResp.StatusCode))
		}
		return nil, errors.Join(ErrResponseDecoding, err)
	}

	// GraphQL surfaces failures as an errors array, usually with status 200.
	// The first message is the one the application categorizes.
	if len(resp.Errors) > 0 {
		return nil, resp.Errors[0]
	}

	return resp.Data, nil
}

// chain wraps the endpoint in interceptors in reverse order so the first
// interceptor runs first.
func chain(interceptors []Interceptor, endpoint DoFunc) DoFunc {
	dispatch := endpoint
	for i := len(interceptors) - 1; i >= 0; i-- {
		dispatch = interceptors[i](dispatch)
	}
	return dispatch
}
