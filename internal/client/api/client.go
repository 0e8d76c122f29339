package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/aaywp/portal/internal/client/session"
	"github.com/aaywp/portal/internal/common"
	"github.com/aaywp/portal/internal/logging"
	"github.com/google/uuid"
)

const (
	DefaultTimeout = 10 * time.Second
	maxBodySize    = 1 << 20
)

type Client struct {
	baseURL string
	store   session.Store
	http    *http.Client
	log     logging.Logger
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a Client for baseURL (e.g. "http://127.0.0.1:8000/api") that
// reads credentials from store.
func New(baseURL string, store session.Store, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("base url %q: scheme must be http or https", baseURL)
	}
	if store == nil {
		return nil, errors.New("session store is required")
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		store:   store,
		http:    &http.Client{Timeout: DefaultTimeout},
		log:     logging.Nop(),
	}
	for _, o := range opts {
		o(c)
	}
	return c, nil
}

// Session returns the credential store the client reads from.
func (c *Client) Session() session.Store { return c.store }

type requestOptions struct {
	header http.Header
	query  url.Values
}

// RequestOption tweaks a single call.
type RequestOption func(*requestOptions)

// WithIdempotencyKey lets the backend recognize a repeated submission.
func WithIdempotencyKey(key string) RequestOption {
	return func(o *requestOptions) {
		if key != "" {
			o.header.Set(common.IdempotencyKeyHeaderName, key)
		}
	}
}

// IdempotencyKey returns the key opts would send, or "".
func IdempotencyKey(opts ...RequestOption) string {
	ro := requestOptions{header: http.Header{}}
	for _, o := range opts {
		o(&ro)
	}
	return ro.header.Get(common.IdempotencyKeyHeaderName)
}

func withQuery(q url.Values) RequestOption {
	return func(o *requestOptions) { o.query = q }
}

// do issues one request. in, when non-nil, is sent as JSON; out, when
// non-nil, receives the decoded 2xx body.
func (c *Client) do(ctx context.Context, op, method, path string, in, out any, opts ...RequestOption) error {
	ro := requestOptions{header: http.Header{}}
	for _, o := range opts {
		o(&ro)
	}

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return &Error{Op: op, Err: fmt.Errorf("%w: encode request: %v", ErrUnexpected, err)}
		}
		body = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(ro.query) > 0 {
		target += "?" + ro.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return &Error{Op: op, Err: fmt.Errorf("%w: build request: %v", ErrUnexpected, err)}
	}
	for k, v := range ro.header {
		req.Header[k] = v
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	requestID := uuid.NewString()
	req.Header.Set(common.RequestIDHeaderName, requestID)

	token, err := c.store.Token(ctx)
	if err != nil {
		return &Error{Op: op, Err: errCredentialf(err)}
	}
	if token != "" {
		req.Header.Set(common.AuthorizationHeaderName, "Bearer "+token)
	}

	log := c.log.With("op", op, "method", method, "path", path, "request_id", requestID)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn(ctx, "request failed", "error", err, "duration", time.Since(start))
		return &Error{Op: op, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		log.Warn(ctx, "read response failed", "status", resp.StatusCode, "error", err)
		return &Error{Op: op, Status: resp.StatusCode, Err: err}
	}

	log.Debug(ctx, "request done", "status", resp.StatusCode, "duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(op, resp.StatusCode, raw)
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{
			Op:      op,
			Status:  resp.StatusCode,
			Message: "malformed response",
			Body:    raw,
			Err:     fmt.Errorf("%w: %v", ErrUnexpected, err),
		}
	}
	return nil
}
