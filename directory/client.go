// Package directory is a typed client for the bot directory REST API.
// One Client wraps one bot identity (id + token), a pooled HTTP transport
// and a token-bucket rate limiter shared by every call the client makes.
package directory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"

	jsoniter "github.com/json-iterator/go"
)

const defaultBaseURL = "https://top.gg/api"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client issues authenticated calls against the directory API on behalf of a
// single bot. It is safe for concurrent use; the rate limiter serializes the
// rate of outbound calls, not the calls themselves.
type Client struct {
	botID   uint64
	token   string
	baseURL string
	http    *http.Client
	limiter Limiter
	log     *slog.Logger
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default pooled HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithLimiter injects a rate limiter, e.g. to share one bucket across several
// clients on purpose, or to disable waiting in tests.
func WithLimiter(l Limiter) Option {
	return func(c *Client) { c.limiter = l }
}

// WithBaseURL points the client at a different API root.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithLogger enables request logging. The default logger discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New returns a client for the given bot id and API token. The identity is
// immutable for the lifetime of the client.
func New(botID uint64, token string, opts ...Option) *Client {
	c := &Client{
		botID:   botID,
		token:   token,
		baseURL: defaultBaseURL,
		http:    newPooledHTTPClient(),
		log:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.limiter == nil {
		c.limiter = NewRateLimiter()
	}
	return c
}

// BotID returns the bot identity the client was constructed with.
func (c *Client) BotID() uint64 { return c.botID }

// newPooledHTTPClient builds an HTTP client tuned for repeated API calls:
// connection pooling, keep-alive, and timeouts on every phase so a dead
// directory endpoint cannot hang a request forever.
func newPooledHTTPClient() *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 20,
		MaxConnsPerHost:     50,
		IdleConnTimeout:     90 * time.Second,

		DialContext: (&net.Dialer{
			Timeout:   10 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,

		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
		ExpectContinueTimeout: 1 * time.Second,

		ForceAttemptHTTP2: true,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}
}

// get acquires a permit, issues one GET and decodes the 200 body into out.
// No retries; a failed call is final.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.token)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("directory_request_failed", "path", path, "error", err)
		return fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug("directory_request",
		"method", http.MethodGet,
		"path", path,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("directory returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

// post acquires a permit and issues one POST with a JSON body. The response
// body is discarded; only the status matters.
func (c *Client) post(ctx context.Context, path string, body any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode %s body: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", c.token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug("directory_request_failed", "path", path, "error", err)
		return fmt.Errorf("directory request: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	c.log.Debug("directory_request",
		"method", http.MethodPost,
		"path", path,
		"status", resp.StatusCode,
		"latency_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("directory returned status %d for %s", resp.StatusCode, path)
	}
	return nil
}
