package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/agenthands/talentscout/internal/config"
	"github.com/agenthands/talentscout/internal/model"
)

// Client is the talent API as seen by the route handlers.
type Client interface {
	SearchPeople(ctx context.Context, query string) ([]model.Person, error)
	// GenomeBio returns the raw genome JSON for username.
	GenomeBio(ctx context.Context, username string) ([]byte, error)
}

// MaxBodyBytes bounds how much of an upstream answer is read.
const MaxBodyBytes = 8 << 20

// HTTPClient is the Client backed by the configured upstream over HTTP.
type HTTPClient struct {
	Config config.UpstreamConfig
	Search config.SearchConfig
	HTTP   *http.Client
}

// NewHTTPClient returns an HTTPClient using the upstream request timeout.
func NewHTTPClient(cfg config.UpstreamConfig, search config.SearchConfig) *HTTPClient {
	return &HTTPClient{
		Config: cfg,
		Search: search,
		HTTP:   NewHTTP(cfg.Timeout()),
	}
}

// NewHTTP returns an http.Client with a pooled transport and the given
// overall request timeout (0 disables it).
func NewHTTP(timeout time.Duration) *http.Client {
	transport := &http.Transport{
		Proxy:                  http.ProxyFromEnvironment,
		MaxIdleConns:           32,
		MaxIdleConnsPerHost:    8,
		IdleConnTimeout:        30 * time.Second,
		ForceAttemptHTTP2:      true,
		MaxResponseHeaderBytes: 1 << 20,
		ResponseHeaderTimeout:  10 * time.Second,
		ExpectContinueTimeout:  1 * time.Second,
	}
	return &http.Client{
		Timeout:   timeout,
		Transport: transport,
	}
}

func (c *HTTPClient) url(path string) string {
	return strings.TrimRight(c.Config.BaseURL, "/") + path
}

func (c *HTTPClient) newRequest(ctx context.Context, method, url string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	ApplyHeaders(req, c.Config)
	return req, nil
}

// ApplyHeaders sets the configured static headers and user agent on req.
func ApplyHeaders(req *http.Request, cfg config.UpstreamConfig) {
	for k, v := range cfg.Headers {
		req.Header.Set(k, v)
	}
	if cfg.UserAgent != "" {
		req.Header.Set("User-Agent", cfg.UserAgent)
	}
}

// do sends req and returns the body of a 2xx answer.
func (c *HTTPClient) do(req *http.Request) ([]byte, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		Drain(resp.Body)
		return nil, &StatusError{URL: req.URL.String(), Status: resp.StatusCode}
	}

	body, err := ReadBody(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read upstream body: %w", err)
	}
	return body, nil
}

// ReadBody reads at most MaxBodyBytes from r. A longer body is
// ErrBodyTooLarge rather than a truncated read.
func ReadBody(r io.Reader) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r, MaxBodyBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxBodyBytes {
		return nil, ErrBodyTooLarge
	}
	return body, nil
}

// Drain discards what is left of r so the connection can be reused.
func Drain(r io.Reader) {
	_, _ = io.Copy(io.Discard, io.LimitReader(r, MaxBodyBytes))
}
