// ABOUTME: HTTP retrieval of feed documents with conditional request support
// ABOUTME: Enforces a response size cap and refuses private network targets

package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// MaxResponseSize caps how much of a response body is read.
const MaxResponseSize = 10 * 1024 * 1024 // 10MB

// DefaultTimeout bounds a whole request.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent identifies feedparse to servers.
const DefaultUserAgent = "feedparse/1.0 (+https://github.com/harper/feedparse)"

const acceptFeeds = "application/rss+xml, application/atom+xml, application/rdf+xml, application/xml;q=0.9, text/xml;q=0.9, */*;q=0.8"

// ErrPrivateAddress is returned for hosts resolving into private ranges.
var ErrPrivateAddress = errors.New("access to private IP ranges is not allowed")

// StatusError reports a response that was neither 200 nor 304.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code: %d", e.Code)
}

// Result is one fetched document.
type Result struct {
	Body         []byte
	ContentType  string
	ETag         string
	LastModified string
	NotModified  bool
}

// Client fetches documents over HTTP.
type Client struct {
	HTTP      *http.Client
	UserAgent string
}

// NewClient returns a client with the given request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		HTTP:      &http.Client{Timeout: timeout},
		UserAgent: DefaultUserAgent,
	}
}

var defaultClient = NewClient(DefaultTimeout)

// Fetch retrieves urlStr with the default client.
func Fetch(ctx context.Context, urlStr string, etag, lastModified *string) (*Result, error) {
	return defaultClient.Fetch(ctx, urlStr, etag, lastModified)
}

// isPrivateIP reports private and link-local addresses. Loopback stays
// allowed so local test servers work.
func isPrivateIP(ip net.IP) bool {
	if ip.IsLoopback() {
		return false
	}
	return ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast()
}

// Fetch retrieves urlStr. A non-empty etag or lastModified turns the request
// into a conditional one, and a 304 answer comes back as NotModified.
func (c *Client) Fetch(ctx context.Context, urlStr string, etag, lastModified *string) (*Result, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid URL: %w", err)
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid URL: unsupported scheme %q", parsedURL.Scheme)
	}

	if ips, err := net.LookupIP(parsedURL.Hostname()); err == nil {
		for _, ip := range ips {
			if isPrivateIP(ip) {
				return nil, ErrPrivateAddress
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", acceptFeeds)
	if etag != nil && *etag != "" {
		req.Header.Set("If-None-Match", *etag)
	}
	if lastModified != nil && *lastModified != "" {
		req.Header.Set("If-Modified-Since", *lastModified)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified {
		return &Result{NotModified: true}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if int64(len(body)) > MaxResponseSize {
		return nil, fmt.Errorf("response too large (exceeds %d bytes)", MaxResponseSize)
	}

	return &Result{
		Body:         body,
		ContentType:  resp.Header.Get("Content-Type"),
		ETag:         resp.Header.Get("ETag"),
		LastModified: resp.Header.Get("Last-Modified"),
	}, nil
}
