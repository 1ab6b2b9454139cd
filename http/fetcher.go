// Package http provides HTTP-based implementations of serpscore.Fetcher
// and the SerpAPI-backed serpscore.SearchService.
package http

import (
	"context"
	"errors"
	"io"
	"mime"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/serpscore"
	"golang.org/x/net/html/charset"
)

// DefaultFetchTimeout is the default per-request time budget.
const DefaultFetchTimeout = 10 * time.Second

// DefaultMaxBodyBytes caps how much of a response body is read.
const DefaultMaxBodyBytes = 10 << 20 // 10 MiB

// browserHeaders present the client as a desktop browser. A heuristic
// against trivial bot blocking, not a guarantee.
var browserHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.9,da;q=0.8",
}

// Ensure Fetcher implements serpscore.Fetcher at compile time.
var _ serpscore.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves pages over HTTP with a browser-like identity. It does
// not execute JavaScript; pages that render their content client-side
// come back mostly empty.
type Fetcher struct {
	client       *http.Client
	timeout      time.Duration
	maxBodyBytes int64
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request time budget. The value is applied
// verbatim: zero means requests expire immediately.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodyBytes caps the number of response bytes read per page.
func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodyBytes = n
	}
}

// WithClient replaces the underlying HTTP client.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client:       &http.Client{},
		timeout:      DefaultFetchTimeout,
		maxBodyBytes: DefaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch retrieves the page at rawURL and decodes its body to UTF-8.
// Failures carry a code the retry layer keys on: ETIMEOUT and ETRANSPORT
// are transient, EINVALID and EHTTPSTATUS are not.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*serpscore.RawPage, error) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return nil, serpscore.Errorf(serpscore.EINVALID, "invalid URL %q", rawURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, serpscore.Errorf(serpscore.EINVALID, "unsupported URL scheme %q", u.Scheme)
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, serpscore.Errorf(serpscore.EINVALID, "build request for %q: %v", rawURL, err)
	}
	for k, v := range browserHeaders {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, serpscore.Errorf(serpscore.ETIMEOUT, "fetch %s timed out after %s", rawURL, f.timeout)
		}
		return nil, serpscore.Errorf(serpscore.ETRANSPORT, "fetch %s: %v", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, serpscore.Errorf(serpscore.EHTTPSTATUS, "HTTP %d for %s", resp.StatusCode, rawURL)
	}

	contentType := resp.Header.Get("Content-Type")
	decoded, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBodyBytes), contentType)
	if err != nil {
		return nil, serpscore.Errorf(serpscore.EINTERNAL, "decode %s: %v", rawURL, err)
	}

	body, err := io.ReadAll(decoded)
	if err != nil {
		if isTimeout(err) {
			return nil, serpscore.Errorf(serpscore.ETIMEOUT, "fetch %s timed out after %s", rawURL, f.timeout)
		}
		return nil, serpscore.Errorf(serpscore.ETRANSPORT, "read %s: %v", rawURL, err)
	}

	return &serpscore.RawPage{
		URL:        rawURL,
		StatusCode: resp.StatusCode,
		Body:       string(body),
		Encoding:   encodingName(contentType),
	}, nil
}

// Close releases idle connections held by the underlying client.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// isTimeout reports whether err is a deadline expiry rather than some
// other transport failure.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// encodingName extracts the declared charset from a Content-Type header,
// defaulting to utf-8 when absent. The stored body is always UTF-8; the
// name records what the server declared.
func encodingName(contentType string) string {
	if _, params, err := mime.ParseMediaType(contentType); err == nil {
		if cs := params["charset"]; cs != "" {
			return strings.ToLower(cs)
		}
	}
	return "utf-8"
}
