package serpscore

import "context"

// RawPage holds the outcome of a successful page fetch.
// It is consumed immediately by an Extractor and not retained.
type RawPage struct {
	URL        string
	StatusCode int

	// Body is the response body decoded to UTF-8.
	Body string

	// Encoding is the charset the body was declared in, e.g. "utf-8".
	Encoding string
}

// Fetcher retrieves raw page content from URLs.
type Fetcher interface {
	// Fetch performs an HTTP GET with a browser-like identity and
	// returns the decoded page. Failures carry one of the EINVALID,
	// ETIMEOUT, ETRANSPORT or EHTTPSTATUS error codes.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (*RawPage, error)

	// Close releases idle connections.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
