package webcat

import "context"

// FetchResult is the outcome of a successful HTTP fetch.
type FetchResult struct {
	// StatusCode is the final HTTP status (always 200 for implementations
	// that retry until success or fail).
	StatusCode int

	// Body is the raw response body.
	Body string
}

// Fetcher retrieves raw HTML from URLs. Implementations own retry and
// backoff policy; exhausted retries surface as an error, never as a
// partial result.
type Fetcher interface {
	// Fetch retrieves the URL. The context controls timeout and
	// cancellation across retries.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
