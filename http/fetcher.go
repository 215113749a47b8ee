// Package http provides the HTTP implementation of webcat.Fetcher with
// bounded retries and exponential backoff on rate-limit responses.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/webcat"
)

// Ensure Fetcher implements webcat.Fetcher at compile time.
var _ webcat.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw HTML over HTTP. Retry policy: HTTP 429 backs off
// exponentially from the base delay; other failures wait one base delay;
// retries stop after MaxRetries total attempts.
type Fetcher struct {
	client     *http.Client
	timeout    time.Duration
	userAgent  string
	maxRetries int
	baseDelay  time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) { f.timeout = d }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

// WithMaxRetries bounds the total number of attempts per URL.
func WithMaxRetries(n int) Option {
	return func(f *Fetcher) { f.maxRetries = n }
}

// WithBaseDelay sets the backoff base. Tests set this to zero to avoid
// real sleeps.
func WithBaseDelay(d time.Duration) Option {
	return func(f *Fetcher) { f.baseDelay = d }
}

// NewFetcher creates a new HTTP Fetcher with the package defaults from
// webcat.DefaultConfig.
func NewFetcher(opts ...Option) *Fetcher {
	defaults := webcat.DefaultConfig()
	f := &Fetcher{
		timeout:    defaults.Timeout,
		userAgent:  defaults.UserAgent,
		maxRetries: defaults.MaxRetries,
		baseDelay:  defaults.DelayMin,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the URL, retrying up to the attempt limit. A 200 response
// yields the body; exhausted retries yield an EUNAVAILABLE error.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*webcat.FetchResult, error) {
	attempts := f.maxRetries
	if attempts < 1 {
		attempts = 1
	}

	var lastStatus int
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		result, status, err := f.fetchOnce(ctx, url)
		if err == nil && status == http.StatusOK {
			return result, nil
		}
		lastStatus, lastErr = status, err

		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		if attempt >= attempts-1 {
			break
		}

		// 429 means we are being rate limited: back off exponentially.
		delay := f.baseDelay
		if status == http.StatusTooManyRequests {
			delay = f.baseDelay * (1 << attempt)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(delay):
		}
	}

	if lastErr != nil {
		return nil, webcat.Errorf(webcat.EUNAVAILABLE, "fetch failed after %d attempts: %v", attempts, lastErr)
	}
	return nil, webcat.Errorf(webcat.EUNAVAILABLE, "fetch failed after %d attempts: HTTP %d", attempts, lastStatus)
}

// fetchOnce performs a single request. It returns the status separately so
// the retry loop can distinguish rate limiting from other failures.
func (f *Fetcher) fetchOnce(ctx context.Context, url string) (*webcat.FetchResult, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, nil
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	return &webcat.FetchResult{StatusCode: resp.StatusCode, Body: string(body)}, resp.StatusCode, nil
}

// Close releases resources. For the HTTP fetcher this is a no-op since
// http.Client doesn't require explicit cleanup.
func (f *Fetcher) Close() error {
	return nil
}
