package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// userAgent is sent with every CDN request. Some emoji CDNs reject
// requests without a browser-like User-Agent.
const userAgent = "Mozilla/5.0"

// defaultFetchTimeout bounds a single CDN request.
const defaultFetchTimeout = 30 * time.Second

// maxBodySize caps the response body read for one emoji bitmap.
const maxBodySize = 8 << 20 // 8 MiB

// Fetcher retrieves the contents of a URL.
//
// Fetch returns ErrNotFound (possibly wrapped) for HTTP responses
// outside the 2xx range; it returns the underlying transport error for
// connection and timeout failures.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases pooled connections. Close must be called exactly
	// once when the fetcher is no longer needed.
	Close() error
}

// HTTPFetcher is the default Fetcher, backed by a pooled net/http
// client. HTTPFetcher is safe for concurrent use.
type HTTPFetcher struct {
	client *http.Client
}

// NewHTTPFetcher creates an HTTPFetcher with its own pooled client.
func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultFetchTimeout},
	}
}

// NewHTTPFetcherWithClient creates an HTTPFetcher around an existing
// client. Useful for tests and for callers with proxy or transport
// requirements.
func NewHTTPFetcherWithClient(client *http.Client) *HTTPFetcher {
	return &HTTPFetcher{client: client}
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("source: build request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("source: fetch %s: %w", url, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("source: fetch %s: status %d: %w", url, resp.StatusCode, ErrNotFound)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("source: read %s: %w", url, err)
	}
	return data, nil
}

// Close implements Fetcher by releasing idle pooled connections.
func (f *HTTPFetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}
