package jobscrape

import "context"

// Fetcher retrieves HTML from URLs.
type Fetcher interface {
	// Fetch requests the URL and returns the response body as a string.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}

// ImageFetcher retrieves binary resources such as company logos.
type ImageFetcher interface {
	FetchBytes(ctx context.Context, url string) ([]byte, error)
}
