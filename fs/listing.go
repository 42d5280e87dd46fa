package fs

import (
	"context"
	"encoding/json"
	"path/filepath"

	"github.com/fwojciec/jobscrape"
)

// Ensure ListingWriter implements jobscrape.ListingWriter at compile time.
var _ jobscrape.ListingWriter = (*ListingWriter)(nil)

// ListingWriter saves a listing as indented JSON.
type ListingWriter struct{}

// NewListingWriter creates a new ListingWriter.
func NewListingWriter() *ListingWriter {
	return &ListingWriter{}
}

// MarshalListing renders a listing as JSON indented with two spaces and
// terminated by a newline.
func MarshalListing(listing *jobscrape.Listing) ([]byte, error) {
	data, err := json.MarshalIndent(listing, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// WriteListing writes the listing to path, creating parent directories,
// and returns the absolute path written.
func (w *ListingWriter) WriteListing(ctx context.Context, path string, listing *jobscrape.Listing) (string, error) {
	if path == "" {
		return "", jobscrape.Errorf(jobscrape.EINVALID, "output path required")
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	data, err := MarshalListing(listing)
	if err != nil {
		return "", err
	}
	if err := writeFileAtomic(abs, data); err != nil {
		return "", err
	}
	return abs, nil
}
