package mock

import (
	"context"

	"github.com/fwojciec/jobscrape"
)

var _ jobscrape.ListingWriter = (*ListingWriter)(nil)

// ListingWriter is a mock implementation of jobscrape.ListingWriter.
type ListingWriter struct {
	WriteListingFn func(ctx context.Context, path string, listing *jobscrape.Listing) (string, error)
}

func (w *ListingWriter) WriteListing(ctx context.Context, path string, listing *jobscrape.Listing) (string, error) {
	return w.WriteListingFn(ctx, path, listing)
}

var _ jobscrape.JobFileWriter = (*JobFileWriter)(nil)

// JobFileWriter is a mock implementation of jobscrape.JobFileWriter.
type JobFileWriter struct {
	WriteJobsFn func(ctx context.Context, dir string, jobs []*jobscrape.Job) (string, error)
}

func (w *JobFileWriter) WriteJobs(ctx context.Context, dir string, jobs []*jobscrape.Job) (string, error) {
	return w.WriteJobsFn(ctx, dir, jobs)
}
