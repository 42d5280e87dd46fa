package jobscrape

import "context"

// ListingWriter persists a scrape result.
type ListingWriter interface {
	// WriteListing stores the listing at path and returns the resolved
	// location that was written.
	WriteListing(ctx context.Context, path string, listing *Listing) (string, error)
}

// JobFileWriter writes one file per job into a directory.
type JobFileWriter interface {
	// WriteJobs returns the resolved directory. Writing no jobs is a no-op.
	WriteJobs(ctx context.Context, dir string, jobs []*Job) (string, error)
}
