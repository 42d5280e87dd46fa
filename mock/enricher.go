package mock

import (
	"context"

	"github.com/fwojciec/jobscrape"
)

var _ jobscrape.Enricher = (*Enricher)(nil)

// Enricher is a mock implementation of jobscrape.Enricher.
type Enricher struct {
	EnrichFn func(ctx context.Context, jobs []*jobscrape.Job, opts jobscrape.EnrichOptions) error
}

func (e *Enricher) Enrich(ctx context.Context, jobs []*jobscrape.Job, opts jobscrape.EnrichOptions) error {
	return e.EnrichFn(ctx, jobs, opts)
}
