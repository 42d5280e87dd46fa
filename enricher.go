package jobscrape

import "context"

// EnrichOptions selects which enrichment stages run.
type EnrichOptions struct {
	// Details fetches each job's detail page.
	Details bool

	// Companies fetches the company profile page linked from the detail page.
	// It has no effect unless Details is set.
	Companies bool

	// Logos renders each company logo as ASCII art.
	Logos bool
}

// Enabled reports whether any stage is selected.
func (o EnrichOptions) Enabled() bool {
	return o.Details || o.Logos
}

// Enricher adds detail, company, and logo information to jobs in place.
// Enrichment is best-effort: a failing stage leaves the job as it was.
// Only context cancellation is reported as an error.
type Enricher interface {
	Enrich(ctx context.Context, jobs []*Job, opts EnrichOptions) error
}
