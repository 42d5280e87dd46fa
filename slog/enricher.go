package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/jobscrape"
)

// Ensure LoggingEnricher implements jobscrape.Enricher.
var _ jobscrape.Enricher = (*LoggingEnricher)(nil)

// LoggingEnricher wraps an Enricher with a summary log line.
type LoggingEnricher struct {
	next   jobscrape.Enricher
	logger *slog.Logger
}

// NewLoggingEnricher creates a new LoggingEnricher.
func NewLoggingEnricher(next jobscrape.Enricher, logger *slog.Logger) *LoggingEnricher {
	return &LoggingEnricher{next: next, logger: logger}
}

// Enrich logs how many jobs gained detail data.
func (e *LoggingEnricher) Enrich(ctx context.Context, jobs []*jobscrape.Job, opts jobscrape.EnrichOptions) (err error) {
	defer func(begin time.Time) {
		var detailed int
		for _, job := range jobs {
			if job.DetailText != "" || job.DetailHTML != "" {
				detailed++
			}
		}
		log(e.logger, "enrich", err,
			"jobs", len(jobs),
			"detailed", detailed,
			"details", opts.Details,
			"companies", opts.Companies,
			"logos", opts.Logos,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return e.next.Enrich(ctx, jobs, opts)
}
