package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/jobscrape"
)

// Ensure LoggingListingParser implements jobscrape.ListingParser.
var _ jobscrape.ListingParser = (*LoggingListingParser)(nil)

// LoggingListingParser wraps a ListingParser with logging.
type LoggingListingParser struct {
	next   jobscrape.ListingParser
	logger *slog.Logger
}

// NewLoggingListingParser creates a new LoggingListingParser.
func NewLoggingListingParser(next jobscrape.ListingParser, logger *slog.Logger) *LoggingListingParser {
	return &LoggingListingParser{next: next, logger: logger}
}

// ParseListing logs the number of jobs found.
func (p *LoggingListingParser) ParseListing(html string, opts jobscrape.ParseOptions) (jobs []*jobscrape.Job, err error) {
	defer func(begin time.Time) {
		log(p.logger, "parse listing", err,
			"source", opts.SourceURL,
			"count", len(jobs),
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.ParseListing(html, opts)
}

// Ensure LoggingDetailParser implements jobscrape.DetailParser.
var _ jobscrape.DetailParser = (*LoggingDetailParser)(nil)

// LoggingDetailParser wraps a DetailParser with logging.
type LoggingDetailParser struct {
	next   jobscrape.DetailParser
	logger *slog.Logger
}

// NewLoggingDetailParser creates a new LoggingDetailParser.
func NewLoggingDetailParser(next jobscrape.DetailParser, logger *slog.Logger) *LoggingDetailParser {
	return &LoggingDetailParser{next: next, logger: logger}
}

// ParseDetail logs how much of the detail page was recognized.
func (p *LoggingDetailParser) ParseDetail(html, pageURL string) (detail *jobscrape.Detail, err error) {
	defer func(begin time.Time) {
		var sections, benefits int
		if detail != nil {
			sections = len(detail.Sections)
			benefits = len(detail.Benefits)
		}
		log(p.logger, "parse detail", err,
			"url", pageURL,
			"sections", sections,
			"benefits", benefits,
			"duration", time.Since(begin),
		)
	}(time.Now())
	return p.next.ParseDetail(html, pageURL)
}
