// Package scrape orchestrates a scrape: fetching a listing page, extracting
// its jobs, and optionally enriching them from detail and company pages.
package scrape

import (
	"context"
	"fmt"

	"github.com/fwojciec/jobscrape"
)

// Scraper fetches and parses a single listing page.
type Scraper struct {
	Fetcher  jobscrape.Fetcher
	Listings jobscrape.ListingParser
	Enricher jobscrape.Enricher
}

// ScrapeOptions configures a scrape of one listing page.
type ScrapeOptions struct {
	// BaseURL is the first listing page. Defaults to jobscrape.DefaultListURL.
	BaseURL string

	// Page is the 1-based page number.
	Page int

	// Limit caps the number of jobs. Zero means no limit.
	Limit int

	Enrich jobscrape.EnrichOptions
}

// Scrape fetches the requested listing page and returns its jobs. Relative
// links resolve against the page's origin.
func (s *Scraper) Scrape(ctx context.Context, opts ScrapeOptions) (*jobscrape.Listing, error) {
	base := opts.BaseURL
	if base == "" {
		base = jobscrape.DefaultListURL
	}

	pageURL, err := jobscrape.ListingURL(base, opts.Page)
	if err != nil {
		return nil, err
	}
	origin, err := jobscrape.Origin(pageURL)
	if err != nil {
		return nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch listing %s: %w", pageURL, err)
	}

	return s.Parse(ctx, html, jobscrape.ParseOptions{
		Origin:    origin,
		SourceURL: pageURL,
		Limit:     opts.Limit,
	}, opts.Page, opts.Enrich)
}

// Parse extracts jobs from listing HTML that was obtained elsewhere, such as
// a saved file, and enriches them when requested.
func (s *Scraper) Parse(ctx context.Context, html string, opts jobscrape.ParseOptions, page int, enrich jobscrape.EnrichOptions) (*jobscrape.Listing, error) {
	if page < 1 {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "page must be >= 1, got %d", page)
	}
	opts = opts.WithDefaults()

	jobs, err := s.Listings.ParseListing(html, opts)
	if err != nil {
		return nil, err
	}

	if enrich.Enabled() && s.Enricher != nil && len(jobs) > 0 {
		if err := s.Enricher.Enrich(ctx, jobs, enrich); err != nil {
			return nil, fmt.Errorf("enrich jobs: %w", err)
		}
	}

	return jobscrape.NewListing(opts.SourceURL, page, jobs), nil
}
