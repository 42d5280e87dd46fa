package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/scrape"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	enrich := jobscrape.EnrichOptions{
		Details:   c.Details || c.Companies,
		Companies: c.Companies,
		Logos:     c.ASCIILogos,
	}

	listing, err := c.scrape(deps, enrich)
	if err != nil {
		return err
	}

	if c.Output != "" {
		path, err := deps.Listings.WriteListing(deps.Ctx, c.Output, listing)
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", c.Output, err)
		}
		fmt.Fprintf(deps.Stderr, "Saved result to %s\n", path)
	}

	if c.TxtDir != "" && len(listing.Jobs) > 0 {
		dir, err := deps.JobFiles.WriteJobs(deps.Ctx, c.TxtDir, listing.Jobs)
		if err != nil {
			return fmt.Errorf("failed to write text files: %w", err)
		}
		fmt.Fprintf(deps.Stderr, "Wrote %d text files to %s\n", len(listing.Jobs), dir)
	}

	if c.Quiet {
		return nil
	}
	return printListing(deps.Stdout, listing, c.Format)
}

// scrape fetches the listing, or parses the local file when one is given.
func (c *ScrapeCmd) scrape(deps *Dependencies, enrich jobscrape.EnrichOptions) (*jobscrape.Listing, error) {
	if c.File == "" {
		return deps.Scraper.Scrape(deps.Ctx, scrape.ScrapeOptions{
			BaseURL: c.URL,
			Page:    c.Page,
			Limit:   c.Limit,
			Enrich:  enrich,
		})
	}

	data, err := os.ReadFile(c.File)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, jobscrape.Errorf(jobscrape.ENOTFOUND, "file %s not found", c.File)
		}
		return nil, err
	}

	return deps.Scraper.Parse(deps.Ctx, string(data), jobscrape.ParseOptions{
		Origin:    c.Origin,
		SourceURL: c.URL,
		Limit:     c.Limit,
	}, c.Page, enrich)
}
