package scrape

import (
	"context"
	"log/slog"

	"github.com/fwojciec/jobscrape"
)

// Ensure Enricher implements jobscrape.Enricher at compile time.
var _ jobscrape.Enricher = (*Enricher)(nil)

// Enricher follows each job to its detail page, the company profile linked
// from it, and the company logo. Jobs are processed one at a time.
//
// Company profiles and logos are fetched at most once per Enricher, keyed
// by URL. Failures are remembered too, so a broken profile shared by many
// jobs is only requested once.
type Enricher struct {
	Fetcher   jobscrape.Fetcher
	Images    jobscrape.ImageFetcher
	Details   jobscrape.DetailParser
	Companies jobscrape.CompanyParser
	Logos     jobscrape.LogoRenderer
	Logger    *slog.Logger

	companies memo[*jobscrape.Company]
	logos     memo[string]
}

// Enrich enriches jobs in place. A stage that fails is logged and skipped.
// A job that no longer validates after enrichment is restored to its
// previous state. Returns the context error if ctx is cancelled.
func (e *Enricher) Enrich(ctx context.Context, jobs []*jobscrape.Job, opts jobscrape.EnrichOptions) error {
	if !opts.Enabled() {
		return nil
	}

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return err
		}

		original := job.Clone()
		if err := e.enrichJob(ctx, job, opts); err != nil {
			*job = *original
			return err
		}

		if err := job.Validate(); err != nil {
			e.logger().Warn("enriched job invalid, keeping listing data", "id", job.ID, "err", err)
			*job = *original
		}
	}
	return nil
}

// enrichJob runs the selected stages on one job. It only fails when ctx is
// done.
func (e *Enricher) enrichJob(ctx context.Context, job *jobscrape.Job, opts jobscrape.EnrichOptions) error {
	if opts.Details {
		html, err := e.Fetcher.Fetch(ctx, job.Link)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			e.logger().Warn("detail fetch failed", "id", job.ID, "url", job.Link, "err", err)
		} else if detail, err := e.Details.ParseDetail(html, job.Link); err != nil {
			e.logger().Warn("detail parse failed", "id", job.ID, "url", job.Link, "err", err)
		} else {
			job.ApplyDetail(detail)
		}

		if opts.Companies && job.CompanyProfileURL != "" && e.Companies != nil {
			company, ok := e.company(ctx, job.CompanyProfileURL)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if ok {
				job.ApplyCompany(company)
			}
		}
	}

	if opts.Logos && e.Logos != nil && e.Images != nil {
		if logo := job.Logo(); logo != "" {
			ascii, ok := e.logo(ctx, logo)
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if ok {
				job.CompanyLogoASCII = ascii
			}
		}
	}

	return nil
}

func (e *Enricher) company(ctx context.Context, profileURL string) (*jobscrape.Company, bool) {
	return e.companies.do(profileURL, func() (*jobscrape.Company, bool) {
		html, err := e.Fetcher.Fetch(ctx, profileURL)
		if err != nil {
			e.logger().Warn("company fetch failed", "url", profileURL, "err", err)
			return nil, false
		}
		company, err := e.Companies.ParseCompany(html, profileURL)
		if err != nil {
			e.logger().Warn("company parse failed", "url", profileURL, "err", err)
			return nil, false
		}
		return company, true
	})
}

func (e *Enricher) logo(ctx context.Context, logoURL string) (string, bool) {
	return e.logos.do(logoURL, func() (string, bool) {
		image, err := e.Images.FetchBytes(ctx, logoURL)
		if err != nil {
			e.logger().Warn("logo fetch failed", "url", logoURL, "err", err)
			return "", false
		}
		ascii, err := e.Logos.Render(image)
		if err != nil {
			e.logger().Warn("logo render failed", "url", logoURL, "err", err)
			return "", false
		}
		return ascii, ascii != ""
	})
}

func (e *Enricher) logger() *slog.Logger {
	if e.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return e.Logger
}
