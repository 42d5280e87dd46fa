package scrape_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/mock"
	"github.com/fwojciec/jobscrape/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJob(id, company string) *jobscrape.Job {
	return &jobscrape.Job{
		ID:          id,
		Title:       "Go Developer",
		Company:     company,
		Badges:      []string{},
		Perks:       []string{},
		Link:        "https://board.example/jobs/" + id,
		CompanyLogo: "https://board.example/logos/" + company + ".png",
		Source:      "https://board.example/jobs",
		ScrapedAt:   time.Date(2025, 3, 3, 10, 30, 0, 0, time.UTC),
	}
}

// site simulates a job board where every job links to its company profile.
type site struct {
	fetches map[string]int
	fail    map[string]bool
}

func newSite() *site {
	return &site{fetches: map[string]int{}, fail: map[string]bool{}}
}

func (s *site) fetcher() *mock.Fetcher {
	return &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			s.fetches[url]++
			if s.fail[url] {
				return "", errors.New("HTTP 500 for " + url)
			}
			return "<html>" + url + "</html>", nil
		},
		CloseFn: func() error { return nil },
	}
}

func detailParser(profiles map[string]string) *mock.DetailParser {
	return &mock.DetailParser{
		ParseDetailFn: func(html, pageURL string) (*jobscrape.Detail, error) {
			return &jobscrape.Detail{
				ApplyURL:          pageURL + "/apply",
				Text:              "Full description",
				CompanyProfileURL: profiles[pageURL],
			}, nil
		},
	}
}

func companyParser() *mock.CompanyParser {
	return &mock.CompanyParser{
		ParseCompanyFn: func(html, pageURL string) (*jobscrape.Company, error) {
			return &jobscrape.Company{Site: "https://site.example/" + jobscrape.LastPathSegment(pageURL)}, nil
		},
	}
}

func TestEnricher_Enrich(t *testing.T) {
	t.Parallel()

	t.Run("merges detail fields", func(t *testing.T) {
		t.Parallel()

		s := newSite()
		e := &scrape.Enricher{
			Fetcher: s.fetcher(),
			Details: detailParser(nil),
		}
		job := newJob("a", "acme")

		err := e.Enrich(context.Background(), []*jobscrape.Job{job}, jobscrape.EnrichOptions{Details: true})

		require.NoError(t, err)
		assert.Equal(t, "https://board.example/jobs/a/apply", job.ApplyURL)
		assert.Equal(t, "Full description", job.DetailText)
		assert.Empty(t, job.CompanySite)
	})

	t.Run("fetches each company profile once", func(t *testing.T) {
		t.Parallel()

		s := newSite()
		profile := "https://board.example/companies/acme"
		e := &scrape.Enricher{
			Fetcher: s.fetcher(),
			Details: detailParser(map[string]string{
				"https://board.example/jobs/a": profile,
				"https://board.example/jobs/b": profile,
			}),
			Companies: companyParser(),
		}
		jobs := []*jobscrape.Job{newJob("a", "acme"), newJob("b", "acme")}

		err := e.Enrich(context.Background(), jobs, jobscrape.EnrichOptions{Details: true, Companies: true})

		require.NoError(t, err)
		assert.Equal(t, 1, s.fetches[profile])
		assert.Equal(t, "https://site.example/acme", jobs[0].CompanySite)
		assert.Equal(t, "https://site.example/acme", jobs[1].CompanySite)
	})

	t.Run("remembers failed company profiles", func(t *testing.T) {
		t.Parallel()

		s := newSite()
		profile := "https://board.example/companies/broken"
		s.fail[profile] = true
		e := &scrape.Enricher{
			Fetcher: s.fetcher(),
			Details: detailParser(map[string]string{
				"https://board.example/jobs/a": profile,
				"https://board.example/jobs/b": profile,
			}),
			Companies: companyParser(),
		}
		jobs := []*jobscrape.Job{newJob("a", "broken"), newJob("b", "broken")}

		err := e.Enrich(context.Background(), jobs, jobscrape.EnrichOptions{Details: true, Companies: true})

		require.NoError(t, err)
		assert.Equal(t, 1, s.fetches[profile])
		assert.Empty(t, jobs[0].CompanySite)
		assert.Equal(t, "Full description", jobs[1].DetailText)
	})

	t.Run("skips companies unless requested", func(t *testing.T) {
		t.Parallel()

		s := newSite()
		profile := "https://board.example/companies/acme"
		e := &scrape.Enricher{
			Fetcher:   s.fetcher(),
			Details:   detailParser(map[string]string{"https://board.example/jobs/a": profile}),
			Companies: companyParser(),
		}
		job := newJob("a", "acme")

		err := e.Enrich(context.Background(), []*jobscrape.Job{job}, jobscrape.EnrichOptions{Details: true})

		require.NoError(t, err)
		assert.Zero(t, s.fetches[profile])
		assert.Equal(t, profile, job.CompanyProfileURL)
		assert.Empty(t, job.CompanySite)
	})

	t.Run("keeps job when detail fetch fails", func(t *testing.T) {
		t.Parallel()

		s := newSite()
		s.fail["https://board.example/jobs/a"] = true
		e := &scrape.Enricher{
			Fetcher: s.fetcher(),
			Details: detailParser(nil),
		}
		job := newJob("a", "acme")
		before := job.Clone()

		err := e.Enrich(context.Background(), []*jobscrape.Job{job}, jobscrape.EnrichOptions{Details: true})

		require.NoError(t, err)
		assert.Equal(t, before, job)
	})

	t.Run("keeps job when detail parse fails", func(t *testing.T) {
		t.Parallel()

		s := newSite()
		e := &scrape.Enricher{
			Fetcher: s.fetcher(),
			Details: &mock.DetailParser{
				ParseDetailFn: func(html, pageURL string) (*jobscrape.Detail, error) {
					return nil, errors.New("boom")
				},
			},
		}
		job := newJob("a", "acme")
		before := job.Clone()

		err := e.Enrich(context.Background(), []*jobscrape.Job{job}, jobscrape.EnrichOptions{Details: true})

		require.NoError(t, err)
		assert.Equal(t, before, job)
	})

	t.Run("reverts job that fails validation after enrichment", func(t *testing.T) {
		t.Parallel()

		s := newSite()
		e := &scrape.Enricher{
			Fetcher: s.fetcher(),
			Details: &mock.DetailParser{
				ParseDetailFn: func(html, pageURL string) (*jobscrape.Detail, error) {
					return &jobscrape.Detail{
						Text:     "Full description",
						Sections: []jobscrape.DetailSection{{Title: "", Content: "orphan"}},
					}, nil
				},
			},
		}
		job := newJob("a", "acme")
		before := job.Clone()

		err := e.Enrich(context.Background(), []*jobscrape.Job{job}, jobscrape.EnrichOptions{Details: true})

		require.NoError(t, err)
		assert.Equal(t, before, job)
	})

	t.Run("renders each logo once", func(t *testing.T) {
		t.Parallel()

		var imageFetches int
		e := &scrape.Enricher{
			Images: &mock.ImageFetcher{
				FetchBytesFn: func(_ context.Context, url string) ([]byte, error) {
					imageFetches++
					return []byte("png"), nil
				},
			},
			Logos: &mock.LogoRenderer{
				RenderFn: func(image []byte) (string, error) {
					return "##\n##", nil
				},
			},
		}
		jobs := []*jobscrape.Job{newJob("a", "acme"), newJob("b", "acme"), newJob("c", "globex")}

		err := e.Enrich(context.Background(), jobs, jobscrape.EnrichOptions{Logos: true})

		require.NoError(t, err)
		assert.Equal(t, 2, imageFetches)
		for _, job := range jobs {
			assert.Equal(t, "##\n##", job.CompanyLogoASCII)
		}
	})

	t.Run("prefers the full logo", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		e := &scrape.Enricher{
			Images: &mock.ImageFetcher{
				FetchBytesFn: func(_ context.Context, url string) ([]byte, error) {
					fetched = append(fetched, url)
					return []byte("png"), nil
				},
			},
			Logos: &mock.LogoRenderer{
				RenderFn: func(image []byte) (string, error) { return "#", nil },
			},
		}
		job := newJob("a", "acme")
		job.CompanyLogoFull = "https://board.example/logos/acme-full.png"

		err := e.Enrich(context.Background(), []*jobscrape.Job{job}, jobscrape.EnrichOptions{Logos: true})

		require.NoError(t, err)
		assert.Equal(t, []string{"https://board.example/logos/acme-full.png"}, fetched)
	})

	t.Run("keeps job when logo rendering fails", func(t *testing.T) {
		t.Parallel()

		e := &scrape.Enricher{
			Images: &mock.ImageFetcher{
				FetchBytesFn: func(_ context.Context, url string) ([]byte, error) {
					return []byte("not an image"), nil
				},
			},
			Logos: &mock.LogoRenderer{
				RenderFn: func(image []byte) (string, error) {
					return "", errors.New("unknown format")
				},
			},
		}
		job := newJob("a", "acme")

		err := e.Enrich(context.Background(), []*jobscrape.Job{job}, jobscrape.EnrichOptions{Logos: true})

		require.NoError(t, err)
		assert.Empty(t, job.CompanyLogoASCII)
	})

	t.Run("does nothing when no stage is enabled", func(t *testing.T) {
		t.Parallel()

		s := newSite()
		e := &scrape.Enricher{Fetcher: s.fetcher(), Details: detailParser(nil)}

		err := e.Enrich(context.Background(), []*jobscrape.Job{newJob("a", "acme")}, jobscrape.EnrichOptions{Companies: true})

		require.NoError(t, err)
		assert.Empty(t, s.fetches)
	})

	t.Run("stops on context cancellation", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		e := &scrape.Enricher{
			Fetcher: &mock.Fetcher{
				FetchFn: func(ctx context.Context, url string) (string, error) {
					cancel()
					return "", ctx.Err()
				},
			},
			Details: detailParser(nil),
		}
		jobs := []*jobscrape.Job{newJob("a", "acme"), newJob("b", "acme")}
		before := jobs[0].Clone()

		err := e.Enrich(ctx, jobs, jobscrape.EnrichOptions{Details: true})

		require.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, before, jobs[0])
	})
}
