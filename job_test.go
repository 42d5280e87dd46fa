package jobscrape_test

import (
	"testing"
	"time"

	"github.com/fwojciec/jobscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validJob() *jobscrape.Job {
	return &jobscrape.Job{
		ID:        "go-developer-acme",
		Title:     "Go Developer",
		Badges:    []string{},
		Perks:     []string{},
		Link:      "https://www.getonbrd.cl/jobs/programming/go-developer-acme",
		Source:    "https://www.getonbrd.cl/jobs/programacion",
		ScrapedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestJob_Validate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a minimal job", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, validJob().Validate())
	})

	tests := []struct {
		name   string
		mutate func(j *jobscrape.Job)
		field  string
	}{
		{name: "missing id", mutate: func(j *jobscrape.Job) { j.ID = "" }, field: "id"},
		{name: "missing title", mutate: func(j *jobscrape.Job) { j.Title = "" }, field: "title"},
		{name: "relative link", mutate: func(j *jobscrape.Job) { j.Link = "/jobs/x" }, field: "link"},
		{name: "missing source", mutate: func(j *jobscrape.Job) { j.Source = "" }, field: "source"},
		{name: "bad logo", mutate: func(j *jobscrape.Job) { j.CompanyLogo = "logo.png" }, field: "companyLogo"},
		{name: "bad apply url", mutate: func(j *jobscrape.Job) { j.ApplyURL = "apply" }, field: "applyUrl"},
		{name: "empty badge", mutate: func(j *jobscrape.Job) { j.Badges = []string{"Go", ""} }, field: "badges"},
		{name: "duplicate perks", mutate: func(j *jobscrape.Job) { j.Perks = []string{"a", "a"} }, field: "perks"},
		{name: "untitled section", mutate: func(j *jobscrape.Job) {
			j.DetailSections = []jobscrape.DetailSection{{Content: "x"}}
		}, field: "detailSections"},
		{name: "missing scrapedAt", mutate: func(j *jobscrape.Job) { j.ScrapedAt = time.Time{} }, field: "scrapedAt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			job := validJob()
			tt.mutate(job)

			err := job.Validate()

			require.Error(t, err)
			assert.Equal(t, jobscrape.EINVALID, jobscrape.ErrorCode(err))
			assert.Contains(t, jobscrape.ErrorMessage(err), tt.field)
		})
	}
}

func TestJob_Normalize(t *testing.T) {
	t.Parallel()

	job := &jobscrape.Job{Perks: []string{"Remote", "Snacks", "Remote"}}

	job.Normalize()

	assert.Equal(t, []string{}, job.Badges)
	assert.Equal(t, []string{"Remote", "Snacks"}, job.Perks)
}

func TestJob_ApplyDetail(t *testing.T) {
	t.Parallel()

	t.Run("copies non-empty fields only", func(t *testing.T) {
		t.Parallel()

		job := validJob()
		job.CompanyLogoFull = "https://cdn.example.com/old.png"

		job.ApplyDetail(&jobscrape.Detail{
			ApplyURL: "https://www.getonbrd.cl/jobs/go-developer-acme/apply",
			Text:     "We build things.",
			Sections: []jobscrape.DetailSection{{Title: "About", Content: "We build things."}},
		})

		assert.Equal(t, "https://www.getonbrd.cl/jobs/go-developer-acme/apply", job.ApplyURL)
		assert.Equal(t, "We build things.", job.DetailText)
		assert.Equal(t, "https://cdn.example.com/old.png", job.CompanyLogoFull)
		assert.Len(t, job.DetailSections, 1)
		assert.Nil(t, job.BenefitsDetailed)
	})

	t.Run("ignores nil detail", func(t *testing.T) {
		t.Parallel()

		job := validJob()
		job.ApplyDetail(nil)

		assert.Equal(t, validJob(), job)
	})
}

func TestJob_ApplyCompany(t *testing.T) {
	t.Parallel()

	job := validJob()
	job.CompanyLogoFull = "https://cdn.example.com/full.png"

	job.ApplyCompany(&jobscrape.Company{Site: "https://acme.example", Logo: "https://cdn.example.com/other.png"})

	assert.Equal(t, "https://acme.example", job.CompanySite)
	assert.Equal(t, "https://cdn.example.com/full.png", job.CompanyLogoFull)
}

func TestJob_Clone(t *testing.T) {
	t.Parallel()

	job := validJob()
	job.Badges = []string{"Go"}

	clone := job.Clone()
	clone.Badges[0] = "Rust"
	clone.Title = "Other"

	assert.Equal(t, "Go", job.Badges[0])
	assert.Equal(t, "Go Developer", job.Title)
}

func TestJob_Logo(t *testing.T) {
	t.Parallel()

	job := validJob()
	assert.Empty(t, job.Logo())

	job.CompanyLogo = "https://cdn.example.com/small.png"
	assert.Equal(t, "https://cdn.example.com/small.png", job.Logo())

	job.CompanyLogoFull = "https://cdn.example.com/full.png"
	assert.Equal(t, "https://cdn.example.com/full.png", job.Logo())
}

func TestNewListing(t *testing.T) {
	t.Parallel()

	listing := jobscrape.NewListing("https://www.getonbrd.cl/jobs/programacion", 1, nil)

	assert.Equal(t, 0, listing.Total)
	assert.NotNil(t, listing.Jobs)

	listing = jobscrape.NewListing("https://www.getonbrd.cl/jobs/programacion", 2, []*jobscrape.Job{validJob(), validJob()})

	assert.Equal(t, 2, listing.Total)
	assert.Equal(t, 2, listing.Page)
}

func TestEnrichOptions_Enabled(t *testing.T) {
	t.Parallel()

	assert.False(t, jobscrape.EnrichOptions{}.Enabled())
	assert.False(t, jobscrape.EnrichOptions{Companies: true}.Enabled())
	assert.True(t, jobscrape.EnrichOptions{Details: true}.Enabled())
	assert.True(t, jobscrape.EnrichOptions{Logos: true}.Enabled())
}

func TestParseOptions_WithDefaults(t *testing.T) {
	t.Parallel()

	opts := jobscrape.ParseOptions{Limit: 3}.WithDefaults()

	assert.Equal(t, jobscrape.DefaultOrigin, opts.Origin)
	assert.Equal(t, jobscrape.DefaultListURL, opts.SourceURL)
	assert.Equal(t, 3, opts.Limit)
}
