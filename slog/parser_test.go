package slog_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/mock"
	jobslog "github.com/fwojciec/jobscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingListingParser_ParseListing(t *testing.T) {
	t.Parallel()

	t.Run("logs job count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ListingParser{
			ParseListingFn: func(html string, opts jobscrape.ParseOptions) ([]*jobscrape.Job, error) {
				return []*jobscrape.Job{{ID: "a"}, {ID: "b"}}, nil
			},
		}

		p := jobslog.NewLoggingListingParser(inner, newLogger(&buf))
		jobs, err := p.ParseListing("<html></html>", jobscrape.ParseOptions{SourceURL: "https://board.example/jobs"})

		require.NoError(t, err)
		assert.Len(t, jobs, 2)
		assert.Contains(t, buf.String(), "msg=\"parse listing\"")
		assert.Contains(t, buf.String(), "source=https://board.example/jobs")
		assert.Contains(t, buf.String(), "count=2")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.ListingParser{
			ParseListingFn: func(html string, opts jobscrape.ParseOptions) ([]*jobscrape.Job, error) {
				return nil, errors.New("bad markup")
			},
		}

		p := jobslog.NewLoggingListingParser(inner, newLogger(&buf))
		_, err := p.ParseListing("", jobscrape.ParseOptions{})

		require.Error(t, err)
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "count=0")
	})
}

func TestLoggingDetailParser_ParseDetail(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.DetailParser{
		ParseDetailFn: func(html, pageURL string) (*jobscrape.Detail, error) {
			return &jobscrape.Detail{
				Sections: []jobscrape.DetailSection{{Title: "Role"}},
				Benefits: []jobscrape.Benefit{{Title: "Remote"}, {Title: "Gym"}},
			}, nil
		},
	}

	p := jobslog.NewLoggingDetailParser(inner, newLogger(&buf))
	_, err := p.ParseDetail("<html></html>", "https://board.example/jobs/a")

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "url=https://board.example/jobs/a")
	assert.Contains(t, buf.String(), "sections=1")
	assert.Contains(t, buf.String(), "benefits=2")
}
