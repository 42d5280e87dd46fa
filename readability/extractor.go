// Package readability is an alternative main-content extractor for job
// detail pages, selected with --extractor readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/jobscrape"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements jobscrape.Extractor at compile time.
var _ jobscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct {
	pageURL *url.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithPageURL makes relative links in the extracted content absolute.
// Invalid URLs are ignored.
func WithPageURL(rawURL string) Option {
	return func(e *Extractor) {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			e.pageURL = u
		}
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract processes raw HTML and returns the main content.
func (e *Extractor) Extract(rawHTML string) (*jobscrape.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.pageURL)
	if err != nil {
		return nil, err
	}

	return &jobscrape.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
