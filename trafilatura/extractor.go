// Package trafilatura extracts the main content of job detail pages that
// carry no recognizable description block.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/jobscrape"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements jobscrape.Extractor at compile time.
var _ jobscrape.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct {
	originalURL *url.URL
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithOriginalURL sets the URL used to resolve relative links in the
// extracted content. Invalid URLs are ignored.
func WithOriginalURL(rawURL string) Option {
	return func(e *Extractor) {
		if u, err := url.Parse(rawURL); err == nil && u.Host != "" {
			e.originalURL = u
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

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		IncludeLinks:    true,
		OriginalURL:     e.originalURL,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &jobscrape.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
