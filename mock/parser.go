package mock

import "github.com/fwojciec/jobscrape"

var _ jobscrape.ListingParser = (*ListingParser)(nil)

// ListingParser is a mock implementation of jobscrape.ListingParser.
type ListingParser struct {
	ParseListingFn func(html string, opts jobscrape.ParseOptions) ([]*jobscrape.Job, error)
}

func (p *ListingParser) ParseListing(html string, opts jobscrape.ParseOptions) ([]*jobscrape.Job, error) {
	return p.ParseListingFn(html, opts)
}

var _ jobscrape.DetailParser = (*DetailParser)(nil)

// DetailParser is a mock implementation of jobscrape.DetailParser.
type DetailParser struct {
	ParseDetailFn func(html, pageURL string) (*jobscrape.Detail, error)
}

func (p *DetailParser) ParseDetail(html, pageURL string) (*jobscrape.Detail, error) {
	return p.ParseDetailFn(html, pageURL)
}

var _ jobscrape.CompanyParser = (*CompanyParser)(nil)

// CompanyParser is a mock implementation of jobscrape.CompanyParser.
type CompanyParser struct {
	ParseCompanyFn func(html, pageURL string) (*jobscrape.Company, error)
}

func (p *CompanyParser) ParseCompany(html, pageURL string) (*jobscrape.Company, error) {
	return p.ParseCompanyFn(html, pageURL)
}
