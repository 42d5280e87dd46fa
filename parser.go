package jobscrape

// ParseOptions configures listing extraction.
type ParseOptions struct {
	// Origin is used to resolve relative links and image sources.
	// Defaults to DefaultOrigin.
	Origin string

	// SourceURL is recorded on every job as the page it came from.
	// Defaults to DefaultListURL.
	SourceURL string

	// Limit caps the number of jobs returned. Zero or negative means no limit.
	Limit int
}

// WithDefaults returns a copy of the options with empty fields defaulted.
func (o ParseOptions) WithDefaults() ParseOptions {
	if o.Origin == "" {
		o.Origin = DefaultOrigin
	}
	if o.SourceURL == "" {
		o.SourceURL = DefaultListURL
	}
	return o
}

// ListingParser extracts job summaries from a listing page.
type ListingParser interface {
	// ParseListing returns the validated jobs found in the HTML, in document
	// order. Postings without a title or a resolvable link are skipped.
	// Returns EINVALID if an extracted job fails validation.
	ParseListing(html string, opts ParseOptions) ([]*Job, error)
}

// Detail holds the fields extracted from a job's detail page.
type Detail struct {
	ApplyURL          string
	HTML              string
	Text              string
	Markdown          string
	Sections          []DetailSection
	Benefits          []Benefit
	CompanyProfileURL string
	CompanyLogo       string
	CompanySite       string
}

// DetailParser extracts the full description of a job from its detail page.
type DetailParser interface {
	// ParseDetail parses detail page HTML. The pageURL resolves relative links.
	ParseDetail(html string, pageURL string) (*Detail, error)
}

// Company holds the fields extracted from a company profile page.
type Company struct {
	// Site is the company's external website.
	Site string
	Logo string
}

// CompanyParser extracts company information from a profile page.
type CompanyParser interface {
	ParseCompany(html string, pageURL string) (*Company, error)
}
