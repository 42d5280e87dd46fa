package goquery

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscrape"
)

// Ensure ListingParser implements jobscrape.ListingParser at compile time.
var _ jobscrape.ListingParser = (*ListingParser)(nil)

// ListingParser extracts job summaries from a listing page.
type ListingParser struct {
	selectors ListingSelectors
	now       func() time.Time
}

// ListingOption configures a ListingParser.
type ListingOption func(*ListingParser)

// WithListingSelectors overrides the default listing selectors.
func WithListingSelectors(s ListingSelectors) ListingOption {
	return func(p *ListingParser) {
		p.selectors = s
	}
}

// WithClock sets the function used to timestamp extracted jobs.
func WithClock(now func() time.Time) ListingOption {
	return func(p *ListingParser) {
		p.now = now
	}
}

// NewListingParser creates a ListingParser using the getonbrd selectors.
func NewListingParser(opts ...ListingOption) *ListingParser {
	p := &ListingParser{
		selectors: DefaultSelectors().Listing,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseListing returns the jobs found in the listing HTML in document order.
// Every job shares the same scrapedAt timestamp.
func (p *ListingParser) ParseListing(html string, opts jobscrape.ParseOptions) ([]*jobscrape.Job, error) {
	opts = opts.WithDefaults()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	scrapedAt := p.now().UTC()
	jobs := []*jobscrape.Job{}
	var invalid error

	doc.Find(p.selectors.Item).EachWithBreak(func(_ int, item *goquery.Selection) bool {
		if opts.Limit > 0 && len(jobs) >= opts.Limit {
			return false
		}

		job := p.parseItem(item, opts)
		if job == nil {
			return true
		}
		job.ScrapedAt = scrapedAt

		if err := job.Validate(); err != nil {
			invalid = err
			return false
		}
		jobs = append(jobs, job)
		return true
	})

	if invalid != nil {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "invalid job in listing: %s", jobscrape.ErrorMessage(invalid))
	}

	return jobs, nil
}

// parseItem extracts a single job summary.
// Returns nil when the item has no title or no resolvable link.
func (p *ListingParser) parseItem(item *goquery.Selection, opts jobscrape.ParseOptions) *jobscrape.Job {
	s := p.selectors

	titleSel := item.Find(s.Title).First()
	title := jobscrape.NormalizeText(titleSel.Find(s.TitleText).First().Text())
	if title == "" {
		title = jobscrape.NormalizeText(titleSel.Text())
	}
	if title == "" {
		return nil
	}

	href, _ := item.Attr("href")
	link := jobscrape.ResolveURL(href, opts.Origin)
	if link == "" {
		return nil
	}
	id := jobscrape.LastPathSegment(link)
	if id == "" {
		return nil
	}

	locationText := jobscrape.NormalizeText(item.Find(s.Location).First().Text())
	location, modality := jobscrape.SplitModality(locationText)

	description, _ := item.Attr("title")
	color, _ := item.Attr("data-color")

	job := &jobscrape.Job{
		ID:          id,
		Title:       title,
		Company:     jobscrape.NormalizeText(item.Find(s.CompanyBlock).First().Find(s.CompanyName).First().Text()),
		JobType:     jobscrape.NormalizeText(titleSel.Find(s.JobType).First().Text()),
		Location:    location,
		Modality:    modality,
		Remote:      jobscrape.IsRemote(locationText, item.Find(s.RemoteIcon).Length() > 0),
		PublishedAt: jobscrape.NormalizeText(item.Find(s.PublishedAt).Last().Text()),
		Salary:      salaryText(item.Find(s.SalaryIcon).Parent()),
		Badges:      texts(item.Find(s.Badges)),
		Perks:       jobscrape.Unique(attrs(item.Find(s.Perks), "title")),
		Link:        link,
		Color:       strings.TrimSpace(color),
		Description: jobscrape.NormalizeText(description),
		CompanyLogo: firstImage(item.Find(s.Logo), opts.Origin),
		Source:      opts.SourceURL,
	}
	job.Normalize()
	return job
}

// salaryText returns the text of the salary node without its icons.
func salaryText(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	clone := sel.Clone()
	clone.Find("i").Remove()
	return jobscrape.NormalizeText(clone.Text())
}

// texts returns the non-empty normalized texts of every matched element.
func texts(sel *goquery.Selection) []string {
	out := []string{}
	sel.Each(func(_ int, s *goquery.Selection) {
		if t := jobscrape.NormalizeText(s.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}

// attrs returns the non-empty normalized values of an attribute.
func attrs(sel *goquery.Selection, name string) []string {
	out := []string{}
	sel.Each(func(_ int, s *goquery.Selection) {
		v, _ := s.Attr(name)
		if v = jobscrape.NormalizeText(v); v != "" {
			out = append(out, v)
		}
	})
	return out
}

// imageSource returns the lazy-loaded source of the first matched image,
// falling back to its src attribute.
func imageSource(sel *goquery.Selection) string {
	img := sel.First()
	if v := strings.TrimSpace(img.AttrOr("data-src", "")); v != "" {
		return v
	}
	return strings.TrimSpace(img.AttrOr("src", ""))
}
