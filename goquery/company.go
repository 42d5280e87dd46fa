package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscrape"
)

// Ensure CompanyParser implements jobscrape.CompanyParser at compile time.
var _ jobscrape.CompanyParser = (*CompanyParser)(nil)

// CompanyParser extracts the external website and logo of a company from
// its profile page on the job board.
type CompanyParser struct {
	selectors CompanySelectors
}

// NewCompanyParser creates a CompanyParser with the given selectors.
func NewCompanyParser(selectors CompanySelectors) *CompanyParser {
	return &CompanyParser{selectors: selectors}
}

// ParseCompany parses a company profile page. Links pointing back to the
// board's own host are never reported as the company site.
func (p *CompanyParser) ParseCompany(rawHTML string, pageURL string) (*jobscrape.Company, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	var candidates []string
	doc.Find(p.selectors.Website).Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			candidates = append(candidates, href)
		}
	})

	company := &jobscrape.Company{
		Site: externalURL(candidates, pageURL),
		Logo: firstImage(doc.Find(p.selectors.Logo), pageURL),
	}

	if company.Site == "" || company.Logo == "" {
		var org ldOrganization
		if findLD(doc, "Organization", &org) {
			if company.Site == "" {
				company.Site = externalURL(append([]string{org.URL}, org.SameAs...), pageURL)
			}
			if company.Logo == "" {
				company.Logo = jobscrape.ResolveURL(string(org.Logo), pageURL)
			}
		}
	}

	return company, nil
}

// hostOf returns the lowercased host of rawURL without a "www." prefix,
// or "" if it cannot be parsed.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}
