package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/jobscrape"
	"golang.org/x/net/html"
)

// Ensure DetailParser implements jobscrape.DetailParser at compile time.
var _ jobscrape.DetailParser = (*DetailParser)(nil)

// DetailParser extracts the full description, apply link, company links,
// and benefits from a job detail page.
//
// The description comes from the description selector, then from a
// JobPosting JSON-LD block, then from the optional Extractor.
type DetailParser struct {
	selectors DetailSelectors
	extractor jobscrape.Extractor
	converter jobscrape.Converter
}

// DetailOption configures a DetailParser.
type DetailOption func(*DetailParser)

// WithDetailSelectors overrides the default detail selectors.
func WithDetailSelectors(s DetailSelectors) DetailOption {
	return func(p *DetailParser) {
		p.selectors = s
	}
}

// WithExtractor sets the extractor used when the page has no recognizable
// description block.
func WithExtractor(e jobscrape.Extractor) DetailOption {
	return func(p *DetailParser) {
		p.extractor = e
	}
}

// WithConverter sets the converter that renders the description as markdown.
func WithConverter(c jobscrape.Converter) DetailOption {
	return func(p *DetailParser) {
		p.converter = c
	}
}

// NewDetailParser creates a DetailParser using the getonbrd selectors.
func NewDetailParser(opts ...DetailOption) *DetailParser {
	p := &DetailParser{
		selectors: DefaultSelectors().Detail,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ParseDetail parses a job detail page. Fields the page does not provide
// are left empty; only unparsable HTML is an error.
func (p *DetailParser) ParseDetail(rawHTML string, pageURL string) (*jobscrape.Detail, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, jobscrape.Errorf(jobscrape.EINVALID, "failed to parse HTML: %v", err)
	}

	var posting ldJobPosting
	hasPosting := findLD(doc, "JobPosting", &posting)

	resolveLinks(doc.Selection, pageURL)

	detail := &jobscrape.Detail{
		ApplyURL:          firstHref(doc.Find(p.selectors.Apply), pageURL),
		CompanyProfileURL: firstHref(doc.Find(p.selectors.CompanyProfile), pageURL),
		CompanyLogo:       firstImage(doc.Find(p.selectors.CompanyLogo), pageURL),
		Benefits:          p.parseBenefits(doc),
	}

	if hasPosting {
		org := posting.HiringOrganization
		if detail.CompanyLogo == "" {
			detail.CompanyLogo = jobscrape.ResolveURL(string(org.Logo), pageURL)
		}
		detail.CompanySite = externalURL(append([]string{org.URL}, org.SameAs...), pageURL)
	}

	descriptionHTML := firstHTML(doc.Find(p.selectors.Description))
	if descriptionHTML == "" && hasPosting {
		descriptionHTML = strings.TrimSpace(posting.Description)
	}
	if descriptionHTML == "" && p.extractor != nil {
		// Links are already absolute, so the extractor sees the detail page's URLs.
		resolved, err := doc.Html()
		if err != nil {
			resolved = rawHTML
		}
		if result, err := p.extractor.Extract(resolved); err == nil && result != nil {
			descriptionHTML = strings.TrimSpace(result.ContentHTML)
		}
	}
	if descriptionHTML == "" {
		return detail, nil
	}

	fragment, err := goquery.NewDocumentFromReader(strings.NewReader(descriptionHTML))
	if err != nil {
		return detail, nil
	}
	body := fragment.Find("body")
	if body.Length() == 0 {
		return detail, nil
	}
	resolveLinks(body, pageURL)
	if rendered, err := body.Html(); err == nil {
		descriptionHTML = strings.TrimSpace(rendered)
	}

	detail.HTML = descriptionHTML
	detail.Text = blockText(body.Nodes[0])
	detail.Sections = sections(body.Nodes[0])
	if p.converter != nil {
		if md, err := p.converter.Convert(descriptionHTML); err == nil {
			detail.Markdown = strings.TrimSpace(md)
		}
	}

	return detail, nil
}

// parseBenefits extracts perks described on the detail page.
func (p *DetailParser) parseBenefits(doc *goquery.Document) []jobscrape.Benefit {
	var benefits []jobscrape.Benefit
	doc.Find(p.selectors.Benefits).Each(func(_ int, s *goquery.Selection) {
		icon := s.Find("i").First()

		title := jobscrape.NormalizeText(s.Find("strong, h4, h5, .title").First().Text())
		if title == "" {
			title = jobscrape.NormalizeText(icon.AttrOr("title", ""))
		}
		if title == "" {
			return
		}

		description := jobscrape.NormalizeText(s.Find("p, .description").First().Text())
		if description == title {
			description = ""
		}

		benefits = append(benefits, jobscrape.Benefit{
			Title:       title,
			Description: description,
			Icon:        iconClass(icon),
		})
	})
	return benefits
}

// iconClass returns the first "icon-" class of an icon element.
func iconClass(sel *goquery.Selection) string {
	for _, class := range strings.Fields(sel.AttrOr("class", "")) {
		if strings.HasPrefix(class, "icon-") {
			return class
		}
	}
	return ""
}

// blockElements are the elements whose boundaries separate words.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"footer": true, "header": true, "hr": true, "li": true, "main": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

func isHeading(n *html.Node) bool {
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		return true
	}
	return false
}

// writeText appends the text of n to b, separating block elements with
// spaces. When stop is non-nil, descendants for which it returns true are
// passed to it instead of being written.
func writeText(b *strings.Builder, n *html.Node, stop func(*html.Node) bool) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		if n.Data == "script" || n.Data == "style" {
			return
		}
		if stop != nil && stop(n) {
			return
		}
	}
	block := n.Type == html.ElementNode && blockElements[n.Data]
	if block {
		b.WriteByte(' ')
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(b, c, stop)
	}
	if block {
		b.WriteByte(' ')
	}
}

// blockText returns the normalized text of n with block boundaries
// separated by spaces.
func blockText(n *html.Node) string {
	var b strings.Builder
	writeText(&b, n, nil)
	return jobscrape.NormalizeText(b.String())
}

// sections splits a description into titled sections. Each heading starts
// a section whose content is the text that follows it up to the next
// heading. Text before the first heading and sections without content are
// dropped.
func sections(root *html.Node) []jobscrape.DetailSection {
	var out []jobscrape.DetailSection
	var title string
	var content strings.Builder

	flush := func() {
		if title == "" {
			content.Reset()
			return
		}
		if text := jobscrape.NormalizeText(content.String()); text != "" {
			out = append(out, jobscrape.DetailSection{Title: title, Content: text})
		}
		content.Reset()
	}

	writeText(&content, root, func(n *html.Node) bool {
		if !isHeading(n) {
			return false
		}
		flush()
		title = blockText(n)
		return true
	})
	flush()

	return out
}

// externalURL returns the first candidate that resolves to an http(s) URL
// on a different host than pageURL.
func externalURL(candidates []string, pageURL string) string {
	pageHost := hostOf(pageURL)
	for _, c := range candidates {
		resolved := jobscrape.ResolveURL(c, pageURL)
		if resolved == "" {
			continue
		}
		if host := hostOf(resolved); host != "" && host != pageHost {
			return resolved
		}
	}
	return ""
}

// firstHTML returns the trimmed inner HTML of the first matched element that
// has any. Empty matches such as <meta itemprop="description"> are skipped.
func firstHTML(sel *goquery.Selection) string {
	var out string
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		h, err := s.Html()
		if err != nil {
			return true
		}
		out = strings.TrimSpace(h)
		return out == ""
	})
	return out
}

// firstHref returns the first href among the matched elements that resolves
// to an http(s) URL.
func firstHref(sel *goquery.Selection, pageURL string) string {
	var link string
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		link = jobscrape.ResolveURL(s.AttrOr("href", ""), pageURL)
		return link == ""
	})
	return link
}

// firstImage returns the first image source among the matched elements that
// resolves to an http(s) URL.
func firstImage(sel *goquery.Selection, pageURL string) string {
	var src string
	sel.EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src = jobscrape.ResolveURL(imageSource(s), pageURL)
		return src == ""
	})
	return src
}

// resolveLinks rewrites relative href and src attributes under sel against
// pageURL. Fragment-only links are left alone.
func resolveLinks(sel *goquery.Selection, pageURL string) {
	base, err := url.Parse(pageURL)
	if err != nil || !base.IsAbs() {
		return
	}
	sel.Find("[href], [src]").Each(func(_ int, s *goquery.Selection) {
		for _, attr := range []string{"href", "src"} {
			v, ok := s.Attr(attr)
			if !ok {
				continue
			}
			v = strings.TrimSpace(v)
			if v == "" || strings.HasPrefix(v, "#") {
				continue
			}
			ref, err := url.Parse(v)
			if err != nil || ref.IsAbs() {
				continue
			}
			s.SetAttr(attr, base.ResolveReference(ref).String())
		}
	})
}
