// Package goquery implements the CSS-selector driven extractors for job
// listing, job detail, and company profile pages using goquery.
package goquery

import "github.com/fwojciec/jobscrape"

// ListingSelectors locate the fields of each job summary on a listing page.
// All selectors except Item are evaluated relative to the matched item.
type ListingSelectors struct {
	Item         string `yaml:"item"`
	Title        string `yaml:"title"`
	TitleText    string `yaml:"title_text"`
	JobType      string `yaml:"job_type"`
	CompanyBlock string `yaml:"company_block"`
	CompanyName  string `yaml:"company_name"`
	Location     string `yaml:"location"`
	RemoteIcon   string `yaml:"remote_icon"`
	Logo         string `yaml:"logo"`
	SalaryIcon   string `yaml:"salary_icon"`
	PublishedAt  string `yaml:"published_at"`
	Badges       string `yaml:"badges"`
	Perks        string `yaml:"perks"`
}

// DetailSelectors locate the fields of a job detail page.
type DetailSelectors struct {
	Description    string `yaml:"description"`
	Apply          string `yaml:"apply"`
	CompanyProfile string `yaml:"company_profile"`
	CompanyLogo    string `yaml:"company_logo"`
	Benefits       string `yaml:"benefits"`
}

// CompanySelectors locate the fields of a company profile page.
type CompanySelectors struct {
	Website string `yaml:"website"`
	Logo    string `yaml:"logo"`
}

// Selectors groups the selectors for every page type.
type Selectors struct {
	Listing ListingSelectors `yaml:"listing"`
	Detail  DetailSelectors  `yaml:"detail"`
	Company CompanySelectors `yaml:"company"`
}

// DefaultSelectors returns the selectors for getonbrd.
func DefaultSelectors() Selectors {
	return Selectors{
		Listing: ListingSelectors{
			Item:         "ul.sgb-results-list > a.gb-results-list__item",
			Title:        ".gb-results-list__title",
			TitleText:    "strong",
			JobType:      ".opacity-half",
			CompanyBlock: ".gb-results-list__info .size0",
			CompanyName:  "strong",
			Location:     ".location",
			RemoteIcon:   ".icon-wifi",
			Logo:         ".gb-results-list__img",
			SalaryIcon:   ".gb-results-list__badges .icon-money-bill",
			PublishedAt:  ".gb-results-list__secondary .opacity-half.size0",
			Badges:       ".gb-results-list__badges .badge",
			Perks:        ".gb-perks-list i",
		},
		Detail: DetailSelectors{
			Description:    "[itemprop='description'], .gb-rich-txt",
			Apply:          "#apply_bottom, a.gb-btn-apply, a[href*='/apply']",
			CompanyProfile: "a[href*='/companies/']",
			CompanyLogo:    ".gb-company-logo__img, img[itemprop='logo']",
			Benefits:       ".gb-perks-list li",
		},
		Company: CompanySelectors{
			Website: "a[itemprop='url'], .gb-company-profile__website a, a[rel~='nofollow'][target='_blank']",
			Logo:    "img[itemprop='logo'], .gb-company-logo__img",
		},
	}
}

// Validate returns an error if a selector required for extraction is empty.
func (s Selectors) Validate() error {
	required := []struct {
		name string
		sel  string
	}{
		{"listing.item", s.Listing.Item},
		{"listing.title", s.Listing.Title},
		{"detail.description", s.Detail.Description},
		{"company.website", s.Company.Website},
	}
	for _, r := range required {
		if r.sel == "" {
			return jobscrape.Errorf(jobscrape.EINVALID, "selector %s required", r.name)
		}
	}
	return nil
}
