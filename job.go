package jobscrape

import (
	"errors"
	"reflect"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Job represents a single job posting extracted from a job board.
// Optional fields are empty strings when the board does not provide them.
type Job struct {
	ID          string   `json:"id" validate:"required"`
	Title       string   `json:"title" validate:"required"`
	Company     string   `json:"company,omitempty"`
	JobType     string   `json:"jobType,omitempty"`
	Location    string   `json:"location,omitempty"`
	Modality    string   `json:"modality,omitempty"`
	Remote      bool     `json:"remote"`
	PublishedAt string   `json:"publishedAt,omitempty"`
	Salary      string   `json:"salary,omitempty"`
	Badges      []string `json:"badges" validate:"dive,required"`
	Perks       []string `json:"perks" validate:"unique,dive,required"`
	Link        string   `json:"link" validate:"required,url"`
	Color       string   `json:"color,omitempty"`
	Description string   `json:"description,omitempty"`

	CompanyLogo       string `json:"companyLogo,omitempty" validate:"omitempty,url"`
	CompanyLogoFull   string `json:"companyLogoFull,omitempty" validate:"omitempty,url"`
	CompanyProfileURL string `json:"companyProfileUrl,omitempty" validate:"omitempty,url"`
	CompanySite       string `json:"companySite,omitempty" validate:"omitempty,url"`
	CompanyLogoASCII  string `json:"companyLogoAscii,omitempty"`

	Source    string    `json:"source" validate:"required,url"`
	ScrapedAt time.Time `json:"scrapedAt"`

	ApplyURL         string          `json:"applyUrl,omitempty" validate:"omitempty,url"`
	DetailHTML       string          `json:"detailHtml,omitempty"`
	DetailText       string          `json:"detailText,omitempty"`
	DetailMarkdown   string          `json:"detailMarkdown,omitempty"`
	DetailSections   []DetailSection `json:"detailSections,omitempty" validate:"omitempty,dive"`
	BenefitsDetailed []Benefit       `json:"benefitsDetailed,omitempty" validate:"omitempty,dive"`
}

// DetailSection is a titled block of a job's full description.
type DetailSection struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content"`
}

// Benefit is a perk as described on a job's detail page.
type Benefit struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names so messages match the emitted schema.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Normalize replaces nil list fields with empty lists and removes duplicate
// perks, keeping the first occurrence.
func (j *Job) Normalize() {
	if j.Badges == nil {
		j.Badges = []string{}
	}
	j.Perks = Unique(j.Perks)
}

// Validate returns an EINVALID error if the job violates the schema.
func (j *Job) Validate() error {
	if j.ScrapedAt.IsZero() {
		return Errorf(EINVALID, "job %q: scrapedAt required", j.ID)
	}

	err := validate.Struct(j)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Errorf(EINVALID, "job %q: %v", j.ID, err)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Namespace()+" failed "+fe.Tag())
	}
	return Errorf(EINVALID, "job %q: %s", j.ID, strings.Join(fields, "; "))
}

// Clone returns a deep copy of the job.
func (j *Job) Clone() *Job {
	other := *j
	other.Badges = slices.Clone(j.Badges)
	other.Perks = slices.Clone(j.Perks)
	other.DetailSections = slices.Clone(j.DetailSections)
	other.BenefitsDetailed = slices.Clone(j.BenefitsDetailed)
	return &other
}

// ApplyDetail copies the non-empty fields of a parsed detail page onto the job.
func (j *Job) ApplyDetail(d *Detail) {
	if d == nil {
		return
	}
	setNonEmpty := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setNonEmpty(&j.ApplyURL, d.ApplyURL)
	setNonEmpty(&j.DetailHTML, d.HTML)
	setNonEmpty(&j.DetailText, d.Text)
	setNonEmpty(&j.DetailMarkdown, d.Markdown)
	setNonEmpty(&j.CompanyProfileURL, d.CompanyProfileURL)
	setNonEmpty(&j.CompanyLogoFull, d.CompanyLogo)
	setNonEmpty(&j.CompanySite, d.CompanySite)
	if len(d.Sections) > 0 {
		j.DetailSections = d.Sections
	}
	if len(d.Benefits) > 0 {
		j.BenefitsDetailed = d.Benefits
	}
}

// ApplyCompany copies a parsed company profile onto the job.
// The full logo is only taken when the detail page did not provide one.
func (j *Job) ApplyCompany(c *Company) {
	if c == nil {
		return
	}
	if c.Site != "" {
		j.CompanySite = c.Site
	}
	if j.CompanyLogoFull == "" && c.Logo != "" {
		j.CompanyLogoFull = c.Logo
	}
}

// Logo returns the best available logo URL for the job's company.
func (j *Job) Logo() string {
	if j.CompanyLogoFull != "" {
		return j.CompanyLogoFull
	}
	return j.CompanyLogo
}

// Listing is the result of scraping a single listing page.
type Listing struct {
	Source string `json:"source"`
	Page   int    `json:"page"`
	Total  int    `json:"total"`
	Jobs   []*Job `json:"jobs"`
}

// NewListing returns a Listing whose Total matches the number of jobs.
func NewListing(source string, page int, jobs []*Job) *Listing {
	if jobs == nil {
		jobs = []*Job{}
	}
	return &Listing{
		Source: source,
		Page:   page,
		Total:  len(jobs),
		Jobs:   jobs,
	}
}
