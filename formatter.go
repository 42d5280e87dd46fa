package jobscrape

import "strings"

// notAvailable marks a missing value in text output.
const notAvailable = "N/A"

// FormatJobText renders a job as a plain-text report, one "Label: value"
// line per field. The description prefers the detail page markdown, then
// its plain text, then the listing summary. An ASCII logo, when present,
// is appended after a blank line.
func FormatJobText(job *Job) string {
	orNA := func(v string) string {
		if v == "" {
			return notAvailable
		}
		return v
	}
	listOrNA := func(v []string) string {
		if len(v) == 0 {
			return notAvailable
		}
		return strings.Join(v, ", ")
	}

	description := job.DetailMarkdown
	if description == "" {
		description = job.DetailText
	}
	if description == "" {
		description = job.Description
	}

	lines := []string{
		"Title: " + job.Title,
		"Company: " + orNA(job.Company),
		"Type: " + orNA(job.JobType),
		"Location: " + orNA(job.Location),
		"Modality: " + orNA(job.Modality),
		"Remote: " + YesNo(job.Remote),
		"Published: " + orNA(job.PublishedAt),
		"Salary: " + orNA(job.Salary),
		"Badges: " + listOrNA(job.Badges),
		"Perks: " + listOrNA(job.Perks),
		"Link: " + job.Link,
		"Apply: " + orNA(job.ApplyURL),
		"Company site: " + orNA(job.CompanySite),
		"Description: " + orNA(description),
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	if job.CompanyLogoASCII != "" {
		b.WriteString("\n")
		b.WriteString(job.CompanyLogoASCII)
		b.WriteString("\n")
	}
	return b.String()
}

// YesNo renders a boolean for humans.
func YesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
