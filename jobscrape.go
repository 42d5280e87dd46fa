// Package jobscrape extracts structured job postings from job-board HTML.
// It parses a listing page into validated Job records, optionally enriches
// each job from its detail page and its company's profile page, and emits
// the result as JSON, a console table, or per-job text files.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, fs/).
package jobscrape

// DefaultListURL is the listing page scraped when no URL is given.
const DefaultListURL = "https://www.getonbrd.cl/jobs/programacion"

// DefaultOrigin is the origin of DefaultListURL, used to resolve relative
// links when parsing HTML that was not fetched over HTTP.
const DefaultOrigin = "https://www.getonbrd.cl"
