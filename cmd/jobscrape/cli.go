package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Scraper  *scrape.Scraper
	Listings jobscrape.ListingWriter
	JobFiles jobscrape.JobFileWriter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Page       int           `short:"p" default:"1" env:"JOBSCRAPE_PAGE" help:"Listing page to request"`
	Limit      int           `short:"l" env:"JOBSCRAPE_LIMIT" help:"Maximum number of jobs to return"`
	URL        string        `name:"url" default:"${default_url}" env:"JOBSCRAPE_URL" help:"Listing URL to scrape"`
	File       string        `type:"path" help:"Parse a local HTML file instead of fetching the listing"`
	Origin     string        `default:"${default_origin}" env:"JOBSCRAPE_ORIGIN" help:"Origin used to resolve links in --file"`
	Format     string        `enum:"json,table" default:"json" help:"Output format (json, table)"`
	Output     string        `short:"o" type:"path" help:"Save the JSON result to this file"`
	TxtDir     string        `name:"txt-dir" type:"path" help:"Write one .txt file per job into this directory"`
	Quiet      bool          `help:"Suppress console output (requires --output)"`
	Details    bool          `env:"JOBSCRAPE_DETAILS" help:"Fetch each job's detail page"`
	Companies  bool          `env:"JOBSCRAPE_COMPANIES" help:"Fetch company profiles (implies --details)"`
	ASCIILogos bool          `name:"ascii-logos" help:"Render company logos as ASCII art"`
	LogoWidth  int           `name:"logo-width" default:"${logo_width}" help:"ASCII logo width in characters"`
	Extractor  string        `enum:"trafilatura,readability" default:"trafilatura" env:"JOBSCRAPE_EXTRACTOR" help:"Fallback extractor for detail pages (trafilatura, readability)"`
	Selectors  string        `type:"path" env:"JOBSCRAPE_SELECTORS" help:"YAML file overriding the CSS selectors"`
	Timeout    time.Duration `short:"t" default:"10s" env:"JOBSCRAPE_TIMEOUT" help:"HTTP timeout per request"`
	Verbose    bool          `short:"v" help:"Log every request to stderr"`
}

// Validate checks flag combinations after parsing.
func (c *CLI) Validate() error {
	if c.Page < 1 {
		return jobscrape.Errorf(jobscrape.EINVALID, "--page must be a number >= 1")
	}
	if c.Limit < 0 {
		return jobscrape.Errorf(jobscrape.EINVALID, "--limit must be a number >= 0")
	}
	if c.Quiet && c.Output == "" {
		return jobscrape.Errorf(jobscrape.EINVALID, "--quiet requires --output to write the result to disk")
	}
	if c.LogoWidth < 1 {
		return jobscrape.Errorf(jobscrape.EINVALID, "--logo-width must be a number >= 1")
	}
	if c.Timeout <= 0 {
		return jobscrape.Errorf(jobscrape.EINVALID, "--timeout must be positive")
	}
	return nil
}

// ScrapeCmd scrapes one listing page and emits the result.
type ScrapeCmd struct {
	Page       int
	Limit      int
	URL        string
	File       string
	Origin     string
	Format     string
	Output     string
	TxtDir     string
	Quiet      bool
	Details    bool
	Companies  bool
	ASCIILogos bool
}
