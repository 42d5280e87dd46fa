package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"slices"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/ascii"
	jobfs "github.com/fwojciec/jobscrape/fs"
	"github.com/fwojciec/jobscrape/goquery"
	"github.com/fwojciec/jobscrape/htmltomarkdown"
	jobhttp "github.com/fwojciec/jobscrape/http"
	"github.com/fwojciec/jobscrape/readability"
	"github.com/fwojciec/jobscrape/scrape"
	jobslog "github.com/fwojciec/jobscrape/slog"
	"github.com/fwojciec/jobscrape/trafilatura"
	"github.com/fwojciec/jobscrape/yaml"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorText(err))
		stop()
		os.Exit(1)
	}
}

// errorText returns the message shown to the user for err.
func errorText(err error) string {
	if jobscrape.ErrorCode(err) != jobscrape.EINTERNAL {
		return jobscrape.ErrorMessage(err)
	}
	return err.Error()
}

// Main represents the program.
type Main struct {
	// EnvFile is loaded before flags are parsed. Variables already set in
	// the environment win. A missing file is ignored.
	EnvFile string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if m.EnvFile != "" {
		if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
		}
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("jobscrape"),
		kong.Description("Scrape job postings from a job board listing page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"default_url":    jobscrape.DefaultListURL,
			"default_origin": jobscrape.DefaultOrigin,
			"logo_width":     fmt.Sprint(ascii.DefaultWidth),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if slices.Contains(args, "--help") || slices.Contains(args, "-h") || (len(args) == 1 && args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose)

	selectors := goquery.DefaultSelectors()
	if cli.Selectors != "" {
		selectors, err = yaml.LoadSelectors(cli.Selectors)
		if err != nil {
			return err
		}
	}

	origin := cli.Origin
	if cli.File == "" {
		origin, err = jobscrape.Origin(cli.URL)
		if err != nil {
			return err
		}
	}

	// Wire dependencies
	httpFetcher := jobhttp.NewFetcher(jobhttp.WithTimeout(cli.Timeout))
	fetcher := jobslog.NewLoggingFetcher(httpFetcher, logger)
	defer fetcher.Close()

	var extractor jobscrape.Extractor
	switch cli.Extractor {
	case "readability":
		extractor = readability.NewExtractor(readability.WithPageURL(origin))
	default:
		extractor = trafilatura.NewExtractor(trafilatura.WithOriginalURL(origin))
	}

	listings := goquery.NewListingParser(goquery.WithListingSelectors(selectors.Listing))
	details := goquery.NewDetailParser(
		goquery.WithDetailSelectors(selectors.Detail),
		goquery.WithExtractor(extractor),
		goquery.WithConverter(htmltomarkdown.NewConverter(htmltomarkdown.WithDomain(origin))),
	)

	enricher := &scrape.Enricher{
		Fetcher:   fetcher,
		Images:    jobslog.NewLoggingImageFetcher(httpFetcher, logger),
		Details:   jobslog.NewLoggingDetailParser(details, logger),
		Companies: goquery.NewCompanyParser(selectors.Company),
		Logos:     ascii.NewLogoRenderer(ascii.WithWidth(cli.LogoWidth)),
		Logger:    logger,
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Scraper: &scrape.Scraper{
			Fetcher:  fetcher,
			Listings: jobslog.NewLoggingListingParser(listings, logger),
			Enricher: jobslog.NewLoggingEnricher(enricher, logger),
		},
		Listings: jobfs.NewListingWriter(),
		JobFiles: jobfs.NewTextWriter(),
	}

	cmd := &ScrapeCmd{
		Page:       cli.Page,
		Limit:      cli.Limit,
		URL:        cli.URL,
		File:       cli.File,
		Origin:     cli.Origin,
		Format:     cli.Format,
		Output:     cli.Output,
		TxtDir:     cli.TxtDir,
		Quiet:      cli.Quiet,
		Details:    cli.Details,
		Companies:  cli.Companies,
		ASCIILogos: cli.ASCIILogos,
	}

	return cmd.Run(deps)
}

// newLogger returns a text logger on w tagged with a unique run ID.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With("run", uuid.NewString())
}
