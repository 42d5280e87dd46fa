package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/jobscrape"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/unicode/norm"
)

// DefaultConcurrency is the number of files written in parallel.
const DefaultConcurrency = 8

// Ensure TextWriter implements jobscrape.JobFileWriter at compile time.
var _ jobscrape.JobFileWriter = (*TextWriter)(nil)

// TextWriter writes one plain-text report per job.
type TextWriter struct {
	concurrency int
}

// TextOption configures a TextWriter.
type TextOption func(*TextWriter)

// WithConcurrency sets how many files are written at once.
func WithConcurrency(n int) TextOption {
	return func(w *TextWriter) {
		w.concurrency = n
	}
}

// NewTextWriter creates a new TextWriter.
func NewTextWriter(opts ...TextOption) *TextWriter {
	w := &TextWriter{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(w)
	}
	if w.concurrency <= 0 {
		w.concurrency = 1
	}
	return w
}

// WriteJobs writes "<name>.txt" for every job into dir and returns the
// absolute directory. Nothing is created when jobs is empty.
func (w *TextWriter) WriteJobs(ctx context.Context, dir string, jobs []*jobscrape.Job) (string, error) {
	if dir == "" {
		return "", jobscrape.Errorf(jobscrape.EINVALID, "output directory required")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	if len(jobs) == 0 {
		return abs, nil
	}
	if err := os.MkdirAll(abs, 0755); err != nil {
		return "", err
	}

	names := FileNames(jobs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.concurrency)
	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			path := filepath.Join(abs, names[i])
			return writeFileAtomic(path, []byte(jobscrape.FormatJobText(job)))
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	return abs, nil
}

// FileNames returns a distinct ".txt" file name for each job, in order.
// Names derive from the job ID, falling back to the title. A name already
// taken gets a short hash of the job link appended.
func FileNames(jobs []*jobscrape.Job) []string {
	names := make([]string, len(jobs))
	taken := make(map[string]bool, len(jobs))
	for i, job := range jobs {
		base := job.ID
		if base == "" {
			base = job.Title
		}
		stem := SanitizeFilename(base)
		if stem == "" {
			stem = "job"
		}

		name := stem
		if taken[name] {
			name = fmt.Sprintf("%s-%08x", stem, xxhash.Sum64String(job.Link)>>32)
		}
		for n := 2; taken[name]; n++ {
			name = stem + "-" + strconv.Itoa(n)
		}
		taken[name] = true
		names[i] = name + ".txt"
	}
	return names
}

var (
	unsafeFilenameRe = regexp.MustCompile(`[^a-zA-Z0-9\-_]`)
	dashRunRe        = regexp.MustCompile(`-+`)
)

// SanitizeFilename reduces s to a lowercase name made of ASCII letters,
// digits, '-' and '_'. Accented letters are decomposed first, so their
// marks become separators.
func SanitizeFilename(s string) string {
	s = norm.NFKD.String(s)
	s = unsafeFilenameRe.ReplaceAllString(s, "-")
	s = dashRunRe.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	return strings.ToLower(s)
}
