package mock

import "github.com/fwojciec/jobscrape"

var _ jobscrape.Converter = (*Converter)(nil)

// Converter is a mock implementation of jobscrape.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
