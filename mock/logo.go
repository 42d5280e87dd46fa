package mock

import "github.com/fwojciec/jobscrape"

var _ jobscrape.LogoRenderer = (*LogoRenderer)(nil)

// LogoRenderer is a mock implementation of jobscrape.LogoRenderer.
type LogoRenderer struct {
	RenderFn func(image []byte) (string, error)
}

func (r *LogoRenderer) Render(image []byte) (string, error) {
	return r.RenderFn(image)
}
