// Package yaml loads CSS selector overrides from YAML files, so a board
// layout change can be handled without a new release.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/goquery"
	"gopkg.in/yaml.v3"
)

// LoadSelectors reads selector overrides from path. Keys absent from the
// file keep their default values. Unknown keys are rejected.
func LoadSelectors(path string) (goquery.Selectors, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return goquery.Selectors{}, jobscrape.Errorf(jobscrape.ENOTFOUND, "selectors file %s not found", path)
		}
		return goquery.Selectors{}, err
	}
	return ParseSelectors(data)
}

// ParseSelectors decodes YAML selector overrides on top of
// goquery.DefaultSelectors and validates the result.
func ParseSelectors(data []byte) (goquery.Selectors, error) {
	selectors := goquery.DefaultSelectors()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&selectors); err != nil && !errors.Is(err, io.EOF) {
		return goquery.Selectors{}, jobscrape.Errorf(jobscrape.EINVALID, "invalid selectors file: %v", err)
	}

	if err := selectors.Validate(); err != nil {
		return goquery.Selectors{}, fmt.Errorf("selectors file: %w", err)
	}
	return selectors, nil
}
