package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/jobscrape"
	"github.com/fwojciec/jobscrape/goquery"
	"github.com/fwojciec/jobscrape/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelectors(t *testing.T) {
	t.Parallel()

	t.Run("overrides only the given keys", func(t *testing.T) {
		t.Parallel()

		data := []byte(`
listing:
  item: "div.job-card"
  title: "h2"
company:
  logo: "img.brand"
`)

		got, err := yaml.ParseSelectors(data)

		require.NoError(t, err)
		want := goquery.DefaultSelectors()
		want.Listing.Item = "div.job-card"
		want.Listing.Title = "h2"
		want.Company.Logo = "img.brand"
		assert.Equal(t, want, got)
	})

	t.Run("empty document keeps defaults", func(t *testing.T) {
		t.Parallel()

		got, err := yaml.ParseSelectors(nil)

		require.NoError(t, err)
		assert.Equal(t, goquery.DefaultSelectors(), got)
	})

	t.Run("rejects unknown keys", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseSelectors([]byte("listing:\n  headline: h2\n"))

		assert.Equal(t, jobscrape.EINVALID, jobscrape.ErrorCode(err))
	})

	t.Run("rejects clearing a required selector", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseSelectors([]byte("listing:\n  item: \"\"\n"))

		require.Error(t, err)
		assert.Equal(t, jobscrape.EINVALID, jobscrape.ErrorCode(err))
		assert.Contains(t, err.Error(), "listing.item")
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseSelectors([]byte("listing: [unclosed"))

		assert.Equal(t, jobscrape.EINVALID, jobscrape.ErrorCode(err))
	})
}

func TestLoadSelectors(t *testing.T) {
	t.Parallel()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "selectors.yaml")
		require.NoError(t, os.WriteFile(path, []byte("detail:\n  description: \"#job-body\"\n"), 0644))

		got, err := yaml.LoadSelectors(path)

		require.NoError(t, err)
		assert.Equal(t, "#job-body", got.Detail.Description)
		assert.Equal(t, goquery.DefaultSelectors().Listing, got.Listing)
	})

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadSelectors(filepath.Join(t.TempDir(), "missing.yaml"))

		assert.Equal(t, jobscrape.ENOTFOUND, jobscrape.ErrorCode(err))
	})
}
