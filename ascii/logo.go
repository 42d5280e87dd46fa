// Package ascii renders company logos as ASCII art for console output.
package ascii

import (
	"bytes"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/fwojciec/jobscrape"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

// DefaultWidth is the default logo width in characters.
const DefaultWidth = 40

// DefaultCharset orders characters from lightest to darkest.
const DefaultCharset = " .:-=+*#%@"

// Ensure LogoRenderer implements jobscrape.LogoRenderer at compile time.
var _ jobscrape.LogoRenderer = (*LogoRenderer)(nil)

// LogoRenderer converts PNG, JPEG, GIF, and WebP images to ASCII art.
type LogoRenderer struct {
	width   int
	charset []rune
}

// Option configures a LogoRenderer.
type Option func(*LogoRenderer)

// WithWidth sets the output width in characters.
func WithWidth(width int) Option {
	return func(r *LogoRenderer) {
		r.width = width
	}
}

// WithCharset sets the characters used, from lightest to darkest.
func WithCharset(charset string) Option {
	return func(r *LogoRenderer) {
		r.charset = []rune(charset)
	}
}

// NewLogoRenderer creates a new LogoRenderer.
func NewLogoRenderer(opts ...Option) *LogoRenderer {
	r := &LogoRenderer{
		width:   DefaultWidth,
		charset: []rune(DefaultCharset),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.width <= 0 {
		r.width = DefaultWidth
	}
	if len(r.charset) < 2 {
		r.charset = []rune(DefaultCharset)
	}
	return r
}

// Render decodes an image and returns its ASCII rendering, one line per
// text row without trailing spaces. Transparent areas render as the
// lightest character.
func (r *LogoRenderer) Render(data []byte) (string, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", jobscrape.Errorf(jobscrape.EINVALID, "decode logo: %v", err)
	}

	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return "", jobscrape.Errorf(jobscrape.EINVALID, "empty logo image")
	}

	// Terminal cells are roughly twice as tall as they are wide.
	width := r.width
	height := max(1, int(float64(bounds.Dy())*float64(width)/float64(bounds.Dx())/2+0.5))

	// Compose onto white so transparent pixels read as background.
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)

	lines := make([]string, 0, height)
	var row strings.Builder
	for y := 0; y < height; y++ {
		row.Reset()
		for x := 0; x < width; x++ {
			row.WriteRune(r.shade(dst.RGBAAt(x, y)))
		}
		lines = append(lines, strings.TrimRight(row.String(), string(r.charset[0])))
	}

	return strings.TrimRight(strings.Join(lines, "\n"), "\n"), nil
}

// shade maps a pixel's luminance to a character; darker pixels get denser
// characters.
func (r *LogoRenderer) shade(c color.RGBA) rune {
	lum := (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
	last := len(r.charset) - 1
	idx := int((1-lum)*float64(last) + 0.5)
	return r.charset[min(max(idx, 0), last)]
}
