// Package swatch composes a strip image out of palette colors.
package swatch

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/pkg/errors"

	"github.com/diwalsh/color-palette-extractor/pkg/palette"
)

// Options are the per-swatch block dimensions.
type Options struct {
	Width  int
	Height int
}

// DefaultOptions matches the 100x100 blocks of the original tool.
func DefaultOptions() Options {
	return Options{Width: 100, Height: 100}
}

// Render composes one equal-width solid block per palette color, laid out
// left to right in palette order. No text is drawn; labels belong to the
// color-code text file.
func Render(p palette.Palette, opts Options) (*image.RGBA, error) {
	if len(p) == 0 {
		return nil, errors.Wrap(palette.ErrEmptyPalette, "nothing to render")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Wrapf(palette.ErrInvalidParameter,
			"swatch dimensions must be positive, got %dx%d", opts.Width, opts.Height)
	}

	strip := image.NewRGBA(image.Rect(0, 0, opts.Width*len(p), opts.Height))
	for i, c := range p {
		block := image.Rect(i*opts.Width, 0, (i+1)*opts.Width, opts.Height)
		fill := image.NewUniform(color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		draw.Draw(strip, block, fill, image.Point{}, draw.Src)
	}

	return strip, nil
}
