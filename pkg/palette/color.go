// Package palette implements dominant-color extraction: k-means clustering
// of pixel samples followed by a greedy threshold merge of the centroids.
package palette

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// Color is an RGB triple with each channel in [0,255].
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Hex returns the color as an uppercase "#RRGGBB" code.
func (c Color) Hex() string {
	col := colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
	return strings.ToUpper(col.Hex())
}

// RGB returns the color as a "(R, G, B)" code with decimal channel values.
func (c Color) RGB() string {
	return fmt.Sprintf("(%d, %d, %d)", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// Distance is the Euclidean distance between two colors in RGB space.
func (c Color) Distance(o Color) float64 {
	dr := float64(c.R) - float64(o.R)
	dg := float64(c.G) - float64(o.G)
	db := float64(c.B) - float64(o.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// ParseHex parses a "#RRGGBB" code (either case) back into a Color.
func ParseHex(code string) (Color, error) {
	col, err := colorful.Hex(code)
	if err != nil {
		return Color{}, errors.Wrapf(err, "unable to parse color code %q", code)
	}
	r, g, b := col.RGB255()
	return Color{R: r, G: g, B: b}, nil
}
