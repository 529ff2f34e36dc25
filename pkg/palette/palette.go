package palette

import "github.com/pkg/errors"

// Sentinel errors surfaced by this package. Callers match them with
// errors.Is to decide an exit code.
var (
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrEmptyPalette     = errors.New("empty palette")
)

// Palette is the final ordered sequence of representative colors. It is
// created once per run and never mutated afterwards.
type Palette []Color

// Hexes returns the uppercase hex codes of all colors, in palette order.
func (p Palette) Hexes() []string {
	codes := make([]string, len(p))
	for i, c := range p {
		codes[i] = c.Hex()
	}
	return codes
}
