// Package termwrap reflows help text to the width of the caller's terminal.
package termwrap

import (
	"github.com/mitchellh/go-wordwrap"
	"golang.org/x/term"
)

type TermWrap struct {
	width  int
	height int
}

// NewTermWrap measures the attached terminal, falling back to the provided
// dimensions when there is none (e.g. output piped to a file).
func NewTermWrap(defaultWidth, defaultHeight int) *TermWrap {
	tw := &TermWrap{}

	var err error
	tw.width, tw.height, err = term.GetSize(0)
	if err != nil {
		tw.width = defaultWidth
		tw.height = defaultHeight
	}

	return tw
}

// Paragraph wraps content at the terminal width.
func (tw *TermWrap) Paragraph(content string) string {
	return wordwrap.WrapString(content, uint(tw.width))
}
