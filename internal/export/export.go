// Package export writes the run's artifacts: the swatch-strip image and the
// color-code text file, both named after the source image.
package export

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/diwalsh/color-palette-extractor/pkg/palette"
)

// ErrIO marks a failed artifact write. A sibling file already written is
// left in place; there is no rollback.
var ErrIO = errors.New("output failure")

// Format selects the color-code notation in the text artifact.
type Format string

const (
	FormatHex  Format = "hex"
	FormatRGB  Format = "rgb"
	FormatBoth Format = "both"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatHex, FormatRGB, FormatBoth:
		return f, nil
	default:
		return "", errors.Wrapf(palette.ErrInvalidParameter,
			"unknown format %q (expected hex, rgb, or both)", name)
	}
}

// Writer names artifacts after the source image and places them in Dir.
type Writer struct {
	Dir      string
	BaseName string // source image name without extension
	Ext      string // source image extension, including the dot
}

// NewWriter derives a Writer from the source image path. When dir is empty
// the artifacts land alongside the source image.
func NewWriter(imagePath, dir string) *Writer {
	base := filepath.Base(imagePath)
	ext := filepath.Ext(base)
	if dir == "" {
		dir = filepath.Dir(imagePath)
	}
	return &Writer{
		Dir:      dir,
		BaseName: strings.TrimSuffix(base, ext),
		Ext:      ext,
	}
}

// ImagePath is where the swatch strip will be written.
func (w *Writer) ImagePath() string {
	ext := w.Ext
	if encoderFor(ext) == nil {
		ext = ".png"
	}
	return filepath.Join(w.Dir, w.BaseName+"_palette"+ext)
}

// CodesPath is where the color-code listing will be written.
func (w *Writer) CodesPath() string {
	return filepath.Join(w.Dir, w.BaseName+"_colors.txt")
}

// WriteImage encodes the swatch strip using the source image's format where
// an encoder exists, falling back to PNG otherwise (e.g. for WebP sources).
func (w *Writer) WriteImage(img image.Image) (string, error) {
	pathname := w.ImagePath()
	encode := encoderFor(filepath.Ext(pathname))
	if encode == nil {
		encode = func(f *os.File, img image.Image) error { return png.Encode(f, img) }
	}

	f, err := os.Create(pathname)
	if err != nil {
		return "", errors.Wrapf(ErrIO, "unable to create %s: %v", pathname, err)
	}
	defer f.Close()

	if err := encode(f, img); err != nil {
		return "", errors.Wrapf(ErrIO, "unable to encode %s: %v", pathname, err)
	}

	return pathname, nil
}

// WriteCodes lists each palette color on its own line in palette order.
func (w *Writer) WriteCodes(p palette.Palette, format Format) (string, error) {
	var b strings.Builder
	for _, c := range p {
		switch format {
		case FormatRGB:
			fmt.Fprintln(&b, c.RGB())
		case FormatBoth:
			fmt.Fprintf(&b, "%s | %s\n", c.Hex(), c.RGB())
		default:
			fmt.Fprintln(&b, c.Hex())
		}
	}

	pathname := w.CodesPath()
	if err := os.WriteFile(pathname, []byte(b.String()), 0644); err != nil {
		return "", errors.Wrapf(ErrIO, "unable to write %s: %v", pathname, err)
	}

	return pathname, nil
}

func encoderFor(ext string) func(*os.File, image.Image) error {
	switch strings.ToLower(ext) {
	case ".png":
		return func(f *os.File, img image.Image) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		return func(f *os.File, img image.Image) error {
			return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
		}
	case ".gif":
		return func(f *os.File, img image.Image) error {
			return gif.Encode(f, img, nil)
		}
	case ".bmp":
		return func(f *os.File, img image.Image) error { return bmp.Encode(f, img) }
	case ".tif", ".tiff":
		return func(f *os.File, img image.Image) error { return tiff.Encode(f, img, nil) }
	default:
		return nil
	}
}
