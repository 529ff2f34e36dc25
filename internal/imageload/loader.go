// Package imageload reads a source image and turns it into the flat pixel
// samples the clusterer consumes.
package imageload

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrInvalidImage marks a source file that is missing, not decodable, or
// has a zero dimension.
var ErrInvalidImage = errors.New("invalid image")

// Load opens and decodes the image at pathname. Supported formats: PNG,
// JPEG, GIF, BMP, TIFF, and WebP.
func Load(pathname string) (image.Image, error) {
	f, err := os.Open(pathname)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidImage, "unable to open %s: %v", pathname, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidImage, "unable to decode %s: %v", pathname, err)
	}

	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, errors.Wrapf(ErrInvalidImage, "%s has empty dimensions %dx%d (format %s)",
			pathname, bounds.Dx(), bounds.Dy(), format)
	}

	return img, nil
}
