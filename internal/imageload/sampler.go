package imageload

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"

	"github.com/diwalsh/color-palette-extractor/pkg/palette"
)

// maxSampleEdge bounds the pixel grid handed to the clusterer. Larger
// inputs are shrunk so clustering stays fast; 300 matches the working size
// of the original tool.
const maxSampleEdge = 300

// Samples flattens the image into one color sample per pixel, traversed
// row by row for reproducibility. Images wider or taller than maxSampleEdge
// are resized down first.
func Samples(img image.Image) ([]palette.Color, error) {
	if img == nil {
		return nil, errors.Wrap(ErrInvalidImage, "no image to sample")
	}

	bounds := img.Bounds()
	if bounds.Dx() < 1 || bounds.Dy() < 1 {
		return nil, errors.Wrapf(ErrInvalidImage, "empty dimensions %dx%d", bounds.Dx(), bounds.Dy())
	}

	if bounds.Dx() > maxSampleEdge || bounds.Dy() > maxSampleEdge {
		img = resize.Resize(maxSampleEdge, maxSampleEdge, img, resize.Bilinear)
		bounds = img.Bounds()
	}

	samples := make([]palette.Color, 0, bounds.Dx()*bounds.Dy())
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			samples = append(samples, palette.Color{
				R: uint8(r >> 8),
				G: uint8(g >> 8),
				B: uint8(b >> 8),
			})
		}
	}

	return samples, nil
}
