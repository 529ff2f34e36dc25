package export

import (
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/diwalsh/color-palette-extractor/pkg/palette"
)

var testPalette = palette.Palette{
	{R: 255},
	{R: 18, G: 52, B: 86},
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Format
		wantErr bool
	}{
		{name: "hex", in: "hex", want: FormatHex},
		{name: "rgb", in: "rgb", want: FormatRGB},
		{name: "both", in: "both", want: FormatBoth},
		{name: "case insensitive", in: "HEX", want: FormatHex},
		{name: "unknown", in: "cmyk", wantErr: true},
		{name: "empty", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				if !errors.Is(err, palette.ErrInvalidParameter) {
					t.Errorf("got %v, want ErrInvalidParameter", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriterNaming(t *testing.T) {
	w := NewWriter("/photos/sunset.jpg", "")

	if got, want := w.ImagePath(), filepath.Join("/photos", "sunset_palette.jpg"); got != want {
		t.Errorf("ImagePath() = %q, want %q", got, want)
	}
	if got, want := w.CodesPath(), filepath.Join("/photos", "sunset_colors.txt"); got != want {
		t.Errorf("CodesPath() = %q, want %q", got, want)
	}
}

func TestWriterUnencodableExtFallsBackToPNG(t *testing.T) {
	w := NewWriter("/photos/sunset.webp", "/out")

	if got, want := w.ImagePath(), filepath.Join("/out", "sunset_palette.png"); got != want {
		t.Errorf("ImagePath() = %q, want %q", got, want)
	}
}

func TestWriteCodesFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   string
	}{
		{name: "hex", format: FormatHex, want: "#FF0000\n#123456\n"},
		{name: "rgb", format: FormatRGB, want: "(255, 0, 0)\n(18, 52, 86)\n"},
		{name: "both", format: FormatBoth, want: "#FF0000 | (255, 0, 0)\n#123456 | (18, 52, 86)\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWriter(filepath.Join(t.TempDir(), "img.png"), t.TempDir())

			pathname, err := w.WriteCodes(testPalette, tt.format)
			if err != nil {
				t.Fatal(err)
			}

			content, err := os.ReadFile(pathname)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, string(content)); diff != "" {
				t.Errorf("unexpected file content (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriteImageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter("source.png", dir)

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		img.SetRGBA(x, 0, color.RGBA{R: 255, A: 255})
		img.SetRGBA(x, 1, color.RGBA{B: 255, A: 255})
	}

	pathname, err := w.WriteImage(img)
	if err != nil {
		t.Fatal(err)
	}
	if pathname != filepath.Join(dir, "source_palette.png") {
		t.Errorf("unexpected artifact path %q", pathname)
	}

	f, err := os.Open(pathname)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}
}

func TestWriteFailureSurfacesErrIO(t *testing.T) {
	w := NewWriter("source.png", filepath.Join(t.TempDir(), "missing", "dir"))

	if _, err := w.WriteCodes(testPalette, FormatHex); !errors.Is(err, ErrIO) {
		t.Errorf("WriteCodes: got %v, want ErrIO", err)
	}
	if _, err := w.WriteImage(image.NewRGBA(image.Rect(0, 0, 1, 1))); !errors.Is(err, ErrIO) {
		t.Errorf("WriteImage: got %v, want ErrIO", err)
	}
}
