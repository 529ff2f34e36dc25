package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// quadPixels is the 2x2 sample set used throughout: two red pixels, one
// green, one blue.
func quadPixels() []Color {
	return []Color{
		{R: 255},
		{R: 255},
		{G: 255},
		{B: 255},
	}
}

func TestClusterReturnsExactlyK(t *testing.T) {
	samples := quadPixels()

	for k := 1; k <= len(samples); k++ {
		c := NewClusterer(k, 42)
		centroids, err := c.Cluster(samples)
		if err != nil {
			t.Fatalf("Cluster with k=%d: %v", k, err)
		}
		if len(centroids) != k {
			t.Errorf("Cluster with k=%d returned %d centroids", k, len(centroids))
		}
	}
}

func TestClusterInvalidParameters(t *testing.T) {
	tests := []struct {
		name string
		k    int
	}{
		{name: "zero", k: 0},
		{name: "negative", k: -3},
		{name: "more than samples", k: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClusterer(tt.k, 42).Cluster(quadPixels())
			if !errors.Is(err, ErrInvalidParameter) {
				t.Errorf("Cluster with k=%d: got %v, want ErrInvalidParameter", tt.k, err)
			}
		})
	}
}

func TestClusterSeparatesPrimaries(t *testing.T) {
	centroids, err := NewClusterer(3, 42).Cluster(quadPixels())
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []Color{{R: 255}, {G: 255}, {B: 255}} {
		found := false
		for _, got := range centroids {
			if got.Distance(want) < 1.0 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no centroid near %v in %v", want, centroids)
		}
	}
}

func TestClusterDeterministicForSeed(t *testing.T) {
	samples := []Color{
		{R: 10, G: 20, B: 30},
		{R: 200, G: 10, B: 10},
		{R: 12, G: 22, B: 28},
		{R: 250, G: 250, B: 240},
		{R: 198, G: 14, B: 8},
		{R: 60, G: 120, B: 180},
		{R: 61, G: 118, B: 179},
	}

	first, err := NewClusterer(3, 7).Cluster(samples)
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewClusterer(3, 7).Cluster(samples)
	if err != nil {
		t.Fatal(err)
	}

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("same seed produced different centroids (-first +second):\n%s", diff)
	}
}

func TestClusterSingleColorImage(t *testing.T) {
	samples := make([]Color, 16)
	for i := range samples {
		samples[i] = Color{R: 40, G: 80, B: 120}
	}

	// More clusters requested than distinct colors exist: duplicates are
	// fine, the count guarantee is what matters.
	centroids, err := NewClusterer(3, 42).Cluster(samples)
	if err != nil {
		t.Fatal(err)
	}
	if len(centroids) != 3 {
		t.Fatalf("got %d centroids, want 3", len(centroids))
	}
	for _, c := range centroids {
		if c != (Color{R: 40, G: 80, B: 120}) {
			t.Errorf("unexpected centroid %v", c)
		}
	}
}

func TestClusterMeanIsRounded(t *testing.T) {
	// Two samples in one cluster with an odd channel sum: the mean 127.5
	// must round to 128, not truncate.
	samples := []Color{{R: 127}, {R: 128}}
	centroids, err := NewClusterer(1, 42).Cluster(samples)
	if err != nil {
		t.Fatal(err)
	}
	if centroids[0].R != 128 {
		t.Errorf("centroid R = %d, want 128", centroids[0].R)
	}
}
