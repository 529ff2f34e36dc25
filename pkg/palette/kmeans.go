package palette

import (
	"math"
	"math/rand"

	"github.com/pkg/errors"
)

// Defaults for the clustering loop. The convergence epsilon and the
// iteration cap are deliberate fixed choices; see DESIGN.md.
const (
	DefaultMaxIterations = 100
	DefaultEpsilon       = 1.0
)

// Clusterer partitions pixel samples into K groups with k-means over RGB
// space and reports each group's centroid. The random state used for
// centroid initialization is owned by the Clusterer (seeded, never global)
// so that runs are reproducible.
type Clusterer struct {
	K             int
	Seed          int64
	MaxIterations int
	Epsilon       float64
}

// NewClusterer returns a Clusterer for k clusters with the default
// iteration cap and convergence epsilon.
func NewClusterer(k int, seed int64) *Clusterer {
	return &Clusterer{
		K:             k,
		Seed:          seed,
		MaxIterations: DefaultMaxIterations,
		Epsilon:       DefaultEpsilon,
	}
}

// point3 is a position in RGB space during clustering.
type point3 struct {
	r, g, b float64
}

func (p point3) distance(o point3) float64 {
	dr := p.r - o.r
	dg := p.g - o.g
	db := p.b - o.b
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Cluster runs the k-means loop over samples and returns exactly K
// centroids, each rounded to the nearest integer per channel. Identical
// centroids are possible; deduplication is the merge step's job.
func (c *Clusterer) Cluster(samples []Color) ([]Color, error) {
	if c.K <= 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "cluster count must be positive, got %d", c.K)
	}
	if c.K > len(samples) {
		return nil, errors.Wrapf(ErrInvalidParameter,
			"cluster count %d exceeds sample count %d", c.K, len(samples))
	}

	points := make([]point3, len(samples))
	for i, s := range samples {
		points[i] = point3{r: float64(s.R), g: float64(s.G), b: float64(s.B)}
	}

	centroids := c.initialCentroids(points)
	assignments := make([]int, len(points))

	for iter := 0; iter < c.MaxIterations; iter++ {
		for i, p := range points {
			assignments[i] = nearestCentroid(p, centroids)
		}

		next := recomputeCentroids(points, assignments, centroids)

		moved := 0.0
		for i := range centroids {
			if d := centroids[i].distance(next[i]); d > moved {
				moved = d
			}
		}

		centroids = next
		if moved < c.Epsilon {
			break
		}
	}

	result := make([]Color, len(centroids))
	for i, p := range centroids {
		result[i] = Color{
			R: uint8(math.Round(p.r)),
			G: uint8(math.Round(p.g)),
			B: uint8(math.Round(p.b)),
		}
	}
	return result, nil
}

// initialCentroids picks K starting centroids from a seeded permutation of
// the samples, preferring distinct colors. When fewer than K distinct
// colors exist the remainder are filled with repeats so the caller always
// gets exactly K centroids back.
func (c *Clusterer) initialCentroids(points []point3) []point3 {
	rng := rand.New(rand.NewSource(c.Seed))
	perm := rng.Perm(len(points))

	centroids := make([]point3, 0, c.K)
	seen := make(map[point3]bool, c.K)
	for _, idx := range perm {
		p := points[idx]
		if seen[p] {
			continue
		}
		seen[p] = true
		centroids = append(centroids, p)
		if len(centroids) == c.K {
			return centroids
		}
	}

	for _, idx := range perm {
		if len(centroids) == c.K {
			break
		}
		centroids = append(centroids, points[idx])
	}
	return centroids
}

func nearestCentroid(p point3, centroids []point3) int {
	nearest := 0
	minDist := math.MaxFloat64
	for i, centroid := range centroids {
		if d := p.distance(centroid); d < minDist {
			minDist = d
			nearest = i
		}
	}
	return nearest
}

// recomputeCentroids returns the mean position of each cluster. A cluster
// that lost all of its samples keeps its previous centroid so the centroid
// count never shrinks.
func recomputeCentroids(points []point3, assignments []int, prev []point3) []point3 {
	sums := make([]point3, len(prev))
	counts := make([]int, len(prev))

	for i, p := range points {
		cluster := assignments[i]
		sums[cluster].r += p.r
		sums[cluster].g += p.g
		sums[cluster].b += p.b
		counts[cluster]++
	}

	next := make([]point3, len(prev))
	for i := range next {
		if counts[i] == 0 {
			next[i] = prev[i]
			continue
		}
		n := float64(counts[i])
		next[i] = point3{r: sums[i].r / n, g: sums[i].g / n, b: sums[i].b / n}
	}
	return next
}
