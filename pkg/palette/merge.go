package palette

import "github.com/pkg/errors"

// MergeByThreshold collapses centroids that sit closer than threshold to an
// already kept color. Centroids are visited in the order the clusterer
// produced them and the first seen of a close pair wins; later near
// duplicates are dropped, never averaged. A candidate at exactly the
// threshold distance counts as far enough and is kept.
//
// The resulting palette guarantees every pairwise distance is >= threshold
// and its size never exceeds the centroid count.
func MergeByThreshold(centroids []Color, threshold float64) (Palette, error) {
	if threshold < 0 {
		return nil, errors.Wrapf(ErrInvalidParameter, "threshold must not be negative, got %v", threshold)
	}

	result := make(Palette, 0, len(centroids))
	for _, candidate := range centroids {
		if len(result) == 0 || minDistanceTo(result, candidate) >= threshold {
			result = append(result, candidate)
		}
	}

	if len(result) == 0 {
		// Unreachable while the clusterer refuses K <= 0, kept as a guard.
		return nil, errors.Wrap(ErrEmptyPalette, "merge produced no colors")
	}

	return result, nil
}

func minDistanceTo(kept Palette, candidate Color) float64 {
	minDist := 0.0
	for i, c := range kept {
		d := candidate.Distance(c)
		if i == 0 || d < minDist {
			minDist = d
		}
	}
	return minDist
}
