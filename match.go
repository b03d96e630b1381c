package convacolor

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Nearest returns the candidate of sector s closest to c by Manhattan distance, together with
// that distance. Ties go to the sample that comes first in the table.
func (t *Table) Nearest(c RGB, s Sector) (Sample, int, error) {
	idx := t.buckets[s]
	if len(idx) == 0 {
		return Sample{}, 0, fmt.Errorf("%w: %s", ErrNoCandidates, s)
	}

	query := c.vector()
	dists := make([]float64, len(idx))
	for i, j := range idx {
		dists[i] = floats.Distance(query, t.vectors[j], 1)
	}

	// MinIdx keeps the first index on ties.
	best := floats.MinIdx(dists)
	return t.samples[idx[best]], int(dists[best]), nil
}
