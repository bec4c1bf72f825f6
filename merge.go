package xlgrid

import "fmt"

// Merge records the given range as a merged region. The merge is rejected
// with ErrOverlappingMerge when it would overlap an existing region, keeping
// the merged-region set pairwise non-overlapping.
func (g *Grid) Merge(rng Range) error {
	for _, existing := range g.merged {
		if existing.Overlaps(rng) {
			return fmt.Errorf("%w: %s overlaps %s", ErrOverlappingMerge, rng, existing)
		}
	}
	g.merged = append(g.merged, rng)
	return nil
}

// Unmerge removes every merged region that overlaps the given range by at
// least one cell; partial overlap removes the whole region. Returns the
// number of regions removed.
func (g *Grid) Unmerge(rng Range) int {
	removed := 0
	kept := g.merged[:0]
	for _, region := range g.merged {
		if region.Overlaps(rng) {
			removed++
			continue
		}
		kept = append(kept, region)
	}
	g.merged = kept
	return removed
}
