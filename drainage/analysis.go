package drainage

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/watershed/gridgraph"
)

// Analysis holds the outcome of a drainage run:
//   - Rows, Cols: matrix dimensions (both 0 for an empty matrix).
//   - Both: cells draining into both regions, row-major.
//
// The per-region reach sets are kept private and queried through methods.
type Analysis struct {
	Rows, Cols int
	Both       []Coordinate

	grid  *gridgraph.GridGraph
	reach [2]*gridgraph.Reach
}

// newAnalysis intersects the two reach sets by scanning indices in
// ascending order, which is row-major order.
func newAnalysis(gg *gridgraph.GridGraph, nw, se *gridgraph.Reach) *Analysis {
	both := make([]Coordinate, 0)
	for idx := 0; idx < gg.Len(); idx++ {
		if nw.Contains(idx) && se.Contains(idx) {
			r, c := gg.Coordinate(idx)
			both = append(both, Coordinate{Row: r, Col: c})
		}
	}

	return &Analysis{
		Rows:  gg.Height,
		Cols:  gg.Width,
		Both:  both,
		grid:  gg,
		reach: [2]*gridgraph.Reach{nw, se},
	}
}

// Count returns the number of cells draining into both regions.
func (a *Analysis) Count() int {
	return len(a.Both)
}

// ReachCount returns how many cells drain into region.
func (a *Analysis) ReachCount(region Region) (int, error) {
	if !region.valid() {
		return 0, ErrUnknownRegion
	}

	return a.reach[region].Count(), nil
}

// Reachable reports whether water at c can reach region.
// Out-of-range coordinates and unknown regions report false.
func (a *Analysis) Reachable(region Region, c Coordinate) bool {
	if !region.valid() || !a.grid.InBounds(c.Row, c.Col) {
		return false
	}

	return a.reach[region].Contains(a.grid.Index(c.Row, c.Col))
}

// Qualifies reports whether water at c can reach both regions.
func (a *Analysis) Qualifies(c Coordinate) bool {
	return a.Reachable(RegionA, c) && a.Reachable(RegionB, c)
}

// FlowPath returns one route water can take from c into region: c first,
// a border cell of region last, each step to an orthogonal neighbor of the
// same or lower elevation.
// Returns ErrUnknownRegion, ErrOutOfRange, or ErrNotReachable.
func (a *Analysis) FlowPath(region Region, c Coordinate) ([]Coordinate, error) {
	if !region.valid() {
		return nil, ErrUnknownRegion
	}
	if !a.grid.InBounds(c.Row, c.Col) {
		return nil, fmt.Errorf("%v in %dx%d matrix: %w", c, a.Rows, a.Cols, ErrOutOfRange)
	}
	idxs, err := a.reach[region].PathToSeed(a.grid.Index(c.Row, c.Col))
	if errors.Is(err, gridgraph.ErrUnreachable) {
		return nil, fmt.Errorf("%v to %s: %w", c, region, ErrNotReachable)
	}
	if err != nil {
		return nil, err
	}

	path := make([]Coordinate, len(idxs))
	for i, idx := range idxs {
		r, col := a.grid.Coordinate(idx)
		path[i] = Coordinate{Row: r, Col: col}
	}

	return path, nil
}
