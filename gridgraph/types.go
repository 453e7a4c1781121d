// Package gridgraph defines core types and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/watershed.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrNaNInf indicates a cell elevation that is NaN or ±Inf.
	ErrNaNInf = errors.New("gridgraph: NaN or Inf elevation")
	// ErrUnreachable indicates a cell that is not part of a reach set.
	ErrUnreachable = errors.New("gridgraph: cell not reached")
)

// noPrev marks seeds and unvisited cells in the predecessor table.
const noPrev = -1

// ctxCheckInterval is how many expansions run between cancellation checks.
const ctxCheckInterval = 1024

// GridGraph treats a 2D elevation grid as a graph. It is immutable once built.
// Height and Width define dimensions; Elevations[row][col] holds the input value.
// Cells are addressed by row-major index: row*Width + col.
type GridGraph struct {
	Height, Width int
	Elevations    [][]float64
}

// Reach is the set of cells discovered by ReachFrom, together with the
// predecessor links of the search tree. It is immutable once returned.
type Reach struct {
	gg    *GridGraph
	seen  []bool
	prev  []int
	count int
}
