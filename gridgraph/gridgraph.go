// Package gridgraph provides utilities to treat a 2D grid of elevations
// as a graph with 4-connectivity (N, E, S, W).
package gridgraph

import (
	"fmt"
	"math"
)

// neighborOffsets lists (dRow, dCol) for N, E, S, W.
var neighborOffsets = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// NewGridGraph constructs a GridGraph from a rectangular 2D slice.
// It deep-copies the input, so later changes to values are not observed.
// A grid with zero rows or a zero-length first row is valid and has no cells.
// Returns ErrNonRectangular if any row length differs from the first row,
// ErrNaNInf if any cell is not a finite number.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]float64) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return &GridGraph{}, nil
	}
	h, w := len(values), len(values[0])
	// Deep copy while validating shape and values
	cells := make([][]float64, h)
	for r, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), w, ErrNonRectangular)
		}
		for c, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, ErrNaNInf)
			}
		}
		cells[r] = make([]float64, w)
		copy(cells[r], row)
	}

	return &GridGraph{Height: h, Width: w, Elevations: cells}, nil
}

// Len returns the number of cells, W×H.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(row, col int) bool {
	return row >= 0 && row < gg.Height && col >= 0 && col < gg.Width
}

// Elevation returns the value stored at (row,col). The caller checks bounds.
func (gg *GridGraph) Elevation(row, col int) float64 {
	return gg.Elevations[row][col]
}

// NeighborOffsets returns the (dRow, dCol) offsets of the 4-neighborhood.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [4][2]int {
	return neighborOffsets
}

// Index maps (row,col) to a row-major index: row*Width + col.
// Complexity: O(1).
func (gg *GridGraph) Index(row, col int) int {
	return row*gg.Width + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (row, col int) {
	return idx / gg.Width, idx % gg.Width
}

// TopLeftBorder returns the row-major indices of row 0 and column 0,
// each cell once, in ascending order.
func (gg *GridGraph) TopLeftBorder() []int {
	if gg.Len() == 0 {
		return nil
	}
	seeds := make([]int, 0, gg.Width+gg.Height-1)
	for c := 0; c < gg.Width; c++ {
		seeds = append(seeds, gg.Index(0, c))
	}
	for r := 1; r < gg.Height; r++ {
		seeds = append(seeds, gg.Index(r, 0))
	}

	return seeds
}

// BottomRightBorder returns the row-major indices of row Height-1 and
// column Width-1, each cell once, in ascending order.
func (gg *GridGraph) BottomRightBorder() []int {
	if gg.Len() == 0 {
		return nil
	}
	seeds := make([]int, 0, gg.Width+gg.Height-1)
	for r := 0; r < gg.Height-1; r++ {
		seeds = append(seeds, gg.Index(r, gg.Width-1))
	}
	for c := 0; c < gg.Width; c++ {
		seeds = append(seeds, gg.Index(gg.Height-1, c))
	}

	return seeds
}
