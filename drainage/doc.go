// Package drainage finds the cells of an elevation map from which water
// can reach two opposite drains at once.
//
// What
//
//   - Region A (northwest) is the top row together with the left column.
//   - Region B (southeast) is the bottom row together with the right column.
//   - Water flows from a cell to an orthogonal neighbor of the same or lower
//     elevation. Diagonal moves are never taken.
//   - Compute returns every (row, col) whose water can reach both regions,
//     in row-major order and without duplicates.
//
// How
//
//	Instead of following water downhill from each of the W×H cells, the
//	search runs backwards: from every border cell of a region it climbs to
//	neighbors whose elevation is greater than or equal to the current cell.
//	The threshold for a step is always the elevation of the cell being
//	expanded, so a cell's state is just "visited or not" and one pass per
//	region suffices. The two reach sets are intersected at the end.
//
//	The two regional searches read the same immutable grid and write to
//	private visited sets, so by default they run concurrently.
//
// Complexity (N = rows × cols)
//
//   - Time:   O(N) per region, O(N) total.
//   - Memory: O(N) per region.
//
// Errors
//
//   - ErrShape: rows of differing length.
//   - ErrNonFinite: a NaN or ±Inf elevation.
//   - ErrOptionViolation: an invalid Option.
//   - ErrOutOfRange, ErrUnknownRegion, ErrNotReachable: Analysis queries.
//
// An empty matrix (no rows, or an empty first row) is not an error: it
// yields an empty result. On error no partial result is returned.
//
// Usage
//
//	cells, err := drainage.Compute(heights)
//	if err != nil {
//		// ErrShape or ErrNonFinite
//	}
//	for _, c := range cells {
//		fmt.Println(c) // (row, col)
//	}
package drainage
