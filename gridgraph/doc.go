// Package gridgraph treats a 2D elevation grid as an implicit graph, enabling
// monotonic reachability searches seeded from arbitrary cell sets.
//
// What:
//
//   - GridGraph wraps a rectangular [][]float64 grid of elevations.
//   - Cells are vertices; edges join orthogonal neighbors (N, E, S, W).
//   - ReachFrom runs a multi-source search over "uphill or level" edges:
//     a step u→v is admitted iff elevation(v) ≥ elevation(u).
//   - Reach.PathToSeed recovers the downhill route from any reached cell
//     back to the seed that discovered it.
//
// Why:
//
//   - Hydrology: which cells drain into a border, a lake or a sink.
//   - Game maps: "water flows to" queries on height fields.
//   - Searching backwards from the drains costs one traversal per drain set,
//     instead of one traversal per cell.
//
// Complexity:
//
//   - NewGridGraph: O(W×H), Memory: O(W×H).
//   - ReachFrom:    O(W×H×4), Memory: O(W×H) (visited flags, predecessors, stack).
//   - PathToSeed:   O(path length).
//
// Empty grids:
//
//	Zero rows, or a zero-length first row, build a valid grid with no cells.
//	Every search over it reaches nothing.
//
// Errors:
//
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNaNInf: a cell holds NaN or ±Inf.
//   - ErrUnreachable: a path was requested for a cell outside the reach set.
package gridgraph
