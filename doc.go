// Package watershed answers one question about a height map: from which
// cells can rain water run off into two opposite seas at once?
//
// 🌊 What is watershed?
//
//	A small, dependency-light toolkit built around a single deterministic
//	algorithm, with the data plumbing needed to run it on real inputs:
//		• gridgraph: an elevation grid as an implicit 4-connected graph,
//		  with monotonic multi-source reachability
//		• drainage: cells that drain into both the northwest sea
//		  (top row + left column) and the southeast sea
//		  (bottom row + right column)
//		• scenario: named elevation sheets from YAML or CSV workbooks,
//		  parsed and validated before analysis
//		• render: plain-text tables and coordinate listings
//		• cmd/watershed: a CLI tying the four together
//
// Quick ASCII example:
//
//	heights        * reaches both seas
//	1 2 2 3 5      . . . . *
//	3 2 3 4 4      . . . * *
//	2 4 5 3 1      . . * . .
//	6 7 1 4 5      * * . . .
//	5 1 1 2 4      * . . . .
//
// Water moves to an orthogonal neighbor of the same or lower elevation.
// The search runs uphill from each sea's border instead, once per sea, and
// intersects the two results: O(rows×cols) time and memory overall.
//
//	go get github.com/katalvlaran/watershed
package watershed
