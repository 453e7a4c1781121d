package drainage_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/watershed/drainage"
	"github.com/katalvlaran/watershed/gridgraph"
)

// islandGrid is the reference scenario:
//
//	1 2 2 3 5
//	3 2 3 4 4
//	2 4 5 3 1
//	6 7 1 4 5
//	5 1 1 2 4
var islandGrid = [][]float64{
	{1, 2, 2, 3, 5},
	{3, 2, 3, 4, 4},
	{2, 4, 5, 3, 1},
	{6, 7, 1, 4, 5},
	{5, 1, 1, 2, 4},
}

func coords(pairs ...[2]int) []drainage.Coordinate {
	out := make([]drainage.Coordinate, len(pairs))
	for i, p := range pairs {
		out[i] = drainage.Coordinate{Row: p[0], Col: p[1]}
	}

	return out
}

func TestCompute_Island(t *testing.T) {
	got, err := drainage.Compute(islandGrid)
	require.NoError(t, err)
	want := coords([2]int{0, 4}, [2]int{1, 3}, [2]int{1, 4}, [2]int{2, 2}, [2]int{3, 0}, [2]int{3, 1}, [2]int{4, 0})
	assert.Equal(t, want, got)
}

func TestCompute_Empty(t *testing.T) {
	cases := []struct {
		name   string
		matrix [][]float64
	}{
		{"Nil", nil},
		{"NoRows", [][]float64{}},
		{"EmptyFirstRow", [][]float64{{}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := drainage.Compute(tc.matrix)
			require.NoError(t, err)
			assert.NotNil(t, got)
			assert.Empty(t, got)
		})
	}
}

func TestCompute_SingleCell(t *testing.T) {
	got, err := drainage.Compute([][]float64{{5}})
	require.NoError(t, err)
	assert.Equal(t, coords([2]int{0, 0}), got)
}

func TestCompute_SingleRow(t *testing.T) {
	got, err := drainage.Compute([][]float64{{1, 2, 3}})
	require.NoError(t, err)
	assert.Equal(t, coords([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}), got)
}

func TestCompute_SingleColumn(t *testing.T) {
	got, err := drainage.Compute([][]float64{{3}, {1}, {2}})
	require.NoError(t, err)
	assert.Equal(t, coords([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}), got)
}

func TestCompute_FlatGrid(t *testing.T) {
	const rows, cols = 3, 4
	grid := make([][]float64, rows)
	for r := range grid {
		grid[r] = []float64{2.5, 2.5, 2.5, 2.5}
	}
	got, err := drainage.Compute(grid)
	require.NoError(t, err)
	require.Len(t, got, rows*cols)
	for i, c := range got {
		assert.Equal(t, drainage.Coordinate{Row: i / cols, Col: i % cols}, c)
	}
}

// TestCompute_StrictlyIncreasing: when elevation rises to the right and
// downwards, water anywhere reaches the northwest drain, but only the bottom
// row and right column reach the southeast one.
func TestCompute_StrictlyIncreasing(t *testing.T) {
	grid := [][]float64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	}
	got, err := drainage.Compute(grid)
	require.NoError(t, err)
	assert.Equal(t, coords([2]int{0, 2}, [2]int{1, 2}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}), got)
}

func TestCompute_ShapeError(t *testing.T) {
	got, err := drainage.Compute([][]float64{{1, 2}, {3}})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, drainage.ErrShape)
	assert.ErrorIs(t, err, gridgraph.ErrNonRectangular)
}

func TestCompute_NonFinite(t *testing.T) {
	_, err := drainage.Compute([][]float64{{1, math.NaN()}, {2, 3}})
	assert.ErrorIs(t, err, drainage.ErrNonFinite)

	_, err = drainage.Compute([][]float64{{math.Inf(1)}})
	assert.ErrorIs(t, err, drainage.ErrNonFinite)
}

func TestCompute_OptionViolation(t *testing.T) {
	//nolint:staticcheck // a nil context is exactly what is being tested
	_, err := drainage.Compute(islandGrid, drainage.WithContext(nil))
	assert.ErrorIs(t, err, drainage.ErrOptionViolation)
}

func TestCompute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, parallel := range []bool{true, false} {
		got, err := drainage.Compute(islandGrid, drainage.WithContext(ctx), drainage.WithParallel(parallel))
		assert.Nil(t, got)
		assert.ErrorIs(t, err, context.Canceled)
	}
}

// TestCompute_Pure checks that Compute does not touch its input and returns
// identical output on repeated calls.
func TestCompute_Pure(t *testing.T) {
	input := cloneGrid(islandGrid)

	first, err := drainage.Compute(input)
	require.NoError(t, err)
	second, err := drainage.Compute(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, islandGrid, input)
}

// TestCompute_MatchesBruteForce re-derives the answer on random grids by
// following water downhill from every cell, and compares both the parallel
// and sequential modes against it.
func TestCompute_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		rows, cols := 1+rng.Intn(9), 1+rng.Intn(9)
		grid := randomGrid(rng, rows, cols, 1+rng.Intn(6))
		want := bruteForce(grid)

		par, err := drainage.Compute(grid, drainage.WithParallel(true))
		require.NoError(t, err)
		seq, err := drainage.Compute(grid, drainage.WithParallel(false))
		require.NoError(t, err)

		require.Equal(t, want, par, "parallel, trial %d grid %v", trial, grid)
		require.Equal(t, want, seq, "sequential, trial %d grid %v", trial, grid)
	}
}

// TestCompute_LargeRamp exercises a monotonic ramp with tens of thousands of
// cells, where a recursive walk would nest once per cell.
func TestCompute_LargeRamp(t *testing.T) {
	const rows, cols = 300, 300
	grid := make([][]float64, rows)
	for r := range grid {
		grid[r] = make([]float64, cols)
		for c := range grid[r] {
			// snake ramp: a single rising path through the whole grid
			if r%2 == 0 {
				grid[r][c] = float64(r*cols + c)
			} else {
				grid[r][c] = float64(r*cols + cols - 1 - c)
			}
		}
	}
	got, err := drainage.Compute(grid)
	require.NoError(t, err)
	for _, c := range got {
		assert.True(t, c.Row >= 0 && c.Row < rows && c.Col >= 0 && c.Col < cols)
	}
	// The last row is on the southeast border and, being the highest row,
	// drains into every lower row, hence into the northwest drain.
	assert.Contains(t, got, drainage.Coordinate{Row: rows - 1, Col: cols - 1})
}

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "(2, 3)", drainage.Coordinate{Row: 2, Col: 3}.String())
}

func TestRegion_String(t *testing.T) {
	assert.Equal(t, "northwest", drainage.RegionA.String())
	assert.Equal(t, "southeast", drainage.RegionB.String())
	assert.Equal(t, "Region(5)", drainage.Region(5).String())
}

func cloneGrid(g [][]float64) [][]float64 {
	out := make([][]float64, len(g))
	for i, row := range g {
		out[i] = append([]float64(nil), row...)
	}

	return out
}

func randomGrid(rng *rand.Rand, rows, cols, levels int) [][]float64 {
	grid := make([][]float64, rows)
	for r := range grid {
		grid[r] = make([]float64, cols)
		for c := range grid[r] {
			grid[r][c] = float64(rng.Intn(levels))
		}
	}

	return grid
}

// bruteForce floods downhill from each cell independently and records
// whether the flood touches each drain.
func bruteForce(grid [][]float64) []drainage.Coordinate {
	rows, cols := len(grid), len(grid[0])
	out := make([]drainage.Coordinate, 0)
	for sr := 0; sr < rows; sr++ {
		for sc := 0; sc < cols; sc++ {
			seen := map[[2]int]bool{{sr, sc}: true}
			queue := [][2]int{{sr, sc}}
			var nw, se bool
			for len(queue) > 0 {
				p := queue[0]
				queue = queue[1:]
				if p[0] == 0 || p[1] == 0 {
					nw = true
				}
				if p[0] == rows-1 || p[1] == cols-1 {
					se = true
				}
				for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
					q := [2]int{p[0] + d[0], p[1] + d[1]}
					if q[0] < 0 || q[0] >= rows || q[1] < 0 || q[1] >= cols || seen[q] {
						continue
					}
					if grid[q[0]][q[1]] <= grid[p[0]][p[1]] {
						seen[q] = true
						queue = append(queue, q)
					}
				}
			}
			if nw && se {
				out = append(out, drainage.Coordinate{Row: sr, Col: sc})
			}
		}
	}

	return out
}
