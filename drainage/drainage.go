package drainage

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/watershed/gridgraph"
)

// Compute returns every coordinate whose water can reach both RegionA and
// RegionB, in row-major order (increasing row, then increasing column).
//
// The matrix is never modified. A matrix with no rows, or with an empty first
// row, yields an empty, non-nil slice and a nil error. Returns ErrShape for
// ragged rows, ErrNonFinite for NaN/±Inf, ErrOptionViolation for bad options,
// or the context error on cancellation.
//
// Complexity: O(rows×cols) time and memory.
func Compute(matrix [][]float64, opts ...Option) ([]Coordinate, error) {
	a, err := Analyze(matrix, opts...)
	if err != nil {
		return nil, err
	}

	return a.Both, nil
}

// Analyze runs the same computation as Compute and keeps both regional
// reach sets, so callers can ask why a cell qualifies (see Analysis.FlowPath).
func Analyze(matrix [][]float64, opts ...Option) (*Analysis, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	gg, err := gridgraph.NewGridGraph(matrix)
	switch {
	case errors.Is(err, gridgraph.ErrNonRectangular):
		return nil, fmt.Errorf("%w: %w", ErrShape, err)
	case errors.Is(err, gridgraph.ErrNaNInf):
		return nil, fmt.Errorf("%w: %w", ErrNonFinite, err)
	case err != nil:
		return nil, err
	}
	if err = o.Ctx.Err(); err != nil {
		return nil, err
	}

	a, b, err := explore(o.Ctx, gg, o.Parallel)
	if err != nil {
		return nil, err
	}

	return newAnalysis(gg, a, b), nil
}

// explore runs the northwest and southeast searches, either one after the
// other or on two goroutines joined before returning.
func explore(ctx context.Context, gg *gridgraph.GridGraph, parallel bool) (nw, se *gridgraph.Reach, err error) {
	if !parallel {
		if nw, err = gg.ReachFromContext(ctx, gg.TopLeftBorder()); err != nil {
			return nil, nil, err
		}
		if se, err = gg.ReachFromContext(ctx, gg.BottomRightBorder()); err != nil {
			return nil, nil, err
		}

		return nw, se, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := gg.ReachFromContext(gctx, gg.TopLeftBorder())
		nw = r
		return err
	})
	g.Go(func() error {
		r, err := gg.ReachFromContext(gctx, gg.BottomRightBorder())
		se = r
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return nw, se, nil
}
