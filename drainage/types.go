// Package drainage provides options, result types and error definitions
// for dual-region drainage analysis.
package drainage

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for drainage analysis.
var (
	// ErrShape is returned when the input matrix is not rectangular.
	ErrShape = errors.New("drainage: matrix is not rectangular")

	// ErrNonFinite is returned when an elevation is NaN or ±Inf.
	ErrNonFinite = errors.New("drainage: elevation is not a finite number")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("drainage: invalid option supplied")

	// ErrOutOfRange is returned when a queried coordinate lies outside the matrix.
	ErrOutOfRange = errors.New("drainage: coordinate out of range")

	// ErrUnknownRegion is returned for a Region value other than RegionA or RegionB.
	ErrUnknownRegion = errors.New("drainage: unknown region")

	// ErrNotReachable is returned when a flow path is requested for a cell
	// whose water cannot reach the region.
	ErrNotReachable = errors.New("drainage: cell does not drain into region")
)

// Coordinate is a 0-indexed (row, col) position in the matrix.
type Coordinate struct {
	Row, Col int
}

// String renders the coordinate as "(row, col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// Region names one of the two border drains.
type Region int

const (
	// RegionA drains through the top row and the left column.
	RegionA Region = iota
	// RegionB drains through the bottom row and the right column.
	RegionB
)

// Regions lists both drains in a fixed order.
var Regions = [2]Region{RegionA, RegionB}

// String returns the compass name of the region.
func (r Region) String() string {
	switch r {
	case RegionA:
		return "northwest"
	case RegionB:
		return "southeast"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

func (r Region) valid() bool {
	return r == RegionA || r == RegionB
}

// Option configures analysis via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Compute or Analyze runs.
type Option func(*Options)

// Options holds parameters for Compute and Analyze.
type Options struct {
	// Ctx allows cancellation between and during the regional searches.
	Ctx context.Context

	// Parallel runs the two regional searches on separate goroutines.
	Parallel bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - Parallel enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Parallel: true,
	}
}

// WithContext sets a context for cancellation. A nil ctx is an option violation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx == nil {
			o.err = fmt.Errorf("%w: nil context", ErrOptionViolation)
			return
		}
		o.Ctx = ctx
	}
}

// WithParallel toggles concurrent execution of the two regional searches.
// The result is identical either way.
func WithParallel(on bool) Option {
	return func(o *Options) {
		o.Parallel = on
	}
}
