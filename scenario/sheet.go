package scenario

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Names returns the sheet names in workbook order.
func (wb *Workbook) Names() []string {
	names := make([]string, len(wb.Sheets))
	for i, s := range wb.Sheets {
		names[i] = s.Name
	}

	return names
}

// Sheet returns the sheet called name, or ErrUnknownScenario.
func (wb *Workbook) Sheet(name string) (*Sheet, error) {
	for i := range wb.Sheets {
		if wb.Sheets[i].Name == name {
			return &wb.Sheets[i], nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScenario, name)
}

// Matrix converts the raw cells into a rectangular float64 matrix.
// Surrounding whitespace is ignored. A sheet without rows yields an empty
// matrix. Returns ErrRagged if a row length differs from the first row,
// ErrParseCell if a cell is not a finite number.
// The error names the sheet, the cell position and the raw text.
func (s *Sheet) Matrix() ([][]float64, error) {
	out := make([][]float64, 0, len(s.Cells))
	if len(s.Cells) == 0 {
		return out, nil
	}
	w := len(s.Cells[0])
	for r, row := range s.Cells {
		if len(row) != w {
			return nil, fmt.Errorf("sheet %q row %d has %d cells, want %d: %w", s.Name, r, len(row), w, ErrRagged)
		}
		vals := make([]float64, w)
		for c, raw := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("sheet %q cell (%d,%d) %q: %w", s.Name, r, c, raw, ErrParseCell)
			}
			vals[c] = v
		}
		out = append(out, vals)
	}

	return out, nil
}

// Matrix looks up the sheet called name and converts it.
func (wb *Workbook) Matrix(name string) ([][]float64, error) {
	s, err := wb.Sheet(name)
	if err != nil {
		return nil, err
	}

	return s.Matrix()
}
