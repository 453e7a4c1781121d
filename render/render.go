// Package render prints elevation matrices and drainage results as plain text.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/watershed/drainage"
)

// Mark is appended to the elevation of every highlighted cell in Matrix.
const Mark = "*"

// Matrix writes m as an aligned table with row and column headers.
// Cells listed in marked get Mark appended. An empty matrix writes nothing.
func Matrix(w io.Writer, m [][]float64, marked []drainage.Coordinate) error {
	if len(m) == 0 || len(m[0]) == 0 {
		return nil
	}
	hot := make(map[drainage.Coordinate]bool, len(marked))
	for _, c := range marked {
		hot[c] = true
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	var b strings.Builder
	b.WriteString(`r\c`)
	for c := range m[0] {
		b.WriteString("\t" + strconv.Itoa(c))
	}
	b.WriteString("\n")
	for r, row := range m {
		b.WriteString(strconv.Itoa(r))
		for c, v := range row {
			b.WriteString("\t" + Number(v))
			if hot[drainage.Coordinate{Row: r, Col: c}] {
				b.WriteString(Mark)
			}
		}
		b.WriteString("\n")
	}
	if _, err := io.WriteString(tw, b.String()); err != nil {
		return err
	}

	return tw.Flush()
}

// Coordinates writes the count of qualifying cells followed by one
// coordinate per line, or a single "no cells" line when cs is empty.
func Coordinates(w io.Writer, cs []drainage.Coordinate) error {
	var b strings.Builder
	if len(cs) == 0 {
		b.WriteString("No cells flow to both regions.\n")
	} else {
		fmt.Fprintf(&b, "Number of cells that flow to both regions: %d\n", len(cs))
		b.WriteString("Coordinates of qualifying cells:\n")
		for _, c := range cs {
			b.WriteString(c.String() + "\n")
		}
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// FlowPath writes one line: the region name and the path joined by arrows.
func FlowPath(w io.Writer, region drainage.Region, path []drainage.Coordinate) error {
	steps := make([]string, len(path))
	for i, c := range path {
		steps[i] = c.String()
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", region, strings.Join(steps, " -> "))

	return err
}

// Number formats an elevation with the fewest digits that round-trip,
// so whole numbers print without a decimal point.
func Number(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
