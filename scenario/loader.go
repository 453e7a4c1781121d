package scenario

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a workbook from path, choosing the format by extension:
// .yaml/.yml for a multi-scenario workbook, .csv for a single sheet named
// after the file. Returns ErrUnsupportedFormat for anything else.
func LoadFile(path string) (*Workbook, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml", ".csv":
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if ext != ".csv" {
		wb, err := LoadYAML(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return wb, nil
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	sheet, err := LoadCSV(name, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &Workbook{Title: name, Sheets: []Sheet{*sheet}}, nil
}

// LoadYAML decodes a workbook document. Unknown keys are rejected.
// Grid cells must be scalars; their literal text is kept for Sheet.Matrix.
func LoadYAML(r io.Reader) (*Workbook, error) {
	var doc workbookFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyWorkbook
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkbook, err)
	}
	if len(doc.Scenarios) == 0 {
		return nil, ErrEmptyWorkbook
	}

	wb := &Workbook{Title: doc.Title, Sheets: make([]Sheet, 0, len(doc.Scenarios))}
	seen := make(map[string]bool, len(doc.Scenarios))
	for i, sf := range doc.Scenarios {
		name := strings.TrimSpace(sf.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: scenario %d has no name", ErrInvalidWorkbook, i)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateScenario, name)
		}
		seen[name] = true

		cells := make([][]string, len(sf.Grid))
		for r, nodes := range sf.Grid {
			cells[r] = make([]string, len(nodes))
			for c, n := range nodes {
				if n.Kind != yaml.ScalarNode {
					return nil, fmt.Errorf("%w: scenario %q cell (%d,%d) is not a scalar (line %d)",
						ErrInvalidWorkbook, name, r, c, n.Line)
				}
				cells[r][c] = n.Value
			}
		}
		wb.Sheets = append(wb.Sheets, Sheet{Name: name, Cells: cells})
	}

	return wb, nil
}

// LoadCSV reads a single sheet. Rows may differ in length here;
// raggedness is reported by Sheet.Matrix.
func LoadCSV(name string, r io.Reader) (*Sheet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkbook, err)
	}

	return &Sheet{Name: name, Cells: records}, nil
}
