// Package scenario loads named elevation scenarios from a workbook file and
// turns their cells into validated numeric matrices.
//
// A workbook is a list of sheets, each a named table of string cells, the
// way a spreadsheet service hands them out. Cells are parsed with
// strconv.ParseFloat only when a sheet is converted to a matrix, and every
// failure (unparsable cell, ragged rows) is reported here, before any
// drainage analysis runs.
//
// Formats
//
// YAML (.yaml, .yml) holds a title plus a list of scenarios:
//
//	title: Island Water Flow Analysis
//	scenarios:
//	  - name: classic
//	    grid:
//	      - [1, 2, 2, 3, 5]
//	      - [3, 2, 3, 4, 4]
//
// CSV (.csv) holds a single sheet named after the file.
//
// Errors
//
//   - ErrEmptyWorkbook, ErrInvalidWorkbook, ErrDuplicateScenario: bad workbook.
//   - ErrUnknownScenario: Sheet lookup miss.
//   - ErrParseCell, ErrRagged: Matrix conversion failures.
//   - ErrUnsupportedFormat: LoadFile on an unknown extension.
package scenario
