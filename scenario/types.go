package scenario

import (
	"errors"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for scenario loading and conversion.
var (
	// ErrEmptyWorkbook indicates a workbook without any scenario.
	ErrEmptyWorkbook = errors.New("scenario: workbook has no scenarios")
	// ErrInvalidWorkbook indicates a structurally malformed workbook.
	ErrInvalidWorkbook = errors.New("scenario: invalid workbook")
	// ErrDuplicateScenario indicates two scenarios sharing a name.
	ErrDuplicateScenario = errors.New("scenario: duplicate scenario name")
	// ErrUnknownScenario indicates a lookup for a name not in the workbook.
	ErrUnknownScenario = errors.New("scenario: unknown scenario")
	// ErrParseCell indicates a cell that is not a finite number.
	ErrParseCell = errors.New("scenario: cell is not a number")
	// ErrRagged indicates rows of differing lengths.
	ErrRagged = errors.New("scenario: rows have differing lengths")
	// ErrUnsupportedFormat indicates a file extension LoadFile cannot read.
	ErrUnsupportedFormat = errors.New("scenario: unsupported file format")
)

// Workbook is an ordered collection of named sheets.
type Workbook struct {
	Title  string
	Sheets []Sheet
}

// Sheet is one named table of raw cell text.
type Sheet struct {
	Name  string
	Cells [][]string
}

// workbookFile is the YAML document layout.
type workbookFile struct {
	Title     string      `yaml:"title"`
	Scenarios []sheetFile `yaml:"scenarios"`
}

// sheetFile keeps grid cells as raw nodes so that numbers are read as the
// literal text of the document, never through YAML's own type resolution.
type sheetFile struct {
	Name string        `yaml:"name"`
	Grid [][]yaml.Node `yaml:"grid"`
}
