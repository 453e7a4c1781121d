package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/watershed/drainage"
	"github.com/katalvlaran/watershed/render"
	"github.com/katalvlaran/watershed/scenario"
)

// envWorkbook names the variable consulted when -workbook is not given.
const envWorkbook = "WATERSHED_WORKBOOK"

var (
	errNoWorkbook    = errors.New("watershed: no workbook given (use -workbook or $" + envWorkbook + ")")
	errBadCoordinate = errors.New("watershed: coordinate must look like ROW,COL")
)

type options struct {
	workbook   string
	scenario   string
	list       bool
	sequential bool
	explain    string
	verbose    bool
}

func parseFlags(args []string, getenv func(string) string) (options, error) {
	var o options
	fs := flag.NewFlagSet("watershed", flag.ContinueOnError)
	fs.StringVar(&o.workbook, "workbook", "", "Workbook file (.yaml, .yml or .csv)")
	fs.StringVar(&o.scenario, "scenario", "", "Scenario to analyze (default: first in workbook)")
	fs.BoolVar(&o.list, "list", false, "List scenario names and exit")
	fs.BoolVar(&o.sequential, "sequential", false, "Run the two regional searches one after the other")
	fs.StringVar(&o.explain, "explain", "", "Print a flow path to each region for ROW,COL")
	fs.BoolVar(&o.verbose, "v", false, "Debug logging")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if o.workbook == "" {
		o.workbook = getenv(envWorkbook)
	}
	if o.workbook == "" {
		return o, errNoWorkbook
	}

	return o, nil
}

// run is main without the process plumbing, so it can be driven from tests.
func run(ctx context.Context, args []string, out io.Writer, getenv func(string) string) error {
	o, err := parseFlags(args, getenv)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	if o.verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	wb, err := scenario.LoadFile(o.workbook)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{"workbook": o.workbook, "scenarios": len(wb.Sheets)}).Debug("workbook loaded")

	if o.list {
		for _, name := range wb.Names() {
			if _, err := fmt.Fprintln(out, name); err != nil {
				return err
			}
		}
		return nil
	}

	name := o.scenario
	if name == "" {
		name = wb.Names()[0]
	}
	matrix, err := wb.Matrix(name)
	if err != nil {
		return err
	}
	rows, cols := len(matrix), 0
	if rows > 0 {
		cols = len(matrix[0])
	}
	log.WithFields(log.Fields{"scenario": name, "rows": rows, "cols": cols}).Debug("scenario parsed")

	start := time.Now()
	a, err := drainage.Analyze(matrix, drainage.WithContext(ctx), drainage.WithParallel(!o.sequential))
	if err != nil {
		return fmt.Errorf("scenario %q: %w", name, err)
	}
	log.WithFields(log.Fields{
		"scenario": name,
		"count":    a.Count(),
		"elapsed":  time.Since(start),
	}).Info("analysis complete")

	if err := report(out, wb.Title, name, matrix, a); err != nil {
		return err
	}
	if o.explain == "" {
		return nil
	}
	c, err := parseCoordinate(o.explain)
	if err != nil {
		return err
	}

	return explain(out, a, c)
}

func report(out io.Writer, title, name string, matrix [][]float64, a *drainage.Analysis) error {
	if title != "" {
		if _, err := fmt.Fprintln(out, title); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(out, "Scenario: %s\nGrid Data:\n", name); err != nil {
		return err
	}
	if err := render.Matrix(out, matrix, a.Both); err != nil {
		return err
	}

	return render.Coordinates(out, a.Both)
}

func explain(out io.Writer, a *drainage.Analysis, c drainage.Coordinate) error {
	for _, region := range drainage.Regions {
		path, err := a.FlowPath(region, c)
		switch {
		case errors.Is(err, drainage.ErrNotReachable):
			if _, err := fmt.Fprintf(out, "%s: %v does not drain here\n", region, c); err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			if err := render.FlowPath(out, region, path); err != nil {
				return err
			}
		}
	}

	return nil
}

func parseCoordinate(s string) (drainage.Coordinate, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return drainage.Coordinate{}, fmt.Errorf("%w: %q", errBadCoordinate, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return drainage.Coordinate{}, fmt.Errorf("%w: %q", errBadCoordinate, s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return drainage.Coordinate{}, fmt.Errorf("%w: %q", errBadCoordinate, s)
	}

	return drainage.Coordinate{Row: r, Col: c}, nil
}
