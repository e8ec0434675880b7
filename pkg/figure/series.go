// Package figure produces publication-quality figures sized to a LaTeX
// document class.
//
// The package exposes two plot operations on a Renderer: BarPlot draws
// grouped bar charts with symmetric error bars and hatch-filled bars,
// LinePlot draws lines with error bars. Both write a vector PDF and a
// high-resolution PNG per figure. All drawing is delegated to gonum/plot;
// this package owns the grouped bar layout, the style assignment, and
// the figure-level composition (legend placement, sizing, output files).
package figure

import (
	"github.com/mhagel/pubfig/pkg/errors"
)

// Series is one labeled set of values with symmetric error magnitudes,
// plotted as same-colored, same-hatched bars across the category axis.
// Values and Errors must have one entry per category.
type Series struct {
	Label  string
	Values []float64
	Errors []float64
}

// Group is an ordered set of series sharing one category axis. All
// series of a group render into the same category slots side by side.
type Group []Series

// validate checks every series against the category axis length n.
func (g Group) validate(n int) error {
	if len(g) == 0 {
		return errors.New(errors.ErrCodeEmptyGroup, "bar plot needs at least one series")
	}
	for i, s := range g {
		if len(s.Values) != n {
			return errors.New(errors.ErrCodeInvalidSeriesShape,
				"series %d (%q) has %d values for %d categories", i, s.Label, len(s.Values), n)
		}
		if len(s.Errors) != 0 && len(s.Errors) != n {
			return errors.New(errors.ErrCodeInvalidSeriesShape,
				"series %d (%q) has %d errors for %d categories", i, s.Label, len(s.Errors), n)
		}
	}
	return nil
}

// XYSeries is one labeled line with optional symmetric y error
// magnitudes. X, Y and Errors (when present) must have equal length.
type XYSeries struct {
	Label  string
	X      []float64
	Y      []float64
	Errors []float64
}

// validate checks the X/Y/Errors shape of a line series.
func (s XYSeries) validate(i int) error {
	if len(s.X) == 0 {
		return errors.New(errors.ErrCodeInvalidSeriesShape,
			"series %d (%q) has no points", i, s.Label)
	}
	if len(s.Y) != len(s.X) {
		return errors.New(errors.ErrCodeInvalidSeriesShape,
			"series %d (%q) has %d y values for %d x values", i, s.Label, len(s.Y), len(s.X))
	}
	if len(s.Errors) != 0 && len(s.Errors) != len(s.X) {
		return errors.New(errors.ErrCodeInvalidSeriesShape,
			"series %d (%q) has %d errors for %d points", i, s.Label, len(s.Errors), len(s.X))
	}
	return nil
}
