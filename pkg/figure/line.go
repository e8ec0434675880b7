package figure

import (
	"gonum.org/v1/plot/plotter"

	"github.com/mhagel/pubfig/pkg/errors"
)

// errPoints adapts XYSeries data to gonum's error bar plotter.
type errPoints struct {
	plotter.XYs
	plotter.YErrors
}

// LinePlot renders one or more lines with optional symmetric y error
// bars and writes {name}.pdf and {name}.png into destDir. The i-th
// series takes the i-th color and dash pattern from the style's cyclic
// palettes. The same validation and failure codes as BarPlot apply.
func (r *Renderer) LinePlot(xlabel, ylabel string, series []XYSeries, name, destDir string, opts ...Option) error {
	o := defaultOptions()
	if err := o.apply(opts); err != nil {
		return err
	}

	if len(series) == 0 {
		return errors.New(errors.ErrCodeEmptyGroup, "line plot needs at least one series")
	}
	for i, s := range series {
		if err := s.validate(i); err != nil {
			return err
		}
	}
	if err := errors.ValidateFigureName(name); err != nil {
		return err
	}
	if err := errors.ValidateDestDir(destDir); err != nil {
		return err
	}

	p, serif, err := r.newPlot(xlabel, ylabel)
	if err != nil {
		return err
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = r.Style.GridColor
	grid.Vertical.Width = r.Style.GridWidth
	grid.Horizontal.Color = r.Style.GridColor
	grid.Horizontal.Width = r.Style.GridWidth
	p.Add(grid)

	entries := make([]legendEntry, 0, len(series))
	for i, s := range series {
		clr := r.Style.Palette[i%len(r.Style.Palette)]

		xys := make(plotter.XYs, len(s.X))
		for k := range s.X {
			xys[k].X = s.X[k]
			xys[k].Y = s.Y[k]
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return errors.Wrap(errors.ErrCodeRenderFailed, err, "building line for series %q", s.Label)
		}
		line.LineStyle.Color = clr
		line.LineStyle.Width = r.Style.LineWidth
		line.LineStyle.Dashes = r.Style.Dash(i)
		p.Add(line)

		if len(s.Errors) > 0 {
			yerrs := make(plotter.YErrors, len(s.Errors))
			for k, e := range s.Errors {
				yerrs[k].Low = e
				yerrs[k].High = e
			}
			bars, err := plotter.NewYErrorBars(errPoints{XYs: xys, YErrors: yerrs})
			if err != nil {
				return errors.Wrap(errors.ErrCodeRenderFailed, err, "building error bars for series %q", s.Label)
			}
			bars.LineStyle.Color = clr
			bars.LineStyle.Width = r.Style.LineWidth
			bars.CapWidth = r.Style.CapSize * 2
			p.Add(bars)
		}

		entries = append(entries, legendEntry{label: detex(s.Label), thumb: line})
	}

	return r.save(p, serif, entries, o, name, destDir)
}
