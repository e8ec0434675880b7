package figure

import (
	"gonum.org/v1/plot/plotter"

	"github.com/mhagel/pubfig/pkg/errors"
)

// BarPlot renders a grouped bar chart with symmetric error bars and
// writes {name}.pdf and {name}.png into destDir.
//
// Each series in g must carry one value (and one error magnitude, if
// errors are given) per category. Series are drawn in input order: the
// j-th series takes the j-th color and hatch from the style's cyclic
// palettes, and its bars sit side by side with the other series' bars
// within each category slot, jointly centered on the slot.
//
// Labels may use the LaTeX notation of the original publication
// templates (`\%`, `--` and friends); it is translated for the renderer.
//
// Fails with EMPTY_GROUP, INVALID_SERIES_SHAPE, INVALID_WIDTH_SCALE,
// INVALID_INPUT or DEST_UNWRITABLE before any rendering happens;
// rendering and encoding failures are wrapped as RENDER_FAILED.
func (r *Renderer) BarPlot(xlabel, ylabel string, categories []string, g Group, name, destDir string, opts ...Option) error {
	o := defaultOptions()
	if err := o.apply(opts); err != nil {
		return err
	}

	if len(categories) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "bar plot needs at least one category")
	}
	if err := g.validate(len(categories)); err != nil {
		return err
	}
	if err := errors.ValidateFigureName(name); err != nil {
		return err
	}
	if err := errors.ValidateDestDir(destDir); err != nil {
		return err
	}

	layout, err := LayoutBars(len(g), o.widthScale)
	if err != nil {
		return err
	}

	p, serif, err := r.newPlot(xlabel, ylabel)
	if err != nil {
		return err
	}

	// Horizontal grid only; vertical lines add nothing on a category axis.
	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	grid.Horizontal.Color = r.Style.GridColor
	grid.Horizontal.Width = r.Style.GridWidth
	p.Add(grid)

	entries := make([]legendEntry, 0, len(g))
	for j, s := range g {
		clr, hatch := r.Style.Series(j)
		bars := newBarSeries(layout.Positions(len(categories), j), s.Values, s.Errors, layout.BarWidth, clr, hatch, r.Style)
		p.Add(bars)
		entries = append(entries, legendEntry{label: detex(s.Label), thumb: bars})
	}

	ticks := make([]string, len(categories))
	for i, c := range categories {
		ticks[i] = detex(c)
	}
	p.NominalX(ticks...)

	return r.save(p, serif, entries, o, name, destDir)
}
