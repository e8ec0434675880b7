package figure

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/mhagel/pubfig/pkg/style"
)

// barSeries draws one series of a grouped bar chart: outline-only bars
// filled with a hatch pattern, plus symmetric error bars with caps.
// gonum/plot's stock bar chart has neither hatch fills nor bar centers
// in data units, so this implements plot.Plotter directly.
type barSeries struct {
	positions []float64 // bar centers, category axis units
	values    []float64
	errors    []float64 // symmetric error magnitudes, may be empty
	width     float64   // bar width, category axis units

	hatch style.Hatch

	edge    draw.LineStyle // bar outline and hatch lines
	errLine draw.LineStyle // error bar vertical line
	capLine draw.LineStyle // error bar caps
	capSize vg.Length      // half-length of a cap
}

var (
	_ plot.Plotter     = (*barSeries)(nil)
	_ plot.DataRanger  = (*barSeries)(nil)
	_ plot.Thumbnailer = (*barSeries)(nil)
)

// newBarSeries builds a bar series draw call from computed positions and
// the style assigned to the series.
func newBarSeries(positions, values, errs []float64, width float64, clr color.Color, hatch style.Hatch, cfg style.Config) *barSeries {
	return &barSeries{
		positions: positions,
		values:    values,
		errors:    errs,
		width:     width,
		hatch:     hatch,
		edge:      draw.LineStyle{Color: clr, Width: cfg.PatchWidth},
		errLine:   draw.LineStyle{Color: color.Black, Width: cfg.ErrLineWidth},
		capLine:   draw.LineStyle{Color: color.Black, Width: cfg.CapWidth},
		capSize:   cfg.CapSize,
	}
}

// Plot implements plot.Plotter.
func (b *barSeries) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	for i, pos := range b.positions {
		x0 := trX(pos - b.width/2)
		x1 := trX(pos + b.width/2)
		y0 := trY(0)
		y1 := trY(b.values[i])
		if y1 < y0 {
			y0, y1 = y1, y0
		}

		outline := []vg.Point{
			{X: x0, Y: y0}, {X: x0, Y: y1}, {X: x1, Y: y1}, {X: x1, Y: y0}, {X: x0, Y: y0},
		}
		c.StrokeLines(b.edge, outline)
		hatchRect(c, b.edge, b.hatch, x0, y0, x1, y1)

		if i < len(b.errors) && b.errors[i] > 0 {
			cx := trX(pos)
			lo := trY(b.values[i] - b.errors[i])
			hi := trY(b.values[i] + b.errors[i])
			c.StrokeLine2(b.errLine, cx, lo, cx, hi)
			c.StrokeLine2(b.capLine, cx-b.capSize, lo, cx+b.capSize, lo)
			c.StrokeLine2(b.capLine, cx-b.capSize, hi, cx+b.capSize, hi)
		}
	}
}

// DataRange implements plot.DataRanger. The x range leaves half a bar
// width of margin beyond the outer bars; the y range always includes
// the zero baseline and the error bar extents.
func (b *barSeries) DataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = 0, 0

	for i, pos := range b.positions {
		xmin = math.Min(xmin, pos-b.width)
		xmax = math.Max(xmax, pos+b.width)

		e := 0.0
		if i < len(b.errors) {
			e = b.errors[i]
		}
		ymin = math.Min(ymin, b.values[i]-e)
		ymax = math.Max(ymax, b.values[i]+e)
	}
	return xmin, xmax, ymin, ymax
}

// Thumbnail implements plot.Thumbnailer, drawing a hatched swatch for
// legend entries.
func (b *barSeries) Thumbnail(c *draw.Canvas) {
	outline := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Min.X, Y: c.Min.Y},
	}
	c.StrokeLines(b.edge, outline)
	hatchRect(*c, b.edge, b.hatch, c.Min.X, c.Min.Y, c.Max.X, c.Max.Y)
}

// hatchRect fills the pixel-space rectangle [x0,x1]×[y0,y1] with the
// hatch pattern, clipping pattern lines to the rectangle.
func hatchRect(c draw.Canvas, sty draw.LineStyle, h style.Hatch, x0, y0, x1, y1 vg.Length) {
	if x1 <= x0 || y1 <= y0 || h.Spacing <= 0 {
		return
	}

	switch h.Kind {
	case style.HatchVertical:
		hatchVertical(c, sty, h.Spacing, x0, y0, x1, y1)
	case style.HatchHorizontal:
		hatchHorizontal(c, sty, h.Spacing, x0, y0, x1, y1)
	case style.HatchCross:
		hatchVertical(c, sty, h.Spacing, x0, y0, x1, y1)
		hatchHorizontal(c, sty, h.Spacing, x0, y0, x1, y1)
	case style.HatchDiagonal:
		hatchDiagonal(c, sty, h.Spacing, x0, y0, x1, y1)
	}
}

func hatchVertical(c draw.Canvas, sty draw.LineStyle, sp, x0, y0, x1, y1 vg.Length) {
	for x := x0 + sp; x < x1; x += sp {
		c.StrokeLine2(sty, x, y0, x, y1)
	}
}

func hatchHorizontal(c draw.Canvas, sty draw.LineStyle, sp, x0, y0, x1, y1 vg.Length) {
	for y := y0 + sp; y < y1; y += sp {
		c.StrokeLine2(sty, x0, y, x1, y)
	}
}

// hatchDiagonal draws 45° lines y = x + b, stepping b so the
// perpendicular distance between lines equals the spacing.
func hatchDiagonal(c draw.Canvas, sty draw.LineStyle, sp, x0, y0, x1, y1 vg.Length) {
	step := sp * vg.Length(math.Sqrt2)
	for b := y0 - x1 + step; b < y1-x0; b += step {
		xs := max(x0, y0-b)
		xe := min(x1, y1-b)
		if xs < xe {
			c.StrokeLine2(sty, xs, xs+b, xe, xe+b)
		}
	}
}
