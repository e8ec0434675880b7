package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// legendEntry pairs a series label with its legend swatch.
type legendEntry struct {
	label string
	thumb plot.Thumbnailer
}

const (
	// legendColGap separates legend columns.
	legendColGap = vg.Length(6)
	// legendInset keeps legends off the canvas edge.
	legendInset = vg.Length(3)
)

// legendColumns distributes entries over cols legends, filling in
// series order (entry i goes to column i mod cols). gonum legends are
// single-column, so multi-column layouts are composed from several.
func (r *Renderer) legendColumns(entries []legendEntry, cols int, serif font.Font) []plot.Legend {
	if cols > len(entries) {
		cols = len(entries)
	}

	f := serif
	f.Size = r.Style.FontSize

	legends := make([]plot.Legend, cols)
	for i := range legends {
		legends[i] = plot.NewLegend()
		legends[i].TextStyle.Font = f
	}
	for i, e := range entries {
		legends[i%cols].Add(e.label, e.thumb)
	}
	return legends
}

// drawLegendsAbove draws the legend columns along the top edge of the
// canvas and returns the canvas cropped to the space below them.
func drawLegendsAbove(dc draw.Canvas, legends []plot.Legend) draw.Canvas {
	var x, maxH vg.Length
	for i := range legends {
		l := &legends[i]
		l.Top, l.Left = true, true
		rect := l.Rectangle(dc)
		l.XOffs = x
		l.Draw(dc)
		x += rect.Max.X - rect.Min.X + legendColGap
		if h := rect.Max.Y - rect.Min.Y; h > maxH {
			maxH = h
		}
	}
	return draw.Crop(dc, 0, 0, 0, -maxH-legendInset)
}

// drawLegendsInside overlays the legend columns in the placement's
// corner, columns extending towards the canvas center.
func drawLegendsInside(dc draw.Canvas, legends []plot.Legend, placement LegendPlacement) {
	top := placement == LegendAuto || placement == LegendUpperRight || placement == LegendUpperLeft
	left := placement == LegendUpperLeft || placement == LegendLowerLeft

	shift := legendInset
	for i := range legends {
		l := &legends[i]
		l.Top, l.Left = top, left
		rect := l.Rectangle(dc)

		if left {
			l.XOffs = shift
		} else {
			l.XOffs = -shift
		}
		if top {
			l.YOffs = -legendInset
		} else {
			l.YOffs = legendInset
		}

		l.Draw(dc)
		shift += rect.Max.X - rect.Min.X + legendColGap
	}
}
