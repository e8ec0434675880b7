// Package document provides page metrics for LaTeX document classes.
//
// A Class carries the column and text block widths plus the named font
// sizes of a publication template. Figures sized from these metrics drop
// into the rendered document without scaling, so line widths and font
// sizes stay true to the style table.
//
// The metrics are static tables for the supported classes; they are not
// computed by running LaTeX.
package document

import (
	"math"
	"strings"

	"gonum.org/v1/plot/vg"

	"github.com/mhagel/pubfig/pkg/errors"
)

// ptPerInch is TeX points per inch (TeX's pt, not PostScript's bp).
const ptPerInch = 72.27

// golden is the golden ratio, used for pleasing width/height proportions.
var golden = (1.0 + math.Sqrt(5.0)) / 2.0

// FontSizes holds the named LaTeX font sizes of a class, in points.
type FontSizes struct {
	Tiny     float64
	Script   float64
	Footnote float64
	Small    float64
	Normal   float64
	Large    float64
	Huge     float64
}

// Class describes the page metrics of a LaTeX document class.
// Widths are in TeX points.
type Class struct {
	Name        string
	ColumnWidth float64 // \columnwidth
	TextWidth   float64 // \textwidth
	Fonts       FontSizes
}

// stdFonts is the standard 10pt font size table shared by the supported
// classes.
var stdFonts = FontSizes{
	Tiny:     5,
	Script:   7,
	Footnote: 8,
	Small:    9,
	Normal:   10,
	Large:    12,
	Huge:     24.88,
}

// ACMSigconf is the ACM conference (sigconf) template of acmart.
var ACMSigconf = Class{
	Name:        "acm-sigconf",
	ColumnWidth: 241.14749,
	TextWidth:   506.295,
	Fonts:       stdFonts,
}

// IEEETran is the IEEE two-column conference template.
var IEEETran = Class{
	Name:        "ieeetran",
	ColumnWidth: 252.0,
	TextWidth:   516.0,
	Fonts:       stdFonts,
}

// ByName returns the class registered under name.
// Fails with INVALID_CLASS for unknown names.
func ByName(name string) (Class, error) {
	switch strings.ToLower(name) {
	case ACMSigconf.Name:
		return ACMSigconf, nil
	case IEEETran.Name:
		return IEEETran, nil
	default:
		return Class{}, errors.New(errors.ErrCodeInvalidClass,
			"unknown document class %q (supported: %s, %s)", name, ACMSigconf.Name, IEEETran.Name)
	}
}

// FigureSize is a figure's physical size on the page.
type FigureSize struct {
	Width  vg.Length
	Height vg.Length
}

// size converts a width/height pair in TeX points to a FigureSize.
func size(wPt, hPt float64) FigureSize {
	return FigureSize{
		Width:  vg.Length(wPt/ptPerInch) * vg.Inch,
		Height: vg.Length(hPt/ptPerInch) * vg.Inch,
	}
}

// ColumnFigure returns the default figure size: one column wide, slightly
// flatter than the golden ratio.
func (c Class) ColumnFigure() FigureSize {
	w := c.ColumnWidth
	return size(w, w/golden*0.8)
}

// ThirdFigure returns a figure occupying a third of the text width, with
// golden-ratio proportions. Useful for three side-by-side subfigures.
func (c Class) ThirdFigure() FigureSize {
	w := c.TextWidth / 3
	return size(w, w/golden)
}

// FullWidthFigure returns a flat figure spanning the full text width.
func (c Class) FullWidthFigure() FigureSize {
	w := c.TextWidth
	return size(w, w/golden/3)
}
