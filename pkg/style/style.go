// Package style defines the visual configuration for publication figures.
//
// A Config is an explicit value object: it is constructed once (usually
// via Default) and passed into rendering calls. Nothing in this package
// mutates process-wide state, so styles can be overridden per call and
// tested in isolation.
//
// The defaults reproduce a conservative publication look: a 10-color
// color-blind-friendly palette paired with 4 hatch patterns for bars,
// 10 dash patterns for lines, hairline grids and axes, and a high
// raster resolution for slide-friendly PNG output.
package style

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot/vg"

	"github.com/mhagel/pubfig/pkg/document"
	"github.com/mhagel/pubfig/pkg/errors"
)

// HatchKind identifies a bar fill pattern.
type HatchKind string

// Supported hatch patterns.
const (
	HatchDiagonal   HatchKind = "diagonal"   // parallel 45° lines
	HatchHorizontal HatchKind = "horizontal" // parallel horizontal lines
	HatchCross      HatchKind = "cross"      // horizontal + vertical grid
	HatchVertical   HatchKind = "vertical"   // parallel vertical lines
)

// Hatch is a bar fill pattern: a kind plus the spacing between pattern
// lines. Smaller spacing gives a denser fill.
type Hatch struct {
	Kind    HatchKind
	Spacing vg.Length
}

// Config holds all style parameters for figure rendering.
type Config struct {
	// Palette is the series color cycle.
	// This is "colorBlindness::PairedColor12Steps" from R, with the
	// original green swapped for a less aggressive one. Since bars also
	// carry hatch patterns the swap does not hurt distinguishability.
	Palette []color.Color

	// Hatches is the bar fill pattern cycle.
	Hatches []Hatch

	// Dashes is the line dash pattern cycle. A nil entry is a solid line.
	Dashes [][]vg.Length

	// Line widths.
	LineWidth    vg.Length // plotted data lines
	ErrLineWidth vg.Length // error bar lines
	CapSize      vg.Length // error bar cap length
	CapWidth     vg.Length // error bar cap stroke width
	PatchWidth   vg.Length // bar outlines and legend swatches
	AxisWidth    vg.Length // axis frame and tick marks
	GridWidth    vg.Length // grid lines

	// GridColor is the grid line color (alpha pre-multiplied into it).
	GridColor color.Color

	// Font sizes, from the document class.
	FontSize  vg.Length // ticks, legend, general text
	LabelSize vg.Length // axis labels

	// DPI is the raster (PNG) output resolution.
	DPI int

	// Pad is the margin left around the drawn figure.
	Pad vg.Length
}

// Default returns the standard style for a document class.
// Font sizes follow the class's footnotesize (body) and small (labels).
func Default(class document.Class) Config {
	return Config{
		Palette: []color.Color{
			color.RGBA{R: 0x19, G: 0xB2, B: 0xFF, A: 0xFF}, // #19B2FF
			color.RGBA{R: 0x2C, G: 0xA0, B: 0x2C, A: 0xFF}, // #2CA02C
			color.RGBA{R: 0xFF, G: 0x7F, B: 0x00, A: 0xFF}, // #FF7F00
			color.RGBA{R: 0x65, G: 0x4C, B: 0xFF, A: 0xFF}, // #654CFF
			color.RGBA{R: 0xE5, G: 0x19, B: 0x32, A: 0xFF}, // #E51932
			color.RGBA{R: 0xFF, G: 0xBF, B: 0x7F, A: 0xFF}, // #FFBF7F
			color.RGBA{R: 0xFF, G: 0xFF, B: 0x99, A: 0xFF}, // #FFFF99
			color.RGBA{R: 0xB2, G: 0xFF, B: 0x8C, A: 0xFF}, // #B2FF8C
			color.RGBA{R: 0xA5, G: 0xED, B: 0xFF, A: 0xFF}, // #A5EDFF
			color.RGBA{R: 0xCC, G: 0xBF, B: 0xFF, A: 0xFF}, // #CCBFFF
		},
		Hatches: []Hatch{
			{Kind: HatchDiagonal, Spacing: 2},
			{Kind: HatchHorizontal, Spacing: 3},
			{Kind: HatchCross, Spacing: 2.5},
			{Kind: HatchVertical, Spacing: 2.5},
		},
		Dashes: [][]vg.Length{
			nil, // solid
			{4, 1},
			{2, 0.5},
			{1, 0.5},
			{0.5, 0.5},
			{4, 0.5, 0.5, 0.5},
			{3, 1, 1, 1},
			{8, 1},
			{3, 1, 1, 1, 1, 1},
			{3, 1, 1, 1, 1, 1, 1, 1},
		},
		LineWidth:    2,
		ErrLineWidth: 0.5,
		CapSize:      1,
		CapWidth:     0.5,
		PatchWidth:   0.2,
		AxisWidth:    0.2,
		GridWidth:    0.2,
		GridColor:    color.NRGBA{R: 0xB0, G: 0xB0, B: 0xB0, A: 0x66}, // gray at 40% alpha
		FontSize:     vg.Length(class.Fonts.Footnote),
		LabelSize:    vg.Length(class.Fonts.Small),
		DPI:          1000,
		Pad:          2,
	}
}

// Series returns the color and hatch assigned to the i-th series of a
// group. Both palettes wrap around independently, so a group can have
// more series than palette entries.
func (c Config) Series(i int) (color.Color, Hatch) {
	return c.Palette[i%len(c.Palette)], c.Hatches[i%len(c.Hatches)]
}

// Dash returns the dash pattern assigned to the i-th line series,
// wrapping around like Series.
func (c Config) Dash(i int) []vg.Length {
	return c.Dashes[i%len(c.Dashes)]
}

// ParseHexColor parses a "#RRGGBB" hex color string.
func ParseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return color.RGBA{}, errors.New(errors.ErrCodeInvalidStyle, "invalid hex color %q", s)
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "invalid hex color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}

// validHatchKind reports whether k names a supported hatch pattern.
func validHatchKind(k HatchKind) bool {
	switch k {
	case HatchDiagonal, HatchHorizontal, HatchCross, HatchVertical:
		return true
	}
	return false
}
