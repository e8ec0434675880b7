package figure

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"

	"github.com/mhagel/pubfig/pkg/document"
	"github.com/mhagel/pubfig/pkg/errors"
	"github.com/mhagel/pubfig/pkg/fonts"
	"github.com/mhagel/pubfig/pkg/style"
)

// Renderer produces figures for one document class with one style.
// The zero value is not usable; construct with NewRenderer and adjust
// Style as needed before plotting.
type Renderer struct {
	Class document.Class
	Style style.Config
}

// NewRenderer returns a renderer for the given document class with the
// default style for that class.
func NewRenderer(class document.Class) *Renderer {
	return &Renderer{Class: class, Style: style.Default(class)}
}

// LegendPlacement selects where the legend is drawn.
type LegendPlacement string

// Recognized legend placements.
const (
	// LegendAuto places the legend inside the plot, upper right.
	LegendAuto LegendPlacement = ""
	// LegendAbove places the legend outside, above the plot area.
	// Useful when any inside placement would overlap the data.
	LegendAbove      LegendPlacement = "above"
	LegendUpperRight LegendPlacement = "upper-right"
	LegendUpperLeft  LegendPlacement = "upper-left"
	LegendLowerRight LegendPlacement = "lower-right"
	LegendLowerLeft  LegendPlacement = "lower-left"
)

// options holds the per-plot configuration. Every field has a stated
// default; see the With* option constructors.
type options struct {
	widthScale float64
	figSize    *document.FigureSize
	placement  LegendPlacement
	columns    int
	hideLegend bool
}

// Option configures a single plot call.
type Option func(*options)

func defaultOptions() options {
	return options{
		widthScale: 0.7,
		placement:  LegendAuto,
		columns:    1,
	}
}

func (o *options) apply(opts []Option) error {
	for _, opt := range opts {
		opt(o)
	}

	switch o.placement {
	case LegendAuto, LegendAbove, LegendUpperRight, LegendUpperLeft, LegendLowerRight, LegendLowerLeft:
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown legend placement %q", o.placement)
	}
	if o.columns < 1 {
		return errors.New(errors.ErrCodeInvalidInput, "legend columns must be >= 1, got %d", o.columns)
	}
	return nil
}

// WithWidthScale sets the fraction of a category slot occupied by the
// bars of a group, in (0, 1]. Default 0.7, leaving a visual gap between
// categories.
func WithWidthScale(ws float64) Option {
	return func(o *options) { o.widthScale = ws }
}

// WithFigureSize overrides the figure size. Default is the class's
// column figure.
func WithFigureSize(fs document.FigureSize) Option {
	return func(o *options) { o.figSize = &fs }
}

// WithLegendPlacement sets the legend placement. Default LegendAuto
// (inside, upper right).
func WithLegendPlacement(p LegendPlacement) Option {
	return func(o *options) { o.placement = p }
}

// WithLegendColumns arranges the legend entries in n columns, filled in
// series order. Default 1.
func WithLegendColumns(n int) Option {
	return func(o *options) { o.columns = n }
}

// WithHideLegend suppresses the legend entirely.
func WithHideLegend() Option {
	return func(o *options) { o.hideLegend = true }
}

// figureSize resolves the plot's physical size.
func (o options) figureSize(class document.Class) document.FigureSize {
	if o.figSize != nil {
		return *o.figSize
	}
	return class.ColumnFigure()
}

// newPlot creates an empty gonum plot with the renderer's fonts, axis
// and tick styling applied.
func (r *Renderer) newPlot(xlabel, ylabel string) (*plot.Plot, font.Font, error) {
	serif, err := fonts.Serif()
	if err != nil {
		return nil, font.Font{}, err
	}

	p := plot.New()

	labelFont := serif
	labelFont.Size = r.Style.LabelSize
	tickFont := serif
	tickFont.Size = r.Style.FontSize

	if xlabel != "" {
		p.X.Label.Text = detex(xlabel)
	}
	if ylabel != "" {
		p.Y.Label.Text = detex(ylabel)
	}
	p.X.Label.TextStyle.Font = labelFont
	p.Y.Label.TextStyle.Font = labelFont
	p.X.Tick.Label.Font = tickFont
	p.Y.Tick.Label.Font = tickFont

	// Hairline axes, no tick marks (labels only), like the style table.
	p.X.LineStyle.Width = r.Style.AxisWidth
	p.Y.LineStyle.Width = r.Style.AxisWidth
	p.X.Tick.LineStyle.Width = r.Style.AxisWidth
	p.Y.Tick.LineStyle.Width = r.Style.AxisWidth
	p.X.Tick.Length = 0
	p.Y.Tick.Length = 0

	return p, serif, nil
}
