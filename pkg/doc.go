// Package pkg provides the core libraries for pubfig figure rendering.
//
// # Overview
//
// Pubfig produces camera-ready bar and line charts sized to fit LaTeX
// document classes, written as vector PDF plus a high-resolution PNG.
// The pkg directory is organized into five areas:
//
//  1. [document] - Document classes and figure sizing (column, third, full width)
//  2. [style] - Colors, hatches, line widths, and TOML style overrides
//  3. [figure] - Bar layout math and the plot renderers
//  4. [fonts] - Latin Modern typeface registration
//  5. [errors] - Structured errors with stable machine-readable codes
//
// # Quick Start
//
// Render a grouped bar chart sized for one ACM column:
//
//	import (
//	    "github.com/mhagel/pubfig/pkg/document"
//	    "github.com/mhagel/pubfig/pkg/figure"
//	)
//
//	r := figure.NewRenderer(document.ACMSigconf)
//	group := figure.Group{
//	    {Label: "Cilantro", Values: []float64{12, 32}, Errors: []float64{1, 2}},
//	    {Label: "Basil", Values: []float64{84, 72}, Errors: []float64{5, 6}},
//	}
//	err := r.BarPlot("Age group", `Fraction of people (\%)`,
//	    []string{"0--12", "13--17"}, group, "survey", "out",
//	    figure.WithLegendPlacement(figure.LegendAbove),
//	    figure.WithLegendColumns(2))
//
// This writes out/survey.pdf and out/survey.png.
//
// [document]: https://pkg.go.dev/github.com/mhagel/pubfig/pkg/document
// [style]: https://pkg.go.dev/github.com/mhagel/pubfig/pkg/style
// [figure]: https://pkg.go.dev/github.com/mhagel/pubfig/pkg/figure
// [fonts]: https://pkg.go.dev/github.com/mhagel/pubfig/pkg/fonts
// [errors]: https://pkg.go.dev/github.com/mhagel/pubfig/pkg/errors
package pkg
