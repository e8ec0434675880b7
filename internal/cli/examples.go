package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mhagel/pubfig/pkg/document"
	"github.com/mhagel/pubfig/pkg/errors"
	"github.com/mhagel/pubfig/pkg/figure"
	"github.com/mhagel/pubfig/pkg/style"
)

// examplesCommand creates the examples command, which renders the two
// showcase figures. It doubles as a smoke test for a full installation:
// fonts, layout, and both output encoders are exercised.
func (c *CLI) examplesCommand() *cobra.Command {
	var (
		destDir   string
		className string
		stylePath string
	)

	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Render example bar and line charts",
		Long: `Render a grouped bar chart with error bars and a multi-series line
chart, sized for the chosen document class, as PDF and PNG.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			class, err := document.ByName(className)
			if err != nil {
				return err
			}

			r := figure.NewRenderer(class)
			if stylePath != "" {
				cfg, err := style.Load(stylePath, r.Style)
				if err != nil {
					return err
				}
				r.Style = cfg
				logger.Debug("loaded style overrides", "path", stylePath)
			}

			printKeyValue("class", class.Name)
			printKeyValue("output", destDir)

			prog := newProgress(logger)

			sp := newSpinnerWithContext(cmd.Context(), "rendering figures")
			sp.Start()

			names, err := renderExamples(r, destDir)
			if err != nil {
				sp.StopWithError("rendering failed")
				if sp.Cancelled() {
					return cmd.Context().Err()
				}
				return err
			}
			sp.StopWithSuccess(fmt.Sprintf("rendered %d figures", len(names)))

			for _, name := range names {
				printFile(filepath.Join(destDir, name+".pdf"))
				printFile(filepath.Join(destDir, name+".png"))
			}
			prog.done(fmt.Sprintf("Rendered %d figures", len(names)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&destDir, "dest-dir", "d", ".", "directory to write figures into")
	cmd.Flags().StringVar(&className, "class", document.ACMSigconf.Name, "document class to size figures for (acm-sigconf, ieeetran)")
	cmd.Flags().StringVar(&stylePath, "style", "", "TOML file with style overrides")

	return cmd
}

// renderExamples draws both showcase figures and returns their names.
func renderExamples(r *figure.Renderer, destDir string) ([]string, error) {
	if err := errors.ValidateDestDir(destDir); err != nil {
		return nil, err
	}

	ageGroups := []string{"0--12", "13--17", "18--29", "30--49", "50+"}
	preferences := figure.Group{
		{
			Label:  "Cilantro",
			Values: []float64{12, 32, 48, 41, 85},
			Errors: []float64{1, 2, 1, 10, 20},
		},
		{
			Label:  "Basil",
			Values: []float64{84, 72, 99, 87, 60},
			Errors: []float64{5, 6, 2, 10, 18},
		},
	}

	if err := r.BarPlot("Age group", `Fraction of people (\%)`, ageGroups, preferences, "example-bars", destDir,
		figure.WithLegendPlacement(figure.LegendAbove),
		figure.WithLegendColumns(2),
	); err != nil {
		return nil, err
	}

	lines := []figure.XYSeries{
		{
			Label:  "Data 1",
			X:      []float64{1, 2, 3, 4, 5},
			Y:      []float64{20, 30, 40, 50, 60},
			Errors: []float64{2, 3, 2, 1, 3},
		},
		{
			Label:  "Data 2",
			X:      []float64{1, 2, 3, 4, 5},
			Y:      []float64{20, 50, 10, 20, 30},
			Errors: []float64{2, 3, 2, 1, 3},
		},
	}

	if err := r.LinePlot("Some $x$ axis", "Some $y$ axis", lines, "example-lines", destDir); err != nil {
		return nil, err
	}

	return []string{"example-bars", "example-lines"}, nil
}
