// Package fonts provides the Latin Modern Roman typeface for figure text.
//
// Latin Modern is the Computer Modern successor used by modern LaTeX
// distributions, so figures set in it match the surrounding document.
// The faces ship as Go packages (go-fonts), making them available without
// external font files.
package fonts

import (
	"sync"

	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"gonum.org/v1/plot/font"

	"github.com/mhagel/pubfig/pkg/errors"
)

// Typeface is the name the Latin Modern faces are registered under.
const Typeface font.Typeface = "LatinModern"

var (
	once    sync.Once
	serif   font.Font
	loadErr error
)

// Serif registers Latin Modern Roman (regular, italic, bold) with
// gonum/plot's default font cache and returns the font to use for all
// figure text. Registration happens once; subsequent calls return the
// cached result.
func Serif() (font.Font, error) {
	once.Do(func() {
		faces := []struct {
			ttf    []byte
			style  xfont.Style
			weight xfont.Weight
		}{
			{lmroman10regular.TTF, xfont.StyleNormal, xfont.WeightNormal},
			{lmroman10italic.TTF, xfont.StyleItalic, xfont.WeightNormal},
			{lmroman10bold.TTF, xfont.StyleNormal, xfont.WeightBold},
		}

		registered := make([]font.Face, 0, len(faces))
		for _, f := range faces {
			sfnt, err := opentype.Parse(f.ttf)
			if err != nil {
				loadErr = errors.Wrap(errors.ErrCodeInternal, err, "parsing Latin Modern face")
				return
			}
			registered = append(registered, font.Face{
				Font: font.Font{
					Typeface: Typeface,
					Variant:  "Serif",
					Style:    f.style,
					Weight:   f.weight,
				},
				Face: sfnt,
			})
		}

		font.DefaultCache.Add(registered)
		serif = font.Font{Typeface: Typeface, Variant: "Serif"}
	})

	return serif, loadErr
}
