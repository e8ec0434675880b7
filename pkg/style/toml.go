package style

import (
	"os"

	"github.com/BurntSushi/toml"
	"gonum.org/v1/plot/vg"

	"github.com/mhagel/pubfig/pkg/errors"
)

// fileConfig is the TOML representation of style overrides. All fields
// are optional; unset fields keep the base config's values.
type fileConfig struct {
	Palette []string    `toml:"palette"`
	Hatches []fileHatch `toml:"hatches"`
	Line    *fileLine   `toml:"line"`
	DPI     *int        `toml:"dpi"`
}

type fileHatch struct {
	Kind    string  `toml:"kind"`
	Spacing float64 `toml:"spacing"`
}

type fileLine struct {
	Width    *float64 `toml:"width"`
	ErrWidth *float64 `toml:"err_width"`
	CapSize  *float64 `toml:"cap_size"`
	CapWidth *float64 `toml:"cap_width"`
}

// Load reads style overrides from a TOML file and applies them on top
// of base. Fails with INVALID_STYLE on unreadable files, malformed TOML,
// bad hex colors or unknown hatch kinds.
//
// Example file:
//
//	dpi = 600
//	palette = ["#19B2FF", "#E51932"]
//
//	[[hatches]]
//	kind = "diagonal"
//	spacing = 2.0
//
//	[line]
//	width = 1.5
func Load(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "reading style file %q", path)
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "parsing style file %q", path)
	}

	return fc.apply(base)
}

func (fc fileConfig) apply(base Config) (Config, error) {
	out := base

	if len(fc.Palette) > 0 {
		out.Palette = out.Palette[:0:0]
		for _, hex := range fc.Palette {
			c, err := ParseHexColor(hex)
			if err != nil {
				return Config{}, err
			}
			out.Palette = append(out.Palette, c)
		}
	}

	if len(fc.Hatches) > 0 {
		out.Hatches = out.Hatches[:0:0]
		for _, h := range fc.Hatches {
			kind := HatchKind(h.Kind)
			if !validHatchKind(kind) {
				return Config{}, errors.New(errors.ErrCodeInvalidStyle, "unknown hatch kind %q", h.Kind)
			}
			if h.Spacing <= 0 {
				return Config{}, errors.New(errors.ErrCodeInvalidStyle, "hatch spacing must be positive, got %v", h.Spacing)
			}
			out.Hatches = append(out.Hatches, Hatch{Kind: kind, Spacing: vg.Length(h.Spacing)})
		}
	}

	if fc.Line != nil {
		if fc.Line.Width != nil {
			out.LineWidth = vg.Length(*fc.Line.Width)
		}
		if fc.Line.ErrWidth != nil {
			out.ErrLineWidth = vg.Length(*fc.Line.ErrWidth)
		}
		if fc.Line.CapSize != nil {
			out.CapSize = vg.Length(*fc.Line.CapSize)
		}
		if fc.Line.CapWidth != nil {
			out.CapWidth = vg.Length(*fc.Line.CapWidth)
		}
	}

	if fc.DPI != nil {
		if *fc.DPI <= 0 {
			return Config{}, errors.New(errors.ErrCodeInvalidStyle, "dpi must be positive, got %d", *fc.DPI)
		}
		out.DPI = *fc.DPI
	}

	return out, nil
}
