package style

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/mhagel/pubfig/pkg/document"
	"github.com/mhagel/pubfig/pkg/errors"
)

func writeStyleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "style.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverrides(t *testing.T) {
	path := writeStyleFile(t, `
dpi = 600
palette = ["#112233", "#445566"]

[[hatches]]
kind = "cross"
spacing = 4.0

[line]
width = 1.5
cap_size = 2.0
`)

	base := Default(document.ACMSigconf)
	got, err := Load(path, base)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if got.DPI != 600 {
		t.Errorf("DPI = %d, want 600", got.DPI)
	}
	if len(got.Palette) != 2 {
		t.Fatalf("palette size = %d, want 2", len(got.Palette))
	}
	if got.Palette[0] != (color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}) {
		t.Errorf("Palette[0] = %v", got.Palette[0])
	}
	if len(got.Hatches) != 1 || got.Hatches[0].Kind != HatchCross || got.Hatches[0].Spacing != 4 {
		t.Errorf("Hatches = %+v", got.Hatches)
	}
	if got.LineWidth != 1.5 {
		t.Errorf("LineWidth = %v, want 1.5", got.LineWidth)
	}
	if got.CapSize != 2 {
		t.Errorf("CapSize = %v, want 2", got.CapSize)
	}

	// Fields without overrides keep base values.
	if got.ErrLineWidth != base.ErrLineWidth {
		t.Errorf("ErrLineWidth = %v, want %v", got.ErrLineWidth, base.ErrLineWidth)
	}
	if got.FontSize != base.FontSize {
		t.Errorf("FontSize = %v, want %v", got.FontSize, base.FontSize)
	}
}

func TestLoadEmptyFileKeepsBase(t *testing.T) {
	path := writeStyleFile(t, "")
	base := Default(document.IEEETran)

	got, err := Load(path, base)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.DPI != base.DPI || len(got.Palette) != len(base.Palette) {
		t.Error("empty override should keep base config")
	}
}

func TestLoadFailures(t *testing.T) {
	base := Default(document.ACMSigconf)

	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", `palette = [`},
		{"bad hex", `palette = ["nope"]`},
		{"unknown hatch", "[[hatches]]\nkind = \"stars\"\nspacing = 2.0"},
		{"negative spacing", "[[hatches]]\nkind = \"cross\"\nspacing = -1.0"},
		{"zero dpi", `dpi = 0`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeStyleFile(t, tt.content)
			_, err := Load(path, base)
			if !errors.Is(err, errors.ErrCodeInvalidStyle) {
				t.Errorf("Load() = %v, want INVALID_STYLE", err)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.toml"), base)
		if !errors.Is(err, errors.ErrCodeInvalidStyle) {
			t.Errorf("Load() = %v, want INVALID_STYLE", err)
		}
	})
}
