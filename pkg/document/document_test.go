package document

import (
	"math"
	"testing"

	"gonum.org/v1/plot/vg"

	"github.com/mhagel/pubfig/pkg/errors"
)

func TestByName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"acm sigconf", "acm-sigconf", "acm-sigconf", false},
		{"case insensitive", "ACM-Sigconf", "acm-sigconf", false},
		{"ieeetran", "ieeetran", "ieeetran", false},
		{"unknown", "llncs", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ByName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ByName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidClass) {
					t.Errorf("code = %v, want INVALID_CLASS", errors.GetCode(err))
				}
				return
			}
			if c.Name != tt.want {
				t.Errorf("Name = %q, want %q", c.Name, tt.want)
			}
		})
	}
}

// approxLen compares vg.Lengths with a small absolute tolerance.
func approxLen(a, b vg.Length) bool {
	return math.Abs(float64(a-b)) < 1e-9
}

func TestColumnFigure(t *testing.T) {
	fs := ACMSigconf.ColumnFigure()

	wantW := vg.Length(241.14749/72.27) * vg.Inch
	if !approxLen(fs.Width, wantW) {
		t.Errorf("Width = %v, want %v", fs.Width, wantW)
	}

	// Height is width / golden * 0.8.
	golden := (1.0 + math.Sqrt(5.0)) / 2.0
	wantH := vg.Length(241.14749/golden*0.8/72.27) * vg.Inch
	if !approxLen(fs.Height, wantH) {
		t.Errorf("Height = %v, want %v", fs.Height, wantH)
	}

	if fs.Height >= fs.Width {
		t.Error("column figure should be wider than tall")
	}
}

func TestThirdFigure(t *testing.T) {
	fs := ACMSigconf.ThirdFigure()
	full := ACMSigconf.FullWidthFigure()

	if !approxLen(fs.Width*3, full.Width) {
		t.Errorf("third width * 3 = %v, want %v", fs.Width*3, full.Width)
	}

	golden := (1.0 + math.Sqrt(5.0)) / 2.0
	wantH := vg.Length(float64(fs.Width) / golden)
	if !approxLen(fs.Height, wantH) {
		t.Errorf("Height = %v, want %v", fs.Height, wantH)
	}
}

func TestFullWidthFigureIsFlat(t *testing.T) {
	fs := IEEETran.FullWidthFigure()
	if float64(fs.Width)/float64(fs.Height) < 4 {
		t.Errorf("full width figure should be flat, got ratio %v", float64(fs.Width)/float64(fs.Height))
	}
}
