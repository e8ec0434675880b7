package figure

import (
	"math"
	"testing"

	"github.com/mhagel/pubfig/pkg/errors"
)

const tol = 1e-12

func TestLayoutBarsSpacingAndSymmetry(t *testing.T) {
	tests := []struct {
		name       string
		m          int
		widthScale float64
	}{
		{"single series", 1, 0.7},
		{"two series", 2, 0.7},
		{"three series", 3, 0.9},
		{"many series", 7, 1.0},
		{"narrow group", 4, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := LayoutBars(tt.m, tt.widthScale)
			if err != nil {
				t.Fatalf("LayoutBars(%d, %v) error = %v", tt.m, tt.widthScale, err)
			}

			wantWidth := tt.widthScale / float64(tt.m)
			if math.Abs(l.BarWidth-wantWidth) > tol {
				t.Errorf("BarWidth = %v, want %v", l.BarWidth, wantWidth)
			}

			if len(l.Offsets) != tt.m {
				t.Fatalf("len(Offsets) = %d, want %d", len(l.Offsets), tt.m)
			}

			// Offsets are evenly spaced by barWidth.
			for j := 1; j < tt.m; j++ {
				if d := l.Offsets[j] - l.Offsets[j-1]; math.Abs(d-wantWidth) > tol {
					t.Errorf("Offsets[%d]-Offsets[%d] = %v, want %v", j, j-1, d, wantWidth)
				}
			}

			// ... and symmetric about zero.
			var sum float64
			for _, o := range l.Offsets {
				sum += o
			}
			if math.Abs(sum) > tol {
				t.Errorf("sum(Offsets) = %v, want 0", sum)
			}

			// The group jointly spans widthScale of the slot.
			span := l.Offsets[tt.m-1] - l.Offsets[0] + wantWidth
			if math.Abs(span-tt.widthScale) > tol {
				t.Errorf("group span = %v, want %v", span, tt.widthScale)
			}
		})
	}
}

func TestLayoutBarsSingleSeriesDoesNotShift(t *testing.T) {
	l, err := LayoutBars(1, 0.7)
	if err != nil {
		t.Fatal(err)
	}

	if l.BarWidth != 0.7 {
		t.Errorf("BarWidth = %v, want 0.7", l.BarWidth)
	}
	if l.Offsets[0] != 0 {
		t.Errorf("Offsets[0] = %v, want 0", l.Offsets[0])
	}

	pos := l.Positions(5, 0)
	for i, p := range pos {
		if p != float64(i) {
			t.Errorf("Positions[%d] = %v, want %v", i, p, float64(i))
		}
	}
}

func TestLayoutBarsTwoSeriesScenario(t *testing.T) {
	// Two series, 5 categories, widthScale 0.7: bar width 0.35,
	// offsets -0.175 and +0.175.
	l, err := LayoutBars(2, 0.7)
	if err != nil {
		t.Fatal(err)
	}

	if math.Abs(l.BarWidth-0.35) > tol {
		t.Errorf("BarWidth = %v, want 0.35", l.BarWidth)
	}
	if math.Abs(l.Offsets[0]+0.175) > tol || math.Abs(l.Offsets[1]-0.175) > tol {
		t.Errorf("Offsets = %v, want [-0.175 0.175]", l.Offsets)
	}

	for j := 0; j < 2; j++ {
		pos := l.Positions(5, j)
		if len(pos) != 5 {
			t.Fatalf("len(Positions) = %d, want 5", len(pos))
		}
		for i, p := range pos {
			want := float64(i) + l.Offsets[j]
			if math.Abs(p-want) > tol {
				t.Errorf("Positions(5, %d)[%d] = %v, want %v", j, i, p, want)
			}
		}
	}
}

func TestLayoutBarsIdempotent(t *testing.T) {
	a, err := LayoutBars(3, 0.7)
	if err != nil {
		t.Fatal(err)
	}
	b, err := LayoutBars(3, 0.7)
	if err != nil {
		t.Fatal(err)
	}

	if a.BarWidth != b.BarWidth {
		t.Errorf("BarWidth differs: %v vs %v", a.BarWidth, b.BarWidth)
	}
	for j := range a.Offsets {
		if a.Offsets[j] != b.Offsets[j] {
			t.Errorf("Offsets[%d] differs: %v vs %v", j, a.Offsets[j], b.Offsets[j])
		}
	}
}

func TestLayoutBarsFailures(t *testing.T) {
	if _, err := LayoutBars(0, 0.7); !errors.Is(err, errors.ErrCodeEmptyGroup) {
		t.Errorf("LayoutBars(0, 0.7) = %v, want EMPTY_GROUP", err)
	}
	if _, err := LayoutBars(2, 0); !errors.Is(err, errors.ErrCodeInvalidWidthScale) {
		t.Errorf("LayoutBars(2, 0) = %v, want INVALID_WIDTH_SCALE", err)
	}
	if _, err := LayoutBars(2, 1.5); !errors.Is(err, errors.ErrCodeInvalidWidthScale) {
		t.Errorf("LayoutBars(2, 1.5) = %v, want INVALID_WIDTH_SCALE", err)
	}
}

func TestGroupValidate(t *testing.T) {
	tests := []struct {
		name     string
		group    Group
		n        int
		wantCode errors.Code
	}{
		{
			name:  "valid",
			group: Group{{Label: "a", Values: []float64{1, 2}, Errors: []float64{0.1, 0.2}}},
			n:     2,
		},
		{
			name:  "valid without errors",
			group: Group{{Label: "a", Values: []float64{1, 2}}},
			n:     2,
		},
		{
			name:     "empty group",
			group:    Group{},
			n:        2,
			wantCode: errors.ErrCodeEmptyGroup,
		},
		{
			name:     "short values",
			group:    Group{{Label: "a", Values: []float64{1, 2, 3}, Errors: []float64{1, 1, 1, 1, 1}}},
			n:        5,
			wantCode: errors.ErrCodeInvalidSeriesShape,
		},
		{
			name:     "short errors",
			group:    Group{{Label: "a", Values: []float64{1, 2}, Errors: []float64{0.1}}},
			n:        2,
			wantCode: errors.ErrCodeInvalidSeriesShape,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.group.validate(tt.n)
			if tt.wantCode == "" {
				if err != nil {
					t.Errorf("validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("validate() = %v, want %v", err, tt.wantCode)
			}
		})
	}
}
