package figure

import (
	"github.com/mhagel/pubfig/pkg/errors"
)

// BarLayout places the bars of a group side by side within each
// category slot. Slot i is centered at integer position i on the
// category axis; bar j of slot i is centered at i + Offsets[j]. The
// offsets are symmetric about zero, so the m bars jointly occupy
// widthScale of the slot, centered on it.
type BarLayout struct {
	// BarWidth is the width of a single bar, in category axis units.
	BarWidth float64

	// Offsets holds the horizontal shift of each series, in input order.
	Offsets []float64
}

// LayoutBars computes the bar layout for a group of m series where the
// bars of one slot jointly occupy widthScale of the slot's width.
// Fails with EMPTY_GROUP when m is zero and INVALID_WIDTH_SCALE when
// widthScale is outside (0, 1].
func LayoutBars(m int, widthScale float64) (BarLayout, error) {
	if m <= 0 {
		return BarLayout{}, errors.New(errors.ErrCodeEmptyGroup, "bar layout needs at least one series, got %d", m)
	}
	if err := errors.ValidateWidthScale(widthScale); err != nil {
		return BarLayout{}, err
	}

	barWidth := widthScale / float64(m)
	offset := barWidth * (1 - float64(m)) / 2

	offsets := make([]float64, m)
	for j := range offsets {
		offsets[j] = offset
		offset += barWidth
	}

	return BarLayout{BarWidth: barWidth, Offsets: offsets}, nil
}

// Positions returns the bar center positions of series j for n
// categories: [0, 1, ..., n-1] shifted by Offsets[j].
func (l BarLayout) Positions(n, j int) []float64 {
	pos := make([]float64, n)
	for i := range pos {
		pos[i] = float64(i) + l.Offsets[j]
	}
	return pos
}
