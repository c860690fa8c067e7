// Package mood owns the shared hue that every visual in the calm space is
// derived from.
package mood

import "strconv"

// Hue is a position on the HSL colour wheel in degrees, always in [0, 360).
type Hue int

const (
	DefaultHue Hue = 285

	// offsets of the two companion accents drawn next to the base hue
	companionOffsetA = 40
	companionOffsetB = 320
)

// Wrap folds any integer onto the colour wheel.
func Wrap(v int) Hue {
	return Hue(((v % 360) + 360) % 360)
}

func (h Hue) Shift(delta int) Hue {
	return Wrap(int(h) + delta)
}

// Companions returns the accent hues at +40 and +320 degrees.
func (h Hue) Companions() (Hue, Hue) {
	return h.Shift(companionOffsetA), h.Shift(companionOffsetB)
}

func (h Hue) Int() int { return int(h) }

func (h Hue) String() string {
	return "h:" + strconv.Itoa(int(h))
}
