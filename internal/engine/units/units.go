// Package units converts sizes between the absolute and relative CSS units
// used by type scales. It is pure: no rounding, no I/O, no state.
package units

// Unit is a CSS length unit supported by the converter.
type Unit string

const (
	Px  Unit = "px"
	Rem Unit = "rem"
	Em  Unit = "em"
)

// DefaultBasePx is the nominal browser root font size.
const DefaultBasePx = 16.0

// Convert converts value from one unit to another relative to basePx.
// Relative units (rem, em) are interpreted against basePx. Unknown units
// return the input unchanged so a malformed config cannot break a render
// loop; rounding and display formatting are caller concerns.
func Convert(value float64, from, to Unit, basePx float64) float64 {
	if from == to {
		return value
	}
	if basePx <= 0 {
		basePx = DefaultBasePx
	}

	var px float64
	switch from {
	case Px:
		px = value
	case Rem, Em:
		px = value * basePx
	default:
		return value
	}

	switch to {
	case Px:
		return px
	case Rem, Em:
		return px / basePx
	default:
		return value
	}
}
