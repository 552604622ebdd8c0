package color

import "math"

// WCAG 2.x relative luminance and contrast math. Note the linearization
// threshold here is the WCAG-specified 0.03928, not the 0.04045 used by the
// sRGB transfer curve in oklch.go; the two standards differ in that digit.

// Luminance returns the WCAG relative luminance of a color in [0, 1].
// Invalid input yields 0.5, a neutral value that keeps contrast
// calculations stable while a color is mid-edit.
func Luminance(color string) float64 {
	c, err := parseAny(color)
	if err != nil {
		return 0.5
	}
	return luminance(c)
}

func luminance(c rgb8) float64 {
	r := wcagLinear(float64(c.R) / 255.0)
	g := wcagLinear(float64(c.G) / 255.0)
	b := wcagLinear(float64(c.B) / 255.0)
	// ITU-R BT.709 luma weights.
	return 0.2126*r + 0.7152*g + 0.0722*b
}

func wcagLinear(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Contrast returns the WCAG contrast ratio between two colors, always >= 1
// and symmetric in its arguments.
func Contrast(a, b string) float64 {
	la := Luminance(a)
	lb := Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// CheckAccessibility scores a color against pure white and pure black and
// thresholds the better contrast at the WCAG 3 / 4.5 / 7 levels.
func CheckAccessibility(color string) Accessibility {
	white := Contrast(color, "#FFFFFF")
	black := Contrast(color, "#000000")

	best := white
	if black > best {
		best = black
	}

	return Accessibility{
		ContrastWithWhite: white,
		ContrastWithBlack: black,
		WCAGAALarge:       best >= 3,
		WCAGAANormal:      best >= 4.5,
		WCAGAAA:           best >= 7,
	}
}
