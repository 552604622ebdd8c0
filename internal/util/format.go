package util

import (
	"fmt"
	"strings"
)

// FormatSize formats a step size with its unit, trimming trailing zeros.
// Examples: 16 px -> "16px", 1.25 rem -> "1.25rem", 12.800000 px -> "12.8px"
func FormatSize(value float64, unit string) string {
	s := strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.4f", value), "0"), ".")
	return s + unit
}

// FormatRatio formats a scale ratio with up to three decimals.
// Examples: 1.25 -> "1.25", 1.333 -> "1.333", 2 -> "2"
func FormatRatio(r float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", r), "0"), ".")
}

// FormatContrast formats a WCAG contrast ratio as "N.NN:1".
func FormatContrast(c float64) string {
	return fmt.Sprintf("%.2f:1", c)
}

// FormatPercent formats a 0..1 fraction as a percentage.
func FormatPercent(p float64) string {
	return fmt.Sprintf("%.0f%%", p*100)
}
