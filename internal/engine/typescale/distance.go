package typescale

import "math"

// TextType distinguishes sustained reading from single-glyph recognition.
type TextType string

const (
	TextContinuous TextType = "continuous"
	TextIsolated   TextType = "isolated"
)

// Lighting describes the viewing environment.
type Lighting string

const (
	LightingGood     Lighting = "good"
	LightingModerate Lighting = "moderate"
	LightingPoor     Lighting = "poor"
)

// DistanceConfig holds the ergonomic inputs for a distance-derived base size.
type DistanceConfig struct {
	ViewingDistance float64  `json:"viewing_distance"` // cm
	VisualAcuity    float64  `json:"visual_acuity"`    // decimal, 1.0 = normal
	MeanLengthRatio float64  `json:"mean_length_ratio"`
	TextType        TextType `json:"text_type"`
	Lighting        Lighting `json:"lighting"`
	PPI             float64  `json:"ppi"`
}

// Visual angle the text must subtend, in arcminutes, at normal acuity.
// Continuous text needs a larger angle for comfortable sustained reading
// than isolated glyphs need for bare recognition.
const (
	arcminContinuous = 22.0
	arcminIsolated   = 17.0
)

// referenceMeanLengthRatio is the x-height proportion the arcminute
// constants are calibrated against. Typefaces that look smaller at equal
// nominal size (lower ratio) are compensated with a larger result.
const referenceMeanLengthRatio = 0.5

const cmPerInch = 2.54

// DistanceBasedSize derives a legible base font size in px from viewing
// conditions. It is monotone: a larger viewing distance, a lower acuity, or
// worse lighting never yields a smaller size. Out-of-range acuity, ratio,
// or ppi inputs fall back to neutral defaults rather than failing.
func DistanceBasedSize(cfg DistanceConfig) float64 {
	acuity := cfg.VisualAcuity
	if acuity <= 0 {
		acuity = 1.0
	}
	meanLengthRatio := cfg.MeanLengthRatio
	if meanLengthRatio <= 0 {
		meanLengthRatio = referenceMeanLengthRatio
	}
	ppi := cfg.PPI
	if ppi <= 0 {
		ppi = 96
	}
	distance := cfg.ViewingDistance
	if distance <= 0 {
		distance = 40 // arm's length
	}

	arcmin := arcminContinuous
	if cfg.TextType == TextIsolated {
		arcmin = arcminIsolated
	}
	arcmin /= acuity

	// Required physical size from the visual angle.
	angleRad := arcmin / 60.0 * math.Pi / 180.0
	sizeCm := 2 * distance * math.Tan(angleRad/2)

	switch cfg.Lighting {
	case LightingModerate:
		sizeCm *= 1.15
	case LightingPoor:
		sizeCm *= 1.3
	}

	sizeCm *= referenceMeanLengthRatio / meanLengthRatio

	return sizeCm / cmPerInch * ppi
}
