// Package typescale derives typographic scale steps from numeric
// parameters. Every function is pure; identical inputs always produce
// identical output.
package typescale

import (
	"fmt"
	"math"

	"github.com/tokenforge/tokenforge/internal/engine/units"
)

// Method selects how a platform's base size is chosen.
type Method string

const (
	MethodModular  Method = "modular"
	MethodDistance Method = "distance"
	MethodAI       Method = "ai"
)

// Step is one named size in a typographic scale. Size is expressed in the
// caller's target unit. Ratio is the scale-wide ratio, not a per-step value.
type Step struct {
	Label string  `json:"label"`
	Size  float64 `json:"size"`
	Ratio float64 `json:"ratio"`
}

// Config holds the parameters for a modular scale.
type Config struct {
	Method    Method  `json:"method"`
	BaseSize  float64 `json:"base_size"`
	Ratio     float64 `json:"ratio"`
	StepsUp   int     `json:"steps_up"`
	StepsDown int     `json:"steps_down"`
}

// Calculate produces the ordered steps of a modular scale anchored at f0.
// Steps below the base come first (f-N .. f-1), then f0, then f1 .. fN.
// Sizes are computed in px and converted to the target unit; basePx is the
// reference for relative units. Negative step counts are treated as zero.
func Calculate(baseSize, ratio float64, stepsUp, stepsDown int, target units.Unit, basePx float64) []Step {
	if stepsUp < 0 {
		stepsUp = 0
	}
	if stepsDown < 0 {
		stepsDown = 0
	}

	steps := make([]Step, 0, stepsDown+stepsUp+1)

	for i := stepsDown; i >= 1; i-- {
		size := baseSize / math.Pow(ratio, float64(i))
		steps = append(steps, Step{
			Label: fmt.Sprintf("f-%d", i),
			Size:  units.Convert(size, units.Px, target, basePx),
			Ratio: ratio,
		})
	}

	steps = append(steps, Step{
		Label: "f0",
		Size:  units.Convert(baseSize, units.Px, target, basePx),
		Ratio: ratio,
	})

	for i := 1; i <= stepsUp; i++ {
		size := baseSize * math.Pow(ratio, float64(i))
		steps = append(steps, Step{
			Label: fmt.Sprintf("f%d", i),
			Size:  units.Convert(size, units.Px, target, basePx),
			Ratio: ratio,
		})
	}

	return steps
}
