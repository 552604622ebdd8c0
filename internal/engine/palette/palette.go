// Package palette generates ordered color palettes by varying OKLCH
// lightness and chroma around a base color. Unlike the single-color
// operations in the color package, generation fails atomically: a palette
// built on an unresolvable base color would misrepresent the brand, so no
// partial result is ever returned.
package palette

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/tokenforge/tokenforge/internal/engine/color"
)

// LightnessPreset names an interpolation strategy for lightness across the
// palette steps.
type LightnessPreset string

const (
	LightnessLinear  LightnessPreset = "linear"
	LightnessCurved  LightnessPreset = "curved"
	LightnessEaseIn  LightnessPreset = "easeIn"
	LightnessEaseOut LightnessPreset = "easeOut"
	LightnessCustom  LightnessPreset = "custom"
)

// ChromaPreset names an interpolation strategy for chroma.
type ChromaPreset string

const (
	ChromaConstant ChromaPreset = "constant"
	ChromaDecrease ChromaPreset = "decrease"
	ChromaIncrease ChromaPreset = "increase"
	ChromaCustom   ChromaPreset = "custom"
)

// Options controls one palette-generation request. The engine is stateless;
// callers construct Options per request.
type Options struct {
	LightnessPreset       LightnessPreset `json:"lightness_preset"`
	ChromaPreset          ChromaPreset    `json:"chroma_preset"`
	LightnessRange        [2]float64      `json:"lightness_range"`
	ChromaRange           [2]float64      `json:"chroma_range"`
	HueShift              float64         `json:"hue_shift,omitempty"`
	LockBaseColor         bool            `json:"lock_base_color,omitempty"`
	CustomLightnessValues []float64       `json:"custom_lightness_values,omitempty"`
	CustomChromaValues    []float64       `json:"custom_chroma_values,omitempty"`
}

// Step is one generated palette entry. Accessibility is derived from the
// step's own color, never hand-edited.
type Step struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Values        color.Values        `json:"values"`
	Accessibility color.Accessibility `json:"accessibility"`
	IsBaseColor   bool                `json:"is_base_color"`
}

// GenerationError is the single error kind the engine surfaces to callers.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("palette generation failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("palette generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Safe perceptual bounds; steps outside them collapse into pure black/white
// or leave the sRGB gamut entirely.
const (
	minSafeL = 0.05
	maxSafeL = 0.95
	minSafeC = 0.01
	maxSafeC = 0.4
)

// Generate produces numSteps colors around base, ordered light-to-dark or
// dark-to-light according to the lightness range. The step at
// numSteps/2 is the semantic anchor ("500" in Material terms); with
// LockBaseColor it reproduces the base color exactly. varyLightness false
// keeps the base lightness fixed and lets only chroma move.
func Generate(base color.Values, numSteps int, varyLightness bool, opts Options) ([]Step, error) {
	if numSteps < 1 {
		return nil, &GenerationError{Reason: fmt.Sprintf("numSteps must be >= 1, got %d", numSteps)}
	}

	baseL, baseC, baseH, err := parseBase(base)
	if err != nil {
		return nil, &GenerationError{Reason: "base color has no usable OKLCH representation", Err: err}
	}

	hue := baseH
	if opts.HueShift != 0 {
		hue = math.Mod(hue+opts.HueShift, 360)
		if hue < 0 {
			hue += 360
		}
	}

	baseIndex := numSteps / 2

	steps := make([]Step, 0, numSteps)
	for i := 0; i < numSteps; i++ {
		var l, c float64
		if i == baseIndex && opts.LockBaseColor {
			l, c = baseL, baseC
		} else {
			if varyLightness {
				l = calculateLightness(i, numSteps, opts)
			} else {
				l = baseL
			}
			c = calculateChroma(i, numSteps, l, opts)
			l = clamp(l, minSafeL, maxSafeL)
			c = clamp(c, minSafeC, maxSafeC)
		}

		h := hue
		if i == baseIndex && opts.LockBaseColor {
			h = baseH
		}

		values := color.FromOKLCH(l, c, h)

		steps = append(steps, Step{
			ID:            uuid.New().String(),
			Name:          fmt.Sprintf("%d", (i+1)*100),
			Values:        values,
			Accessibility: color.CheckAccessibility(values.Hex),
			IsBaseColor:   i == baseIndex,
		})
	}

	return steps, nil
}

// parseBase resolves a base color to OKLCH components. The OKLCH field is
// authoritative; hex and rgb are fallbacks. Missing components inside a
// parseable color default to a neutral mid blue (0.5, 0.1, 240); only a
// base with no parseable representation at all is an error.
func parseBase(base color.Values) (l, c, h float64, err error) {
	if base.OKLCH != "" {
		if l, c, h, err = color.ParseOKLCH(base.OKLCH); err == nil {
			return l, c, h, nil
		}
	}

	for _, candidate := range []string{base.Hex, base.RGB} {
		if candidate == "" {
			continue
		}
		v := color.ConvertToAllFormats(candidate)
		if v.Hex == "#000000" && candidate != "#000000" && candidate != "rgb(0, 0, 0)" {
			continue // fallback black means the parse failed
		}
		if l, c, h, err = color.ParseOKLCH(v.OKLCH); err == nil {
			return l, c, h, nil
		}
	}

	if base.OKLCH == "" && base.Hex == "" && base.RGB == "" {
		return 0.5, 0.1, 240, nil
	}

	return 0, 0, 0, fmt.Errorf("cannot parse %q / %q / %q", base.OKLCH, base.Hex, base.RGB)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
