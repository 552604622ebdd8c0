package palette

// Easing curves for the lightness presets. All are anchored so index 0 maps
// to lightnessRange[0] and index numSteps-1 maps to lightnessRange[1].

func easeInCubic(t float64) float64 {
	return t * t * t
}

func easeOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

func easeInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// normalizedIndex maps a step index to [0, 1]. A single-step palette sits
// at the start of the range.
func normalizedIndex(i, numSteps int) float64 {
	if numSteps <= 1 {
		return 0
	}
	return float64(i) / float64(numSteps-1)
}

func calculateLightness(i, numSteps int, opts Options) float64 {
	minL, maxL := opts.LightnessRange[0], opts.LightnessRange[1]
	t := normalizedIndex(i, numSteps)

	switch opts.LightnessPreset {
	case LightnessCustom:
		if len(opts.CustomLightnessValues) >= numSteps {
			return opts.CustomLightnessValues[i]
		}
		// Short custom arrays degrade to linear rather than failing.
		return minL + t*(maxL-minL)
	case LightnessCurved:
		return minL + easeInOutCubic(t)*(maxL-minL)
	case LightnessEaseIn:
		return minL + easeInCubic(t)*(maxL-minL)
	case LightnessEaseOut:
		return minL + easeOutCubic(t)*(maxL-minL)
	default: // linear
		return minL + t*(maxL-minL)
	}
}

func calculateChroma(i, numSteps int, l float64, opts Options) float64 {
	minC, maxC := opts.ChromaRange[0], opts.ChromaRange[1]

	// Chroma presets are driven by where the step's lightness sits inside
	// the lightness range, not by the raw index.
	minL, maxL := opts.LightnessRange[0], opts.LightnessRange[1]
	normalizedL := 0.0
	if maxL > minL {
		normalizedL = clamp((l-minL)/(maxL-minL), 0, 1)
	}

	switch opts.ChromaPreset {
	case ChromaDecrease:
		return maxC - normalizedL*(maxC-minC)
	case ChromaIncrease:
		return minC + normalizedL*(maxC-minC)
	case ChromaCustom:
		if len(opts.CustomChromaValues) >= numSteps {
			return opts.CustomChromaValues[i]
		}
		return minC + normalizedIndex(i, numSteps)*(maxC-minC)
	default: // constant
		return maxC
	}
}
