package palette

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/tokenforge/tokenforge/internal/engine/color"
)

func defaultOptions() Options {
	return Options{
		LightnessPreset: LightnessLinear,
		ChromaPreset:    ChromaConstant,
		LightnessRange:  [2]float64{0.05, 0.95},
		ChromaRange:     [2]float64{0.01, 0.4},
	}
}

func baseBlue() color.Values {
	return color.Values{
		OKLCH: "oklch(60% 0.15 240)",
		RGB:   "rgb(50, 100, 200)",
		Hex:   "#3264C8",
	}
}

func TestGenerateCardinality(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 9, 11, 20} {
		steps, err := Generate(baseBlue(), n, true, defaultOptions())
		if err != nil {
			t.Fatalf("n=%d: %v", n, err)
		}
		if len(steps) != n {
			t.Errorf("n=%d: got %d steps", n, len(steps))
		}
	}
}

func TestGenerateRejectsZeroSteps(t *testing.T) {
	_, err := Generate(baseBlue(), 0, true, defaultOptions())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err = %v, want *GenerationError", err)
	}
}

func TestGenerateFailsOnUnparseableBase(t *testing.T) {
	base := color.Values{OKLCH: "oklch(bad)", Hex: "nope", RGB: "rgb(x)"}
	steps, err := Generate(base, 5, true, defaultOptions())
	var genErr *GenerationError
	if !errors.As(err, &genErr) {
		t.Fatalf("err = %v, want *GenerationError", err)
	}
	if steps != nil {
		t.Error("partial palette returned on failure")
	}
}

func TestGenerateEmptyBaseUsesDefaults(t *testing.T) {
	steps, err := Generate(color.Values{}, 3, true, defaultOptions())
	if err != nil {
		t.Fatalf("empty base should default, got %v", err)
	}
	if len(steps) != 3 {
		t.Fatalf("got %d steps", len(steps))
	}
}

func TestGenerateNames(t *testing.T) {
	steps, err := Generate(baseBlue(), 9, true, defaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range steps {
		want := fmt.Sprintf("%d", (i+1)*100)
		if s.Name != want {
			t.Errorf("step %d name = %q, want %q", i, s.Name, want)
		}
		if s.ID == "" {
			t.Errorf("step %d has empty id", i)
		}
	}
	if steps[4].Name != "500" {
		t.Errorf("anchor name = %q, want 500", steps[4].Name)
	}
}

func TestGenerateBaseIndex(t *testing.T) {
	for _, tt := range []struct{ n, want int }{{1, 0}, {2, 1}, {5, 2}, {9, 4}, {10, 5}} {
		steps, err := Generate(baseBlue(), tt.n, true, defaultOptions())
		if err != nil {
			t.Fatal(err)
		}
		for i, s := range steps {
			if s.IsBaseColor != (i == tt.want) {
				t.Errorf("n=%d step %d isBaseColor = %v", tt.n, i, s.IsBaseColor)
			}
		}
	}
}

func TestGenerateLockBaseColor(t *testing.T) {
	opts := defaultOptions()
	opts.LockBaseColor = true

	steps, err := Generate(baseBlue(), 9, true, opts)
	if err != nil {
		t.Fatal(err)
	}

	l, c, h, err := color.ParseOKLCH(steps[4].Values.OKLCH)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(l-0.6) > 1e-6 || math.Abs(c-0.15) > 1e-6 || math.Abs(h-240) > 1e-6 {
		t.Errorf("locked base drifted: l=%v c=%v h=%v", l, c, h)
	}
}

func TestGenerateLightnessMonotone(t *testing.T) {
	for _, preset := range []LightnessPreset{LightnessLinear, LightnessCurved, LightnessEaseIn, LightnessEaseOut} {
		opts := defaultOptions()
		opts.LightnessPreset = preset

		steps, err := Generate(baseBlue(), 7, true, opts)
		if err != nil {
			t.Fatal(err)
		}

		prev := -1.0
		for i, s := range steps {
			l, _, _, err := color.ParseOKLCH(s.Values.OKLCH)
			if err != nil {
				t.Fatal(err)
			}
			if l < prev-1e-9 {
				t.Errorf("%s: lightness decreased at step %d: %v < %v", preset, i, l, prev)
			}
			prev = l
		}
	}
}

func TestGenerateLightnessAnchors(t *testing.T) {
	for _, preset := range []LightnessPreset{LightnessLinear, LightnessCurved, LightnessEaseIn, LightnessEaseOut} {
		opts := defaultOptions()
		opts.LightnessPreset = preset
		opts.LightnessRange = [2]float64{0.1, 0.9}

		steps, err := Generate(baseBlue(), 5, true, opts)
		if err != nil {
			t.Fatal(err)
		}

		first, _, _, _ := color.ParseOKLCH(steps[0].Values.OKLCH)
		last, _, _, _ := color.ParseOKLCH(steps[4].Values.OKLCH)
		if math.Abs(first-0.1) > 1e-3 {
			t.Errorf("%s: first step l = %v, want 0.1", preset, first)
		}
		if math.Abs(last-0.9) > 1e-3 {
			t.Errorf("%s: last step l = %v, want 0.9", preset, last)
		}
	}
}

func TestGenerateCustomLightness(t *testing.T) {
	opts := defaultOptions()
	opts.LightnessPreset = LightnessCustom
	opts.CustomLightnessValues = []float64{0.2, 0.5, 0.8}

	steps, err := Generate(baseBlue(), 3, true, opts)
	if err != nil {
		t.Fatal(err)
	}
	for i, want := range opts.CustomLightnessValues {
		l, _, _, _ := color.ParseOKLCH(steps[i].Values.OKLCH)
		if math.Abs(l-want) > 1e-3 {
			t.Errorf("step %d l = %v, want %v", i, l, want)
		}
	}
}

func TestGenerateChromaPresets(t *testing.T) {
	parse := func(s Step) (l, c float64) {
		l, c, _, err := color.ParseOKLCH(s.Values.OKLCH)
		if err != nil {
			t.Fatal(err)
		}
		return l, c
	}

	opts := defaultOptions()
	opts.ChromaPreset = ChromaConstant
	steps, err := Generate(baseBlue(), 5, true, opts)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range steps {
		if _, c := parse(s); math.Abs(c-0.4) > 1e-6 {
			t.Errorf("constant: step %d c = %v, want 0.4", i, c)
		}
	}

	opts.ChromaPreset = ChromaDecrease
	steps, err = Generate(baseBlue(), 5, true, opts)
	if err != nil {
		t.Fatal(err)
	}
	_, first := parse(steps[0])
	_, last := parse(steps[4])
	if first <= last {
		t.Errorf("decrease: chroma should fall with lightness: %v <= %v", first, last)
	}

	opts.ChromaPreset = ChromaIncrease
	steps, err = Generate(baseBlue(), 5, true, opts)
	if err != nil {
		t.Fatal(err)
	}
	_, first = parse(steps[0])
	_, last = parse(steps[4])
	if first >= last {
		t.Errorf("increase: chroma should rise with lightness: %v >= %v", first, last)
	}
}

func TestGenerateHueShift(t *testing.T) {
	opts := defaultOptions()
	opts.HueShift = 150

	steps, err := Generate(baseBlue(), 3, true, opts)
	if err != nil {
		t.Fatal(err)
	}
	_, _, h, err := color.ParseOKLCH(steps[0].Values.OKLCH)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(h-30) > 1e-6 { // 240 + 150 wraps to 30
		t.Errorf("hue = %v, want 30", h)
	}
}

func TestGenerateClampsToSafeRanges(t *testing.T) {
	opts := defaultOptions()
	opts.LightnessRange = [2]float64{-0.5, 1.5}
	opts.ChromaRange = [2]float64{0, 2}

	steps, err := Generate(baseBlue(), 5, true, opts)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range steps {
		l, c, _, err := color.ParseOKLCH(s.Values.OKLCH)
		if err != nil {
			t.Fatal(err)
		}
		if l < minSafeL-1e-9 || l > maxSafeL+1e-9 {
			t.Errorf("step %d lightness %v outside safe range", i, l)
		}
		if c < minSafeC-1e-9 || c > maxSafeC+1e-9 {
			t.Errorf("step %d chroma %v outside safe range", i, c)
		}
	}
}

func TestGenerateVaryChromaOnly(t *testing.T) {
	opts := defaultOptions()
	opts.ChromaPreset = ChromaIncrease

	steps, err := Generate(baseBlue(), 5, false, opts)
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range steps {
		l, _, _, err := color.ParseOKLCH(s.Values.OKLCH)
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(l-0.6) > 1e-6 {
			t.Errorf("step %d lightness %v should stay at base 0.6", i, l)
		}
	}
}

func TestGenerateAccessibilityDerived(t *testing.T) {
	steps, err := Generate(baseBlue(), 9, true, defaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range steps {
		want := color.CheckAccessibility(s.Values.Hex)
		if s.Accessibility != want {
			t.Errorf("step %d accessibility not derived from its own hex", i)
		}
	}
}
