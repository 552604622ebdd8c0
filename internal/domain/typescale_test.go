package domain

import (
	"testing"

	"github.com/tokenforge/tokenforge/internal/engine/typescale"
	"github.com/tokenforge/tokenforge/internal/engine/units"
)

func TestTypeScaleResolveModular(t *testing.T) {
	s := TypeScale{
		Method:    typescale.MethodModular,
		BaseSize:  16,
		Ratio:     1.25,
		StepsUp:   1,
		StepsDown: 1,
	}

	steps := s.Resolve(units.Px, 16)
	if len(steps) != 3 {
		t.Fatalf("got %d steps, want 3", len(steps))
	}
	if steps[1].Label != "f0" || steps[1].Size != 16 {
		t.Errorf("base step = %+v", steps[1])
	}
}

func TestTypeScaleResolveDistance(t *testing.T) {
	dist := typescale.DistanceConfig{
		ViewingDistance: 50,
		VisualAcuity:    1.0,
		MeanLengthRatio: 0.5,
		TextType:        typescale.TextContinuous,
		Lighting:        typescale.LightingGood,
		PPI:             96,
	}
	s := TypeScale{
		Method:    typescale.MethodDistance,
		BaseSize:  16, // ignored for distance
		Ratio:     1.25,
		StepsUp:   2,
		StepsDown: 0,
		Distance:  &dist,
	}

	steps := s.Resolve(units.Px, 16)
	want := typescale.DistanceBasedSize(dist)
	if steps[0].Size != want {
		t.Errorf("f0 size = %v, want distance-derived %v", steps[0].Size, want)
	}
}

func TestTypeScaleResolveDistanceWithoutParams(t *testing.T) {
	// A distance config missing its parameters falls back to the stored base.
	s := TypeScale{Method: typescale.MethodDistance, BaseSize: 18, Ratio: 1.2}
	steps := s.Resolve(units.Px, 16)
	if steps[0].Size != 18 {
		t.Errorf("f0 size = %v, want 18", steps[0].Size)
	}
}

func TestPlatformEffectiveBasePx(t *testing.T) {
	p := Platform{BaseSizePx: 18}
	if got := p.EffectiveBasePx(); got != 18 {
		t.Errorf("got %v, want 18", got)
	}
	p.BaseSizePx = 0
	if got := p.EffectiveBasePx(); got != units.DefaultBasePx {
		t.Errorf("got %v, want default", got)
	}
}
