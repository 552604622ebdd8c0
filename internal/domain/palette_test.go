package domain

import (
	"testing"

	"github.com/tokenforge/tokenforge/internal/engine/color"
	"github.com/tokenforge/tokenforge/internal/engine/palette"
)

func TestColorPaletteBaseStep(t *testing.T) {
	p := ColorPalette{Steps: []palette.Step{
		{ID: "a", Name: "100"},
		{ID: "b", Name: "200", IsBaseColor: true},
		{ID: "c", Name: "300"},
	}}
	got := p.BaseStep()
	if got == nil || got.ID != "b" {
		t.Errorf("BaseStep = %+v, want step b", got)
	}

	empty := ColorPalette{}
	if empty.BaseStep() != nil {
		t.Error("empty palette should have no base step")
	}
}

func TestColorPaletteAccessibleSteps(t *testing.T) {
	p := ColorPalette{Steps: []palette.Step{
		{Accessibility: color.Accessibility{WCAGAANormal: true}},
		{Accessibility: color.Accessibility{WCAGAANormal: false}},
		{Accessibility: color.Accessibility{WCAGAANormal: true}},
	}}
	if got := p.AccessibleSteps(); got != 2 {
		t.Errorf("AccessibleSteps = %d, want 2", got)
	}
}
