package domain

import (
	"time"

	"github.com/tokenforge/tokenforge/internal/engine/color"
	"github.com/tokenforge/tokenforge/internal/engine/palette"
)

// ColorPalette is a persisted, named palette. Steps are stored as
// generated; regeneration replaces them atomically.
type ColorPalette struct {
	ID        string         `json:"id"`
	BrandID   string         `json:"brand_id,omitempty"`
	Name      string         `json:"name"`
	BaseColor color.Values   `json:"base_color"`
	Steps     []palette.Step `json:"steps"`
	IsCore    bool           `json:"is_core"`
	CreatedAt time.Time      `json:"created_at"`
}

// BaseStep returns the step flagged as the base color, or nil when the
// palette has none (legacy rows).
func (p *ColorPalette) BaseStep() *palette.Step {
	for i := range p.Steps {
		if p.Steps[i].IsBaseColor {
			return &p.Steps[i]
		}
	}
	return nil
}

// AccessibleSteps counts the steps meeting WCAG AA for normal text against
// at least one of white or black.
func (p *ColorPalette) AccessibleSteps() int {
	n := 0
	for i := range p.Steps {
		if p.Steps[i].Accessibility.WCAGAANormal {
			n++
		}
	}
	return n
}
