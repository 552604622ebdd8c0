package domain

import (
	"time"

	"github.com/tokenforge/tokenforge/internal/engine/units"
)

// Brand is the top-level grouping for design tokens.
type Brand struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Platform is one delivery target of a brand (web, iOS, print, ...). Its
// unit and base size drive how scale steps are expressed.
type Platform struct {
	ID         string     `json:"id"`
	BrandID    string     `json:"brand_id"`
	Name       string     `json:"name"`
	Unit       units.Unit `json:"unit"`
	BaseSizePx float64    `json:"base_size_px"`
	PPI        float64    `json:"ppi"`
	CreatedAt  time.Time  `json:"created_at"`
}

// EffectiveBasePx returns the reference base size for relative units,
// falling back to the browser default when unset.
func (p *Platform) EffectiveBasePx() float64 {
	if p.BaseSizePx > 0 {
		return p.BaseSizePx
	}
	return units.DefaultBasePx
}
