package domain

import (
	"time"

	"github.com/tokenforge/tokenforge/internal/engine/typescale"
	"github.com/tokenforge/tokenforge/internal/engine/units"
)

// TypeScale is a platform's persisted scale configuration. Steps are not
// stored; they are derived on demand through Resolve.
type TypeScale struct {
	ID         string                    `json:"id"`
	PlatformID string                    `json:"platform_id"`
	Method     typescale.Method          `json:"method"`
	BaseSize   float64                   `json:"base_size"` // px; ignored when Method is distance
	Ratio      float64                   `json:"ratio"`
	StepsUp    int                       `json:"steps_up"`
	StepsDown  int                       `json:"steps_down"`
	Distance   *typescale.DistanceConfig `json:"distance,omitempty"` // set when Method is distance
	CreatedAt  time.Time                 `json:"created_at"`
}

// Resolve derives the concrete scale steps in the target unit. For the
// distance method the base size comes from the perceptual model; for
// modular (and externally recommended "ai" configs, which arrive with a
// precomputed base) the stored base size is used as-is.
func (s *TypeScale) Resolve(target units.Unit, basePx float64) []typescale.Step {
	baseSize := s.BaseSize
	if s.Method == typescale.MethodDistance && s.Distance != nil {
		baseSize = typescale.DistanceBasedSize(*s.Distance)
	}
	return typescale.Calculate(baseSize, s.Ratio, s.StepsUp, s.StepsDown, target, basePx)
}
