package ports

import (
	"context"

	"github.com/tokenforge/tokenforge/internal/domain"
)

// ListPalettesOptions filters palette listings.
type ListPalettesOptions struct {
	BrandID  *string
	CoreOnly bool
	Limit    int
}

type PaletteRepository interface {
	// Create persists a palette together with its steps.
	Create(ctx context.Context, p *domain.ColorPalette) error
	GetByID(ctx context.Context, id string) (*domain.ColorPalette, error)
	List(ctx context.Context, opts ListPalettesOptions) ([]*domain.ColorPalette, error)
	// ReplaceSteps swaps a palette's steps atomically.
	ReplaceSteps(ctx context.Context, p *domain.ColorPalette) error
	Delete(ctx context.Context, id string) error
}
