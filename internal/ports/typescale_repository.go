package ports

import (
	"context"

	"github.com/tokenforge/tokenforge/internal/domain"
)

type TypeScaleRepository interface {
	// Save inserts or replaces the scale configuration for its platform.
	Save(ctx context.Context, scale *domain.TypeScale) error
	GetByPlatform(ctx context.Context, platformID string) (*domain.TypeScale, error)
	Delete(ctx context.Context, id string) error
}
