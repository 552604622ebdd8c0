package ports

import (
	"context"

	"github.com/tokenforge/tokenforge/internal/domain"
)

type PlatformRepository interface {
	Create(ctx context.Context, platform *domain.Platform) error
	GetByID(ctx context.Context, id string) (*domain.Platform, error)
	ListByBrand(ctx context.Context, brandID string) ([]*domain.Platform, error)
	Update(ctx context.Context, platform *domain.Platform) error
	Delete(ctx context.Context, id string) error
}
