package ports

import (
	"context"

	"github.com/tokenforge/tokenforge/internal/domain"
)

type BrandRepository interface {
	Create(ctx context.Context, brand *domain.Brand) error
	GetByID(ctx context.Context, id string) (*domain.Brand, error)
	List(ctx context.Context) ([]*domain.Brand, error)
	Delete(ctx context.Context, id string) error
}
