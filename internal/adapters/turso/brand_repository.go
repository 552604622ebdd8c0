package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tokenforge/tokenforge/internal/domain"
)

type BrandRepository struct {
	db *sql.DB
}

func NewBrandRepository(db *sql.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) Create(ctx context.Context, brand *domain.Brand) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO brands (id, name, created_at) VALUES (?, ?, ?)`,
		brand.ID, brand.Name, brand.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}
	return nil
}

func (r *BrandRepository) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM brands WHERE id = ?`, id)

	brand, err := brandFromRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}
	return brand, nil
}

func (r *BrandRepository) List(ctx context.Context) ([]*domain.Brand, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM brands ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list brands: %w", err)
	}
	defer rows.Close()

	var brands []*domain.Brand
	for rows.Next() {
		brand, err := brandFromRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan brand: %w", err)
		}
		brands = append(brands, brand)
	}
	return brands, rows.Err()
}

func (r *BrandRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM brands WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete brand: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func brandFromRow(row scanner) (*domain.Brand, error) {
	var b domain.Brand
	var createdAt string
	if err := row.Scan(&b.ID, &b.Name, &createdAt); err != nil {
		return nil, err
	}
	b.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &b, nil
}
