package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tokenforge/tokenforge/internal/domain"
	"github.com/tokenforge/tokenforge/internal/engine/units"
)

type PlatformRepository struct {
	db *sql.DB
}

func NewPlatformRepository(db *sql.DB) *PlatformRepository {
	return &PlatformRepository{db: db}
}

func (r *PlatformRepository) Create(ctx context.Context, p *domain.Platform) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO platforms (id, brand_id, name, unit, base_size_px, ppi, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.BrandID, p.Name, string(p.Unit), p.BaseSizePx, p.PPI, p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create platform: %w", err)
	}
	return nil
}

func (r *PlatformRepository) GetByID(ctx context.Context, id string) (*domain.Platform, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, brand_id, name, unit, base_size_px, ppi, created_at FROM platforms WHERE id = ?`, id)

	p, err := platformFromRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get platform: %w", err)
	}
	return p, nil
}

func (r *PlatformRepository) ListByBrand(ctx context.Context, brandID string) ([]*domain.Platform, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, brand_id, name, unit, base_size_px, ppi, created_at
		 FROM platforms WHERE brand_id = ? ORDER BY created_at`, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to list platforms: %w", err)
	}
	defer rows.Close()

	var platforms []*domain.Platform
	for rows.Next() {
		p, err := platformFromRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan platform: %w", err)
		}
		platforms = append(platforms, p)
	}
	return platforms, rows.Err()
}

func (r *PlatformRepository) Update(ctx context.Context, p *domain.Platform) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE platforms SET name = ?, unit = ?, base_size_px = ?, ppi = ? WHERE id = ?`,
		p.Name, string(p.Unit), p.BaseSizePx, p.PPI, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update platform: %w", err)
	}
	return nil
}

func (r *PlatformRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM platforms WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete platform: %w", err)
	}
	return nil
}

func platformFromRow(row scanner) (*domain.Platform, error) {
	var p domain.Platform
	var unit, createdAt string
	if err := row.Scan(&p.ID, &p.BrandID, &p.Name, &unit, &p.BaseSizePx, &p.PPI, &createdAt); err != nil {
		return nil, err
	}
	p.Unit = units.Unit(unit)
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &p, nil
}
