package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tokenforge/tokenforge/internal/domain"
	"github.com/tokenforge/tokenforge/internal/engine/typescale"
)

type TypeScaleRepository struct {
	db *sql.DB
}

func NewTypeScaleRepository(db *sql.DB) *TypeScaleRepository {
	return &TypeScaleRepository{db: db}
}

// Save upserts the scale configuration for its platform; a platform has at
// most one scale.
func (r *TypeScaleRepository) Save(ctx context.Context, s *domain.TypeScale) error {
	var (
		viewingDistance, visualAcuity, meanLengthRatio, ppi sql.NullFloat64
		textType, lighting                                  sql.NullString
	)
	if d := s.Distance; d != nil {
		viewingDistance = sql.NullFloat64{Float64: d.ViewingDistance, Valid: true}
		visualAcuity = sql.NullFloat64{Float64: d.VisualAcuity, Valid: true}
		meanLengthRatio = sql.NullFloat64{Float64: d.MeanLengthRatio, Valid: true}
		ppi = sql.NullFloat64{Float64: d.PPI, Valid: true}
		textType = sql.NullString{String: string(d.TextType), Valid: true}
		lighting = sql.NullString{String: string(d.Lighting), Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO type_scales
			(id, platform_id, method, base_size, ratio, steps_up, steps_down,
			 viewing_distance, visual_acuity, mean_length_ratio, text_type, lighting, ppi, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(platform_id) DO UPDATE SET
			method = excluded.method,
			base_size = excluded.base_size,
			ratio = excluded.ratio,
			steps_up = excluded.steps_up,
			steps_down = excluded.steps_down,
			viewing_distance = excluded.viewing_distance,
			visual_acuity = excluded.visual_acuity,
			mean_length_ratio = excluded.mean_length_ratio,
			text_type = excluded.text_type,
			lighting = excluded.lighting,
			ppi = excluded.ppi`,
		s.ID, s.PlatformID, string(s.Method), s.BaseSize, s.Ratio, s.StepsUp, s.StepsDown,
		viewingDistance, visualAcuity, meanLengthRatio, textType, lighting, ppi,
		s.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save type scale: %w", err)
	}
	return nil
}

func (r *TypeScaleRepository) GetByPlatform(ctx context.Context, platformID string) (*domain.TypeScale, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, platform_id, method, base_size, ratio, steps_up, steps_down,
			viewing_distance, visual_acuity, mean_length_ratio, text_type, lighting, ppi, created_at
		 FROM type_scales WHERE platform_id = ?`, platformID)

	s, err := typeScaleFromRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get type scale: %w", err)
	}
	return s, nil
}

func (r *TypeScaleRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM type_scales WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete type scale: %w", err)
	}
	return nil
}

func typeScaleFromRow(row scanner) (*domain.TypeScale, error) {
	var (
		s                                                   domain.TypeScale
		method, createdAt                                   string
		viewingDistance, visualAcuity, meanLengthRatio, ppi sql.NullFloat64
		textType, lighting                                  sql.NullString
	)
	if err := row.Scan(&s.ID, &s.PlatformID, &method, &s.BaseSize, &s.Ratio, &s.StepsUp, &s.StepsDown,
		&viewingDistance, &visualAcuity, &meanLengthRatio, &textType, &lighting, &ppi, &createdAt); err != nil {
		return nil, err
	}

	s.Method = typescale.Method(method)
	s.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	if viewingDistance.Valid {
		s.Distance = &typescale.DistanceConfig{
			ViewingDistance: viewingDistance.Float64,
			VisualAcuity:    visualAcuity.Float64,
			MeanLengthRatio: meanLengthRatio.Float64,
			TextType:        typescale.TextType(textType.String),
			Lighting:        typescale.Lighting(lighting.String),
			PPI:             ppi.Float64,
		}
	}
	return &s, nil
}
