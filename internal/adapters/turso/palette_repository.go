package turso

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/tokenforge/tokenforge/internal/domain"
	"github.com/tokenforge/tokenforge/internal/engine/palette"
	"github.com/tokenforge/tokenforge/internal/ports"
	"github.com/tokenforge/tokenforge/internal/util"
)

type PaletteRepository struct {
	db *sql.DB
}

func NewPaletteRepository(db *sql.DB) *PaletteRepository {
	return &PaletteRepository{db: db}
}

func (r *PaletteRepository) Create(ctx context.Context, p *domain.ColorPalette) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO palettes (id, brand_id, name, base_hex, base_rgb, base_oklch, is_core, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, util.NullString(p.BrandID), p.Name,
		p.BaseColor.Hex, p.BaseColor.RGB, p.BaseColor.OKLCH,
		util.BoolToInt64(p.IsCore), p.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to create palette: %w", err)
	}

	if err := insertSteps(ctx, tx, p.ID, p.Steps); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PaletteRepository) GetByID(ctx context.Context, id string) (*domain.ColorPalette, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, brand_id, name, base_hex, base_rgb, base_oklch, is_core, created_at
		 FROM palettes WHERE id = ?`, id)

	p, err := paletteFromRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get palette: %w", err)
	}

	steps, err := r.loadSteps(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	p.Steps = steps
	return p, nil
}

func (r *PaletteRepository) List(ctx context.Context, opts ports.ListPalettesOptions) ([]*domain.ColorPalette, error) {
	query := `SELECT id, brand_id, name, base_hex, base_rgb, base_oklch, is_core, created_at FROM palettes`
	var args []any
	var where []string

	if opts.BrandID != nil {
		where = append(where, "brand_id = ?")
		args = append(args, *opts.BrandID)
	}
	if opts.CoreOnly {
		where = append(where, "is_core = 1")
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}
	query += " ORDER BY created_at DESC"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list palettes: %w", err)
	}
	defer rows.Close()

	var palettes []*domain.ColorPalette
	for rows.Next() {
		p, err := paletteFromRow(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan palette: %w", err)
		}
		palettes = append(palettes, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, p := range palettes {
		steps, err := r.loadSteps(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		p.Steps = steps
	}
	return palettes, nil
}

func (r *PaletteRepository) ReplaceSteps(ctx context.Context, p *domain.ColorPalette) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM palette_steps WHERE palette_id = ?`, p.ID); err != nil {
		return fmt.Errorf("failed to clear palette steps: %w", err)
	}
	if err := insertSteps(ctx, tx, p.ID, p.Steps); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *PaletteRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM palettes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete palette: %w", err)
	}
	return nil
}

func insertSteps(ctx context.Context, tx *sql.Tx, paletteID string, steps []palette.Step) error {
	for i, s := range steps {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO palette_steps
				(id, palette_id, position, name, hex, rgb, oklch, cmyk,
				 contrast_white, contrast_black, wcag_aa_normal, wcag_aa_large, wcag_aaa, is_base)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			s.ID, paletteID, i, s.Name,
			s.Values.Hex, s.Values.RGB, s.Values.OKLCH, util.NullString(s.Values.CMYK),
			s.Accessibility.ContrastWithWhite, s.Accessibility.ContrastWithBlack,
			util.BoolToInt64(s.Accessibility.WCAGAANormal),
			util.BoolToInt64(s.Accessibility.WCAGAALarge),
			util.BoolToInt64(s.Accessibility.WCAGAAA),
			util.BoolToInt64(s.IsBaseColor))
		if err != nil {
			return fmt.Errorf("failed to insert palette step %d: %w", i, err)
		}
	}
	return nil
}

func (r *PaletteRepository) loadSteps(ctx context.Context, paletteID string) ([]palette.Step, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, hex, rgb, oklch, cmyk,
			contrast_white, contrast_black, wcag_aa_normal, wcag_aa_large, wcag_aaa, is_base
		 FROM palette_steps WHERE palette_id = ? ORDER BY position`, paletteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load palette steps: %w", err)
	}
	defer rows.Close()

	var steps []palette.Step
	for rows.Next() {
		var (
			s                              palette.Step
			cmyk                           sql.NullString
			aaNormal, aaLarge, aaa, isBase int64
		)
		if err := rows.Scan(&s.ID, &s.Name, &s.Values.Hex, &s.Values.RGB, &s.Values.OKLCH, &cmyk,
			&s.Accessibility.ContrastWithWhite, &s.Accessibility.ContrastWithBlack,
			&aaNormal, &aaLarge, &aaa, &isBase); err != nil {
			return nil, fmt.Errorf("failed to scan palette step: %w", err)
		}
		if cmyk.Valid {
			s.Values.CMYK = cmyk.String
		}
		s.Accessibility.WCAGAANormal = aaNormal == 1
		s.Accessibility.WCAGAALarge = aaLarge == 1
		s.Accessibility.WCAGAAA = aaa == 1
		s.IsBaseColor = isBase == 1
		steps = append(steps, s)
	}
	return steps, rows.Err()
}

func paletteFromRow(row scanner) (*domain.ColorPalette, error) {
	var (
		p         domain.ColorPalette
		brandID   sql.NullString
		isCore    int64
		createdAt string
	)
	if err := row.Scan(&p.ID, &brandID, &p.Name,
		&p.BaseColor.Hex, &p.BaseColor.RGB, &p.BaseColor.OKLCH,
		&isCore, &createdAt); err != nil {
		return nil, err
	}
	if brandID.Valid {
		p.BrandID = brandID.String
	}
	p.IsCore = isCore == 1
	p.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &p, nil
}
