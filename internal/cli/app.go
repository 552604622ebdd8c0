package cli

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tokenforge/tokenforge/internal/adapters/otel"
	"github.com/tokenforge/tokenforge/internal/adapters/turso"
	"github.com/tokenforge/tokenforge/internal/config"
	"github.com/tokenforge/tokenforge/internal/ports"
)

// AppContext holds all shared dependencies for CLI commands.
type AppContext struct {
	Config       *config.Config
	DB           *sql.DB
	BrandRepo    ports.BrandRepository
	PlatformRepo ports.PlatformRepository
	ScaleRepo    ports.TypeScaleRepository
	PaletteRepo  ports.PaletteRepository
	Metrics      ports.MetricsExporter
}

// NewAppContext creates an AppContext with all dependencies initialized.
func NewAppContext(ctx context.Context) (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	db, err := turso.NewDB(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &AppContext{
		Config:       cfg,
		DB:           db,
		BrandRepo:    turso.NewBrandRepository(db),
		PlatformRepo: turso.NewPlatformRepository(db),
		ScaleRepo:    turso.NewTypeScaleRepository(db),
		PaletteRepo:  turso.NewPaletteRepository(db),
		Metrics:      newMetricsExporter(ctx),
	}, nil
}

// newMetricsExporter returns the OTEL exporter when configured, falling back
// to a no-op so commands work without a collector.
func newMetricsExporter(ctx context.Context) ports.MetricsExporter {
	if exp, err := otel.NewExporter(ctx, otel.LoadConfig()); err == nil {
		return exp
	}
	return otel.NewNoOpExporter()
}

// Close releases all resources held by the AppContext.
func (a *AppContext) Close(ctx context.Context) error {
	if a.Metrics != nil {
		_ = a.Metrics.Close(ctx)
	}
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
