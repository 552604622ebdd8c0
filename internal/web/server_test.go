package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tokenforge/tokenforge/internal/domain"
	"github.com/tokenforge/tokenforge/internal/engine/color"
	"github.com/tokenforge/tokenforge/internal/engine/palette"
	"github.com/tokenforge/tokenforge/internal/ports"
)

type mockBrandRepo struct {
	brands []*domain.Brand
}

func (m *mockBrandRepo) Create(ctx context.Context, b *domain.Brand) error {
	m.brands = append(m.brands, b)
	return nil
}

func (m *mockBrandRepo) GetByID(ctx context.Context, id string) (*domain.Brand, error) {
	for _, b := range m.brands {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, nil
}

func (m *mockBrandRepo) List(ctx context.Context) ([]*domain.Brand, error) {
	return m.brands, nil
}

func (m *mockBrandRepo) Delete(ctx context.Context, id string) error { return nil }

type mockPaletteRepo struct {
	palettes []*domain.ColorPalette
}

func (m *mockPaletteRepo) Create(ctx context.Context, p *domain.ColorPalette) error {
	m.palettes = append(m.palettes, p)
	return nil
}

func (m *mockPaletteRepo) GetByID(ctx context.Context, id string) (*domain.ColorPalette, error) {
	for _, p := range m.palettes {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockPaletteRepo) List(ctx context.Context, opts ports.ListPalettesOptions) ([]*domain.ColorPalette, error) {
	var out []*domain.ColorPalette
	for _, p := range m.palettes {
		if opts.BrandID != nil && p.BrandID != *opts.BrandID {
			continue
		}
		if opts.CoreOnly && !p.IsCore {
			continue
		}
		out = append(out, p)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out, nil
}

func (m *mockPaletteRepo) ReplaceSteps(ctx context.Context, p *domain.ColorPalette) error {
	for _, existing := range m.palettes {
		if existing.ID == p.ID {
			existing.Steps = p.Steps
			return nil
		}
	}
	return nil
}

func (m *mockPaletteRepo) Delete(ctx context.Context, id string) error {
	for i, p := range m.palettes {
		if p.ID == id {
			m.palettes = append(m.palettes[:i], m.palettes[i+1:]...)
			return nil
		}
	}
	return nil
}

type mockScaleRepo struct {
	scales map[string]*domain.TypeScale // keyed by platform ID
}

func (m *mockScaleRepo) Save(ctx context.Context, s *domain.TypeScale) error {
	if m.scales == nil {
		m.scales = make(map[string]*domain.TypeScale)
	}
	m.scales[s.PlatformID] = s
	return nil
}

func (m *mockScaleRepo) GetByPlatform(ctx context.Context, platformID string) (*domain.TypeScale, error) {
	return m.scales[platformID], nil
}

func (m *mockScaleRepo) Delete(ctx context.Context, id string) error { return nil }

type mockPlatformRepo struct {
	platforms []*domain.Platform
}

func (m *mockPlatformRepo) Create(ctx context.Context, p *domain.Platform) error {
	m.platforms = append(m.platforms, p)
	return nil
}

func (m *mockPlatformRepo) GetByID(ctx context.Context, id string) (*domain.Platform, error) {
	for _, p := range m.platforms {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockPlatformRepo) ListByBrand(ctx context.Context, brandID string) ([]*domain.Platform, error) {
	var out []*domain.Platform
	for _, p := range m.platforms {
		if p.BrandID == brandID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPlatformRepo) Update(ctx context.Context, p *domain.Platform) error { return nil }
func (m *mockPlatformRepo) Delete(ctx context.Context, id string) error          { return nil }

type mockMetrics struct {
	generations []ports.GenerationMetrics
}

func (m *mockMetrics) ExportGeneration(ctx context.Context, g *ports.GenerationMetrics) error {
	m.generations = append(m.generations, *g)
	return nil
}

func (m *mockMetrics) Close(ctx context.Context) error { return nil }

type testEnv struct {
	server    *Server
	brands    *mockBrandRepo
	platforms *mockPlatformRepo
	scales    *mockScaleRepo
	palettes  *mockPaletteRepo
	metrics   *mockMetrics
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		brands:    &mockBrandRepo{},
		platforms: &mockPlatformRepo{},
		scales:    &mockScaleRepo{},
		palettes:  &mockPaletteRepo{},
		metrics:   &mockMetrics{},
	}
	env.server = NewServer(0, env.brands, env.platforms, env.scales, env.palettes, env.metrics)
	return env
}

func (e *testEnv) do(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.server.router.ServeHTTP(rec, req)
	return rec
}

func seedPalette(env *testEnv, id, name string) *domain.ColorPalette {
	steps, _ := palette.Generate(color.ConvertToAllFormats("#3264C8"), 5, true, palette.Options{})
	p := &domain.ColorPalette{
		ID:        id,
		Name:      name,
		BaseColor: color.ConvertToAllFormats("#3264C8"),
		Steps:     steps,
		CreatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	env.palettes.palettes = append(env.palettes.palettes, p)
	return p
}

func TestServerFieldsAreInterfaces(t *testing.T) {
	s := &Server{}
	var _ ports.BrandRepository = s.brandRepo       //nolint:staticcheck
	var _ ports.PlatformRepository = s.platformRepo //nolint:staticcheck
	var _ ports.TypeScaleRepository = s.scaleRepo   //nolint:staticcheck
	var _ ports.PaletteRepository = s.paletteRepo   //nolint:staticcheck
	var _ ports.MetricsExporter = s.metrics         //nolint:staticcheck
}

func TestHealth(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.String() != "ok" {
		t.Errorf("expected body ok, got %q", rec.Body.String())
	}
}

func TestOverviewPage(t *testing.T) {
	env := newTestEnv(t)
	seedPalette(env, "p1", "Primary")

	rec := env.do(httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Primary") {
		t.Errorf("overview should list the seeded palette")
	}
}

func TestScalePage(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httptest.NewRequest(http.MethodGet, "/scale?base=16&ratio=1.25&up=1&down=1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"f-1", "f0", "f1", "12.8px", "16px", "20px"} {
		if !strings.Contains(body, want) {
			t.Errorf("scale page missing %q", want)
		}
	}
}

func TestPaletteDetailPage(t *testing.T) {
	env := newTestEnv(t)
	seedPalette(env, "p1", "Primary")

	rec := env.do(httptest.NewRequest(http.MethodGet, "/palettes/p1", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	rec = env.do(httptest.NewRequest(http.MethodGet, "/palettes/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 for unknown palette, got %d", rec.Code)
	}
}
