package web

import (
	"net/http"

	"github.com/tokenforge/tokenforge/internal/ports"
	"github.com/tokenforge/tokenforge/internal/web/templates"
)

func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	data := templates.OverviewData{}

	if brands, err := s.brandRepo.List(ctx); err == nil {
		data.BrandCount = len(brands)
	}

	palettes, err := s.paletteRepo.List(ctx, ports.ListPalettesOptions{})
	if err == nil {
		data.PaletteCount = len(palettes)
		for _, p := range palettes {
			if p.IsCore {
				data.CoreCount++
			}
		}
		recent := palettes
		if len(recent) > 5 {
			recent = recent[:5]
		}
		for _, p := range recent {
			data.Recent = append(data.Recent, buildPaletteSummary(p))
		}
	}

	_ = templates.Overview(data).Render(ctx, w)
}

func (s *Server) handleScale(w http.ResponseWriter, r *http.Request) {
	sq := parseScaleQuery(r.URL.Query())
	data := buildScaleView(sq, r.URL.RawQuery)
	_ = templates.ScalePage(data).Render(r.Context(), w)
}

func (s *Server) handlePalettes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	palettes, err := s.paletteRepo.List(ctx, ports.ListPalettesOptions{})
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	items := make([]templates.PaletteSummary, 0, len(palettes))
	for _, p := range palettes {
		items = append(items, buildPaletteSummary(p))
	}
	_ = templates.PaletteList(items).Render(ctx, w)
}

func (s *Server) handlePaletteDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, err := s.paletteRepo.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}

	_ = templates.PaletteDetail(buildPaletteDetail(p)).Render(ctx, w)
}
