package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tokenforge/tokenforge/internal/domain"
	"github.com/tokenforge/tokenforge/internal/engine/color"
	"github.com/tokenforge/tokenforge/internal/engine/palette"
	"github.com/tokenforge/tokenforge/internal/engine/typescale"
	"github.com/tokenforge/tokenforge/internal/engine/units"
	"github.com/tokenforge/tokenforge/internal/ports"
	"github.com/tokenforge/tokenforge/internal/util"
)

type scaleRequest struct {
	Method    string                    `json:"method"`
	BaseSize  float64                   `json:"base_size"`
	Ratio     float64                   `json:"ratio"`
	StepsUp   int                       `json:"steps_up"`
	StepsDown int                       `json:"steps_down"`
	Unit      string                    `json:"unit"`
	BasePx    float64                   `json:"base_px"`
	Distance  *typescale.DistanceConfig `json:"distance,omitempty"`
}

func (s *Server) handleAPIScale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req scaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	baseSize := req.BaseSize
	if typescale.Method(req.Method) == typescale.MethodDistance && req.Distance != nil {
		baseSize = typescale.DistanceBasedSize(*req.Distance)
	}
	if baseSize <= 0 {
		http.Error(w, "base_size must be positive", http.StatusBadRequest)
		return
	}
	if req.Ratio <= 1 {
		http.Error(w, "ratio must be greater than 1", http.StatusBadRequest)
		return
	}

	unit := units.Unit(req.Unit)
	if unit == "" {
		unit = units.Px
	}

	steps := typescale.Calculate(baseSize, req.Ratio, req.StepsUp, req.StepsDown, unit, req.BasePx)

	_ = s.metrics.ExportGeneration(ctx, &ports.GenerationMetrics{
		Kind:  "scale",
		Steps: int64(len(steps)),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"base_size": baseSize,
		"unit":      string(unit),
		"steps":     steps,
	})
}

type palettePreviewRequest struct {
	BaseColor     string          `json:"base_color"`
	NumSteps      int             `json:"num_steps"`
	VaryLightness *bool           `json:"vary_lightness,omitempty"`
	Options       palette.Options `json:"options"`
}

// baseValues routes the raw input into the field the generator treats as
// that format, so an unresolvable color fails generation instead of being
// coerced to black.
func (req *palettePreviewRequest) baseValues() color.Values {
	s := strings.TrimSpace(req.BaseColor)
	switch {
	case s == "":
		return color.Values{}
	case strings.HasPrefix(s, "oklch"):
		return color.Values{OKLCH: s}
	case strings.HasPrefix(s, "rgb"):
		return color.Values{RGB: s}
	default:
		return color.Values{Hex: s}
	}
}

func (req *palettePreviewRequest) generate() ([]palette.Step, error) {
	vary := true
	if req.VaryLightness != nil {
		vary = *req.VaryLightness
	}

	return palette.Generate(req.baseValues(), req.NumSteps, vary, req.Options)
}

func (s *Server) handleAPIPalettePreview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req palettePreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	steps, err := req.generate()
	if err != nil {
		var genErr *palette.GenerationError
		if errors.As(err, &genErr) {
			http.Error(w, genErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_ = s.metrics.ExportGeneration(ctx, &ports.GenerationMetrics{
		Kind:  "palette",
		Steps: int64(len(steps)),
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"steps": steps})
}

func (s *Server) handleAPIContrast(w http.ResponseWriter, r *http.Request) {
	fg := r.URL.Query().Get("fg")
	if fg == "" {
		http.Error(w, "fg parameter is required", http.StatusBadRequest)
		return
	}
	bg := r.URL.Query().Get("bg")
	if bg == "" {
		bg = "#FFFFFF"
	}

	ratio := color.Contrast(fg, bg)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"contrast":       ratio,
		"formatted":      util.FormatContrast(ratio),
		"wcag_aa_large":  ratio >= 3.0,
		"wcag_aa_normal": ratio >= 4.5,
		"wcag_aaa":       ratio >= 7.0,
	})
}

type createPaletteRequest struct {
	palettePreviewRequest
	Name    string `json:"name"`
	BrandID string `json:"brand_id,omitempty"`
	IsCore  bool   `json:"is_core,omitempty"`
}

func (s *Server) handleAPICreatePalette(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createPaletteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	steps, err := req.generate()
	if err != nil {
		var genErr *palette.GenerationError
		if errors.As(err, &genErr) {
			http.Error(w, genErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var base color.Values
	if req.BaseColor != "" {
		base = color.ConvertToAllFormats(req.BaseColor)
	} else if len(steps) > 0 {
		base = steps[len(steps)/2].Values
	}

	p := &domain.ColorPalette{
		ID:        uuid.NewString(),
		BrandID:   req.BrandID,
		Name:      req.Name,
		BaseColor: base,
		Steps:     steps,
		IsCore:    req.IsCore,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.paletteRepo.Create(ctx, p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_ = s.metrics.ExportGeneration(ctx, &ports.GenerationMetrics{
		Kind:      "palette",
		BrandID:   p.BrandID,
		Steps:     int64(len(steps)),
		Persisted: true,
	})

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(p)
}

// handleAPIRegeneratePalette regenerates a stored palette's steps from new
// parameters, swapping them atomically.
func (s *Server) handleAPIRegeneratePalette(w http.ResponseWriter, r *http.Request) {
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

	var req palettePreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	steps, err := req.generate()
	if err != nil {
		var genErr *palette.GenerationError
		if errors.As(err, &genErr) {
			http.Error(w, genErr.Error(), http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	p.Steps = steps
	if req.BaseColor != "" {
		p.BaseColor = color.ConvertToAllFormats(req.BaseColor)
	}

	if err := s.paletteRepo.ReplaceSteps(ctx, p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	_ = s.metrics.ExportGeneration(ctx, &ports.GenerationMetrics{
		Kind:      "palette",
		BrandID:   p.BrandID,
		Steps:     int64(len(steps)),
		Persisted: true,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}

func (s *Server) handleAPIListPalettes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	opts := ports.ListPalettesOptions{}
	if brandID := r.URL.Query().Get("brand"); brandID != "" {
		opts.BrandID = &brandID
	}
	if core, _ := strconv.ParseBool(r.URL.Query().Get("core")); core {
		opts.CoreOnly = true
	}
	if limit, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil && limit > 0 {
		opts.Limit = limit
	}

	palettes, err := s.paletteRepo.List(ctx, opts)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(palettes)
}

func (s *Server) handleAPIDeletePalette(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := s.paletteRepo.Delete(ctx, r.PathValue("id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
