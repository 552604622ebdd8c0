package web

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/tokenforge/tokenforge/internal/domain"
	"github.com/tokenforge/tokenforge/internal/engine/typescale"
	"github.com/tokenforge/tokenforge/internal/engine/units"
	"github.com/tokenforge/tokenforge/internal/ports"
)

func (s *Server) handleAPIListBrands(w http.ResponseWriter, r *http.Request) {
	brands, err := s.brandRepo.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(brands)
}

func (s *Server) handleAPICreateBrand(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}

	brand := &domain.Brand{
		ID:        uuid.NewString(),
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.brandRepo.Create(r.Context(), brand); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(brand)
}

func (s *Server) handleAPIDeleteBrand(w http.ResponseWriter, r *http.Request) {
	if err := s.brandRepo.Delete(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAPIListPlatforms(w http.ResponseWriter, r *http.Request) {
	platforms, err := s.platformRepo.ListByBrand(r.Context(), r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(platforms)
}

type platformRequest struct {
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	BaseSizePx float64 `json:"base_size_px"`
	PPI        float64 `json:"ppi"`
}

func (s *Server) handleAPICreatePlatform(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	brand, err := s.brandRepo.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if brand == nil {
		http.NotFound(w, r)
		return
	}

	var req platformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "name is required", http.StatusBadRequest)
		return
	}
	if req.Unit == "" {
		req.Unit = string(units.Px)
	}

	platform := &domain.Platform{
		ID:         uuid.NewString(),
		BrandID:    brand.ID,
		Name:       req.Name,
		Unit:       units.Unit(req.Unit),
		BaseSizePx: req.BaseSizePx,
		PPI:        req.PPI,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.platformRepo.Create(ctx, platform); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(platform)
}

func (s *Server) handleAPIUpdatePlatform(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	platform, err := s.platformRepo.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if platform == nil {
		http.NotFound(w, r)
		return
	}

	var req platformRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name != "" {
		platform.Name = req.Name
	}
	if req.Unit != "" {
		platform.Unit = units.Unit(req.Unit)
	}
	if req.BaseSizePx > 0 {
		platform.BaseSizePx = req.BaseSizePx
	}
	if req.PPI > 0 {
		platform.PPI = req.PPI
	}

	if err := s.platformRepo.Update(ctx, platform); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(platform)
}

func (s *Server) handleAPIDeletePlatform(w http.ResponseWriter, r *http.Request) {
	if err := s.platformRepo.Delete(r.Context(), r.PathValue("id")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAPIGetPlatformScale returns the stored scale configuration together
// with the steps resolved in the platform's unit.
func (s *Server) handleAPIGetPlatformScale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	platform, err := s.platformRepo.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if platform == nil {
		http.NotFound(w, r)
		return
	}

	scale, err := s.scaleRepo.GetByPlatform(ctx, platform.ID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if scale == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"scale": scale,
		"steps": scale.Resolve(platform.Unit, platform.EffectiveBasePx()),
	})
}

func (s *Server) handleAPISavePlatformScale(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	platform, err := s.platformRepo.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if platform == nil {
		http.NotFound(w, r)
		return
	}

	var req scaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Ratio <= 1 {
		http.Error(w, "ratio must be greater than 1", http.StatusBadRequest)
		return
	}

	method := typescale.Method(req.Method)
	if method == "" {
		method = typescale.MethodModular
	}
	if method != typescale.MethodDistance && req.BaseSize <= 0 {
		http.Error(w, "base_size must be positive", http.StatusBadRequest)
		return
	}

	scale := &domain.TypeScale{
		ID:         uuid.NewString(),
		PlatformID: platform.ID,
		Method:     method,
		BaseSize:   req.BaseSize,
		Ratio:      req.Ratio,
		StepsUp:    req.StepsUp,
		StepsDown:  req.StepsDown,
		Distance:   req.Distance,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.scaleRepo.Save(ctx, scale); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	steps := scale.Resolve(platform.Unit, platform.EffectiveBasePx())

	_ = s.metrics.ExportGeneration(ctx, &ports.GenerationMetrics{
		Kind:      "scale",
		BrandID:   platform.BrandID,
		Steps:     int64(len(steps)),
		Persisted: true,
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"scale": scale,
		"steps": steps,
	})
}
