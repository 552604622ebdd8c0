package web

import (
	"fmt"
	"net/http"

	"github.com/tokenforge/tokenforge/internal/export"
)

func (s *Server) handleAPIExportPalette(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	p, err := s.paletteRepo.GetByID(ctx, r.PathValue("id"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}

	out, err := export.Palette(p.Name, p.Steps, format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=palette-tokens.%s", format))
	_, _ = w.Write([]byte(out))
}

func (s *Server) handleAPIExportScale(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	sq := parseScaleQuery(r.URL.Query())
	steps := sq.calculate()

	out, err := export.Scale(steps, sq.Unit, format)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", format.ContentType())
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=scale-tokens.%s", format))
	_, _ = w.Write([]byte(out))
}
