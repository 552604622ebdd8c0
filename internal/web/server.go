// Package web serves the token dashboard and its JSON API.
package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"github.com/tokenforge/tokenforge/internal/ports"
)

//go:embed static/*
var staticFiles embed.FS

type Server struct {
	router       *http.ServeMux
	port         int
	brandRepo    ports.BrandRepository
	platformRepo ports.PlatformRepository
	scaleRepo    ports.TypeScaleRepository
	paletteRepo  ports.PaletteRepository
	metrics      ports.MetricsExporter
}

func NewServer(
	port int,
	br ports.BrandRepository,
	pr ports.PlatformRepository,
	sr ports.TypeScaleRepository,
	palr ports.PaletteRepository,
	me ports.MetricsExporter,
) *Server {
	s := &Server{
		router:       http.NewServeMux(),
		port:         port,
		brandRepo:    br,
		platformRepo: pr,
		scaleRepo:    sr,
		paletteRepo:  palr,
		metrics:      me,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	// Static files
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Health check
	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Pages
	s.router.HandleFunc("GET /", s.handleOverview)
	s.router.HandleFunc("GET /scale", s.handleScale)
	s.router.HandleFunc("GET /palettes", s.handlePalettes)
	s.router.HandleFunc("GET /palettes/{id}", s.handlePaletteDetail)

	// Derivation API
	s.router.HandleFunc("POST /api/scale", s.handleAPIScale)
	s.router.HandleFunc("POST /api/palette/preview", s.handleAPIPalettePreview)
	s.router.HandleFunc("GET /api/contrast", s.handleAPIContrast)

	// Palette management
	s.router.HandleFunc("GET /api/palettes", s.handleAPIListPalettes)
	s.router.HandleFunc("POST /api/palettes", s.handleAPICreatePalette)
	s.router.HandleFunc("PUT /api/palettes/{id}", s.handleAPIRegeneratePalette)
	s.router.HandleFunc("DELETE /api/palettes/{id}", s.handleAPIDeletePalette)

	// Brand and platform management
	s.router.HandleFunc("GET /api/brands", s.handleAPIListBrands)
	s.router.HandleFunc("POST /api/brands", s.handleAPICreateBrand)
	s.router.HandleFunc("DELETE /api/brands/{id}", s.handleAPIDeleteBrand)
	s.router.HandleFunc("GET /api/brands/{id}/platforms", s.handleAPIListPlatforms)
	s.router.HandleFunc("POST /api/brands/{id}/platforms", s.handleAPICreatePlatform)
	s.router.HandleFunc("PUT /api/platforms/{id}", s.handleAPIUpdatePlatform)
	s.router.HandleFunc("DELETE /api/platforms/{id}", s.handleAPIDeletePlatform)
	s.router.HandleFunc("GET /api/platforms/{id}/scale", s.handleAPIGetPlatformScale)
	s.router.HandleFunc("PUT /api/platforms/{id}/scale", s.handleAPISavePlatformScale)

	// Export
	s.router.HandleFunc("GET /api/export/palettes/{id}", s.handleAPIExportPalette)
	s.router.HandleFunc("GET /api/export/scale", s.handleAPIExportScale)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", s.port),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	fmt.Printf("Starting server at http://localhost:%d\n", s.port)

	// Handle graceful shutdown
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			fmt.Printf("Server shutdown error: %v\n", err)
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil // Graceful shutdown
	}
	return err
}
