package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/maksimkurb/wpa-netman/internal/config"
	"github.com/maksimkurb/wpa-netman/internal/log"
)

// Server represents the API server
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	cfg        *config.Config
}

// NewServer creates a new API server over the effective settings.
func NewServer(cfg *config.Config) *Server {
	s := &Server{
		cfg:    cfg,
		router: chi.NewRouter(),
	}

	// Setup middleware
	s.router.Use(Recovery)
	s.router.Use(Logger)
	s.router.Use(CORS)
	s.router.Use(JSONContentType)

	// Setup routes
	s.setupRoutes()

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         cfg.GetListenAddress(),
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	h := NewHandler(s.cfg)

	// API v1 routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Network fragment management
		r.Route("/networks", func(r chi.Router) {
			r.Get("/", h.GetNetworks)
			r.Post("/", h.CreateNetwork)
			r.Get("/{ssid}", h.GetNetwork)
			r.Put("/{ssid}", h.UpdateNetwork)
			r.Delete("/{ssid}", h.DeleteNetwork)
		})

		// Assembled document preview and publish
		r.Get("/document", h.PreviewDocument)
		r.Post("/document", h.PublishDocument)

		// Status endpoint
		r.Get("/status", h.GetStatus)

		// Interfaces endpoint
		r.Get("/interfaces", h.GetInterfaces)
	})

	// Health check endpoint at root
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	registerPprof(s.router)
}

// Start starts the API server
func (s *Server) Start() error {
	log.Infof("[API] Starting server on %s", s.httpServer.Addr)
	log.Infof("[API] Example: curl http://%s/api/v1/status", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

// Stop gracefully stops the API server
func (s *Server) Stop(ctx context.Context) error {
	log.Infof("[API] Shutting down server...")
	return s.httpServer.Shutdown(ctx)
}
