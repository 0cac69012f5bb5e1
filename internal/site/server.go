package site

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/exec"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ziadkadry99/helpnav/internal/pages"
)

// ServerConfig holds preview server configuration.
type ServerConfig struct {
	Port     int
	Dir      string // directory containing the built site
	AllowAll bool   // allow all CORS origins
}

// Server serves a built help site for local preview.
type Server struct {
	cfg        ServerConfig
	registry   *pages.Registry
	router     chi.Router
	httpServer *http.Server
}

// NewServer creates a preview server for the site in cfg.Dir.
func NewServer(cfg ServerConfig, registry *pages.Registry) *Server {
	s := &Server{cfg: cfg, registry: registry}
	s.router = s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	corsOpts := cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "HEAD", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/api/pages", s.handlePages)

	// Static files (must be registered after API routes).
	r.Handle("/*", http.FileServer(http.Dir(s.cfg.Dir)))

	return r
}

// pagesResponse is the JSON response for /api/pages.
type pagesResponse struct {
	Pages []pages.PageDescriptor `json:"pages"`
}

func (s *Server) handlePages(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(pagesResponse{Pages: s.registry.All()})
}

// Router returns the chi router.
func (s *Server) Router() chi.Router { return s.router }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	log.Printf("helpnav preview listening on %s (serving %s)", s.httpServer.Addr, s.cfg.Dir)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// Serve runs the preview server until ctx is cancelled, optionally opening
// the site in a browser.
func Serve(ctx context.Context, cfg ServerConfig, registry *pages.Registry, open bool) error {
	srv := NewServer(cfg, registry)

	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	if open {
		go openBrowser(fmt.Sprintf("http://localhost:%d", cfg.Port))
	}

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// openBrowser opens the given URL in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}
