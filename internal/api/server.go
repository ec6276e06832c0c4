// Copyright (c) 2026 Mustafa Zahid Official. All rights reserved.
// Author: Shahzada Shoaib

/*
Package api wires together the HTTP router, middleware chain, and all
content handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/content/blog"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/content/class"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/content/qawwal"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/content/singer"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/config"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/constants"
	"github.com/Shahzada-Shoaib/mustafa-zahid-sub001/internal/platform/middleware"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all content-kind HTTP handler sets.
//
// # Usage
//
// New content kinds add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Singer manages playback artist profiles.
	Singer *singer.Handler

	// Qawwal manages qawwali artist profiles.
	Qawwal *qawwal.Handler

	// Blog manages blog posts.
	Blog *blog.Handler

	// Class manages music class pages.
	Class *class.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// One route group per content kind, shared by the dashboard and the
	// public site.
	r.Route("/api", func(api chi.Router) {
		api.Mount("/singers", h.Singer.Routes())
		api.Mount("/qawwals", h.Qawwal.Routes())
		api.Mount("/blogs", h.Blog.Routes())
		api.Mount("/classes", h.Class.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
