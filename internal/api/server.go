// Copyright (c) 2026 Classboard. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Access decisions are made per route by each domain handler, not globally.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/classboard/internal/content/post"
	"github.com/taibuivan/classboard/internal/platform/config"
	"github.com/taibuivan/classboard/internal/platform/constants"
	"github.com/taibuivan/classboard/internal/platform/middleware"
	"github.com/taibuivan/classboard/internal/users/account"
	"github.com/taibuivan/classboard/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
	certFile   string
	keyFile    string
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler. It returns 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler. It returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles registration and login.
	Auth *auth.Handler

	// Users manages account lookup, profile edits, and deletion.
	Users *account.Handler

	// Posts serves the classroom post board.
	Posts *post.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
func NewServer(cfg *config.Config, log *slog.Logger, h Handlers) *Server {
	r := NewRouter(cfg, log, h)

	server := &Server{
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

	if cfg.TLSEnabled() {
		server.certFile = cfg.TLSCertFile
		server.keyFile = cfg.TLSKeyFile
	}

	return server
}

// NewRouter builds the routing tree without binding a listener.
func NewRouter(cfg *config.Config, log *slog.Logger, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.CORS(cfg.CORSOrigins, cfg.IsDevelopment()))
	r.Use(chimw.CleanPath)

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/users", h.Users.Routes())
		api.Mount("/posts", h.Posts.Routes())
	})

	return r
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server, over TLS when a certificate pair
// is configured.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	if s.certFile != "" {
		s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr), slog.Bool("tls", true))
		return s.httpServer.ListenAndServeTLS(s.certFile, s.keyFile)
	}

	s.log.Info("server_starting", slog.String("addr", s.httpServer.Addr), slog.Bool("tls", false))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
