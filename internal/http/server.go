// Package http provides the API server, its middleware stack, and the
// standalone metrics server.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/sealbox/internal/config"
	"github.com/allisson/sealbox/internal/metrics"
	notesHTTP "github.com/allisson/sealbox/internal/notes/http"
)

// Server serves the notes API over HTTP.
type Server struct {
	server          *http.Server
	router          *gin.Engine
	cfg             *config.Config
	db              *sql.DB
	noteHandler     *notesHTTP.NoteHandler
	metricsProvider *metrics.Provider
	logger          *slog.Logger
}

// NewServer creates a new API server. The metrics provider may be nil, which
// disables HTTP metrics collection.
func NewServer(
	cfg *config.Config,
	db *sql.DB,
	noteHandler *notesHTTP.NoteHandler,
	metricsProvider *metrics.Provider,
	logger *slog.Logger,
) *Server {
	return &Server{
		cfg:             cfg,
		db:              db,
		noteHandler:     noteHandler,
		metricsProvider: metricsProvider,
		logger:          logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.ServerHost, cfg.ServerPort),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin router with the full middleware stack and all
// application routes.
//
// Middleware order matters: recovery first so panics in any later middleware
// are caught, then request IDs so the logger can include them. Authentication
// and rate limiting only guard the /v1 group, keeping /health and /ready open
// for probes.
func (s *Server) SetupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(s.cfg.CORSEnabled, s.cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if s.metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(s.metricsProvider.MeterProvider(), s.cfg.MetricsNamespace))
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if s.cfg.APIKeyHash != "" {
		v1.Use(APIKeyMiddleware(s.cfg.APIKeyHash, s.logger))
	}
	if s.cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(s.cfg.RateLimitRequestsPerSec, s.cfg.RateLimitBurst, s.logger))
	}

	notes := v1.Group("/notes")
	notes.POST("", s.noteHandler.CreateHandler)
	notes.GET("", s.noteHandler.ListHandler)
	notes.GET("/last", s.noteHandler.GetLastHandler)
	notes.GET("/:id", s.noteHandler.GetHandler)
	notes.GET("/:id/ciphertext", s.noteHandler.GetCiphertextHandler)

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic. It checks
// the database connection since every endpoint depends on it.
func (s *Server) readinessHandler(c *gin.Context) {
	dbStatus := "ok"
	if s.db == nil {
		dbStatus = "error"
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			dbStatus = "error"
		}
	}

	components := gin.H{"database": dbStatus}
	if dbStatus != "ok" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "components": components})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready", "components": components})
}

// GetHandler returns the HTTP handler, building the router on first use.
// Tests use it to drive the full middleware stack through httptest.
func (s *Server) GetHandler() http.Handler {
	if s.router == nil {
		s.router = s.SetupRouter()
	}
	return s.router
}

// Start starts the API server. It blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.GetHandler()

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
