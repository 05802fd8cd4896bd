// Package http provides the API server, router setup, and HTTP middleware.
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
	otelmetric "go.opentelemetry.io/otel/metric"

	cardsHTTP "github.com/edulearn/cardvault/internal/cards/http"
	"github.com/edulearn/cardvault/internal/config"
	"github.com/edulearn/cardvault/internal/metrics"
)

// Server represents the API HTTP server.
type Server struct {
	db            *sql.DB
	router        *gin.Engine
	server        *http.Server
	logger        *slog.Logger
	cfg           *config.Config
	cardHandler   *cardsHTTP.CardHandler
	meterProvider otelmetric.MeterProvider
}

// NewServer creates a new HTTP server. The card handler, config, and meter
// provider are attached separately so tests can construct a minimal server.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// WithConfig attaches the application configuration used during router setup.
func (s *Server) WithConfig(cfg *config.Config) *Server {
	s.cfg = cfg
	return s
}

// WithCardHandler attaches the card handler whose routes are registered under /v1.
func (s *Server) WithCardHandler(handler *cardsHTTP.CardHandler) *Server {
	s.cardHandler = handler
	return s
}

// WithMeterProvider attaches the meter provider for HTTP request metrics.
func (s *Server) WithMeterProvider(meterProvider otelmetric.MeterProvider) *Server {
	s.meterProvider = meterProvider
	return s
}

// SetupRouter builds the Gin router with the middleware chain and all routes.
func (s *Server) SetupRouter() *gin.Engine {
	router := gin.New()

	// Global middleware: recovery first, then request ID so every log line
	// and response carries one.
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if s.cfg != nil {
		if corsMiddleware := createCORSMiddleware(
			s.cfg.CORSEnabled,
			s.cfg.CORSAllowOrigins,
			s.logger,
		); corsMiddleware != nil {
			router.Use(corsMiddleware)
		}

		if s.cfg.RateLimitEnabled {
			router.Use(RateLimitMiddleware(
				s.cfg.RateLimitRequestsPerSec,
				s.cfg.RateLimitBurst,
				s.logger,
			))
		}
	}

	if s.meterProvider != nil && s.cfg != nil && s.cfg.MetricsEnabled {
		router.Use(metrics.HTTPMetricsMiddleware(s.meterProvider, s.cfg.MetricsNamespace))
	}

	// Health and readiness endpoints
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	// API routes
	if s.cardHandler != nil {
		v1 := router.Group("/v1")
		{
			v1.POST("/cards", s.cardHandler.CreateHandler)
			v1.GET("/cards", s.cardHandler.ListHandler)
			v1.GET("/cards/:id", s.cardHandler.GetHandler)
			v1.DELETE("/cards/:id", s.cardHandler.DeleteHandler)
		}
	}

	return router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic, checking
// each dependency individually.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else if err := s.db.PingContext(c.Request.Context()); err != nil {
		components["database"] = "error"
		ready = false
	} else {
		components["database"] = "ok"
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server. It blocks until the server stops.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		s.router = s.SetupRouter()
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
