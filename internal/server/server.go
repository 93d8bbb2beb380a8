// Package server wires the HTTP surface: middleware, routes, and the Gin
// engine lifecycle.
package server

import (
	"fmt"
	"io"

	"github.com/truenorthmaterials/intake/internal/api/handlers"
	"github.com/truenorthmaterials/intake/internal/api/middleware"
	"github.com/truenorthmaterials/intake/internal/config"
	"github.com/truenorthmaterials/intake/internal/forms"
	"github.com/truenorthmaterials/intake/internal/logging"

	"github.com/gin-gonic/gin"
)

// Server represents the HTTP server
type Server struct {
	router   *gin.Engine
	cfg      *config.Config
	pipeline *forms.Pipeline
}

// NewServer creates a new server instance around the intake pipeline.
func NewServer(cfg *config.Config, pipeline *forms.Pipeline) *Server {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Gin's own logger is replaced by our request logger.
	gin.DisableConsoleColor()
	gin.DefaultWriter = io.Discard

	s := &Server{
		router:   gin.New(),
		cfg:      cfg,
		pipeline: pipeline,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Recovery())
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.RequestLogger())
	s.router.Use(middleware.CORS(s.cfg.AllowedOrigins))
	s.router.Use(middleware.SecurityHeaders())
	s.router.Use(middleware.RateLimitMiddleware(middleware.RateLimitConfig{
		RPS:   10,
		Burst: 20,
	}))

	healthHandler := handlers.NewHealthHandler()
	formsHandler := handlers.NewFormsHandler(s.pipeline)

	s.router.GET("/health", healthHandler.Check)

	v1 := s.router.Group("/api/v1")
	{
		// Public endpoint with its own tighter rate limit.
		v1.POST("/forms/submit",
			middleware.RateLimitMiddleware(middleware.RateLimitConfig{
				RPS:   1,
				Burst: 5,
			}),
			formsHandler.Submit,
		)
	}
}

// Router exposes the engine for tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the server until it fails or is terminated.
func (s *Server) Start() error {
	logger := logging.GetLogger()
	logger.Info("Listening on :%s", s.cfg.Port)
	return s.router.Run(fmt.Sprintf(":%s", s.cfg.Port))
}
