package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	authapi "github.com/nitin-trapo/home-construction-ledger/internal/auth/api"
	authservice "github.com/nitin-trapo/home-construction-ledger/internal/auth/service"
	ledgerapi "github.com/nitin-trapo/home-construction-ledger/internal/ledger/api"
	projectapi "github.com/nitin-trapo/home-construction-ledger/internal/project/api"
)

// Server wraps the HTTP stack: gin engine, middleware chain, routes.
type Server struct {
	engine *gin.Engine
	logger *zap.Logger
	port   string
	server *http.Server
}

// NewServer assembles the middleware chain and mounts every module's
// routes under /api/v1. Auth/login stay public; everything else runs
// behind the JWT middleware.
func NewServer(
	logger *zap.Logger,
	cfgPort string,
	cfgMode string,
	authSvc *authservice.AuthService,
	authHandler *authapi.AuthHandler,
	ledgerHandler *ledgerapi.LedgerHandler,
	projectHandler *projectapi.ProjectHandler,
) *Server {

	if cfgMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Recovery first so a panic in any later layer still returns 500.
	r.Use(gin.Recovery())

	// Request logging through zap.
	r.Use(func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		cost := time.Since(start)
		logger.Info("HTTP Request",
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.String("ip", c.ClientIP()),
			zap.Duration("cost", cost),
		)
	})

	// CORS for the SPA.
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "UP"})
		})

		protected := v1.Group("", authapi.RequireAuth(authSvc))
		{
			authHandler.RegisterRoutes(protected)
			projectHandler.RegisterRoutes(protected)
			ledgerHandler.RegisterRoutes(protected)
		}
	}

	return &Server{
		engine: r,
		logger: logger,
		port:   cfgPort,
	}
}

// Run starts the HTTP server.
func (s *Server) Run() error {
	s.server = &http.Server{
		Addr:    ":" + s.port,
		Handler: s.engine,
	}
	s.logger.Info("ledger API server started", zap.String("port", s.port))
	return s.server.ListenAndServe()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
