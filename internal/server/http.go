package server

import (
	"context"
	"fmt"
	"net/http"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/collabhq/roster/internal/config"
	"github.com/collabhq/roster/internal/server/middlewares"
)

const (
	ProductionServer string = "prod"
	DevServer        string = "dev"
)

type Server struct {
	srv *http.Server
}

// NewServer assembles the gin engine. The auth gate runs on the engine
// itself so every route, present or future, is behind it; its allow-list
// decides which paths stay public.
func NewServer(cfg *config.Configuration, gate *middlewares.Gate, registerHandlerFn func(router *gin.RouterGroup)) (*Server, error) {
	gin.SetMode(gin.DebugMode)
	if cfg.Server.ServerMode == ProductionServer {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.Use(
		middlewares.Logger(),
		ginzap.RecoveryWithZap(zap.S().Desugar(), true),
		gate.Handler(),
	)

	engine.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "API endpoint not found",
		})
	})

	registerHandlerFn(engine.Group("/"))

	srv := &http.Server{
		Addr:    fmt.Sprintf("0.0.0.0:%d", cfg.Server.HTTPPort),
		Handler: engine,
	}

	return &Server{srv: srv}, nil
}

// Start starts the HTTP server and blocks until it stops.
func (r *Server) Start(ctx context.Context) error {
	return r.srv.ListenAndServe()
}

func (r *Server) Stop(ctx context.Context) {
	if err := r.srv.Shutdown(ctx); err != nil {
		zap.S().Errorw("server shutdown", "error", err)
	}
}
