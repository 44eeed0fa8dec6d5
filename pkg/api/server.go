// Package api implements the HTTP surface of the order gateway.
package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"

	"github.com/optiorder/vca-engine/internal/catalog"
	"github.com/optiorder/vca-engine/pkg/api/middleware"
	"github.com/optiorder/vca-engine/pkg/config"
	"github.com/optiorder/vca-engine/pkg/gateway"
	"github.com/optiorder/vca-engine/pkg/labclient"
	"github.com/optiorder/vca-engine/pkg/orders"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server wires the matching engine, codec and catalog provider behind
// HTTP routes. The pool is nil for seed-file installs.
type Server struct {
	config   *config.Config
	pool     *pgxpool.Pool
	provider catalog.Provider
	gateway  *gateway.Gateway
	orders   *orders.Store
	lab      *labclient.Client
	router   *gin.Engine
	server   *http.Server
}

// New creates the API server. The catalog provider is injected so tests
// and seed-file installs can run without a database.
func New(cfg *config.Config, pool *pgxpool.Pool, provider catalog.Provider) *Server {
	s := &Server{
		config:   cfg,
		pool:     pool,
		provider: provider,
		gateway:  gateway.New(provider),
		orders:   orders.NewStore(),
		lab:      labclient.New(cfg.LabEndpoint),
	}

	s.setupRouter()
	return s
}

func (s *Server) setupRouter() {
	gin.SetMode(gin.ReleaseMode)
	s.router = gin.New()
	s.router.Use(gin.Recovery())
	s.router.Use(middleware.Logger())
	s.router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(s.config.CORSOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           5 * time.Minute,
	}))

	// Health check
	s.router.GET("/health", s.handleHealth)

	// API routes
	api := s.router.Group("/api/v1")
	{
		api.POST("/convert", s.handleConvert)
		api.POST("/validate", s.handleValidate)
		api.POST("/match/:kind", s.handleMatch)
		api.GET("/catalog/:kind", s.handleCatalog)

		api.POST("/orders", s.handleCreateOrder)
		api.GET("/orders", s.handleListOrders)
		api.GET("/orders/:id", s.handleGetOrder)
		api.POST("/orders/:id/submit", s.handleSubmitOrder)
	}
}

// Router exposes the gin engine for handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// Start runs the HTTP server until interrupted, then shuts down
// gracefully.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         ":" + s.config.Port,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("port", s.config.Port).Info("Starting HTTP server")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server exited")
	return nil
}
