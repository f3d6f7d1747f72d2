// Package server serves user records one page at a time over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/javiermolinar/pagetable/internal/config"
	"github.com/javiermolinar/pagetable/internal/store"
)

const shutdownTimeout = 10 * time.Second

// Server is the data source HTTP server.
type Server struct {
	src     store.Source
	cfg     config.ServerConfig
	engine  *gin.Engine
	metrics *metrics
	logf    func(format string, args ...any)
}

// New builds a server over src. The source is not closed by the server.
func New(cfg config.ServerConfig, src store.Source) *Server {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	s := &Server{
		src:  src,
		cfg:  cfg,
		logf: log.Printf,
	}
	s.metrics = newMetrics(func() float64 {
		n, err := src.Total(context.Background())
		if err != nil {
			return 0
		}
		return float64(n)
	})
	s.engine = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), Logger(), gin.Recovery(), CORS(s.cfg.CORSOrigins), Metrics(s.metrics))

	if err := r.SetTrustedProxies(nil); err != nil {
		s.logf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/", s.root)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})))

	api := r.Group("/api")
	{
		api.GET("/health", s.health)
		api.GET("/users", s.users)
	}
	return r
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logf("Server running at %s", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listening on %s: %w", s.cfg.Addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		s.logf("Server stopped")
		return nil
	})
	return g.Wait()
}
