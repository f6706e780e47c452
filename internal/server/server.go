// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the pipeline operations as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/pdiddy/outreach-engine/internal/metrics"
	"github.com/pdiddy/outreach-engine/internal/pipeline"
	"github.com/pdiddy/outreach-engine/pkg/types"
)

// RequestIDHeader carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

const shutdownTimeout = 10 * time.Second

// Server serves the HTTP API.
type Server struct {
	svc       *pipeline.Service
	cfg       types.ServerConfig
	outputDir string
	logger    *zap.Logger
	metrics   *metrics.Collectors
	gatherer  prometheus.Gatherer
	engine    *gin.Engine
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the access and diagnostic logger.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records request metrics in m and serves g on /metrics.
func WithMetrics(m *metrics.Collectors, g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = m
		s.gatherer = g
	}
}

// New builds the router. Files under outputDir are served at /output.
func New(svc *pipeline.Service, cfg types.ServerConfig, outputDir string, opts ...Option) *Server {
	s := &Server{
		svc:       svc,
		cfg:       cfg,
		outputDir: outputDir,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), s.requestID(), s.accessLog())
	if cfg.CORS {
		c := cors.DefaultConfig()
		c.AllowAllOrigins = true
		c.AllowHeaders = append(c.AllowHeaders, RequestIDHeader)
		c.ExposeHeaders = []string{RequestIDHeader}
		r.Use(cors.New(c))
	}

	api := r.Group("/api")
	api.GET("/health", s.health)
	api.GET("/history", s.history)
	api.POST("/research", s.research)
	api.POST("/brief", s.brief)
	api.POST("/parse", s.parse)
	api.POST("/emails", s.emails)
	api.POST("/workflow", s.workflow)

	r.Static("/output", outputDir)
	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}
	s.engine = r
	return s
}

// Handler returns the router.
func (s *Server) Handler() http.Handler { return s.engine }

// Addr returns the listen address.
func (s *Server) Addr() string {
	return net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.Addr(),
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serving on %s: %w", srv.Addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}
	return nil
}

func (s *Server) requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDHeader, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		elapsed := time.Since(start)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		s.metrics.ObserveRequest(route, c.Writer.Status(), elapsed)
		s.logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", elapsed),
			zap.String("request_id", c.GetString(RequestIDHeader)))
	}
}
