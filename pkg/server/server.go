// Package server provides the HTTP server lifecycle for doc-center.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	httpopts "github.com/kart-io/doc-center/pkg/options/http"
)

// Server wraps an HTTP server with graceful shutdown.
type Server struct {
	opts   *httpopts.Options
	engine *gin.Engine
	srv    *http.Server
}

// New creates a Server with a configured gin engine.
// Routes are registered on Engine() before Run is called.
func New(opts *httpopts.Options) *Server {
	gin.SetMode(opts.Mode)

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())
	engine.MaxMultipartMemory = opts.MaxUploadSize

	if opts.EnableCORS {
		corsCfg := cors.DefaultConfig()
		if len(opts.CORSAllowOrigins) == 1 && opts.CORSAllowOrigins[0] == "*" {
			corsCfg.AllowAllOrigins = true
		} else {
			corsCfg.AllowOrigins = opts.CORSAllowOrigins
		}
		corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
		engine.Use(cors.New(corsCfg))
	}

	return &Server{
		opts:   opts,
		engine: engine,
		srv: &http.Server{
			Addr:         opts.Addr,
			Handler:      engine,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
			IdleTimeout:  opts.IdleTimeout,
		},
	}
}

// Engine returns the underlying gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the server and blocks until SIGINT/SIGTERM, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP server listening on %s", s.opts.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Infof("Received signal %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		logger.Errorf("Graceful shutdown failed: %v", err)
		return err
	}
	logger.Info("HTTP server stopped")
	return nil
}

// requestLogger logs each request with method, path, and status.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		if c.Request.URL.Path == "/healthz" {
			return
		}
		logger.Infow("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"client", c.ClientIP(),
		)
	}
}
