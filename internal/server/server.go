// Package server exposes the schedule generator over a read-only HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gauthierbraillon/curaplan/internal/logging"
	"github.com/gauthierbraillon/curaplan/internal/planner"
)

const serviceName = "curaplan"

// Config represents server configuration
type Config struct {
	Port         string
	GinMode      string
	CacheSize    int
	DefaultTone  planner.Tone
	DefaultDays  int
	Version      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// DefaultConfig returns default server configuration
func DefaultConfig(port string) Config {
	return Config{
		Port:         port,
		GinMode:      gin.ReleaseMode,
		CacheSize:    256,
		DefaultTone:  planner.TonePoetic,
		DefaultDays:  planner.DefaultDays,
		Version:      "dev",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// NewRouter wires middleware and routes around the engine.
func NewRouter(cfg Config, engine *planner.Engine, logger logging.Logger, metrics *Metrics) (*gin.Engine, error) {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	cache, err := NewScheduleCache(engine, cfg.CacheSize, metrics)
	if err != nil {
		return nil, err
	}
	handler := NewScheduleHandler(engine, cache, cfg.DefaultTone, cfg.DefaultDays, logger, metrics)

	router := gin.New()
	router.Use(RequestIDMiddleware())
	router.Use(LoggingMiddleware(logger))
	router.Use(RecoveryMiddleware(logger))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": serviceName,
			"version": cfg.Version,
		})
	})
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	api.GET("/schedule", handler.Schedule)
	api.GET("/tones", handler.Tones)

	return router, nil
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func Start(ctx context.Context, cfg Config, router http.Handler, logger logging.Logger) error {
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.WithFields(logging.Fields{
			"port":    cfg.Port,
			"service": serviceName,
		}).Info("Starting HTTP server")

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.WithField("service", serviceName).Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.WithField("service", serviceName).Info("Server stopped")
	return nil
}
