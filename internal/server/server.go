// Package server exposes the chatbot to the website widget over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/sant0-9/concierge/internal/chat"
	"github.com/sant0-9/concierge/internal/config"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	Engine *gin.Engine
	addr   string
	log    *zap.Logger
}

// New builds the router. reg receives the HTTP collectors and is served on
// /metrics; pass the registry the chat metrics were registered with.
func New(svc *chat.Service, cfg config.ServerConfig, reg *prometheus.Registry, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(log))
	engine.Use(newHTTPMetrics(reg).middleware())
	engine.Use(corsMiddleware(cfg.AllowedOrigins))

	h := &handlers{chat: svc, log: log}
	engine.GET("/healthz", h.health)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := engine.Group("/api")
	api.POST("/chat", h.ask)
	api.GET("/intents", h.intents)

	return &Server{Engine: engine, addr: cfg.Addr, log: log}
}

// Run serves until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("listening", zap.String("addr", s.addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
