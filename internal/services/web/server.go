// Package web hosts the browser-facing Foodgram service.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/foodgram/foodgram/internal/platform/logging"
	"github.com/foodgram/foodgram/internal/platform/timeouts"
	"github.com/foodgram/foodgram/internal/services/web/app"
	"github.com/foodgram/foodgram/internal/services/web/modules"
	"github.com/foodgram/foodgram/internal/services/web/platform/httpx"
	"github.com/foodgram/foodgram/internal/services/web/platform/observability"
	"github.com/foodgram/foodgram/internal/services/web/routepath"
	webstatic "github.com/foodgram/foodgram/internal/services/web/static"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr string
	// Logger receives access logs; nil uses the process default.
	Logger *zap.Logger
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	metrics, err := observability.NewMetrics()
	if err != nil {
		return nil, fmt.Errorf("register metrics: %w", err)
	}
	h, err := app.Compose(app.ComposeInput{Modules: modules.DefaultModules()})
	if err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle(http.MethodGet+" "+routepath.Metrics, metrics.Handler())
	rootMux.Handle(routepath.Root, h)
	// Metrics and span naming stay innermost so they observe the pattern
	// the mux matched.
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Tracing("web"),
		observability.RequestLogger(logger),
		metrics.Middleware(),
		observability.RouteSpanName(),
	), nil
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		logging.Info(ctx, "web server listening", zap.String("addr", s.httpAddr))
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
