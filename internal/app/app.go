package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/winstyles/stylebridge/internal/http/health"
	"github.com/winstyles/stylebridge/internal/settings"
)

// App controls the HTTP server lifecycle.
type App struct {
	baseCtx         context.Context
	server          *http.Server
	health          *health.Handler
	logger          *slog.Logger
	shutdownTimeout time.Duration
}

// New initializes the HTTP server with health endpoints and the given routes.
func New(baseCtx context.Context, serverCfg settings.ServerConfig, routes map[string]http.Handler, healthHandler *health.Handler, logger *slog.Logger, shutdownTimeout time.Duration) (*App, error) {
	if baseCtx == nil {
		return nil, errors.New("app: nil base context")
	}
	if len(routes) == 0 {
		return nil, errors.New("app: at least one route is required")
	}
	if healthHandler == nil {
		healthHandler = health.New()
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", healthHandler.Healthz)
	mux.HandleFunc("/readyz", healthHandler.Readyz)
	for path, route := range routes {
		if strings.TrimSpace(path) == "" || route == nil {
			continue
		}
		mux.Handle(path, route)
	}

	// The write timeout must cover the slowest tool run (full scans, exports).
	srv := &http.Server{
		Addr:         serverCfg.HTTP.Listen,
		Handler:      mux,
		ReadTimeout:  settings.DurationOr(serverCfg.HTTP.ReadTimeout, 15*time.Second),
		WriteTimeout: settings.DurationOr(serverCfg.HTTP.WriteTimeout, 10*time.Minute),
		IdleTimeout:  settings.DurationOr(serverCfg.HTTP.IdleTimeout, 60*time.Second),
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}

	if shutdownTimeout == 0 {
		shutdownTimeout = settings.DurationOr(serverCfg.ShutdownTimeout, 10*time.Second)
	}

	return &App{
		baseCtx:         baseCtx,
		server:          srv,
		health:          healthHandler,
		logger:          logger,
		shutdownTimeout: shutdownTimeout,
	}, nil
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run binds the listen address, serves until ctx is cancelled and then shuts
// down gracefully. Readiness flips only once the address is bound.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.server.Addr, err)
	}
	return a.Serve(ctx, ln)
}

// Serve is Run on an already bound listener.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	served := make(chan error, 1)
	go func() { served <- a.server.Serve(ln) }()

	a.health.SetReady()
	if a.logger != nil {
		a.logger.Info("http server listening", "addr", ln.Addr().String())
	}

	select {
	case <-ctx.Done():
		if a.logger != nil {
			a.logger.Info("shutdown requested")
		}
		return a.shutdown()
	case err := <-served:
		a.health.SetNotReady()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if a.logger != nil {
			a.logger.Error("http server stopped", "error", err)
		}
		return err
	}
}

func (a *App) shutdown() error {
	a.health.SetNotReady()
	ctx, cancel := context.WithTimeout(context.WithoutCancel(a.baseCtx), a.shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
