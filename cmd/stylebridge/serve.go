package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/winstyles/stylebridge/internal/api"
	"github.com/winstyles/stylebridge/internal/app"
	"github.com/winstyles/stylebridge/internal/bridge"
	"github.com/winstyles/stylebridge/internal/config"
	"github.com/winstyles/stylebridge/internal/http/health"
	"github.com/winstyles/stylebridge/internal/log"
	"github.com/winstyles/stylebridge/internal/runtime"
	"github.com/winstyles/stylebridge/internal/settings"
	"github.com/winstyles/stylebridge/internal/startup"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var transport string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the bridge over MCP (stdio or HTTP) and the web UI API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), root.embeddedConfig, transport)
		},
	}
	cmd.Flags().StringVar(&transport, "transport", "", "override server.transport (stdio or http)")
	return cmd
}

func runServe(parent context.Context, embedded, transport string) error {
	envCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logger := log.New(envCfg.LogLevel)

	cfg, err := loadSettings(envCfg.SettingsPath, embedded, logger)
	if err != nil {
		logger.Error("load settings failed", "error", err)
		return errReported
	}
	if transport != "" {
		cfg.Server.Transport = transport
		if err := settings.Validate(cfg); err != nil {
			logger.Error("invalid transport", "error", err)
			return errReported
		}
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	b := newBridge(cfg, logger)
	logger.Info("bridge configured", "target", b.String(), "transport", cfg.Server.Transport)

	healthHandler := health.New()
	if cfg.Server.StartupProbe {
		if version, ok := startup.Run(ctx, b, logger); ok {
			healthHandler.SetTool(version)
		}
	}

	server := runtime.Builder{Bridge: b, Logger: logger}.Build(cfg)

	switch cfg.Server.Transport {
	case settings.TransportStdio:
		err = server.Run(ctx, &mcp.StdioTransport{})
	default:
		err = runHTTP(ctx, envCfg, cfg, server, b, healthHandler, logger)
	}
	if err != nil && ctx.Err() == nil {
		logger.Error("runtime error", "error", err)
		return errReported
	}
	return nil
}

func runHTTP(ctx context.Context, envCfg config.Config, cfg *settings.Config, server *mcp.Server, b *bridge.Bridge, healthHandler *health.Handler, logger *slog.Logger) error {
	routes := map[string]http.Handler{
		cfg.Server.HTTP.Path: mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return server
		}, &mcp.StreamableHTTPOptions{
			Stateless: cfg.Server.HTTP.Stateless,
		}),
	}
	if cfg.API.Enabled {
		routes[cfg.API.Prefix] = api.New(b, cfg.API.Prefix, cfg.API.RatePerMinute, logger)
	}
	if cfg.API.FrontendDir != "" {
		routes["/"] = http.FileServer(http.Dir(cfg.API.FrontendDir))
	}

	application, err := app.New(ctx, cfg.Server, routes, healthHandler, logger, envCfg.ShutdownTimeout)
	if err != nil {
		return err
	}
	return application.Run(ctx)
}
