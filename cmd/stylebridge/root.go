package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/winstyles/stylebridge/configs"
	"github.com/winstyles/stylebridge/internal/audit"
	"github.com/winstyles/stylebridge/internal/bridge"
	"github.com/winstyles/stylebridge/internal/settings"
	"github.com/winstyles/stylebridge/internal/toolenv"
)

// errReported marks an error already shown to the user.
var errReported = errors.New("reported")

type rootOptions struct {
	embeddedConfig string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:   "stylebridge",
		Short: "Command bridge between a UI and the winstyles CLI",
		Long: `stylebridge turns typed requests into winstyles invocations
(<python> -m winstyles <operation> ...) and returns the tool's output or error.
It serves MCP over stdio or HTTP, a JSON API for the web UI, and one-shot calls.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.embeddedConfig, "embedded-config", "", "use embedded settings from configs/ (filename)")

	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newCallCmd(opts))
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the CLI and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

// loadSettings reads the embedded settings when requested, else the settings
// file, falling back to the embedded default when the file does not exist.
func loadSettings(path, embedded string, logger *slog.Logger) (*settings.Config, error) {
	if embedded != "" {
		raw, err := configs.Load(embedded)
		if err != nil {
			return nil, err
		}
		return settings.Load(raw)
	}
	cfg, err := settings.LoadFile(path)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if logger != nil {
		logger.Info("settings file not found, using embedded default", "path", path)
	}
	raw, err := configs.Load(configs.DefaultName)
	if err != nil {
		return nil, err
	}
	return settings.Load(raw)
}

func newBridge(cfg *settings.Config, logger *slog.Logger) *bridge.Bridge {
	return &bridge.Bridge{
		Resolver: toolenv.Resolver{Module: cfg.Tool.Module},
		Dir:      cfg.Tool.WorkDir,
		Logger:   logger,
		Audit:    audit.New(logger),
	}
}
