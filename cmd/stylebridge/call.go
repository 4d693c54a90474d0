package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/winstyles/stylebridge/internal/bridge"
	"github.com/winstyles/stylebridge/internal/config"
	"github.com/winstyles/stylebridge/internal/log"
	"github.com/winstyles/stylebridge/internal/request"
)

func newCallCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "call",
		Short: "Run a single bridge operation and print the tool output",
	}

	var scan request.Scan
	scanCmd := &cobra.Command{
		Use:   "scan",
		Short: "Scan the current system configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return invoke(cmd, root, scan)
		},
	}
	scanCmd.Flags().StringArrayVarP(&scan.Categories, "category", "c", nil, "category to scan (repeatable)")
	scanCmd.Flags().StringVarP(&scan.Format, "format", "f", "", "output format: table, json, yaml")
	scanCmd.Flags().BoolVar(&scan.ModifiedOnly, "modified-only", false, "only report modified items")

	var export request.Export
	exportCmd := &cobra.Command{
		Use:   "export <path>",
		Short: "Export a configuration package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			export.Path = args[0]
			return invoke(cmd, root, export)
		},
	}
	exportCmd.Flags().StringVarP(&export.Categories, "categories", "c", "", "comma-separated categories")
	exportCmd.Flags().BoolVar(&export.IncludeDefaults, "include-defaults", false, "include unmodified defaults")

	var imp request.Import
	importCmd := &cobra.Command{
		Use:   "import <path>",
		Short: "Apply a configuration package",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			imp.Path = args[0]
			return invoke(cmd, root, imp)
		},
	}
	importCmd.Flags().BoolVar(&imp.DryRun, "dry-run", false, "preview changes only")
	importCmd.Flags().BoolVar(&imp.SkipRestore, "skip-restore-point", false, "skip creating a restore point")

	inspectCmd := &cobra.Command{
		Use:   "inspect <path>",
		Short: "Show a configuration package as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return invoke(cmd, root, request.Inspect{Path: args[0]})
		},
	}

	var diff request.Diff
	diffCmd := &cobra.Command{
		Use:   "diff <path-a> <path-b>",
		Short: "Compare two configuration packages",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff.PathA, diff.PathB = args[0], args[1]
			return invoke(cmd, root, diff)
		},
	}
	diffCmd.Flags().BoolVar(&diff.ShowAll, "all", false, "include unchanged entries")

	var report request.Report
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Render a report of the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return invoke(cmd, root, report)
		},
	}
	reportCmd.Flags().StringVarP(&report.Format, "format", "f", request.ReportMarkdown, "markdown or html")

	openCmd := &cobra.Command{
		Use:   "open",
		Short: "Open the working directory in the file browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return invoke(cmd, root, request.OpenOutputFolder{})
		},
	}

	cmd.AddCommand(scanCmd, exportCmd, importCmd, inspectCmd, diffCmd, reportCmd, openCmd)
	return cmd
}

func invoke(cmd *cobra.Command, root *rootOptions, req request.Request) error {
	envCfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logger := log.NewWithWriter(envCfg.LogLevel, cmd.ErrOrStderr())
	cfg, err := loadSettings(envCfg.SettingsPath, root.embeddedConfig, nil)
	if err != nil {
		return err
	}
	return call(cmd.Context(), newBridge(cfg, logger), req, cmd.OutOrStdout(), cmd.ErrOrStderr())
}

func call(ctx context.Context, b *bridge.Bridge, req request.Request, stdout, stderr io.Writer) error {
	output, err := b.Run(ctx, req)
	if err != nil {
		pterm.Error.WithWriter(stderr).Println(describe(err))
		return errReported
	}
	if _, ok := req.(request.OpenOutputFolder); ok {
		pterm.Success.WithWriter(stderr).Println("output folder opened")
		return nil
	}
	_, err = io.WriteString(stdout, output)
	return err
}

// describe returns the text shown for a failed call. A tool that failed
// without writing to stderr is reported by its exit status.
func describe(err error) string {
	var be *bridge.Error
	if errors.As(err, &be) && be.Message == "" && be.Kind == bridge.KindExecution {
		return fmt.Sprintf("tool exited with status %d", be.ExitCode)
	}
	return err.Error()
}
