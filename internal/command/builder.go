// Package command translates requests into argument vectors for the wrapped tool.
package command

import (
	"fmt"
	"strings"

	"github.com/winstyles/stylebridge/internal/request"
)

// Flag tokens understood by the wrapped tool.
const (
	flagCategory        = "-c"
	flagFormat          = "-f"
	flagModifiedOnly    = "--modified-only"
	flagIncludeDefaults = "--include-defaults"
	flagDryRun          = "--dry-run"
	flagSkipRestore     = "--skip-restore-point"
	flagAll             = "--all"
	formatJSON          = "json"
)

// Build returns the argument vector for req: -m <module> <operation>,
// positional paths, then flags. The tool is positional, so order is fixed.
func Build(module string, req request.Request) ([]string, error) {
	switch r := req.(type) {
	case request.Scan:
		args := prefix(module, request.OpScan)
		for _, category := range r.Categories {
			args = append(args, flagCategory, category)
		}
		args = appendFormat(args, r.Format)
		return appendFlag(args, flagModifiedOnly, r.ModifiedOnly), nil
	case request.Export:
		args := append(prefix(module, request.OpExport), r.Path)
		for _, category := range SplitCategories(r.Categories) {
			args = append(args, flagCategory, category)
		}
		return appendFlag(args, flagIncludeDefaults, r.IncludeDefaults), nil
	case request.Import:
		args := append(prefix(module, request.OpImport), r.Path)
		args = appendFlag(args, flagDryRun, r.DryRun)
		return appendFlag(args, flagSkipRestore, r.SkipRestore), nil
	case request.Inspect:
		args := append(prefix(module, request.OpInspect), r.Path)
		return append(args, flagFormat, formatJSON), nil
	case request.Diff:
		args := append(prefix(module, request.OpDiff), r.PathA, r.PathB, flagFormat, formatJSON)
		return appendFlag(args, flagAll, r.ShowAll), nil
	case request.Report:
		args := prefix(module, request.OpReport)
		return append(args, flagFormat, ReportFormat(r.Format)), nil
	case nil:
		return nil, fmt.Errorf("request is nil")
	default:
		return nil, fmt.Errorf("operation %s does not invoke the tool", req.Operation())
	}
}

// SplitCategories splits a comma-separated list, trimming pieces and dropping empties.
func SplitCategories(raw string) []string {
	var out []string
	for _, piece := range strings.Split(raw, ",") {
		piece = strings.TrimSpace(piece)
		if piece != "" {
			out = append(out, piece)
		}
	}
	return out
}

// ReportFormat normalizes a report format; anything but html is markdown.
func ReportFormat(format string) string {
	if strings.EqualFold(strings.TrimSpace(format), request.ReportHTML) {
		return request.ReportHTML
	}
	return request.ReportMarkdown
}

func prefix(module, operation string) []string {
	return []string{"-m", module, operation}
}

func appendFormat(args []string, format string) []string {
	if format == "" {
		return args
	}
	return append(args, flagFormat, format)
}

func appendFlag(args []string, flag string, enabled bool) []string {
	if !enabled {
		return args
	}
	return append(args, flag)
}
