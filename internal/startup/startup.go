package startup

import (
	"context"
	"log/slog"
	"strings"
)

// Prober reports the wrapped tool version.
type Prober interface {
	Probe(ctx context.Context) (string, error)
}

// Run probes the wrapped tool once before serving. A failed probe is logged
// and never stops startup: the tool may be installed later, and every call
// reports its own launch error anyway.
func Run(ctx context.Context, prober Prober, logger *slog.Logger) (string, bool) {
	if prober == nil {
		return "", false
	}
	output, err := prober.Probe(ctx)
	if err != nil {
		if logger != nil {
			logger.Warn("tool probe failed", "error", strings.TrimSpace(err.Error()))
		}
		return "", false
	}
	version := firstLine(output)
	if logger != nil {
		logger.Info("tool probe ok", "version", version)
	}
	return version, true
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexAny(s, "\r\n"); idx >= 0 {
		s = s[:idx]
	}
	return strings.TrimSpace(s)
}
