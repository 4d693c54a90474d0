package settings

import (
	"fmt"
	"strings"
	"time"
)

// Transports.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Validate applies defaults and verifies required fields.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if strings.TrimSpace(cfg.Server.Name) == "" {
		cfg.Server.Name = "stylebridge"
	}
	if strings.TrimSpace(cfg.Server.Version) == "" {
		return fmt.Errorf("server.version is required")
	}

	cfg.Server.Transport = strings.ToLower(strings.TrimSpace(cfg.Server.Transport))
	switch cfg.Server.Transport {
	case "":
		cfg.Server.Transport = TransportStdio
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("server.transport must be stdio or http")
	}

	if cfg.Server.HTTP.Listen == "" {
		cfg.Server.HTTP.Listen = "127.0.0.1:8000"
	}
	if cfg.Server.HTTP.Path == "" {
		cfg.Server.HTTP.Path = "/mcp"
	}
	if !strings.HasPrefix(cfg.Server.HTTP.Path, "/") {
		return fmt.Errorf("server.http.path must start with /")
	}
	durations := map[string]string{
		"server.shutdown_timeout":   cfg.Server.ShutdownTimeout,
		"server.http.read_timeout":  cfg.Server.HTTP.ReadTimeout,
		"server.http.write_timeout": cfg.Server.HTTP.WriteTimeout,
		"server.http.idle_timeout":  cfg.Server.HTTP.IdleTimeout,
	}
	for field, value := range durations {
		if strings.TrimSpace(value) == "" {
			continue
		}
		if _, err := time.ParseDuration(value); err != nil {
			return fmt.Errorf("%s is invalid: %w", field, err)
		}
	}

	if strings.TrimSpace(cfg.Tool.Module) == "" {
		cfg.Tool.Module = "winstyles"
	}

	if cfg.API.Prefix == "" {
		cfg.API.Prefix = "/api/"
	}
	if !strings.HasPrefix(cfg.API.Prefix, "/") {
		return fmt.Errorf("api.prefix must start with /")
	}
	if !strings.HasSuffix(cfg.API.Prefix, "/") {
		cfg.API.Prefix += "/"
	}
	if cfg.API.Prefix == cfg.Server.HTTP.Path || cfg.API.Prefix == cfg.Server.HTTP.Path+"/" {
		return fmt.Errorf("api.prefix must differ from server.http.path")
	}
	if cfg.API.RatePerMinute < 0 {
		return fmt.Errorf("api.rate_per_minute must be >= 0")
	}
	return nil
}

// DurationOr parses value and returns def on empty or invalid input.
func DurationOr(value string, def time.Duration) time.Duration {
	if strings.TrimSpace(value) == "" {
		return def
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return def
	}
	return parsed
}
