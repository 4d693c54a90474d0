package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Config stores environment-driven settings for the bridge process.
type Config struct {
	// SettingsPath is the path to the YAML settings file.
	SettingsPath string `env:"STYLEBRIDGE_CONFIG" envDefault:"stylebridge.yaml"`
	// LogLevel sets the logger level.
	LogLevel string `env:"STYLEBRIDGE_LOG_LEVEL" envDefault:"info"`
	// ShutdownTimeout controls graceful shutdown duration.
	ShutdownTimeout time.Duration `env:"STYLEBRIDGE_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load parses environment variables into Config.
func Load() (Config, error) {
	return env.ParseAs[Config]()
}

// LoadFrom parses Config from the given environment instead of the process one.
func LoadFrom(environ map[string]string) (Config, error) {
	return env.ParseAsWithOptions[Config](env.Options{Environment: environ})
}
