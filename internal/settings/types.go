package settings

// Config is the top-level YAML settings file.
type Config struct {
	// Server describes the serving surfaces.
	Server ServerConfig `yaml:"server"`
	// Tool describes how the wrapped tool is invoked.
	Tool ToolConfig `yaml:"tool"`
	// API configures the HTTP JSON API used by the web UI.
	API APIConfig `yaml:"api"`
}

// ServerConfig defines server settings.
type ServerConfig struct {
	// Name is the MCP server name.
	Name string `yaml:"name"`
	// Version is the MCP server version.
	Version string `yaml:"version"`
	// Transport selects the server transport ("stdio" or "http").
	Transport string `yaml:"transport"`
	// ShutdownTimeout overrides graceful shutdown duration.
	ShutdownTimeout string `yaml:"shutdown_timeout"`
	// StartupProbe runs "<tool> --version" before serving.
	StartupProbe bool `yaml:"startup_probe"`
	// HTTP configures HTTP transport.
	HTTP HTTPConfig `yaml:"http"`
}

// HTTPConfig configures the HTTP transport.
type HTTPConfig struct {
	// Listen is the HTTP listen address.
	Listen string `yaml:"listen"`
	// Path is the MCP HTTP endpoint path.
	Path string `yaml:"path"`
	// ReadTimeout limits request read time.
	ReadTimeout string `yaml:"read_timeout"`
	// WriteTimeout limits response write time. Tool calls block until the
	// tool exits, so keep it generous.
	WriteTimeout string `yaml:"write_timeout"`
	// IdleTimeout controls idle connections.
	IdleTimeout string `yaml:"idle_timeout"`
	// Stateless disables MCP session tracking.
	Stateless bool `yaml:"stateless"`
}

// ToolConfig defines the wrapped tool invocation.
type ToolConfig struct {
	// Module is the module passed after -m.
	Module string `yaml:"module"`
	// WorkDir is the tool's working directory; empty inherits the bridge's.
	WorkDir string `yaml:"work_dir"`
}

// APIConfig defines the HTTP JSON API.
type APIConfig struct {
	// Enabled mounts the API on the HTTP transport.
	Enabled bool `yaml:"enabled"`
	// Prefix is the URL prefix for commands, e.g. /api/.
	Prefix string `yaml:"prefix"`
	// FrontendDir serves static files at / when set.
	FrontendDir string `yaml:"frontend_dir"`
	// RatePerMinute limits API calls; 0 disables limiting.
	RatePerMinute int `yaml:"rate_per_minute"`
}
