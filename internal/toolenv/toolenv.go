package toolenv

import (
	"strings"

	"github.com/caarlos0/env/v11"
)

// Defaults for the wrapped tool.
const (
	DefaultExecutable = "python"
	DefaultModule     = "winstyles"
)

type lookup struct {
	// Executable overrides the interpreter used to run the tool.
	Executable string `env:"PYTHON"`
}

// Resolver resolves the tool executable and child environment.
// It reads the environment on every call and keeps no state between calls.
type Resolver struct {
	// Module is the module passed after -m. Empty means DefaultModule.
	Module string
	// Environ replaces the process environment when non-nil.
	Environ map[string]string
}

// Executable returns PYTHON exactly as set, or DefaultExecutable when it is
// unset, empty or only whitespace.
func (r Resolver) Executable() string {
	values, err := env.ParseAsWithOptions[lookup](env.Options{Environment: r.Environ})
	if err != nil || strings.TrimSpace(values.Executable) == "" {
		return DefaultExecutable
	}
	return values.Executable
}

// ModuleName returns the module name passed to the executable.
func (r Resolver) ModuleName() string {
	if strings.TrimSpace(r.Module) == "" {
		return DefaultModule
	}
	return strings.TrimSpace(r.Module)
}

// Environment returns the variables that force UTF-8 text mode in the child.
// The map is fresh on every call; callers merge it over the inherited environment.
func (r Resolver) Environment() map[string]string {
	return map[string]string{
		"PYTHONIOENCODING": "utf-8",
		"PYTHONUTF8":       "1",
	}
}
