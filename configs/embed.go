// Package configs embeds the settings files shipped with the binary.
package configs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

// DefaultName is the embedded settings used when no settings file exists.
const DefaultName = "default.yaml"

//go:embed *.yaml
var files embed.FS

// Names lists the embedded settings files in lexical order.
func Names() []string {
	names, err := fs.Glob(files, "*.yaml")
	if err != nil {
		return nil
	}
	slices.Sort(names)
	return names
}

// Load returns the embedded settings file called name. An unknown name is
// reported together with the names that do exist.
func Load(name string) ([]byte, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("embedded settings name is empty")
	}
	data, err := fs.ReadFile(files, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("no embedded settings %q (available: %s): %w", name, strings.Join(Names(), ", "), err)
	}
	if err != nil {
		return nil, fmt.Errorf("read embedded settings %q: %w", name, err)
	}
	return data, nil
}
