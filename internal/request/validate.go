package request

import (
	"errors"
	"strings"
)

// ErrPathRequired is returned for an empty or blank required path.
var ErrPathRequired = errors.New("path is required")

// Validate checks required fields. It never touches the file system.
func Validate(req Request) error {
	switch r := req.(type) {
	case Export:
		return requirePaths(r.Path)
	case Import:
		return requirePaths(r.Path)
	case Inspect:
		return requirePaths(r.Path)
	case Diff:
		return requirePaths(r.PathA, r.PathB)
	}
	return nil
}

func requirePaths(paths ...string) error {
	for _, p := range paths {
		if strings.TrimSpace(p) == "" {
			return ErrPathRequired
		}
	}
	return nil
}
