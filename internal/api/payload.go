package api

import (
	"encoding/json"
	"strings"

	"github.com/winstyles/stylebridge/internal/request"
)

// The web UI sends camelCase field names (dryRun, skipRestore, ...). Each
// payload accepts those next to the snake_case names used by MCP clients and
// maps either spelling onto the request.

type payload interface {
	request() request.Request
}

type scanPayload struct {
	Categories      []string `json:"categories"`
	Format          string   `json:"format"`
	ModifiedOnly    bool     `json:"modified_only"`
	ModifiedOnlyWeb bool     `json:"modifiedOnly"`
}

// The web UI renders scan results itself, so scans default to JSON output.
func (p scanPayload) request() request.Request {
	format := p.Format
	if format == "" {
		format = "json"
	}
	return request.Scan{
		Categories:   p.Categories,
		Format:       format,
		ModifiedOnly: p.ModifiedOnly || p.ModifiedOnlyWeb,
	}
}

type exportPayload struct {
	Path               string `json:"path"`
	Categories         string `json:"categories"`
	IncludeDefaults    bool   `json:"include_defaults"`
	IncludeDefaultsWeb bool   `json:"includeDefaults"`
}

func (p exportPayload) request() request.Request {
	return request.Export{
		Path:            p.Path,
		Categories:      p.Categories,
		IncludeDefaults: p.IncludeDefaults || p.IncludeDefaultsWeb,
	}
}

type importPayload struct {
	Path           string `json:"path"`
	DryRun         bool   `json:"dry_run"`
	DryRunWeb      bool   `json:"dryRun"`
	SkipRestore    bool   `json:"skip_restore"`
	SkipRestoreWeb bool   `json:"skipRestore"`
}

func (p importPayload) request() request.Request {
	return request.Import{
		Path:        p.Path,
		DryRun:      p.DryRun || p.DryRunWeb,
		SkipRestore: p.SkipRestore || p.SkipRestoreWeb,
	}
}

type inspectPayload struct {
	Path string `json:"path"`
}

func (p inspectPayload) request() request.Request {
	return request.Inspect{Path: p.Path}
}

type diffPayload struct {
	PathA      string `json:"path_a"`
	PathAWeb   string `json:"pathA"`
	PathB      string `json:"path_b"`
	PathBWeb   string `json:"pathB"`
	ShowAll    bool   `json:"show_all"`
	ShowAllWeb bool   `json:"showAll"`
}

func (p diffPayload) request() request.Request {
	return request.Diff{
		PathA:   firstSet(p.PathA, p.PathAWeb),
		PathB:   firstSet(p.PathB, p.PathBWeb),
		ShowAll: p.ShowAll || p.ShowAllWeb,
	}
}

type reportPayload struct {
	Format string `json:"format"`
}

func (p reportPayload) request() request.Request {
	return request.Report{Format: p.Format}
}

type openPayload struct{}

func (openPayload) request() request.Request {
	return request.OpenOutputFolder{}
}

func decode[P payload](body []byte) (request.Request, error) {
	var p P
	if strings.TrimSpace(string(body)) != "" {
		if err := json.Unmarshal(body, &p); err != nil {
			return nil, err
		}
	}
	return p.request(), nil
}

func firstSet(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
