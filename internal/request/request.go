// Package request defines the closed set of requests the bridge accepts.
package request

// Operation names as understood by the wrapped tool.
const (
	OpScan    = "scan"
	OpExport  = "export"
	OpImport  = "import"
	OpInspect = "inspect"
	OpDiff    = "diff"
	OpReport  = "report"
	OpOpen    = "open_output_folder"
)

// Report formats.
const (
	ReportMarkdown = "markdown"
	ReportHTML     = "html"
)

// Request is one of Scan, Export, Import, Inspect, Diff, Report or OpenOutputFolder.
type Request interface {
	// Operation returns the operation name.
	Operation() string
	sealed()
}

// Scan scans the current system configuration.
type Scan struct {
	// Categories limits the scan; each element becomes one -c pair.
	Categories []string `json:"categories,omitempty" jsonschema:"categories to scan, e.g. fonts, terminal, theme"`
	// Format selects the output format (table, json, yaml). Empty keeps the tool default.
	Format string `json:"format,omitempty" jsonschema:"output format: table, json or yaml"`
	// ModifiedOnly keeps only items that differ from the defaults.
	ModifiedOnly bool `json:"modified_only,omitempty" jsonschema:"only report modified items"`
}

// Export writes a configuration package.
type Export struct {
	// Path is the output directory or .zip file.
	Path string `json:"path" jsonschema:"output directory or .zip file"`
	// Categories is a comma-separated category list.
	Categories string `json:"categories,omitempty" jsonschema:"comma-separated categories to export"`
	// IncludeDefaults exports unmodified defaults too.
	IncludeDefaults bool `json:"include_defaults,omitempty" jsonschema:"include unmodified default settings"`
}

// Import applies a configuration package.
type Import struct {
	// Path is the package .zip file or directory.
	Path string `json:"path" jsonschema:"package .zip file or directory"`
	// DryRun previews changes without applying them.
	DryRun bool `json:"dry_run,omitempty" jsonschema:"preview changes only"`
	// SkipRestore skips creating a system restore point.
	SkipRestore bool `json:"skip_restore,omitempty" jsonschema:"skip creating a restore point"`
}

// Inspect lists the content of a configuration package.
type Inspect struct {
	// Path is the package to inspect.
	Path string `json:"path" jsonschema:"package to inspect"`
}

// Diff compares two configuration packages.
type Diff struct {
	PathA string `json:"path_a" jsonschema:"first package"`
	PathB string `json:"path_b" jsonschema:"second package"`
	// ShowAll includes unchanged entries.
	ShowAll bool `json:"show_all,omitempty" jsonschema:"include unchanged entries"`
}

// Report renders a report of the current configuration.
type Report struct {
	// Format is markdown (default) or html.
	Format string `json:"format,omitempty" jsonschema:"report format: markdown or html"`
}

// OpenOutputFolder opens the working directory in the platform file browser.
type OpenOutputFolder struct{}

func (Scan) Operation() string             { return OpScan }
func (Export) Operation() string           { return OpExport }
func (Import) Operation() string           { return OpImport }
func (Inspect) Operation() string          { return OpInspect }
func (Diff) Operation() string             { return OpDiff }
func (Report) Operation() string           { return OpReport }
func (OpenOutputFolder) Operation() string { return OpOpen }

func (Scan) sealed()             {}
func (Export) sealed()           {}
func (Import) sealed()           {}
func (Inspect) sealed()          {}
func (Diff) sealed()             {}
func (Report) sealed()           {}
func (OpenOutputFolder) sealed() {}
