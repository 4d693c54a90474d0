package runtime

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/winstyles/stylebridge/internal/bridge"
	"github.com/winstyles/stylebridge/internal/protocol"
	"github.com/winstyles/stylebridge/internal/request"
	"github.com/winstyles/stylebridge/internal/settings"
)

// Tool names exposed to MCP clients.
const (
	ToolScan           = "scan"
	ToolExportConfig   = "export_config"
	ToolImportConfig   = "import_config"
	ToolInspect        = "inspect"
	ToolDiff           = "diff"
	ToolGenerateReport = "generate_report"
	ToolOpenOutput     = "open_output_folder"
)

// Builder constructs an MCP server exposing the bridge operations as tools.
type Builder struct {
	// Bridge runs the wrapped tool.
	Bridge *bridge.Bridge
	// Logger is used for structured logging.
	Logger *slog.Logger
}

// Build creates an MCP server with one tool per bridge operation.
func (b Builder) Build(cfg *settings.Config) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Server.Name,
		Version: cfg.Server.Version,
	}, nil)

	readOnly := &mcp.ToolAnnotations{ReadOnlyHint: true}
	destructive := true

	addTool(b, server, &mcp.Tool{
		Name:        ToolScan,
		Title:       "Scan",
		Description: "Scan the current Windows personalization settings and compare them with the defaults.",
		Annotations: readOnly,
	}, b.Bridge.Scan)
	addTool(b, server, &mcp.Tool{
		Name:        ToolExportConfig,
		Title:       "Export configuration",
		Description: "Export scanned settings and assets to a directory or .zip package.",
	}, b.Bridge.ExportConfig)
	addTool(b, server, &mcp.Tool{
		Name:        ToolImportConfig,
		Title:       "Import configuration",
		Description: "Apply a configuration package. Use dry_run to preview changes.",
		Annotations: &mcp.ToolAnnotations{DestructiveHint: &destructive},
	}, b.Bridge.ImportConfig)
	addTool(b, server, &mcp.Tool{
		Name:        ToolInspect,
		Title:       "Inspect package",
		Description: "Show the content of a configuration package as JSON.",
		Annotations: readOnly,
	}, b.Bridge.Inspect)
	addTool(b, server, &mcp.Tool{
		Name:        ToolDiff,
		Title:       "Diff packages",
		Description: "Compare two configuration packages and return the differences as JSON.",
		Annotations: readOnly,
	}, b.Bridge.Diff)
	addTool(b, server, &mcp.Tool{
		Name:        ToolGenerateReport,
		Title:       "Generate report",
		Description: "Render a markdown or html report of the current settings.",
		Annotations: readOnly,
	}, b.Bridge.GenerateReport)
	addTool(b, server, &mcp.Tool{
		Name:        ToolOpenOutput,
		Title:       "Open output folder",
		Description: "Open the bridge working directory in the system file browser.",
	}, func(ctx context.Context, _ request.OpenOutputFolder) (string, error) {
		return "", b.Bridge.OpenOutputFolder(ctx)
	})

	return server
}

func addTool[In request.Request](b Builder, server *mcp.Server, tool *mcp.Tool, call func(context.Context, In) (string, error)) {
	mcp.AddTool(server, tool, func(ctx context.Context, _ *mcp.CallToolRequest, input In) (*mcp.CallToolResult, protocol.ToolResponse, error) {
		if b.Logger != nil {
			b.Logger.Info("tool call", "tool", tool.Name)
		}
		output, err := call(ctx, input)
		resp := Response(output, err)
		if err != nil {
			return &mcp.CallToolResult{IsError: true}, resp, nil
		}
		return nil, resp, nil
	})
}

// Response converts a bridge result into the fixed tool response.
func Response(output string, err error) protocol.ToolResponse {
	if err != nil {
		return protocol.ToolResponse{
			Status: protocol.StatusError,
			Error:  err.Error(),
			Kind:   string(bridge.KindOf(err)),
		}
	}
	return protocol.ToolResponse{Status: protocol.StatusSuccess, Output: output}
}
