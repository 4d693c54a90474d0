package protocol

// Call statuses.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ToolResponse is the fixed JSON response returned to MCP clients.
type ToolResponse struct {
	// Status is success or error.
	Status string `json:"status"`
	// Output is the tool's stdout on success.
	Output string `json:"output,omitempty"`
	// Error is the diagnostic text on failure.
	Error string `json:"error,omitempty"`
	// Kind classifies a failure: validation, launch or execution.
	Kind string `json:"kind,omitempty"`
}

// APIError is the body of a failed HTTP API call.
type APIError struct {
	// Error is the diagnostic text.
	Error string `json:"error"`
	// Kind classifies the failure when it came from the bridge.
	Kind string `json:"kind,omitempty"`
}
