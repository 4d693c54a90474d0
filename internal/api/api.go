// Package api serves the bridge as a JSON HTTP API for the web UI:
// POST <prefix><command> with a JSON body, answered with the JSON-encoded
// tool output or {"error": "..."}.
package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/winstyles/stylebridge/internal/bridge"
	"github.com/winstyles/stylebridge/internal/protocol"
	"github.com/winstyles/stylebridge/internal/request"
)

const maxBodyBytes = 1 << 20

type decoder func(body []byte) (request.Request, error)

var commands = map[string]decoder{
	"scan":               decode[scanPayload],
	"export_config":      decode[exportPayload],
	"import_config":      decode[importPayload],
	"inspect":            decode[inspectPayload],
	"diff":               decode[diffPayload],
	"generate_report":    decode[reportPayload],
	"open_output_folder": decode[openPayload],
}

// WebModeEnv is added to the environment of every tool run started by the API.
var WebModeEnv = map[string]string{"WINSTYLES_WEB_MODE": "1"}

// Handler dispatches API commands to the bridge.
type Handler struct {
	// Bridge runs the wrapped tool. New gives it WebModeEnv.
	Bridge *bridge.Bridge
	// Prefix is stripped from the request path to get the command name.
	Prefix string
	// Limiter throttles calls when set.
	Limiter *rate.Limiter
	// Logger is used for structured logging.
	Logger *slog.Logger
}

// New returns a Handler running b in web mode; ratePerMinute <= 0 disables
// throttling.
func New(b *bridge.Bridge, prefix string, ratePerMinute int, logger *slog.Logger) *Handler {
	h := &Handler{Prefix: prefix, Logger: logger}
	if b != nil {
		h.Bridge = b.WithEnv(WebModeEnv)
	}
	if ratePerMinute > 0 {
		h.Limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(ratePerMinute)), ratePerMinute)
	}
	return h
}

// Commands returns the supported command names.
func Commands() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	return names
}

// ServeHTTP handles one API call.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, http.StatusMethodNotAllowed, protocol.APIError{Error: "method not allowed"})
		return
	}
	if h.Bridge == nil {
		writeError(w, http.StatusInternalServerError, protocol.APIError{Error: "bridge is not configured"})
		return
	}

	name := strings.Trim(strings.TrimPrefix(r.URL.Path, h.Prefix), "/")
	decodeFn, ok := commands[name]
	if !ok {
		writeError(w, http.StatusNotFound, protocol.APIError{Error: "unknown command: " + name})
		return
	}
	if h.Limiter != nil && !h.Limiter.Allow() {
		writeError(w, http.StatusTooManyRequests, protocol.APIError{Error: "rate limit exceeded"})
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, protocol.APIError{Error: "read body failed"})
		return
	}
	req, err := decodeFn(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, protocol.APIError{Error: "invalid JSON body"})
		return
	}

	output, err := h.Bridge.Run(r.Context(), req)
	if err != nil {
		if h.Logger != nil {
			h.Logger.Warn("api call failed", "command", name, "error", err)
		}
		writeError(w, http.StatusInternalServerError, protocol.APIError{Error: err.Error(), Kind: string(bridge.KindOf(err))})
		return
	}
	writeJSON(w, http.StatusOK, output)
}

func writeError(w http.ResponseWriter, status int, body protocol.APIError) {
	writeJSON(w, status, body)
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		status = http.StatusInternalServerError
		data = []byte(`{"error":"encode response failed"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}
