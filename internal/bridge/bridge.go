// Package bridge exposes one call per request variant. Each call validates,
// builds the argument vector, runs the tool once and normalizes the outcome.
package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"maps"

	"github.com/winstyles/stylebridge/internal/audit"
	"github.com/winstyles/stylebridge/internal/command"
	"github.com/winstyles/stylebridge/internal/executil"
	"github.com/winstyles/stylebridge/internal/request"
	"github.com/winstyles/stylebridge/internal/toolenv"
)

// Bridge runs requests against the wrapped tool. A Bridge holds no mutable
// state and is safe for concurrent use.
type Bridge struct {
	// Resolver picks the executable, module and child environment per call.
	Resolver toolenv.Resolver
	// Executor runs child processes. Nil means executil.Local.
	Executor executil.Executor
	// Dir is the tool's working directory; empty inherits the current one.
	Dir string
	// Env holds extra child variables. The resolver's encoding variables
	// take precedence over entries of the same name.
	Env map[string]string
	// Opener opens folders in the platform file browser. Nil means the default opener.
	Opener *Opener
	// Logger is used for structured logging.
	Logger *slog.Logger
	// Audit records bridge calls.
	Audit audit.Logger
}

// Scan runs "scan".
func (b *Bridge) Scan(ctx context.Context, req request.Scan) (string, error) {
	return b.Run(ctx, req)
}

// ExportConfig runs "export".
func (b *Bridge) ExportConfig(ctx context.Context, req request.Export) (string, error) {
	return b.Run(ctx, req)
}

// ImportConfig runs "import".
func (b *Bridge) ImportConfig(ctx context.Context, req request.Import) (string, error) {
	return b.Run(ctx, req)
}

// Inspect runs "inspect" with JSON output.
func (b *Bridge) Inspect(ctx context.Context, req request.Inspect) (string, error) {
	return b.Run(ctx, req)
}

// Diff runs "diff" with JSON output.
func (b *Bridge) Diff(ctx context.Context, req request.Diff) (string, error) {
	return b.Run(ctx, req)
}

// GenerateReport runs "report".
func (b *Bridge) GenerateReport(ctx context.Context, req request.Report) (string, error) {
	return b.Run(ctx, req)
}

// OpenOutputFolder opens the current working directory in the file browser.
func (b *Bridge) OpenOutputFolder(ctx context.Context) error {
	b.record(ctx, "call", request.OpOpen, "")
	err := b.opener().Open(ctx)
	if err != nil {
		b.warn("bridge call failed", request.OpOpen, err)
		b.record(ctx, "error", request.OpOpen, err.Error())
		return err
	}
	b.record(ctx, "ok", request.OpOpen, "")
	return nil
}

// Run dispatches any request. OpenOutputFolder yields an empty output.
func (b *Bridge) Run(ctx context.Context, req request.Request) (string, error) {
	if req == nil {
		return "", &Error{Kind: KindValidation, Message: "request is nil"}
	}
	if _, ok := req.(request.OpenOutputFolder); ok {
		return "", b.OpenOutputFolder(ctx)
	}

	op := req.Operation()
	b.record(ctx, "call", op, "")

	if err := request.Validate(req); err != nil {
		b.warn("bridge call rejected", op, err)
		b.record(ctx, "error", op, err.Error())
		return "", validationError(err)
	}

	args, err := command.Build(b.Resolver.ModuleName(), req)
	if err != nil {
		return "", &Error{Kind: KindValidation, Message: err.Error()}
	}

	inv := executil.Invocation{
		Executable: b.Resolver.Executable(),
		Args:       args,
		Env:        b.environment(),
		Dir:        b.Dir,
	}
	if b.Logger != nil {
		b.Logger.Debug("bridge call", "operation", op, "executable", inv.Executable, "args", args)
	}

	outcome := b.executor().Execute(ctx, inv)
	output, err := Normalize(outcome)
	if err != nil {
		b.warn("bridge call failed", op, err, "exit_code", outcome.ExitCode, "duration", outcome.Duration)
		b.record(ctx, "error", op, err.Error())
		return "", err
	}
	if b.Logger != nil {
		b.Logger.Info("bridge call ok", "operation", op, "duration", outcome.Duration, "bytes", len(output))
	}
	b.record(ctx, "ok", op, "")
	return output, nil
}

// Probe runs "<executable> -m <module> --version" and returns its output.
func (b *Bridge) Probe(ctx context.Context) (string, error) {
	outcome := b.executor().Execute(ctx, executil.Invocation{
		Executable: b.Resolver.Executable(),
		Args:       []string{"-m", b.Resolver.ModuleName(), "--version"},
		Env:        b.environment(),
		Dir:        b.Dir,
	})
	return Normalize(outcome)
}

// WithEnv returns a copy of b whose child processes also receive extra.
func (b *Bridge) WithEnv(extra map[string]string) *Bridge {
	clone := *b
	clone.Env = make(map[string]string, len(b.Env)+len(extra))
	maps.Copy(clone.Env, b.Env)
	maps.Copy(clone.Env, extra)
	return &clone
}

func (b *Bridge) environment() map[string]string {
	vars := b.Resolver.Environment()
	for key, value := range b.Env {
		if _, fixed := vars[key]; !fixed {
			vars[key] = value
		}
	}
	return vars
}

func (b *Bridge) executor() executil.Executor {
	if b.Executor == nil {
		return executil.Local{}
	}
	return b.Executor
}

func (b *Bridge) opener() *Opener {
	if b.Opener != nil {
		return b.Opener
	}
	return &Opener{Executor: b.executor()}
}

func (b *Bridge) warn(msg, op string, err error, extra ...any) {
	if b.Logger == nil {
		return
	}
	attrs := append([]any{"operation", op, "kind", KindOf(err), "error", err}, extra...)
	b.Logger.Warn(msg, attrs...)
}

func (b *Bridge) record(ctx context.Context, eventType, op, reason string) {
	if b.Audit == nil {
		return
	}
	b.Audit.Record(ctx, audit.Event{Type: eventType, Operation: op, Reason: reason})
}

// String describes the bridge target for logs.
func (b *Bridge) String() string {
	return fmt.Sprintf("%s -m %s", b.Resolver.Executable(), b.Resolver.ModuleName())
}
