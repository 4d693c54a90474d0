package executil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
)

// Invocation describes a single child process.
type Invocation struct {
	// Executable is the program name or path.
	Executable string
	// Args are passed to the program in order.
	Args []string
	// Env is merged over the inherited environment.
	Env map[string]string
	// Dir is the working directory; empty inherits the current one.
	Dir string
}

// Outcome is the result of one invocation. LaunchErr is set when the process
// could not be started; otherwise the process ran and ExitCode is meaningful.
type Outcome struct {
	ExitCode  int
	Stdout    string
	Stderr    string
	LaunchErr error
	Duration  time.Duration
}

// Launched reports whether the process was started.
func (o Outcome) Launched() bool {
	return o.LaunchErr == nil
}

// Success reports a started process that exited with status 0.
func (o Outcome) Success() bool {
	return o.LaunchErr == nil && o.ExitCode == 0
}

// Executor runs an invocation to completion.
type Executor interface {
	// Execute blocks until the child exits or cannot be started.
	Execute(ctx context.Context, inv Invocation) Outcome
}

// Local runs invocations as local child processes.
type Local struct{}

// Execute starts the child with an empty stdin and waits for it. The child is
// killed only when ctx is canceled; no timeout is applied here.
func (Local) Execute(ctx context.Context, inv Invocation) Outcome {
	cmd := BuildCommand(ctx, inv)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	started := time.Now()
	err := cmd.Run()
	elapsed := time.Since(started)

	if cmd.ProcessState == nil {
		if err == nil {
			err = fmt.Errorf("start %s: process state unavailable", inv.Executable)
		}
		return Outcome{ExitCode: -1, LaunchErr: err, Duration: elapsed}
	}
	return Outcome{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   Decode(stdout.Bytes()),
		Stderr:   Decode(stderr.Bytes()),
		Duration: elapsed,
	}
}

// BuildCommand builds an exec.Cmd with the inherited environment plus inv.Env.
// Later entries win, so inv.Env overrides inherited variables of the same name.
func BuildCommand(ctx context.Context, inv Invocation) *exec.Cmd {
	cmd := exec.CommandContext(ctx, inv.Executable, inv.Args...)
	cmd.Dir = inv.Dir
	cmd.Stdin = nil

	keys := make([]string, 0, len(inv.Env))
	for key := range inv.Env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cmd.Env = os.Environ()
	for _, key := range keys {
		cmd.Env = append(cmd.Env, key+"="+inv.Env[key])
	}
	return cmd
}

// Decode turns child output into text, replacing invalid UTF-8 with U+FFFD.
func Decode(raw []byte) string {
	if len(raw) == 0 {
		return ""
	}
	decoded, err := unicode.UTF8.NewDecoder().Bytes(raw)
	if err != nil {
		return strings.ToValidUTF8(string(raw), "�")
	}
	return string(decoded)
}
