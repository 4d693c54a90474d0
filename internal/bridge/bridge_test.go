package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/winstyles/stylebridge/internal/audit"
	"github.com/winstyles/stylebridge/internal/executil"
	"github.com/winstyles/stylebridge/internal/request"
	"github.com/winstyles/stylebridge/internal/testutil/faketool"
	"github.com/winstyles/stylebridge/internal/toolenv"
)

func TestMain(m *testing.M) {
	faketool.Main()
	os.Exit(m.Run())
}

type countingExecutor struct {
	calls atomic.Int32
	last  atomic.Pointer[executil.Invocation]
	out   executil.Outcome
}

func (c *countingExecutor) Execute(_ context.Context, inv executil.Invocation) executil.Outcome {
	c.calls.Add(1)
	c.last.Store(&inv)
	return c.out
}

func fakeBridge() *Bridge {
	return &Bridge{Resolver: toolenv.Resolver{Environ: map[string]string{"PYTHON": faketool.Executable()}}}
}

func decodeArgs(t *testing.T, out string) []string {
	t.Helper()
	var args []string
	if err := json.Unmarshal([]byte(out), &args); err != nil {
		t.Fatalf("decode tool output %q: %v", out, err)
	}
	return args
}

func TestRequiredPathNeverSpawns(t *testing.T) {
	t.Parallel()

	exec := &countingExecutor{}
	b := &Bridge{Executor: exec}
	ctx := context.Background()

	calls := map[string]func() error{
		"export blank": func() error { _, err := b.ExportConfig(ctx, request.Export{Path: "  "}); return err },
		"import empty": func() error { _, err := b.ImportConfig(ctx, request.Import{}); return err },
		"inspect tab":  func() error { _, err := b.Inspect(ctx, request.Inspect{Path: "\t"}); return err },
		"diff a":       func() error { _, err := b.Diff(ctx, request.Diff{PathB: "B.reg"}); return err },
		"diff b":       func() error { _, err := b.Diff(ctx, request.Diff{PathA: "A.reg", PathB: " "}); return err },
	}
	for name, call := range calls {
		err := call()
		if err == nil || err.Error() != "path is required" {
			t.Fatalf("%s: expected path is required, got %v", name, err)
		}
		if KindOf(err) != KindValidation {
			t.Fatalf("%s: expected validation kind, got %q", name, KindOf(err))
		}
	}
	if n := exec.calls.Load(); n != 0 {
		t.Fatalf("expected no process spawned, got %d", n)
	}
}

func TestRunPassesResolvedInvocation(t *testing.T) {
	t.Parallel()

	exec := &countingExecutor{out: executil.Outcome{Stdout: "{}"}}
	b := &Bridge{
		Resolver: toolenv.Resolver{Module: "winstyles", Environ: map[string]string{"PYTHON": "py"}},
		Executor: exec,
		Dir:      "src",
	}
	out, err := b.Diff(context.Background(), request.Diff{PathA: "A.reg", PathB: "B.reg", ShowAll: true})
	if err != nil || out != "{}" {
		t.Fatalf("unexpected result: %q %v", out, err)
	}
	inv := exec.last.Load()
	want := []string{"-m", "winstyles", "diff", "A.reg", "B.reg", "-f", "json", "--all"}
	if inv.Executable != "py" || !reflect.DeepEqual(inv.Args, want) || inv.Dir != "src" {
		t.Fatalf("unexpected invocation: %+v", inv)
	}
	if inv.Env["PYTHONIOENCODING"] != "utf-8" || inv.Env["PYTHONUTF8"] != "1" {
		t.Fatalf("missing encoding env: %v", inv.Env)
	}
}

func TestWithEnvAddsChildVariables(t *testing.T) {
	t.Parallel()

	exec := &countingExecutor{}
	base := &Bridge{Resolver: toolenv.Resolver{Environ: map[string]string{}}, Executor: exec}
	web := base.WithEnv(map[string]string{"WINSTYLES_WEB_MODE": "1", "PYTHONUTF8": "0"})
	if base.Env != nil {
		t.Fatalf("WithEnv must not modify the receiver: %v", base.Env)
	}

	if _, err := web.Scan(context.Background(), request.Scan{}); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	inv := exec.last.Load()
	if inv.Env["WINSTYLES_WEB_MODE"] != "1" || inv.Env["PYTHONUTF8"] != "1" || inv.Env["PYTHONIOENCODING"] != "utf-8" {
		t.Fatalf("unexpected child environment: %v", inv.Env)
	}

	if _, err := base.Scan(context.Background(), request.Scan{}); err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	if _, ok := exec.last.Load().Env["WINSTYLES_WEB_MODE"]; ok {
		t.Fatalf("base bridge must not carry web mode")
	}
}

func TestFakeToolRoundTrip(t *testing.T) {
	t.Parallel()

	b := fakeBridge()
	out, err := b.Scan(context.Background(), request.Scan{Categories: []string{"fonts", "terminal"}, Format: "json"})
	if err != nil {
		t.Fatalf("scan failed: %v", err)
	}
	want := []string{"scan", "-c", "fonts", "-c", "terminal", "-f", "json"}
	if got := decodeArgs(t, out); !reflect.DeepEqual(got, want) {
		t.Fatalf("tool saw %q, want %q", got, want)
	}
}

func TestExecutionFailureReturnsStderr(t *testing.T) {
	t.Parallel()

	b := fakeBridge()
	_, err := b.Inspect(context.Background(), request.Inspect{Path: "stderr=bad input"})
	if err == nil || err.Error() != "bad input" {
		t.Fatalf("expected stderr text, got %v", err)
	}
	var be *Error
	if !errors.As(err, &be) || be.Kind != KindExecution || be.ExitCode != 1 {
		t.Fatalf("unexpected error: %#v", err)
	}
}

func TestLaunchFailureReturnsOSDescription(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing-python")
	b := &Bridge{Resolver: toolenv.Resolver{Environ: map[string]string{"PYTHON": missing}}}
	_, err := b.Scan(context.Background(), request.Scan{})
	if err == nil || err.Error() == "" {
		t.Fatalf("expected launch error, got %v", err)
	}
	if KindOf(err) != KindLaunch {
		t.Fatalf("expected launch kind, got %q", KindOf(err))
	}
}

func TestConcurrentCallsDoNotMix(t *testing.T) {
	t.Parallel()

	b := fakeBridge()
	const n = 8
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			category := fmt.Sprintf("cat-%d", i)
			out, err := b.Scan(context.Background(), request.Scan{Categories: []string{category}})
			if err != nil {
				errs <- err
				return
			}
			var args []string
			if err := json.Unmarshal([]byte(out), &args); err != nil {
				errs <- err
				return
			}
			if !reflect.DeepEqual(args, []string{"scan", "-c", category}) {
				errs <- fmt.Errorf("call %d saw %q", i, args)
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestAuditEvents(t *testing.T) {
	t.Parallel()

	rec := &audit.Recorder{}
	b := &Bridge{Executor: &countingExecutor{out: executil.Outcome{ExitCode: 2, Stderr: "nope"}}, Audit: rec}
	_, _ = b.ImportConfig(context.Background(), request.Import{Path: "pkg.zip"})
	_, _ = b.ImportConfig(context.Background(), request.Import{})

	var types []string
	for _, e := range rec.Events() {
		types = append(types, e.Type+":"+e.Operation)
	}
	want := []string{"call:import", "error:import", "call:import", "error:import"}
	if !reflect.DeepEqual(types, want) {
		t.Fatalf("unexpected audit trail: %q", types)
	}
}

func TestRunOpenOutputFolder(t *testing.T) {
	t.Parallel()

	exec := &countingExecutor{}
	b := &Bridge{Opener: &Opener{Executor: exec, Program: "browser", Getwd: func() (string, error) { return "/work", nil }}}
	out, err := b.Run(context.Background(), request.OpenOutputFolder{})
	if err != nil || out != "" {
		t.Fatalf("unexpected result: %q %v", out, err)
	}
	inv := exec.last.Load()
	if inv.Executable != "browser" || !reflect.DeepEqual(inv.Args, []string{"/work"}) {
		t.Fatalf("unexpected invocation: %+v", inv)
	}
}

func TestRunNilRequest(t *testing.T) {
	t.Parallel()
	if _, err := (&Bridge{}).Run(context.Background(), nil); KindOf(err) != KindValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestProbe(t *testing.T) {
	t.Parallel()
	out, err := fakeBridge().Probe(context.Background())
	if err != nil {
		t.Fatalf("probe failed: %v", err)
	}
	if got := decodeArgs(t, out); !reflect.DeepEqual(got, []string{"--version"}) {
		t.Fatalf("unexpected probe args: %q", got)
	}
}
