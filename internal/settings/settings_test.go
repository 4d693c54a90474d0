package settings

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()
	cfg, err := Load([]byte("server:\n  version: 1.0.0\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Name != "stylebridge" || cfg.Server.Transport != TransportStdio {
		t.Fatalf("unexpected server defaults: %+v", cfg.Server)
	}
	if cfg.Server.HTTP.Listen != "127.0.0.1:8000" || cfg.Server.HTTP.Path != "/mcp" {
		t.Fatalf("unexpected http defaults: %+v", cfg.Server.HTTP)
	}
	if cfg.Tool.Module != "winstyles" || cfg.API.Prefix != "/api/" {
		t.Fatalf("unexpected defaults: %+v %+v", cfg.Tool, cfg.API)
	}
}

func TestLoadRejects(t *testing.T) {
	t.Parallel()
	cases := map[string]string{
		"unknown field":   "server:\n  version: 1\n  colour: red\n",
		"missing version": "server:\n  name: x\n",
		"bad transport":   "server:\n  version: 1\n  transport: grpc\n",
		"bad duration":    "server:\n  version: 1\n  http:\n    read_timeout: soon\n",
		"relative path":   "server:\n  version: 1\n  http:\n    path: mcp\n",
		"negative rate":   "server:\n  version: 1\napi:\n  rate_per_minute: -1\n",
		"prefix clash":    "server:\n  version: 1\n  http:\n    path: /api\napi:\n  prefix: /api/\n",
		"relative prefix": "server:\n  version: 1\napi:\n  prefix: api/\n",
		"not a mapping":   "- a\n- b\n",
	}
	for name, doc := range cases {
		if _, err := Load([]byte(doc)); err == nil {
			t.Fatalf("%s: expected error", name)
		}
	}
}

func TestLoadNormalizes(t *testing.T) {
	t.Parallel()
	cfg, err := Load([]byte("server:\n  version: 1\n  transport: HTTP\napi:\n  prefix: /bridge\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Transport != TransportHTTP || cfg.API.Prefix != "/bridge/" {
		t.Fatalf("unexpected normalization: %+v %+v", cfg.Server, cfg.API)
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "stylebridge.yaml")
	if err := os.WriteFile(path, []byte("server:\n  version: 2.0.0\ntool:\n  work_dir: src\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if cfg.Tool.WorkDir != "src" {
		t.Fatalf("unexpected work dir: %q", cfg.Tool.WorkDir)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !strings.Contains(err.Error(), "read settings") {
		t.Fatalf("expected read error, got %v", err)
	}
}

func TestValidateNil(t *testing.T) {
	t.Parallel()
	if err := Validate(nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestDurationOr(t *testing.T) {
	t.Parallel()
	if DurationOr("", time.Second) != time.Second {
		t.Fatalf("empty must fall back")
	}
	if DurationOr("bad", time.Second) != time.Second {
		t.Fatalf("invalid must fall back")
	}
	if DurationOr("2m", time.Second) != 2*time.Minute {
		t.Fatalf("valid must parse")
	}
}
