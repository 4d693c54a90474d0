// Package faketool turns a test binary into a stand-in for the wrapped tool.
//
// A package opts in from TestMain:
//
//	func TestMain(m *testing.M) {
//		faketool.Main()
//		os.Exit(m.Run())
//	}
//
// When the binary is started with "-m" as its first argument it behaves like
// the tool instead of running tests:
//   - stdout receives the JSON-encoded argument list after the module name;
//   - an argument "stderr=<text>" writes <text> to stderr and exits 1;
//   - an argument "exit=<n>" exits with status n;
//   - an argument "invalid-utf8" writes a malformed byte sequence to stdout;
//   - an argument "env" prints PYTHONIOENCODING and PYTHONUTF8 instead.
package faketool

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Main runs the fake tool and exits when the process was started as one.
func Main() {
	if len(os.Args) < 3 || os.Args[1] != "-m" {
		return
	}
	os.Exit(run(os.Args[3:]))
}

// Executable returns the path that starts the fake tool.
func Executable() string {
	return os.Args[0]
}

func run(args []string) int {
	code := 0
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "stderr="):
			fmt.Fprint(os.Stderr, strings.TrimPrefix(arg, "stderr="))
			code = 1
		case strings.HasPrefix(arg, "exit="):
			n, err := strconv.Atoi(strings.TrimPrefix(arg, "exit="))
			if err == nil {
				code = n
			}
		case arg == "invalid-utf8":
			_, _ = os.Stdout.Write([]byte{'o', 0xff, 'k'})
			return code
		case arg == "env":
			fmt.Fprintf(os.Stdout, "%s,%s", os.Getenv("PYTHONIOENCODING"), os.Getenv("PYTHONUTF8"))
			return code
		}
	}
	if code != 0 {
		return code
	}
	_ = json.NewEncoder(os.Stdout).Encode(args)
	return 0
}
