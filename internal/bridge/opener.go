package bridge

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/winstyles/stylebridge/internal/executil"
)

// Opener launches the platform file browser on a directory.
type Opener struct {
	// Executor runs the file browser.
	Executor executil.Executor
	// Program overrides the file browser executable.
	Program string
	// Getwd overrides os.Getwd.
	Getwd func() (string, error)
}

// Open shows the current working directory. It succeeds only when the
// browser process exits with status 0.
func (o *Opener) Open(ctx context.Context) error {
	getwd := o.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	dir, err := getwd()
	if err != nil {
		return &Error{Kind: KindLaunch, Message: err.Error(), ExitCode: -1}
	}

	exec := o.Executor
	if exec == nil {
		exec = executil.Local{}
	}
	program := o.program()
	_, err = Normalize(exec.Execute(ctx, executil.Invocation{
		Executable: program,
		Args:       []string{dir},
	}))
	var be *Error
	if errors.As(err, &be) && be.Message == "" {
		be.Message = fmt.Sprintf("%s exited with status %d", program, be.ExitCode)
	}
	return err
}

func (o *Opener) program() string {
	if o.Program != "" {
		return o.Program
	}
	return FileBrowser(runtime.GOOS)
}

// FileBrowser returns the file browser executable for goos.
func FileBrowser(goos string) string {
	switch goos {
	case "windows":
		return "explorer"
	case "darwin":
		return "open"
	default:
		return "xdg-open"
	}
}
