package bridge

import (
	"errors"

	"github.com/winstyles/stylebridge/internal/executil"
)

// Kind classifies a bridge failure.
type Kind string

// Failure kinds.
const (
	KindValidation Kind = "validation"
	KindLaunch     Kind = "launch"
	KindExecution  Kind = "execution"
)

// Error is returned by every failing bridge call. Error() is the diagnostic
// text exactly as produced: the validation message, the tool's stderr, or the
// OS launch description. A tool that fails without writing to stderr yields
// an empty message; ExitCode still carries its status.
type Error struct {
	Kind     Kind
	Message  string
	ExitCode int
}

func (e *Error) Error() string {
	return e.Message
}

// KindOf returns the failure kind of err, or "" when err is not a bridge error.
func KindOf(err error) Kind {
	var be *Error
	if errors.As(err, &be) {
		return be.Kind
	}
	return ""
}

// Normalize maps an executor outcome to the caller's result.
func Normalize(out executil.Outcome) (string, error) {
	if !out.Launched() {
		return "", &Error{Kind: KindLaunch, Message: out.LaunchErr.Error(), ExitCode: -1}
	}
	if out.Success() {
		return out.Stdout, nil
	}
	return "", &Error{Kind: KindExecution, Message: out.Stderr, ExitCode: out.ExitCode}
}

func validationError(err error) error {
	return &Error{Kind: KindValidation, Message: err.Error()}
}
