package droiderr

import (
	xos "github.com/frantjc/x/os"
)

const (
	ExitCodeOK      = 0
	ExitCodeUnknown = 1
	ExitCodeInvalid = 2
)

// ExitCodeError wraps err so that xos.ExitFromError exits with exitCode.
// A nil err stays nil. Exit codes outside of [1, 125] become
// ExitCodeUnknown.
func ExitCodeError(err error, exitCode int) error {
	if err == nil {
		// xos.NewExitCodeError returns a typed nil here.
		return nil
	}

	if exitCode < 1 || 125 < exitCode {
		exitCode = ExitCodeUnknown
	}

	return xos.NewExitCodeError(err, exitCode)
}
