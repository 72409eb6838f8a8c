package command

import (
	"errors"

	"github.com/frantjc/droid/android"
	"github.com/frantjc/droid/axml"
	"github.com/frantjc/droid/internal/droiderr"
)

const (
	ExitCodeNotBinaryXML      = 3
	ExitCodeStringPoolMissing = 4
	ExitCodeElementNotFound   = 5
	ExitCodeAttributeNotFound = 6
	ExitCodeManifestNotFound  = 7
)

// withExitCode gives decode failures their own exit codes.
func withExitCode(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, axml.ErrNotBinaryXML):
		return droiderr.ExitCodeError(err, ExitCodeNotBinaryXML)
	case errors.Is(err, axml.ErrStringPoolMissing):
		return droiderr.ExitCodeError(err, ExitCodeStringPoolMissing)
	case errors.Is(err, axml.ErrElementNotFound):
		return droiderr.ExitCodeError(err, ExitCodeElementNotFound)
	case errors.Is(err, axml.ErrAttributeNotFound):
		return droiderr.ExitCodeError(err, ExitCodeAttributeNotFound)
	case errors.Is(err, android.ErrManifestNotFound):
		return droiderr.ExitCodeError(err, ExitCodeManifestNotFound)
	}

	return err
}
