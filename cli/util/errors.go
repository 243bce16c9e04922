package util

import "errors"

var (
	// ErrCmdAbort is reported when the command failed and the failure
	// is already shown to the user.
	ErrCmdAbort = errors.New("aborted")
)
