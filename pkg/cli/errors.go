package cli

import "errors"

// ErrNoMatch is returned by commands when an input did not match.
// It is reported through the exit status only.
var ErrNoMatch = errors.New("no match")

// Exit statuses returned by Main.
const (
	ExitOK      = 0
	ExitNoMatch = 1
	ExitError   = 2
)
