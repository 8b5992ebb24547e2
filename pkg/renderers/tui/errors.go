package tui

import "errors"

// ErrAborted reports that the user interrupted the prompt session.
var ErrAborted = errors.New("tui: session aborted")
