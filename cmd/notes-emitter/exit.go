// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"

	"github.com/pdiddy/notes-emitter/internal/notes"
)

// sysexits(3) codes. The pipeline never exits the process itself; it returns
// a typed error and this is the only place it becomes an exit status.
const (
	exOK          = 0
	exDataErr     = 65 // EX_DATAERR: parse or serialization failure
	exUnavailable = 69 // EX_UNAVAILABLE: osascript exited non-zero
	exIOErr       = 74 // EX_IOERR: output sink or invocation I/O failure
	exSoftware    = 70 // EX_SOFTWARE: anything else
)

// exitCodeFor maps an error from a command run to a process exit code.
func exitCodeFor(err error) int {
	var e *notes.Error
	if !errors.As(err, &e) {
		return exSoftware
	}
	switch e.Kind {
	case notes.KindIO:
		return exIOErr
	case notes.KindBridge:
		return exUnavailable
	case notes.KindParse, notes.KindEncode:
		return exDataErr
	default:
		return exSoftware
	}
}
