// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import "fmt"

// Kind classifies every failure the pipeline can produce. The set is closed:
// callers dispatch on it (exit-code mapping, logging) rather than inspecting
// message strings.
type Kind int

const (
	// KindIO is a byte-level I/O failure on the output sink or the bridge
	// invocation itself.
	KindIO Kind = iota

	// KindBridge means the osascript subprocess ran but exited non-zero.
	KindBridge

	// KindParse means a record block lacked an expected field, or the note
	// body could not be converted from HTML to text.
	KindParse

	// KindEncode means a document could not be serialized to JSON.
	KindEncode
)

// Error is the single error type returned from the emitter pipeline. Context
// is a static label for the operation in flight; Message carries free-text
// detail for parse and bridge failures; Status is the bridge exit status.
type Error struct {
	Kind    Kind
	Context string
	Message string
	Status  int
	Err     error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindIO:
		return fmt.Sprintf("I/O error while %s", e.Context)
	case KindBridge:
		return "failed to talk to Apple Notes (osascript)"
	case KindParse:
		return fmt.Sprintf("failed to parse Apple Notes output while %s", e.Context)
	default:
		return fmt.Sprintf("failed to serialize JSON while %s", e.Context)
	}
}

func (e *Error) Unwrap() error { return e.Err }

func ioErr(context string, err error) *Error {
	return &Error{Kind: KindIO, Context: context, Err: err}
}

func bridgeErr(status int, stderr string) *Error {
	return &Error{Kind: KindBridge, Status: status, Message: stderr}
}

func parseErr(context, message string) *Error {
	return &Error{Kind: KindParse, Context: context, Message: message}
}

func encodeErr(context string, err error) *Error {
	return &Error{Kind: KindEncode, Context: context, Err: err}
}
