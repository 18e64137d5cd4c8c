// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bridge invokes the Apple Notes scripting bridge (osascript) and
// captures its output. The AppleScript payload is a versioned constant: it
// enumerates every account, folder, and note, concatenating per-note fields
// with the delimiter tokens the notes package frames on. That delimited text
// is a private wire format between this script and internal/notes.
// See docs/ARCHITECTURE § Bridge.
package bridge

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
)

// notesScript is the AppleScript sent to osascript. Field order and the
// "|||" / "~~~" tokens are load-bearing; internal/notes decodes against them.
const notesScript = `
set output to ""
tell application "Notes"
    set theAccounts to every account
    repeat with acc in theAccounts
        set accName to the name of acc
        set foldersList to every folder of acc
        repeat with f in foldersList
            set folderName to the name of f
            set notesList to every note of f
            repeat with n in notesList
                set noteId to the id of n
                set noteName to the name of n
                set noteBody to the body of n
                set noteCreated to the creation date of n
                set noteModified to the modification date of n
                set output to output & noteId & "|||"
                set output to output & noteName & "|||"
                set output to output & noteBody & "|||"
                set output to output & noteCreated & "|||"
                set output to output & noteModified & "|||"
                set output to output & folderName & "|||"
                set output to output & accName & "~~~"
            end repeat
        end repeat
    end repeat
end tell
return output
`

// DefaultBin is the osascript binary invoked when none is configured.
const DefaultBin = "osascript"

// Output is the captured result of one bridge invocation. A non-zero
// ExitCode is reported here, not as an error: the caller decides what a
// failed script run means.
type Output struct {
	ExitCode int
	Stdout   []byte
	Stderr   []byte
}

// Bridge fetches the delimited notes payload from the external system.
type Bridge interface {
	Fetch(ctx context.Context) (Output, error)
}

// executor abstracts command execution for testing.
type executor interface {
	RunCaptured(ctx context.Context, name string, args ...string) (stdout, stderr []byte, exitCode int, err error)
}

// osExecutor is the production executor backed by os/exec.
type osExecutor struct{}

func (o *osExecutor) RunCaptured(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error) {
	var outBuf, errBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			return outBuf.Bytes(), errBuf.Bytes(), ee.ExitCode(), nil
		}
		return nil, nil, 0, err
	}
	return outBuf.Bytes(), errBuf.Bytes(), 0, nil
}

// OsaScript is the production Bridge: it runs the notes script through the
// osascript binary. There is no timeout; an unresponsive Notes application
// blocks the run until the context is cancelled, and the CLI sets none.
type OsaScript struct {
	bin  string
	exec executor
}

// New creates a bridge for the given osascript binary. An empty bin selects
// DefaultBin.
func New(bin string) *OsaScript {
	if bin == "" {
		bin = DefaultBin
	}
	return &OsaScript{bin: bin, exec: &osExecutor{}}
}

// Fetch runs the notes script and captures its output. The returned error
// covers only spawn failures (binary missing, permission); a script that ran
// and failed is reported through Output.ExitCode and Output.Stderr.
func (o *OsaScript) Fetch(ctx context.Context) (Output, error) {
	stdout, stderr, code, err := o.exec.RunCaptured(ctx, o.bin, "-e", notesScript)
	if err != nil {
		return Output{}, fmt.Errorf("invoking %s: %w", o.bin, err)
	}
	return Output{ExitCode: code, Stdout: stdout, Stderr: stderr}, nil
}
