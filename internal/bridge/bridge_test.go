// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bridge

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeExecutor records the invocation and returns canned results.
type fakeExecutor struct {
	gotName string
	gotArgs []string

	stdout   []byte
	stderr   []byte
	exitCode int
	err      error
}

func (f *fakeExecutor) RunCaptured(ctx context.Context, name string, args ...string) ([]byte, []byte, int, error) {
	f.gotName = name
	f.gotArgs = args
	return f.stdout, f.stderr, f.exitCode, f.err
}

func TestFetchInvocation(t *testing.T) {
	fx := &fakeExecutor{stdout: []byte("payload")}
	b := &OsaScript{bin: "osascript", exec: fx}

	out, err := b.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "payload", string(out.Stdout))
	assert.Equal(t, 0, out.ExitCode)

	assert.Equal(t, "osascript", fx.gotName)
	require.Len(t, fx.gotArgs, 2)
	assert.Equal(t, "-e", fx.gotArgs[0])

	// The script is the wire-format contract: it must target Notes and
	// join fields and records with the two delimiter tokens.
	script := fx.gotArgs[1]
	assert.True(t, strings.Contains(script, `tell application "Notes"`))
	assert.True(t, strings.Contains(script, `"|||"`))
	assert.True(t, strings.Contains(script, `"~~~"`))
}

func TestFetchScriptFailure(t *testing.T) {
	fx := &fakeExecutor{exitCode: 1, stderr: []byte("execution error")}
	b := &OsaScript{bin: "osascript", exec: fx}

	out, err := b.Fetch(context.Background())
	require.NoError(t, err, "a script that ran and failed is not a fetch error")
	assert.Equal(t, 1, out.ExitCode)
	assert.Equal(t, "execution error", string(out.Stderr))
}

func TestFetchSpawnFailure(t *testing.T) {
	fx := &fakeExecutor{err: errors.New("executable file not found in $PATH")}
	b := &OsaScript{bin: "osascript", exec: fx}

	_, err := b.Fetch(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoking osascript")
}

func TestNewDefaultBin(t *testing.T) {
	assert.Equal(t, DefaultBin, New("").bin)
	assert.Equal(t, "/usr/bin/osascript", New("/usr/bin/osascript").bin)
}
