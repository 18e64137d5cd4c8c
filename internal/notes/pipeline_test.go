// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notes-emitter/internal/bridge"
)

// fakeBridge implements bridge.Bridge for testing, returning a canned
// payload or a spawn error.
type fakeBridge struct {
	out bridge.Output
	err error
}

func (f *fakeBridge) Fetch(ctx context.Context) (bridge.Output, error) {
	return f.out, f.err
}

func payloadBridge(payload string) *fakeBridge {
	return &fakeBridge{out: bridge.Output{Stdout: []byte(payload)}}
}

func TestRunExampleScenario(t *testing.T) {
	payload := "1|||Shopping|||<p>Milk</p>|||2024-01-01|||2024-01-02|||Groceries|||me@example.com~~~"
	p := &Pipeline{Bridge: payloadBridge(payload)}

	var out bytes.Buffer
	count, err := p.Run(context.Background(), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	want := `{"@type":"CreativeWork","@id":"urn:apple:notes:note:1","name":"Shopping",` +
		`"text":"Milk","dateCreated":"2024-01-01","dateModified":"2024-01-02",` +
		`"isPartOf":"Groceries","account":"me@example.com","source":"apple-notes"}` + "\n"
	assert.Equal(t, want, out.String())
}

func TestRunEmptyPayload(t *testing.T) {
	for _, payload := range []string{"", "   \n\t  "} {
		p := &Pipeline{Bridge: payloadBridge(payload)}

		var out bytes.Buffer
		count, err := p.Run(context.Background(), &out)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
		assert.Empty(t, out.String())
	}
}

func TestRunBridgeFailure(t *testing.T) {
	p := &Pipeline{Bridge: &fakeBridge{out: bridge.Output{
		ExitCode: 1,
		Stderr:   []byte("execution error: Notes got an error"),
	}}}

	var out bytes.Buffer
	_, err := p.Run(context.Background(), &out)
	require.Error(t, err)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindBridge, e.Kind)
	assert.Equal(t, 1, e.Status)
	assert.Contains(t, e.Message, "Notes got an error")
	assert.Empty(t, out.String())
}

func TestRunSpawnFailure(t *testing.T) {
	p := &Pipeline{Bridge: &fakeBridge{err: errors.New("executable file not found")}}

	_, err := p.Run(context.Background(), &bytes.Buffer{})
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindIO, e.Kind)
	assert.Equal(t, "invoking osascript", e.Context)
}

func TestRunOrderPreservation(t *testing.T) {
	var b strings.Builder
	for _, id := range []string{"7", "3", "9"} {
		b.WriteString(id + "|||n|||<p>x</p>|||c|||m|||f|||a~~~")
	}
	p := &Pipeline{Bridge: payloadBridge(b.String())}

	var out bytes.Buffer
	count, err := p.Run(context.Background(), &out)
	require.NoError(t, err)
	require.Equal(t, 3, count)

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	for i, wantID := range []string{"7", "3", "9"} {
		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(lines[i]), &doc))
		assert.Equal(t, "urn:apple:notes:note:"+wantID, doc["@id"])
	}
}

func TestRunMissingFieldAborts(t *testing.T) {
	payload := "1|||a|||<p>x</p>|||c|||m|||f|||acct~~~" +
		"2|||b|||<p>y</p>~~~" // truncated after the body field

	p := &Pipeline{Bridge: payloadBridge(payload)}

	var out bytes.Buffer
	count, err := p.Run(context.Background(), &out)

	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindParse, e.Kind)
	assert.Equal(t, "reading creation date", e.Context)

	// The document before the failure stays written.
	assert.Equal(t, 1, count)
	assert.Contains(t, out.String(), `"urn:apple:notes:note:1"`)
	assert.NotContains(t, out.String(), `"urn:apple:notes:note:2"`)
}

func TestRunInvalidUTF8Replaced(t *testing.T) {
	raw := append([]byte("1|||bad"), 0xff, 0xfe)
	raw = append(raw, []byte("name|||<p>x</p>|||c|||m|||f|||a~~~")...)

	p := &Pipeline{Bridge: &fakeBridge{out: bridge.Output{Stdout: raw}}}

	var out bytes.Buffer
	count, err := p.Run(context.Background(), &out)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	assert.Contains(t, out.String(), "bad�name")
}

// failWriter fails every write.
type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("sink closed")
}

func TestRunWriteFailure(t *testing.T) {
	payload := "1|||n|||<p>x</p>|||c|||m|||f|||a~~~"
	p := &Pipeline{Bridge: payloadBridge(payload)}

	_, err := p.Run(context.Background(), failWriter{})
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, KindIO, e.Kind)
}

func TestCollect(t *testing.T) {
	payload := "1|||n1|||<p>x</p>|||c|||m|||f|||a~~~2|||n2|||<p>y</p>|||c|||m|||f|||a~~~"
	p := &Pipeline{Bridge: payloadBridge(payload)}

	docs, err := p.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "urn:apple:notes:note:1", docs[0].ID)
	assert.Equal(t, "urn:apple:notes:note:2", docs[1].ID)
	assert.Equal(t, "n2", docs[1].Name)
}

func TestCollectEmptyPayload(t *testing.T) {
	p := &Pipeline{Bridge: payloadBridge("")}

	docs, err := p.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}
