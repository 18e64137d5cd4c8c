// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/notes-emitter/pkg/types"
)

func TestBuildDocument(t *testing.T) {
	rec := types.NoteRecord{
		ID:       "1",
		Name:     "Shopping",
		BodyHTML: "<p>Milk</p>",
		Created:  "2024-01-01",
		Modified: "2024-01-02",
		Folder:   "Groceries",
		Account:  "me@example.com",
	}

	doc := buildDocument(rec, "Milk")

	assert.Equal(t, "CreativeWork", doc.Type)
	assert.Equal(t, "urn:apple:notes:note:1", doc.ID)
	assert.Equal(t, "Shopping", doc.Name)
	assert.Equal(t, "Milk", doc.Text)
	assert.Equal(t, "2024-01-01", doc.DateCreated)
	assert.Equal(t, "2024-01-02", doc.DateModified)
	assert.Equal(t, "Groceries", doc.IsPartOf)
	assert.Equal(t, "me@example.com", doc.Account)
	assert.Equal(t, "apple-notes", doc.Source)
}

// The wire schema is fixed: nine keys, in this order, for every record.
func TestDocumentWireSchema(t *testing.T) {
	doc := buildDocument(types.NoteRecord{
		ID: "42", Name: "n", Created: "c", Modified: "m", Folder: "f", Account: "a",
	}, "body text")

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	want := `{"@type":"CreativeWork","@id":"urn:apple:notes:note:42","name":"n",` +
		`"text":"body text","dateCreated":"c","dateModified":"m","isPartOf":"f",` +
		`"account":"a","source":"apple-notes"}`
	assert.Equal(t, want, string(data))

	var keys map[string]any
	require.NoError(t, json.Unmarshal(data, &keys))
	assert.Len(t, keys, 9)
}

// Malformed content never yields nulls: every field that survived decoding is
// emitted as a (possibly empty) string.
func TestDocumentNoNulls(t *testing.T) {
	doc := buildDocument(types.NoteRecord{}, "")

	data, err := json.Marshal(doc)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "null")
}
