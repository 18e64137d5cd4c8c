// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import "github.com/pdiddy/notes-emitter/pkg/types"

// buildDocument maps a decoded record and its converted body text into the
// emitted document. Pure; it cannot fail — every record that survived
// decoding and conversion produces a well-formed document.
func buildDocument(rec types.NoteRecord, text string) types.Document {
	return types.Document{
		Type:         types.DocType,
		ID:           types.DocIDPrefix + rec.ID,
		Name:         rec.Name,
		Text:         text,
		DateCreated:  rec.Created,
		DateModified: rec.Modified,
		IsPartOf:     rec.Folder,
		Account:      rec.Account,
		Source:       types.DocSource,
	}
}
