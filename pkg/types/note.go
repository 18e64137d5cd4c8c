// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the domain types shared across the emitter pipeline.
// See docs/ARCHITECTURE § Data Model.
package types

// NoteRecord is the typed view of one decoded note. All fields are trimmed
// of surrounding whitespace; the timestamps are kept as opaque strings in
// whatever format the Notes application produced them.
type NoteRecord struct {
	// ID is the note identifier as reported by the Notes application
	// (e.g. "x-coredata://.../ICNote/p42").
	ID string

	// Name is the note title.
	Name string

	// BodyHTML is the raw rich-text body, HTML as stored by Notes.
	BodyHTML string

	// Created is the creation timestamp, opaque text.
	Created string

	// Modified is the modification timestamp, opaque text.
	Modified string

	// Folder is the containing folder name.
	Folder string

	// Account is the containing account name.
	Account string
}

const (
	// DocType is the JSON-LD type emitted for every note.
	DocType = "CreativeWork"

	// DocSource identifies the origin system in every emitted document.
	DocSource = "apple-notes"

	// DocIDPrefix is prepended to the note ID to form the document @id.
	DocIDPrefix = "urn:apple:notes:note:"
)

// Document is the fixed-schema object emitted per note, one JSON object per
// line on stdout. Field order here is the wire key order; it must not change.
type Document struct {
	Type         string `json:"@type" yaml:"@type"`
	ID           string `json:"@id" yaml:"@id"`
	Name         string `json:"name" yaml:"name"`
	Text         string `json:"text" yaml:"text"`
	DateCreated  string `json:"dateCreated" yaml:"dateCreated"`
	DateModified string `json:"dateModified" yaml:"dateModified"`
	IsPartOf     string `json:"isPartOf" yaml:"isPartOf"`
	Account      string `json:"account" yaml:"account"`
	Source       string `json:"source" yaml:"source"`
}
