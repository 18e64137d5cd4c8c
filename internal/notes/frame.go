// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package notes implements the emitter pipeline: framing the delimited
// payload returned by the osascript bridge into records, converting note
// bodies from HTML to plain text, and streaming fixed-schema JSON documents
// to an output sink. See docs/ARCHITECTURE § Emitter Pipeline.
//
// The wire format between the bridge script and this package uses two
// delimiter tokens with no escaping: "~~~" between notes and "|||" between
// fields. A note whose own content contains either token corrupts framing
// silently. This is a limitation of the upstream script contract and is
// deliberately preserved here; see docs/ARCHITECTURE § Wire Format.
package notes

import (
	"strings"

	"github.com/pdiddy/notes-emitter/pkg/types"
)

const (
	// recordSep separates notes in the bridge payload.
	recordSep = "~~~"

	// fieldSep separates fields within one note.
	fieldSep = "|||"
)

// splitBlocks frames the raw payload into record blocks. Blocks that are
// empty after trimming (a trailing separator produces one) are dropped
// silently; they are not an error.
func splitBlocks(payload string) []string {
	var blocks []string
	for _, b := range strings.Split(payload, recordSep) {
		if strings.TrimSpace(b) == "" {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// fieldReader consumes the field sequence of one record block in order.
type fieldReader struct {
	fields []string
	pos    int
}

// next returns the next field, trimmed. When the sequence is exhausted it
// fails with a parse error naming the field that was being read.
func (r *fieldReader) next(context, missing string) (string, error) {
	if r.pos >= len(r.fields) {
		return "", parseErr(context, missing)
	}
	f := r.fields[r.pos]
	r.pos++
	return strings.TrimSpace(f), nil
}

// decodeBlock decodes one record block into a NoteRecord. Exactly seven
// fields are extracted in fixed order; trailing extra fields are ignored.
// Field content is passed through untouched apart from trimming — the
// timestamps in particular are opaque text.
func decodeBlock(block string) (types.NoteRecord, error) {
	r := fieldReader{fields: strings.Split(block, fieldSep)}

	var rec types.NoteRecord
	var err error

	if rec.ID, err = r.next("reading note id", "missing id field"); err != nil {
		return types.NoteRecord{}, err
	}
	if rec.Name, err = r.next("reading note name", "missing name field"); err != nil {
		return types.NoteRecord{}, err
	}
	if rec.BodyHTML, err = r.next("reading note body", "missing body field"); err != nil {
		return types.NoteRecord{}, err
	}
	if rec.Created, err = r.next("reading creation date", "missing creation date field"); err != nil {
		return types.NoteRecord{}, err
	}
	if rec.Modified, err = r.next("reading modification date", "missing modification date field"); err != nil {
		return types.NoteRecord{}, err
	}
	if rec.Folder, err = r.next("reading folder name", "missing folder field"); err != nil {
		return types.NoteRecord{}, err
	}
	if rec.Account, err = r.next("reading account name", "missing account field"); err != nil {
		return types.NoteRecord{}, err
	}

	return rec, nil
}
