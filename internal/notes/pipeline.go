// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"context"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/notes-emitter/internal/bridge"
	"github.com/pdiddy/notes-emitter/pkg/types"
)

// Pipeline drives one emitter run: fetch the payload from the bridge, frame
// and decode it record by record, convert each body to text, and hand the
// built documents to a sink. Records are processed strictly in source order,
// one at a time; the first failure at any stage aborts the run. Documents
// already written before a failure stay written.
type Pipeline struct {
	Bridge    bridge.Bridge
	WrapWidth int

	// Log receives checkpoint events (start, per-record, completion).
	// Nil means no logging.
	Log *zap.Logger
}

// Run fetches the notes payload and streams one JSON document per note to w,
// newline-terminated, flushing once at the end. It returns the number of
// documents written. An empty payload is a successful run with zero
// documents.
func (p *Pipeline) Run(ctx context.Context, w io.Writer) (int, error) {
	sw := newStreamWriter(w)
	if err := p.each(ctx, sw.write); err != nil {
		// Documents emitted before the failure stay written; the flush
		// error, if any, is secondary to the one being reported.
		_ = sw.bw.Flush()
		return sw.count, err
	}
	if err := sw.flush(); err != nil {
		return sw.count, err
	}
	p.log().Info("finished apple notes emitter", zap.Int("notes", sw.count))
	return sw.count, nil
}

// Collect runs the same pipeline but gathers the built documents instead of
// streaming them. Used by the snapshot and export commands.
func (p *Pipeline) Collect(ctx context.Context) ([]types.Document, error) {
	var docs []types.Document
	err := p.each(ctx, func(doc types.Document) error {
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	p.log().Info("collected apple notes", zap.Int("notes", len(docs)))
	return docs, nil
}

// each fetches, validates, and decodes the payload, calling emit for each
// built document in source order.
func (p *Pipeline) each(ctx context.Context, emit func(types.Document) error) error {
	log := p.log()
	log.Info("starting apple notes emitter")

	out, err := p.Bridge.Fetch(ctx)
	if err != nil {
		return ioErr("invoking osascript", err)
	}

	log.Debug("osascript completed",
		zap.Int("status", out.ExitCode),
		zap.Int("stdout_len", len(out.Stdout)),
		zap.Int("stderr_len", len(out.Stderr)))

	if out.ExitCode != 0 {
		return bridgeErr(out.ExitCode, string(out.Stderr))
	}

	// Invalid byte sequences are replaced, never fatal.
	payload := strings.ToValidUTF8(string(out.Stdout), "�")

	if strings.TrimSpace(payload) == "" {
		log.Info("no notes returned from Apple Notes")
		return nil
	}

	width := p.WrapWidth
	if width <= 0 {
		width = DefaultWrapWidth
	}

	for _, block := range splitBlocks(payload) {
		rec, err := decodeBlock(block)
		if err != nil {
			return err
		}

		text, err := htmlToText(rec.BodyHTML, width)
		if err != nil {
			return err
		}

		log.Debug("emitting note",
			zap.String("note_id", rec.ID),
			zap.String("account", rec.Account),
			zap.String("folder", rec.Folder),
			zap.String("name", rec.Name))

		if err := emit(buildDocument(rec, text)); err != nil {
			return err
		}
	}

	return nil
}

func (p *Pipeline) log() *zap.Logger {
	if p.Log == nil {
		return zap.NewNop()
	}
	return p.Log
}
