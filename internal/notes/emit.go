// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"bufio"
	"encoding/json"
	"io"

	"github.com/pdiddy/notes-emitter/pkg/types"
)

// streamWriter serializes documents as newline-delimited JSON through a
// buffered writer. The buffer is flushed exactly once, by the caller, after
// the last document.
type streamWriter struct {
	bw    *bufio.Writer
	count int
}

func newStreamWriter(w io.Writer) *streamWriter {
	return &streamWriter{bw: bufio.NewWriter(w)}
}

// write serializes one document followed by a newline.
func (s *streamWriter) write(doc types.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return encodeErr("writing JSON to stdout", err)
	}
	if _, err := s.bw.Write(data); err != nil {
		return ioErr("writing JSON to stdout", err)
	}
	if err := s.bw.WriteByte('\n'); err != nil {
		return ioErr("writing newline to stdout", err)
	}
	s.count++
	return nil
}

func (s *streamWriter) flush() error {
	if err := s.bw.Flush(); err != nil {
		return ioErr("flushing stdout", err)
	}
	return nil
}
