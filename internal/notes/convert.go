// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package notes

import (
	"strings"

	"github.com/jaytaylor/html2text"
	"github.com/muesli/reflow/wordwrap"
)

// DefaultWrapWidth is the column width used when the caller does not
// configure one.
const DefaultWrapWidth = 80

// htmlToText converts a note body from HTML to plain text and reflows it at
// the given column width. Words longer than the width are left unbroken.
// The result is trimmed of leading and trailing whitespace.
func htmlToText(body string, width int) (string, error) {
	if width <= 0 {
		width = DefaultWrapWidth
	}

	text, err := html2text.FromString(body, html2text.Options{OmitLinks: true})
	if err != nil {
		return "", &Error{
			Kind:    KindParse,
			Context: "converting note body from HTML to text",
			Message: err.Error(),
			Err:     err,
		}
	}

	return strings.TrimSpace(wordwrap.String(text, width)), nil
}
