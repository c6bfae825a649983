package filesystem

import (
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
)

// IsText reports whether data is text the generator may rewrite: valid
// UTF-8 that mimetype classifies as text/plain or one of its descendants
// (source code, JSON, HTML, ...). Empty content counts as text.
func IsText(data []byte) bool {
	if len(data) == 0 {
		return true
	}
	if !utf8.Valid(data) {
		return false
	}
	for m := mimetype.Detect(data); m != nil; m = m.Parent() {
		if m.Is("text/plain") {
			return true
		}
	}
	return false
}
