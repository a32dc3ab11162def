// Package clipboardx reads the system clipboard for pasting into prompts.
package clipboardx

import (
	"log"
	"strings"

	"github.com/atotto/clipboard"
)

// readAll is swapped out in tests.
var readAll = clipboard.ReadAll

// Read returns the clipboard contents, or "" when no clipboard tool is
// available.
func Read() string {
	text, err := readAll()
	if err != nil {
		log.Printf("Clipboard: read failed: %v", err)
		return ""
	}
	return text
}

// Line returns the first line of the clipboard with surrounding blanks
// removed, which is what a single-line prompt can take.
func Line() string {
	text := Read()
	if i := strings.IndexAny(text, "\r\n"); i >= 0 {
		text = text[:i]
	}
	return strings.TrimSpace(text)
}
