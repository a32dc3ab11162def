package buffer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// DefaultTabWidth is the number of spaces a tab expands to on load.
const DefaultTabWidth = 4

var (
	ErrOutOfRange = errors.New("position out of range")
	ErrNotFound   = errors.New("file not found")
)

// Document is the ordered list of lines being edited. Every line except the
// last carries its '\n' terminator; the last line never does. A Document
// always holds at least one line.
type Document struct {
	Lines []string
	Dirty bool
}

func New() *Document {
	return &Document{Lines: []string{""}}
}

// Load reads r to EOF and splits it into lines. Tabs are replaced by
// tabWidth literal spaces.
func Load(r io.Reader, tabWidth int) (*Document, error) {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.ReplaceAll(data, []byte{'\t'}, bytes.Repeat([]byte{' '}, tabWidth))

	content := string(data)
	lines := strings.SplitAfter(content, "\n")
	// SplitAfter leaves an empty final element when content ends in '\n',
	// which is exactly the unterminated last line we want.
	if len(lines) == 0 {
		lines = []string{""}
	}
	return &Document{Lines: lines}, nil
}

func (d *Document) LineCount() int {
	return len(d.Lines)
}

// ContentLen is the length of a line without its terminator. It returns 0
// for an invalid index.
func (d *Document) ContentLen(line int) int {
	if line < 0 || line >= len(d.Lines) {
		return 0
	}
	return len(strings.TrimSuffix(d.Lines[line], "\n"))
}

// Text returns a line without its terminator.
func (d *Document) Text(line int) string {
	if line < 0 || line >= len(d.Lines) {
		return ""
	}
	return strings.TrimSuffix(d.Lines[line], "\n")
}

func (d *Document) checkPos(line, col int) error {
	if line < 0 || line >= len(d.Lines) {
		return fmt.Errorf("%w: line %d of %d", ErrOutOfRange, line, len(d.Lines))
	}
	if col < 0 || col > d.ContentLen(line) {
		return fmt.Errorf("%w: column %d on line %d (length %d)", ErrOutOfRange, col, line, d.ContentLen(line))
	}
	return nil
}

// InsertChar inserts ch at (line, col). A '\n' splits the line: the head
// keeps the new terminator and the tail becomes the following line.
func (d *Document) InsertChar(line, col int, ch byte) error {
	if err := d.checkPos(line, col); err != nil {
		return err
	}
	cur := d.Lines[line]
	if ch != '\n' {
		d.Lines[line] = cur[:col] + string(ch) + cur[col:]
		d.Dirty = true
		return nil
	}

	head := cur[:col] + "\n"
	tail := cur[col:]
	d.Lines = append(d.Lines, "")
	copy(d.Lines[line+2:], d.Lines[line+1:])
	d.Lines[line] = head
	d.Lines[line+1] = tail
	d.Dirty = true
	return nil
}

// DeleteCharBefore removes the character before (line, col) and returns the
// resulting cursor position. At column 0 the line is joined onto the
// previous one; at (0, 0) nothing happens.
func (d *Document) DeleteCharBefore(line, col int) (Cursor, error) {
	if err := d.checkPos(line, col); err != nil {
		return Cursor{Line: line, Col: col}, err
	}
	cur := d.Lines[line]
	if col > 0 {
		d.Lines[line] = cur[:col-1] + cur[col:]
		d.Dirty = true
		return Cursor{Line: line, Col: col - 1}, nil
	}
	if line == 0 {
		return Cursor{}, nil
	}

	prev := strings.TrimSuffix(d.Lines[line-1], "\n")
	d.Lines[line-1] = prev + cur
	d.Lines = append(d.Lines[:line], d.Lines[line+1:]...)
	d.Dirty = true
	return Cursor{Line: line - 1, Col: len(prev)}, nil
}

// Serialize returns the document as it is written to disk.
func (d *Document) Serialize() []byte {
	var buf bytes.Buffer
	d.WriteTo(&buf)
	return buf.Bytes()
}

func (d *Document) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, line := range d.Lines {
		m, err := io.WriteString(w, line)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}
