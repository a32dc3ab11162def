package buffer

// Cursor is a position in document coordinates.
type Cursor struct {
	Line, Col int
}

func (c Cursor) Equal(other Cursor) bool {
	return c.Line == other.Line && c.Col == other.Col
}

// Clamp pulls c back inside d: the line into [0, LineCount) and the column
// into [0, ContentLen(line)].
func (c Cursor) Clamp(d *Document) Cursor {
	if c.Line >= d.LineCount() {
		c.Line = d.LineCount() - 1
	}
	if c.Line < 0 {
		c.Line = 0
	}
	if n := d.ContentLen(c.Line); c.Col > n {
		c.Col = n
	}
	if c.Col < 0 {
		c.Col = 0
	}
	return c
}

// Valid reports whether c addresses a column of d, at most one past the
// last character of its line. The terminator is not addressable.
func (c Cursor) Valid(d *Document) bool {
	return c.Line >= 0 && c.Line < d.LineCount() && c.Col >= 0 && c.Col <= d.ContentLen(c.Line)
}
