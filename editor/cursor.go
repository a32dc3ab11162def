package editor

import "pedit/buffer"

// CursorController moves the cursor through a document and scrolls the
// viewport when the cursor is pushed past its top or bottom row. The cursor
// position is kept in document coordinates only; the screen position is
// derived from the viewport.
type CursorController struct {
	Doc  *buffer.Document
	View *Viewport
	Pos  buffer.Cursor
}

func NewCursorController(doc *buffer.Document, view *Viewport) *CursorController {
	return &CursorController{Doc: doc, View: view}
}

// Reset points the controller at a new document with the cursor and the
// viewport at the top.
func (c *CursorController) Reset(doc *buffer.Document) {
	c.Doc = doc
	c.Pos = buffer.Cursor{}
	c.View.Top = 0
}

// Screen returns the cursor position relative to the viewport.
func (c *CursorController) Screen() (row, col int) {
	return c.View.Row(c.Pos.Line), c.Pos.Col
}

// maxCol is the last addressable column on a line: the end of its text,
// further limited by the viewport width.
func (c *CursorController) maxCol(line int) int {
	n := c.Doc.ContentLen(line)
	if c.View.Width > 0 && n > c.View.Width-1 {
		n = c.View.Width - 1
	}
	return n
}

func (c *CursorController) clampCol() {
	if m := c.maxCol(c.Pos.Line); c.Pos.Col > m {
		c.Pos.Col = m
	}
	if c.Pos.Col < 0 {
		c.Pos.Col = 0
	}
}

// MoveUp moves one line up, scrolling when the cursor is on the top row.
// It reports whether the viewport scrolled.
func (c *CursorController) MoveUp() bool {
	row := c.View.Row(c.Pos.Line)
	switch {
	case row > 0:
		c.Pos.Line--
		c.clampCol()
		return false
	case c.View.ScrollUp():
		c.Pos.Line--
		c.clampCol()
		return true
	}
	return false
}

// MoveDown moves one line down, scrolling when the cursor is on the bottom
// row and more lines follow. It reports whether the viewport scrolled.
func (c *CursorController) MoveDown() bool {
	if c.Pos.Line+1 >= c.Doc.LineCount() {
		return false
	}
	row := c.View.Row(c.Pos.Line)
	if row < c.View.Height-1 {
		c.Pos.Line++
		c.clampCol()
		return false
	}
	if !c.View.ScrollDown(c.Doc.LineCount()) {
		return false
	}
	c.Pos.Line++
	c.clampCol()
	return true
}

func (c *CursorController) MoveLeft() {
	if c.Pos.Col > 0 {
		c.Pos.Col--
	}
}

func (c *CursorController) MoveRight() {
	if c.Pos.Col < c.maxCol(c.Pos.Line) {
		c.Pos.Col++
	}
}

// SetPos places the cursor after an edit and scrolls just enough to keep it
// visible. It reports whether the viewport moved.
func (c *CursorController) SetPos(pos buffer.Cursor) bool {
	c.Pos = pos.Clamp(c.Doc)
	top := c.View.Top
	c.View.Follow(c.Pos.Line, c.Doc.LineCount())
	return c.View.Top != top
}

// Resize applies a new viewport size and keeps the cursor inside it.
func (c *CursorController) Resize(width, height int) {
	c.View.Resize(width, height, c.Doc.LineCount(), c.Pos.Line)
	c.clampCol()
}
