package editor

import (
	"pedit/ui"

	"github.com/gdamore/tcell/v2"
)

// displayRune maps a document byte to the rune drawn for it. Control bytes
// are shown as '?'.
func displayRune(b byte) rune {
	if b < ' ' || b == 0x7f {
		return '?'
	}
	return rune(b)
}

func (s *Session) render() {
	theme := s.cfg.GetTheme()

	defaultStyle := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Foreground)
	s.screen.SetStyle(defaultStyle)
	s.screen.Clear()

	screenW, screenH := s.screen.Size()

	// Prompts take over the whole screen
	if s.dialog != nil {
		s.dialog.Theme = theme
		s.dialog.Render(s.screen, 0, 0, screenW, screenH)
		s.screen.Show()
		return
	}

	s.frame.Theme = theme
	s.frame.Render(s.screen, screenW, screenH)

	tx, ty, tw, th := ui.TextArea(screenW, screenH)
	s.renderText(tx, ty, tw, th, defaultStyle)

	s.statusBar.Theme = theme
	s.statusBar.Filename = s.filename
	s.statusBar.Modified = s.doc.Dirty
	s.statusBar.Line = s.cursor.Pos.Line
	s.statusBar.Col = s.cursor.Pos.Col
	s.statusBar.Render(s.screen, 0, screenH-1, screenW, 1)

	if s.state == StateMenu {
		s.menu.Theme = theme
		s.menu.Render(s.screen, tx, ty, tw, th)
		s.screen.HideCursor()
	} else {
		row, col := s.cursor.Screen()
		if col > tw-1 {
			col = tw - 1
		}
		s.screen.ShowCursor(tx+col, ty+row)
	}

	s.screen.Show()
}

// renderText draws the visible document lines, cut at the window width.
func (s *Session) renderText(x, y, width, height int, style tcell.Style) {
	start, end := s.view.VisibleRange(s.doc.LineCount())
	for i := start; i < end && i-start < height; i++ {
		text := s.doc.Text(i)
		for c := 0; c < len(text) && c < width; c++ {
			s.screen.SetContent(x+c, y+i-start, displayRune(text[c]), nil, style)
		}
	}
}
