package ui

import (
	"fmt"

	"pedit/config"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// StatusBar is the bottom row: file name on the left, an optional message,
// and the cursor position on the right.
type StatusBar struct {
	Filename string
	Modified bool
	Line     int
	Col      int
	Message  string // temporary status message
	IsError  bool
	Theme    *config.ColorScheme
}

func NewStatusBar() *StatusBar {
	return &StatusBar{}
}

func (s *StatusBar) Render(screen tcell.Screen, x, y, width, height int) {
	theme := s.Theme
	if theme == nil {
		theme = config.Themes["cyan"]
	}

	style := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Foreground)
	nameStyle := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Accent).Bold(true)

	// Clear the line
	for cx := x; cx < x+width; cx++ {
		screen.SetContent(cx, y, ' ', nil, style)
	}

	right := fmt.Sprintf(" Ln %d, Col %d", s.Line+1, s.Col+1)
	left := width - runewidth.StringWidth(right)
	if left < 0 {
		left = 0
		right = ""
	}

	fname := s.Filename
	if fname == "" {
		fname = "[no file]"
	}
	if s.Modified {
		fname += " *"
	}
	col := drawText(screen, x, y, left, runewidth.Truncate(fname, left, "…"), nameStyle)

	if s.Message != "" && col+2 < x+left {
		msgStyle := style
		if s.IsError {
			msgStyle = style.Foreground(theme.ErrorFg)
		}
		avail := x + left - col - 2
		drawText(screen, col+2, y, avail, runewidth.Truncate(s.Message, avail, "…"), msgStyle)
	}

	if right != "" {
		drawText(screen, x+left, y, width-left, right, style)
	}
}
