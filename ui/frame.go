package ui

import (
	"pedit/config"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

const (
	DefaultTitle = "pedit"
	MenuHint     = "<Press F1 for menu>"
)

// Frame draws the fixed chrome around the edit window: the title and menu
// hint on the top row and a border box between the top row and the status
// bar.
type Frame struct {
	Title  string
	Hint   string
	Notice string // shown at the left of the top row, e.g. a usage message
	Theme  *config.ColorScheme
}

func NewFrame() *Frame {
	return &Frame{Title: DefaultTitle, Hint: MenuHint}
}

// TextArea returns the rectangle available for document text on a screen of
// the given size: inside the border, below the title row and above the
// status bar.
func TextArea(screenW, screenH int) (x, y, w, h int) {
	x, y = 1, 2
	w = screenW - 3
	h = screenH - 4
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return
}

func (f *Frame) Render(screen tcell.Screen, width, height int) {
	theme := f.Theme
	if theme == nil {
		theme = config.Themes["cyan"]
	}
	style := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Foreground)
	accent := tcell.StyleDefault.Background(theme.Background).Foreground(theme.Accent).Bold(true)

	for cx := 0; cx < width; cx++ {
		screen.SetContent(cx, 0, ' ', nil, style)
	}

	hintW := runewidth.StringWidth(f.Hint)
	hintX := width - 1 - hintW
	titleW := runewidth.StringWidth(f.Title)
	titleX := width/2 - titleW/2

	if f.Notice != "" {
		limit := width
		if hintX > 0 {
			limit = hintX - 1
		}
		drawText(screen, 0, 0, limit, runewidth.Truncate(f.Notice, limit, "…"), style)
	} else if titleX >= 0 && titleX+titleW < hintX {
		drawText(screen, titleX, 0, titleW, f.Title, accent)
	}
	if hintX >= 0 {
		drawText(screen, hintX, 0, hintW, f.Hint, accent)
	}

	if height >= 4 && width >= 3 {
		drawBox(screen, 0, 1, width-1, height-2, style.Foreground(theme.Border))
	}
}
