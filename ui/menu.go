package ui

import (
	"pedit/config"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// MenuItem is one line of the F1 menu.
type MenuItem struct {
	Label string
	Key   string
}

var DefaultMenuItems = []MenuItem{
	{Label: "Open", Key: "->"},
	{Label: "Save", Key: "Down Arrow Key"},
	{Label: "Save As", Key: "<-"},
	{Label: "Exit", Key: "q"},
}

// Menu is the boxed options overlay centred over the edit window.
type Menu struct {
	Items   []MenuItem
	Message string
	IsError bool
	Theme   *config.ColorScheme
}

func NewMenu() *Menu {
	return &Menu{Items: DefaultMenuItems}
}

// Bounds returns the menu rectangle for a parent area: half its size,
// centred.
func (m *Menu) Bounds(x, y, width, height int) (mx, my, mw, mh int) {
	mw = width / 2
	mh = height / 2
	mx = x + (width-mw)/2
	my = y + (height-mh)/2
	return
}

func (m *Menu) Render(screen tcell.Screen, x, y, width, height int) {
	theme := m.Theme
	if theme == nil {
		theme = config.Themes["cyan"]
	}
	mx, my, mw, mh := m.Bounds(x, y, width, height)
	if mw < 4 || mh < 3 {
		return
	}
	bgStyle := tcell.StyleDefault.Background(theme.MenuBg).Foreground(theme.MenuFg)
	borderStyle := bgStyle.Foreground(theme.Border)

	for dy := 0; dy < mh; dy++ {
		for dx := 0; dx < mw; dx++ {
			screen.SetContent(mx+dx, my+dy, ' ', nil, bgStyle)
		}
	}
	drawBox(screen, mx, my, mw, mh, borderStyle)

	inner := mw - 2
	row := my + 1
	put := func(indent int, s string, st tcell.Style) {
		if row >= my+mh-1 || indent >= inner {
			row++
			return
		}
		drawText(screen, mx+1+indent, row, inner-indent, runewidth.Truncate(s, inner-indent, "…"), st)
		row++
	}

	put(0, "Press the corresponding key for any of the following options:", bgStyle)
	row++
	for _, it := range m.Items {
		put(2, it.Label+" ("+it.Key+")", bgStyle)
	}
	if m.Message != "" {
		row++
		st := bgStyle.Foreground(theme.Accent)
		if m.IsError {
			st = bgStyle.Foreground(theme.ErrorFg)
		}
		put(2, m.Message, st)
	}
}

// drawBox draws a single-line border around the rectangle.
func drawBox(screen tcell.Screen, x, y, w, h int, style tcell.Style) {
	if w < 2 || h < 2 {
		return
	}
	for dx := 1; dx < w-1; dx++ {
		screen.SetContent(x+dx, y, tcell.RuneHLine, nil, style)
		screen.SetContent(x+dx, y+h-1, tcell.RuneHLine, nil, style)
	}
	for dy := 1; dy < h-1; dy++ {
		screen.SetContent(x, y+dy, tcell.RuneVLine, nil, style)
		screen.SetContent(x+w-1, y+dy, tcell.RuneVLine, nil, style)
	}
	screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}
