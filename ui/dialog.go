package ui

import (
	"strings"

	"pedit/config"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type DialogType int

const (
	DialogInput DialogType = iota
	DialogConfirm
)

// Dialog is a full-screen prompt: either a line of text input or a y/n
// question. Results are delivered through the callbacks.
type Dialog struct {
	Type   DialogType
	Prompt string
	Input  string
	Cursor int
	Error  string // shown on the line below the prompt

	Theme *config.ColorScheme

	OnSubmit  func(value string)
	OnCancel  func()
	OnConfirm func(answer rune) // 'y' or 'n'

	// Paste supplies text for Ctrl+V in input dialogs.
	Paste func() string
}

func NewInputDialog(prompt string) *Dialog {
	return &Dialog{
		Type:   DialogInput,
		Prompt: prompt,
	}
}

func NewConfirmDialog(prompt string) *Dialog {
	return &Dialog{
		Type:   DialogConfirm,
		Prompt: prompt,
	}
}

// Reprompt clears the input and shows a new prompt, used when the previous
// answer was rejected.
func (d *Dialog) Reprompt(prompt, errMsg string) {
	d.Prompt = prompt
	d.Input = ""
	d.Cursor = 0
	d.Error = errMsg
}

func (d *Dialog) Render(screen tcell.Screen, x, y, width, height int) {
	theme := d.Theme
	if theme == nil {
		theme = config.Themes["cyan"]
	}
	style := tcell.StyleDefault.Background(theme.Background).Foreground(theme.PromptFg)

	for cy := y; cy < y+height; cy++ {
		for cx := x; cx < x+width; cx++ {
			screen.SetContent(cx, cy, ' ', nil, style)
		}
	}

	line := d.Prompt
	cursorAt := -1
	if d.Type == DialogInput {
		line += d.Input
		cursorAt = runewidth.StringWidth(d.Prompt) + runewidth.StringWidth(string([]rune(d.Input)[:d.Cursor]))
	}

	// Keep the end of a long line (where typing happens) on screen, unless
	// the cursor has moved left of that window.
	skip := 0
	if w := runewidth.StringWidth(line) + 1; w > width {
		skip = w - width
	}
	if cursorAt >= 0 && cursorAt < skip {
		skip = cursorAt
	}
	col := x
	pos := 0
	for _, ch := range line {
		cw := runewidth.RuneWidth(ch)
		if pos >= skip && col+cw <= x+width {
			screen.SetContent(col, y, ch, nil, style)
			col += cw
		}
		pos += cw
	}
	if cursorAt >= 0 {
		screen.ShowCursor(x+cursorAt-skip, y)
	} else {
		screen.HideCursor()
	}

	if d.Error != "" && height > 2 {
		errStyle := style.Foreground(theme.ErrorFg)
		drawText(screen, x, y+2, width, runewidth.Truncate(d.Error, width, "…"), errStyle)
	}
}

func (d *Dialog) HandleKey(ev *tcell.EventKey) bool {
	if d.Type == DialogConfirm {
		return d.handleConfirmKey(ev)
	}
	return d.handleInputKey(ev)
}

func (d *Dialog) handleConfirmKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape {
		if d.OnCancel != nil {
			d.OnCancel()
		}
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}
	switch ch := ev.Rune(); ch {
	case 'y', 'n':
		if d.OnConfirm != nil {
			d.OnConfirm(ch)
		}
	}
	return true
}

func (d *Dialog) handleInputKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if d.OnCancel != nil {
			d.OnCancel()
		}
		return true
	case tcell.KeyEnter:
		if d.OnSubmit != nil {
			d.OnSubmit(strings.TrimSpace(d.Input))
		}
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if d.Cursor > 0 {
			runes := []rune(d.Input)
			d.Input = string(runes[:d.Cursor-1]) + string(runes[d.Cursor:])
			d.Cursor--
		}
		return true
	case tcell.KeyDelete:
		runes := []rune(d.Input)
		if d.Cursor < len(runes) {
			d.Input = string(runes[:d.Cursor]) + string(runes[d.Cursor+1:])
		}
		return true
	case tcell.KeyLeft:
		if d.Cursor > 0 {
			d.Cursor--
		}
		return true
	case tcell.KeyRight:
		if d.Cursor < len([]rune(d.Input)) {
			d.Cursor++
		}
		return true
	case tcell.KeyHome:
		d.Cursor = 0
		return true
	case tcell.KeyCtrlV:
		d.paste()
		return true
	case tcell.KeyEnd:
		d.Cursor = len([]rune(d.Input))
		return true
	case tcell.KeyRune:
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if r := ev.Rune(); r == 'v' || r == 'V' {
				d.paste()
			}
			return true
		}
		d.insert(string(ev.Rune()))
		return true
	}
	return false
}

func (d *Dialog) paste() {
	if d.Paste != nil {
		d.insert(d.Paste())
	}
}

func (d *Dialog) insert(text string) {
	runes := []rune(d.Input)
	d.Input = string(runes[:d.Cursor]) + text + string(runes[d.Cursor:])
	d.Cursor += len([]rune(text))
}

// drawText writes s from (x, y), stopping at width cells.
func drawText(screen tcell.Screen, x, y, width int, s string, style tcell.Style) int {
	col := x
	for _, ch := range s {
		cw := runewidth.RuneWidth(ch)
		if col+cw > x+width {
			break
		}
		screen.SetContent(col, y, ch, nil, style)
		col += cw
	}
	return col
}
