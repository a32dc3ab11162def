package ui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init failed: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func readRow(screen tcell.SimulationScreen, y, w int) string {
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestInputDialogEditsAndSubmitsTrimmed(t *testing.T) {
	d := NewInputDialog("Name: ")
	var got string
	d.OnSubmit = func(v string) { got = v }

	for _, r := range " abd" {
		d.HandleKey(runeKey(r))
	}
	d.HandleKey(key(tcell.KeyLeft))
	d.HandleKey(runeKey('c'))
	d.HandleKey(key(tcell.KeyEnd))
	d.HandleKey(runeKey(' '))
	if d.Input != " abcd " {
		t.Fatalf("expected \" abcd \", got %q", d.Input)
	}

	d.HandleKey(key(tcell.KeyHome))
	d.HandleKey(key(tcell.KeyDelete))
	d.HandleKey(key(tcell.KeyEnd))
	d.HandleKey(key(tcell.KeyBackspace2))
	d.HandleKey(runeKey(' '))
	d.HandleKey(key(tcell.KeyEnter))
	if got != "abcd" {
		t.Fatalf("expected trimmed abcd, got %q", got)
	}
}

func TestInputDialogEscapeCancels(t *testing.T) {
	d := NewInputDialog("Name: ")
	cancelled := false
	d.OnCancel = func() { cancelled = true }
	d.HandleKey(key(tcell.KeyEscape))
	if !cancelled {
		t.Fatalf("expected cancel callback")
	}
}

func TestConfirmDialogAcceptsOnlyLowercaseYN(t *testing.T) {
	d := NewConfirmDialog("Overwrite? y/n")
	var answers []rune
	d.OnConfirm = func(a rune) { answers = append(answers, a) }

	for _, r := range "Yxq" {
		d.HandleKey(runeKey(r))
	}
	d.HandleKey(key(tcell.KeyEnter))
	if len(answers) != 0 {
		t.Fatalf("expected other keys ignored, got %q", string(answers))
	}
	d.HandleKey(runeKey('n'))
	d.HandleKey(runeKey('y'))
	if string(answers) != "ny" {
		t.Fatalf("expected ny, got %q", string(answers))
	}
}

func TestRepromptClearsInput(t *testing.T) {
	d := NewInputDialog("First: ")
	d.HandleKey(runeKey('x'))
	d.Reprompt("Again: ", "bad name")
	if d.Prompt != "Again: " || d.Input != "" || d.Cursor != 0 || d.Error != "bad name" {
		t.Fatalf("unexpected dialog after reprompt: %+v", d)
	}
}

func TestDialogRenderShowsPromptInputAndError(t *testing.T) {
	screen := newScreen(t, 40, 5)
	d := NewInputDialog("File: ")
	for _, r := range "a.txt" {
		d.HandleKey(runeKey(r))
	}
	d.Error = "nope"
	d.Render(screen, 0, 0, 40, 5)

	if row := readRow(screen, 0, 40); !strings.HasPrefix(row, "File: a.txt") {
		t.Fatalf("expected prompt and input, got %q", row)
	}
	if row := readRow(screen, 2, 40); !strings.HasPrefix(row, "nope") {
		t.Fatalf("expected error line, got %q", row)
	}
}

func TestDialogRenderKeepsTailOfLongInputVisible(t *testing.T) {
	screen := newScreen(t, 20, 3)
	d := NewInputDialog("Enter a file name: ")
	for _, r := range "/very/long/path/name.txt" {
		d.HandleKey(runeKey(r))
	}
	d.Render(screen, 0, 0, 20, 3)
	if row := readRow(screen, 0, 20); !strings.Contains(row, "name.txt") {
		t.Fatalf("expected end of input visible, got %q", row)
	}
}

func TestInputDialogPasteInsertsAtCursor(t *testing.T) {
	d := NewInputDialog("Name: ")
	d.Paste = func() string { return "notes" }
	d.HandleKey(runeKey('.'))
	d.HandleKey(key(tcell.KeyHome))
	d.HandleKey(key(tcell.KeyCtrlV))
	d.HandleKey(key(tcell.KeyEnd))
	d.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'v', tcell.ModCtrl))
	if d.Input != "notes.notes" || d.Cursor != len("notes.notes") {
		t.Fatalf("expected notes.notes with cursor at end, got %q at %d", d.Input, d.Cursor)
	}
}

func TestDialogRenderFollowsCursorIntoLongInput(t *testing.T) {
	screen := newScreen(t, 20, 3)
	d := NewInputDialog("Enter a file name: ")
	for _, r := range "/very/long/path/name.txt" {
		d.HandleKey(runeKey(r))
	}
	d.HandleKey(key(tcell.KeyHome))
	d.Render(screen, 0, 0, 20, 3)

	if row := readRow(screen, 0, 20); !strings.HasPrefix(row, "/very") {
		t.Fatalf("expected start of input visible, got %q", row)
	}
	if x, y, visible := screen.GetCursor(); !visible || x != 0 || y != 0 {
		t.Fatalf("expected cursor at (0,0), got (%d,%d) visible=%v", x, y, visible)
	}

	for i := 0; i < 3; i++ {
		d.HandleKey(key(tcell.KeyRight))
	}
	d.Render(screen, 0, 0, 20, 3)
	if x, _, _ := screen.GetCursor(); x < 0 || x >= 20 {
		t.Fatalf("cursor left the screen: x=%d", x)
	}
}
