package editor

import (
	"log"

	"github.com/gdamore/tcell/v2"
)

func (s *Session) handleKey(ev *tcell.EventKey) {
	switch s.state {
	case StateEditing:
		s.handleEditKey(ev)
	case StateMenu:
		s.handleMenuKey(ev)
	case StatePromptOpen, StatePromptSave, StateConfirmOverwrite:
		// Dialog gets every key while a prompt is up
		if s.dialog != nil {
			s.dialog.HandleKey(ev)
		}
	}
}

func (s *Session) handleEditKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyF1:
		s.openMenu()
	case tcell.KeyUp:
		s.cursor.MoveUp()
	case tcell.KeyDown:
		s.cursor.MoveDown()
	case tcell.KeyLeft:
		s.cursor.MoveLeft()
	case tcell.KeyRight:
		s.cursor.MoveRight()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		s.deleteBefore()
	case tcell.KeyEnter:
		s.insert('\n')
	case tcell.KeyTab:
		for i := 0; i < s.cfg.TabWidth; i++ {
			if !s.insert(' ') {
				break
			}
		}
	case tcell.KeyRune:
		if ev.Modifiers()&(tcell.ModCtrl|tcell.ModAlt) != 0 {
			return
		}
		if r := ev.Rune(); r >= ' ' && r <= '~' {
			s.insert(byte(r))
		}
	}
}

func (s *Session) handleMenuKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyF1:
		s.closeMenu()
	case tcell.KeyRight:
		s.startOpenPrompt()
	case tcell.KeyLeft:
		s.startSavePrompt()
	case tcell.KeyDown:
		s.saveInPlace()
	case tcell.KeyRune:
		if ev.Rune() == 'q' {
			s.quit()
		}
	}
}

// insert puts ch at the cursor. Printable characters are refused once the
// cursor reaches the last column of the edit window; a newline is always
// accepted. It reports whether the document changed.
func (s *Session) insert(ch byte) bool {
	pos := s.cursor.Pos
	if ch != '\n' && pos.Col >= s.view.Width-1 {
		return false
	}
	if err := s.doc.InsertChar(pos.Line, pos.Col, ch); err != nil {
		s.internalError(err)
		return false
	}
	if ch == '\n' {
		pos.Line++
		pos.Col = 0
	} else {
		pos.Col++
	}
	s.cursor.SetPos(pos)
	return true
}

func (s *Session) deleteBefore() {
	pos, err := s.doc.DeleteCharBefore(s.cursor.Pos.Line, s.cursor.Pos.Col)
	if err != nil {
		s.internalError(err)
		return
	}
	s.cursor.SetPos(pos)
}

// internalError reports an edit the buffer rejected. The document is left
// as it was.
func (s *Session) internalError(err error) {
	log.Printf("Session: edit at %d:%d rejected: %v", s.cursor.Pos.Line, s.cursor.Pos.Col, err)
	s.setTemporaryError("Internal error: " + err.Error())
}
