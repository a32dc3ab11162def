package editor

import (
	"errors"
	"fmt"
	"log"
	"time"

	"pedit/buffer"
	"pedit/clipboardx"
	"pedit/config"
	"pedit/ui"

	"github.com/gdamore/tcell/v2"
)

// ErrUnsupportedTerminal is returned by Run when the terminal cannot show
// colour.
var ErrUnsupportedTerminal = errors.New("terminal does not support color")

// minColors is what the accent colour scheme needs.
const minColors = 8

type State int

const (
	StateEditing State = iota
	StateMenu
	StatePromptOpen
	StatePromptSave
	StateConfirmOverwrite
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateEditing:
		return "editing"
	case StateMenu:
		return "menu"
	case StatePromptOpen:
		return "prompt-open"
	case StatePromptSave:
		return "prompt-save"
	case StateConfirmOverwrite:
		return "confirm-overwrite"
	case StateTerminated:
		return "terminated"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

const (
	promptOpen       = "Please enter the name of the text file you would like to open: "
	promptOpenRetry  = "That file does not exist. Please enter another filename: "
	promptSave       = "Please enter a name for the file being saved, before exiting: "
	promptSaveRetry  = "Please enter a valid file name: "
	promptOverwrite  = "File already exists. Are you sure you want to overwrite? y/n"
	usageMessage     = "Correct program syntax: 'pedit FILENAME', or 'pedit'."
	savedMessage     = "File saved. Hit F1 to continue editing."
	noFilenameNotice = "No file name. Use Save As (<-)."
)

// Session is one editing session: the document, the cursor and viewport
// over it, the current file name, and the mode the key dispatcher is in.
type Session struct {
	screen tcell.Screen
	cfg    *config.Config

	doc      *buffer.Document
	view     Viewport
	cursor   *CursorController
	filename string
	state    State

	frame     *ui.Frame
	statusBar *ui.StatusBar
	menu      *ui.Menu
	dialog    *ui.Dialog

	// Temporary status messages
	statusMessageTime time.Time
}

func New(cfg *config.Config) *Session {
	s := &Session{
		cfg:       cfg,
		doc:       buffer.New(),
		frame:     ui.NewFrame(),
		statusBar: ui.NewStatusBar(),
		menu:      ui.NewMenu(),
	}
	s.cursor = NewCursorController(s.doc, &s.view)
	return s
}

// Run takes over the terminal, edits until the session terminates, and
// restores the terminal before returning.
func (s *Session) Run(args []string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	if err := checkColors(screen); err != nil {
		return err
	}

	s.Attach(screen, args)
	s.Loop()
	log.Printf("Session: terminated (file %q)", s.filename)
	return nil
}

func checkColors(screen interface{ Colors() int }) error {
	if n := screen.Colors(); n < minColors {
		return fmt.Errorf("%w (%d colors)", ErrUnsupportedTerminal, n)
	}
	return nil
}

// Attach binds the session to a screen and loads the document named by the
// command line arguments.
func (s *Session) Attach(screen tcell.Screen, args []string) {
	s.screen = screen
	screen.SetStyle(tcell.StyleDefault)
	screen.Clear()

	switch len(args) {
	case 0:
		s.openInitial(s.cfg.DefaultFile)
	case 1:
		s.openInitial(args[0])
	default:
		log.Printf("Session: %d arguments, starting without a file", len(args))
		s.frame.Notice = usageMessage
		s.setDocument(buffer.New(), "")
	}

	w, h := screen.Size()
	s.resize(w, h)
}

// openInitial is the new-file flow: the file is loaded when present and
// created empty otherwise.
func (s *Session) openInitial(path string) {
	doc, created, err := buffer.OpenOrCreate(path, s.cfg.TabWidth)
	if err != nil {
		// The file may exist with content we could not read, so the blank
		// document gets no name and Save cannot overwrite it.
		log.Printf("Session: cannot open %s: %v", path, err)
		s.setDocument(buffer.New(), "")
		s.setTemporaryError("Error: " + err.Error())
		return
	}
	s.setDocument(doc, path)
	if created {
		log.Printf("Session: created %s", path)
		s.setTemporaryMessage("New file")
	} else {
		log.Printf("Session: opened %s (%d lines)", path, doc.LineCount())
	}
}

func (s *Session) setDocument(doc *buffer.Document, filename string) {
	s.doc = doc
	s.filename = filename
	s.cursor.Reset(doc)
}

// Loop reads and handles events until the session terminates. Each event is
// handled and drawn before the next one is read.
func (s *Session) Loop() {
	for s.state != StateTerminated {
		s.clearExpiredMessages()
		s.render()

		ev := s.screen.PollEvent()
		if ev == nil {
			// The screen was finalised underneath us.
			return
		}
		s.HandleEvent(ev)
	}
}

// HandleEvent processes a single key or resize event.
func (s *Session) HandleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		s.resize(w, h)
		s.screen.Sync()
	case *tcell.EventKey:
		s.handleKey(ev)
	}
}

func (s *Session) resize(screenW, screenH int) {
	_, _, w, h := ui.TextArea(screenW, screenH)
	s.cursor.Resize(w, h)
}

// Accessors used by main and tests.

func (s *Session) State() State               { return s.state }
func (s *Session) Document() *buffer.Document { return s.doc }
func (s *Session) Cursor() buffer.Cursor      { return s.cursor.Pos }
func (s *Session) Viewport() Viewport         { return s.view }
func (s *Session) Filename() string           { return s.filename }

func (s *Session) openMenu() {
	s.menu.Message = ""
	s.menu.IsError = false
	s.state = StateMenu
}

func (s *Session) closeMenu() {
	s.state = StateEditing
}

func (s *Session) startOpenPrompt() {
	d := ui.NewInputDialog(promptOpen)
	d.Paste = clipboardx.Line
	d.OnSubmit = func(name string) { s.openFile(d, name) }
	d.OnCancel = s.closeDialog
	s.dialog = d
	s.state = StatePromptOpen
}

func (s *Session) openFile(d *ui.Dialog, name string) {
	if name == "" {
		d.Reprompt(promptOpenRetry, "")
		return
	}
	doc, err := buffer.Open(name, s.cfg.TabWidth)
	if err != nil {
		log.Printf("Session: open %s failed: %v", name, err)
		msg := ""
		if !errors.Is(err, buffer.ErrNotFound) {
			msg = err.Error()
		}
		d.Reprompt(promptOpenRetry, msg)
		return
	}
	log.Printf("Session: opened %s (%d lines)", name, doc.LineCount())
	s.setDocument(doc, name)
	s.frame.Notice = ""
	s.dialog = nil
	s.state = StateEditing
	s.setTemporaryMessage("Opened " + name)
}

func (s *Session) startSavePrompt() {
	d := ui.NewInputDialog(promptSave)
	d.Paste = clipboardx.Line
	d.OnSubmit = func(name string) { s.saveAs(d, name) }
	d.OnCancel = s.closeDialog
	s.dialog = d
	s.state = StatePromptSave
}

func (s *Session) saveAs(d *ui.Dialog, name string) {
	if name == "" {
		d.Reprompt(promptSaveRetry, "")
		return
	}
	if buffer.Exists(name) {
		s.confirmOverwrite(d, name)
		return
	}
	s.writeAndExit(d, name)
}

func (s *Session) confirmOverwrite(prompt *ui.Dialog, name string) {
	c := ui.NewConfirmDialog(promptOverwrite)
	back := func() {
		prompt.Reprompt(promptSave, "")
		s.dialog = prompt
		s.state = StatePromptSave
	}
	c.OnConfirm = func(answer rune) {
		if answer == 'y' {
			s.writeAndExit(prompt, name)
			return
		}
		back()
	}
	c.OnCancel = back
	s.dialog = c
	s.state = StateConfirmOverwrite
}

// writeAndExit saves under name and ends the session. A failed write goes
// back to the file name prompt.
func (s *Session) writeAndExit(prompt *ui.Dialog, name string) {
	if err := buffer.WriteFile(name, s.doc, s.cfg.AtomicSave); err != nil {
		log.Printf("Session: save %s failed: %v", name, err)
		prompt.Reprompt(promptSaveRetry, "Could not save "+name+": "+err.Error())
		s.dialog = prompt
		s.state = StatePromptSave
		return
	}
	log.Printf("Session: saved %s (%d lines)", name, s.doc.LineCount())
	s.filename = name
	s.dialog = nil
	s.state = StateTerminated
}

func (s *Session) saveInPlace() {
	if s.filename == "" {
		s.menu.Message = noFilenameNotice
		s.menu.IsError = true
		return
	}
	if err := buffer.WriteFile(s.filename, s.doc, s.cfg.AtomicSave); err != nil {
		log.Printf("Session: save %s failed: %v", s.filename, err)
		s.menu.Message = "Error saving: " + err.Error()
		s.menu.IsError = true
		return
	}
	log.Printf("Session: saved %s (%d lines)", s.filename, s.doc.LineCount())
	s.menu.Message = savedMessage
	s.menu.IsError = false
}

func (s *Session) closeDialog() {
	s.dialog = nil
	s.state = StateEditing
}

func (s *Session) quit() {
	log.Printf("Session: quit without saving (dirty=%v)", s.doc.Dirty)
	s.state = StateTerminated
}

// setTemporaryMessage sets a message that will auto-clear after 5 seconds
func (s *Session) setTemporaryMessage(msg string) {
	s.statusBar.Message = msg
	s.statusBar.IsError = false
	s.statusMessageTime = time.Now()
}

// setTemporaryError sets an error message that will auto-clear after 5 seconds
func (s *Session) setTemporaryError(msg string) {
	s.statusBar.Message = msg
	s.statusBar.IsError = true
	s.statusMessageTime = time.Now()
}

func (s *Session) clearExpiredMessages() {
	if !s.statusMessageTime.IsZero() && time.Since(s.statusMessageTime) > 5*time.Second {
		s.statusBar.Message = ""
		s.statusBar.IsError = false
		s.statusMessageTime = time.Time{}
	}
}
