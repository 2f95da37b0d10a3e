// Package ui drives the interactive session: render the current state,
// block for one keystroke, apply the transition, repeat until the state
// turns terminal. The loop talks to the terminal only through the
// Terminal interface so tests can script keystrokes against a fake.
package ui

import (
	"unicode"

	"github.com/awidegreen/selecta/internal/config"
	"github.com/awidegreen/selecta/internal/search"
	"github.com/awidegreen/selecta/internal/text"
	"github.com/awidegreen/selecta/internal/view"
)

// Terminal is the capability surface the loop needs from the terminal
// boundary. term.Terminal implements it; tests use an in-memory fake.
type Terminal interface {
	ReadKey() (rune, error)
	Size() (rows, cols int)
	Clear()
	WriteLine(row int, line text.StyledText)
	SetCursor(row, col int)
	HideCursor()
	ShowCursor()
}

// Key bindings.
const (
	keyCtrlC     = '\x03'
	keyCtrlH     = '\x08'
	keyEnter     = '\r'
	keyNewline   = '\n'
	keyCtrlN     = '\x0e'
	keyCtrlP     = '\x10'
	keyCtrlU     = '\x15'
	keyCtrlW     = '\x17'
	keyEscape    = '\x1b'
	keyBackspace = '\x7f'
)

// Run drives the session to completion and resolves the selection.
// A read error or end of input cancels the session rather than spinning
// on a stream that will never produce another key.
func Run(cfg *config.Config, t Terminal) (string, bool) {
	t.Clear()
	state := search.Blank(cfg)
	for !state.Done() && !state.Aborted() {
		draw(t, state)
		r, err := t.ReadKey()
		if err != nil {
			state = state.Cancel()
			continue
		}
		state = apply(state, r)
	}
	return state.Selection()
}

// apply maps one keystroke to its state transition. Unbound control keys
// leave the state unchanged.
func apply(state search.State, r rune) search.State {
	switch r {
	case keyCtrlN:
		return state.Down()
	case keyCtrlP:
		return state.Up()
	case keyEnter, keyNewline:
		return state.Confirm()
	case keyBackspace, keyCtrlH:
		return state.Backspace()
	case keyCtrlU:
		return state.Clear()
	case keyCtrlW:
		return state.DeleteWord()
	case keyCtrlC, keyEscape:
		return state.Cancel()
	default:
		if unicode.IsPrint(r) {
			return state.Append(r)
		}
		return state
	}
}

// draw writes one full frame, keeping the cursor hidden until it is back
// in place on the search line.
func draw(t Terminal, state search.State) {
	frame := view.Render(state)
	t.HideCursor()
	for i, line := range frame.Lines {
		t.WriteLine(i, line)
	}
	t.SetCursor(0, frame.CursorColumn)
	t.ShowCursor()
}
