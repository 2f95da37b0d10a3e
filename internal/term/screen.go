// Package term is the terminal boundary: it translates styled text into
// the escape-sequence wire protocol and owns the interactive device
// (raw mode, key input, window size). Everything above it is pure.
package term

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/awidegreen/selecta/internal/text"
)

// Screen writes the escape-sequence protocol to an io.Writer sized
// rows x cols. Tests point it at a buffer; production points it at the
// TTY.
type Screen struct {
	w    io.Writer
	rows int
	cols int
}

// NewScreen returns a Screen writing to w with the given dimensions.
func NewScreen(w io.Writer, rows, cols int) *Screen {
	return &Screen{w: w, rows: rows, cols: cols}
}

// Size reports the screen dimensions.
func (s *Screen) Size() (rows, cols int) {
	return s.rows, s.cols
}

// Clear erases the whole screen.
func (s *Screen) Clear() {
	io.WriteString(s.w, "\x1b[2J")
}

// HideCursor makes the cursor invisible until ShowCursor.
func (s *Screen) HideCursor() {
	io.WriteString(s.w, "\x1b[?25l")
}

// ShowCursor makes the cursor visible again.
func (s *Screen) ShowCursor() {
	io.WriteString(s.w, "\x1b[?25h")
}

// SetCursor moves the cursor to the zero-based row and column. The wire
// encoding is 1-indexed.
func (s *Screen) SetCursor(row, col int) {
	fmt.Fprintf(s.w, "\x1b[%d;%dH", row+1, col+1)
}

// WriteLine blanks row across the full width, repositions, and draws line
// clamped so no text lands past column cols-1. Spans are clamped by
// display width, not byte length.
func (s *Screen) WriteLine(row int, line text.StyledText) {
	s.SetCursor(row, 0)
	io.WriteString(s.w, strings.Repeat(" ", s.cols))
	s.SetCursor(row, 0)

	col := 0
	for _, component := range line.Components() {
		switch c := component.(type) {
		case text.Span:
			avail := s.cols - 1 - col
			if avail <= 0 {
				continue
			}
			span := runewidth.Truncate(string(c), avail, "")
			io.WriteString(s.w, span)
			col += runewidth.StringWidth(span)
		case text.Style:
			switch c {
			case text.Inverse:
				io.WriteString(s.w, "\x1b[7m")
			case text.Reset:
				io.WriteString(s.w, "\x1b[0m")
			}
		case text.ColorPair:
			fmt.Fprintf(s.w, "\x1b[%d;%dm", fgCode(c.Fg), bgCode(c.Bg))
		}
	}
}

// fgCode maps a palette color to its foreground SGR code (30-37, 39).
func fgCode(c text.Color) int {
	if c == text.Default {
		return 39
	}
	return 30 + int(c)
}

// bgCode maps a palette color to its background SGR code (40-47, 49).
func bgCode(c text.Color) int {
	if c == text.Default {
		return 49
	}
	return 40 + int(c)
}
