//go:build !windows

package term

import (
	"bufio"
	"fmt"
	"io"
	"os"

	xterm "golang.org/x/term"
)

// TTY is the interactive terminal device. Input and output both go
// through /dev/tty so standard input stays free for the candidate pipe
// and standard output for the final selection.
type TTY struct {
	f     *os.File
	in    *bufio.Reader
	state *xterm.State
}

// OpenTTY opens the controlling terminal.
func OpenTTY() (*TTY, error) {
	f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("no TTY available: %w", err)
	}
	return &TTY{f: f, in: bufio.NewReader(f)}, nil
}

// MakeRaw puts the terminal into raw mode. Restore must run on every
// exit path afterwards.
func (t *TTY) MakeRaw() error {
	state, err := xterm.MakeRaw(int(t.f.Fd()))
	if err != nil {
		return fmt.Errorf("cannot enable raw mode: %w", err)
	}
	t.state = state
	return nil
}

// Restore undoes MakeRaw. Safe to call more than once.
func (t *TTY) Restore() {
	if t.state != nil {
		_ = xterm.Restore(int(t.f.Fd()), t.state)
		t.state = nil
	}
}

// Size reports (rows, cols), or (0, 0) when the device is not a usable
// terminal.
func (t *TTY) Size() (rows, cols int) {
	cols, rows, err := xterm.GetSize(int(t.f.Fd()))
	if err != nil {
		return 0, 0
	}
	return rows, cols
}

// ReadKey blocks for one rune of input. In raw mode a multi-byte UTF-8
// keystroke still arrives as a single rune.
func (t *TTY) ReadKey() (rune, error) {
	r, _, err := t.in.ReadRune()
	return r, err
}

// Write sends raw bytes to the terminal, satisfying io.Writer so a Screen
// can draw on the device directly.
func (t *TTY) Write(p []byte) (int, error) {
	return t.f.Write(p)
}

// Close restores the terminal and releases the device.
func (t *TTY) Close() error {
	t.Restore()
	return t.f.Close()
}

var _ io.Writer = (*TTY)(nil)

// Terminal couples a Screen with the TTY it draws on; it is the concrete
// implementation handed to the interactive loop.
type Terminal struct {
	*Screen
	tty *TTY
}

// NewTerminal builds a Terminal over tty, sizing the Screen from the
// device.
func NewTerminal(tty *TTY) *Terminal {
	rows, cols := tty.Size()
	return &Terminal{Screen: NewScreen(tty, rows, cols), tty: tty}
}

// ReadKey blocks for one keystroke from the device.
func (t *Terminal) ReadKey() (rune, error) {
	return t.tty.ReadKey()
}
