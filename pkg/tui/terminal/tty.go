// ABOUTME: TTY implements Terminal on the controlling terminal device via golang.org/x/term.
// ABOUTME: Bypasses redirected stdin/stdout; platform files supply the device paths.

package terminal

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ErrNotTerminal is returned when the device handed to NewTTY is not a terminal.
var ErrNotTerminal = errors.New("not a terminal")

// TTY is a real terminal device. Input and output may share one file
// (unix /dev/tty) or use separate handles (windows CONIN$/CONOUT$).
type TTY struct {
	mu       sync.Mutex
	in       *os.File
	out      *os.File
	oldState *term.State
	closed   bool
}

// OpenTTY opens the controlling terminal of the process, independent of
// whatever stdin and stdout are connected to.
func OpenTTY() (Terminal, error) {
	in, out, err := openDevice()
	if err != nil {
		return nil, fmt.Errorf("opening terminal device: %w", err)
	}
	t, err := NewTTY(in, out)
	if err != nil {
		closeFiles(in, out)
		return nil, err
	}
	return t, nil
}

// NewTTY wraps already-open terminal files. in and out may be the same file.
// Ownership of both files passes to the returned TTY.
func NewTTY(in, out *os.File) (*TTY, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return nil, fmt.Errorf("%s: %w", in.Name(), ErrNotTerminal)
	}
	return &TTY{in: in, out: out}, nil
}

// EnterRawMode switches the input device to raw mode, saving the previous state.
// Calling it while already raw is a no-op so the original state is never lost.
func (t *TTY) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the mode saved by EnterRawMode.
func (t *TTY) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.restoreLocked()
}

func (t *TTY) restoreLocked() error {
	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// IsRawMode reports whether raw mode is engaged.
func (t *TTY) IsRawMode() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.oldState != nil
}

// Size returns the current terminal dimensions.
func (t *TTY) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Read blocks until at least one byte is available on the device.
func (t *TTY) Read(p []byte) (int, error) {
	return t.in.Read(p)
}

// Write sends bytes to the device.
func (t *TTY) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// Close restores the saved mode, if any, and releases the device handles.
// Subsequent calls return nil.
func (t *TTY) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true
	restoreErr := t.restoreLocked()
	closeErr := closeFiles(t.in, t.out)
	return errors.Join(restoreErr, closeErr)
}

func closeFiles(in, out *os.File) error {
	err := in.Close()
	if out != in {
		err = errors.Join(err, out.Close())
	}
	return err
}
