// ABOUTME: Editor.ReadLine collects one line from the terminal device in raw mode
// ABOUTME: Arrow/home/end/delete editing, ^C and empty-buffer ^D reported as sentinel errors

package lineedit

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	hlog "github.com/mauromedda/hangman-go/internal/log"
	"github.com/mauromedda/hangman-go/pkg/tui/key"
	"github.com/mauromedda/hangman-go/pkg/tui/terminal"
)

var (
	// ErrInterrupted is returned when the user presses ^C. The partial line
	// is discarded.
	ErrInterrupted = errors.New("interrupted")

	// ErrEndOfInput is returned when the user presses ^D on an empty line.
	ErrEndOfInput = errors.New("end of input")

	// ErrInvalidPrompt is returned, before the terminal is touched, when a
	// prompt cannot be drawn on a single line.
	ErrInvalidPrompt = errors.New("invalid prompt")
)

// readChunk is the most bytes taken from the device per read. One key
// press, or one escape sequence, normally arrives per read.
const readChunk = 32

// step is what the read loop does after a key has been applied.
type step int

const (
	stepContinue step = iota
	stepSubmit
	stepInterrupt
	stepEndOfInput
)

// Editor reads single lines of input from an interactive terminal.
// It holds no per-line state; each ReadLine opens and releases its own
// device handle.
type Editor struct {
	open terminal.Opener
}

// New returns an Editor that acquires its terminal through open. A nil
// open uses the process's controlling terminal.
func New(open terminal.Opener) *Editor {
	if open == nil {
		open = terminal.OpenTTY
	}
	return &Editor{open: open}
}

// ReadLine shows prompt and blocks until the user submits a line with
// Enter, returning it without the terminator. ^C yields ErrInterrupted;
// ^D on an empty line yields ErrEndOfInput. The terminal is back in its
// previous mode and the device closed on every return.
func (e *Editor) ReadLine(prompt string) (string, error) {
	if err := ValidatePrompt(prompt); err != nil {
		return "", err
	}

	t, err := e.open()
	if err != nil {
		return "", fmt.Errorf("opening terminal: %w", err)
	}
	defer terminal.Release(t)

	if err := t.EnterRawMode(); err != nil {
		return "", err
	}

	s := NewSession(prompt)
	var f frame
	f.redraw(s)
	if err := flush(t, &f); err != nil {
		return "", err
	}

	var dec decoder
	chunk := make([]byte, readChunk)
	for {
		n, readErr := t.Read(chunk)
		for _, b := range chunk[:n] {
			k, raw, ok := dec.feed(b)
			if !ok {
				continue
			}
			switch apply(s, k, raw, &f) {
			case stepSubmit:
				f.WriteString(crlf)
				finish(t, &f)
				return s.Text(), nil
			case stepInterrupt:
				f.line("^C")
				finish(t, &f)
				return "", ErrInterrupted
			case stepEndOfInput:
				f.line("exit")
				finish(t, &f)
				return "", ErrEndOfInput
			}
		}
		dec.endOfRead()
		if err := flush(t, &f); err != nil {
			return "", err
		}
		if readErr != nil {
			return "", fmt.Errorf("reading terminal: %w", readErr)
		}
	}
}

// apply performs the edit bound to k and queues the matching screen update.
func apply(s *Session, k key.Key, raw string, f *frame) step {
	switch k.Type {
	case key.KeyEnter:
		return stepSubmit
	case key.KeyCtrlC:
		return stepInterrupt
	case key.KeyCtrlD:
		if s.Len() == 0 {
			return stepEndOfInput
		}
		// ^D with text on the line is ignored.
	case key.KeyLeft:
		if s.Left() {
			f.placeCursor(s)
		}
	case key.KeyRight:
		if s.Right() {
			f.placeCursor(s)
		}
	case key.KeyHome:
		if s.Home() {
			f.placeCursor(s)
		}
	case key.KeyEnd:
		if s.End() {
			f.placeCursor(s)
		}
	case key.KeyBackspace:
		if s.Backspace() {
			f.redraw(s)
		}
	case key.KeyDelete:
		if s.Delete() {
			f.redraw(s)
		}
	case key.KeyUp, key.KeyDown:
		// Reserved for history.
	default:
		if k.Printable() {
			s.Insert(k.Rune)
			f.redraw(s)
			break
		}
		hlog.Debug("lineedit: dropped %s %q", k, raw)
	}
	return stepContinue
}

// ValidatePrompt reports whether prompt can be rendered by ReadLine.
func ValidatePrompt(prompt string) error {
	if !utf8.ValidString(prompt) {
		return fmt.Errorf("%w: not valid UTF-8", ErrInvalidPrompt)
	}
	if strings.ContainsAny(prompt, "\r\n") {
		return fmt.Errorf("%w: contains a line break", ErrInvalidPrompt)
	}
	return nil
}

// flush writes the queued frame, if any, to the terminal.
func flush(w io.Writer, f *frame) error {
	if f.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(w, f.String())
	f.Reset()
	if err != nil {
		return fmt.Errorf("drawing line: %w", err)
	}
	return nil
}

// finish flushes the closing output of a line. The line is already
// decided, so a failed write only gets logged.
func finish(w io.Writer, f *frame) {
	if err := flush(w, f); err != nil {
		hlog.Debug("lineedit: %v", err)
	}
}
