// ABOUTME: Tests for Editor.ReadLine driven by a scripted VirtualTerminal
// ABOUTME: Covers editing keys, ^C/^D conditions, prompt validation, cursor placement, device release

package lineedit

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mauromedda/hangman-go/pkg/tui/terminal"
)

const (
	left      = "\x1b[D"
	right     = "\x1b[C"
	up        = "\x1b[A"
	down      = "\x1b[B"
	home      = "\x1b[H"
	end       = "\x1b[F"
	del       = "\x1b[3~"
	backspace = "\x7f"
	enter     = "\r"
	ctrlC     = "\x03"
	ctrlD     = "\x04"
)

// readWith runs ReadLine against a VirtualTerminal fed with chunks.
func readWith(t *testing.T, prompt string, chunks ...string) (string, *terminal.VirtualTerminal, error) {
	t.Helper()

	vt := terminal.NewVirtualTerminal(80, 24)
	vt.QueueInput(chunks...)
	line, err := New(vt.Opener()).ReadLine(prompt)
	return line, vt, err
}

func assertReleased(t *testing.T, vt *terminal.VirtualTerminal) {
	t.Helper()

	if vt.IsRawMode() {
		t.Error("terminal left in raw mode")
	}
	if !vt.IsClosed() {
		t.Error("terminal not closed")
	}
	if vt.EnterCount() != 1 {
		t.Errorf("EnterCount() = %d, want 1", vt.EnterCount())
	}
}

func TestReadLine_Editing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		chunks []string
		want   string
	}{
		{name: "typed then enter", chunks: []string{"h", "i", enter}, want: "hi"},
		{name: "backspace then retype", chunks: []string{"h", "i", backspace, "e", enter}, want: "he"},
		{name: "backspace on empty", chunks: []string{backspace, backspace, "a", enter}, want: "a"},
		{name: "left floors at zero", chunks: []string{"a", left, left, left, "b", enter}, want: "ba"},
		{name: "right stops at end", chunks: []string{"a", right, right, "b", enter}, want: "ab"},
		{name: "insert inside", chunks: []string{"a", "c", left, "b", enter}, want: "abc"},
		{name: "backspace inside", chunks: []string{"a", "x", "b", left, backspace, enter}, want: "ab"},
		{name: "home end delete", chunks: []string{"a", "b", "c", home, del, end, "d", enter}, want: "bcd"},
		{name: "delete at end", chunks: []string{"a", del, enter}, want: "a"},
		{name: "up and down ignored", chunks: []string{"a", up, down, "b", enter}, want: "ab"},
		{name: "unknown sequence ignored", chunks: []string{"\x1b[5~", "x", "\x1b[1;5D", enter}, want: "x"},
		{name: "ctrl+d with text ignored", chunks: []string{"a", ctrlD, enter}, want: "a"},
		{name: "control bytes dropped", chunks: []string{"\x01", "\t", "\x1a", "z", enter}, want: "z"},
		{name: "non-ascii dropped", chunks: []string{"é", "z", enter}, want: "z"},
		{name: "whole line in one read", chunks: []string{"ab" + left + "c" + enter}, want: "acb"},
		{name: "sequence split across reads", chunks: []string{"a", "\x1b[", "D", "b", enter}, want: "ba"},
		{name: "lone escape key", chunks: []string{"\x1b", "a", enter}, want: "a"},
		{name: "escape split from its sequence", chunks: []string{"x", "\x1b", "[D", "y", enter}, want: "yx"},
		{name: "linux console F1", chunks: []string{"x", "\x1b[[A", enter}, want: "x"},
		{name: "linux console F3 split", chunks: []string{"x", "\x1b[", "[C", enter}, want: "x"},
		{name: "alt letter ignored", chunks: []string{"\x1bq", "a", enter}, want: "a"},
		{name: "bytes after enter ignored", chunks: []string{"ab" + enter + "cd"}, want: "ab"},
		{name: "empty line", chunks: []string{enter}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, vt, err := readWith(t, "Guess a letter: ", tt.chunks...)
			if err != nil {
				t.Fatalf("ReadLine() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadLine() = %q, want %q", got, tt.want)
			}
			assertReleased(t, vt)
		})
	}
}

func TestReadLine_ReturnsPrintableInputVerbatim(t *testing.T) {
	t.Parallel()

	var all strings.Builder
	for c := byte(32); c <= 126; c++ {
		all.WriteByte(c)
	}
	inputs := []string{"x", "hello world", "CamelCase 123", all.String()}

	for _, in := range inputs {
		chunks := make([]string, 0, len(in)+1)
		for _, c := range in {
			chunks = append(chunks, string(c))
		}
		chunks = append(chunks, enter)

		got, _, err := readWith(t, "> ", chunks...)
		if err != nil {
			t.Fatalf("ReadLine(%q) unexpected error: %v", in, err)
		}
		if got != in {
			t.Errorf("ReadLine() = %q, want %q", got, in)
		}
	}
}

func TestReadLine_CtrlDOnEmptyLine(t *testing.T) {
	t.Parallel()

	got, vt, err := readWith(t, "Guess a letter: ", ctrlD)
	if !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("ReadLine() error = %v, want ErrEndOfInput", err)
	}
	if got != "" {
		t.Errorf("ReadLine() = %q, want empty", got)
	}
	if !strings.HasSuffix(vt.Output(), "exit\r\n") {
		t.Errorf("output %q should end with exit and a newline", vt.Output())
	}
	assertReleased(t, vt)
}

func TestReadLine_CtrlDAfterClearingLine(t *testing.T) {
	t.Parallel()

	_, _, err := readWith(t, "> ", "a", backspace, ctrlD)
	if !errors.Is(err, ErrEndOfInput) {
		t.Fatalf("ReadLine() error = %v, want ErrEndOfInput", err)
	}
}

func TestReadLine_CtrlCDiscardsLine(t *testing.T) {
	t.Parallel()

	got, vt, err := readWith(t, "Guess a letter: ", "a", "b", ctrlC, "c", enter)
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("ReadLine() error = %v, want ErrInterrupted", err)
	}
	if got != "" {
		t.Errorf("ReadLine() = %q, want empty", got)
	}
	if !strings.HasSuffix(vt.Output(), "^C\r\n") {
		t.Errorf("output %q should end with ^C and a newline", vt.Output())
	}
	if vt.PendingInput() != 2 {
		t.Errorf("PendingInput() = %d, want 2 (input after ^C is not read)", vt.PendingInput())
	}
	assertReleased(t, vt)
}

func TestReadLine_EscapeThenCtrlC(t *testing.T) {
	t.Parallel()

	_, _, err := readWith(t, "> ", "\x1b"+ctrlC)
	if !errors.Is(err, ErrInterrupted) {
		t.Fatalf("ReadLine() error = %v, want ErrInterrupted", err)
	}
}

func TestReadLine_DeviceEOF(t *testing.T) {
	t.Parallel()

	_, vt, err := readWith(t, "> ", "a", "b")
	if !errors.Is(err, io.EOF) {
		t.Fatalf("ReadLine() error = %v, want io.EOF", err)
	}
	assertReleased(t, vt)
}

func TestReadLine_InvalidPromptNeverOpensTerminal(t *testing.T) {
	t.Parallel()

	for _, prompt := range []string{"two\nlines", "carriage\rreturn", "bad \xff utf8"} {
		opened := false
		ed := New(func() (terminal.Terminal, error) {
			opened = true
			return terminal.NewVirtualTerminal(80, 24), nil
		})

		_, err := ed.ReadLine(prompt)
		if !errors.Is(err, ErrInvalidPrompt) {
			t.Errorf("ReadLine(%q) error = %v, want ErrInvalidPrompt", prompt, err)
		}
		if opened {
			t.Errorf("ReadLine(%q) opened the terminal", prompt)
		}
	}
}

func TestReadLine_OpenFailure(t *testing.T) {
	t.Parallel()

	errNoTTY := errors.New("no tty")
	ed := New(func() (terminal.Terminal, error) { return nil, errNoTTY })

	_, err := ed.ReadLine("> ")
	if !errors.Is(err, errNoTTY) {
		t.Fatalf("ReadLine() error = %v, want wrapped %v", err, errNoTTY)
	}
}

func TestReadLine_InitialDraw(t *testing.T) {
	t.Parallel()

	_, vt, _ := readWith(t, "Guess a letter: ", enter)

	want := "\x1b7\x1b[2K\rGuess a letter: \x1b[17G"
	if !strings.HasPrefix(vt.Output(), want) {
		t.Errorf("output = %q, want prefix %q", vt.Output(), want)
	}
}

func TestReadLine_CursorColumnIgnoresPromptStyling(t *testing.T) {
	t.Parallel()

	// Visible prompt is "Guess: " (7 columns).
	prompt := "\x1b[1m\x1b[36mGuess: \x1b[0m"
	_, vt, _ := readWith(t, prompt, "a", "b", left, backspace, enter)

	// Columns after "a", after "ab", and the repaint once "a" is erased.
	out := vt.Output()
	for _, want := range []string{"\x1b[9G", "\x1b[10G", prompt + "b\x1b[8G"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}
