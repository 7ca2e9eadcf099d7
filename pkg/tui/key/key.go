// ABOUTME: Defines the Key type and ParseKey for classifying raw terminal input.
// ABOUTME: Handles printable runes, control characters, and CSI/SS3 escape sequences.

package key

import (
	"fmt"
	"unicode/utf8"
)

// Key represents a parsed keyboard input event.
type Key struct {
	Type KeyType
	Rune rune // For KeyRune
	Alt  bool
	Ctrl bool
}

// KeyType enumerates the kinds of key events the line editor can receive.
type KeyType int

const (
	KeyRune      KeyType = iota // Character (printable or not, see Printable)
	KeyEnter                    // Carriage return
	KeyTab                      // Tab
	KeyBackspace                // DEL (0x7F) or BS (0x08)
	KeyDelete                   // Forward delete
	KeyUp                       // Arrow up
	KeyDown                     // Arrow down
	KeyLeft                     // Arrow left
	KeyRight                    // Arrow right
	KeyHome                     // Home
	KeyEnd                      // End
	KeyEscape                   // Lone escape
	KeyCtrlC                    // Ctrl+C (interrupt)
	KeyCtrlD                    // Ctrl+D (end of input)
	KeyUnknown                  // Unrecognized input
)

const (
	byteCtrlC      = 0x03
	byteCtrlD      = 0x04
	byteBS         = 0x08
	byteTab        = 0x09
	byteCR         = 0x0d
	byteESC        = 0x1b
	byteDEL        = 0x7f
	firstPrintable = 0x20
	lastPrintable  = 0x7e
)

// ParseKey classifies one complete unit of terminal input: a single byte,
// a UTF-8 encoded rune, or an escape sequence.
func ParseKey(data string) Key {
	if len(data) == 0 {
		return Key{Type: KeyUnknown}
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == byteESC {
		return parseEscapeSequence(data)
	}

	r, size := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError || size != len(data) {
		return Key{Type: KeyUnknown}
	}
	return Key{Type: KeyRune, Rune: r}
}

// parseSingleByte handles a single-byte input (ASCII or control character).
func parseSingleByte(b byte) Key {
	switch b {
	case byteCR:
		return Key{Type: KeyEnter}
	case byteTab:
		return Key{Type: KeyTab}
	case byteDEL, byteBS:
		return Key{Type: KeyBackspace}
	case byteESC:
		return Key{Type: KeyEscape}
	case byteCtrlC:
		return Key{Type: KeyCtrlC, Ctrl: true}
	case byteCtrlD:
		return Key{Type: KeyCtrlD, Ctrl: true}
	}
	if b < utf8.RuneSelf {
		return Key{Type: KeyRune, Rune: rune(b)}
	}
	// Lone UTF-8 lead or continuation byte.
	return Key{Type: KeyUnknown}
}

// parseEscapeSequence maps ESC-prefixed data onto the legacy CSI/SS3 table.
func parseEscapeSequence(data string) Key {
	if k, ok := legacySequences[data]; ok {
		return k
	}

	// Alt+letter: ESC followed by a single printable byte.
	if len(data) == 2 && data[1] >= firstPrintable && data[1] <= lastPrintable {
		return Key{Type: KeyRune, Rune: rune(data[1]), Alt: true}
	}

	return Key{Type: KeyUnknown}
}

// Printable reports whether k is an unmodified printable ASCII character,
// the only kind of input the line editor inserts into its buffer.
func (k Key) Printable() bool {
	return k.Type == KeyRune && !k.Alt && !k.Ctrl &&
		k.Rune >= firstPrintable && k.Rune <= lastPrintable
}

// keyTypeNames provides human-readable labels for each KeyType.
var keyTypeNames = map[KeyType]string{
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyDelete:    "Delete",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyEscape:    "Escape",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlD:     "Ctrl+D",
	KeyUnknown:   "Unknown",
}

// String returns a human-readable representation of the Key for debug logs.
func (k Key) String() string {
	if k.Type == KeyRune {
		return formatRuneKey(k)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}

// formatRuneKey builds a display string for rune keys with modifiers.
func formatRuneKey(k Key) string {
	s := fmt.Sprintf("%q", k.Rune)
	if k.Rune >= firstPrintable && k.Rune <= lastPrintable {
		s = string(k.Rune)
	}
	if k.Alt {
		s = "Alt+" + s
	}
	return s
}
