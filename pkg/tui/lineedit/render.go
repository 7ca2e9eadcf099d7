// ABOUTME: Frame builds the escape sequences that repaint the edit line and place the cursor
// ABOUTME: Cursor column is VisibleWidth(prompt) + 1 + width of the text left of the cursor

package lineedit

import (
	"strconv"
	"strings"

	"github.com/mauromedda/hangman-go/pkg/tui/width"
)

const (
	seqSaveCursor = "\x1b7"
	seqClearLine  = "\x1b[2K\r"
	crlf          = "\r\n"
)

// CursorColumn is the 1-based terminal column the cursor belongs at for s.
// Invisible sequences in the prompt do not count.
func CursorColumn(s *Session) int {
	return width.VisibleWidth(s.prompt) + 1 + width.RunesWidth(s.beforeCursor())
}

// frame collects the output for one batch of input so the terminal receives
// a single write per read.
type frame struct {
	strings.Builder
}

// redraw repaints prompt and buffer from column 1 and places the cursor.
func (f *frame) redraw(s *Session) {
	f.WriteString(seqSaveCursor)
	f.WriteString(seqClearLine)
	f.WriteString(s.prompt)
	f.WriteString(string(s.buf))
	f.placeCursor(s)
}

// placeCursor moves the cursor to CursorColumn without repainting.
func (f *frame) placeCursor(s *Session) {
	f.WriteString("\x1b[")
	f.WriteString(strconv.Itoa(CursorColumn(s)))
	f.WriteByte('G')
}

// line writes text followed by a newline that works in raw mode.
func (f *frame) line(text string) {
	f.WriteString(text)
	f.WriteString(crlf)
}
