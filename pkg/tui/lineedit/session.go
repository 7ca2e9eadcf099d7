// ABOUTME: Session holds one in-progress line: immutable prompt, rune buffer, cursor index
// ABOUTME: All edits keep 0 <= cursor <= len(buffer); mutators report whether anything changed

package lineedit

// Session is the state of a single ReadLine call.
type Session struct {
	prompt string
	buf    []rune
	cursor int
}

// NewSession returns an empty session for prompt.
func NewSession(prompt string) *Session {
	return &Session{
		prompt: prompt,
		buf:    make([]rune, 0, 16),
	}
}

// Prompt returns the prompt text the session was created with.
func (s *Session) Prompt() string { return s.prompt }

// Text returns the buffer contents.
func (s *Session) Text() string { return string(s.buf) }

// Cursor returns the cursor index into the buffer.
func (s *Session) Cursor() int { return s.cursor }

// Len returns the buffer length in runes.
func (s *Session) Len() int { return len(s.buf) }

// Insert places r at the cursor and advances the cursor past it.
func (s *Session) Insert(r rune) {
	s.buf = append(s.buf, 0)
	copy(s.buf[s.cursor+1:], s.buf[s.cursor:])
	s.buf[s.cursor] = r
	s.cursor++
}

// Backspace removes the rune before the cursor.
func (s *Session) Backspace() bool {
	if s.cursor == 0 {
		return false
	}
	s.buf = append(s.buf[:s.cursor-1], s.buf[s.cursor:]...)
	s.cursor--
	return true
}

// Delete removes the rune under the cursor.
func (s *Session) Delete() bool {
	if s.cursor >= len(s.buf) {
		return false
	}
	s.buf = append(s.buf[:s.cursor], s.buf[s.cursor+1:]...)
	return true
}

// Left moves the cursor one position left, stopping at 0.
func (s *Session) Left() bool {
	if s.cursor == 0 {
		return false
	}
	s.cursor--
	return true
}

// Right moves the cursor one position right, stopping at the buffer end.
func (s *Session) Right() bool {
	if s.cursor >= len(s.buf) {
		return false
	}
	s.cursor++
	return true
}

// Home moves the cursor to the start of the buffer.
func (s *Session) Home() bool {
	if s.cursor == 0 {
		return false
	}
	s.cursor = 0
	return true
}

// End moves the cursor past the last rune.
func (s *Session) End() bool {
	if s.cursor == len(s.buf) {
		return false
	}
	s.cursor = len(s.buf)
	return true
}

// beforeCursor returns the runes left of the cursor.
func (s *Session) beforeCursor() []rune { return s.buf[:s.cursor] }
