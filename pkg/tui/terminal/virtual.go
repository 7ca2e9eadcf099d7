// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Replays queued input chunks, captures output, and tracks raw-mode and close calls.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sync"
)

// VirtualTerminal is a fake Terminal for unit tests. Each queued chunk is
// delivered by one Read call, mimicking how a terminal hands over a key
// press (or an escape sequence) at a time. Read returns io.EOF once the
// queue is drained.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	input      [][]byte
	width      int
	height     int
	rawMode    bool
	closed     bool
	enterCount int
	exitCount  int
	closeCount int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// QueueInput appends chunks to be returned by subsequent Read calls.
func (v *VirtualTerminal) QueueInput(chunks ...string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, c := range chunks {
		v.input = append(v.input, []byte(c))
	}
}

// Read returns the next queued chunk. A chunk larger than p is split across
// calls.
func (v *VirtualTerminal) Read(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return 0, os.ErrClosed
	}
	if len(v.input) == 0 {
		return 0, io.EOF
	}
	n := copy(p, v.input[0])
	if n < len(v.input[0]) {
		v.input[0] = v.input[0][n:]
	} else {
		v.input = v.input[1:]
	}
	return n, nil
}

// EnterRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// ExitRawMode records a raw-mode exit.
func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.width, v.height, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.closed {
		return 0, os.ErrClosed
	}
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// Close marks the terminal closed and drops raw mode, like TTY.Close.
func (v *VirtualTerminal) Close() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closeCount++
	if v.closed {
		return nil
	}
	v.closed = true
	v.rawMode = false
	return nil
}

// --- Test helpers (not part of Terminal interface) ---

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer and reopens a closed terminal.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.closed = false
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// IsClosed reports whether Close has been called since the last Reset.
func (v *VirtualTerminal) IsClosed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.closed
}

// EnterCount returns how many times EnterRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times ExitRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// PendingInput returns how many queued chunks have not been read yet.
func (v *VirtualTerminal) PendingInput() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return len(v.input)
}

// Opener returns an Opener that always hands out v, reopening it if a
// previous owner closed it. Output and queued input are kept.
func (v *VirtualTerminal) Opener() Opener {
	return func() (Terminal, error) {
		v.mu.Lock()
		v.closed = false
		v.mu.Unlock()
		return v, nil
	}
}
