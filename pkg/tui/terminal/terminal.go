// ABOUTME: Defines the Terminal interface: a duplex byte device with raw-mode toggling.
// ABOUTME: Implemented by TTY (the controlling terminal) and VirtualTerminal (tests).

package terminal

import "io"

// Terminal is an exclusively owned connection to an interactive terminal.
// Read blocks until input arrives; Write renders to the same device.
// Close releases the device; implementations restore the saved mode first
// if raw mode is still engaged.
type Terminal interface {
	io.ReadWriteCloser
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
}

// Opener acquires a Terminal. Each call returns a fresh handle that the
// caller must Close.
type Opener func() (Terminal, error)
