// ABOUTME: Unix device acquisition for TTY: a single read-write handle on /dev/tty.

//go:build unix

package terminal

import "os"

const ttyPath = "/dev/tty"

func openDevice() (in, out *os.File, err error) {
	f, err := os.OpenFile(ttyPath, os.O_RDWR, 0)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
