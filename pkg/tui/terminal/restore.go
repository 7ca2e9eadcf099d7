// ABOUTME: Release restores the terminal mode and closes the device on every exit path.
// ABOUTME: Intended for use as a deferred call right after a Terminal is opened.

package terminal

// Release should be deferred immediately after a Terminal is acquired. It
// leaves raw mode and closes the device whether the caller returns normally
// or panics; a panic is re-raised afterwards so the stack trace is printed
// on a terminal in cooked mode.
func Release(t Terminal) {
	r := recover()

	// Best-effort: the caller has nothing useful to do with these errors.
	_ = t.ExitRawMode()
	_ = t.Close()

	if r != nil {
		panic(r)
	}
}
