// ABOUTME: Byte-at-a-time input decoder with two states: Normal and EscapeSequencePending
// ABOUTME: Reassembles CSI/SS3 sequences across reads and hands complete units to key.ParseKey

package lineedit

import "github.com/mauromedda/hangman-go/pkg/tui/key"

type decodeState int

const (
	stateNormal decodeState = iota
	stateEscapePending
)

// maxEscapeLen bounds a pending sequence; anything longer is noise.
const maxEscapeLen = 16

// decoder turns a raw byte stream into keys. It never blocks and never
// looks ahead: the editor's read loop owns all I/O.
type decoder struct {
	state   decodeState
	pending []byte
	// lone marks an ESC that ended the previous read with nothing after it.
	lone bool
}

// feed consumes one byte. When a unit of input is complete it returns the
// classified key, the raw bytes that formed it, and true.
func (d *decoder) feed(b byte) (key.Key, string, bool) {
	if d.state == stateNormal {
		if b == 0x1b {
			d.state = stateEscapePending
			d.pending = append(d.pending[:0], b)
			return key.Key{}, "", false
		}
		raw := string([]byte{b})
		return key.ParseKey(raw), raw, true
	}

	// An ESC left over from the previous read only continues when the next
	// byte opens a CSI or SS3 sequence. Otherwise it was the Escape key,
	// which edits nothing, and b starts fresh.
	if d.lone {
		d.lone = false
		if b != '[' && b != 'O' {
			d.reset()
			return d.feed(b)
		}
	}

	// A control byte can never be part of a sequence: the user typed ESC
	// followed by something like ^C. Drop the partial sequence and treat
	// the byte on its own.
	if b < 0x20 {
		d.reset()
		return d.feed(b)
	}

	d.pending = append(d.pending, b)
	if !d.complete() {
		if len(d.pending) >= maxEscapeLen {
			raw := string(d.pending)
			d.reset()
			return key.Key{Type: key.KeyUnknown}, raw, true
		}
		return key.Key{}, "", false
	}

	raw := string(d.pending)
	d.reset()
	return key.ParseKey(raw), raw, true
}

// complete reports whether the pending bytes form a whole sequence.
func (d *decoder) complete() bool {
	p := d.pending
	switch {
	case len(p) < 2:
		return false
	case len(p) == 2:
		// ESC [ and ESC O introduce longer sequences; anything else is ESC+char.
		return p[1] != '[' && p[1] != 'O'
	case p[1] == 'O':
		return true
	case len(p) == 3 && p[2] == '[':
		// Linux console function keys: ESC [ [ A through ESC [ [ E.
		return false
	default:
		last := p[len(p)-1]
		return last >= 0x40 && last <= 0x7e
	}
}

// endOfRead is called after each read. A bare ESC ending the read may be
// the Escape key or the first byte of a sequence split by a slow link;
// the next byte decides, so it stays pending.
func (d *decoder) endOfRead() {
	d.lone = d.state == stateEscapePending && len(d.pending) == 1
}

func (d *decoder) reset() {
	d.state = stateNormal
	d.pending = d.pending[:0]
	d.lone = false
}
