// ABOUTME: ANSI escape sequence stripping for width measurement
// ABOUTME: Understands CSI, OSC, string-terminated (DCS/APC/PM), charset and two-byte ESC forms

package width

import "strings"

// StripANSI removes all ANSI escape sequences from s. An unterminated
// sequence at the end of s is dropped as well.
func StripANSI(s string) string {
	if strings.IndexByte(s, '\x1b') < 0 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] == '\x1b' {
			i = skipANSISequence(s, i)
			continue
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}

// skipANSISequence returns the index of the first byte after the escape
// sequence starting at s[i].
func skipANSISequence(s string, i int) int {
	i++ // ESC
	if i >= len(s) {
		return i
	}

	switch s[i] {
	case '[':
		// CSI: parameters and intermediates, then a final byte 0x40-0x7E.
		for i++; i < len(s); i++ {
			if s[i] >= 0x40 && s[i] <= 0x7e {
				return i + 1
			}
		}
		return i
	case ']':
		// OSC: terminated by BEL or ST.
		for i++; i < len(s); i++ {
			if s[i] == '\x07' {
				return i + 1
			}
			if isST(s, i) {
				return i + 2
			}
		}
		return i
	case '_', 'P', '^':
		// APC, DCS, PM: terminated by ST.
		for i++; i < len(s); i++ {
			if isST(s, i) {
				return i + 2
			}
		}
		return i
	case '(', ')':
		// Character set designation: ESC ( <final>
		return min(i+2, len(s))
	default:
		// Two-byte sequence such as ESC 7 (save cursor).
		return i + 1
	}
}

// isST reports whether a string terminator (ESC \) starts at s[i].
func isST(s string, i int) bool {
	return s[i] == '\x1b' && i+1 < len(s) && s[i+1] == '\\'
}
