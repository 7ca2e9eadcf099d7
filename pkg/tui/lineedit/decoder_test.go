// ABOUTME: Tests for the Normal/EscapeSequencePending input decoder
// ABOUTME: Feeds byte streams and checks the emitted keys and raw units

package lineedit

import (
	"testing"

	"github.com/mauromedda/hangman-go/pkg/tui/key"
)

// decodeAll feeds every byte of in and collects emitted keys.
func decodeAll(d *decoder, in string) []key.Key {
	var keys []key.Key
	for i := 0; i < len(in); i++ {
		if k, _, ok := d.feed(in[i]); ok {
			keys = append(keys, k)
		}
	}
	return keys
}

func TestDecoder_Streams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []key.KeyType
	}{
		{name: "plain letters", input: "ab", want: []key.KeyType{key.KeyRune, key.KeyRune}},
		{name: "csi arrow", input: "\x1b[D", want: []key.KeyType{key.KeyLeft}},
		{name: "ss3 arrow", input: "\x1bOC", want: []key.KeyType{key.KeyRight}},
		{name: "tilde delete", input: "\x1b[3~", want: []key.KeyType{key.KeyDelete}},
		{name: "arrow between letters", input: "a\x1b[Cb", want: []key.KeyType{key.KeyRune, key.KeyRight, key.KeyRune}},
		{name: "modified arrow is unknown", input: "\x1b[1;5C", want: []key.KeyType{key.KeyUnknown}},
		{name: "alt letter", input: "\x1bx", want: []key.KeyType{key.KeyRune}},
		{name: "escape then ctrl+c", input: "\x1b\x03", want: []key.KeyType{key.KeyCtrlC}},
		{name: "escape then enter", input: "\x1b[\r", want: []key.KeyType{key.KeyEnter}},
		{name: "double escape restarts", input: "\x1b\x1b[A", want: []key.KeyType{key.KeyUp}},
		{name: "linux console F1", input: "\x1b[[A", want: []key.KeyType{key.KeyUnknown}},
		{name: "linux console F5 then letter", input: "\x1b[[Ez", want: []key.KeyType{key.KeyUnknown, key.KeyRune}},
		{name: "pending only", input: "\x1b[", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d decoder
			got := decodeAll(&d, tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("decoded %v, want types %v", got, tt.want)
			}
			for i := range got {
				if got[i].Type != tt.want[i] {
					t.Errorf("key %d = %v, want type %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDecoder_SequenceAcrossFeeds(t *testing.T) {
	t.Parallel()

	var d decoder
	if keys := decodeAll(&d, "\x1b["); len(keys) != 0 {
		t.Fatalf("partial sequence emitted %v", keys)
	}
	if d.state != stateEscapePending {
		t.Fatalf("state = %v, want stateEscapePending", d.state)
	}
	d.endOfRead()
	if d.lone {
		t.Fatal("endOfRead must not mark a partial CSI sequence as a lone escape")
	}

	k, raw, ok := d.feed('A')
	if !ok || k.Type != key.KeyUp || raw != "\x1b[A" {
		t.Errorf("feed('A') = %v %q %v, want Up \\x1b[A true", k, raw, ok)
	}
	if d.state != stateNormal {
		t.Errorf("state = %v, want stateNormal", d.state)
	}
}

func TestDecoder_EscapeEndingARead(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		next     string
		wantType key.KeyType
		wantRaw  string
	}{
		{name: "csi continues", next: "[D", wantType: key.KeyLeft, wantRaw: "\x1b[D"},
		{name: "ss3 continues", next: "OC", wantType: key.KeyRight, wantRaw: "\x1bOC"},
		{name: "letter after escape key", next: "a", wantType: key.KeyRune, wantRaw: "a"},
		{name: "enter after escape key", next: "\r", wantType: key.KeyEnter, wantRaw: "\r"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var d decoder
			d.feed(0x1b)
			d.endOfRead()
			if !d.lone {
				t.Fatal("endOfRead() should mark the bare escape")
			}

			var (
				k   key.Key
				raw string
				ok  bool
			)
			for i := 0; i < len(tt.next) && !ok; i++ {
				k, raw, ok = d.feed(tt.next[i])
			}
			if !ok || k.Type != tt.wantType || raw != tt.wantRaw {
				t.Errorf("got %v %q %v, want type %v raw %q", k, raw, ok, tt.wantType, tt.wantRaw)
			}
			if k.Type == key.KeyRune && k.Alt {
				t.Error("letter after a separate escape read must not become Alt+letter")
			}
			if d.lone || d.state != stateNormal {
				t.Errorf("decoder not back to normal: lone=%v state=%v", d.lone, d.state)
			}
		})
	}
}

func TestDecoder_OverlongSequenceIsDropped(t *testing.T) {
	t.Parallel()

	var d decoder
	in := "\x1b["
	for len(in) < maxEscapeLen+4 {
		in += "1"
	}
	keys := decodeAll(&d, in+"x")

	if len(keys) < 2 {
		t.Fatalf("decoded %v, want an unknown key then runes", keys)
	}
	if keys[0].Type != key.KeyUnknown {
		t.Errorf("first key = %v, want Unknown", keys[0])
	}
	last := keys[len(keys)-1]
	if last.Type != key.KeyRune || last.Rune != 'x' {
		t.Errorf("last key = %v, want rune x", last)
	}
}
