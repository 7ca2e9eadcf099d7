// ABOUTME: Word bank the game draws hidden words from, with uniform random picks
// ABOUTME: Default() serves the embedded list; entries are folded to lower-case a-z

package words

import (
	"crypto/rand"
	_ "embed"
	"errors"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DefaultMinLength is the shortest word kept when no minimum is configured.
const DefaultMinLength = 3

// ErrEmpty is returned when no usable word survives normalization.
var ErrEmpty = errors.New("word list is empty")

//go:embed words.txt
var embedded string

// Bank is an immutable set of candidate words.
type Bank struct {
	words []string
	intn  func(n int) int
}

// New builds a Bank from raw entries. Entries are normalized, deduplicated
// and dropped when they are not a-z only or shorter than minLen.
func New(entries []string, minLen int) (*Bank, error) {
	seen := make(map[string]struct{}, len(entries))
	words := make([]string, 0, len(entries))
	for _, e := range entries {
		w, ok := Normalize(e, minLen)
		if !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}
	if len(words) == 0 {
		return nil, ErrEmpty
	}
	return &Bank{words: words, intn: cryptoIntn}, nil
}

// Default returns the embedded word list.
func Default() *Bank {
	b, err := New(parseLines(embedded), DefaultMinLength)
	if err != nil {
		panic("words: embedded list: " + err.Error())
	}
	return b
}

// PickRandom returns a word chosen uniformly at random.
func (b *Bank) PickRandom() string {
	return b.words[b.intn(len(b.words))]
}

// Len returns the number of words in the bank.
func (b *Bank) Len() int { return len(b.words) }

// Words returns a copy of the bank's words in load order.
func (b *Bank) Words() []string {
	out := make([]string, len(b.words))
	copy(out, b.words)
	return out
}

// Normalize folds an entry to lower-case ASCII: accents are stripped after
// canonical decomposition, so "Café" becomes "cafe". It reports false when
// the result is not a-z only or is shorter than minLen.
func Normalize(entry string, minLen int) (string, bool) {
	folded, _, err := transform.String(fold(), strings.TrimSpace(entry))
	if err != nil {
		return "", false
	}
	folded = strings.ToLower(folded)
	if len(folded) < max(minLen, 1) {
		return "", false
	}
	for i := 0; i < len(folded); i++ {
		if folded[i] < 'a' || folded[i] > 'z' {
			return "", false
		}
	}
	return folded, true
}

// fold returns a fresh transformer; transform.Chain results are stateful.
func fold() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// parseLines splits text into entries, skipping blank lines and # comments.
func parseLines(text string) []string {
	var out []string
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// cryptoIntn returns a uniform integer in [0, n).
func cryptoIntn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("words: crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
