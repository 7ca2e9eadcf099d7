// ABOUTME: Thin wrapper over sahilm/fuzzy for matching short free-form answers
// ABOUTME: Find ranks every match; Best picks the single answer a reply most likely means

package fuzzy

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Match represents a single fuzzy match result.
type Match struct {
	Str            string
	Index          int
	MatchedIndexes []int
	Score          int
}

// Find performs fuzzy matching of pattern against the given items.
// Returns matches sorted by score (best first).
func Find(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{
			Str:            r.Str,
			Index:          r.Index,
			MatchedIndexes: r.MatchedIndexes,
			Score:          r.Score,
		}
	}
	return matches
}

// Best returns the best-scoring item that pattern matches from its first
// character on, ignoring case and surrounding space. A blank pattern
// matches nothing, and "s" does not match "yes".
func Best(pattern string, items []string) (string, bool) {
	pattern = strings.ToLower(strings.TrimSpace(pattern))
	if pattern == "" {
		return "", false
	}

	for _, m := range Find(pattern, items) {
		if len(m.MatchedIndexes) > 0 && m.MatchedIndexes[0] == 0 {
			return m.Str, true
		}
	}
	return "", false
}
