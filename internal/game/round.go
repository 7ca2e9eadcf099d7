// ABOUTME: One hangman round: hidden word, revealed slots, guessed letters, misses left
// ABOUTME: Guess drives the InProgress -> Won/Lost state machine

package game

import (
	"errors"
	"fmt"
	"strings"
)

// DefaultMaxMisses is the number of wrong guesses a round allows by default.
const DefaultMaxMisses = 6

// StageCount is the number of gallows drawings a round moves through.
const StageCount = 7

var (
	// ErrInvalidLetter is returned by Guess for anything outside a-z.
	ErrInvalidLetter = errors.New("not a letter")
	// ErrRoundOver is returned by Guess once the round is won or lost.
	ErrRoundOver = errors.New("round is over")
)

// State is the round's position in its state machine.
type State int

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Outcome describes what a single guess did.
type Outcome int

const (
	// OutcomeHit revealed at least one letter.
	OutcomeHit Outcome = iota
	// OutcomeMiss cost one remaining miss.
	OutcomeMiss
	// OutcomeRepeated was already guessed and cost nothing.
	OutcomeRepeated
)

// Round holds the state of one word. It is not safe for concurrent use.
type Round struct {
	word      string
	revealed  []bool
	hidden    int
	guessed   []rune
	maxMisses int
	remaining int
	state     State
}

// NewRound starts a round for word, which must be non-empty and made of
// a-z letters (upper case is folded).
func NewRound(word string, maxMisses int) (*Round, error) {
	word = strings.ToLower(word)
	if word == "" {
		return nil, errors.New("empty word")
	}
	for _, r := range word {
		if !isLetter(r) {
			return nil, fmt.Errorf("word %q: %w %q", word, ErrInvalidLetter, r)
		}
	}
	if maxMisses <= 0 {
		return nil, fmt.Errorf("max misses must be positive, got %d", maxMisses)
	}

	return &Round{
		word:      word,
		revealed:  make([]bool, len(word)),
		hidden:    len(word),
		maxMisses: maxMisses,
		remaining: maxMisses,
	}, nil
}

// Guess applies one letter, case-insensitively.
func (r *Round) Guess(letter rune) (Outcome, error) {
	if r.state != InProgress {
		return 0, ErrRoundOver
	}
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	if !isLetter(letter) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLetter, letter)
	}
	if r.HasGuessed(letter) {
		return OutcomeRepeated, nil
	}
	r.guessed = append(r.guessed, letter)

	hit := false
	for i := 0; i < len(r.word); i++ {
		if rune(r.word[i]) == letter && !r.revealed[i] {
			r.revealed[i] = true
			r.hidden--
			hit = true
		}
	}

	if !hit {
		r.remaining--
		if r.remaining == 0 {
			r.state = Lost
		}
		return OutcomeMiss, nil
	}
	if r.hidden == 0 {
		r.state = Won
	}
	return OutcomeHit, nil
}

// HasGuessed reports whether letter (lower case) was already tried.
func (r *Round) HasGuessed(letter rune) bool {
	for _, g := range r.guessed {
		if g == letter {
			return true
		}
	}
	return false
}

// Word returns the hidden word.
func (r *Round) Word() string { return r.word }

// State returns the current state.
func (r *Round) State() State { return r.state }

// Remaining returns how many misses are left.
func (r *Round) Remaining() int { return r.remaining }

// Misses returns how many wrong guesses were made.
func (r *Round) Misses() int { return r.maxMisses - r.remaining }

// Guessed returns the letters tried so far in guess order.
func (r *Round) Guessed() []rune {
	out := make([]rune, len(r.guessed))
	copy(out, r.guessed)
	return out
}

// Display returns the word with unrevealed letters as underscores, one
// space between slots: "c _ _".
func (r *Round) Display() string {
	var b strings.Builder
	for i := 0; i < len(r.word); i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		if r.revealed[i] {
			b.WriteByte(r.word[i])
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Stage returns the gallows drawing index in [0, StageCount-1]. Misses are
// scaled so the last drawing is reached exactly when the round is lost.
func (r *Round) Stage() int {
	return r.Misses() * (StageCount - 1) / r.maxMisses
}

func isLetter(r rune) bool {
	return r >= 'a' && r <= 'z'
}
