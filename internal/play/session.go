// ABOUTME: Game driver: prompts for letters, plays rounds and asks to play again
// ABOUTME: Owns the win/loss tally; terminal conditions from the reader end the session

package play

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mauromedda/hangman-go/internal/display"
	"github.com/mauromedda/hangman-go/internal/game"
	hlog "github.com/mauromedda/hangman-go/internal/log"
	"github.com/mauromedda/hangman-go/pkg/tui/fuzzy"
	"github.com/mauromedda/hangman-go/pkg/tui/lineedit"
	"github.com/mauromedda/hangman-go/pkg/tui/theme"
)

const (
	guessPrompt = "Guess a letter: "
	againPrompt = "Would you like to play again? (y/n): "
)

// affirmatives are the replies, besides anything starting with y, that
// start another round. Near misses are matched fuzzily.
var affirmatives = []string{"sure", "okay", "again"}

// LineReader reads one edited line per call.
type LineReader interface {
	ReadLine(prompt string) (string, error)
}

// WordSource supplies hidden words.
type WordSource interface {
	PickRandom() string
}

// Config tunes a Session.
type Config struct {
	MaxMisses int
	Prompt    theme.Color
}

// Session plays consecutive rounds against one reader and renderer.
type Session struct {
	in        LineReader
	words     WordSource
	out       *display.Renderer
	maxMisses int
	guess     string
	again     string
	tally     game.Tally
}

// NewSession wires a session. A non-positive MaxMisses uses the game default.
func NewSession(in LineReader, words WordSource, out *display.Renderer, cfg Config) *Session {
	if cfg.MaxMisses <= 0 {
		cfg.MaxMisses = game.DefaultMaxMisses
	}
	return &Session{
		in:        in,
		words:     words,
		out:       out,
		maxMisses: cfg.MaxMisses,
		guess:     cfg.Prompt.Apply(guessPrompt),
		again:     cfg.Prompt.Apply(againPrompt),
	}
}

// Tally returns the wins and losses so far.
func (s *Session) Tally() game.Tally {
	return s.tally
}

// Run plays rounds until the player declines another one. It returns the
// reader's error when input ends early, e.g. lineedit.ErrInterrupted.
func (s *Session) Run() error {
	for {
		if _, err := s.PlayRound(); err != nil {
			return err
		}

		again, err := s.askAgain()
		if err != nil {
			return err
		}
		if !again {
			s.out.Goodbye()
			return s.out.Err()
		}
	}
}

// PlayRound picks a word and prompts until the round is won or lost.
func (s *Session) PlayRound() (game.State, error) {
	word := s.words.PickRandom()
	round, err := game.NewRound(word, s.maxMisses)
	if err != nil {
		return game.InProgress, fmt.Errorf("starting round: %w", err)
	}
	hlog.Debug("play: new round, %d letters", len(word))

	s.out.Welcome()
	for round.State() == game.InProgress {
		s.out.Status(round)

		letter, err := s.readLetter()
		if err != nil {
			return round.State(), err
		}
		outcome, err := round.Guess(letter)
		if err != nil {
			return round.State(), fmt.Errorf("applying guess: %w", err)
		}
		s.out.Outcome(outcome)

		if err := s.out.Err(); err != nil {
			return round.State(), err
		}
	}

	s.tally.Record(round.State())
	s.out.Result(round, s.tally)
	return round.State(), s.out.Err()
}

// readLetter prompts until the reply is a single a-z letter.
func (s *Session) readLetter() (rune, error) {
	for {
		line, err := s.in.ReadLine(s.guess)
		if err != nil {
			return 0, err
		}
		if l, ok := parseLetter(line); ok {
			return l, nil
		}
		s.out.InvalidLetter()
		if err := s.out.Err(); err != nil {
			return 0, err
		}
	}
}

func (s *Session) askAgain() (bool, error) {
	line, err := s.in.ReadLine(s.again)
	if err != nil {
		return false, err
	}
	return wantsAgain(line), nil
}

// wantsAgain decides a play-again reply: y or n as the first letter
// settles it, otherwise the reply must fuzzily name an affirmative.
func wantsAgain(reply string) bool {
	reply = strings.ToLower(strings.TrimSpace(reply))
	switch {
	case reply == "":
		return false
	case reply[0] == 'y':
		return true
	case reply[0] == 'n' || len(reply) < 2:
		return false
	}
	_, ok := fuzzy.Best(reply, affirmatives)
	return ok
}

// parseLetter accepts exactly one letter after trimming, folded to lower case.
func parseLetter(line string) (rune, bool) {
	line = strings.ToLower(strings.TrimSpace(line))
	if len(line) != 1 || line[0] < 'a' || line[0] > 'z' {
		return 0, false
	}
	return rune(line[0]), true
}

// ExitCode maps the outcome of Run to a process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, lineedit.ErrInterrupted):
		return 130
	case errors.Is(err, lineedit.ErrEndOfInput):
		return 0
	default:
		return 1
	}
}
