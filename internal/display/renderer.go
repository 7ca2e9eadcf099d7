// ABOUTME: Writes the game's presentation: gallows panel, feedback lines, results, rules
// ABOUTME: Styles come from a theme palette rendered through lipgloss; rules through glamour

package display

import (
	_ "embed"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/mauromedda/hangman-go/internal/game"
	"github.com/mauromedda/hangman-go/pkg/tui/theme"
)

// DefaultRulesWidth is the wrap width used when the terminal size is unknown.
const DefaultRulesWidth = 72

//go:embed rules.md
var rulesMarkdown string

// Renderer writes game output to w. The first write error is kept and
// reported by Err; later writes are skipped.
type Renderer struct {
	w      io.Writer
	color  bool
	lg     *lipgloss.Renderer
	styles styles
	err    error
}

// NewRenderer returns a Renderer for w. With color off every style is
// plain and the palette is ignored.
func NewRenderer(w io.Writer, p theme.Palette, color bool) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if !color {
		lg.SetColorProfile(termenv.Ascii)
		p = theme.PlainPalette()
	}
	return &Renderer{
		w:      w,
		color:  color,
		lg:     lg,
		styles: buildStyles(lg, p),
	}
}

// Err returns the first write error, if any.
func (r *Renderer) Err() error {
	return r.err
}

func (r *Renderer) println(s string) {
	if r.err != nil {
		return
	}
	if _, err := io.WriteString(r.w, s+"\n"); err != nil {
		r.err = fmt.Errorf("writing output: %w", err)
	}
}

// Welcome greets the player at the start of a round.
func (r *Renderer) Welcome() {
	r.println("")
	r.println(r.styles.accent.Render("Welcome to Hangman!"))
	r.println(r.styles.muted.Render("Press 'ctrl + c' to exit at any time."))
	r.println("")
}

// Status draws the gallows for the round's stage next to the word panel.
func (r *Renderer) Status(rd *game.Round) {
	art := r.styles.gallows.Render(Stage(rd.Stage()))

	guessed := make([]string, 0, len(rd.Guessed()))
	for _, l := range rd.Guessed() {
		guessed = append(guessed, string(l))
	}

	remaining := r.styles.success
	if rd.Remaining() <= 2 {
		remaining = r.styles.warning
	}

	panel := r.lg.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(r.styles.border.GetForeground()).
		Padding(0, 1).
		MarginLeft(2).
		Render(strings.Join([]string{
			"Word: " + r.styles.word.Render(rd.Display()),
			"Guessed Letters: " + r.styles.muted.Render(strings.Join(guessed, ", ")),
			"Remaining Guesses: " + remaining.Render(fmt.Sprint(rd.Remaining())),
		}, "\n"))

	r.println(lipgloss.JoinHorizontal(lipgloss.Center, art, panel))
	r.println("")
}

// InvalidLetter reports input that is not a single a-z letter.
func (r *Renderer) InvalidLetter() {
	r.feedback(r.styles.danger, "Please enter a valid letter (a-z).")
}

// Repeated reports a letter that was already guessed.
func (r *Renderer) Repeated() {
	r.feedback(r.styles.warning, "You've already guessed that letter! Try again.")
}

// Outcome reports whether the last guess hit or missed.
func (r *Renderer) Outcome(o game.Outcome) {
	switch o {
	case game.OutcomeHit:
		r.feedback(r.styles.success, "Correct guess!")
	case game.OutcomeMiss:
		r.feedback(r.styles.danger, "Incorrect guess!")
	case game.OutcomeRepeated:
		r.Repeated()
	}
}

func (r *Renderer) feedback(s lipgloss.Style, msg string) {
	r.println("")
	r.println(s.Render(msg))
	r.println("")
}

// Result shows the final drawing, the outcome and the running tally.
func (r *Renderer) Result(rd *game.Round, t game.Tally) {
	r.println(r.styles.gallows.Render(Stage(rd.Stage())))
	word := r.styles.bold.Render(rd.Word())
	switch rd.State() {
	case game.Won:
		r.println(r.styles.success.Render("Congratulations! You guessed the word: ") + word)
	case game.Lost:
		r.println(r.styles.danger.Render("Game Over! The word was: ") + word)
	}
	r.println("")
	r.println(r.styles.primary.Render(t.String()))
	r.println("")
}

// Goodbye closes the session.
func (r *Renderer) Goodbye() {
	r.println(r.styles.muted.Render("Thanks for playing! Goodbye."))
}

// Rules renders the how-to-play text wrapped at width columns.
func (r *Renderer) Rules(width int) {
	r.println(RenderRules(width, r.color))
}

// RenderRules renders the rules markdown for a terminal. Without color the
// ASCII-only glamour style is used. On any render error the raw markdown is
// returned.
func RenderRules(width int, color bool) string {
	if width <= 0 {
		width = DefaultRulesWidth
	}
	style := "notty"
	if color {
		style = "dark"
	}

	tr, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return rulesMarkdown
	}
	out, err := tr.Render(rulesMarkdown)
	if err != nil {
		return rulesMarkdown
	}
	return strings.TrimRight(out, "\n ")
}
