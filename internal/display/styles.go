// ABOUTME: Bridges theme palette ANSI codes to lipgloss styles for a given renderer
// ABOUTME: Parses SGR parameters into a foreground or background color plus text attributes

package display

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/hangman-go/pkg/tui/theme"
)

// sgrRe matches a single ANSI SGR sequence like \x1b[38;5;208m.
var sgrRe = regexp.MustCompile(`\x1b\[([\d;]*)m`)

// styles holds one lipgloss style per palette role.
type styles struct {
	primary lipgloss.Style
	muted   lipgloss.Style
	accent  lipgloss.Style
	success lipgloss.Style
	warning lipgloss.Style
	danger  lipgloss.Style
	border  lipgloss.Style
	gallows lipgloss.Style
	word    lipgloss.Style
	bold    lipgloss.Style
}

func buildStyles(lg *lipgloss.Renderer, p theme.Palette) styles {
	return styles{
		primary: colorToStyle(lg, p.Primary),
		muted:   colorToStyle(lg, p.Muted),
		accent:  colorToStyle(lg, p.Accent),
		success: colorToStyle(lg, p.Success),
		warning: colorToStyle(lg, p.Warning),
		danger:  colorToStyle(lg, p.Error),
		border:  colorToStyle(lg, p.Border),
		gallows: colorToStyle(lg, p.Gallows),
		word:    colorToStyle(lg, p.Word),
		bold:    colorToStyle(lg, p.Bold),
	}
}

// colorToStyle builds a style from a theme color's raw escape code. The last
// color in the code wins; attributes accumulate.
func colorToStyle(lg *lipgloss.Renderer, c theme.Color) lipgloss.Style {
	s := lg.NewStyle()
	for _, m := range sgrRe.FindAllStringSubmatch(c.Code(), -1) {
		params := strings.Split(m[1], ";")

		if len(params) >= 3 && params[1] == "5" {
			switch params[0] {
			case "38":
				s = s.Foreground(lipgloss.Color(params[2]))
			case "48":
				s = s.Background(lipgloss.Color(params[2]))
			}
			continue
		}

		for _, p := range params {
			n, err := strconv.Atoi(p)
			if err != nil {
				continue
			}
			s = applySGR(s, n)
		}
	}
	return s
}

func applySGR(s lipgloss.Style, n int) lipgloss.Style {
	switch {
	case n == 1:
		return s.Bold(true)
	case n == 2:
		return s.Faint(true)
	case n == 3:
		return s.Italic(true)
	case n == 4:
		return s.Underline(true)
	case n == 7:
		return s.Reverse(true)
	case n >= 30 && n <= 37:
		return s.Foreground(lipgloss.Color(strconv.Itoa(n - 30)))
	case n >= 90 && n <= 97:
		return s.Foreground(lipgloss.Color(strconv.Itoa(n - 90 + 8)))
	case n >= 40 && n <= 47:
		return s.Background(lipgloss.Color(strconv.Itoa(n - 40)))
	case n >= 100 && n <= 107:
		return s.Background(lipgloss.Color(strconv.Itoa(n - 100 + 8)))
	default:
		return s
	}
}
