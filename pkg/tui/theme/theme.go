// ABOUTME: Semantic color theme types: Color, Palette, Theme
// ABOUTME: Color.Apply wraps text in ANSI codes; Palette maps game roles to colors

package theme

// Color represents a terminal color that can style text.
type Color struct {
	code string
}

// NewColor creates a Color from a raw ANSI escape code.
func NewColor(code string) Color {
	return Color{code: code}
}

// Apply wraps text with the ANSI color code and a reset suffix.
// If the color code is empty, the text is returned unchanged.
func (c Color) Apply(text string) string {
	if c.code == "" {
		return text
	}
	return c.code + text + "\x1b[0m"
}

// Code returns the raw ANSI escape code.
func (c Color) Code() string {
	return c.code
}

// Bold returns a new Color that prepends bold (\x1b[1m) to the code.
func (c Color) Bold() Color {
	return Color{code: "\x1b[1m" + c.code}
}

// Dim returns a new Color that prepends dim (\x1b[2m) to the code.
func (c Color) Dim() Color {
	return Color{code: "\x1b[2m" + c.code}
}

// Palette holds the semantic colors the game draws with.
type Palette struct {
	// Text
	Primary Color
	Muted   Color
	Accent  Color

	// Feedback
	Success Color
	Warning Color
	Error   Color

	// Board
	Border  Color
	Gallows Color
	Word    Color
	Prompt  Color

	Bold Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string  `json:"name"`
	Palette Palette `json:"palette"`
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		Primary: NewColor("\x1b[0m"),
		Muted:   NewColor("\x1b[2m"),
		Accent:  NewColor("\x1b[38;5;208m"),

		Success: NewColor("\x1b[32m"),
		Warning: NewColor("\x1b[33m"),
		Error:   NewColor("\x1b[31m"),

		Border:  NewColor("\x1b[90m"),
		Gallows: NewColor("\x1b[36m"),
		Word:    NewColor("\x1b[1m\x1b[97m"),
		Prompt:  NewColor("\x1b[1m"),

		Bold: NewColor("\x1b[1m"),
	}
}

// PlainPalette returns a palette with no codes at all, for output that must
// stay free of escape sequences.
func PlainPalette() Palette {
	return Palette{}
}
