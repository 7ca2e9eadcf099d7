// ABOUTME: Built-in themes: default, dark, light, monochrome, plain
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

var builtins = map[string]*Theme{
	"default": {
		Name:    "default",
		Palette: DefaultPalette(),
	},
	"dark": {
		Name: "dark",
		Palette: Palette{
			Primary: NewColor("\x1b[97m"),
			Muted:   NewColor("\x1b[2m"),
			Accent:  NewColor("\x1b[38;5;214m"),

			Success: NewColor("\x1b[38;5;114m"),
			Warning: NewColor("\x1b[38;5;221m"),
			Error:   NewColor("\x1b[38;5;203m"),

			Border:  NewColor("\x1b[38;5;240m"),
			Gallows: NewColor("\x1b[38;5;117m"),
			Word:    NewColor("\x1b[1m\x1b[97m"),
			Prompt:  NewColor("\x1b[1m\x1b[97m"),

			Bold: NewColor("\x1b[1m"),
		},
	},
	"light": {
		Name: "light",
		Palette: Palette{
			Primary: NewColor("\x1b[30m"),
			Muted:   NewColor("\x1b[2m"),
			Accent:  NewColor("\x1b[38;5;166m"),

			Success: NewColor("\x1b[38;5;28m"),
			Warning: NewColor("\x1b[38;5;130m"),
			Error:   NewColor("\x1b[38;5;160m"),

			Border:  NewColor("\x1b[38;5;249m"),
			Gallows: NewColor("\x1b[38;5;25m"),
			Word:    NewColor("\x1b[1m\x1b[30m"),
			Prompt:  NewColor("\x1b[1m\x1b[30m"),

			Bold: NewColor("\x1b[1m"),
		},
	},
	"monochrome": {
		Name: "monochrome",
		Palette: Palette{
			Primary: NewColor("\x1b[0m"),
			Muted:   NewColor("\x1b[2m"),
			Accent:  NewColor("\x1b[1m"),

			Success: NewColor("\x1b[1m"),
			Warning: NewColor("\x1b[1m"),
			Error:   NewColor("\x1b[1m\x1b[4m"),

			Border:  NewColor("\x1b[2m"),
			Gallows: NewColor("\x1b[0m"),
			Word:    NewColor("\x1b[1m"),
			Prompt:  NewColor("\x1b[1m"),

			Bold: NewColor("\x1b[1m"),
		},
	},
	"plain": {
		Name:    "plain",
		Palette: PlainPalette(),
	},
}

// Builtin returns a built-in theme by name, or nil if unknown.
func Builtin(name string) *Theme {
	return builtins[name]
}

// BuiltinNames returns the names of all built-in themes.
func BuiltinNames() []string {
	return []string{"default", "dark", "light", "monochrome", "plain"}
}
