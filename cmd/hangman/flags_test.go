// ABOUTME: Tests for CLI flag parsing and how flags override loaded settings
// ABOUTME: Uses a private FlagSet per case so tests run in parallel

package main

import (
	"io"
	"slices"
	"testing"

	"github.com/mauromedda/hangman-go/internal/config"
)

func TestParseFlags(t *testing.T) {
	t.Parallel()

	args, err := parseFlags([]string{
		"-words", "a.txt", "-words", "b.yaml",
		"-max-misses", "8", "-no-color", "-rules", "-verbose", "-theme", "dark",
	}, io.Discard)
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}
	if !slices.Equal(args.words, stringList{"a.txt", "b.yaml"}) {
		t.Errorf("words = %v", args.words)
	}
	if args.maxMisses != 8 || !args.noColor || !args.rules || !args.verbose || args.theme != "dark" {
		t.Errorf("args = %+v", args)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	t.Parallel()

	for _, argv := range [][]string{{"-max-misses", "six"}, {"-bogus"}} {
		if _, err := parseFlags(argv, io.Discard); err == nil {
			t.Errorf("parseFlags(%q) should fail", argv)
		}
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	loaded := config.Settings{
		MaxMisses: 10,
		WordFiles: []string{"/cfg/words.txt"},
		Theme:     "light",
		ThemeFile: "/cfg/theme.json",
	}

	tests := []struct {
		name  string
		args  cliArgs
		check func(t *testing.T, s config.Settings)
	}{
		{
			name: "no flags keeps config",
			args: cliArgs{},
			check: func(t *testing.T, s config.Settings) {
				if s.MaxMisses != 10 || s.ThemeFile != "/cfg/theme.json" || len(s.WordFiles) != 1 {
					t.Errorf("settings = %+v", s)
				}
			},
		},
		{
			name: "words replace config list",
			args: cliArgs{words: stringList{"x.txt"}, maxMisses: 3},
			check: func(t *testing.T, s config.Settings) {
				if !slices.Equal(s.WordFiles, []string{"x.txt"}) || s.MaxMisses != 3 {
					t.Errorf("settings = %+v", s)
				}
			},
		},
		{
			name: "theme flag beats theme file",
			args: cliArgs{theme: "plain", noColor: true, rules: true},
			check: func(t *testing.T, s config.Settings) {
				if s.Theme != "plain" || s.ThemeFile != "" || !s.NoColor || !s.ShowRules {
					t.Errorf("settings = %+v", s)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tt.check(t, tt.args.apply(loaded))
		})
	}
}

func TestLoadPalette(t *testing.T) {
	t.Parallel()

	if _, err := loadPalette(config.Settings{Theme: "dark"}); err != nil {
		t.Errorf("loadPalette(dark) error: %v", err)
	}
	if _, err := loadPalette(config.Settings{Theme: "neon"}); err == nil {
		t.Error("loadPalette(neon) should fail")
	}
	if _, err := loadPalette(config.Settings{ThemeFile: "/nonexistent/theme.json"}); err == nil {
		t.Error("loadPalette with a missing theme file should fail")
	}
}
