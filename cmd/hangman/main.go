// ABOUTME: CLI entry point for hangman
// ABOUTME: Parses flags, loads config, wires words, display and the line editor, maps exit codes

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/mauromedda/hangman-go/internal/config"
	"github.com/mauromedda/hangman-go/internal/display"
	hlog "github.com/mauromedda/hangman-go/internal/log"
	"github.com/mauromedda/hangman-go/internal/play"
	"github.com/mauromedda/hangman-go/internal/words"
	"github.com/mauromedda/hangman-go/pkg/tui/lineedit"
	"github.com/mauromedda/hangman-go/pkg/tui/theme"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("hangman %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	err = run(args)
	code := play.ExitCode(err)
	if code == 1 {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	os.Exit(code)
}

func run(args cliArgs) error {
	if args.verbose {
		hlog.SetLevel(hlog.LevelDebug)
	}
	if args.logFile != "" {
		f, err := os.OpenFile(args.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		defer f.Close()
		hlog.SetOutput(f)
	}

	settings, err := loadSettings(args)
	if err != nil {
		return err
	}

	bank, err := loadWords(settings)
	if err != nil {
		return err
	}
	hlog.Info("hangman %s: %d words, %d misses per round", version, bank.Len(), settings.MaxMisses)

	palette, err := loadPalette(settings)
	if err != nil {
		return err
	}
	color := !settings.NoColor && os.Getenv("NO_COLOR") == ""

	out := display.NewRenderer(os.Stdout, palette, color)
	if settings.ShowRules {
		out.Rules(stdoutWidth())
	}

	prompt := palette.Prompt
	if !color {
		prompt = theme.PlainPalette().Prompt
	}
	session := play.NewSession(lineedit.New(nil), bank, out, play.Config{
		MaxMisses: settings.MaxMisses,
		Prompt:    prompt,
	})
	return session.Run()
}

func loadSettings(args cliArgs) (config.Settings, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return config.Settings{}, fmt.Errorf("getting working directory: %w", err)
	}
	loaded, err := config.Load(cwd)
	if err != nil {
		return config.Settings{}, err
	}

	settings := args.apply(*loaded).WithDefaults()
	if err := settings.Validate(); err != nil {
		return config.Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	hlog.Debug("settings: %+v", settings)
	return settings, nil
}

func loadWords(s config.Settings) (*words.Bank, error) {
	if len(s.WordFiles) == 0 {
		return words.Default(), nil
	}
	return words.LoadFiles(context.Background(), s.MinWordLength, s.WordFiles...)
}

func loadPalette(s config.Settings) (theme.Palette, error) {
	if s.ThemeFile != "" {
		th, err := theme.LoadFile(s.ThemeFile)
		if err != nil {
			return theme.Palette{}, err
		}
		return th.Palette, nil
	}
	th := theme.Builtin(s.Theme)
	if th == nil {
		return theme.Palette{}, fmt.Errorf("unknown theme %q", s.Theme)
	}
	return th.Palette, nil
}

// stdoutWidth returns the terminal width for wrapping, or 0 when stdout is
// not a terminal.
func stdoutWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0
	}
	w, _, err := term.GetSize(fd)
	if err != nil {
		return 0
	}
	return w
}
