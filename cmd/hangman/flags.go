// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Supports -words (repeatable), -max-misses, -theme, -no-color, -rules, -log, -verbose, -version

package main

import (
	"flag"
	"io"
	"strings"

	"github.com/mauromedda/hangman-go/internal/config"
)

type cliArgs struct {
	words     stringList
	maxMisses int
	theme     string
	noColor   bool
	rules     bool
	logFile   string
	verbose   bool
	version   bool
}

// stringList is a flag.Value collecting every occurrence of a flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("hangman", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Var(&args.words, "words", "Word list file, plain text or YAML (repeatable)")
	fs.IntVar(&args.maxMisses, "max-misses", 0, "Wrong guesses allowed per round (default 6)")
	fs.StringVar(&args.theme, "theme", "", "Built-in color theme: default, dark, light, monochrome, plain")
	fs.BoolVar(&args.noColor, "no-color", false, "Disable colored output")
	fs.BoolVar(&args.rules, "rules", false, "Show the rules before the first round")
	fs.StringVar(&args.logFile, "log", "", "Write diagnostics to this file instead of stderr")
	fs.BoolVar(&args.verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")

	if err := fs.Parse(argv); err != nil {
		return cliArgs{}, err
	}
	return args, nil
}

// apply overlays the flags that were set onto s.
func (a cliArgs) apply(s config.Settings) config.Settings {
	if len(a.words) > 0 {
		s.WordFiles = append([]string(nil), a.words...)
	}
	if a.maxMisses != 0 {
		s.MaxMisses = a.maxMisses
	}
	if a.theme != "" {
		s.Theme = a.theme
		s.ThemeFile = ""
	}
	if a.noColor {
		s.NoColor = true
	}
	if a.rules {
		s.ShowRules = true
	}
	return s
}
