// ABOUTME: Settings loading with global + project config merge
// ABOUTME: JSON files; relative paths resolve against the file that names them

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const (
	defaultMaxMisses     = 6
	defaultMinWordLength = 3
	defaultTheme         = "default"

	// MaxMissesLimit keeps at least one letter of the alphabet unguessed.
	MaxMissesLimit = 25
)

// Settings holds the merged configuration. Zero values mean "not set".
type Settings struct {
	MaxMisses     int      `json:"max_misses,omitempty"`
	WordFiles     []string `json:"word_files,omitempty"`
	MinWordLength int      `json:"min_word_length,omitempty"`
	NoColor       bool     `json:"no_color,omitempty"`
	Theme         string   `json:"theme,omitempty"`
	ThemeFile     string   `json:"theme_file,omitempty"`
	ShowRules     bool     `json:"show_rules,omitempty"`
}

// Load reads and merges global and project-local settings.
// Project settings override global settings.
func Load(projectRoot string) (*Settings, error) {
	return loadFrom(GlobalConfigFile(), ProjectConfigFile(projectRoot))
}

func loadFrom(globalPath, projectPath string) (*Settings, error) {
	global, err := loadFile(globalPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading global config: %w", err)
	}

	project, err := loadFile(projectPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	return merged, nil
}

// loadFile reads a Settings from a JSON file. Returns zero Settings if the
// file does not exist. Relative file paths inside it are made relative to
// the file's directory.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	for i, f := range s.WordFiles {
		s.WordFiles[i] = resolvePath(dir, f)
	}
	s.ThemeFile = resolvePath(dir, s.ThemeFile)
	return &s, nil
}

// resolvePath joins rel onto dir unless it is empty, absolute or starts
// with an environment reference.
func resolvePath(dir, rel string) string {
	if rel == "" || filepath.IsAbs(rel) || strings.HasPrefix(rel, "${") {
		return rel
	}
	return filepath.Join(dir, rel)
}

// merge overlays project settings onto global settings.
// Non-zero project values override global values; word file lists replace
// rather than append.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global

	if project.MaxMisses != 0 {
		result.MaxMisses = project.MaxMisses
	}
	if len(project.WordFiles) > 0 {
		result.WordFiles = append([]string(nil), project.WordFiles...)
	}
	if project.MinWordLength != 0 {
		result.MinWordLength = project.MinWordLength
	}
	if project.NoColor {
		result.NoColor = true
	}
	if project.Theme != "" {
		result.Theme = project.Theme
	}
	if project.ThemeFile != "" {
		result.ThemeFile = project.ThemeFile
	}
	if project.ShowRules {
		result.ShowRules = true
	}

	return &result
}

// WithDefaults returns a copy with unset values filled in.
func (s Settings) WithDefaults() Settings {
	if s.MaxMisses == 0 {
		s.MaxMisses = defaultMaxMisses
	}
	if s.MinWordLength == 0 {
		s.MinWordLength = defaultMinWordLength
	}
	if s.Theme == "" {
		s.Theme = defaultTheme
	}
	return s
}

// Validate reports settings the game cannot run with.
func (s Settings) Validate() error {
	if s.MaxMisses < 1 || s.MaxMisses > MaxMissesLimit {
		return fmt.Errorf("max_misses must be between 1 and %d, got %d", MaxMissesLimit, s.MaxMisses)
	}
	if s.MinWordLength < 1 {
		return fmt.Errorf("min_word_length must be positive, got %d", s.MinWordLength)
	}
	return nil
}
