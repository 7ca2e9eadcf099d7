// ABOUTME: Loads word packs from disk concurrently: plain text or YAML
// ABOUTME: Files are read in parallel with errgroup and merged in argument order

package words

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	hlog "github.com/mauromedda/hangman-go/internal/log"
)

// pack is the YAML word pack layout.
type pack struct {
	Name  string   `yaml:"name"`
	Words []string `yaml:"words"`
}

// LoadFiles reads every path concurrently and builds one Bank from their
// entries in argument order. Files ending in .yaml or .yml hold a pack with
// a "words" list; anything else is one word per line with # comments. The
// first read or parse error cancels the rest.
func LoadFiles(ctx context.Context, minLen int, paths ...string) (*Bank, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("loading words: %w", ErrEmpty)
	}

	lists := make([][]string, len(paths))
	g, gCtx := errgroup.WithContext(ctx)

	for i, p := range paths {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			entries, err := loadFile(p)
			if err != nil {
				return err
			}
			lists[i] = entries
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading words: %w", err)
	}

	var all []string
	for i, l := range lists {
		hlog.Debug("words: %s: %d entries", paths[i], len(l))
		all = append(all, l...)
	}

	b, err := New(all, minLen)
	if err != nil {
		return nil, fmt.Errorf("loading words from %s: %w", strings.Join(paths, ", "), err)
	}
	return b, nil
}

func loadFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		var p pack
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
		return p.Words, nil
	default:
		return parseLines(string(data)), nil
	}
}
