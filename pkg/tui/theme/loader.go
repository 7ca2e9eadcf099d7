// ABOUTME: JSON theme file loading with an optional built-in base theme
// ABOUTME: Unset palette fields inherit from the base so the palette stays complete

package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"reflect"
)

// jsonPalette is the JSON-friendly representation of a Palette.
// Field names must match Palette's for convertPalette.
type jsonPalette struct {
	Primary string `json:"primary"`
	Muted   string `json:"muted"`
	Accent  string `json:"accent"`

	Success string `json:"success"`
	Warning string `json:"warning"`
	Error   string `json:"error"`

	Border  string `json:"border"`
	Gallows string `json:"gallows"`
	Word    string `json:"word"`
	Prompt  string `json:"prompt"`

	Bold string `json:"bold"`
}

type jsonTheme struct {
	Name    string      `json:"name"`
	Extends string      `json:"extends"`
	Palette jsonPalette `json:"palette"`
}

// LoadFile reads a JSON theme file and returns a Theme. Missing palette
// fields come from the built-in theme named by "extends", or from
// DefaultPalette when it is empty.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}

	var jt jsonTheme
	if err := json.Unmarshal(data, &jt); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}

	base := DefaultPalette()
	if jt.Extends != "" {
		b := Builtin(jt.Extends)
		if b == nil {
			return nil, fmt.Errorf("theme %q extends unknown theme %q", jt.Name, jt.Extends)
		}
		base = b.Palette
	}

	return &Theme{
		Name:    jt.Name,
		Palette: convertPalette(jt.Palette, base),
	}, nil
}

// convertPalette maps jsonPalette fields onto a Palette, using base for empty fields.
func convertPalette(jp jsonPalette, base Palette) Palette {
	p := base

	jpv := reflect.ValueOf(jp)
	pv := reflect.ValueOf(&p).Elem()
	jpt := jpv.Type()

	for i := range jpt.NumField() {
		jsonVal := jpv.Field(i).String()
		if jsonVal == "" {
			continue
		}
		pf := pv.FieldByName(jpt.Field(i).Name)
		if pf.IsValid() && pf.CanSet() {
			pf.Set(reflect.ValueOf(NewColor(jsonVal)))
		}
	}

	return p
}
