// Package palettefile loads the color palette from a JSON file.
package palettefile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/couchcryptid/ejc-map/internal/domain"
)

// paletteEntry is one element of the palette file: an object with at least a
// "color" field. Extra fields (like a human-readable name) are ignored.
type paletteEntry struct {
	Name  string `json:"name,omitempty"`
	Color string `json:"color"`
}

// Loader reads an ordered color palette from a JSON file.
// It implements pipeline.PaletteSource.
type Loader struct {
	path string
}

// NewLoader creates a palette loader for the given file path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load reads the palette, preserving file order. It fails if the file is
// missing, is not a JSON array, or contains an entry without a color token.
func (l *Loader) Load(_ context.Context) (domain.Palette, error) {
	data, err := os.ReadFile(l.path)
	if err != nil {
		return nil, fmt.Errorf("open palette: %w", err)
	}

	var entries []paletteEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse palette %s: %w", l.path, err)
	}

	palette := make(domain.Palette, 0, len(entries))
	for i, e := range entries {
		if e.Color == "" {
			return nil, fmt.Errorf("palette %s entry %d: missing color field", l.path, i)
		}
		palette = append(palette, e.Color)
	}
	return palette, nil
}
