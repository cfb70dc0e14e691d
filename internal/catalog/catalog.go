// Package catalog holds the selectable values offered by the select steps of
// the wizard. Favorites are free text and have no catalog entry.
package catalog

import (
	"fmt"
	"strings"

	"recommender/internal/common/fsutil"
	"recommender/internal/wizard"
)

// Catalog lists the allowed values per select step.
type Catalog struct {
	Types  []string `json:"types" yaml:"types" toml:"types"`
	Genres []string `json:"genres" yaml:"genres" toml:"genres"`
	Moods  []string `json:"moods" yaml:"moods" toml:"moods"`
}

// Default returns the built-in catalog.
func Default() Catalog {
	return Catalog{
		Types: []string{"Books", "Shows", "Movies", "Anime"},
		Genres: []string{
			"Action", "Adventure", "Comedy", "Drama", "Fantasy", "Horror", "Mystery", "Romance",
			"Sci-Fi", "Thriller", "Western", "Animation", "Documentary", "Biography", "Crime",
		},
		Moods: []string{"Happy", "Sad", "Excited", "Relaxed"},
	}
}

// LoadFile reads a catalog from a .yaml/.yml, .json or .toml file.
// Lists left empty in the file keep their default values.
func LoadFile(path string) (Catalog, error) {
	var c Catalog
	if err := fsutil.DecodeFile(path, &c); err != nil {
		return Catalog{}, fmt.Errorf("load catalog: %w", err)
	}
	def := Default()
	c.Types = clean(c.Types, def.Types)
	c.Genres = clean(c.Genres, def.Genres)
	c.Moods = clean(c.Moods, def.Moods)
	return c, nil
}

// clean trims entries, drops blanks and duplicates, and falls back to def when nothing is left.
func clean(in, def []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return append([]string(nil), def...)
	}
	return out
}

// Options returns the allowed values for f, or nil for free-text fields.
func (c Catalog) Options(f wizard.Field) []string {
	switch f {
	case wizard.FieldType:
		return c.Types
	case wizard.FieldGenre:
		return c.Genres
	case wizard.FieldMood:
		return c.Moods
	}
	return nil
}

// Allows reports whether v is acceptable for f. Free-text fields accept any value.
func (c Catalog) Allows(f wizard.Field, v string) bool {
	opts := c.Options(f)
	if opts == nil {
		return true
	}
	for _, o := range opts {
		if o == v {
			return true
		}
	}
	return false
}
