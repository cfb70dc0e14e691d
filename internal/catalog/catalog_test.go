package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"recommender/internal/wizard"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if len(c.Types) != 4 || len(c.Genres) != 15 || len(c.Moods) != 4 {
		t.Fatalf("unexpected sizes: %d/%d/%d", len(c.Types), len(c.Genres), len(c.Moods))
	}
	if !c.Allows(wizard.FieldGenre, "Sci-Fi") {
		t.Fatalf("Sci-Fi should be allowed")
	}
	if c.Allows(wizard.FieldMood, "Angry") {
		t.Fatalf("Angry should not be allowed")
	}
	if !c.Allows(wizard.FieldFavorite, "anything at all") {
		t.Fatalf("favorite is free text")
	}
	if c.Options(wizard.FieldFavorite) != nil {
		t.Fatalf("favorite has no options")
	}
}

func TestLoadFileYAMLKeepsDefaultsForEmptyLists(t *testing.T) {
	p := filepath.Join(t.TempDir(), "options.yaml")
	content := "types: [Podcasts, ' Games ', Podcasts, '']\nmoods: []\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadFile(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(c.Types) != 2 || c.Types[0] != "Podcasts" || c.Types[1] != "Games" {
		t.Fatalf("types=%v", c.Types)
	}
	if len(c.Moods) != 4 {
		t.Fatalf("moods should fall back to defaults: %v", c.Moods)
	}
	if len(c.Genres) != 15 {
		t.Fatalf("genres should fall back to defaults: %v", c.Genres)
	}
}

func TestLoadFileJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "options.json")
	if err := os.WriteFile(p, []byte(`{"genres":["Noir"]}`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := LoadFile(p)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !c.Allows(wizard.FieldGenre, "Noir") || c.Allows(wizard.FieldGenre, "Drama") {
		t.Fatalf("genres=%v", c.Genres)
	}
}

func TestLoadFileErrors(t *testing.T) {
	if _, err := LoadFile(""); err == nil {
		t.Fatalf("expected error on empty path")
	}
	if _, err := LoadFile("/no/such/options.toml"); err == nil {
		t.Fatalf("expected error on missing file")
	}
}
