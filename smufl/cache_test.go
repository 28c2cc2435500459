package smufl

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestOpenRunsMigrationsAndPersistsVersion(t *testing.T) {
	dir := t.TempDir()
	c, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	n, err := c.Count()
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected an empty glyphs table after migration, got %d rows", n)
	}

	var version int
	row := c.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&version); err != nil {
		t.Fatalf("scan migration version: %v", err)
	}
	if version != 1 {
		t.Fatalf("expected migration 1 recorded, got %d", version)
	}

	// Reopening must not re-apply migration 1 (it would fail on the
	// already-existing glyphs table if schema_migrations weren't honored).
	c.Close()
	c2, err := Open(dir, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer c2.Close()
}

func TestPutAndLookupRoundTrip(t *testing.T) {
	c, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	g := Glyph{Name: "gClef", Codepoint: "U+E050", Description: "G clef"}
	if err := c.Put(g); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, ok, err := c.Lookup("gClef")
	if err != nil || !ok {
		t.Fatalf("lookup: ok=%v err=%v", ok, err)
	}
	if got != g {
		t.Fatalf("expected %+v, got %+v", g, got)
	}
}

func TestPutUpsertsOnConflict(t *testing.T) {
	c, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	c.Put(Glyph{Name: "fClef", Codepoint: "U+E062", Description: "old"})
	c.Put(Glyph{Name: "fClef", Codepoint: "U+E062", Description: "F clef"})

	got, _, _ := c.Lookup("fClef")
	if got.Description != "F clef" {
		t.Fatalf("expected upsert to replace description, got %q", got.Description)
	}
	n, _ := c.Count()
	if n != 1 {
		t.Fatalf("expected exactly one row after upsert, got %d", n)
	}
}

func TestLookupMissingGlyphReportsNotFound(t *testing.T) {
	c, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	_, ok, err := c.Lookup("noSuchGlyph")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if ok {
		t.Fatal("expected a missing glyph to report ok=false")
	}
}

func TestLoadMetadataFileParsesAndCountsEntries(t *testing.T) {
	c, err := Open(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer c.Close()

	data := map[string]map[string]string{
		"gClef": {"codepoint": "U+E050", "description": "G clef"},
		"fClef": {"codepoint": "U+E062", "description": "F clef"},
	}
	raw, err := json.Marshal(data)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "glyphnames.json")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	n, err := c.LoadMetadataFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 entries loaded, got %d", n)
	}
	count, _ := c.Count()
	if count != 2 {
		t.Fatalf("expected 2 rows cached, got %d", count)
	}
}

func TestSearchPathsReturnsNonEmptyList(t *testing.T) {
	paths := SearchPaths()
	if len(paths) == 0 {
		t.Fatal("expected at least one platform search path")
	}
}
