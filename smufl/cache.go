// Package smufl caches SMuFL glyph metadata (the standard glyph names
// and codepoints used to interpret a Staff's music font) in a small
// SQLite database, so a repeated lookup of the same font's metadata
// file does not re-parse its JSON every time (the supplemented feature
// in SPEC_FULL §3's instrument-map/notation-style rendering path).
package smufl

import (
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Cache wraps the SQLite glyph-metadata store.
type Cache struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open opens (or creates) the cache database at dataDir/smufl.db and
// runs any pending migrations.
func Open(dataDir string, logger *slog.Logger) (*Cache, error) {
	if logger == nil {
		logger = slog.Default()
	}
	dbPath := filepath.Join(dataDir, "smufl.db")

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=ON")
	if err != nil {
		return nil, fmt.Errorf("open smufl cache: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	c := &Cache{db: db, logger: logger}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return c, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) migrate() error {
	_, err := c.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("create migrations table: %w", err)
	}

	var currentVersion int
	row := c.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("read current version: %w", err)
	}

	entries, err := migrationsFS.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}
		var version int
		if _, err := fmt.Sscanf(entry.Name(), "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}
		content, err := migrationsFS.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		c.logger.Info("applying migration", "version", version, "file", entry.Name())
		if _, err := c.db.Exec(string(content)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
		}
		if _, err := c.db.Exec("INSERT INTO schema_migrations(version) VALUES (?)", version); err != nil {
			return fmt.Errorf("record migration %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// Glyph is one cached SMuFL glyph metadata entry.
type Glyph struct {
	Name        string
	Codepoint   string
	Description string
}

// Put inserts or replaces a glyph entry.
func (c *Cache) Put(g Glyph) error {
	_, err := c.db.Exec(
		`INSERT INTO glyphs(name, codepoint, description) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET codepoint=excluded.codepoint, description=excluded.description`,
		g.Name, g.Codepoint, g.Description)
	if err != nil {
		return fmt.Errorf("put glyph %q: %w", g.Name, err)
	}
	return nil
}

// Lookup returns the cached glyph by name.
func (c *Cache) Lookup(name string) (Glyph, bool, error) {
	var g Glyph
	row := c.db.QueryRow("SELECT name, codepoint, description FROM glyphs WHERE name = ?", name)
	if err := row.Scan(&g.Name, &g.Codepoint, &g.Description); err != nil {
		if err == sql.ErrNoRows {
			return Glyph{}, false, nil
		}
		return Glyph{}, false, fmt.Errorf("lookup glyph %q: %w", name, err)
	}
	return g, true, nil
}

// Count reports how many glyphs are cached, mainly for tests that want
// to assert a load actually populated the store.
func (c *Cache) Count() (int, error) {
	var n int
	if err := c.db.QueryRow("SELECT COUNT(*) FROM glyphs").Scan(&n); err != nil {
		return 0, fmt.Errorf("count glyphs: %w", err)
	}
	return n, nil
}
