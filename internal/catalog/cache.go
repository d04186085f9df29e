package catalog

import (
	"database/sql"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/osint-atlas/atlas/internal/model"
)

const cacheSchemaVersion = 1

// Cache holds the last successfully fetched catalog in a local SQLite
// database, so a failed fetch can degrade to recent data instead of the
// static list.
type Cache struct {
	db   *sql.DB
	path string
}

// NewCache opens (or creates) the cache database at path.
func NewCache(path string) (*Cache, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}

	c := &Cache{db: db, path: path}
	if err := c.migrate(); err != nil {
		db.Close()
		return nil, err
	}

	return c, nil
}

// Path returns the database file path.
func (c *Cache) Path() string {
	return c.path
}

// Close closes the database connection.
func (c *Cache) Close() error {
	return c.db.Close()
}

func (c *Cache) migrate() error {
	var version int
	err := c.db.QueryRow("SELECT version FROM schema_version LIMIT 1").Scan(&version)
	if err != nil {
		// Table doesn't exist or is empty, start fresh
		version = 0
	}

	if version < cacheSchemaVersion {
		schema := `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY
			);

			CREATE TABLE IF NOT EXISTS tools (
				id INTEGER PRIMARY KEY NOT NULL,
				name TEXT NOT NULL,
				description TEXT NOT NULL,
				category TEXT NOT NULL,
				status TEXT NOT NULL,
				url TEXT NOT NULL,
				pricing TEXT NOT NULL,
				registration INTEGER NOT NULL DEFAULT 0,
				created_at TEXT,
				updated_at TEXT
			);

			CREATE INDEX IF NOT EXISTS idx_tools_category ON tools(category);

			INSERT OR REPLACE INTO schema_version (version) VALUES (1);
		`
		if _, err := c.db.Exec(schema); err != nil {
			return err
		}
	}

	return nil
}

// Load reads the cached catalog. Returns an empty list if nothing has been
// cached yet.
func (c *Cache) Load() ([]model.Tool, error) {
	rows, err := c.db.Query(`
		SELECT id, name, description, category, status, url, pricing, registration,
		       COALESCE(created_at, ''), COALESCE(updated_at, '')
		FROM tools
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tools []model.Tool
	for rows.Next() {
		var t model.Tool
		var registration int

		if err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.Category, &t.Status,
			&t.URL, &t.Pricing, &registration, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, err
		}
		t.Registration = registration == 1

		tools = append(tools, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tools, nil
}

// Save replaces the cached catalog with the given working list.
// Uses a transaction for atomicity - all or nothing.
func (c *Cache) Save(tools []model.Tool) error {
	tx, err := c.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM tools"); err != nil {
		return err
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tools (id, name, description, category, status, url, pricing, registration, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, t := range tools {
		registration := 0
		if t.Registration {
			registration = 1
		}
		if _, err := stmt.Exec(
			t.ID, t.Name, t.Description, t.Category, string(t.Status),
			t.URL, string(t.Pricing), registration, t.CreatedAt, t.UpdatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// DefaultCachePath returns the default cache path under the data directory.
func DefaultCachePath(dataDir string) string {
	return filepath.Join(dataDir, "catalog.db")
}
