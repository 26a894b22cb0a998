package stages

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteCatalog implements Catalog over a single stages table. Definitions
// are stored as JSON text keyed by identifier, so the wire format and the
// stored format stay identical to the file-per-stage layout.
type SQLiteCatalog struct {
	db *sql.DB
}

// NewSQLiteCatalog opens (or creates) the database at path.
func NewSQLiteCatalog(path string) (*SQLiteCatalog, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	return &SQLiteCatalog{db: db}, nil
}

// Migrate runs database migrations
func (c *SQLiteCatalog) Migrate() error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS stages (
			id TEXT PRIMARY KEY,
			definition TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, migration := range migrations {
		if _, err := c.db.Exec(migration); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}

// List returns all stored stage identifiers.
func (c *SQLiteCatalog) List() ([]string, error) {
	rows, err := c.db.Query(`SELECT id FROM stages ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("listing stages: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// Load retrieves and decodes one stage definition.
func (c *SQLiteCatalog) Load(id string) (*Stage, error) {
	var definition string
	err := c.db.QueryRow(`SELECT definition FROM stages WHERE id = ?`, id).Scan(&definition)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading stage %q: %w", id, err)
	}

	var stage Stage
	if err := json.Unmarshal([]byte(definition), &stage); err != nil {
		return nil, fmt.Errorf("parsing stage %q: %w", id, err)
	}
	return &stage, nil
}

// Save stores the stage, replacing any existing row with the same id.
func (c *SQLiteCatalog) Save(stage *Stage) error {
	definition, err := json.Marshal(stage)
	if err != nil {
		return fmt.Errorf("encoding stage %q: %w", stage.ID, err)
	}

	_, err = c.db.Exec(
		`INSERT INTO stages (id, definition) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET definition = excluded.definition`,
		stage.ID, string(definition),
	)
	if err != nil {
		return fmt.Errorf("saving stage %q: %w", stage.ID, err)
	}
	return nil
}

// Close closes the database connection
func (c *SQLiteCatalog) Close() error {
	return c.db.Close()
}
