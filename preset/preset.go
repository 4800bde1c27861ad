package preset

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/buger/jsonparser"
	_ "github.com/mattn/go-sqlite3"
)

// ErrNotFound marks a preset name with nothing stored under it.
var ErrNotFound = errors.New("preset: not found")

const schema = `
CREATE TABLE IF NOT EXISTS presets (
	name     TEXT PRIMARY KEY,
	body     BLOB NOT NULL,
	saved_at TEXT NOT NULL
);`

// Store is a named-preset library backed by a SQLite database file.
type Store struct {
	db *sql.DB
}

// Open opens the preset database at path, creating the file and schema on
// first use.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("preset: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("preset: init schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save stores body under name, replacing any existing preset with the same
// name and stamping the save time.
func (s *Store) Save(name string, body []byte) error {
	savedAt := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO presets (name, body, saved_at) VALUES (?, ?, ?)`,
		name, body, savedAt,
	)
	if err != nil {
		return fmt.Errorf("preset: save %q: %w", name, err)
	}
	return nil
}

// Load returns the body stored under name.
func (s *Store) Load(name string) ([]byte, error) {
	var body []byte
	err := s.db.QueryRow(`SELECT body FROM presets WHERE name = ?`, name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("preset: load %q: %w", name, err)
	}
	return body, nil
}

// Delete removes the preset stored under name.
func (s *Store) Delete(name string) error {
	res, err := s.db.Exec(`DELETE FROM presets WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("preset: delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("preset: delete %q: %w", name, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Info describes one stored preset. Device is peeked from JSON bodies and
// stays empty for text bodies.
type Info struct {
	Name    string
	Device  string
	SavedAt string
}

// List returns the stored presets in name order.
func (s *Store) List() ([]Info, error) {
	rows, err := s.db.Query(`SELECT name, body, saved_at FROM presets ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("preset: list: %w", err)
	}
	defer rows.Close()

	var infos []Info
	for rows.Next() {
		var (
			info Info
			body []byte
		)
		if err := rows.Scan(&info.Name, &body, &info.SavedAt); err != nil {
			return nil, fmt.Errorf("preset: list: %w", err)
		}
		if device, err := jsonparser.GetString(body, "device"); err == nil {
			info.Device = device
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("preset: list: %w", err)
	}
	return infos, nil
}
