package store

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"mcpman/internal/errors"
)

const schema = `
CREATE TABLE IF NOT EXISTS servers (
	id           TEXT PRIMARY KEY,
	name         TEXT UNIQUE NOT NULL,
	display_name TEXT,
	command      TEXT NOT NULL,
	args         TEXT,
	env          TEXT,
	transport    TEXT NOT NULL,
	tags         TEXT,
	metadata     TEXT,
	created_at   TEXT NOT NULL,
	updated_at   TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS deployments (
	id          TEXT PRIMARY KEY,
	server_id   TEXT NOT NULL REFERENCES servers(id) ON DELETE CASCADE,
	client_name TEXT NOT NULL,
	scope       TEXT NOT NULL,
	enabled     INTEGER NOT NULL DEFAULT 1,
	deployed_at TEXT NOT NULL,
	last_sync   TEXT,
	UNIQUE (server_id, client_name, scope)
);

CREATE TABLE IF NOT EXISTS settings (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// Store persists the server catalogue, deployment records and settings in a
// local SQLite database.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the catalogue database at path, creating the file and its
// parent directory when missing. The schema is applied on every open.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating database directory for %s", path)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, errors.Wrapf(err, "opening database %s", path)
	}

	// SQLite applies pragmas per connection, so the pool is pinned to a
	// single connection to keep foreign_keys in force for every statement.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "enabling foreign keys")
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "initializing schema")
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Timestamps are stored as RFC 3339 text so rows stay readable with plain
// sqlite tooling.
const timeLayout = time.RFC3339Nano

func encodeTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func decodeTime(value string) (time.Time, error) {
	t, err := time.Parse(timeLayout, value)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing timestamp %q", value)
	}
	return t, nil
}

func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", errors.Wrap(err, "encoding column")
	}
	return string(data), nil
}

// decodeJSON leaves out untouched for NULL or empty columns.
func decodeJSON(column sql.NullString, out any) error {
	if !column.Valid || column.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(column.String), out)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
