package store

import (
	"database/sql"
	"encoding/json"
	"time"

	"mcpman/internal/errors"
)

// SetSetting stores a value under key, replacing any previous value. Values
// are JSON-encoded.
func (s *Store) SetSetting(key string, value any) error {
	if key == "" {
		return errors.Wrap(errors.ErrValidation, "setting key is empty")
	}

	data, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "encoding setting %s", key)
	}

	query := `
		INSERT OR REPLACE INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
	`

	if _, err := s.db.Exec(query, key, string(data), encodeTime(time.Now())); err != nil {
		return errors.Wrapf(err, "storing setting %s", key)
	}
	return nil
}

// GetSetting decodes the value stored under key into out.
func (s *Store) GetSetting(key string, out any) error {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return errors.Wrapf(errors.ErrNotFound, "setting %s", key)
		}
		return errors.Wrapf(err, "loading setting %s", key)
	}

	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return errors.Wrapf(err, "decoding setting %s", key)
	}
	return nil
}

// AllSettings returns every stored setting keyed by name, with values as raw
// JSON.
func (s *Store) AllSettings() (map[string]json.RawMessage, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key ASC`)
	if err != nil {
		return nil, errors.Wrap(err, "querying settings")
	}
	defer rows.Close()

	settings := make(map[string]json.RawMessage)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, errors.Wrap(err, "scanning setting")
		}
		settings[key] = json.RawMessage(value)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating settings")
	}
	return settings, nil
}
