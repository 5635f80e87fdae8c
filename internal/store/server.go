package store

import (
	"database/sql"
	"strings"

	"mcpman/internal/errors"
	"mcpman/internal/mcp"
)

// AddServer inserts a new catalogue entry. The server name must not already
// be in use; a clash returns ErrDuplicateName.
func (s *Store) AddServer(srv *mcp.Server) error {
	if srv == nil {
		return errors.New("server is nil")
	}

	args, env, tags, metadata, err := encodeServerColumns(srv)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO servers (id, name, display_name, command, args, env, transport, tags, metadata, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.Exec(query,
		srv.ID, srv.Name, srv.DisplayName, srv.Command,
		args, env, srv.Transport, tags, metadata,
		encodeTime(srv.CreatedAt), encodeTime(srv.UpdatedAt),
	)
	if err != nil {
		if _, lookupErr := s.GetServerByName(srv.Name); lookupErr == nil {
			return errors.Wrapf(errors.ErrDuplicateName, "%s", srv.Name)
		}
		return errors.Wrapf(err, "inserting server %s", srv.Name)
	}
	return nil
}

// UpdateServer replaces the stored fields of an existing entry and bumps its
// updated_at. Renaming onto a name already in use returns ErrDuplicateName.
func (s *Store) UpdateServer(srv *mcp.Server) error {
	if srv == nil {
		return errors.New("server is nil")
	}

	args, env, tags, metadata, err := encodeServerColumns(srv)
	if err != nil {
		return err
	}

	srv.Touch()

	query := `
		UPDATE servers
		SET name = ?, display_name = ?, command = ?, args = ?, env = ?, transport = ?, tags = ?, metadata = ?, updated_at = ?
		WHERE id = ?
	`

	res, err := s.db.Exec(query,
		srv.Name, srv.DisplayName, srv.Command,
		args, env, srv.Transport, tags, metadata,
		encodeTime(srv.UpdatedAt), srv.ID,
	)
	if err != nil {
		if other, lookupErr := s.GetServerByName(srv.Name); lookupErr == nil && other.ID != srv.ID {
			return errors.Wrapf(errors.ErrDuplicateName, "%s", srv.Name)
		}
		return errors.Wrapf(err, "updating server %s", srv.ID)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "reading update result")
	}
	if n == 0 {
		return errors.Wrapf(errors.ErrNotFound, "server %s", srv.ID)
	}
	return nil
}

// DeleteServer removes a catalogue entry together with its deployment
// records.
func (s *Store) DeleteServer(id string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "beginning transaction")
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM deployments WHERE server_id = ?`, id); err != nil {
		return errors.Wrapf(err, "deleting deployments for server %s", id)
	}

	res, err := tx.Exec(`DELETE FROM servers WHERE id = ?`, id)
	if err != nil {
		return errors.Wrapf(err, "deleting server %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "reading delete result")
	}
	if n == 0 {
		return errors.Wrapf(errors.ErrNotFound, "server %s", id)
	}

	if err := tx.Commit(); err != nil {
		return errors.Wrapf(err, "committing delete of server %s", id)
	}
	return nil
}

// GetServer fetches a catalogue entry by id.
func (s *Store) GetServer(id string) (*mcp.Server, error) {
	query := `
		SELECT id, name, display_name, command, args, env, transport, tags, metadata, created_at, updated_at
		FROM servers
		WHERE id = ?
	`

	srv, err := scanServer(s.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(errors.ErrNotFound, "server %s", id)
		}
		return nil, err
	}
	return srv, nil
}

// GetServerByName fetches a catalogue entry by its unique name.
func (s *Store) GetServerByName(name string) (*mcp.Server, error) {
	query := `
		SELECT id, name, display_name, command, args, env, transport, tags, metadata, created_at, updated_at
		FROM servers
		WHERE name = ?
	`

	srv, err := scanServer(s.db.QueryRow(query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.Wrapf(errors.ErrNotFound, "server %s", name)
		}
		return nil, err
	}
	return srv, nil
}

// ListServers returns catalogue entries sorted by name. A non-empty tag
// restricts the result to entries carrying that tag.
func (s *Store) ListServers(tag string) ([]*mcp.Server, error) {
	query := `
		SELECT id, name, display_name, command, args, env, transport, tags, metadata, created_at, updated_at
		FROM servers
	`

	var params []any
	if tag != "" {
		// Tags are stored as a JSON array of normalized strings, so a
		// quoted substring match selects exact tags.
		query += ` WHERE tags LIKE ?`
		params = append(params, `%"`+strings.ToLower(strings.TrimSpace(tag))+`"%`)
	}
	query += ` ORDER BY name ASC`

	rows, err := s.db.Query(query, params...)
	if err != nil {
		return nil, errors.Wrap(err, "querying servers")
	}
	defer rows.Close()

	var servers []*mcp.Server
	for rows.Next() {
		srv, err := scanServer(rows)
		if err != nil {
			return nil, err
		}
		servers = append(servers, srv)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating servers")
	}
	return servers, nil
}

func encodeServerColumns(srv *mcp.Server) (args, env, tags, metadata string, err error) {
	if args, err = encodeJSON(srv.Args); err != nil {
		return "", "", "", "", errors.Wrapf(err, "server %s args", srv.Name)
	}
	if env, err = encodeJSON(srv.Env); err != nil {
		return "", "", "", "", errors.Wrapf(err, "server %s env", srv.Name)
	}
	if tags, err = encodeJSON(srv.Tags); err != nil {
		return "", "", "", "", errors.Wrapf(err, "server %s tags", srv.Name)
	}
	if metadata, err = encodeJSON(srv.Metadata); err != nil {
		return "", "", "", "", errors.Wrapf(err, "server %s metadata", srv.Name)
	}
	return args, env, tags, metadata, nil
}

func scanServer(row rowScanner) (*mcp.Server, error) {
	var (
		srv         mcp.Server
		displayName sql.NullString
		args        sql.NullString
		env         sql.NullString
		tags        sql.NullString
		metadata    sql.NullString
		createdAt   string
		updatedAt   string
	)

	err := row.Scan(
		&srv.ID, &srv.Name, &displayName, &srv.Command,
		&args, &env, &srv.Transport, &tags, &metadata,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	srv.DisplayName = displayName.String
	if err := decodeJSON(args, &srv.Args); err != nil {
		return nil, errors.Wrapf(err, "decoding args for server %s", srv.Name)
	}
	if err := decodeJSON(env, &srv.Env); err != nil {
		return nil, errors.Wrapf(err, "decoding env for server %s", srv.Name)
	}
	if err := decodeJSON(tags, &srv.Tags); err != nil {
		return nil, errors.Wrapf(err, "decoding tags for server %s", srv.Name)
	}
	if err := decodeJSON(metadata, &srv.Metadata); err != nil {
		return nil, errors.Wrapf(err, "decoding metadata for server %s", srv.Name)
	}
	if srv.CreatedAt, err = decodeTime(createdAt); err != nil {
		return nil, err
	}
	if srv.UpdatedAt, err = decodeTime(updatedAt); err != nil {
		return nil, err
	}
	return &srv, nil
}
