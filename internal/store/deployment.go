package store

import (
	"database/sql"

	"mcpman/internal/errors"
	"mcpman/internal/mcp"
)

// AddDeployment records that a server was written into a client
// configuration. Deploying the same server to the same client and scope
// again replaces the earlier record.
func (s *Store) AddDeployment(d *mcp.Deployment) error {
	if d == nil {
		return errors.New("deployment is nil")
	}

	query := `
		INSERT OR REPLACE INTO deployments (id, server_id, client_name, scope, enabled, deployed_at, last_sync)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var lastSync any
	if d.LastSync != nil {
		lastSync = encodeTime(*d.LastSync)
	}

	_, err := s.db.Exec(query,
		d.ID, d.ServerID, d.ClientName, string(d.Scope),
		d.Enabled, encodeTime(d.DeployedAt), lastSync,
	)
	if err != nil {
		return errors.Wrapf(err, "recording deployment of %s to %s", d.ServerID, d.ClientName)
	}
	return nil
}

// ListDeployments returns deployment records ordered by client and scope.
// Empty filter values match everything.
func (s *Store) ListDeployments(serverID, clientName string) ([]*mcp.Deployment, error) {
	query := `
		SELECT id, server_id, client_name, scope, enabled, deployed_at, last_sync
		FROM deployments
		WHERE 1=1
	`

	var params []any
	if serverID != "" {
		query += ` AND server_id = ?`
		params = append(params, serverID)
	}
	if clientName != "" {
		query += ` AND client_name = ?`
		params = append(params, clientName)
	}
	query += ` ORDER BY client_name ASC, scope ASC`

	rows, err := s.db.Query(query, params...)
	if err != nil {
		return nil, errors.Wrap(err, "querying deployments")
	}
	defer rows.Close()

	var deployments []*mcp.Deployment
	for rows.Next() {
		d, err := scanDeployment(rows)
		if err != nil {
			return nil, err
		}
		deployments = append(deployments, d)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "iterating deployments")
	}
	return deployments, nil
}

// DeleteDeployment removes a deployment record by id.
func (s *Store) DeleteDeployment(id string) error {
	res, err := s.db.Exec(`DELETE FROM deployments WHERE id = ?`, id)
	if err != nil {
		return errors.Wrapf(err, "deleting deployment %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "reading delete result")
	}
	if n == 0 {
		return errors.Wrapf(errors.ErrNotFound, "deployment %s", id)
	}
	return nil
}

func scanDeployment(row rowScanner) (*mcp.Deployment, error) {
	var (
		d          mcp.Deployment
		scope      string
		deployedAt string
		lastSync   sql.NullString
	)

	err := row.Scan(&d.ID, &d.ServerID, &d.ClientName, &scope, &d.Enabled, &deployedAt, &lastSync)
	if err != nil {
		return nil, err
	}

	d.Scope = mcp.Scope(scope)
	if d.DeployedAt, err = decodeTime(deployedAt); err != nil {
		return nil, err
	}
	if lastSync.Valid && lastSync.String != "" {
		t, err := decodeTime(lastSync.String)
		if err != nil {
			return nil, err
		}
		d.LastSync = &t
	}
	return &d, nil
}
