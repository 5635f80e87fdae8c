package engine

import (
	"fmt"
	"log/slog"

	"mcpman/internal/client"
	"mcpman/internal/errors"
	"mcpman/internal/mcp"
	"mcpman/internal/store"
)

// Engine reconciles the server catalogue with client configuration files.
// All operations are synchronous one-shots; the zero value is not usable,
// construct with New.
type Engine struct {
	store    *store.Store
	registry *client.Registry
	logger   *slog.Logger
}

// New creates an engine over the given catalogue store and adapter registry.
// It logs through the process default logger.
func New(st *store.Store, reg *client.Registry) *Engine {
	return &Engine{store: st, registry: reg, logger: slog.Default()}
}

// NewWithLogger creates an engine that logs through the given logger.
func NewWithLogger(st *store.Store, reg *client.Registry, logger *slog.Logger) *Engine {
	return &Engine{store: st, registry: reg, logger: logger}
}

// Deploy writes a catalogue server into a client's configuration at the
// given scope and records the deployment. The deployment row is only
// created after the configuration write succeeds.
func (e *Engine) Deploy(serverID, clientName string, scope mcp.Scope) (*mcp.Deployment, error) {
	srv, err := e.store.GetServer(serverID)
	if err != nil {
		return nil, err
	}
	adapter, err := e.registry.Get(clientName)
	if err != nil {
		return nil, err
	}

	if err := adapter.AddServer(srv, scope); err != nil {
		return nil, errors.Wrapf(err, "deploying %s to %s", srv.Name, clientName)
	}

	d := mcp.NewDeployment(srv.ID, clientName, scope)
	if err := e.store.AddDeployment(d); err != nil {
		return nil, err
	}

	args := []any{"server", srv.Name, "client", clientName, "scope", scope}
	for k, v := range srv.Env {
		args = append(args, k, v)
	}
	e.logger.Debug("deployed server", args...)
	return d, nil
}

// Undeploy removes a catalogue server from a client's configuration at the
// given scope and drops the matching deployment records. The configuration
// file is modified first; records are only deleted once the write has
// succeeded, so a failed write leaves them in place for a retry.
func (e *Engine) Undeploy(serverID, clientName string, scope mcp.Scope) error {
	srv, err := e.store.GetServer(serverID)
	if err != nil {
		return err
	}
	adapter, err := e.registry.Get(clientName)
	if err != nil {
		return err
	}

	if err := adapter.RemoveServer(srv.Name, scope); err != nil {
		return errors.Wrapf(err, "removing %s from %s", srv.Name, clientName)
	}

	deployments, err := e.store.ListDeployments(serverID, clientName)
	if err != nil {
		return err
	}
	for _, d := range deployments {
		if d.Scope != scope {
			continue
		}
		if err := e.store.DeleteDeployment(d.ID); err != nil {
			return err
		}
	}

	e.logger.Debug("removed server",
		"server", srv.Name,
		"client", clientName,
		"scope", scope)
	return nil
}

// BulkResult reports the outcome of a cross-product deploy. Succeeded
// entries read "name -> client", Failed entries append the reason.
type BulkResult struct {
	Succeeded []string `json:"succeeded"`
	Failed    []string `json:"failed"`
}

// BulkDeploy deploys every listed server to every listed client at the
// given scope. Failures are collected per pair; one bad pair never stops
// the rest.
func (e *Engine) BulkDeploy(serverIDs, clientNames []string, scope mcp.Scope) *BulkResult {
	result := &BulkResult{}

	for _, serverID := range serverIDs {
		name := serverID
		if srv, err := e.store.GetServer(serverID); err == nil {
			name = srv.Name
		}

		for _, clientName := range clientNames {
			if _, err := e.Deploy(serverID, clientName, scope); err != nil {
				e.logger.Warn("failed to deploy server",
					"server", name,
					"client", clientName,
					"error", err)
				result.Failed = append(result.Failed, fmt.Sprintf("%s -> %s: %v", name, clientName, err))
				continue
			}
			result.Succeeded = append(result.Succeeded, fmt.Sprintf("%s -> %s", name, clientName))
		}
	}
	return result
}
