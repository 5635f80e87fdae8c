package engine

import (
	"fmt"

	"mcpman/internal/errors"
	"mcpman/internal/mcp"
)

// SyncResult reports what a sync sweep changed for one client. Added holds
// names of servers imported into the catalogue, DeploymentsCreated holds
// "name (scope)" labels for new deployment records, Errors holds per-scope
// failure messages.
type SyncResult struct {
	Added              []string `json:"added"`
	DeploymentsCreated []string `json:"deploymentsCreated"`
	Errors             []string `json:"errors"`
}

// Changed reports whether the sweep imported servers or created deployment
// records.
func (r *SyncResult) Changed() bool {
	return len(r.Added) > 0 || len(r.DeploymentsCreated) > 0
}

// SyncClient sweeps a client's global and project configurations and pulls
// unknown servers into the catalogue. Sync is strictly additive: it never
// deletes catalogue entries and never overwrites fields of a server already
// known under the same name. A scope that fails to read contributes an
// error message and the sweep moves on.
func (e *Engine) SyncClient(clientName string) (*SyncResult, error) {
	adapter, err := e.registry.Get(clientName)
	if err != nil {
		return nil, err
	}

	result := &SyncResult{}
	for _, scope := range mcp.SyncScopes() {
		servers, err := adapter.ListServers(scope)
		if err != nil {
			e.logger.Warn("failed to read client scope",
				"client", clientName,
				"scope", scope,
				"error", err)
			result.Errors = append(result.Errors, fmt.Sprintf("scope %s: %v", scope, err))
			continue
		}

		for _, discovered := range servers {
			if err := e.recordDiscovered(result, discovered, clientName, scope); err != nil {
				e.logger.Warn("failed to record discovered server",
					"client", clientName,
					"scope", scope,
					"server", discovered.Name,
					"error", err)
				result.Errors = append(result.Errors, fmt.Sprintf("scope %s: %v", scope, err))
			}
		}
	}
	return result, nil
}

// SyncAll sweeps every registered client. Failures stay inside the failing
// client's result; one broken client never aborts the others.
func (e *Engine) SyncAll() map[string]*SyncResult {
	results := make(map[string]*SyncResult)
	for _, adapter := range e.registry.All() {
		name := adapter.Name()
		result, err := e.SyncClient(name)
		if err != nil {
			e.logger.Warn("failed to sync client", "client", name, "error", err)
			result = &SyncResult{Errors: []string{err.Error()}}
		}
		results[name] = result
	}
	return results
}

func (e *Engine) recordDiscovered(result *SyncResult, discovered *mcp.Server, clientName string, scope mcp.Scope) error {
	existing, err := e.store.GetServerByName(discovered.Name)
	switch {
	case err == nil:
	case errors.Is(err, errors.ErrNotFound):
		if err := e.store.AddServer(discovered); err != nil {
			return err
		}
		args := []any{"server", discovered.Name, "client", clientName, "scope", scope}
		for k, v := range discovered.Env {
			args = append(args, k, v)
		}
		e.logger.Debug("imported server", args...)
		result.Added = append(result.Added, discovered.Name)
		existing = discovered
	default:
		return err
	}

	known, err := e.hasDeployment(existing.ID, clientName, scope)
	if err != nil {
		return err
	}
	if known {
		return nil
	}

	if err := e.store.AddDeployment(mcp.NewDeployment(existing.ID, clientName, scope)); err != nil {
		return err
	}
	result.DeploymentsCreated = append(result.DeploymentsCreated, fmt.Sprintf("%s (%s)", existing.Name, scope))
	return nil
}

func (e *Engine) hasDeployment(serverID, clientName string, scope mcp.Scope) (bool, error) {
	deployments, err := e.store.ListDeployments(serverID, clientName)
	if err != nil {
		return false, err
	}
	for _, d := range deployments {
		if d.Scope == scope {
			return true, nil
		}
	}
	return false, nil
}
