package mcp

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"mcpman/internal/errors"
)

// Scope identifies where a deployment lands in a client's configuration.
type Scope string

// Deployment scopes.
const (
	// ScopeGlobal is system-wide configuration. Clients without a distinct
	// global location alias it to the user scope.
	ScopeGlobal Scope = "global"

	// ScopeUser is per-user configuration under the home directory.
	ScopeUser Scope = "user"

	// ScopeProject is per-project configuration under the working directory.
	ScopeProject Scope = "project"
)

// Scopes returns all deployment scopes in their canonical order.
func Scopes() []Scope {
	return []Scope{ScopeGlobal, ScopeUser, ScopeProject}
}

// SyncScopes returns the scopes swept during synchronization. The user scope
// is deliberately absent: every adapter aliases it to the global location,
// so sweeping it would only produce duplicate reads.
func SyncScopes() []Scope {
	return []Scope{ScopeGlobal, ScopeProject}
}

// ParseScope converts a string into a Scope, accepting any case.
func ParseScope(s string) (Scope, error) {
	switch Scope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeGlobal:
		return ScopeGlobal, nil
	case ScopeUser:
		return ScopeUser, nil
	case ScopeProject:
		return ScopeProject, nil
	}
	return "", errors.Wrapf(errors.ErrValidation, "unknown scope %q (want global, user, or project)", s)
}

// String returns the scope's wire value.
func (s Scope) String() string {
	return string(s)
}

// Valid reports whether the scope is one of the known values.
func (s Scope) Valid() bool {
	switch s {
	case ScopeGlobal, ScopeUser, ScopeProject:
		return true
	}
	return false
}

// Deployment records that one catalogue server is configured in one client
// at one scope. At most one deployment exists per (ServerID, ClientName,
// Scope) triple; the store enforces this with upsert semantics.
type Deployment struct {
	// ID is an opaque unique identifier.
	ID string `json:"id" yaml:"id"`

	// ServerID references the catalogue entry. Deleting the server deletes
	// its deployments.
	ServerID string `json:"serverId" yaml:"serverId"`

	// ClientName is the adapter registry key, e.g. "claude-code".
	ClientName string `json:"clientName" yaml:"clientName"`

	// Scope is where the server was written in the client's configuration.
	Scope Scope `json:"scope" yaml:"scope"`

	// Enabled records whether the deployment is active. New deployments
	// start enabled.
	Enabled bool `json:"enabled" yaml:"enabled"`

	// DeployedAt is when the deployment row was created.
	DeployedAt time.Time `json:"deployedAt" yaml:"deployedAt"`

	// LastSync is when a sync sweep last confirmed this deployment, if ever.
	LastSync *time.Time `json:"lastSync,omitempty" yaml:"lastSync,omitempty"`
}

// NewDeployment creates an enabled deployment for the given triple.
func NewDeployment(serverID, clientName string, scope Scope) *Deployment {
	return &Deployment{
		ID:         uuid.NewString(),
		ServerID:   serverID,
		ClientName: clientName,
		Scope:      scope,
		Enabled:    true,
		DeployedAt: time.Now().UTC(),
	}
}
