// Package cli carries plumbing shared by mcpman commands: building the
// adapter registry, parsing scope flags, and resolving client names.
package cli

import (
	"strings"

	"mcpman/internal/client"
	"mcpman/internal/client/claudecode"
	"mcpman/internal/client/claudedesktop"
	"mcpman/internal/client/codex"
	"mcpman/internal/client/vscode"
	"mcpman/internal/errors"
	"mcpman/internal/mcp"
)

// NewRegistry builds a registry holding every supported client adapter.
// projectRoot anchors project-scoped config paths; adapters reject
// project-scope operations when it is empty.
func NewRegistry(projectRoot string) (*client.Registry, error) {
	reg := client.NewRegistry()
	adapters := []client.Adapter{
		claudecode.New(claudecode.WithProjectRoot(projectRoot)),
		claudedesktop.New(),
		codex.New(codex.WithProjectRoot(projectRoot)),
		vscode.New(vscode.WithProjectRoot(projectRoot)),
	}
	for _, a := range adapters {
		if err := reg.Register(a); err != nil {
			return nil, errors.Wrapf(err, "registering %s", a.Name())
		}
	}
	return reg, nil
}

// DetermineScope parses a --scope flag value. Empty means the default
// global scope.
func DetermineScope(value string) (mcp.Scope, error) {
	if strings.TrimSpace(value) == "" {
		return mcp.ScopeGlobal, nil
	}
	return mcp.ParseScope(value)
}

// ResolveClients maps client names to registered adapters. An empty name
// list resolves to every registered adapter. Unknown names are collected
// into a single error so the user sees all of them at once.
func ResolveClients(reg *client.Registry, names []string) ([]client.Adapter, error) {
	if len(names) == 0 {
		return reg.All(), nil
	}

	adapters := make([]client.Adapter, 0, len(names))
	var invalid []string
	for _, name := range names {
		adapter, err := reg.Get(name)
		if err != nil {
			invalid = append(invalid, name)
			continue
		}
		adapters = append(adapters, adapter)
	}
	if len(invalid) > 0 {
		return nil, errors.Wrapf(errors.ErrUnknownClient, "%s (valid: %s)",
			strings.Join(invalid, ", "), strings.Join(reg.Names(), ", "))
	}
	return adapters, nil
}
