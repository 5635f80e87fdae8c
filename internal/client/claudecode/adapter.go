// Package claudecode implements the client adapter for Claude Code.
package claudecode

import (
	"path/filepath"
	"sort"

	"mcpman/internal/backup"
	"mcpman/internal/client"
	"mcpman/internal/errors"
	"mcpman/internal/mcp"
	"mcpman/internal/paths"
)

const (
	clientName  = "claude-code"
	displayName = "Claude Code"
	configDir   = ".claude"
	configFile  = "settings.json"
)

var _ client.Adapter = (*Adapter)(nil)

// Adapter reads and writes MCP server entries in Claude Code settings
// files. Servers live under the top-level "mcpServers" key; every other
// key in the settings file passes through writes untouched.
type Adapter struct {
	homeDir     string
	projectRoot string
}

// Option configures an Adapter instance.
type Option func(*Adapter)

// WithHomeDir overrides the home directory used for user and global scope
// paths. Primarily for tests.
func WithHomeDir(dir string) Option {
	return func(a *Adapter) {
		a.homeDir = dir
	}
}

// WithProjectRoot sets the project root directory for project-scoped paths.
func WithProjectRoot(root string) Option {
	return func(a *Adapter) {
		a.projectRoot = root
	}
}

// New creates a Claude Code adapter with the given options.
func New(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Name returns the client identifier.
func (a *Adapter) Name() string {
	return clientName
}

// DisplayName returns the human-readable client name.
func (a *Adapter) DisplayName() string {
	return displayName
}

// ConfigPath resolves the settings file path for a scope.
// Project scope resolves under the project root; user and global scope
// both resolve to ~/.claude/settings.json.
func (a *Adapter) ConfigPath(scope mcp.Scope) (string, error) {
	if scope == mcp.ScopeProject {
		if a.projectRoot == "" {
			return "", errors.Newf("%s: project root not set", clientName)
		}
		return filepath.Join(a.projectRoot, configDir, configFile), nil
	}

	home := a.homeDir
	if home == "" {
		h, err := paths.ResolveHome()
		if err != nil {
			return "", err
		}
		home = h
	}
	return filepath.Join(home, configDir, configFile), nil
}

// ReadConfig loads the settings file for a scope. A missing file yields
// the canonical empty document.
func (a *Adapter) ReadConfig(scope mcp.Scope) (client.Document, error) {
	path, err := a.ConfigPath(scope)
	if err != nil {
		return nil, err
	}

	doc, err := client.ReadJSONDocument(path)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return client.Document{"mcpServers": map[string]any{}}, nil
	}
	return doc, nil
}

// WriteConfig persists the document to the scope's settings path.
func (a *Adapter) WriteConfig(doc client.Document, scope mcp.Scope) error {
	path, err := a.ConfigPath(scope)
	if err != nil {
		return err
	}
	return client.WriteJSONDocument(path, doc)
}

// ListServers returns the servers defined in the scope's settings file,
// sorted by name. Entries that are not objects or lack a command are
// skipped.
func (a *Adapter) ListServers(scope mcp.Scope) ([]*mcp.Server, error) {
	doc, err := a.ReadConfig(scope)
	if err != nil {
		return nil, err
	}

	entries := client.ChildMap(doc, "mcpServers")
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	servers := make([]*mcp.Server, 0, len(entries))
	for _, name := range names {
		entry, ok := entries[name].(map[string]any)
		if !ok {
			continue
		}
		command := client.StringValue(entry, "command")
		if command == "" {
			continue
		}

		opts := []mcp.Option{
			mcp.WithArgs(client.StringSlice(entry, "args")...),
			mcp.WithEnv(client.StringMap(entry, "env")),
		}
		if t := client.StringValue(entry, "type"); t != "" {
			opts = append(opts, mcp.WithTransport(t))
		}

		srv, err := mcp.New(name, command, opts...)
		if err != nil {
			continue
		}
		servers = append(servers, srv)
	}

	return servers, nil
}

// AddServer merges a server entry into the scope's settings file, backing
// up the previous file first. Re-adding an existing name overwrites that
// entry.
func (a *Adapter) AddServer(srv *mcp.Server, scope mcp.Scope) error {
	if _, err := a.Backup(scope); err != nil {
		return err
	}

	doc, err := a.ReadConfig(scope)
	if err != nil {
		return err
	}

	entries := client.ChildMap(doc, "mcpServers")
	if entries == nil {
		entries = map[string]any{}
		doc["mcpServers"] = entries
	}

	entries[srv.Name] = map[string]any{
		"command": srv.Command,
		"args":    client.AnySlice(srv.Args),
		"env":     client.AnyMap(srv.Env),
		"type":    srv.Transport,
	}

	return a.WriteConfig(doc, scope)
}

// RemoveServer deletes a server entry by name, backing up the previous
// file first. Removing an absent name is a no-op.
func (a *Adapter) RemoveServer(name string, scope mcp.Scope) error {
	if _, err := a.Backup(scope); err != nil {
		return err
	}

	doc, err := a.ReadConfig(scope)
	if err != nil {
		return err
	}

	entries := client.ChildMap(doc, "mcpServers")
	if _, ok := entries[name]; !ok {
		return nil
	}

	delete(entries, name)
	return a.WriteConfig(doc, scope)
}

// Validate reports whether the document has the structure Claude Code
// expects: if "mcpServers" is present it must be an object whose values
// are objects carrying a command.
func (a *Adapter) Validate(doc client.Document) bool {
	if doc == nil {
		return false
	}

	raw, ok := doc["mcpServers"]
	if !ok {
		return true
	}

	entries, ok := raw.(map[string]any)
	if !ok {
		return false
	}
	for _, v := range entries {
		entry, ok := v.(map[string]any)
		if !ok {
			return false
		}
		if _, ok := entry["command"]; !ok {
			return false
		}
	}
	return true
}

// Backup copies the scope's settings file into its backup directory,
// returning "" when no file existed yet.
func (a *Adapter) Backup(scope mcp.Scope) (string, error) {
	path, err := a.ConfigPath(scope)
	if err != nil {
		return "", err
	}
	return backup.Create(path)
}
