// Package codex implements the client adapter for the Codex CLI.
//
// Codex keeps its configuration in TOML rather than JSON: MCP servers are
// [mcp_servers.<name>] tables inside config.toml, alongside unrelated
// top-level settings that must survive rewrites.
package codex

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
	clientName  = "codex"
	displayName = "Codex"
	configDir   = ".codex"
	configFile  = "config.toml"
)

var _ client.Adapter = (*Adapter)(nil)

// Adapter reads and writes MCP server tables in Codex config.toml files.
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

// New creates a Codex adapter with the given options.
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

// ConfigPath resolves the config.toml path for a scope. Project scope
// resolves under the project root; user and global scope both resolve to
// ~/.codex/config.toml.
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

// ReadConfig loads the config.toml for a scope. A missing file yields the
// canonical empty document.
func (a *Adapter) ReadConfig(scope mcp.Scope) (client.Document, error) {
	path, err := a.ConfigPath(scope)
	if err != nil {
		return nil, err
	}

	doc, err := client.ReadTOMLDocument(path)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return client.Document{"mcp_servers": map[string]any{}}, nil
	}
	return doc, nil
}

// WriteConfig persists the document to the scope's config.toml path.
func (a *Adapter) WriteConfig(doc client.Document, scope mcp.Scope) error {
	path, err := a.ConfigPath(scope)
	if err != nil {
		return err
	}
	return client.WriteTOMLDocument(path, doc)
}

// ListServers returns the servers defined in the scope's config.toml,
// sorted by name. Codex launches stdio servers, so transport is always
// stdio. Entries without a command are skipped.
func (a *Adapter) ListServers(scope mcp.Scope) ([]*mcp.Server, error) {
	doc, err := a.ReadConfig(scope)
	if err != nil {
		return nil, err
	}

	entries := client.ChildMap(doc, "mcp_servers")
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

		srv, err := mcp.New(name, command,
			mcp.WithArgs(client.StringSlice(entry, "args")...),
			mcp.WithEnv(client.StringMap(entry, "env")),
			mcp.WithTransport(mcp.TransportStdio),
		)
		if err != nil {
			continue
		}
		servers = append(servers, srv)
	}

	return servers, nil
}

// AddServer merges a server table into the scope's config.toml, backing
// up the previous file first. The env table is written only when the
// server has environment variables.
func (a *Adapter) AddServer(srv *mcp.Server, scope mcp.Scope) error {
	if _, err := a.Backup(scope); err != nil {
		return err
	}

	doc, err := a.ReadConfig(scope)
	if err != nil {
		return err
	}

	entries := client.ChildMap(doc, "mcp_servers")
	if entries == nil {
		entries = map[string]any{}
		doc["mcp_servers"] = entries
	}

	entry := map[string]any{
		"command": srv.Command,
		"args":    client.AnySlice(srv.Args),
	}
	if len(srv.Env) > 0 {
		entry["env"] = client.AnyMap(srv.Env)
	}
	entries[srv.Name] = entry

	return a.WriteConfig(doc, scope)
}

// RemoveServer deletes a server table by name, backing up the previous
// file first. Removing an absent name is a no-op.
func (a *Adapter) RemoveServer(name string, scope mcp.Scope) error {
	if _, err := a.Backup(scope); err != nil {
		return err
	}

	doc, err := a.ReadConfig(scope)
	if err != nil {
		return err
	}

	entries := client.ChildMap(doc, "mcp_servers")
	if _, ok := entries[name]; !ok {
		return nil
	}

	delete(entries, name)
	return a.WriteConfig(doc, scope)
}

// Validate reports whether the document has the structure Codex expects:
// if "mcp_servers" is present it must be a table of tables whose entries
// carry a command, and any args value must be an array.
func (a *Adapter) Validate(doc client.Document) bool {
	if doc == nil {
		return false
	}

	raw, ok := doc["mcp_servers"]
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
		if args, present := entry["args"]; present {
			if _, ok := args.([]any); !ok {
				return false
			}
		}
	}
	return true
}

// Backup copies the scope's config.toml into its backup directory,
// returning "" when no file existed yet.
func (a *Adapter) Backup(scope mcp.Scope) (string, error) {
	path, err := a.ConfigPath(scope)
	if err != nil {
		return "", err
	}
	return backup.Create(path)
}
