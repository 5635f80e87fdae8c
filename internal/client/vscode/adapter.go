// Package vscode implements the client adapter for VS Code's MCP
// integration.
package vscode

import (
	"path/filepath"
	"sort"
	"strings"

	"mcpman/internal/backup"
	"mcpman/internal/client"
	"mcpman/internal/errors"
	"mcpman/internal/mcp"
	"mcpman/internal/paths"
)

const (
	clientName  = "vscode"
	displayName = "VS Code"
	configDir   = ".vscode"
	configFile  = "mcp.json"
)

var _ client.Adapter = (*Adapter)(nil)

// Adapter reads and writes MCP server entries in VS Code mcp.json files.
// Servers live under the "servers" key; a top-level "inputs" list holds
// prompt descriptors the editor resolves at launch. Env values of the
// form ${input:<id>} reference those descriptors and pass through both
// directions verbatim.
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

// New creates a VS Code adapter with the given options.
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

// ConfigPath resolves the mcp.json path for a scope. Project scope
// resolves under the project root; user and global scope both resolve to
// ~/.vscode/mcp.json.
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

// ReadConfig loads the mcp.json file for a scope. A missing file yields
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
		return client.Document{
			"inputs":  []any{},
			"servers": map[string]any{},
		}, nil
	}
	return doc, nil
}

// WriteConfig persists the document to the scope's mcp.json path.
func (a *Adapter) WriteConfig(doc client.Document, scope mcp.Scope) error {
	path, err := a.ConfigPath(scope)
	if err != nil {
		return err
	}
	return client.WriteJSONDocument(path, doc)
}

// ListServers returns the servers defined in the scope's mcp.json, sorted
// by name. Entries missing a command or type are skipped. Env values are
// passed through verbatim, including ${input:<id>} references.
func (a *Adapter) ListServers(scope mcp.Scope) ([]*mcp.Server, error) {
	doc, err := a.ReadConfig(scope)
	if err != nil {
		return nil, err
	}

	entries := client.ChildMap(doc, "servers")
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
		transport := client.StringValue(entry, "type")
		if command == "" || transport == "" {
			continue
		}

		srv, err := mcp.New(name, command,
			mcp.WithArgs(client.StringSlice(entry, "args")...),
			mcp.WithEnv(client.StringMap(entry, "env")),
			mcp.WithTransport(transport),
		)
		if err != nil {
			continue
		}
		servers = append(servers, srv)
	}

	return servers, nil
}

// AddServer merges a server entry into the scope's mcp.json, backing up
// the previous file first. Sensitive env variable names each register a
// promptString input descriptor; descriptors are deduplicated by id, so
// two servers sharing an API_KEY variable produce one input.
func (a *Adapter) AddServer(srv *mcp.Server, scope mcp.Scope) error {
	if _, err := a.Backup(scope); err != nil {
		return err
	}

	doc, err := a.ReadConfig(scope)
	if err != nil {
		return err
	}

	entries := client.ChildMap(doc, "servers")
	if entries == nil {
		entries = map[string]any{}
		doc["servers"] = entries
	}

	entry := map[string]any{
		"type":    srv.Transport,
		"command": srv.Command,
		"args":    client.AnySlice(srv.Args),
	}
	if len(srv.Env) > 0 {
		entry["env"] = client.AnyMap(srv.Env)
		registerSensitiveInputs(doc, srv.Env)
	}
	entries[srv.Name] = entry

	return a.WriteConfig(doc, scope)
}

// RemoveServer deletes a server entry by name, backing up the previous
// file first. Input descriptors are left in place since other servers may
// still reference them. Removing an absent name is a no-op.
func (a *Adapter) RemoveServer(name string, scope mcp.Scope) error {
	if _, err := a.Backup(scope); err != nil {
		return err
	}

	doc, err := a.ReadConfig(scope)
	if err != nil {
		return err
	}

	entries := client.ChildMap(doc, "servers")
	if _, ok := entries[name]; !ok {
		return nil
	}

	delete(entries, name)
	return a.WriteConfig(doc, scope)
}

// Validate reports whether the document has the structure VS Code
// expects: "inputs", when present, must be a list of descriptors carrying
// id and type; "servers", when present, must be an object whose entries
// carry a command and a known type.
func (a *Adapter) Validate(doc client.Document) bool {
	if doc == nil {
		return false
	}

	if raw, ok := doc["inputs"]; ok {
		inputs, ok := raw.([]any)
		if !ok {
			return false
		}
		for _, item := range inputs {
			descriptor, ok := item.(map[string]any)
			if !ok {
				return false
			}
			if _, ok := descriptor["id"]; !ok {
				return false
			}
			if _, ok := descriptor["type"]; !ok {
				return false
			}
		}
	}

	if raw, ok := doc["servers"]; ok {
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
			transport := client.StringValue(entry, "type")
			if !mcp.ValidTransport(transport) {
				return false
			}
		}
	}

	return true
}

// Backup copies the scope's mcp.json into its backup directory, returning
// "" when no file existed yet.
func (a *Adapter) Backup(scope mcp.Scope) (string, error) {
	path, err := a.ConfigPath(scope)
	if err != nil {
		return "", err
	}
	return backup.Create(path)
}

// registerSensitiveInputs appends a promptString descriptor for every
// sensitive-looking env variable name that does not already have one.
// Descriptor ids derive from the variable name: lowercased, underscores
// replaced with hyphens.
func registerSensitiveInputs(doc client.Document, env map[string]string) {
	inputs := client.ChildSlice(doc, "inputs")
	if inputs == nil {
		inputs = []any{}
	}

	existing := make(map[string]struct{}, len(inputs))
	for _, item := range inputs {
		descriptor, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if id := client.StringValue(descriptor, "id"); id != "" {
			existing[id] = struct{}{}
		}
	}

	keys := make([]string, 0, len(env))
	for key := range env {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !mcp.SensitiveEnvKey(key) {
			continue
		}
		id := strings.ReplaceAll(strings.ToLower(key), "_", "-")
		if _, ok := existing[id]; ok {
			continue
		}
		inputs = append(inputs, map[string]any{
			"type":        "promptString",
			"id":          id,
			"description": key + " for MCP server",
			"password":    true,
		})
		existing[id] = struct{}{}
	}

	doc["inputs"] = inputs
}
