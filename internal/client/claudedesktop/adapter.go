// Package claudedesktop implements the client adapter for the Claude
// Desktop application.
package claudedesktop

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"mcpman/internal/backup"
	"mcpman/internal/client"
	"mcpman/internal/mcp"
	"mcpman/internal/paths"
)

const (
	clientName  = "claude-desktop"
	displayName = "Claude Desktop"
	configFile  = "claude_desktop_config.json"
)

var _ client.Adapter = (*Adapter)(nil)

// Adapter reads and writes MCP server entries in the Claude Desktop
// config file. The desktop app has a single config location per machine,
// so every scope resolves to the same OS-specific path.
type Adapter struct {
	homeDir  string
	platform string
}

// Option configures an Adapter instance.
type Option func(*Adapter)

// WithHomeDir overrides the home directory used for path resolution.
// Primarily for tests.
func WithHomeDir(dir string) Option {
	return func(a *Adapter) {
		a.homeDir = dir
	}
}

// WithPlatform overrides the operating system used for path resolution
// (darwin, windows, linux). Defaults to runtime.GOOS.
func WithPlatform(goos string) Option {
	return func(a *Adapter) {
		a.platform = goos
	}
}

// New creates a Claude Desktop adapter with the given options.
func New(opts ...Option) *Adapter {
	a := &Adapter{platform: runtime.GOOS}
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

// ConfigPath resolves the desktop config file path. The scope argument is
// accepted for interface compatibility; all scopes share one location:
//
//   - darwin: ~/Library/Application Support/Claude/claude_desktop_config.json
//   - windows: %APPDATA%\Claude\claude_desktop_config.json
//   - everything else: ~/.config/Claude/claude_desktop_config.json
func (a *Adapter) ConfigPath(scope mcp.Scope) (string, error) {
	home := a.homeDir
	if home == "" {
		h, err := paths.ResolveHome()
		if err != nil {
			return "", err
		}
		home = h
	}

	switch a.platform {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "Claude", configFile), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Claude", configFile), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "Claude", configFile), nil
	default:
		return filepath.Join(home, ".config", "Claude", configFile), nil
	}
}

// ReadConfig loads the desktop config file. A missing file yields the
// canonical empty document.
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

// WriteConfig persists the document to the desktop config path.
func (a *Adapter) WriteConfig(doc client.Document, scope mcp.Scope) error {
	path, err := a.ConfigPath(scope)
	if err != nil {
		return err
	}
	return client.WriteJSONDocument(path, doc)
}

// ListServers returns the servers defined in the desktop config, sorted
// by name. The desktop app only launches stdio servers, so transport is
// always reported as stdio regardless of any stored value.
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

// AddServer merges a server entry into the desktop config, backing up the
// previous file first. The env key is written only when the server has
// environment variables.
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

// Validate reports whether the document has the structure Claude Desktop
// expects: if "mcpServers" is present it must be an object whose entries
// carry a command, and any args value must be an array.
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
		if args, present := entry["args"]; present {
			if _, ok := args.([]any); !ok {
				return false
			}
		}
	}
	return true
}

// Backup copies the desktop config file into its backup directory,
// returning "" when no file existed yet.
func (a *Adapter) Backup(scope mcp.Scope) (string, error) {
	path, err := a.ConfigPath(scope)
	if err != nil {
		return "", err
	}
	return backup.Create(path)
}
