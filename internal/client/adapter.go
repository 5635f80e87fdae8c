package client

import (
	"mcpman/internal/mcp"
)

// Adapter is the contract every supported MCP client implements. An adapter
// translates between the common catalogue representation ([mcp.Server]) and
// one client application's configuration file format.
//
// Adapters are pure file-format translators: they never touch the catalogue
// store. All mutating writes go through the client's config path atomically,
// after backing up the existing file.
//
// Implementations must be safe for concurrent use; they hold only immutable
// path configuration.
type Adapter interface {
	// Name returns the registry key, e.g. "claude-code".
	Name() string

	// DisplayName returns the human-readable client name, e.g. "Claude Code".
	DisplayName() string

	// ConfigPath resolves the configuration file path for a scope. Adapters
	// may alias scopes: a client with a single config location returns the
	// same path for every scope.
	ConfigPath(scope mcp.Scope) (string, error)

	// ReadConfig loads the config file for a scope. A missing file yields
	// the client's canonical empty document; a present but unparsable file
	// yields an error classified as ErrConfigParse.
	ReadConfig(scope mcp.Scope) (Document, error)

	// WriteConfig persists a document to the scope's config path, creating
	// parent directories as needed. The write is atomic.
	WriteConfig(doc Document, scope mcp.Scope) error

	// ListServers extracts the MCP servers defined in the scope's config.
	// Malformed entries are skipped; only the config file being unreadable
	// or unparsable is an error.
	ListServers(scope mcp.Scope) ([]*mcp.Server, error)

	// AddServer merges one server into the scope's config and writes it
	// back, backing up the previous file first. Re-adding an existing name
	// overwrites that entry and leaves the rest untouched.
	AddServer(srv *mcp.Server, scope mcp.Scope) error

	// RemoveServer deletes one server entry by name and writes the config
	// back, backing up the previous file first. Removing an absent name is
	// not an error.
	RemoveServer(name string, scope mcp.Scope) error

	// Validate reports whether a document has the structural shape this
	// client expects. It never mutates the document.
	Validate(doc Document) bool

	// Backup copies the scope's config file into its backup directory,
	// returning the backup path or "" when no file existed.
	Backup(scope mcp.Scope) (string, error)
}
