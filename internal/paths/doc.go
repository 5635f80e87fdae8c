// Package paths provides path resolution utilities for mcpman's own
// directories.
//
// Client configuration file locations are owned by the individual client
// adapters; this package only resolves the pieces they and the rest of the
// CLI share: the user's home directory, XDG base directories, and the
// catalogue data directory.
//
// # XDG Base Directory Compliance
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux and macOS, paths follow XDG conventions
// (~/.config, ~/.local/share).
//
// # Data Directory
//
// The catalogue database lives under a dot directory in the user's home:
//
//	paths.DataDir()             // ~/.mcp-manager/
//	paths.DefaultDatabasePath() // ~/.mcp-manager/mcp-manager.db
//
// # Error Handling
//
// Convenience accessors return empty strings when the home directory cannot
// be resolved. Use [ResolveHome] where the error matters.
package paths
