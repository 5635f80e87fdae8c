// Package backup provides CLI commands for managing client config backups.
package backup

import (
	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/cli"
	"mcpman/internal/client"
	"mcpman/internal/errors"
	"mcpman/internal/mcp"
)

// Color constants for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Cmd is the root backup command.
var Cmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage client config backups",
	Long: `Manage backups of MCP client configuration files.

Before mcpman modifies a client config, it copies the current file into a
.mcp-manager-backups directory next to it. This command group lists those
backups, creates them manually, restores one, and prunes old ones.`,
	Example: `  # List all backups
  mcpman backup list

  # List backups for a specific client
  mcpman backup list --client claude-code

  # Restore the most recent backup of a client's global config
  mcpman backup restore claude-code

  # Restore a specific backup
  mcpman backup restore claude-code 20260815_143022

  # Create backups by hand
  mcpman backup create

  # Remove old backups, keeping the 3 most recent per config file
  mcpman backup prune --keep 3

  See Also:
    mcpman backup list    - List available backups
    mcpman backup restore - Restore from a backup
    mcpman backup create  - Manually create a backup
    mcpman backup prune   - Remove old backups`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// scopePath pairs a scope with the config file it resolves to.
type scopePath struct {
	scope mcp.Scope
	path  string
}

// scopeConfigPaths returns the distinct config files an adapter resolves
// across all scopes. Clients alias scopes to a shared file, so each path
// appears once, under the first scope that claims it.
func scopeConfigPaths(a client.Adapter) ([]scopePath, error) {
	seen := make(map[string]bool)
	var out []scopePath
	for _, scope := range mcp.Scopes() {
		path, err := a.ConfigPath(scope)
		if err != nil {
			return nil, errors.Wrapf(err, "resolving %s %s config path", a.Name(), scope)
		}
		if seen[path] {
			continue
		}
		seen[path] = true
		out = append(out, scopePath{scope: scope, path: path})
	}
	return out, nil
}

// resolveAdapters returns all registered adapters, or just the named one.
func resolveAdapters(name string) ([]client.Adapter, error) {
	reg, err := cli.NewRegistry(flags.GetProjectRoot())
	if err != nil {
		return nil, err
	}

	var names []string
	if name != "" {
		names = []string{name}
	}
	return cli.ResolveClients(reg, names)
}
