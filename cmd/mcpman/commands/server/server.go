// Package server provides the server command group for managing the
// MCP server catalogue.
package server

import "github.com/spf13/cobra"

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Cmd is the server command that groups all catalogue subcommands.
var Cmd = &cobra.Command{
	Use:   "server",
	Short: "Manage the MCP server catalogue",
	Long: `Manage the MCP server catalogue.

The catalogue is the single source of truth for server definitions.
Entries added here are deployed into client configuration files with
"mcpman deploy" and removed with "mcpman undeploy".`,
	Example: `  # Add a server (args with dashes go after --)
  mcpman server add github npx -- -y @modelcontextprotocol/server-github

  # List catalogue entries
  mcpman server list

  # Show one entry with masked credentials
  mcpman server show github

  # Export the catalogue to YAML
  mcpman server export servers.yaml

  See Also:
    mcpman server add     - Add a catalogue entry
    mcpman server list    - List catalogue entries
    mcpman server show    - Show entry details
    mcpman server remove  - Delete an entry
    mcpman server export  - Export entries to YAML
    mcpman server import  - Import entries from YAML`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}
