package commands

import "mcpman/cmd/mcpman/commands/server"

func init() {
	rootCmd.AddCommand(server.Cmd)
}
