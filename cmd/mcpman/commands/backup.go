package commands

import "mcpman/cmd/mcpman/commands/backup"

func init() {
	rootCmd.AddCommand(backup.Cmd)
}
