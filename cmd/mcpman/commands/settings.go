package commands

import "mcpman/cmd/mcpman/commands/settings"

func init() {
	rootCmd.AddCommand(settings.Cmd)
}
