package commands

import (
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"mcpman/cmd"
	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/cli"
	"mcpman/internal/client"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, build date, and detected clients.`,
	RunE: func(c *cobra.Command, _ []string) error {
		return runVersionWithWriter(c.OutOrStdout())
	},
}

func runVersionWithWriter(w io.Writer) error {
	fmt.Fprintf(w, "mcpman version %s\n", cmd.Version)
	fmt.Fprintf(w, "  commit:    %s\n", cmd.Commit)
	fmt.Fprintf(w, "  built:     %s\n", cmd.Date)
	fmt.Fprintf(w, "  go:        %s\n", runtime.Version())
	fmt.Fprintln(w, "  clients:")

	reg, err := cli.NewRegistry(flags.GetProjectRoot())
	if err != nil {
		return err
	}
	for _, result := range client.DetectAll(reg) {
		status := "not installed"
		if result.Status == client.StatusInstalled {
			status = "installed"
		}
		fmt.Fprintf(w, "    %-16s %s\n", result.Name+":", status)
	}
	return nil
}
