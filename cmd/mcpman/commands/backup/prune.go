package backup

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/backup"
	"mcpman/internal/config"
	"mcpman/internal/errors"
)

var (
	pruneKeep   int
	pruneClient string
)

func init() {
	pruneCmd.Flags().IntVar(&pruneKeep, "keep", config.DefaultBackupRetention,
		"Number of backups to retain per config file")
	pruneCmd.Flags().StringVarP(&pruneClient, "client", "c", "", "Limit to one client")
	Cmd.AddCommand(pruneCmd)
}

var pruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove old backups",
	Long: `Remove old backups beyond the retention count.

Retention is counted per config file. The default comes from the
backup_retention setting in the mcpman config file; the --keep flag
overrides it.

By default, prunes backups for all registered clients. Use the --client
flag to limit to one.`,
	Example: `  # Prune all clients using the configured retention
  mcpman backup prune

  # Keep only the 3 most recent backups of each config file
  mcpman backup prune --keep 3

  # Prune only Claude Desktop backups
  mcpman backup prune --client claude-desktop

  # Remove all backups
  mcpman backup prune --keep 0

  See Also:
    mcpman backup list   - List available backups
    mcpman backup create - Create a new backup`,
	RunE: runPrune,
}

func runPrune(cmd *cobra.Command, _ []string) error {
	keep := pruneKeep
	if !cmd.Flags().Changed("keep") {
		keep = flags.GetBackupRetention()
	}
	return runPruneWithWriter(keep, os.Stdout)
}

func runPruneWithWriter(keep int, w io.Writer) error {
	if keep < 0 {
		return errors.New("--keep must be non-negative")
	}

	adapters, err := resolveAdapters(pruneClient)
	if err != nil {
		return err
	}

	pruned := 0

	for _, a := range adapters {
		paths, err := scopeConfigPaths(a)
		if err != nil {
			return err
		}

		removedForClient := 0
		for _, sp := range paths {
			removed, err := backup.Prune(sp.path, keep)
			if err != nil {
				return errors.Wrapf(err, "pruning backups for %s", sp.path)
			}
			removedForClient += removed
		}

		if removedForClient > 0 {
			fmt.Fprintf(w, "%s✓ %s: removed %d old backup(s)%s\n",
				colorGreen, a.DisplayName(), removedForClient, colorReset)
			pruned += removedForClient
		}
	}

	if pruned == 0 {
		fmt.Fprintln(w, "No backups to prune")
	} else {
		fmt.Fprintf(w, "\nTotal: removed %d backup(s)\n", pruned)
	}

	return nil
}
