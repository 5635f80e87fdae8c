package backup

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mcpman/internal/backup"
	"mcpman/internal/cli"
	"mcpman/internal/cli/prompt"
	"mcpman/internal/errors"
)

var (
	restoreScope string
	restoreForce bool
)

func init() {
	restoreCmd.Flags().StringVarP(&restoreScope, "scope", "s", "", "Config scope to restore (global, user, project; default global)")
	restoreCmd.Flags().BoolVarP(&restoreForce, "force", "f", false, "Skip confirmation prompt")
	Cmd.AddCommand(restoreCmd)
}

var restoreCmd = &cobra.Command{
	Use:   "restore <client> [backup-id]",
	Short: "Restore a client config from a backup",
	Long: `Restore a client configuration file from a backup.

Without a backup ID, restores the most recent backup of the client's config
for the chosen scope. IDs are the timestamps shown by 'mcpman backup list'.

The current config file is backed up before it is overwritten, so a restore
can itself be undone.`,
	Example: `  # Restore the most recent backup of the global config
  mcpman backup restore claude-code

  # Restore a specific backup
  mcpman backup restore claude-code 20260815_143022

  # Restore the project-scope config without confirmation
  mcpman backup restore vscode --scope project --force

  See Also:
    mcpman backup list - List available backups`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRestore,
}

func runRestore(_ *cobra.Command, args []string) error {
	return runRestoreWithIO(args, os.Stdout, os.Stdin)
}

func runRestoreWithIO(args []string, w io.Writer, r io.Reader) error {
	scope, err := cli.DetermineScope(restoreScope)
	if err != nil {
		return err
	}

	adapters, err := resolveAdapters(args[0])
	if err != nil {
		return err
	}
	adapter := adapters[0]

	configPath, err := adapter.ConfigPath(scope)
	if err != nil {
		return errors.Wrapf(err, "resolving %s %s config path", adapter.Name(), scope)
	}

	entries, err := backup.List(configPath)
	if err != nil {
		return errors.Wrapf(err, "%s %s config (%s)", adapter.Name(), scope, configPath)
	}

	// Newest first, so the default is entries[0].
	entry := entries[0]
	if len(args) == 2 {
		id := args[1]
		found := false
		for _, e := range entries {
			if e.CreatedAt.Format(backup.TimestampFormat) == id {
				entry = e
				found = true
				break
			}
		}
		if !found {
			return errors.Wrapf(backup.ErrBackupNotFound,
				"%s (run 'mcpman backup list --client %s' to see IDs)", id, adapter.Name())
		}
	}

	if !restoreForce {
		ok := prompt.Confirm(r, w, "Overwrite %s with the backup from %s?",
			configPath, entry.CreatedAt.Local().Format("2006-01-02 15:04:05"))
		if !ok {
			fmt.Fprintln(w, "restore cancelled")
			return nil
		}
	}

	if err := backup.Restore(entry.Path, configPath); err != nil {
		return errors.Wrapf(err, "restoring %s", configPath)
	}

	fmt.Fprintf(w, "Restored %s%s%s from backup %s\n",
		colorBold, configPath, colorReset,
		entry.CreatedAt.Format(backup.TimestampFormat))
	fmt.Fprintf(w, "  %sThe previous config was backed up first.%s\n", colorGray, colorReset)

	return nil
}
