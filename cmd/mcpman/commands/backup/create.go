package backup

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"mcpman/internal/errors"
)

var createClient string

func init() {
	createCmd.Flags().StringVarP(&createClient, "client", "c", "", "Limit to one client")
	Cmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a manual backup",
	Long: `Create backups of client configuration files.

Backups are created automatically before mcpman modifies a config. This
command takes an additional snapshot of every config file a client owns,
for example before editing one by hand.

By default, backs up all registered clients. Use the --client flag to limit
to one.`,
	Example: `  # Back up every client config
  mcpman backup create

  # Back up a specific client
  mcpman backup create --client claude-desktop

  See Also:
    mcpman backup list    - List available backups
    mcpman backup restore - Restore from a backup`,
	RunE: runCreate,
}

func runCreate(_ *cobra.Command, _ []string) error {
	return runCreateWithWriter(os.Stdout)
}

func runCreateWithWriter(w io.Writer) error {
	adapters, err := resolveAdapters(createClient)
	if err != nil {
		return err
	}

	created := 0

	for _, a := range adapters {
		paths, err := scopeConfigPaths(a)
		if err != nil {
			return err
		}

		backedUp := 0
		for _, sp := range paths {
			backupPath, err := a.Backup(sp.scope)
			if err != nil {
				return errors.Wrapf(err, "backing up %s %s config", a.Name(), sp.scope)
			}
			if backupPath == "" {
				// No config file at this path yet.
				continue
			}
			fmt.Fprintf(w, "%s✓ %s: backed up %s%s\n",
				colorGreen, a.DisplayName(), sp.path, colorReset)
			backedUp++
		}

		if backedUp == 0 {
			fmt.Fprintf(w, "%s%s: no config files to back up%s\n",
				colorYellow, a.DisplayName(), colorReset)
			continue
		}
		created += backedUp
	}

	if created == 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No backups created. Client configurations may not exist yet.")
	}

	return nil
}
