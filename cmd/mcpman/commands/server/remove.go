package server

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/cli/prompt"
	"mcpman/internal/errors"
	"mcpman/internal/store"
)

var removeForce bool

func init() {
	removeCmd.Flags().BoolVarP(&removeForce, "force", "f", false, "skip confirmation prompt")
	Cmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Delete a catalogue entry",
	Long: `Delete a server from the catalogue along with its deployment records.

Client configuration files are NOT touched: entries already deployed
stay in place until removed with "mcpman undeploy". A confirmation
prompt is shown unless --force is given.`,
	Example: `  # Delete with confirmation
  mcpman server remove github

  # Delete without confirmation
  mcpman server remove github --force

  See Also:
    mcpman undeploy  - Remove an entry from client configurations`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runRemoveWithIO(args, c.OutOrStdout(), c.InOrStdin())
	},
}

// runRemoveWithIO allows injecting reader and writer for testing.
func runRemoveWithIO(args []string, w io.Writer, r io.Reader) error {
	st, err := store.Open(flags.GetDatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	srv, err := st.GetServerByName(args[0])
	if err != nil {
		return errors.Wrapf(err, "server %q", args[0])
	}

	deployments, err := st.ListDeployments(srv.ID, "")
	if err != nil {
		return err
	}

	if !removeForce {
		question := fmt.Sprintf("Delete %q from the catalogue?", srv.Name)
		if len(deployments) > 0 {
			question = fmt.Sprintf("Delete %q and its %d deployment record(s)? Client configs keep their entries.",
				srv.Name, len(deployments))
		}
		if !prompt.Confirm(r, w, "%s", question) {
			fmt.Fprintln(w, "removal cancelled")
			return nil
		}
	}

	if err := st.DeleteServer(srv.ID); err != nil {
		return err
	}

	fmt.Fprintf(w, "Deleted %s%s%s from the catalogue\n", colorBold, srv.Name, colorReset)
	return nil
}
