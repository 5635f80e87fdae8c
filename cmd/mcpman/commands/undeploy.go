package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/cli"
	"mcpman/internal/engine"
	"mcpman/internal/errors"
	"mcpman/internal/store"
)

var (
	undeployClients []string
	undeployScope   string
)

func init() {
	undeployCmd.Flags().StringSliceVarP(&undeployClients, "client", "c", nil,
		"target client(s) (default: configured default_clients, else all)")
	undeployCmd.Flags().StringVarP(&undeployScope, "scope", "s", "",
		"deployment scope: global, user, project (default: global)")
	rootCmd.AddCommand(undeployCmd)
}

var undeployCmd = &cobra.Command{
	Use:   "undeploy <server>",
	Short: "Remove a catalogue server from client configurations",
	Long: `Remove a catalogue server from client configuration files.

The server entry is deleted from each target client's configuration at
the given scope and the matching deployment records are dropped. The
catalogue entry itself stays; use "server remove" to delete it.

Configuration files are backed up before modification. Records are only
dropped once the file write succeeded, so a failed write can be retried.`,
	Example: `  # Remove from one client
  mcpman undeploy github --client claude-code

  # Remove from every client at project scope
  mcpman undeploy github --scope project`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runUndeployWithWriter(c.OutOrStdout(), args)
	},
}

func runUndeployWithWriter(w io.Writer, args []string) error {
	scope, err := cli.DetermineScope(undeployScope)
	if err != nil {
		return err
	}

	st, err := store.Open(flags.GetDatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	reg, err := cli.NewRegistry(flags.GetProjectRoot())
	if err != nil {
		return err
	}

	srv, err := st.GetServerByName(args[0])
	if err != nil {
		return errors.Wrapf(err, "server %q", args[0])
	}

	clientNames := undeployClients
	if len(clientNames) == 0 {
		clientNames = flags.GetDefaultClients()
	}
	adapters, err := cli.ResolveClients(reg, clientNames)
	if err != nil {
		return err
	}

	eng := engine.New(st, reg)

	fmt.Fprintf(w, "Removing %s%s%s from client configurations (%s)...\n",
		colorBold, srv.Name, colorReset, scope)

	var failed []string
	for _, a := range adapters {
		if err := eng.Undeploy(srv.ID, a.Name(), scope); err != nil {
			fmt.Fprintf(w, "  %s: failed\n", a.Name())
			failed = append(failed, fmt.Sprintf("%s: %v", a.Name(), err))
			continue
		}
		fmt.Fprintf(w, "  %s: removed\n", a.Name())
	}

	if len(failed) > 0 {
		return errors.New("failed to undeploy from some clients:\n  " + strings.Join(failed, "\n  "))
	}
	return nil
}
