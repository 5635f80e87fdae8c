package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/cli"
	"mcpman/internal/engine"
	"mcpman/internal/errors"
	"mcpman/internal/store"
)

var (
	deployClients []string
	deployScope   string
)

func init() {
	deployCmd.Flags().StringSliceVarP(&deployClients, "client", "c", nil,
		"target client(s): claude-code, claude-desktop, codex, vscode (default: configured default_clients, else all)")
	deployCmd.Flags().StringVarP(&deployScope, "scope", "s", "",
		"deployment scope: global, user, project (default: global)")
	rootCmd.AddCommand(deployCmd)
}

var deployCmd = &cobra.Command{
	Use:   "deploy [server...]",
	Short: "Deploy catalogue servers to client configurations",
	Long: `Deploy catalogue servers into client configuration files.

Each target client's configuration file is backed up, rewritten in the
client's native format, and a deployment record is stored. Without a
server argument, an interactive picker lists the catalogue.

Deploying to several servers or clients at once continues past
individual failures and reports them at the end.`,
	Example: `  # Deploy one server to one client
  mcpman deploy github --client claude-code

  # Deploy to the configured default clients at project scope
  mcpman deploy github --scope project

  # Deploy two servers to two clients in one call
  mcpman deploy github filesystem --client claude-code --client vscode

  # Pick a server interactively
  mcpman deploy`,
	Args: cobra.ArbitraryArgs,
	RunE: func(c *cobra.Command, args []string) error {
		return runDeployWithWriter(c.OutOrStdout(), args)
	},
}

func runDeployWithWriter(w io.Writer, args []string) error {
	scope, err := cli.DetermineScope(deployScope)
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

	clientNames := deployClients
	if len(clientNames) == 0 {
		clientNames = flags.GetDefaultClients()
	}
	adapters, err := cli.ResolveClients(reg, clientNames)
	if err != nil {
		return err
	}

	serverIDs, err := resolveServerIDs(st, args)
	if err != nil {
		return err
	}

	eng := engine.New(st, reg)

	if len(serverIDs) == 1 && len(adapters) == 1 {
		d, err := eng.Deploy(serverIDs[0], adapters[0].Name(), scope)
		if err != nil {
			return err
		}
		srv, err := st.GetServer(d.ServerID)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Deployed %s%s%s to %s (%s)\n",
			colorBold, srv.Name, colorReset, d.ClientName, d.Scope)
		return nil
	}

	names := make([]string, len(adapters))
	for i, a := range adapters {
		names[i] = a.Name()
	}
	result := eng.BulkDeploy(serverIDs, names, scope)

	if len(result.Succeeded) > 0 {
		fmt.Fprintf(w, "%sDeployed (%s):%s\n", colorBold, scope, colorReset)
		for _, line := range result.Succeeded {
			fmt.Fprintf(w, "  %s%s%s\n", colorGreen, line, colorReset)
		}
	}
	if len(result.Failed) > 0 {
		fmt.Fprintf(w, "%sFailed:%s\n", colorBold, colorReset)
		for _, line := range result.Failed {
			fmt.Fprintf(w, "  %s%s%s\n", colorYellow, line, colorReset)
		}
		return errors.Newf("%d of %d deployments failed",
			len(result.Failed), len(result.Succeeded)+len(result.Failed))
	}
	return nil
}

// resolveServerIDs maps positional server names to catalogue IDs. With no
// names, the user picks one interactively.
func resolveServerIDs(st *store.Store, names []string) ([]string, error) {
	if len(names) == 0 {
		servers, err := st.ListServers("")
		if err != nil {
			return nil, err
		}
		srv, err := pickServer(servers)
		if err != nil {
			return nil, err
		}
		return []string{srv.ID}, nil
	}

	ids := make([]string, 0, len(names))
	for _, name := range names {
		srv, err := st.GetServerByName(name)
		if err != nil {
			return nil, errors.Wrapf(err, "server %q", name)
		}
		ids = append(ids, srv.ID)
	}
	return ids, nil
}
