package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/errors"
	"mcpman/internal/store"
)

var (
	deploymentsServer string
	deploymentsClient string
	deploymentsJSON   bool
)

func init() {
	deploymentsCmd.Flags().StringVar(&deploymentsServer, "server", "", "filter by server name")
	deploymentsCmd.Flags().StringVar(&deploymentsClient, "client", "", "filter by client name")
	deploymentsCmd.Flags().BoolVar(&deploymentsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(deploymentsCmd)
}

var deploymentsCmd = &cobra.Command{
	Use:   "deployments",
	Short: "List deployment records",
	Long: `List deployment records from the catalogue.

Each record says which server is configured in which client at which
scope. Filter by server name, client name, or both.`,
	Example: `  # All deployments
  mcpman deployments

  # Everything deployed to Claude Code
  mcpman deployments --client claude-code

  # Everywhere the github server is deployed
  mcpman deployments --server github`,
	RunE: func(c *cobra.Command, _ []string) error {
		return runDeploymentsWithWriter(c.OutOrStdout())
	},
}

// deploymentOutput is one deployment record in JSON output.
type deploymentOutput struct {
	ID         string     `json:"id"`
	Server     string     `json:"server"`
	Client     string     `json:"client"`
	Scope      string     `json:"scope"`
	Enabled    bool       `json:"enabled"`
	DeployedAt time.Time  `json:"deployedAt"`
	LastSync   *time.Time `json:"lastSync,omitempty"`
}

func runDeploymentsWithWriter(w io.Writer) error {
	st, err := store.Open(flags.GetDatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	serverID := ""
	if deploymentsServer != "" {
		srv, err := st.GetServerByName(deploymentsServer)
		if err != nil {
			return errors.Wrapf(err, "server %q", deploymentsServer)
		}
		serverID = srv.ID
	}

	deployments, err := st.ListDeployments(serverID, deploymentsClient)
	if err != nil {
		return err
	}

	// Resolve server names once per unique ID. A record whose server row
	// vanished keeps the raw ID.
	names := make(map[string]string)
	for _, d := range deployments {
		if _, ok := names[d.ServerID]; ok {
			continue
		}
		name := d.ServerID
		if srv, err := st.GetServer(d.ServerID); err == nil {
			name = srv.Name
		}
		names[d.ServerID] = name
	}

	if deploymentsJSON {
		out := make([]deploymentOutput, 0, len(deployments))
		for _, d := range deployments {
			out = append(out, deploymentOutput{
				ID:         d.ID,
				Server:     names[d.ServerID],
				Client:     d.ClientName,
				Scope:      d.Scope.String(),
				Enabled:    d.Enabled,
				DeployedAt: d.DeployedAt,
				LastSync:   d.LastSync,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(deployments) == 0 {
		fmt.Fprintln(w, "No deployments recorded")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sSERVER%s\t%sCLIENT%s\t%sSCOPE%s\t%sSTATUS%s\t%sDEPLOYED%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, d := range deployments {
		status := colorGreen + "enabled" + colorReset
		if !d.Enabled {
			status = colorGray + "disabled" + colorReset
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\t%s\n",
			colorGreen, names[d.ServerID], colorReset,
			d.ClientName,
			d.Scope,
			status,
			d.DeployedAt.Local().Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}
