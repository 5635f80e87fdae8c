package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/store"
)

var statusJSON bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show catalogue overview",
	Long: `Show an overview of the server catalogue.

Displays the number of catalogue servers, deployment records, and how
those deployments spread across clients.`,
	Example: `  # Show catalogue status
  mcpman status

  # JSON output for scripting
  mcpman status --json`,
	RunE: func(c *cobra.Command, _ []string) error {
		return runStatusWithWriter(c.OutOrStdout())
	},
}

// statusOutput is the JSON shape of the status command.
type statusOutput struct {
	Servers     int            `json:"servers"`
	Deployments int            `json:"deployments"`
	Clients     map[string]int `json:"clients"`
}

func runStatusWithWriter(w io.Writer) error {
	st, err := store.Open(flags.GetDatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	servers, err := st.ListServers("")
	if err != nil {
		return err
	}
	deployments, err := st.ListDeployments("", "")
	if err != nil {
		return err
	}

	perClient := make(map[string]int)
	for _, d := range deployments {
		perClient[d.ClientName]++
	}

	if statusJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(statusOutput{
			Servers:     len(servers),
			Deployments: len(deployments),
			Clients:     perClient,
		})
	}

	fmt.Fprintf(w, "%sTotal Servers:%s      %d\n", colorBold, colorReset, len(servers))
	fmt.Fprintf(w, "%sTotal Deployments:%s  %d\n", colorBold, colorReset, len(deployments))
	fmt.Fprintf(w, "%sConfigured Clients:%s %d\n", colorBold, colorReset, len(perClient))

	names := make([]string, 0, len(perClient))
	for name := range perClient {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		noun := "deployments"
		if perClient[name] == 1 {
			noun = "deployment"
		}
		fmt.Fprintf(w, "  %s%s:%s %d %s\n", colorCyan, name, colorReset, perClient[name], noun)
	}
	return nil
}
