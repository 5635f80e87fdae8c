package server

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/mcp"
	"mcpman/internal/store"
)

var (
	listTag  string
	listJSON bool
)

func init() {
	listCmd.Flags().StringVar(&listTag, "tag", "", "filter by tag")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output as JSON")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogue entries",
	Long: `List MCP servers in the catalogue.

Shows each entry with its launch command, transport, tags, and how many
deployment records reference it.`,
	Example: `  # List everything
  mcpman server list

  # Only servers tagged "dev"
  mcpman server list --tag dev

  # Output as JSON
  mcpman server list --json

  See Also:
    mcpman server show  - Show entry details
    mcpman deployments  - List deployment records`,
	RunE: func(c *cobra.Command, _ []string) error {
		return runListWithWriter(c.OutOrStdout())
	},
}

// serverListEntry is one catalogue row in JSON output.
type serverListEntry struct {
	*mcp.Server
	Deployments int `json:"deployments"`
}

func runListWithWriter(w io.Writer) error {
	st, err := store.Open(flags.GetDatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	servers, err := st.ListServers(listTag)
	if err != nil {
		return err
	}

	counts := make(map[string]int, len(servers))
	for _, srv := range servers {
		deployments, err := st.ListDeployments(srv.ID, "")
		if err != nil {
			return err
		}
		counts[srv.ID] = len(deployments)
	}

	if listJSON {
		out := make([]serverListEntry, 0, len(servers))
		for _, srv := range servers {
			out = append(out, serverListEntry{Server: srv, Deployments: counts[srv.ID]})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(servers) == 0 {
		if listTag != "" {
			fmt.Fprintf(w, "No servers tagged %q\n", listTag)
		} else {
			fmt.Fprintln(w, "Catalogue is empty")
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sCOMMAND%s\t%sTRANSPORT%s\t%sTAGS%s\t%sDEPLOYMENTS%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, srv := range servers {
		command := srv.Command
		if len(srv.Args) > 0 {
			command += " " + strings.Join(srv.Args, " ")
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\t%d\n",
			colorGreen, srv.Name, colorReset,
			truncate(command, 50),
			srv.Transport,
			strings.Join(srv.Tags, ", "),
			counts[srv.ID])
	}
	return tw.Flush()
}

// truncate shortens a string to maxLen characters, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
