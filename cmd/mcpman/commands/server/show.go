package server

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/errors"
	"mcpman/internal/mcp"
	"mcpman/internal/redact"
	"mcpman/internal/store"
)

var (
	showJSON        bool
	showShowSecrets bool
)

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	showCmd.Flags().BoolVar(&showShowSecrets, "show-secrets", false,
		"reveal masked secrets in environment values")
	Cmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show catalogue entry details",
	Long: `Show one catalogue entry in full, including its deployment records.

Environment variables with credential-like names (TOKEN, KEY, SECRET,
PASSWORD, AUTH, CREDENTIAL, PRIVATE) are masked by default, as are
values carrying well-known token prefixes. Use --show-secrets to reveal
the full values.`,
	Example: `  # Show an entry
  mcpman server show github

  # Show it with secrets revealed
  mcpman server show github --show-secrets

  # Output as JSON
  mcpman server show github --json

  See Also:
    mcpman server list    - List catalogue entries
    mcpman server remove  - Delete this entry`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runShowWithWriter(c.OutOrStdout(), args)
	},
}

// showOutput is the JSON output structure.
type showOutput struct {
	*mcp.Server
	Deployments []*mcp.Deployment `json:"deployments"`
}

func runShowWithWriter(w io.Writer, args []string) error {
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

	if !showShowSecrets {
		srv.Env = redact.Env(srv.Env)
	}

	if showJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(showOutput{Server: srv, Deployments: deployments})
	}

	fmt.Fprintf(w, "%s%s%s (%s)\n", colorCyan+colorBold, srv.DisplayName, colorReset, srv.Name)
	fmt.Fprintf(w, "  ID:         %s\n", srv.ID)
	fmt.Fprintf(w, "  Transport:  %s\n", srv.Transport)
	fmt.Fprintf(w, "  Command:    %s\n", srv.Command)
	if len(srv.Args) > 0 {
		fmt.Fprintf(w, "  Args:       %s\n", strings.Join(srv.Args, " "))
	}
	if len(srv.Tags) > 0 {
		fmt.Fprintf(w, "  Tags:       %s\n", strings.Join(srv.Tags, ", "))
	}
	fmt.Fprintf(w, "  Created:    %s\n", srv.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  Updated:    %s\n", srv.UpdatedAt.Local().Format("2006-01-02 15:04:05"))

	if len(srv.Env) > 0 {
		fmt.Fprintln(w, "  Environment:")
		printSortedMap(w, srv.Env, "    ")
	}

	if len(srv.Metadata) > 0 {
		fmt.Fprintln(w, "  Metadata:")
		keys := make([]string, 0, len(srv.Metadata))
		for k := range srv.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "    %s: %v\n", k, srv.Metadata[k])
		}
	}

	fmt.Fprintln(w)
	if len(deployments) == 0 {
		fmt.Fprintf(w, "%s(not deployed)%s\n", colorGray, colorReset)
		return nil
	}

	fmt.Fprintf(w, "%sDeployments:%s\n", colorBold, colorReset)
	for _, d := range deployments {
		status := colorGreen + "enabled" + colorReset
		if !d.Enabled {
			status = colorGray + "disabled" + colorReset
		}
		fmt.Fprintf(w, "  %s (%s) %s, deployed %s\n",
			d.ClientName, d.Scope, status,
			d.DeployedAt.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// printSortedMap prints a map with sorted keys for deterministic output.
func printSortedMap(w io.Writer, m map[string]string, indent string) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(w, "%s%s: %s\n", indent, k, m[k])
	}
}
