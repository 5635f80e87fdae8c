package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/cli"
	"mcpman/internal/client"
)

var clientsJSON bool

func init() {
	clientsCmd.Flags().BoolVar(&clientsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(clientsCmd)
}

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List supported clients and their detection status",
	Long: `List every supported client with its installation status and the
configuration files mcpman manages for it.

A client counts as installed once its global configuration file, or the
directory that would hold it, exists on disk.`,
	Example: `  # List clients
  mcpman clients

  # JSON output for scripting
  mcpman clients --json`,
	RunE: func(c *cobra.Command, _ []string) error {
		return runClientsWithWriter(c.OutOrStdout())
	},
}

// clientOutput represents one detected client in JSON output.
type clientOutput struct {
	Name          string `json:"name"`
	DisplayName   string `json:"displayName"`
	Status        string `json:"status"`
	GlobalConfig  string `json:"globalConfig"`
	ProjectConfig string `json:"projectConfig,omitempty"`
}

func runClientsWithWriter(w io.Writer) error {
	reg, err := cli.NewRegistry(flags.GetProjectRoot())
	if err != nil {
		return err
	}
	results := client.DetectAll(reg)

	if clientsJSON {
		out := make([]clientOutput, 0, len(results))
		for _, r := range results {
			out = append(out, clientOutput{
				Name:          r.Name,
				DisplayName:   r.DisplayName,
				Status:        string(r.Status),
				GlobalConfig:  r.GlobalConfig,
				ProjectConfig: r.ProjectConfig,
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%sNAME%s\t%sCLIENT%s\t%sSTATUS%s\t%sGLOBAL CONFIG%s\n",
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset,
		colorBold, colorReset)

	for _, r := range results {
		status := colorGray + "not installed" + colorReset
		if r.Status == client.StatusInstalled {
			status = colorGreen + "installed" + colorReset
		}
		fmt.Fprintf(tw, "%s%s%s\t%s\t%s\t%s\n",
			colorGreen, r.Name, colorReset,
			r.DisplayName,
			status,
			r.GlobalConfig)
	}
	return tw.Flush()
}
