package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/cli"
	"mcpman/internal/engine"
	"mcpman/internal/store"
)

var (
	syncClient string
	syncJSON   bool
)

func init() {
	syncCmd.Flags().StringVarP(&syncClient, "client", "c", "",
		"sync a single client (default: all registered clients)")
	syncCmd.Flags().BoolVar(&syncJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Import externally added servers into the catalogue",
	Long: `Sweep client configuration files and pull servers mcpman does not yet
know about into the catalogue.

Sync is strictly additive: it never deletes catalogue entries and never
overwrites fields of a server already known under the same name. Global
and project scopes are swept; a scope that fails to read is reported and
the sweep moves on. One broken client never aborts the others.`,
	Example: `  # Sweep every client
  mcpman sync

  # Sweep only VS Code
  mcpman sync --client vscode`,
	RunE: func(c *cobra.Command, _ []string) error {
		return runSyncWithWriter(c.OutOrStdout())
	},
}

func runSyncWithWriter(w io.Writer) error {
	st, err := store.Open(flags.GetDatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	reg, err := cli.NewRegistry(flags.GetProjectRoot())
	if err != nil {
		return err
	}
	eng := engine.New(st, reg)

	results := make(map[string]*engine.SyncResult)
	if syncClient != "" {
		result, err := eng.SyncClient(syncClient)
		if err != nil {
			return err
		}
		results[syncClient] = result
	} else {
		results = eng.SyncAll()
	}

	if syncJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	changed := false
	for _, name := range names {
		result := results[name]
		if result.Changed() {
			changed = true
		}

		fmt.Fprintf(w, "%sClient: %s%s\n", colorCyan+colorBold, name, colorReset)
		if !result.Changed() && len(result.Errors) == 0 {
			fmt.Fprintf(w, "  %s(nothing new)%s\n", colorGray, colorReset)
			continue
		}

		if len(result.Added) > 0 {
			fmt.Fprintf(w, "  Imported: %s%s%s\n", colorGreen, strings.Join(result.Added, ", "), colorReset)
		}
		if len(result.DeploymentsCreated) > 0 {
			fmt.Fprintf(w, "  Deployments recorded: %s\n", strings.Join(result.DeploymentsCreated, ", "))
		}
		for _, msg := range result.Errors {
			fmt.Fprintf(w, "  %s%s%s\n", colorYellow, msg, colorReset)
		}
	}

	if !changed {
		fmt.Fprintln(w, "Catalogue already up to date")
	}
	return nil
}
