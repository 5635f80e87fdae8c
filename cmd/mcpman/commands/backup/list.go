package backup

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"mcpman/internal/backup"
	"mcpman/internal/client"
	"mcpman/internal/errors"
)

var (
	listClient string
	listJSON   bool
)

func init() {
	listCmd.Flags().StringVarP(&listClient, "client", "c", "", "Limit to one client")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	Cmd.AddCommand(listCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List available backups",
	Long: `List configuration backups grouped by client.

By default, lists backups for every registered client. Use the --client flag
to limit to one. Backups are shown newest first; the ID column is the
timestamp accepted by 'mcpman backup restore'.`,
	Example: `  # List all backups
  mcpman backup list

  # List backups for a specific client
  mcpman backup list --client codex

  # Output as JSON
  mcpman backup list --json

  See Also:
    mcpman backup restore - Restore from a backup
    mcpman backup create  - Create a new backup`,
	RunE: runList,
}

// listOutput represents the JSON output for backup list.
type listOutput struct {
	Client  string       `json:"client"`
	Backups []infoOutput `json:"backups"`
}

// infoOutput represents a single backup in JSON output.
type infoOutput struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Config    string    `json:"config"`
	Path      string    `json:"path"`
}

func runList(_ *cobra.Command, _ []string) error {
	return runListWithWriter(os.Stdout)
}

func runListWithWriter(w io.Writer) error {
	adapters, err := resolveAdapters(listClient)
	if err != nil {
		return err
	}

	if listJSON {
		return outputListJSON(w, adapters)
	}
	return outputListTabular(w, adapters)
}

// clientBackups gathers the backups of every config file an adapter owns,
// merged and sorted newest first.
func clientBackups(a client.Adapter) ([]infoOutput, error) {
	paths, err := scopeConfigPaths(a)
	if err != nil {
		return nil, err
	}

	var out []infoOutput
	for _, sp := range paths {
		entries, err := backup.List(sp.path)
		if err != nil {
			if errors.Is(err, backup.ErrNoBackupsFound) {
				continue
			}
			return nil, errors.Wrapf(err, "listing backups for %s", sp.path)
		}
		for _, e := range entries {
			out = append(out, infoOutput{
				ID:        e.CreatedAt.Format(backup.TimestampFormat),
				CreatedAt: e.CreatedAt,
				Config:    sp.path,
				Path:      e.Path,
			})
		}
	}

	slices.SortFunc(out, func(a, b infoOutput) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return out, nil
}

func outputListJSON(w io.Writer, adapters []client.Adapter) error {
	output := make([]listOutput, 0, len(adapters))

	for _, a := range adapters {
		backups, err := clientBackups(a)
		if err != nil {
			return err
		}
		if backups == nil {
			backups = []infoOutput{}
		}
		output = append(output, listOutput{
			Client:  a.Name(),
			Backups: backups,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return errors.Wrap(enc.Encode(output), "encoding output")
}

func outputListTabular(w io.Writer, adapters []client.Adapter) error {
	hasBackups := false

	for i, a := range adapters {
		backups, err := clientBackups(a)
		if err != nil {
			return err
		}

		if len(backups) > 0 {
			hasBackups = true
		}

		// Blank line between clients (but not before the first)
		if i > 0 {
			fmt.Fprintln(w)
		}

		fmt.Fprintf(w, "%sClient: %s%s\n", colorCyan+colorBold, a.DisplayName(), colorReset)

		if len(backups) == 0 {
			fmt.Fprintf(w, "  %s(no backups available)%s\n", colorGray, colorReset)
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  %sID%s\t%sCREATED%s\t%sCONFIG%s\n",
			colorBold, colorReset,
			colorBold, colorReset,
			colorBold, colorReset)

		for _, b := range backups {
			fmt.Fprintf(tw, "  %s%s%s\t%s\t%s\n",
				colorGreen, b.ID, colorReset,
				b.CreatedAt.Local().Format("2006-01-02 15:04:05"),
				b.Config)
		}
		tw.Flush()
	}

	if !hasBackups {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "No backups available")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Backups are created automatically before mcpman modifies client configs.")
		fmt.Fprintln(w, "You can also create one manually with: mcpman backup create")
	}

	return nil
}
