package server

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/errors"
	"mcpman/internal/store"
)

func init() {
	Cmd.AddCommand(importCmd)
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import catalogue entries from YAML",
	Long: `Import server definitions from a YAML document written by
"mcpman server export".

Each definition is validated and added with a fresh ID. Names already
present in the catalogue are skipped, never overwritten. A definition
that fails validation aborts the import and reports which entry broke.`,
	Example: `  # Import a shared server list
  mcpman server import team-servers.yaml

  See Also:
    mcpman server export  - Export entries to YAML`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runImportWithWriter(c.OutOrStdout(), args)
	},
}

func runImportWithWriter(w io.Writer, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}

	var doc exportDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return errors.Wrapf(err, "parsing %s", path)
	}
	if len(doc.Servers) == 0 {
		fmt.Fprintf(w, "No servers found in %s\n", path)
		return nil
	}

	st, err := store.Open(flags.GetDatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	var imported, skipped int
	for _, entry := range doc.Servers {
		srv, err := entry.toCatalogueServer()
		if err != nil {
			return errors.Wrapf(err, "entry %q", entry.Name)
		}

		if err := st.AddServer(srv); err != nil {
			if errors.Is(err, errors.ErrDuplicateName) {
				fmt.Fprintf(w, "  %s%s: already in catalogue (skipped)%s\n", colorGray, srv.Name, colorReset)
				skipped++
				continue
			}
			return errors.Wrapf(err, "adding %q", srv.Name)
		}

		fmt.Fprintf(w, "  %s%s: imported%s\n", colorGreen, srv.Name, colorReset)
		imported++
	}

	fmt.Fprintf(w, "Imported %d of %d servers", imported, len(doc.Servers))
	if skipped > 0 {
		fmt.Fprintf(w, " (%d skipped)", skipped)
	}
	fmt.Fprintln(w)
	return nil
}
