package server

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/errors"
	"mcpman/internal/mcp"
	"mcpman/internal/store"
	"mcpman/pkg/fileutil"
)

var exportTag string

func init() {
	exportCmd.Flags().StringVar(&exportTag, "tag", "", "export only servers with this tag")
	Cmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export catalogue entries to YAML",
	Long: `Export catalogue entries to a YAML document.

Without a file argument the document goes to stdout. IDs and timestamps
are not exported; importing mints fresh ones. Environment values are
written in clear text, so treat exported files like credentials.`,
	Example: `  # Print the whole catalogue
  mcpman server export

  # Write servers tagged "team" to a file
  mcpman server export team-servers.yaml --tag team

  See Also:
    mcpman server import  - Import entries from YAML`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runExportWithWriter(c.OutOrStdout(), args)
	},
}

// exportDoc is the document written by export and read by import.
type exportDoc struct {
	Servers []exportServer `yaml:"servers"`
}

// exportServer is the interchange form of a catalogue entry. IDs and
// timestamps are deliberately absent.
type exportServer struct {
	Name        string            `yaml:"name"`
	DisplayName string            `yaml:"display_name,omitempty"`
	Command     string            `yaml:"command"`
	Args        []string          `yaml:"args,omitempty"`
	Env         map[string]string `yaml:"env,omitempty"`
	Transport   string            `yaml:"transport,omitempty"`
	Tags        []string          `yaml:"tags,omitempty"`
	Metadata    map[string]any    `yaml:"metadata,omitempty"`
}

func runExportWithWriter(w io.Writer, args []string) error {
	st, err := store.Open(flags.GetDatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	servers, err := st.ListServers(exportTag)
	if err != nil {
		return err
	}

	doc := exportDoc{Servers: make([]exportServer, 0, len(servers))}
	for _, srv := range servers {
		doc.Servers = append(doc.Servers, exportServer{
			Name:        srv.Name,
			DisplayName: srv.DisplayName,
			Command:     srv.Command,
			Args:        srv.Args,
			Env:         srv.Env,
			Transport:   srv.Transport,
			Tags:        srv.Tags,
			Metadata:    srv.Metadata,
		})
	}

	if len(args) == 0 {
		data, err := yaml.Marshal(doc)
		if err != nil {
			return errors.Wrap(err, "marshaling catalogue")
		}
		_, err = w.Write(data)
		return err
	}

	path := args[0]
	if err := fileutil.AtomicWriteYAML(path, doc); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}

	noun := "servers"
	if len(doc.Servers) == 1 {
		noun = "server"
	}
	fmt.Fprintf(w, "Exported %d %s to %s\n", len(doc.Servers), noun, path)
	return nil
}

// toCatalogueServer builds a validated catalogue entry from an interchange
// record.
func (e exportServer) toCatalogueServer() (*mcp.Server, error) {
	opts := []mcp.Option{
		mcp.WithArgs(e.Args...),
		mcp.WithEnv(e.Env),
		mcp.WithTags(e.Tags...),
		mcp.WithMetadata(e.Metadata),
	}
	if e.DisplayName != "" {
		opts = append(opts, mcp.WithDisplayName(e.DisplayName))
	}
	if e.Transport != "" {
		opts = append(opts, mcp.WithTransport(e.Transport))
	}
	return mcp.New(e.Name, e.Command, opts...)
}
