package server

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/errors"
	"mcpman/internal/mcp"
	"mcpman/internal/store"
)

// Package-level flag variables for server add.
var (
	addEnv         []string
	addTags        []string
	addTransport   string
	addDisplayName string
)

func init() {
	addCmd.Flags().StringArrayVar(&addEnv, "env", nil,
		"environment variables in KEY=VALUE format (repeatable)")
	addCmd.Flags().StringSliceVar(&addTags, "tag", nil,
		"catalogue tags for filtering (repeatable)")
	addCmd.Flags().StringVar(&addTransport, "transport", "",
		"transport type: stdio, http, sse (default: stdio)")
	addCmd.Flags().StringVar(&addDisplayName, "display-name", "",
		"friendly name shown in listings")
	Cmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add <name> <command> [args...]",
	Short: "Add a server to the catalogue",
	Long: `Add an MCP server definition to the catalogue.

The name must be unique and may only contain letters, digits, hyphens,
and underscores. Launch arguments that start with a dash must follow a
-- separator so they are not parsed as flags.

Adding an entry does not touch any client configuration; use
"mcpman deploy" for that.`,
	Example: `  # Local stdio server
  mcpman server add github npx -- -y @modelcontextprotocol/server-github

  # With environment variables and tags
  mcpman server add github npx --env GITHUB_TOKEN=ghp_abc123 --tag dev -- -y @modelcontextprotocol/server-github

  # Remote server over streamable HTTP
  mcpman server add api mcp-proxy --transport http

  See Also:
    mcpman server list  - List catalogue entries
    mcpman deploy       - Deploy an entry to clients`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		return runAddWithWriter(c.OutOrStdout(), args)
	},
}

func runAddWithWriter(w io.Writer, args []string) error {
	name := args[0]
	command := args[1]
	cmdArgs := args[2:]

	env, err := parseKeyValueSlice(addEnv, "--env")
	if err != nil {
		return err
	}

	opts := []mcp.Option{
		mcp.WithArgs(cmdArgs...),
		mcp.WithEnv(env),
		mcp.WithTags(addTags...),
	}
	if addTransport != "" {
		opts = append(opts, mcp.WithTransport(addTransport))
	}
	if addDisplayName != "" {
		opts = append(opts, mcp.WithDisplayName(addDisplayName))
	}

	srv, err := mcp.New(name, command, opts...)
	if err != nil {
		return err
	}

	st, err := store.Open(flags.GetDatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.AddServer(srv); err != nil {
		if errors.Is(err, errors.ErrDuplicateName) {
			return errors.Wrapf(err, "server %q", srv.Name)
		}
		return err
	}

	fmt.Fprintf(w, "Added %s%s%s to the catalogue (id %s)\n", colorBold, srv.Name, colorReset, srv.ID)
	if len(srv.Tags) > 0 {
		fmt.Fprintf(w, "  tags: %s\n", strings.Join(srv.Tags, ", "))
	}
	return nil
}

// parseKeyValueSlice parses a slice of KEY=VALUE strings into a map.
// Returns an error if any entry is malformed.
func parseKeyValueSlice(entries []string, flagName string) (map[string]string, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	result := make(map[string]string, len(entries))
	for _, entry := range entries {
		key, value, found := strings.Cut(entry, "=")
		if !found || key == "" {
			return nil, errors.Newf("invalid %s format %q: expected KEY=VALUE", flagName, entry)
		}
		result[key] = value
	}
	return result, nil
}
