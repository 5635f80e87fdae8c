// Package settings provides the settings command group for key/value
// settings stored in the catalogue database.
package settings

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/errors"
	"mcpman/internal/store"
)

func init() {
	Cmd.AddCommand(getCmd)
	Cmd.AddCommand(setCmd)
	Cmd.AddCommand(listCmd)
}

// Cmd is the settings command that groups all settings subcommands.
var Cmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage catalogue settings",
	Long: `Manage key/value settings stored alongside the catalogue.

Settings live in the catalogue database rather than the config file, so
they travel with the database. Values are stored as JSON.

Without a subcommand, lists all settings.`,
	Example: `  # List all settings
  mcpman settings

  # Read one value
  mcpman settings get default_scope

  # Store a string, a number, and a list
  mcpman settings set default_scope project
  mcpman settings set backup_retention 5
  mcpman settings set pinned_tags '["dev","prod"]'`,
	RunE: func(c *cobra.Command, _ []string) error {
		return runListWithWriter(c.OutOrStdout())
	},
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a setting value",
	Long:  `Get a single setting value by key, printed as JSON.`,
	Example: `  # Read a value
  mcpman settings get default_scope

See Also: mcpman settings set, mcpman settings list`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runGetWithWriter(c.OutOrStdout(), args)
	},
}

var setCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting value",
	Long: `Set a setting value.

Values that parse as JSON keep their type; anything else is stored as a
string.`,
	Example: `  # Plain string
  mcpman settings set default_scope project

  # Number and list values
  mcpman settings set backup_retention 5
  mcpman settings set pinned_tags '["dev","prod"]'

See Also: mcpman settings get, mcpman settings list`,
	Args: cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		return runSetWithWriter(c.OutOrStdout(), args)
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	Long:  `List every stored setting with its JSON value, sorted by key.`,
	Example: `  # List all settings
  mcpman settings list

See Also: mcpman settings get, mcpman settings set`,
	RunE: func(c *cobra.Command, _ []string) error {
		return runListWithWriter(c.OutOrStdout())
	},
}

func runGetWithWriter(w io.Writer, args []string) error {
	st, err := store.Open(flags.GetDatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	var value json.RawMessage
	if err := st.GetSetting(args[0], &value); err != nil {
		if errors.Is(err, errors.ErrNotFound) {
			fmt.Fprintln(w, "not set")
			return nil
		}
		return err
	}

	fmt.Fprintln(w, string(value))
	return nil
}

func runSetWithWriter(w io.Writer, args []string) error {
	key, raw := args[0], args[1]

	st, err := store.Open(flags.GetDatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	// JSON literals keep their type, everything else becomes a string.
	var value any = raw
	if json.Valid([]byte(raw)) {
		value = json.RawMessage(raw)
	}

	if err := st.SetSetting(key, value); err != nil {
		return err
	}

	fmt.Fprintf(w, "Set %s = %s\n", key, raw)
	return nil
}

func runListWithWriter(w io.Writer) error {
	st, err := store.Open(flags.GetDatabasePath())
	if err != nil {
		return err
	}
	defer st.Close()

	settings, err := st.AllSettings()
	if err != nil {
		return err
	}
	if len(settings) == 0 {
		fmt.Fprintln(w, "No settings stored")
		return nil
	}

	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintf(w, "%s: %s\n", key, string(settings[key]))
	}
	return nil
}
