package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/cli"
	"mcpman/internal/config"
	"mcpman/internal/editor"
	"mcpman/internal/errors"
	"mcpman/internal/paths"
	"mcpman/pkg/fileutil"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

// configKeys are the keys the config file understands.
var configKeys = []string{"version", "database_path", "backup_retention", "default_clients"}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mcpman configuration",
	Long: `Manage the mcpman configuration file.

The file lives at <config-home>/mcpman/config.yaml unless --config points
elsewhere. Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  mcpman config

  # Get a specific value
  mcpman config get database_path

  # Set a value
  mcpman config set default_clients claude-code,vscode

See Also: mcpman config validate, mcpman status`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long: `Get a single configuration value by key.

Array values are printed one per line.`,
	Example: `  # Get the catalogue database path
  mcpman config get database_path

  # Get the clients deploy targets by default
  mcpman config get default_clients

See Also: mcpman config set, mcpman config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

For default_clients, use comma-separated client names; they are validated
against the registered clients. version and backup_retention take integers.`,
	Example: `  # Point the catalogue at another database
  mcpman config set database_path ~/work/mcp.db

  # Deploy to these clients when --client is not given
  mcpman config set default_clients claude-code,vscode

  # Keep 5 backups per config file
  mcpman config set backup_retention 5

See Also: mcpman config get, mcpman config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	Example: `  # List all configuration
  mcpman config list

See Also: mcpman config get, mcpman config set`,
	RunE: runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in $EDITOR",
	Long: `Open the configuration file in your default editor.

The editor is resolved from $EDITOR, then $VISUAL, then nano, then vi.
If no configuration file exists yet, create one first with
'mcpman config set'.`,
	Example: `  # Open config in default editor
  mcpman config edit

  # Open with a specific editor
  EDITOR=nano mcpman config edit

See Also: mcpman config list`,
	RunE: runConfigEdit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Check the effective configuration for problems.

Reports every validation error found rather than stopping at the first.`,
	Example: `  # Validate the effective configuration
  mcpman config validate

See Also: mcpman config list`,
	RunE: runConfigValidate,
}

func runConfigGet(c *cobra.Command, args []string) error {
	return runConfigGetWithWriter(args[0], c.OutOrStdout())
}

func runConfigGetWithWriter(key string, w io.Writer) error {
	if !viper.IsSet(key) {
		fmt.Fprintln(w, "not set")
		return nil
	}

	switch v := viper.Get(key).(type) {
	case []any:
		for _, item := range v {
			fmt.Fprintln(w, item)
		}
	case []string:
		for _, item := range v {
			fmt.Fprintln(w, item)
		}
	default:
		fmt.Fprintln(w, viper.GetString(key))
	}

	return nil
}

func runConfigSet(c *cobra.Command, args []string) error {
	return runConfigSetWithWriter(args[0], args[1], c.OutOrStdout())
}

func runConfigSetWithWriter(key, value string, w io.Writer) error {
	switch key {
	case "default_clients":
		clients := splitCommaList(value)
		if len(clients) == 0 {
			return errors.New("no clients specified")
		}
		reg, err := cli.NewRegistry(flags.GetProjectRoot())
		if err != nil {
			return err
		}
		if _, err := cli.ResolveClients(reg, clients); err != nil {
			return err
		}
		viper.Set(key, clients)
		if err := writeConfig(); err != nil {
			return err
		}
		fmt.Fprintf(w, "Set %s = %s\n", key, strings.Join(clients, ","))

	case "version", "backup_retention":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Newf("%s must be an integer, got %q", key, value)
		}
		viper.Set(key, n)
		if err := writeConfig(); err != nil {
			return err
		}
		fmt.Fprintf(w, "Set %s = %d\n", key, n)

	case "database_path":
		viper.Set(key, value)
		if err := writeConfig(); err != nil {
			return err
		}
		fmt.Fprintf(w, "Set %s = %s\n", key, value)

	default:
		return errors.Newf("unknown config key %q (valid: %s)",
			key, strings.Join(configKeys, ", "))
	}

	return nil
}

func runConfigList(c *cobra.Command, _ []string) error {
	return runConfigListWithWriter(c.OutOrStdout())
}

func runConfigListWithWriter(w io.Writer) error {
	data, err := yaml.Marshal(effectiveConfig())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(w, string(data))
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	configPath := configFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return errors.Newf("config file not found at %s\nCreate it with 'mcpman config set <key> <value>'", configPath)
	}

	return editor.Open(configPath)
}

func runConfigValidate(c *cobra.Command, _ []string) error {
	return runConfigValidateWithWriter(c.OutOrStdout())
}

func runConfigValidateWithWriter(w io.Writer) error {
	var cfg config.Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return errors.Wrap(err, "unmarshaling config")
	}

	errs := config.Validate(&cfg)
	if len(errs) == 0 {
		fmt.Fprintf(w, "%sConfiguration is valid%s\n", colorGreen, colorReset)
		return nil
	}

	for _, e := range errs {
		fmt.Fprintf(w, "%s%v%s\n", colorYellow, e, colorReset)
	}
	return errors.Newf("%d validation error(s)", len(errs))
}

// splitCommaList splits a comma-separated string, trimming blanks.
func splitCommaList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// configFilePath returns the config file viper loaded, or the default
// location when none was found.
func configFilePath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return filepath.Join(paths.AppConfigDir(), "config.yaml")
}

// effectiveConfig snapshots the keys the config file understands.
func effectiveConfig() map[string]any {
	return map[string]any{
		"version":          viper.GetInt("version"),
		"database_path":    viper.GetString("database_path"),
		"backup_retention": viper.GetInt("backup_retention"),
		"default_clients":  viper.GetStringSlice("default_clients"),
	}
}

// writeConfig writes the current viper configuration to the config file.
func writeConfig() error {
	configPath := configFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(configPath, effectiveConfig()); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	return nil
}
