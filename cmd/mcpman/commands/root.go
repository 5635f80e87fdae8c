// Package commands implements the CLI commands for mcpman.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mcpman/cmd"
	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/config"
	"mcpman/internal/errors"
	"mcpman/internal/logging"
	"mcpman/internal/paths"
)

// projectFlag holds the value of the --project flag.
var projectFlag string

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// cfgFile holds the value of the --config flag.
var cfgFile string

// dbFlag holds the value of the --db flag.
var dbFlag string

// cfg is the loaded configuration, populated by initConfig.
var cfg *config.Config

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&projectFlag, "project", "",
		"project root for project-scoped operations (default: current directory)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ./config.yaml, then $XDG_CONFIG_HOME/mcpman/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "",
		"catalogue database path (overrides configuration)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("mcpman version {{.Version}}\n")

	// Silence errors and usage so main controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()
	// Capture load errors for later reporting
	cfg, configLoadErr = config.Load(cfgFile)
}

var rootCmd = &cobra.Command{
	Use:   "mcpman",
	Short: "Manage MCP servers across AI client configurations",
	Long: `mcpman keeps a single catalogue of MCP (Model Context Protocol) servers
and deploys entries into the configuration files of AI coding clients:
Claude Code, Claude Desktop, VS Code, and Codex CLI.

Define a server once, deploy it everywhere. mcpman writes each client's
native format, backs up configuration files before modifying them, and
can sync externally added servers back into the catalogue.`,
	Example: `  # Add a server to the catalogue (args with dashes go after --)
  mcpman server add github npx -- -y @modelcontextprotocol/server-github

  # Deploy it to Claude Code
  mcpman deploy github --client claude-code

  # Pull externally added servers into the catalogue
  mcpman sync

  # See what is deployed where
  mcpman deployments`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return applyConfig(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("MCPMAN_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var primaryHandler slog.Handler
	switch logging.Format(logFormat) {
	case logging.FormatJSON:
		primaryHandler = slog.NewJSONHandler(cmd.ErrOrStderr(), opts)
	default:
		primaryHandler = logging.NewHandler(cmd.ErrOrStderr(), opts)
	}

	handlers := []slog.Handler{primaryHandler}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return errors.NewUserError(err, "check that the log file directory exists and is writable")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// applyConfig publishes resolved settings through the flags package so noun
// subpackages can read them without importing this one.
func applyConfig(cmd *cobra.Command) error {
	// Help and version never touch configuration
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	if configLoadErr != nil {
		return errors.NewConfigError(configLoadErr)
	}

	root := projectFlag
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return errors.NewSystemError(err, "pass --project to set the project root explicitly")
		}
		root = wd
	}
	flags.SetProjectRoot(root)

	dbPath := dbFlag
	if dbPath == "" {
		dbPath = cfg.DatabasePath
	}
	if dbPath == "" {
		dbPath = paths.DefaultDatabasePath()
	}
	flags.SetDatabasePath(dbPath)

	flags.SetDefaultClients(cfg.DefaultClients)

	keep := cfg.BackupRetention
	if keep <= 0 {
		keep = config.DefaultBackupRetention
	}
	flags.SetBackupRetention(keep)

	return nil
}

// Execute runs the root command. Error output is handled by the caller.
func Execute() error {
	return rootCmd.Execute()
}
