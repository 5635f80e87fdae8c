// Package config provides configuration management for the mcpman CLI.
//
// This package handles loading and validating the tool's own configuration
// file. It is distinct from the client configurations (Claude Code, VS Code
// and friends) which are managed by the client adapters.
//
// # Configuration File
//
// The configuration file is searched for as config.yaml in the current
// directory, then in <XDG config>/mcpman/. The format:
//
//	version: 1
//	database_path: ~/.mcp-manager/mcp-manager.db  # optional override
//	backup_retention: 10                          # optional
//	default_clients:                              # optional
//	  - claude-code
//	  - vscode
//
// Every key can also be set through the environment with the MCPMAN_
// prefix, e.g. MCPMAN_DATABASE_PATH.
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load(flagConfigPath)
//	if err != nil {
//	    return fmt.Errorf("loading config: %w", err)
//	}
//
// With an empty path a missing file is not an error; the defaults apply.
// With an explicit path a missing file fails.
//
// # Validation
//
// [Validate] returns the full list of problems rather than stopping at the
// first:
//
//	errs := config.Validate(cfg)
//	for _, e := range errs {
//	    fmt.Println(e)
//	}
package config
