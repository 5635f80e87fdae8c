// Package cmd holds build metadata injected via ldflags.
package cmd

// Set at build time via -ldflags "-X mcpman/cmd.Version=...".
var (
	// Version is the semantic version of the build.
	Version = "dev"
	// Commit is the git commit SHA the build was cut from.
	Commit = "none"
	// Date is the build timestamp.
	Date = "unknown"
)
