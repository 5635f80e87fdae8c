package client

import (
	"os"
	"path/filepath"

	"mcpman/internal/mcp"
)

// InstallStatus indicates the installation state of a client.
type InstallStatus string

const (
	// StatusInstalled indicates the client's global config file or its
	// parent directory exists.
	StatusInstalled InstallStatus = "installed"

	// StatusNotInstalled indicates no trace of the client was found.
	StatusNotInstalled InstallStatus = "not_installed"
)

// DetectionResult contains information about a detected client.
type DetectionResult struct {
	// Name is the client identifier (claude-code, claude-desktop, vscode, codex).
	Name string

	// DisplayName is the human-readable client name.
	DisplayName string

	// GlobalConfig is the path to the global configuration file.
	// This path is always set, even if the file does not exist.
	GlobalConfig string

	// ProjectConfig is the path the client would use for project-scoped
	// configuration, resolved against the adapter's project root.
	ProjectConfig string

	// Status indicates the installation state of the client.
	Status InstallStatus
}

// Detect checks whether an adapter's client appears installed and returns
// detection info. Returns nil if the adapter cannot resolve its global
// config path.
func Detect(a Adapter) *DetectionResult {
	globalConfig, err := a.ConfigPath(mcp.ScopeGlobal)
	if err != nil {
		return nil
	}

	// Project path resolution can fail independently (no project root);
	// detection still proceeds on the global path alone.
	projectConfig, _ := a.ConfigPath(mcp.ScopeProject)

	status := StatusNotInstalled
	if fileOrParentExists(globalConfig) {
		status = StatusInstalled
	}

	return &DetectionResult{
		Name:          a.Name(),
		DisplayName:   a.DisplayName(),
		GlobalConfig:  globalConfig,
		ProjectConfig: projectConfig,
		Status:        status,
	}
}

// DetectAll returns detection results for every adapter in the registry,
// in registry order (sorted by client name).
func DetectAll(r *Registry) []*DetectionResult {
	adapters := r.All()
	results := make([]*DetectionResult, 0, len(adapters))

	for _, a := range adapters {
		if result := Detect(a); result != nil {
			results = append(results, result)
		}
	}

	return results
}

// DetectInstalled returns only clients that are installed.
func DetectInstalled(r *Registry) []*DetectionResult {
	all := DetectAll(r)
	installed := make([]*DetectionResult, 0, len(all))

	for _, result := range all {
		if result.Status == StatusInstalled {
			installed = append(installed, result)
		}
	}

	return installed
}

// fileOrParentExists returns true if the path or its parent directory
// exists. A client counts as installed once its config directory is
// present, even before any config file is written.
func fileOrParentExists(path string) bool {
	if path == "" {
		return false
	}

	if _, err := os.Stat(path); err == nil {
		return true
	}

	info, err := os.Stat(filepath.Dir(path))
	if err != nil {
		return false
	}
	return info.IsDir()
}
