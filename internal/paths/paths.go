package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/cockroachdb/errors"
)

// Sentinel errors for path resolution.
var (
	// ErrHomeDirNotFound indicates the user's home directory could not be determined.
	ErrHomeDirNotFound = errors.New("home directory not found")

	// ErrInvalidPath indicates the provided path is malformed or invalid.
	ErrInvalidPath = errors.New("invalid path")
)

// DefaultDirPerm is the default permission for newly created directories (private).
const DefaultDirPerm = 0o700

// DataDirName is the dot directory under the user's home that holds the
// catalogue database.
const DataDirName = ".mcp-manager"

// DatabaseFilename is the SQLite file name inside the data directory.
const DatabaseFilename = "mcp-manager.db"

// EnsureDir creates the directory and any necessary parents with specified permissions.
// If perm is 0, DefaultDirPerm (0700) is used.
// This function is idempotent; it returns nil if the directory already exists.
func EnsureDir(path string, perm os.FileMode) error {
	if perm == 0 {
		perm = DefaultDirPerm
	}
	return os.MkdirAll(path, perm)
}

// Home returns the user's home directory.
// This is a thin wrapper around os.UserHomeDir for consistency.
// Note: It returns an empty string on error.
// Use ResolveHome for proper error handling.
func Home() string {
	h, _ := ResolveHome()
	return h
}

// ResolveHome returns the user's home directory.
// Returns ErrHomeDirNotFound if the directory cannot be determined.
func ResolveHome() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(ErrHomeDirNotFound, err.Error())
	}
	return home, nil
}

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// DataHome returns the XDG data home directory.
// On Linux: ~/.local/share
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func DataHome() string {
	return xdg.DataHome
}

// AppConfigDir returns the directory searched for the mcpman config file.
// Returns: <ConfigHome>/mcpman/
func AppConfigDir() string {
	return filepath.Join(ConfigHome(), "mcpman")
}

// DataDir returns the catalogue data directory.
// Returns: ~/.mcp-manager/
//
// Returns an empty string when the home directory cannot be resolved.
func DataDir() string {
	home := Home()
	if home == "" {
		return ""
	}
	return filepath.Join(home, DataDirName)
}

// DefaultDatabasePath returns the default location of the catalogue database.
// Returns: ~/.mcp-manager/mcp-manager.db
//
// Returns an empty string when the home directory cannot be resolved.
func DefaultDatabasePath() string {
	dir := DataDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, DatabaseFilename)
}
