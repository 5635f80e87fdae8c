// Package flags provides shared flag accessors for CLI commands.
// This package exists to avoid import cycles between the root command
// and noun subpackages (server, backup, settings).
package flags

// projectRoot holds the resolved value of the --project flag.
var projectRoot string

// databasePath holds the resolved catalogue database path.
var databasePath string

// defaultClients holds the configured default deploy targets.
var defaultClients []string

// backupRetention holds the configured number of backups to keep.
var backupRetention int

// GetProjectRoot returns the directory anchoring project-scoped operations.
func GetProjectRoot() string {
	return projectRoot
}

// SetProjectRoot sets the project root. The root command calls this after
// flag parsing.
func SetProjectRoot(root string) {
	projectRoot = root
}

// GetDatabasePath returns the path to the catalogue database.
func GetDatabasePath() string {
	return databasePath
}

// SetDatabasePath sets the catalogue database path. The root command calls
// this after resolving the --db flag against the configuration.
func SetDatabasePath(path string) {
	databasePath = path
}

// GetDefaultClients returns the clients targeted when --client is omitted.
// Empty means every registered client.
func GetDefaultClients() []string {
	return defaultClients
}

// SetDefaultClients sets the default deploy targets from the configuration.
func SetDefaultClients(names []string) {
	defaultClients = names
}

// GetBackupRetention returns how many backups per config file pruning keeps.
func GetBackupRetention() int {
	return backupRetention
}

// SetBackupRetention sets the retention count from the configuration.
func SetBackupRetention(keep int) {
	backupRetention = keep
}
