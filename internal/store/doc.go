// Package store persists the MCP server catalogue in a local SQLite
// database.
//
// Three tables back the catalogue: servers holds the entries themselves
// with list-valued fields (args, env, tags, metadata) encoded as JSON text,
// deployments records which server was written to which client at which
// scope, and settings is a small JSON-valued key/value space for tool
// preferences.
//
// The database is opened with foreign keys enforced, and deleting a server
// always removes its deployment records in the same transaction. Absent
// rows surface as errors.ErrNotFound so callers can distinguish "not there"
// from real failures with errors.Is.
//
// The driver is the pure-Go modernc.org/sqlite, so the binary builds
// without cgo.
package store
