// Package engine reconciles the server catalogue with client configuration
// files.
//
// Deploy and Undeploy move a single server in or out of one client at one
// scope, keeping the deployment records in step with what was actually
// written. BulkDeploy fans a set of servers out across a set of clients.
// SyncClient and SyncAll walk the other direction: they read what already
// lives in client configurations and import unknown servers into the
// catalogue, additively.
//
// The engine owns ordering, not I/O: file writes happen inside the client
// adapters (which back up before every mutation), and catalogue writes
// happen inside the store. On a partial failure the rule is that the
// configuration file wins; deployment records are reconciled to it on the
// next successful operation.
package engine
