// Package mcp defines the common data model for the server catalogue: the
// [Server] definition, the [Deployment] record, and the [Scope] enum shared
// by the store, the reconciliation engine, and the client adapters.
//
// # Server Definitions
//
// A [Server] describes how to launch one MCP server. Construct entries with
// [New], which assigns an ID, normalizes derived fields, and validates the
// catalogue invariants:
//
//	server, err := mcp.New("github", "npx",
//	    mcp.WithArgs("-y", "@modelcontextprotocol/server-github"),
//	    mcp.WithEnv(map[string]string{"GITHUB_TOKEN": "${GITHUB_TOKEN}"}),
//	    mcp.WithTags("Dev", " git "),
//	)
//	// server.DisplayName == "Github", server.Tags == []string{"dev", "git"}
//
// Names are restricted to letters, digits, hyphens, and underscores so they
// are safe as map keys in every supported client config format. Tags are
// lowercased, trimmed, and deduplicated; the transform is idempotent.
//
// # Transport Types
//
//   - [TransportStdio]: local process communication via stdin/stdout (default)
//   - [TransportHTTP]: remote server communication via streamable HTTP
//   - [TransportSSE]: remote server communication via Server-Sent Events
//
// # Deployments
//
// A [Deployment] records that one server is configured in one client at one
// [Scope]. The (ServerID, ClientName, Scope) triple is unique; re-deploying
// replaces the existing record rather than erroring.
//
// Adapters map scopes to file locations and may alias two scopes to the same
// file. [SyncScopes] lists the scopes swept during synchronization.
package mcp
