// Package client defines the adapter contract for MCP client
// configuration files.
//
// Each supported MCP client (Claude Code, Claude Desktop, VS Code, Codex)
// stores its server definitions in its own config file with its own layout.
// An [Adapter] hides those differences behind a uniform interface: read the
// config as a structural [Document], list the servers it declares, add or
// remove a server entry, and back the file up before every write.
//
// # Adapters
//
// Use a [Registry] to look adapters up by client name:
//
//	adapter, err := reg.Get("claude-code")
//	if err != nil {
//	    return err
//	}
//	if err := adapter.AddServer(srv, mcp.ScopeGlobal); err != nil {
//	    return err
//	}
//
// Unknown names are classified as errors.ErrUnknownClient.
//
// # Documents
//
// A [Document] is the decoded config file as a plain map. Adapters edit
// only the entries they own, so fields this tool does not understand
// survive a read-modify-write cycle byte-for-byte in meaning. Missing
// files read as nil and callers substitute the client's canonical empty
// document; files that exist but fail to decode are classified as
// errors.ErrConfigParse.
//
// # Detection
//
// Use [Detect], [DetectAll], and [DetectInstalled] to discover which
// clients are present on the current machine. A client counts as
// installed once its global config file or that file's parent directory
// exists.
//
// # Thread Safety
//
// Registry is safe for concurrent use. Adapters are stateless after
// construction; concurrent writes to the same config file are serialized
// by the caller, not the adapter.
package client
