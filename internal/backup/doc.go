// Package backup copies client configuration files aside before they are
// modified.
//
// Each backup lands in a .mcp-manager-backups directory next to the config
// file, named after the original with a timestamp suffix:
//
//	~/.claude/settings.json
//	~/.claude/.mcp-manager-backups/settings.json.20260821_153012
//
// Adapters call [Create] before every mutating write. Backups accumulate;
// nothing in the write path ever deletes them. [Prune] exists solely for the
// CLI's explicit retention command, and [Restore] copies a chosen backup
// back over the live file (backing up the current contents first).
package backup
