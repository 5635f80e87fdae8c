package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mcpman/cmd/mcpman/commands/flags"
	"mcpman/internal/store"
)

// writeClaudeCodeConfig drops a settings file with one external server into
// the fake home directory.
func writeClaudeCodeConfig(t *testing.T, home string) {
	t.Helper()

	dir := filepath.Join(home, ".claude")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("creating config dir: %v", err)
	}
	content := `{
  "mcpServers": {
    "external": {
      "command": "uvx",
      "args": ["some-mcp-server"],
      "type": "stdio"
    }
  }
}`
	if err := os.WriteFile(filepath.Join(dir, "settings.json"), []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}

func TestSyncCommand_ImportsExternalServer(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeClaudeCodeConfig(t, home)

	flags.SetProjectRoot(t.TempDir())
	dbPath := filepath.Join(t.TempDir(), "test.db")
	flags.SetDatabasePath(dbPath)

	origClient, origJSON := syncClient, syncJSON
	defer func() { syncClient, syncJSON = origClient, origJSON }()
	syncClient = "claude-code"
	syncJSON = false

	var buf bytes.Buffer
	if err := runSyncWithWriter(&buf); err != nil {
		t.Fatalf("runSyncWithWriter() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Client: claude-code") {
		t.Error("output should contain the client header")
	}
	if !strings.Contains(output, "Imported:") || !strings.Contains(output, "external") {
		t.Error("output should list the imported server")
	}
	if !strings.Contains(output, "Deployments recorded:") {
		t.Error("output should list the recorded deployment")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer st.Close()
	srv, err := st.GetServerByName("external")
	if err != nil {
		t.Fatalf("imported server should be in the catalogue: %v", err)
	}
	deployments, err := st.ListDeployments(srv.ID, "claude-code")
	if err != nil {
		t.Fatalf("listing deployments: %v", err)
	}
	if len(deployments) != 1 {
		t.Errorf("expected 1 deployment record, got %d", len(deployments))
	}
}

func TestSyncCommand_SecondRunIsQuiet(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeClaudeCodeConfig(t, home)

	flags.SetProjectRoot(t.TempDir())
	flags.SetDatabasePath(filepath.Join(t.TempDir(), "test.db"))

	origClient, origJSON := syncClient, syncJSON
	defer func() { syncClient, syncJSON = origClient, origJSON }()
	syncClient = "claude-code"
	syncJSON = false

	var first bytes.Buffer
	if err := runSyncWithWriter(&first); err != nil {
		t.Fatalf("first sync: %v", err)
	}

	var second bytes.Buffer
	if err := runSyncWithWriter(&second); err != nil {
		t.Fatalf("second sync: %v", err)
	}

	output := second.String()
	if !strings.Contains(output, "(nothing new)") {
		t.Error("second sweep should report nothing new")
	}
	if !strings.Contains(output, "Catalogue already up to date") {
		t.Error("second sweep should report the catalogue as current")
	}
}

func TestSyncCommand_CorruptClientFileIsolated(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	writeClaudeCodeConfig(t, home)

	vscodeDir := filepath.Join(home, ".vscode")
	if err := os.MkdirAll(vscodeDir, 0o755); err != nil {
		t.Fatalf("creating vscode dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(vscodeDir, "mcp.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("writing corrupt config: %v", err)
	}

	flags.SetProjectRoot(t.TempDir())
	dbPath := filepath.Join(t.TempDir(), "test.db")
	flags.SetDatabasePath(dbPath)

	origClient, origJSON := syncClient, syncJSON
	defer func() { syncClient, syncJSON = origClient, origJSON }()
	syncClient = ""
	syncJSON = false

	var buf bytes.Buffer
	if err := runSyncWithWriter(&buf); err != nil {
		t.Fatalf("runSyncWithWriter() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "Imported:") || !strings.Contains(output, "external") {
		t.Error("the healthy client should still import its server")
	}
	vscodeSection := strings.Index(output, "Client: vscode")
	if vscodeSection < 0 {
		t.Fatal("output should contain a vscode section")
	}
	if !strings.Contains(output[vscodeSection:], "scope global:") {
		t.Error("the corrupt file should be reported under the vscode section")
	}
	if strings.Contains(output[:vscodeSection], "scope global:") {
		t.Error("no other client should report the vscode parse failure")
	}

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer st.Close()
	if _, err := st.GetServerByName("external"); err != nil {
		t.Errorf("GetServerByName() error = %v, healthy import should land", err)
	}
}

func TestSyncCommand_UnknownClient(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	flags.SetProjectRoot(t.TempDir())
	flags.SetDatabasePath(filepath.Join(t.TempDir(), "test.db"))

	origClient, origJSON := syncClient, syncJSON
	defer func() { syncClient, syncJSON = origClient, origJSON }()
	syncClient = "cursor"
	syncJSON = false

	var buf bytes.Buffer
	if err := runSyncWithWriter(&buf); err == nil {
		t.Fatal("expected error for unknown client")
	}
}
