package server

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"mcpman/internal/mcp"
	"mcpman/internal/store"
)

func resetListFlags(t *testing.T) {
	t.Helper()
	origTag, origJSON := listTag, listJSON
	t.Cleanup(func() { listTag, listJSON = origTag, origJSON })
	listTag, listJSON = "", false
}

func TestListCommand_Empty(t *testing.T) {
	newTestCatalogue(t)
	resetListFlags(t)

	var buf bytes.Buffer
	if err := runListWithWriter(&buf); err != nil {
		t.Fatalf("runListWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), "Catalogue is empty") {
		t.Error("output should report the empty state")
	}
}

func TestListCommand_EmptyTagFilter(t *testing.T) {
	dbPath := newTestCatalogue(t)
	resetListFlags(t)
	seedServer(t, dbPath, "github", mcp.WithTags("dev"))
	listTag = "prod"

	var buf bytes.Buffer
	if err := runListWithWriter(&buf); err != nil {
		t.Fatalf("runListWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), `No servers tagged "prod"`) {
		t.Error("output should report no matches for the tag")
	}
}

func TestListCommand_Table(t *testing.T) {
	dbPath := newTestCatalogue(t)
	resetListFlags(t)
	srv := seedServer(t, dbPath, "github",
		mcp.WithArgs("-y", "@modelcontextprotocol/server-github"),
		mcp.WithTags("dev"))
	seedServer(t, dbPath, "filesystem")

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	if err := st.AddDeployment(mcp.NewDeployment(srv.ID, "vscode", mcp.ScopeGlobal)); err != nil {
		t.Fatalf("adding deployment: %v", err)
	}
	st.Close()

	var buf bytes.Buffer
	if err := runListWithWriter(&buf); err != nil {
		t.Fatalf("runListWithWriter() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"NAME", "COMMAND", "TRANSPORT", "TAGS", "DEPLOYMENTS"} {
		if !strings.Contains(output, want) {
			t.Errorf("output should contain %s header", want)
		}
	}
	if !strings.Contains(output, "github") || !strings.Contains(output, "filesystem") {
		t.Error("output should list both servers")
	}
	if !strings.Contains(output, "npx -y @modelcontextprotocol/server-github") {
		t.Error("output should join command and args")
	}
}

func TestListCommand_JSON(t *testing.T) {
	dbPath := newTestCatalogue(t)
	resetListFlags(t)
	srv := seedServer(t, dbPath, "github", mcp.WithTags("dev"))

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	if err := st.AddDeployment(mcp.NewDeployment(srv.ID, "vscode", mcp.ScopeGlobal)); err != nil {
		t.Fatalf("adding deployment: %v", err)
	}
	st.Close()

	listJSON = true

	var buf bytes.Buffer
	if err := runListWithWriter(&buf); err != nil {
		t.Fatalf("runListWithWriter() error = %v", err)
	}

	var entries []serverListEntry
	if err := json.Unmarshal(buf.Bytes(), &entries); err != nil {
		t.Fatalf("failed to unmarshal JSON: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Name != "github" {
		t.Errorf("name = %q, want %q", entries[0].Name, "github")
	}
	if entries[0].Deployments != 1 {
		t.Errorf("deployments = %d, want 1", entries[0].Deployments)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"exactly-10", 10, "exactly-10"},
		{"this is a longer string", 10, "this is..."},
	}

	for _, tt := range tests {
		if got := truncate(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}
