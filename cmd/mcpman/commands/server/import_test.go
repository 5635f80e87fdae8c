package server

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"mcpman/internal/store"
)

// writeImportFile marshals doc to a YAML file in a scratch dir.
func writeImportFile(t *testing.T, doc exportDoc) string {
	t.Helper()
	data, err := yaml.Marshal(doc)
	if err != nil {
		t.Fatalf("marshaling import doc: %v", err)
	}
	path := filepath.Join(t.TempDir(), "servers.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("writing import file: %v", err)
	}
	return path
}

func TestImportCommand_RoundTrip(t *testing.T) {
	dbPath := newTestCatalogue(t)
	path := writeImportFile(t, exportDoc{Servers: []exportServer{{
		Name:    "github",
		Command: "npx",
		Args:    []string{"-y", "@modelcontextprotocol/server-github"},
		Env:     map[string]string{"GITHUB_TOKEN": "ghp_abc"},
		Tags:    []string{"dev"},
	}}})

	var buf bytes.Buffer
	if err := runImportWithWriter(&buf, []string{path}); err != nil {
		t.Fatalf("runImportWithWriter() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "github: imported") {
		t.Errorf("output should report the import, got %q", out)
	}
	if !strings.Contains(out, "Imported 1 of 1 servers") {
		t.Errorf("output should summarize the import, got %q", out)
	}

	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("opening store: %v", err)
	}
	defer st.Close()

	srv, err := st.GetServerByName("github")
	if err != nil {
		t.Fatalf("imported server should be in the catalogue: %v", err)
	}
	if srv.ID == "" {
		t.Error("import should mint a fresh ID")
	}
	if srv.Command != "npx" || len(srv.Args) != 2 {
		t.Errorf("imported server lost fields: %+v", srv)
	}
	if srv.Env["GITHUB_TOKEN"] != "ghp_abc" {
		t.Error("imported server should keep env values")
	}
}

func TestImportCommand_SkipsDuplicates(t *testing.T) {
	dbPath := newTestCatalogue(t)
	seedServer(t, dbPath, "github")
	path := writeImportFile(t, exportDoc{Servers: []exportServer{
		{Name: "github", Command: "npx"},
		{Name: "filesystem", Command: "npx"},
	}})

	var buf bytes.Buffer
	if err := runImportWithWriter(&buf, []string{path}); err != nil {
		t.Fatalf("runImportWithWriter() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "github: already in catalogue (skipped)") {
		t.Errorf("output should report the skip, got %q", out)
	}
	if !strings.Contains(out, "Imported 1 of 2 servers (1 skipped)") {
		t.Errorf("output should count the skip, got %q", out)
	}
}

func TestImportCommand_InvalidEntryAborts(t *testing.T) {
	newTestCatalogue(t)
	path := writeImportFile(t, exportDoc{Servers: []exportServer{
		{Name: "broken", Command: ""},
	}})

	var buf bytes.Buffer
	err := runImportWithWriter(&buf, []string{path})
	if err == nil {
		t.Fatal("expected an error for an entry with no command")
	}
	if !strings.Contains(err.Error(), `entry "broken"`) {
		t.Errorf("error should name the broken entry, got %v", err)
	}
}

func TestImportCommand_EmptyDocument(t *testing.T) {
	newTestCatalogue(t)
	path := writeImportFile(t, exportDoc{})

	var buf bytes.Buffer
	if err := runImportWithWriter(&buf, []string{path}); err != nil {
		t.Fatalf("runImportWithWriter() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No servers found in "+path) {
		t.Errorf("output = %q, want empty-document notice", buf.String())
	}
}

func TestImportCommand_MissingFile(t *testing.T) {
	newTestCatalogue(t)

	var buf bytes.Buffer
	err := runImportWithWriter(&buf, []string{filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
}
