package client

import (
	"os"
	"path/filepath"
	"testing"

	"mcpman/internal/mcp"
)

func TestDetect_ConfigFileExists(t *testing.T) {
	dir := t.TempDir()
	a := newFakeAdapter("claude-code", dir)

	path, err := a.ConfigPath(mcp.ScopeGlobal)
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"mcpServers":{}}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	result := Detect(a)
	if result == nil {
		t.Fatal("Detect() returned nil")
	}
	if result.Status != StatusInstalled {
		t.Errorf("Status = %q, want %q", result.Status, StatusInstalled)
	}
	if result.Name != "claude-code" {
		t.Errorf("Name = %q, want %q", result.Name, "claude-code")
	}
	if result.GlobalConfig != path {
		t.Errorf("GlobalConfig = %q, want %q", result.GlobalConfig, path)
	}
}

func TestDetect_ParentDirOnly(t *testing.T) {
	dir := t.TempDir()
	a := newFakeAdapter("vscode", dir)

	// Config dir exists but no config file has been written yet
	path, err := a.ConfigPath(mcp.ScopeGlobal)
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	result := Detect(a)
	if result == nil {
		t.Fatal("Detect() returned nil")
	}
	if result.Status != StatusInstalled {
		t.Errorf("Status = %q, want %q", result.Status, StatusInstalled)
	}
}

func TestDetect_NotInstalled(t *testing.T) {
	a := newFakeAdapter("codex", t.TempDir())

	result := Detect(a)
	if result == nil {
		t.Fatal("Detect() returned nil")
	}
	if result.Status != StatusNotInstalled {
		t.Errorf("Status = %q, want %q", result.Status, StatusNotInstalled)
	}
}

func TestDetect_NoGlobalPath(t *testing.T) {
	a := &fakeAdapter{
		name:  "broken",
		paths: map[mcp.Scope]string{},
	}

	if result := Detect(a); result != nil {
		t.Errorf("Detect() = %v, want nil", result)
	}
}

func TestDetectAll_Order(t *testing.T) {
	r := NewRegistry()
	dir := t.TempDir()

	for _, name := range []string{"vscode", "codex", "claude-code", "claude-desktop"} {
		if err := r.Register(newFakeAdapter(name, dir)); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	results := DetectAll(r)
	if len(results) != 4 {
		t.Fatalf("DetectAll() returned %d results, want 4", len(results))
	}

	expected := []string{"claude-code", "claude-desktop", "codex", "vscode"}
	for i, result := range results {
		if result.Name != expected[i] {
			t.Errorf("DetectAll()[%d].Name = %q, want %q", i, result.Name, expected[i])
		}
	}
}

func TestDetectInstalled_Filters(t *testing.T) {
	r := NewRegistry()

	// Separate roots so creating one adapter's config dir does not make
	// the other look installed.
	installed := newFakeAdapter("claude-code", t.TempDir())
	missing := newFakeAdapter("codex", t.TempDir())

	path, err := installed.ConfigPath(mcp.ScopeGlobal)
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"mcpServers":{}}`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	if err := r.Register(installed); err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if err := r.Register(missing); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	results := DetectInstalled(r)
	if len(results) != 1 {
		t.Fatalf("DetectInstalled() returned %d results, want 1", len(results))
	}
	if results[0].Name != "claude-code" {
		t.Errorf("DetectInstalled()[0].Name = %q, want %q", results[0].Name, "claude-code")
	}
}
