package client

import (
	"path/filepath"
	"sync"
	"testing"

	"mcpman/internal/errors"
	"mcpman/internal/mcp"
)

// fakeAdapter is a test implementation of the Adapter interface backed by
// in-memory documents.
type fakeAdapter struct {
	name        string
	displayName string
	paths       map[mcp.Scope]string
	docs        map[mcp.Scope]Document
}

func newFakeAdapter(name, dir string) *fakeAdapter {
	return &fakeAdapter{
		name:        name,
		displayName: name,
		paths: map[mcp.Scope]string{
			mcp.ScopeGlobal:  filepath.Join(dir, "global", name+".json"),
			mcp.ScopeUser:    filepath.Join(dir, "global", name+".json"),
			mcp.ScopeProject: filepath.Join(dir, "project", name+".json"),
		},
		docs: make(map[mcp.Scope]Document),
	}
}

func (f *fakeAdapter) Name() string        { return f.name }
func (f *fakeAdapter) DisplayName() string { return f.displayName }

func (f *fakeAdapter) ConfigPath(scope mcp.Scope) (string, error) {
	p, ok := f.paths[scope]
	if !ok {
		return "", errors.Newf("no path for scope %s", scope)
	}
	return p, nil
}

func (f *fakeAdapter) ReadConfig(scope mcp.Scope) (Document, error) {
	if doc, ok := f.docs[scope]; ok {
		return doc, nil
	}
	return Document{"mcpServers": map[string]any{}}, nil
}

func (f *fakeAdapter) WriteConfig(doc Document, scope mcp.Scope) error {
	f.docs[scope] = doc
	return nil
}

func (f *fakeAdapter) ListServers(scope mcp.Scope) ([]*mcp.Server, error) {
	doc, err := f.ReadConfig(scope)
	if err != nil {
		return nil, err
	}
	entries := ChildMap(doc, "mcpServers")
	servers := make([]*mcp.Server, 0, len(entries))
	for name, raw := range entries {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		srv, err := mcp.New(name, StringValue(entry, "command"))
		if err != nil {
			continue
		}
		servers = append(servers, srv)
	}
	return servers, nil
}

func (f *fakeAdapter) AddServer(srv *mcp.Server, scope mcp.Scope) error {
	doc, err := f.ReadConfig(scope)
	if err != nil {
		return err
	}
	entries := ChildMap(doc, "mcpServers")
	if entries == nil {
		entries = map[string]any{}
		doc["mcpServers"] = entries
	}
	entries[srv.Name] = map[string]any{"command": srv.Command}
	return f.WriteConfig(doc, scope)
}

func (f *fakeAdapter) RemoveServer(name string, scope mcp.Scope) error {
	doc, err := f.ReadConfig(scope)
	if err != nil {
		return err
	}
	delete(ChildMap(doc, "mcpServers"), name)
	return f.WriteConfig(doc, scope)
}

func (f *fakeAdapter) Validate(doc Document) bool {
	_, ok := doc["mcpServers"].(map[string]any)
	return ok
}

func (f *fakeAdapter) Backup(scope mcp.Scope) (string, error) {
	return "", nil
}

func TestNewRegistry(t *testing.T) {
	r := NewRegistry()
	if r == nil {
		t.Fatal("NewRegistry() returned nil")
	}

	if got := r.All(); len(got) != 0 {
		t.Errorf("NewRegistry().All() = %v, want empty", got)
	}

	if got := r.Names(); len(got) != 0 {
		t.Errorf("NewRegistry().Names() = %v, want empty", got)
	}
}

func TestRegistry_Register_Success(t *testing.T) {
	tests := []struct {
		name   string
		client string
	}{
		{name: "claude code", client: "claude-code"},
		{name: "claude desktop", client: "claude-desktop"},
		{name: "vscode", client: "vscode"},
		{name: "codex", client: "codex"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			a := newFakeAdapter(tt.client, t.TempDir())

			if err := r.Register(a); err != nil {
				t.Errorf("Register(%q) error = %v, want nil", tt.client, err)
			}

			got, err := r.Get(tt.client)
			if err != nil {
				t.Fatalf("Get(%q) error = %v, want nil", tt.client, err)
			}
			if got != Adapter(a) {
				t.Errorf("Get(%q) returned a different adapter", tt.client)
			}
		})
	}
}

func TestRegistry_Register_EmptyName(t *testing.T) {
	r := NewRegistry()
	a := &fakeAdapter{name: ""}

	err := r.Register(a)
	if !errors.Is(err, ErrInvalidClientName) {
		t.Errorf("Register() error = %v, want %v", err, ErrInvalidClientName)
	}
}

func TestRegistry_Register_NilAdapter(t *testing.T) {
	r := NewRegistry()

	err := r.Register(nil)
	if !errors.Is(err, ErrNilAdapter) {
		t.Errorf("Register(nil) error = %v, want %v", err, ErrNilAdapter)
	}
}

func TestRegistry_Register_AlreadyRegistered(t *testing.T) {
	r := NewRegistry()
	dir := t.TempDir()
	a1 := newFakeAdapter("claude-code", dir)
	a2 := newFakeAdapter("claude-code", dir)

	if err := r.Register(a1); err != nil {
		t.Fatalf("First Register() error = %v, want nil", err)
	}

	err := r.Register(a2)
	if !errors.Is(err, ErrClientAlreadyRegistered) {
		t.Errorf("Second Register() error = %v, want %v", err, ErrClientAlreadyRegistered)
	}

	// Original should still be registered
	got, err := r.Get("claude-code")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != Adapter(a1) {
		t.Error("Original adapter was overwritten")
	}
}

func TestRegistry_Get_Unregistered(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("claude-code")
	if !errors.Is(err, errors.ErrUnknownClient) {
		t.Errorf("Get() error = %v, want %v", err, errors.ErrUnknownClient)
	}
}

func TestRegistry_Get_ErrorNamesClient(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("cursor")
	if err == nil {
		t.Fatal("Get() error = nil, want error")
	}
	if got := err.Error(); got != "cursor: unknown client" {
		t.Errorf("Get() error = %q, want %q", got, "cursor: unknown client")
	}
}

func TestRegistry_Names_DeterministicOrder(t *testing.T) {
	r := NewRegistry()
	dir := t.TempDir()

	// Register in random order
	for _, name := range []string{"vscode", "claude-code", "codex", "claude-desktop"} {
		if err := r.Register(newFakeAdapter(name, dir)); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	expected := []string{"claude-code", "claude-desktop", "codex", "vscode"}

	names := r.Names()
	if len(names) != len(expected) {
		t.Fatalf("Names() returned %d names, want %d", len(names), len(expected))
	}

	for i, name := range names {
		if name != expected[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, name, expected[i])
		}
	}
}

func TestRegistry_All_DeterministicOrder(t *testing.T) {
	r := NewRegistry()
	dir := t.TempDir()

	for _, name := range []string{"codex", "vscode", "claude-desktop", "claude-code"} {
		if err := r.Register(newFakeAdapter(name, dir)); err != nil {
			t.Fatalf("Register(%q) error = %v", name, err)
		}
	}

	expected := []string{"claude-code", "claude-desktop", "codex", "vscode"}

	// Call multiple times and verify same order
	for range 10 {
		all := r.All()
		if len(all) != len(expected) {
			t.Fatalf("All() returned %d adapters, want %d", len(all), len(expected))
		}

		for j, a := range all {
			if a.Name() != expected[j] {
				t.Errorf("All()[%d].Name() = %q, want %q", j, a.Name(), expected[j])
			}
		}
	}
}

func TestRegistry_ConcurrentSafety(t *testing.T) {
	r := NewRegistry()
	dir := t.TempDir()
	clients := []string{"claude-code", "claude-desktop", "vscode", "codex"}

	var wg sync.WaitGroup
	const goroutines = 100

	for i := range goroutines {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			switch idx % 4 {
			case 0:
				// May fail with already registered, that's OK
				_ = r.Register(newFakeAdapter(clients[idx%len(clients)], dir))
			case 1:
				_, _ = r.Get(clients[idx%len(clients)])
			case 2:
				_ = r.All()
			case 3:
				_ = r.Names()
			}
		}(i)
	}

	wg.Wait()
}

func TestRegistry_ConcurrentRegisterAndGet(t *testing.T) {
	r := NewRegistry()
	a := newFakeAdapter("claude-code", t.TempDir())

	var wg sync.WaitGroup
	const readers = 50
	const writers = 10

	registerErrors := make(chan error, writers)
	for range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			registerErrors <- r.Register(a)
		}()
	}

	for range readers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = r.Get("claude-code")
		}()
	}

	wg.Wait()
	close(registerErrors)

	// Exactly one registration should succeed
	successCount := 0
	for err := range registerErrors {
		if err == nil {
			successCount++
		} else if !errors.Is(err, ErrClientAlreadyRegistered) {
			t.Errorf("Unexpected error: %v", err)
		}
	}

	if successCount != 1 {
		t.Errorf("Expected exactly 1 successful registration, got %d", successCount)
	}

	if _, err := r.Get("claude-code"); err != nil {
		t.Error("Adapter not registered after concurrent operations")
	}
}
