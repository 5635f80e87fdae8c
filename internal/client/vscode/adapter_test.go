package vscode

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"mcpman/internal/client"
	"mcpman/internal/mcp"
)

func TestConfigPath(t *testing.T) {
	a := New(WithHomeDir("/home/test"), WithProjectRoot("/work/proj"))

	tests := []struct {
		name  string
		scope mcp.Scope
		want  string
	}{
		{name: "project", scope: mcp.ScopeProject, want: filepath.Join("/work/proj", ".vscode", "mcp.json")},
		{name: "user", scope: mcp.ScopeUser, want: filepath.Join("/home/test", ".vscode", "mcp.json")},
		{name: "global aliases user", scope: mcp.ScopeGlobal, want: filepath.Join("/home/test", ".vscode", "mcp.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.ConfigPath(tt.scope)
			if err != nil {
				t.Fatalf("ConfigPath(%v) error = %v", tt.scope, err)
			}
			if got != tt.want {
				t.Errorf("ConfigPath(%v) = %q, want %q", tt.scope, got, tt.want)
			}
		})
	}
}

func TestReadConfig_MissingFile(t *testing.T) {
	a := New(WithHomeDir(t.TempDir()))

	doc, err := a.ReadConfig(mcp.ScopeGlobal)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	if _, ok := doc["servers"].(map[string]any); !ok {
		t.Errorf("canonical empty document missing servers map: %v", doc)
	}
	if _, ok := doc["inputs"].([]any); !ok {
		t.Errorf("canonical empty document missing inputs list: %v", doc)
	}
}

func TestAddServer_SensitiveEnvRegistersInput(t *testing.T) {
	a := New(WithHomeDir(t.TempDir()))

	srv, err := mcp.New("gh-server", "npx",
		mcp.WithEnv(map[string]string{"GITHUB_TOKEN": "secret123", "ROOT": "/tmp"}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := a.AddServer(srv, mcp.ScopeGlobal); err != nil {
		t.Fatalf("AddServer() error = %v", err)
	}

	doc, err := a.ReadConfig(mcp.ScopeGlobal)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	inputs := client.ChildSlice(doc, "inputs")
	if len(inputs) != 1 {
		t.Fatalf("inputs has %d entries, want 1", len(inputs))
	}

	descriptor, ok := inputs[0].(map[string]any)
	if !ok {
		t.Fatalf("inputs[0] = %T, want object", inputs[0])
	}
	if got := client.StringValue(descriptor, "id"); got != "github-token" {
		t.Errorf("id = %q, want %q", got, "github-token")
	}
	if got := client.StringValue(descriptor, "type"); got != "promptString" {
		t.Errorf("type = %q, want %q", got, "promptString")
	}
	if got := client.StringValue(descriptor, "description"); got != "GITHUB_TOKEN for MCP server" {
		t.Errorf("description = %q, want %q", got, "GITHUB_TOKEN for MCP server")
	}
	if password, ok := descriptor["password"].(bool); !ok || !password {
		t.Errorf("password = %v, want true", descriptor["password"])
	}
}

func TestAddServer_SensitiveInputDeduplicated(t *testing.T) {
	a := New(WithHomeDir(t.TempDir()))

	// Two servers sharing the API_KEY variable name
	for _, name := range []string{"server-one", "server-two"} {
		srv, err := mcp.New(name, "npx",
			mcp.WithEnv(map[string]string{"API_KEY": "secret"}),
		)
		if err != nil {
			t.Fatalf("New(%q) error = %v", name, err)
		}
		if err := a.AddServer(srv, mcp.ScopeGlobal); err != nil {
			t.Fatalf("AddServer(%q) error = %v", name, err)
		}
	}

	doc, err := a.ReadConfig(mcp.ScopeGlobal)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}

	inputs := client.ChildSlice(doc, "inputs")
	if len(inputs) != 1 {
		t.Fatalf("inputs has %d entries, want exactly 1 deduplicated entry", len(inputs))
	}
	descriptor, _ := inputs[0].(map[string]any)
	if got := client.StringValue(descriptor, "id"); got != "api-key" {
		t.Errorf("id = %q, want %q", got, "api-key")
	}
}

func TestAddServer_NonSensitiveEnvNoInput(t *testing.T) {
	a := New(WithHomeDir(t.TempDir()))

	srv, err := mcp.New("fs-server", "npx",
		mcp.WithEnv(map[string]string{"ROOT": "/tmp", "VERBOSE": "1"}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := a.AddServer(srv, mcp.ScopeGlobal); err != nil {
		t.Fatalf("AddServer() error = %v", err)
	}

	doc, err := a.ReadConfig(mcp.ScopeGlobal)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}
	if inputs := client.ChildSlice(doc, "inputs"); len(inputs) != 0 {
		t.Errorf("inputs has %d entries, want 0", len(inputs))
	}
}

func TestInputReferencePreservedVerbatim(t *testing.T) {
	home := t.TempDir()
	configPath := filepath.Join(home, ".vscode", "mcp.json")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configData := `{
  "inputs": [
    {"type": "promptString", "id": "api-key", "description": "API_KEY for MCP server", "password": true}
  ],
  "servers": {
    "gh-server": {
      "type": "stdio",
      "command": "npx",
      "args": [],
      "env": {"API_KEY": "${input:api-key}"}
    }
  }
}`
	if err := os.WriteFile(configPath, []byte(configData), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	a := New(WithHomeDir(home))

	// The placeholder must survive a list
	servers, err := a.ListServers(mcp.ScopeGlobal)
	if err != nil {
		t.Fatalf("ListServers() error = %v", err)
	}
	if len(servers) != 1 {
		t.Fatalf("ListServers() returned %d servers, want 1", len(servers))
	}
	if got := servers[0].Env["API_KEY"]; got != "${input:api-key}" {
		t.Errorf("Env[API_KEY] = %q, want placeholder preserved", got)
	}

	// And survive a write back through AddServer of another server
	other, err := mcp.New("other", "cmd")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := a.AddServer(other, mcp.ScopeGlobal); err != nil {
		t.Fatalf("AddServer() error = %v", err)
	}

	doc, err := a.ReadConfig(mcp.ScopeGlobal)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}
	entry, _ := client.ChildMap(doc, "servers")["gh-server"].(map[string]any)
	if entry == nil {
		t.Fatal("gh-server entry dropped")
	}
	env := client.StringMap(entry, "env")
	if got := env["API_KEY"]; got != "${input:api-key}" {
		t.Errorf("Env[API_KEY] after rewrite = %q, want placeholder preserved", got)
	}
}

func TestListServers_SkipsEntriesMissingTypeOrCommand(t *testing.T) {
	home := t.TempDir()
	configPath := filepath.Join(home, ".vscode", "mcp.json")
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	configData := `{
  "inputs": [],
  "servers": {
    "good": {"type": "http", "command": "serve", "args": []},
    "no-type": {"command": "serve"},
    "no-command": {"type": "stdio"}
  }
}`
	if err := os.WriteFile(configPath, []byte(configData), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	a := New(WithHomeDir(home))

	servers, err := a.ListServers(mcp.ScopeGlobal)
	if err != nil {
		t.Fatalf("ListServers() error = %v", err)
	}
	if len(servers) != 1 {
		t.Fatalf("ListServers() returned %d servers, want 1", len(servers))
	}
	if servers[0].Name != "good" {
		t.Errorf("Name = %q, want %q", servers[0].Name, "good")
	}
	if servers[0].Transport != mcp.TransportHTTP {
		t.Errorf("Transport = %q, want %q", servers[0].Transport, mcp.TransportHTTP)
	}
}

func TestRemoveServer_LeavesInputsInPlace(t *testing.T) {
	a := New(WithHomeDir(t.TempDir()))

	srv, err := mcp.New("gh-server", "npx",
		mcp.WithEnv(map[string]string{"API_KEY": "secret"}),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := a.AddServer(srv, mcp.ScopeGlobal); err != nil {
		t.Fatalf("AddServer() error = %v", err)
	}
	if err := a.RemoveServer("gh-server", mcp.ScopeGlobal); err != nil {
		t.Fatalf("RemoveServer() error = %v", err)
	}

	doc, err := a.ReadConfig(mcp.ScopeGlobal)
	if err != nil {
		t.Fatalf("ReadConfig() error = %v", err)
	}
	if len(client.ChildMap(doc, "servers")) != 0 {
		t.Error("server entry not removed")
	}
	if inputs := client.ChildSlice(doc, "inputs"); len(inputs) != 1 {
		t.Errorf("inputs has %d entries after remove, want 1", len(inputs))
	}
}

func TestAddServer_RoundTripArgsEnv(t *testing.T) {
	a := New(WithHomeDir(t.TempDir()))

	srv, err := mcp.New("fs-server", "npx",
		mcp.WithArgs("-y", "@mcp/fs"),
		mcp.WithEnv(map[string]string{"ROOT": "/tmp"}),
		mcp.WithTransport(mcp.TransportSSE),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := a.AddServer(srv, mcp.ScopeGlobal); err != nil {
		t.Fatalf("AddServer() error = %v", err)
	}

	servers, err := a.ListServers(mcp.ScopeGlobal)
	if err != nil {
		t.Fatalf("ListServers() error = %v", err)
	}
	if len(servers) != 1 {
		t.Fatalf("ListServers() returned %d servers, want 1", len(servers))
	}

	got := servers[0]
	if got.Command != "npx" {
		t.Errorf("Command = %q, want %q", got.Command, "npx")
	}
	if !reflect.DeepEqual(got.Args, []string{"-y", "@mcp/fs"}) {
		t.Errorf("Args = %v, want %v", got.Args, []string{"-y", "@mcp/fs"})
	}
	if !reflect.DeepEqual(got.Env, map[string]string{"ROOT": "/tmp"}) {
		t.Errorf("Env = %v, want %v", got.Env, map[string]string{"ROOT": "/tmp"})
	}
	if got.Transport != mcp.TransportSSE {
		t.Errorf("Transport = %q, want %q", got.Transport, mcp.TransportSSE)
	}
}

func TestValidate(t *testing.T) {
	a := New()

	tests := []struct {
		name string
		doc  client.Document
		want bool
	}{
		{
			name: "nil document",
			doc:  nil,
			want: false,
		},
		{
			name: "empty document",
			doc:  client.Document{},
			want: true,
		},
		{
			name: "valid full document",
			doc: client.Document{
				"inputs": []any{
					map[string]any{"type": "promptString", "id": "api-key"},
				},
				"servers": map[string]any{
					"fs": map[string]any{"type": "stdio", "command": "npx"},
				},
			},
			want: true,
		},
		{
			name: "inputs not a list",
			doc:  client.Document{"inputs": map[string]any{}},
			want: false,
		},
		{
			name: "input missing id",
			doc: client.Document{
				"inputs": []any{map[string]any{"type": "promptString"}},
			},
			want: false,
		},
		{
			name: "server missing type",
			doc: client.Document{
				"servers": map[string]any{
					"fs": map[string]any{"command": "npx"},
				},
			},
			want: false,
		},
		{
			name: "server with unknown type",
			doc: client.Document{
				"servers": map[string]any{
					"fs": map[string]any{"type": "websocket", "command": "npx"},
				},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Validate(tt.doc); got != tt.want {
				t.Errorf("Validate() = %v, want %v", got, tt.want)
			}
		})
	}
}
