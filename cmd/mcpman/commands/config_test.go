package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"mcpman/cmd/mcpman/commands/flags"
)

// setupTestConfig points viper at a scratch config file so set operations
// never touch the real one.
func setupTestConfig(t *testing.T) string {
	t.Helper()
	viper.Reset()
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	viper.SetConfigFile(configFile)
	return configFile
}

func TestSplitCommaList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty string", "", nil},
		{"single client", "claude-code", []string{"claude-code"}},
		{"multiple clients", "claude-code,vscode", []string{"claude-code", "vscode"}},
		{"whitespace trimmed", " claude-code , vscode ", []string{"claude-code", "vscode"}},
		{"empty elements filtered", "claude-code,,vscode", []string{"claude-code", "vscode"}},
		{"only commas", ",,,", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCommaList(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitCommaList(%q) = %v, want %v", tt.input, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("splitCommaList(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestConfigGet(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		setupValue func()
		wantOutput string
	}{
		{
			name:       "unset key prints not set",
			key:        "nonexistent_key",
			setupValue: func() {},
			wantOutput: "not set\n",
		},
		{
			name: "scalar value prints the value",
			key:  "backup_retention",
			setupValue: func() {
				viper.Set("backup_retention", 7)
			},
			wantOutput: "7\n",
		},
		{
			name: "string value prints the value",
			key:  "database_path",
			setupValue: func() {
				viper.Set("database_path", "/tmp/x.db")
			},
			wantOutput: "/tmp/x.db\n",
		},
		{
			name: "array value prints one per line",
			key:  "default_clients",
			setupValue: func() {
				viper.Set("default_clients", []string{"claude-code", "vscode"})
			},
			wantOutput: "claude-code\nvscode\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			tt.setupValue()

			var buf bytes.Buffer
			if err := runConfigGetWithWriter(tt.key, &buf); err != nil {
				t.Fatalf("runConfigGetWithWriter() error = %v", err)
			}
			if got := buf.String(); got != tt.wantOutput {
				t.Errorf("output = %q, want %q", got, tt.wantOutput)
			}
		})
	}
}

func TestConfigSet(t *testing.T) {
	t.Run("backup_retention integer", func(t *testing.T) {
		configFile := setupTestConfig(t)

		var buf bytes.Buffer
		if err := runConfigSetWithWriter("backup_retention", "7", &buf); err != nil {
			t.Fatalf("runConfigSetWithWriter() error = %v", err)
		}
		if viper.GetInt("backup_retention") != 7 {
			t.Errorf("backup_retention = %d, want 7", viper.GetInt("backup_retention"))
		}
		if !strings.Contains(buf.String(), "Set backup_retention = 7") {
			t.Error("output should confirm the set")
		}

		data, err := os.ReadFile(configFile)
		if err != nil {
			t.Fatalf("config file should be written: %v", err)
		}
		if !strings.Contains(string(data), "backup_retention: 7") {
			t.Errorf("config file should persist the value, got:\n%s", data)
		}
	})

	t.Run("backup_retention rejects non-integer", func(t *testing.T) {
		setupTestConfig(t)

		var buf bytes.Buffer
		err := runConfigSetWithWriter("backup_retention", "many", &buf)
		if err == nil {
			t.Fatal("expected error for non-integer value")
		}
		if !strings.Contains(err.Error(), "integer") {
			t.Errorf("error should mention the type, got %v", err)
		}
	})

	t.Run("database_path", func(t *testing.T) {
		configFile := setupTestConfig(t)

		var buf bytes.Buffer
		if err := runConfigSetWithWriter("database_path", "/tmp/other.db", &buf); err != nil {
			t.Fatalf("runConfigSetWithWriter() error = %v", err)
		}
		data, err := os.ReadFile(configFile)
		if err != nil {
			t.Fatalf("config file should be written: %v", err)
		}
		if !strings.Contains(string(data), "/tmp/other.db") {
			t.Error("config file should persist the path")
		}
	})

	t.Run("default_clients validated", func(t *testing.T) {
		setupTestConfig(t)
		flags.SetProjectRoot(t.TempDir())

		var buf bytes.Buffer
		if err := runConfigSetWithWriter("default_clients", "claude-code,vscode", &buf); err != nil {
			t.Fatalf("runConfigSetWithWriter() error = %v", err)
		}
		clients := viper.GetStringSlice("default_clients")
		if len(clients) != 2 || clients[0] != "claude-code" || clients[1] != "vscode" {
			t.Errorf("default_clients = %v, want [claude-code vscode]", clients)
		}
	})

	t.Run("default_clients rejects unknown names", func(t *testing.T) {
		setupTestConfig(t)
		flags.SetProjectRoot(t.TempDir())

		var buf bytes.Buffer
		err := runConfigSetWithWriter("default_clients", "claude-code,cursor", &buf)
		if err == nil {
			t.Fatal("expected error for unknown client")
		}
		if !strings.Contains(err.Error(), "cursor") {
			t.Errorf("error should name the unknown client, got %v", err)
		}
	})

	t.Run("default_clients rejects empty list", func(t *testing.T) {
		setupTestConfig(t)

		var buf bytes.Buffer
		if err := runConfigSetWithWriter("default_clients", ",,,", &buf); err == nil {
			t.Fatal("expected error for empty client list")
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		setupTestConfig(t)

		var buf bytes.Buffer
		err := runConfigSetWithWriter("favorite_color", "green", &buf)
		if err == nil {
			t.Fatal("expected error for unknown key")
		}
		if !strings.Contains(err.Error(), "unknown config key") {
			t.Errorf("error should name the problem, got %v", err)
		}
	})
}

func TestConfigList(t *testing.T) {
	setupTestConfig(t)
	viper.Set("version", 1)
	viper.Set("database_path", "/tmp/x.db")
	viper.Set("backup_retention", 4)
	viper.Set("default_clients", []string{"vscode"})

	var buf bytes.Buffer
	if err := runConfigListWithWriter(&buf); err != nil {
		t.Fatalf("runConfigListWithWriter() error = %v", err)
	}

	var got map[string]any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output should be valid YAML: %v", err)
	}
	if got["version"] != 1 {
		t.Errorf("version = %v, want 1", got["version"])
	}
	if got["database_path"] != "/tmp/x.db" {
		t.Errorf("database_path = %v, want /tmp/x.db", got["database_path"])
	}
}

func TestConfigValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		setupTestConfig(t)
		viper.Set("version", 1)
		viper.Set("backup_retention", 3)

		var buf bytes.Buffer
		if err := runConfigValidateWithWriter(&buf); err != nil {
			t.Fatalf("runConfigValidateWithWriter() error = %v", err)
		}
		if !strings.Contains(buf.String(), "Configuration is valid") {
			t.Error("output should confirm validity")
		}
	})

	t.Run("invalid", func(t *testing.T) {
		setupTestConfig(t)
		viper.Set("version", 0)
		viper.Set("backup_retention", -1)

		var buf bytes.Buffer
		err := runConfigValidateWithWriter(&buf)
		if err == nil {
			t.Fatal("expected error for invalid configuration")
		}
		if !strings.Contains(err.Error(), "2 validation error(s)") {
			t.Errorf("error should count the problems, got %v", err)
		}
		if !strings.Contains(buf.String(), "version must be >= 1") {
			t.Error("output should list each validation error")
		}
	})
}
