package backup

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"mcpman/internal/backup"
	"mcpman/internal/errors"
)

func TestRestoreCommand_Confirmed(t *testing.T) {
	home := setupBackupTest(t)
	configPath := writeClaudeCodeConfig(t, home)
	writeBackupFixture(t, configPath, "20260101_120000", "older config")

	var buf bytes.Buffer
	err := runRestoreWithIO([]string{"claude-code"}, &buf, strings.NewReader("y\n"))
	if err != nil {
		t.Fatalf("runRestoreWithIO() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "[y/N]") {
		t.Errorf("output should contain the confirmation prompt, got %q", out)
	}
	if !strings.Contains(out, "Restored") || !strings.Contains(out, "20260101_120000") {
		t.Errorf("output should confirm the restore, got %q", out)
	}
	if !strings.Contains(out, "The previous config was backed up first") {
		t.Error("output should mention the pre-restore backup")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if string(data) != "older config" {
		t.Errorf("config = %q, want the restored content", string(data))
	}

	// The config that was overwritten is itself backed up.
	entries, err := backup.List(configPath)
	if err != nil {
		t.Fatalf("listing backups: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("expected 2 backups after restore, got %d", len(entries))
	}
}

func TestRestoreCommand_Declined(t *testing.T) {
	home := setupBackupTest(t)
	configPath := writeClaudeCodeConfig(t, home)
	original, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	writeBackupFixture(t, configPath, "20260101_120000", "older config")

	var buf bytes.Buffer
	if err := runRestoreWithIO([]string{"claude-code"}, &buf, strings.NewReader("n\n")); err != nil {
		t.Fatalf("runRestoreWithIO() error = %v", err)
	}
	if !strings.Contains(buf.String(), "restore cancelled") {
		t.Errorf("output = %q, want cancellation notice", buf.String())
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if !bytes.Equal(data, original) {
		t.Error("declining should leave the config untouched")
	}
}

func TestRestoreCommand_Force(t *testing.T) {
	home := setupBackupTest(t)
	configPath := writeClaudeCodeConfig(t, home)
	writeBackupFixture(t, configPath, "20260101_120000", "older config")
	restoreForce = true

	var buf bytes.Buffer
	err := runRestoreWithIO([]string{"claude-code"}, &buf, strings.NewReader(""))
	if err != nil {
		t.Fatalf("runRestoreWithIO() error = %v", err)
	}
	if strings.Contains(buf.String(), "[y/N]") {
		t.Error("--force should skip the confirmation prompt")
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if string(data) != "older config" {
		t.Errorf("config = %q, want the restored content", string(data))
	}
}

func TestRestoreCommand_SpecificID(t *testing.T) {
	home := setupBackupTest(t)
	configPath := writeClaudeCodeConfig(t, home)
	writeBackupFixture(t, configPath, "20260101_120000", "first")
	writeBackupFixture(t, configPath, "20260102_120000", "second")
	restoreForce = true

	var buf bytes.Buffer
	err := runRestoreWithIO([]string{"claude-code", "20260101_120000"}, &buf, strings.NewReader(""))
	if err != nil {
		t.Fatalf("runRestoreWithIO() error = %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("reading config: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("config = %q, want the older backup, not the newest", string(data))
	}
}

func TestRestoreCommand_UnknownID(t *testing.T) {
	home := setupBackupTest(t)
	configPath := writeClaudeCodeConfig(t, home)
	writeBackupFixture(t, configPath, "20260101_120000", "first")

	var buf bytes.Buffer
	err := runRestoreWithIO([]string{"claude-code", "20991231_000000"}, &buf, strings.NewReader(""))
	if err == nil {
		t.Fatal("expected an error for an unknown backup ID")
	}
	if !errors.Is(err, backup.ErrBackupNotFound) {
		t.Errorf("error = %v, want ErrBackupNotFound", err)
	}
	if !strings.Contains(err.Error(), "mcpman backup list --client claude-code") {
		t.Errorf("error should point at the list command, got %v", err)
	}
}

func TestRestoreCommand_NoBackups(t *testing.T) {
	home := setupBackupTest(t)
	writeClaudeCodeConfig(t, home)

	var buf bytes.Buffer
	err := runRestoreWithIO([]string{"claude-code"}, &buf, strings.NewReader(""))
	if err == nil {
		t.Fatal("expected an error when no backups exist")
	}
	if !errors.Is(err, backup.ErrNoBackupsFound) {
		t.Errorf("error = %v, want ErrNoBackupsFound", err)
	}
}
