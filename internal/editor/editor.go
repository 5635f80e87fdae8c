// Package editor launches the user's preferred text editor.
package editor

import (
	"os"
	"os/exec"

	"mcpman/internal/errors"
)

// Open runs the user's editor on path, attached to the current terminal,
// and blocks until it exits.
func Open(path string) error {
	cmd := exec.Command(detect(), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrap(err, "running editor")
	}
	return nil
}

// detect resolves the editor command: $EDITOR, then $VISUAL, then nano if
// installed, then vi.
func detect() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}
	return "vi"
}
