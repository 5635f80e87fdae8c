// Package prompt provides interactive terminal prompts for destructive
// operations.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Confirm prints a question followed by a [y/N] marker and reads one line
// from r. Only "y" and "yes" (any case) count as consent; EOF and read
// errors decline.
func Confirm(r io.Reader, w io.Writer, format string, args ...any) bool {
	fmt.Fprintf(w, format, args...)
	fmt.Fprint(w, " [y/N]: ")

	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	}
	return false
}
