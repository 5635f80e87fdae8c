package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"mcpman/internal/errors"
	"mcpman/internal/mcp"
	"mcpman/internal/redact"
)

// errPickCancelled reports that the user left the picker without choosing.
var errPickCancelled = errors.New("no server selected")

// pickServer lets the user fuzzy-pick one catalogue server.
func pickServer(servers []*mcp.Server) (*mcp.Server, error) {
	if len(servers) == 0 {
		return nil, errors.Wrap(errors.ErrNotFound, "catalogue is empty")
	}

	idx, err := fuzzyfinder.Find(
		servers,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", servers[i].Name, servers[i].Command)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return previewServer(servers[i])
		}),
	)
	if err != nil {
		if errors.Is(err, fuzzyfinder.ErrAbort) {
			return nil, errPickCancelled
		}
		return nil, errors.Wrap(err, "interactive selection failed")
	}
	return servers[idx], nil
}

// previewServer renders the picker preview pane for one server. Environment
// values are masked.
func previewServer(srv *mcp.Server) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", srv.Name)
	if srv.DisplayName != "" && srv.DisplayName != srv.Name {
		fmt.Fprintf(&b, "Display: %s\n", srv.DisplayName)
	}
	fmt.Fprintf(&b, "Transport: %s\n", srv.Transport)
	fmt.Fprintf(&b, "Command: %s\n", srv.Command)
	if len(srv.Args) > 0 {
		fmt.Fprintf(&b, "Args: %s\n", strings.Join(srv.Args, " "))
	}
	if len(srv.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(srv.Tags, ", "))
	}
	if len(srv.Env) > 0 {
		b.WriteString("Env:\n")
		masked := redact.Env(srv.Env)
		keys := make([]string, 0, len(masked))
		for k := range masked {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&b, "  %s=%s\n", k, masked[k])
		}
	}
	return b.String()
}
