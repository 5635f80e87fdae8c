package mcp

import (
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"mcpman/internal/errors"
)

// Transport type constants for MCP server communication.
const (
	// TransportStdio indicates local process communication via stdin/stdout.
	// This is the default transport.
	TransportStdio = "stdio"

	// TransportHTTP indicates remote server communication via streamable HTTP.
	TransportHTTP = "http"

	// TransportSSE indicates remote server communication via Server-Sent Events.
	TransportSSE = "sse"
)

// MaxNameLength is the longest allowed server name.
const MaxNameLength = 100

// namePattern restricts server names to characters that are safe as map keys
// in every supported client config format.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Server is a catalogue entry describing how to launch one MCP server.
// It is the common representation shared by the store, the reconciliation
// engine, and every client adapter.
type Server struct {
	// ID is an opaque unique identifier assigned at creation.
	ID string `json:"id" yaml:"id"`

	// Name is the unique human-chosen identifier. It is used as the map key
	// in client configuration files.
	Name string `json:"name" yaml:"name"`

	// DisplayName is a friendly label shown in listings. Defaults to a
	// title-cased transform of Name.
	DisplayName string `json:"displayName" yaml:"displayName"`

	// Command is the executable that launches the server.
	Command string `json:"command" yaml:"command"`

	// Args are command-line arguments passed to Command.
	Args []string `json:"args,omitempty" yaml:"args,omitempty"`

	// Env contains environment variables passed to the server process.
	Env map[string]string `json:"env,omitempty" yaml:"env,omitempty"`

	// Transport specifies the communication protocol: "stdio", "http" or "sse".
	Transport string `json:"transport" yaml:"transport"`

	// Tags are normalized (lowercase, trimmed, deduplicated) labels used for
	// catalogue filtering.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Metadata holds arbitrary user data the catalogue carries untouched.
	Metadata map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// CreatedAt is when the entry was added to the catalogue.
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`

	// UpdatedAt is when the entry was last modified.
	UpdatedAt time.Time `json:"updatedAt" yaml:"updatedAt"`
}

// Option customizes a Server during construction.
type Option func(*Server)

// WithDisplayName overrides the default title-cased display name.
func WithDisplayName(name string) Option {
	return func(s *Server) { s.DisplayName = name }
}

// WithArgs sets the command-line arguments.
func WithArgs(args ...string) Option {
	return func(s *Server) { s.Args = args }
}

// WithEnv sets the environment variables.
func WithEnv(env map[string]string) Option {
	return func(s *Server) { s.Env = env }
}

// WithTransport sets the transport protocol.
func WithTransport(transport string) Option {
	return func(s *Server) { s.Transport = transport }
}

// WithTags sets the catalogue tags.
func WithTags(tags ...string) Option {
	return func(s *Server) { s.Tags = tags }
}

// WithMetadata sets the opaque metadata map.
func WithMetadata(md map[string]any) Option {
	return func(s *Server) { s.Metadata = md }
}

// New creates a validated Server with a fresh ID and timestamps.
// The display name defaults to a title-cased transform of name, tags are
// normalized, and the transport defaults to stdio.
func New(name, command string, opts ...Option) (*Server, error) {
	now := time.Now().UTC()
	s := &Server{
		ID:        uuid.NewString(),
		Name:      name,
		Command:   command,
		Transport: TransportStdio,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Normalize fills derived fields: the default display name, normalized tags,
// and the default transport. It is idempotent.
func (s *Server) Normalize() {
	if s.DisplayName == "" {
		s.DisplayName = DisplayNameFor(s.Name)
	}
	if s.Transport == "" {
		s.Transport = TransportStdio
	}
	s.Tags = NormalizeTags(s.Tags)
}

// Validate reports whether the server satisfies the catalogue invariants:
// a non-empty well-formed name, a non-empty command, and a known transport.
func (s *Server) Validate() error {
	if err := ValidateName(s.Name); err != nil {
		return err
	}
	if strings.TrimSpace(s.Command) == "" {
		return errors.Wrapf(errors.ErrValidation, "server %q: command is required", s.Name)
	}
	switch s.Transport {
	case TransportStdio, TransportHTTP, TransportSSE:
	default:
		return errors.Wrapf(errors.ErrValidation, "server %q: unknown transport %q", s.Name, s.Transport)
	}
	return nil
}

// Touch updates the modification timestamp.
func (s *Server) Touch() {
	s.UpdatedAt = time.Now().UTC()
}

// ValidateName checks a server name against the catalogue naming rules:
// non-empty, at most MaxNameLength characters, and limited to letters,
// digits, hyphens, and underscores.
func ValidateName(name string) error {
	if name == "" {
		return errors.Wrap(errors.ErrValidation, "server name is required")
	}
	if len(name) > MaxNameLength {
		return errors.Wrapf(errors.ErrValidation, "server name exceeds %d characters", MaxNameLength)
	}
	if !namePattern.MatchString(name) {
		return errors.Wrapf(errors.ErrValidation,
			"server name %q may only contain letters, digits, hyphens, and underscores", name)
	}
	return nil
}

// ValidTransport reports whether transport is one of the known protocols.
func ValidTransport(transport string) bool {
	switch transport {
	case TransportStdio, TransportHTTP, TransportSSE:
		return true
	}
	return false
}

// NormalizeTags lowercases and trims tags, dropping blanks and duplicates.
// First occurrence order is preserved, making the transform idempotent.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// DisplayNameFor derives the default display name from a server name:
// hyphens and underscores become spaces and each word is capitalized.
// "fs_server" becomes "Fs Server".
func DisplayNameFor(name string) string {
	replaced := strings.NewReplacer("_", " ", "-", " ").Replace(name)
	words := strings.Fields(replaced)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// sensitiveKeywords flag environment variable names that likely hold
// credentials.
var sensitiveKeywords = []string{"key", "token", "secret", "password", "api"}

// SensitiveEnvKey reports whether an environment variable name looks like it
// holds a credential. The vscode adapter uses it to route values through
// prompted inputs instead of plain text, and the logging handler uses it to
// mask attribute values.
func SensitiveEnvKey(name string) bool {
	lower := strings.ToLower(name)
	for _, kw := range sensitiveKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
