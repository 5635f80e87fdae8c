package client

import (
	"sort"
	"sync"

	"mcpman/internal/errors"
)

// Sentinel errors for registry operations.
var (
	// ErrClientAlreadyRegistered is returned when attempting to register
	// an adapter under a name that is already in use.
	ErrClientAlreadyRegistered = errors.New("client already registered")

	// ErrInvalidClientName is returned when attempting to register an
	// adapter with an empty name.
	ErrInvalidClientName = errors.New("invalid client name")

	// ErrNilAdapter is returned when attempting to register a nil adapter.
	ErrNilAdapter = errors.New("adapter is nil")
)

// Registry manages adapter registration and lookup by client name.
// It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

// NewRegistry creates a new empty adapter registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[string]Adapter),
	}
}

// Register adds an adapter to the registry under its Name().
// Returns an error if:
//   - The adapter is nil
//   - The adapter's name is empty
//   - An adapter with the same name is already registered
func (r *Registry) Register(a Adapter) error {
	if a == nil {
		return ErrNilAdapter
	}

	name := a.Name()
	if name == "" {
		return ErrInvalidClientName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.adapters[name]; exists {
		return errors.Wrapf(ErrClientAlreadyRegistered, "%s", name)
	}

	r.adapters[name] = a
	return nil
}

// Get returns the adapter registered under name.
// Unrecognized names return an error classified as errors.ErrUnknownClient.
func (r *Registry) Get(name string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, exists := r.adapters[name]
	if !exists {
		return nil, errors.Wrapf(errors.ErrUnknownClient, "%s", name)
	}
	return a, nil
}

// Names returns all registered client names sorted alphabetically.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered adapters sorted by client name.
func (r *Registry) All() []Adapter {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.adapters))
	for name := range r.adapters {
		names = append(names, name)
	}
	sort.Strings(names)

	adapters := make([]Adapter, 0, len(names))
	for _, name := range names {
		adapters = append(adapters, r.adapters[name])
	}
	return adapters
}
