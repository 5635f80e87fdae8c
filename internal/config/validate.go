package config

import (
	"errors"
	"path/filepath"
	"strings"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidRetention indicates backup_retention is negative.
	ErrInvalidRetention = errors.New("backup_retention must be >= 0")

	// ErrInvalidClient indicates a malformed client name.
	ErrInvalidClient = errors.New("invalid client name")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	// Version must be >= 1
	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.BackupRetention < 0 {
		errs = append(errs, ErrInvalidRetention)
	}

	// Client names are registry keys; whether they are actually registered
	// is checked at the CLI layer, only the shape is checked here.
	for _, client := range cfg.DefaultClients {
		if strings.TrimSpace(client) == "" || strings.ContainsAny(client, " \t\n") {
			errs = append(errs, &ClientError{
				Client: client,
				Err:    ErrInvalidClient,
			})
		}
	}

	if cfg.DatabasePath != "" {
		if err := validatePath(cfg.DatabasePath); err != nil {
			errs = append(errs, &PathError{
				Field: "database_path",
				Path:  cfg.DatabasePath,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// ClientError represents an error for a specific client name.
type ClientError struct {
	Client string
	Err    error
}

func (e *ClientError) Error() string {
	return e.Err.Error() + ": " + e.Client
}

func (e *ClientError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
