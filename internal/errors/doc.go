// Package errors provides error handling conventions for the mcpman CLI.
//
// This package defines sentinel errors for common failure conditions,
// an ExitError type for CLI exit code handling, and exit code constants
// following standard Unix conventions. It also re-exports the
// cockroachdb/errors constructors (New, Wrap, Wrapf, ...) so the rest of
// the codebase imports a single errors package.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, mcperrors.ErrNotFound) {
//	    // handle not found case
//	}
//
// ErrConfigParse deserves a note: adapters attach it with [Wrapf] when a
// client configuration file exists but cannot be decoded, so the sync
// sweep can attribute the failure to one (client, scope) pair without
// aborting the rest.
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion for CLI applications. It supports error unwrapping via
// [errors.Unwrap] and [errors.As]:
//
//	err := mcperrors.NewUserError(mcperrors.ErrUnknownClient, "Run: mcpman clients")
//	var exitErr *mcperrors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
