// Package logging provides structured logging for the mcpman CLI using slog.
//
// The package supports text and JSON output, a trace level below debug,
// and helpers for tests. The text handler masks attribute values that
// look like credentials, so server env maps can be logged as-is.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("deployed", "server", "github", "client", "claude-code")
//
// The root command stores the configured logger in the command context
// with [NewContext]; anything below retrieves it with [FromContext].
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
//
// # Quiet Mode
//
// Use [NewDiscard] when log output should be suppressed entirely:
//
//	logger := logging.NewDiscard()
package logging
