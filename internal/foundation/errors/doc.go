// Package errors provides the classified error primitives used across sitenav.
//
// Key features:
//   - ErrorCategory: broad classification (config, validation, docs, git, export, ...)
//   - ErrorSeverity: impact level (fatal, error, warning, info)
//   - RetryStrategy: whether re-running the command can help
//   - ClassifiedError: structured error with category, severity, and context
//   - ErrorBuilder: fluent API for creating classified errors
//   - CLIErrorAdapter: exit codes and user-facing formatting
//
// Example usage:
//
//	err := errors.ValidationError("nav entry has no label").
//		WithContext("field", "nav[2]").
//		Build()
package errors
