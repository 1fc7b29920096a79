package errors

import (
	"slices"
	"strings"
	"unicode"
)

// MaxWorkers bounds the worker pool size accepted from configuration.
const MaxWorkers = 4096

// ValidateLimit validates a configured capacity bound.
// Zero means "use the default" and is accepted; negative values are rejected.
func ValidateLimit(name string, value int) error {
	if value < 0 {
		return New(ErrCodeInvalidConfig, "%s must not be negative (got %d)", name, value)
	}
	return nil
}

// ValidateWorkers validates a worker pool size.
// Zero selects all available processing units.
func ValidateWorkers(n int) error {
	if n < 0 {
		return New(ErrCodeInvalidConfig, "workers must not be negative (got %d)", n)
	}
	if n > MaxWorkers {
		return New(ErrCodeInvalidConfig, "workers too large (max %d, got %d)", MaxWorkers, n)
	}
	return nil
}

// ValidateFormat checks that format is one of valid (case-sensitive).
func ValidateFormat(format string, valid []string) error {
	if format == "" {
		return New(ErrCodeInvalidFormat, "format cannot be empty")
	}
	if !slices.Contains(valid, format) {
		return New(ErrCodeInvalidFormat, "unsupported format %q (want one of %s)", format, strings.Join(valid, ", "))
	}
	return nil
}

// ValidatePath validates a word list or output path.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 4096 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidConfig, "path cannot be empty")
	}

	const maxPathLength = 4096
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidConfig, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidConfig, "path contains invalid characters")
		}
	}

	return nil
}
