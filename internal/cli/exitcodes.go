package cli

import (
	"errors"
	"io/fs"

	"github.com/yaklabco/gmi2html/pkg/fsutil"
)

// Exit codes for gmi2html.
const (
	// ExitSuccess indicates every input was converted.
	ExitSuccess = 0

	// ExitConversionFailed indicates at least one file failed to convert.
	ExitConversionFailed = 1

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// UsageError wraps errors caused by invalid flags or arguments.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// ConfigError wraps errors raised while loading configuration.
type ConfigError struct {
	Err error
}

func (e *ConfigError) Error() string { return "load configuration: " + e.Err.Error() }

func (e *ConfigError) Unwrap() error { return e.Err }

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	var usageErr *UsageError
	var configErr *ConfigError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConversionFailed):
		return ExitConversionFailed
	case errors.As(err, &usageErr):
		return ExitInvalidUsage
	case errors.As(err, &configErr):
		return ExitConfigError
	case isIOError(err):
		return ExitIOError
	default:
		return ExitInternalError
	}
}

func isIOError(err error) bool {
	var pathErr *fs.PathError
	return errors.As(err, &pathErr) ||
		errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrPermission) ||
		errors.Is(err, fsutil.ErrNotFound) ||
		errors.Is(err, fsutil.ErrPermissionDenied) ||
		errors.Is(err, fsutil.ErrIsDirectory)
}
