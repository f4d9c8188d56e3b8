package reporter

import (
	"io"
	"os"
)

// bufWriterSize is the buffer size for buffered output writers (64 KiB).
const bufWriterSize = 64 * 1024

// Options configures reporter behavior.
type Options struct {
	// Writer is the destination for the report (typically os.Stderr, so
	// stdout stays free for converted HTML).
	Writer io.Writer

	Format Format

	// Color is "auto" (default), "always" or "never".
	Color string

	// Compact disables JSON indentation.
	Compact bool

	// ShowSummary appends aggregate statistics to text output.
	ShowSummary bool

	// Verbose lists unchanged files in text output as well.
	Verbose bool

	// WorkingDir makes reported paths relative. Empty keeps them as-is.
	WorkingDir string
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Writer:      os.Stderr,
		Format:      FormatText,
		Color:       "auto",
		ShowSummary: true,
	}
}
