// Package config defines core configuration types for gmi2html.
// These types are pure data structures with no dependency on how they are loaded.
package config

// OutputFormat specifies the format of the run report.
type OutputFormat string

const (
	FormatText    OutputFormat = "text"
	FormatJSON    OutputFormat = "json"
	FormatSummary OutputFormat = "summary"
)

// BackupsConfig controls backups of existing output files before they are overwritten.
type BackupsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // "sidecar" or "none"
}

// Default values.
const (
	DefaultOutputExtension = ".html"
	DefaultBackupMode      = "sidecar"
)

// DefaultExtensions returns the input file extensions converted by default.
func DefaultExtensions() []string {
	return []string{".gmi", ".gemini"}
}

// Config is the root configuration structure for gmi2html.
type Config struct {
	// Extensions lists the input file extensions (with leading dot) to convert.
	Extensions []string `yaml:"extensions"`

	// Ignore contains glob patterns for files to ignore.
	Ignore []string `yaml:"ignore"`

	// OutputDir relocates output files under this directory, mirroring the
	// input tree. Empty writes each output next to its input.
	OutputDir string `yaml:"output_dir"`

	// OutputExtension replaces the input extension on output files.
	OutputExtension string `yaml:"output_extension"`

	// CloseContainers closes a list, quote or preformatted block left open
	// at end of input.
	CloseContainers bool `yaml:"close_containers"`

	// Backups configures backups of output files that are about to be replaced.
	Backups BackupsConfig `yaml:"backups"`

	// CLI-level options (not persisted to config files).

	// DryRun converts without writing any output file.
	DryRun bool `yaml:"-"`

	// Force rewrites output files even when their content is unchanged.
	Force bool `yaml:"-"`

	// Format specifies the report format.
	Format OutputFormat `yaml:"-"`

	// Jobs specifies the number of parallel workers.
	Jobs int `yaml:"-"`

	// NoBackups disables backup creation for this run.
	NoBackups bool `yaml:"-"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Extensions:      DefaultExtensions(),
		OutputExtension: DefaultOutputExtension,
		Backups: BackupsConfig{
			Enabled: false,
			Mode:    DefaultBackupMode,
		},
		Format: FormatText,
		Jobs:   0, // 0 means use GOMAXPROCS
	}
}

// BackupsEnabled reports whether backups should be written for this run.
func (c *Config) BackupsEnabled() bool {
	if c == nil || c.NoBackups {
		return false
	}
	return c.Backups.Enabled && c.Backups.Mode != "none"
}
