package configloader

import (
	"fmt"
	"path"
	"strings"

	"github.com/yaklabco/gmi2html/pkg/config"
)

// ValidationError describes one invalid configuration value.
type ValidationError struct {
	// Field is the config key, e.g. "backups.mode" or "ignore[2]".
	Field string

	Value any

	Message string

	// FilePath is the config file that introduced the value, if known.
	FilePath string
}

func (e *ValidationError) Error() string {
	var parts []string
	if e.FilePath != "" {
		parts = append(parts, e.FilePath)
	}
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	parts = append(parts, e.Message)
	return strings.Join(parts, ": ")
}

// ValidationResult contains all validation findings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// Valid reports whether there are no errors.
func (r *ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

func (r *ValidationResult) fail(field string, value any, format string, args ...any) {
	r.Errors = append(r.Errors, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

func (r *ValidationResult) warn(field string, value any, format string, args ...any) {
	r.Warnings = append(r.Warnings, ValidationError{Field: field, Value: value, Message: fmt.Sprintf(format, args...)})
}

// Validate checks a fully resolved configuration for errors and warnings.
func Validate(cfg *config.Config) *ValidationResult {
	result := validateValues(cfg)
	if cfg != nil {
		checkOutputTarget(cfg, result)
	}
	return result
}

// checkOutputTarget rejects settings under which an output file would
// replace its own input.
func checkOutputTarget(cfg *config.Config, result *ValidationResult) {
	for _, ext := range cfg.Extensions {
		if !strings.EqualFold(ext, cfg.OutputExtension) {
			continue
		}
		if cfg.OutputDir == "" {
			result.fail("output_extension", cfg.OutputExtension,
				"output extension %q is also an input extension; set output_dir so sources are not overwritten", ext)
			continue
		}
		result.warn("output_extension", cfg.OutputExtension,
			"output extension %q is also an input extension; converted files will be picked up as input", ext)
	}
}

// validateValues checks each value on its own. Settings that only make
// sense together are left to Validate.
func validateValues(cfg *config.Config) *ValidationResult {
	result := &ValidationResult{}
	if cfg == nil {
		return result
	}

	if cfg.Format != "" && !IsValidFormat(cfg.Format) {
		result.fail("format", cfg.Format, "invalid format %q; must be one of: text, json, summary", cfg.Format)
	}

	if cfg.Jobs < 0 {
		result.fail("jobs", cfg.Jobs, "jobs must be >= 0 (0 means auto)")
	}

	if cfg.Backups.Mode != "" && !IsValidBackupMode(cfg.Backups.Mode) {
		result.fail("backups.mode", cfg.Backups.Mode,
			"invalid backup mode %q; must be one of: sidecar, none", cfg.Backups.Mode)
	}

	if len(cfg.Extensions) == 0 {
		result.fail("extensions", cfg.Extensions, "at least one input extension is required")
	}
	for i, ext := range cfg.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			result.fail(fmt.Sprintf("extensions[%d]", i), ext, "extension %q must start with a dot", ext)
		}
	}

	switch {
	case cfg.OutputExtension == "":
		result.fail("output_extension", cfg.OutputExtension, "output extension must not be empty")
	case !strings.HasPrefix(cfg.OutputExtension, "."):
		result.fail("output_extension", cfg.OutputExtension,
			"output extension %q must start with a dot", cfg.OutputExtension)
	}

	for i, pattern := range cfg.Ignore {
		if _, err := path.Match(pattern, ""); err != nil {
			result.fail(fmt.Sprintf("ignore[%d]", i), pattern, "invalid glob pattern: %v", err)
		}
	}

	return result
}

// ValidateWithFile checks the values of a partially loaded cfg and
// attributes every finding to filePath. Later layers may still change how
// values combine, so only Validate checks them together.
func ValidateWithFile(cfg *config.Config, filePath string) *ValidationResult {
	result := validateValues(cfg)
	for i := range result.Errors {
		result.Errors[i].FilePath = filePath
	}
	for i := range result.Warnings {
		result.Warnings[i].FilePath = filePath
	}
	return result
}

// IsValidFormat reports whether f names a report format.
func IsValidFormat(f config.OutputFormat) bool {
	switch f {
	case config.FormatText, config.FormatJSON, config.FormatSummary:
		return true
	default:
		return false
	}
}

// IsValidBackupMode reports whether mode names a backup mode.
func IsValidBackupMode(mode string) bool {
	return mode == "sidecar" || mode == "none"
}
