package configloader

import "github.com/yaklabco/gmi2html/pkg/config"

// merge returns base with the non-zero fields of override applied.
// Slices in override replace those in base when non-nil. Booleans can only
// be switched on this way; callers that need to switch one off set it on
// the merged result directly.
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Extensions != nil {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}
	if override.OutputDir != "" {
		result.OutputDir = override.OutputDir
	}
	if override.OutputExtension != "" {
		result.OutputExtension = override.OutputExtension
	}
	if override.Backups.Mode != "" {
		result.Backups.Mode = override.Backups.Mode
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	result.CloseContainers = result.CloseContainers || override.CloseContainers
	result.Backups.Enabled = result.Backups.Enabled || override.Backups.Enabled
	result.DryRun = result.DryRun || override.DryRun
	result.Force = result.Force || override.Force
	result.NoBackups = result.NoBackups || override.NoBackups

	return result
}
