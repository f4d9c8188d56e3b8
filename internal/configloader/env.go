package configloader

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/yaklabco/gmi2html/pkg/config"
)

// EnvPrefix prefixes every environment variable read by LoadFromEnv.
const EnvPrefix = "GMI2HTML_"

type envVar struct {
	help  string
	apply func(cfg *config.Config, value string) error
}

func stringVar(help string, set func(*config.Config, string)) envVar {
	return envVar{help: help, apply: func(cfg *config.Config, value string) error {
		set(cfg, value)
		return nil
	}}
}

func boolVar(help string, set func(*config.Config, bool)) envVar {
	return envVar{help: help, apply: func(cfg *config.Config, value string) error {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean %q (expected true/false/1/0)", value)
		}
		set(cfg, b)
		return nil
	}}
}

func intVar(help string, set func(*config.Config, int)) envVar {
	return envVar{help: help, apply: func(cfg *config.Config, value string) error {
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer %q", value)
		}
		set(cfg, i)
		return nil
	}}
}

func listVar(help string, set func(*config.Config, []string)) envVar {
	return envVar{help: help, apply: func(cfg *config.Config, value string) error {
		set(cfg, parseList(value))
		return nil
	}}
}

// envVars maps variable names (without prefix) to config setters.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envVars = map[string]envVar{
	"EXTENSIONS": listVar("Comma-separated input extensions",
		func(c *config.Config, v []string) { c.Extensions = v }),
	"IGNORE": listVar("Comma-separated ignore globs",
		func(c *config.Config, v []string) { c.Ignore = v }),
	"OUTPUT_DIR": stringVar("Directory that receives converted files",
		func(c *config.Config, v string) { c.OutputDir = v }),
	"OUTPUT_EXTENSION": stringVar("Extension of converted files",
		func(c *config.Config, v string) { c.OutputExtension = v }),
	"CLOSE_CONTAINERS": boolVar("Close a container left open at end of input",
		func(c *config.Config, v bool) { c.CloseContainers = v }),
	"BACKUPS_ENABLED": boolVar("Back up output files before replacing them",
		func(c *config.Config, v bool) { c.Backups.Enabled = v }),
	"BACKUPS_MODE": stringVar("Backup mode: sidecar or none",
		func(c *config.Config, v string) { c.Backups.Mode = v }),
	"NO_BACKUPS": boolVar("Disable backups for this run",
		func(c *config.Config, v bool) { c.NoBackups = v }),
	"DRY_RUN": boolVar("Convert without writing files",
		func(c *config.Config, v bool) { c.DryRun = v }),
	"FORCE": boolVar("Rewrite output even when unchanged",
		func(c *config.Config, v bool) { c.Force = v }),
	"FORMAT": stringVar("Report format: text, json or summary",
		func(c *config.Config, v string) { c.Format = config.OutputFormat(v) }),
	"JOBS": intVar("Number of parallel workers (0 = auto)",
		func(c *config.Config, v int) { c.Jobs = v }),
}

// LoadFromEnv applies GMI2HTML_* environment variables to cfg. Unset and
// empty variables are ignored.
func LoadFromEnv(cfg *config.Config) error {
	return loadFromLookup(cfg, os.LookupEnv)
}

func loadFromLookup(cfg *config.Config, lookup func(string) (string, bool)) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range sortedEnvNames() {
		name := EnvPrefix + suffix
		value, ok := lookup(name)
		if !ok || value == "" {
			continue
		}
		if err := envVars[suffix].apply(cfg, value); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	return nil
}

// ListEnvVars returns every supported variable with a short description.
func ListEnvVars() map[string]string {
	vars := make(map[string]string, len(envVars))
	for suffix, v := range envVars {
		vars[EnvPrefix+suffix] = v.help
	}
	return vars
}

func sortedEnvNames() []string {
	names := make([]string, 0, len(envVars))
	for name := range envVars {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func parseList(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
