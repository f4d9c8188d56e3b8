// Package runner discovers Gemtext files and converts them concurrently.
package runner

import "github.com/yaklabco/gmi2html/pkg/config"

// Options controls a multi-file conversion run.
type Options struct {
	// Paths are the user-specified files or directories. Defaults to ".".
	Paths []string

	// WorkingDir resolves relative Paths and anchors glob matching.
	// Empty means the process working directory.
	WorkingDir string

	// Extensions is the set of input extensions (with leading dot).
	// Empty means config.DefaultExtensions().
	Extensions []string

	// ExcludeGlobs skip matching files and directories. Patterns are matched
	// against slash-separated paths relative to WorkingDir, and "**" matches
	// any number of path segments.
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs is the maximum number of concurrent workers. 0 or negative means
	// runtime.GOMAXPROCS(0).
	Jobs int

	// Config is the resolved configuration for this run.
	Config *config.Config
}

func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return config.DefaultExtensions()
	}
	return o.Extensions
}

func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}

func (o Options) effectiveConfig() *config.Config {
	if o.Config == nil {
		return config.NewConfig()
	}
	return o.Config
}
