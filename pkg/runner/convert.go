package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/yaklabco/gmi2html/pkg/config"
	"github.com/yaklabco/gmi2html/pkg/fsutil"
	"github.com/yaklabco/gmi2html/pkg/gemtext"
	"github.com/yaklabco/gmi2html/pkg/langdetect"
)

// ErrOutputIsInput is reported for a file whose output path is the file itself.
var ErrOutputIsInput = errors.New("output would overwrite input")

// OutputPath returns the output location for input. The extension is
// replaced by the configured output extension. When an output directory is
// set, the input's path relative to workDir is recreated beneath it; inputs
// outside workDir keep only their base name.
func OutputPath(input, workDir string, cfg *config.Config) string {
	if cfg == nil {
		cfg = config.NewConfig()
	}

	ext := cfg.OutputExtension
	if ext == "" {
		ext = config.DefaultOutputExtension
	}
	out := strings.TrimSuffix(input, filepath.Ext(input)) + ext

	if cfg.OutputDir == "" {
		return out
	}

	outDir := cfg.OutputDir
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(workDir, outDir)
	}

	rel, err := filepath.Rel(workDir, out)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		rel = filepath.Base(out)
	}
	return filepath.Join(outDir, rel)
}

// convertFile converts one input file and, unless the run is a dry run,
// writes the result.
func (r *Runner) convertFile(ctx context.Context, path, workDir string, cfg *config.Config) FileOutcome {
	outcome := FileOutcome{
		Path:       path,
		OutputPath: OutputPath(path, workDir, cfg),
	}
	if filepath.Clean(outcome.OutputPath) == filepath.Clean(path) {
		outcome.Error = fmt.Errorf("%w: %s", ErrOutputIsInput, path)
		return outcome
	}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		outcome.Error = err
		return outcome
	}

	lines := gemtext.ReadLines(content)
	html := gemtext.Transcode(lines, gemtext.WithCloseContainers(cfg.CloseContainers))

	outcome.InputLines = len(lines)
	outcome.OutputLines = len(html)
	outcome.Outline = gemtext.Inspect(lines)
	if tag, ok := outcome.Outline.OpenContainer.ContainerTag(); ok {
		outcome.OpenContainer = tag
	}
	detect := r.Detect
	if detect == nil {
		detect = langdetect.Detect
	}
	for _, block := range outcome.Outline.Blocks {
		outcome.Languages = append(outcome.Languages, detect(block.AltText, []byte(block.Content())))
	}

	if cfg.DryRun {
		return outcome
	}

	output := gemtext.JoinLines(html)
	mode := info.Mode.Perm()
	backup := fsutil.BackupConfig{
		Enabled: cfg.BackupsEnabled(),
		Mode:    fsutil.BackupMode(cfg.Backups.Mode),
	}

	var written, backedUp bool
	if cfg.Force {
		backedUp, err = fsutil.CreateBackup(ctx, outcome.OutputPath, backup)
		if err != nil {
			outcome.Error = fmt.Errorf("backup %s: %w", outcome.OutputPath, err)
			return outcome
		}
		err = fsutil.WriteAtomic(ctx, outcome.OutputPath, output, mode)
		written = err == nil
	} else {
		written, backedUp, err = fsutil.WriteAtomicIfChanged(ctx, outcome.OutputPath, output, mode, backup)
	}

	if backedUp {
		outcome.BackupPath = fsutil.BackupPath(outcome.OutputPath, backup.Mode)
	}
	if err != nil {
		outcome.Error = err
		return outcome
	}
	outcome.Written = written
	outcome.Unchanged = !written

	return outcome
}
