package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yaklabco/gmi2html/internal/configloader"
	"github.com/yaklabco/gmi2html/internal/logging"
	"github.com/yaklabco/gmi2html/pkg/config"
	"github.com/yaklabco/gmi2html/pkg/reporter"
	"github.com/yaklabco/gmi2html/pkg/runner"
)

// ErrConversionFailed is returned when at least one file failed to convert.
var ErrConversionFailed = errors.New("conversion failed")

type convertFlags struct {
	outputDir  string
	ext        string
	extensions []string
	ignore     []string
	jobs       int
	dryRun     bool
	format     string
	noBackups  bool
	force      bool
	verbose    bool
	compact    bool
}

func newConvertCommand() *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert [paths...]",
		Short: "Convert Gemtext files to HTML",
		Long:  convertLongDescription + environmentHelp(),
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
				return runStream(cmd)
			}
			return runConvert(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.outputDir, "output-dir", "o", "", "write output under this directory, mirroring the input tree")
	cmd.Flags().StringVar(&flags.ext, "ext", "", "extension of output files (default .html)")
	cmd.Flags().StringSliceVar(&flags.extensions, "input-ext", nil, "input extensions to convert (default .gmi,.gemini)")
	cmd.Flags().StringSliceVar(&flags.ignore, "ignore", nil, "glob patterns of files to skip")
	cmd.Flags().IntVarP(&flags.jobs, "jobs", "j", 0, "number of parallel workers (0 = GOMAXPROCS)")
	cmd.Flags().BoolVarP(&flags.dryRun, "dry-run", "n", false, "convert without writing files")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "", "report format: text, json, summary")
	cmd.Flags().BoolVar(&flags.noBackups, "no-backups", false, "do not back up output files before replacing them")
	cmd.Flags().BoolVar(&flags.force, "force", false, "rewrite output files even when unchanged")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "list unchanged files too")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "compact JSON report")

	return cmd
}

const convertLongDescription = `Convert Gemtext files to HTML.

Each input file is converted to a sibling with the output extension, or to
the same relative path under --output-dir. Directories are searched
recursively for .gmi and .gemini files, skipping hidden entries. Files
whose output is already up to date are left alone.

With no paths, or the single path "-", converts stdin to stdout.

Examples:
  gmi2html convert                      # Convert stdin to stdout
  gmi2html convert capsule/             # Convert a directory in place
  gmi2html convert -o public .          # Mirror the tree under public/
  gmi2html convert --dry-run -f json .  # Report what would happen`

// environmentHelp lists the GMI2HTML_* variables for the long description.
func environmentHelp() string {
	vars := configloader.ListEnvVars()
	names := make([]string, 0, len(vars))
	width := 0
	for name := range vars {
		names = append(names, name)
		width = max(width, len(name))
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("\n\nEnvironment:")
	for _, name := range names {
		fmt.Fprintf(&sb, "\n  %-*s  %s", width, name, vars[name])
	}
	return sb.String()
}

func runConvert(cmd *cobra.Command, args []string, flags *convertFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	cfg, err := loadConfig(ctx, cmd, &config.Config{
		Extensions:      flags.extensions,
		Ignore:          flags.ignore,
		OutputDir:       flags.outputDir,
		OutputExtension: flags.ext,
		DryRun:          flags.dryRun,
		Force:           flags.force,
		Format:          config.OutputFormat(flags.format),
		Jobs:            flags.jobs,
		NoBackups:       flags.noBackups,
	})
	if err != nil {
		return err
	}

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return &UsageError{Err: err}
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}

	runOpts := runner.Options{
		Paths:        args,
		WorkingDir:   workDir,
		Extensions:   cfg.Extensions,
		ExcludeGlobs: cfg.Ignore,
		Jobs:         cfg.Jobs,
		Config:       cfg,
	}

	logger.Debug("starting conversion",
		logging.FieldPaths, runOpts.Paths,
		logging.FieldWorkingDir, workDir,
		logging.FieldJobs, runOpts.Jobs,
		logging.FieldDryRun, cfg.DryRun,
	)

	result, err := runner.New().Run(ctx, runOpts)
	if err != nil {
		return fmt.Errorf("conversion run: %w", err)
	}

	for _, file := range result.Files {
		switch {
		case file.Error != nil:
			logger.Debug("file failed", logging.FieldPath, file.Path, logging.FieldError, file.Error)
		case file.BackupPath != "":
			logger.Debug("backed up output", logging.FieldOutput, file.OutputPath, logging.FieldBackup, file.BackupPath)
		}
	}

	colorMode, err := cmd.Flags().GetString("color")
	if err != nil {
		colorMode = "auto"
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      format,
		Color:       colorMode,
		Compact:     flags.compact,
		ShowSummary: true,
		Verbose:     flags.verbose,
		WorkingDir:  workDir,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	if err := rep.Report(ctx, result); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	logger.Debug("conversion finished",
		logging.FieldFilesDiscovered, result.Stats.FilesDiscovered,
		logging.FieldFilesConverted, result.Stats.FilesConverted,
		logging.FieldFilesWritten, result.Stats.FilesWritten,
		logging.FieldFilesErrored, result.Stats.FilesErrored,
	)

	if result.HasFailures() {
		return ErrConversionFailed
	}
	return nil
}
