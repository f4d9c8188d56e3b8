package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gmi2html/internal/ui/pretty"
	"github.com/yaklabco/gmi2html/pkg/runner"
)

// TextReporter writes one line per file followed by a one-line summary.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(ctx context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	for _, file := range result.Files {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("report cancelled: %w", err)
		}
		if line := r.formatFile(file, result.DryRun); line != "" {
			fmt.Fprintln(r.bw, line)
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(result.Stats, result.DryRun))
	}

	return nil
}

// formatFile renders "in -> out" with an outcome marker. Unchanged files are
// only listed in verbose mode.
func (r *TextReporter) formatFile(file runner.FileOutcome, dryRun bool) string {
	in := r.styles.FilePath.Render(relativePath(r.opts.WorkingDir, file.Path))

	if file.Error != nil {
		return fmt.Sprintf("%s: %s", in, r.styles.Error.Render(fmt.Sprintf("error: %v", file.Error)))
	}

	var marker string
	switch {
	case dryRun:
		marker = r.styles.DryRun.Render("(dry run)")
	case file.Unchanged:
		if !r.opts.Verbose {
			return ""
		}
		marker = r.styles.Unchanged.Render("(unchanged)")
	default:
		marker = r.styles.Written.Render("(written)")
	}

	line := fmt.Sprintf("%s %s %s %s",
		in,
		r.styles.Arrow.Render("->"),
		relativePath(r.opts.WorkingDir, file.OutputPath),
		marker,
	)

	if file.OpenContainer != "" {
		line += " " + r.styles.Warning.Render(fmt.Sprintf("warning: <%s> left open", file.OpenContainer))
	}

	return line
}
