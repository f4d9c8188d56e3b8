package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/gmi2html/internal/ui/pretty"
	"github.com/yaklabco/gmi2html/pkg/runner"
)

// SummaryReporter writes a per-file table followed by a statistics block.
type SummaryReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewSummaryReporter creates a new summary reporter.
func NewSummaryReporter(opts Options) *SummaryReporter {
	return &SummaryReporter{
		opts:   opts,
		styles: pretty.NewStyles(pretty.IsColorEnabled(opts.Color, opts.Writer)),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *SummaryReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	if result == nil {
		result = &runner.Result{}
	}

	fmt.Fprint(r.bw, pretty.NewFileTable(r.styles, r.opts.WorkingDir).Format(result))

	for _, file := range result.Files {
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(relativePath(r.opts.WorkingDir, file.Path)),
				r.styles.Error.Render(file.Error.Error()))
		}
	}

	fmt.Fprint(r.bw, r.styles.FormatSummary(result.Stats, result.DryRun))
	return nil
}
