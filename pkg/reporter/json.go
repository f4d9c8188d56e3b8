package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/gmi2html/pkg/gemtext"
	"github.com/yaklabco/gmi2html/pkg/runner"
)

// JSONSchemaVersion identifies the layout of JSONOutput.
const JSONSchemaVersion = "1.0.0"

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string       `json:"version"`
	DryRun  bool         `json:"dryRun"`
	Files   []JSONFile   `json:"files"`
	Summary runner.Stats `json:"summary"`
}

// JSONFile describes one converted file.
type JSONFile struct {
	Path          string            `json:"path"`
	Output        string            `json:"output"`
	Status        string            `json:"status"`
	InputLines    int               `json:"inputLines"`
	OutputLines   int               `json:"outputLines"`
	Headings      []gemtext.Heading `json:"headings"`
	Links         []gemtext.LinkRef `json:"links"`
	Blocks        []JSONBlock       `json:"blocks"`
	States        map[string]int    `json:"states"`
	OpenContainer string            `json:"openContainer,omitempty"`
	Backup        string            `json:"backup,omitempty"`
	Error         string            `json:"error,omitempty"`
}

// JSONBlock describes a preformatted block.
type JSONBlock struct {
	Line         int    `json:"line"`
	AltText      string `json:"altText,omitempty"`
	Language     string `json:"language"`
	Lines        int    `json:"lines"`
	Unterminated bool   `json:"unterminated,omitempty"`
}

// Status values in JSONFile.Status.
const (
	StatusWritten   = "written"
	StatusUnchanged = "unchanged"
	StatusDryRun    = "dry-run"
	StatusFailed    = "failed"
)

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *runner.Result) (err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(r.buildOutput(result)); err != nil {
		return fmt.Errorf("encode JSON: %w", err)
	}
	return nil
}

func (r *JSONReporter) buildOutput(result *runner.Result) *JSONOutput {
	output := &JSONOutput{
		Version: JSONSchemaVersion,
		Files:   make([]JSONFile, 0),
		Summary: runner.Stats{BlocksByLanguage: map[string]int{}},
	}
	if result == nil {
		return output
	}

	output.DryRun = result.DryRun
	output.Summary = result.Stats
	if output.Summary.BlocksByLanguage == nil {
		output.Summary.BlocksByLanguage = map[string]int{}
	}

	for _, file := range result.Files {
		output.Files = append(output.Files, r.buildFile(file, result.DryRun))
	}
	return output
}

func (r *JSONReporter) buildFile(file runner.FileOutcome, dryRun bool) JSONFile {
	out := JSONFile{
		Path:          relativePath(r.opts.WorkingDir, file.Path),
		Output:        relativePath(r.opts.WorkingDir, file.OutputPath),
		InputLines:    file.InputLines,
		OutputLines:   file.OutputLines,
		Headings:      []gemtext.Heading{},
		Links:         []gemtext.LinkRef{},
		Blocks:        []JSONBlock{},
		States:        map[string]int{},
		OpenContainer: file.OpenContainer,
		Backup:        relativePath(r.opts.WorkingDir, file.BackupPath),
	}

	switch {
	case file.Error != nil:
		out.Status = StatusFailed
		out.Error = file.Error.Error()
	case dryRun:
		out.Status = StatusDryRun
	case file.Unchanged:
		out.Status = StatusUnchanged
	default:
		out.Status = StatusWritten
	}

	if file.Outline == nil {
		return out
	}

	for _, state := range gemtext.AllStates() {
		if n := file.Outline.Count(state); n > 0 {
			out.States[state.String()] = n
		}
	}
	out.Headings = append(out.Headings, file.Outline.Headings...)
	out.Links = append(out.Links, file.Outline.Links...)
	for i, block := range file.Outline.Blocks {
		lang := ""
		if i < len(file.Languages) {
			lang = file.Languages[i]
		}
		out.Blocks = append(out.Blocks, JSONBlock{
			Line:         block.Line,
			AltText:      block.AltText,
			Language:     lang,
			Lines:        len(block.Lines),
			Unterminated: block.Unterminated,
		})
	}

	return out
}
