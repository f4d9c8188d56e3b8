package runner

import (
	"sort"

	"github.com/yaklabco/gmi2html/pkg/gemtext"
)

// FileOutcome describes what happened to a single input file.
type FileOutcome struct {
	// Path is the input file.
	Path string `json:"path"`

	// OutputPath is where the HTML was (or would be) written.
	OutputPath string `json:"output"`

	// InputLines and OutputLines count lines read and produced.
	InputLines  int `json:"inputLines"`
	OutputLines int `json:"outputLines"`

	// Written is set when the output file was created or replaced.
	Written bool `json:"written"`

	// Unchanged is set when the existing output already matched.
	Unchanged bool `json:"unchanged,omitempty"`

	// BackupPath is set when an existing output was backed up first.
	BackupPath string `json:"backup,omitempty"`

	// Outline describes the input document. Nil when the file failed.
	Outline *gemtext.Outline `json:"outline,omitempty"`

	// Languages holds the detected language of each preformatted block,
	// in document order.
	Languages []string `json:"languages,omitempty"`

	// OpenContainer names the container left open at end of input, if any.
	OpenContainer string `json:"openContainer,omitempty"`

	// Error is set if the file could not be converted.
	Error error `json:"-"`
}

// Stats captures aggregate information about a run.
type Stats struct {
	FilesDiscovered int `json:"filesDiscovered"`
	FilesConverted  int `json:"filesConverted"`
	FilesWritten    int `json:"filesWritten"`
	FilesUnchanged  int `json:"filesUnchanged"`
	FilesErrored    int `json:"filesErrored"`

	InputLines  int `json:"inputLines"`
	OutputLines int `json:"outputLines"`

	Links    int `json:"links"`
	Headings int `json:"headings"`
	Blocks   int `json:"blocks"`

	// BlocksByLanguage counts preformatted blocks per detected language.
	BlocksByLanguage map[string]int `json:"blocksByLanguage"`
}

// Result is the overall runner result.
type Result struct {
	// Files are ordered by input path.
	Files []FileOutcome

	Stats Stats

	// DryRun is set when no output was written by design.
	DryRun bool
}

// HasFailures reports whether any file failed to convert.
func (r *Result) HasFailures() bool {
	if r == nil {
		return false
	}
	return r.Stats.FilesErrored > 0
}

// Languages returns the detected languages sorted by descending block count,
// then by name.
func (s Stats) Languages() []string {
	langs := make([]string, 0, len(s.BlocksByLanguage))
	for lang := range s.BlocksByLanguage {
		langs = append(langs, lang)
	}
	sort.Slice(langs, func(i, j int) bool {
		ci, cj := s.BlocksByLanguage[langs[i]], s.BlocksByLanguage[langs[j]]
		if ci != cj {
			return ci > cj
		}
		return langs[i] < langs[j]
	})
	return langs
}

func newStats() Stats {
	return Stats{BlocksByLanguage: make(map[string]int)}
}

func (r *Result) accumulate(outcome FileOutcome) {
	r.Files = append(r.Files, outcome)

	if outcome.Error != nil {
		r.Stats.FilesErrored++
		return
	}

	r.Stats.FilesConverted++
	if outcome.Written {
		r.Stats.FilesWritten++
	}
	if outcome.Unchanged {
		r.Stats.FilesUnchanged++
	}

	r.Stats.InputLines += outcome.InputLines
	r.Stats.OutputLines += outcome.OutputLines

	if outcome.Outline != nil {
		r.Stats.Links += len(outcome.Outline.Links)
		r.Stats.Headings += len(outcome.Outline.Headings)
		r.Stats.Blocks += len(outcome.Outline.Blocks)
	}
	for _, lang := range outcome.Languages {
		r.Stats.BlocksByLanguage[lang]++
	}
}
