package pretty_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gmi2html/internal/ui/pretty"
	"github.com/yaklabco/gmi2html/pkg/gemtext"
	"github.com/yaklabco/gmi2html/pkg/runner"
)

func sampleStats() runner.Stats {
	return runner.Stats{
		FilesDiscovered:  3,
		FilesConverted:   3,
		FilesWritten:     2,
		FilesUnchanged:   1,
		InputLines:       120,
		OutputLines:      131,
		Links:            14,
		Headings:         6,
		Blocks:           3,
		BlocksByLanguage: map[string]int{"go": 2, "text": 1},
	}
}

func TestFormatSummaryOneLine(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	tests := []struct {
		name   string
		stats  runner.Stats
		dryRun bool
		want   string
	}{
		{
			name:  "written",
			stats: sampleStats(),
			want:  "Converted 3 files (2 written, 1 unchanged), 120 lines\n",
		},
		{
			name:   "dry run",
			stats:  sampleStats(),
			dryRun: true,
			want:   "Would convert 3 files, 120 lines\n",
		},
		{
			name:  "failures",
			stats: runner.Stats{FilesDiscovered: 2, FilesConverted: 1, FilesWritten: 1, FilesErrored: 1, InputLines: 1},
			want:  "Converted 1 file (1 written), 1 line, 1 failed\n",
		},
		{
			name:  "nothing found",
			stats: runner.Stats{},
			want:  "No Gemtext files found\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, styles.FormatSummaryOneLine(tt.stats, tt.dryRun))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	t.Parallel()

	got := pretty.NewStyles(false).FormatSummary(sampleStats(), false)

	assert.Contains(t, got, "Summary")
	assert.Contains(t, got, "Files converted:   3")
	assert.Contains(t, got, "Files unchanged:   1")
	assert.Contains(t, got, "Links:             14")
	assert.Contains(t, got, "go:")
	assert.Contains(t, got, "Conversion complete")
	assert.NotContains(t, got, "Files failed")

	// Languages are listed by descending count.
	assert.Less(t, strings.Index(got, "go:"), strings.Index(got, "text:"))
}

func TestFormatSummary_DryRunAndFailures(t *testing.T) {
	t.Parallel()

	styles := pretty.NewStyles(false)

	dry := styles.FormatSummary(sampleStats(), true)
	assert.Contains(t, dry, "Dry run: nothing written")
	assert.NotContains(t, dry, "Files written")

	stats := sampleStats()
	stats.FilesErrored = 2
	failed := styles.FormatSummary(stats, false)
	assert.Contains(t, failed, "Files failed:      2")
	assert.Contains(t, failed, "Conversion finished with errors")
}

func TestFileTable(t *testing.T) {
	t.Parallel()

	outline := gemtext.Inspect([]string{"# Title", "=> /a A", "```", "x", "```"})
	result := &runner.Result{
		Files: []runner.FileOutcome{
			{Path: "/site/index.gmi", InputLines: 5, Outline: outline, Written: true},
			{Path: "/site/log/old.gmi", InputLines: 2, Outline: gemtext.Inspect([]string{"a", "b"}), Unchanged: true},
			{Path: "/site/broken.gmi", Error: assert.AnError},
		},
	}

	got := pretty.NewFileTable(pretty.NewStyles(false), "/site").Format(result)
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")

	assert.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "FILE"))
	assert.Contains(t, lines[2], "index.gmi")
	assert.True(t, strings.HasSuffix(lines[2], pretty.StatusWritten))
	assert.Contains(t, lines[3], "log/old.gmi")
	assert.True(t, strings.HasSuffix(lines[3], pretty.StatusUnchanged))
	assert.True(t, strings.HasSuffix(lines[4], pretty.StatusFailed))

	assert.Empty(t, pretty.NewFileTable(pretty.NewStyles(false), "").Format(&runner.Result{}))
}
