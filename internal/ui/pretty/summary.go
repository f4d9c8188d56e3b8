package pretty

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/yaklabco/gmi2html/pkg/runner"
)

const summaryDividerWidth = 40

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

// FormatSummaryOneLine formats run statistics as a single line, e.g.
// "Converted 3 files (2 written, 1 unchanged), 120 lines, 2 failed".
func (s *Styles) FormatSummaryOneLine(stats runner.Stats, dryRun bool) string {
	if stats.FilesDiscovered == 0 {
		return s.Dim.Render("No Gemtext files found") + "\n"
	}

	verb := "Converted"
	if dryRun {
		verb = "Would convert"
	}

	head := fmt.Sprintf("%s %d %s", verb, stats.FilesConverted, plural(stats.FilesConverted, "file", "files"))
	if stats.FilesErrored == 0 {
		head = s.Success.Render(head)
	}

	var detail []string
	if !dryRun {
		detail = append(detail, fmt.Sprintf("%d written", stats.FilesWritten))
		if stats.FilesUnchanged > 0 {
			detail = append(detail, fmt.Sprintf("%d unchanged", stats.FilesUnchanged))
		}
	}

	parts := []string{head}
	if len(detail) > 0 {
		parts[0] += s.Dim.Render(" (" + strings.Join(detail, ", ") + ")")
	}
	parts = append(parts, fmt.Sprintf("%d %s", stats.InputLines, plural(stats.InputLines, "line", "lines")))

	if stats.FilesErrored > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", stats.FilesErrored)))
	}

	return strings.Join(parts, ", ") + "\n"
}

// FormatSummary formats run statistics as a summary block.
func (s *Styles) FormatSummary(stats runner.Stats, dryRun bool) string {
	var b strings.Builder

	row := func(label string, value int) {
		b.WriteString(fmt.Sprintf("  %-19s", label+":") + s.SummaryValue.Render(strconv.Itoa(value)) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(s.SummaryTitle.Render("Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("-", summaryDividerWidth))
	b.WriteString("\n")

	row("Files found", stats.FilesDiscovered)
	row("Files converted", stats.FilesConverted)
	if !dryRun {
		row("Files written", stats.FilesWritten)
		if stats.FilesUnchanged > 0 {
			row("Files unchanged", stats.FilesUnchanged)
		}
	}
	if stats.FilesErrored > 0 {
		b.WriteString(fmt.Sprintf("  %-19s", "Files failed:") + s.Failure.Render(strconv.Itoa(stats.FilesErrored)) + "\n")
	}

	b.WriteString("\n")
	row("Lines in", stats.InputLines)
	row("Lines out", stats.OutputLines)
	row("Headings", stats.Headings)
	row("Links", stats.Links)
	row("Preformatted", stats.Blocks)

	for _, lang := range stats.Languages() {
		b.WriteString("    " + s.Language.Render(fmt.Sprintf("%-17s", lang+":")) +
			strconv.Itoa(stats.BlocksByLanguage[lang]) + "\n")
	}

	b.WriteString("\n")
	switch {
	case stats.FilesErrored > 0:
		b.WriteString(s.Failure.Render("Conversion finished with errors"))
	case dryRun:
		b.WriteString(s.DryRun.Render("Dry run: nothing written"))
	default:
		b.WriteString(s.Success.Render("Conversion complete"))
	}
	b.WriteString("\n")

	return b.String()
}
