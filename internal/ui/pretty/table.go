package pretty

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/yaklabco/gmi2html/pkg/runner"
)

const (
	tablePadding   = 2
	heavySeparator = "="
	lightSeparator = "-"
	minFileWidth   = 4
	maxFileWidth   = 60
)

// Status words shown in the STATUS column.
const (
	StatusWritten   = "written"
	StatusUnchanged = "unchanged"
	StatusDryRun    = "dry-run"
	StatusFailed    = "failed"
)

//nolint:gochecknoglobals // Read-only column headers.
var fileTableHeaders = []string{"FILE", "LINES", "LINKS", "HEADINGS", "BLOCKS", "STATUS"}

// FileTable renders one row per converted file.
type FileTable struct {
	styles  *Styles
	workDir string
}

// NewFileTable creates a FileTable that shows paths relative to workDir.
func NewFileTable(styles *Styles, workDir string) *FileTable {
	return &FileTable{styles: styles, workDir: workDir}
}

// Format renders result as a table, or "" when there are no files.
func (t *FileTable) Format(result *runner.Result) string {
	if result == nil || len(result.Files) == 0 {
		return ""
	}

	rows := make([][]string, 0, len(result.Files))
	for _, file := range result.Files {
		rows = append(rows, t.cells(file, result.DryRun))
	}

	widths := make([]int, len(fileTableHeaders))
	for i, h := range fileTableHeaders {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}
	widths[0] = min(max(widths[0], minFileWidth), maxFileWidth)

	total := 0
	for _, w := range widths {
		total += w + tablePadding
	}

	var b strings.Builder
	b.WriteString(t.line(fileTableHeaders, widths, func(int, string) lipgloss.Style { return t.styles.TableHeader }))
	b.WriteString(t.styles.TableSeparator.Render(strings.Repeat(heavySeparator, total)) + "\n")
	for _, row := range rows {
		b.WriteString(t.line(row, widths, t.cellStyle))
	}
	b.WriteString(t.styles.TableSeparator.Render(strings.Repeat(lightSeparator, total)) + "\n")

	return b.String()
}

func (t *FileTable) cells(file runner.FileOutcome, dryRun bool) []string {
	status := StatusWritten
	switch {
	case file.Error != nil:
		status = StatusFailed
	case dryRun:
		status = StatusDryRun
	case file.Unchanged:
		status = StatusUnchanged
	}

	links, headings, blocks := "-", "-", "-"
	if file.Outline != nil {
		links = strconv.Itoa(len(file.Outline.Links))
		headings = strconv.Itoa(len(file.Outline.Headings))
		blocks = strconv.Itoa(len(file.Outline.Blocks))
	}

	return []string{
		truncatePath(t.relative(file.Path), maxFileWidth),
		strconv.Itoa(file.InputLines),
		links,
		headings,
		blocks,
		status,
	}
}

func (t *FileTable) cellStyle(col int, cell string) lipgloss.Style {
	if col == 0 {
		return t.styles.FilePath
	}
	if col != len(fileTableHeaders)-1 {
		return t.styles.SummaryValue
	}
	switch cell {
	case StatusFailed:
		return t.styles.Failure
	case StatusUnchanged:
		return t.styles.Unchanged
	case StatusDryRun:
		return t.styles.DryRun
	default:
		return t.styles.Written
	}
}

func (t *FileTable) line(cells []string, widths []int, style func(int, string) lipgloss.Style) string {
	var b strings.Builder
	for i, cell := range cells {
		pad := strings.Repeat(" ", max(0, widths[i]-lipgloss.Width(cell)))
		if i > 0 {
			// Numbers are right-aligned.
			if i < len(cells)-1 {
				b.WriteString(pad + style(i, cell).Render(cell))
			} else {
				b.WriteString(style(i, cell).Render(cell))
			}
		} else {
			b.WriteString(style(i, cell).Render(cell) + pad)
		}
		if i < len(cells)-1 {
			b.WriteString(strings.Repeat(" ", tablePadding))
		}
	}
	return strings.TrimRight(b.String(), " ") + "\n"
}

func (t *FileTable) relative(path string) string {
	if t.workDir == "" {
		return path
	}
	rel, err := filepath.Rel(t.workDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

// truncatePath shortens path from the left so the file name stays visible.
func truncatePath(path string, maxLen int) string {
	if len(path) <= maxLen {
		return path
	}
	return "..." + path[len(path)-maxLen+3:]
}
