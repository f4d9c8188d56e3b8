package cli_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gmi2html/internal/cli"
	"github.com/yaklabco/gmi2html/internal/configloader"
	"github.com/yaklabco/gmi2html/internal/logging"
	"github.com/yaklabco/gmi2html/pkg/fsutil"
	"github.com/yaklabco/gmi2html/pkg/gemtext"
	"github.com/yaklabco/gmi2html/pkg/reporter"
)

var testInfo = cli.BuildInfo{Version: "test-version", Commit: "test-commit", Date: "test-date"}

// isolate moves the test into an empty directory with no user config.
// Tests calling it cannot run in parallel.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), 0o755))
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(dir)
	return dir
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	cmd := cli.NewRootCommand(testInfo)
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestNewRootCommand(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	assert.Equal(t, "gmi2html", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, name := range []string{"convert", "init", "version"} {
		sub, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, sub.Name())
	}
}

func TestConvertCommandFlags(t *testing.T) {
	t.Parallel()

	cmd := cli.NewRootCommand(testInfo)
	convert, _, err := cmd.Find([]string{"convert"})
	require.NoError(t, err)

	for _, name := range []string{
		"output-dir", "ext", "input-ext", "ignore", "jobs", "dry-run",
		"format", "no-backups", "force", "verbose", "compact",
	} {
		assert.NotNil(t, convert.Flags().Lookup(name), name)
	}
	assert.NotNil(t, convert.InheritedFlags().Lookup("close-containers"))
}

func TestRoot_StdinToStdout(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "# Hi\n* a\n")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		gemtext.StyleLine,
		"<h1>Hi</h1>",
		"<ul>",
		"  <li>a</li>",
	}, "\n")+"\n", stdout)
}

func TestRoot_CloseContainersFlag(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "* a\n", "--close-containers")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, "  <li>a</li>\n</ul>\n"))
}

func TestRoot_CloseContainersFromConfig(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gmi2html.yml"), []byte("close_containers: true\n"), 0o644))

	stdout, _, err := execute(t, "> q\n")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, "</blockquote>\n"))

	stdout, _, err = execute(t, "> q\n", "--close-containers=false")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stdout, "  <p>q</p>\n"), "flag overrides config")
}

func TestConvert_DashReadsStdin(t *testing.T) {
	isolate(t)

	stdout, _, err := execute(t, "x\n", "convert", "-")
	require.NoError(t, err)
	assert.Equal(t, gemtext.StyleLine+"\n<p>x</p>\n", stdout)
}

func TestConvert_Files(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "log"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.gmi"), []byte("# Home\n=> log/a.gmi A\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "log", "a.gmi"), []byte("text\n"), 0o644))

	stdout, _, err := execute(t, "", "convert", "--color", "never", ".")
	require.NoError(t, err)

	assert.Contains(t, stdout, "index.gmi -> index.html (written)")
	assert.Contains(t, stdout, filepath.Join("log", "a.gmi")+" -> "+filepath.Join("log", "a.html"))
	assert.Contains(t, stdout, "Converted 2 files (2 written)")

	html, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(html), `<a href="log/a.gmi">A</a>`)

	// A second run finds nothing to do.
	stdout, _, err = execute(t, "", "convert", "--color", "never", ".")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(0 written, 2 unchanged)")
}

func TestConvert_DryRunJSON(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.gmi"), []byte("```go\npackage main\n```\n"), 0o644))

	stdout, _, err := execute(t, "", "convert", "--dry-run", "--format", "json", ".")
	require.NoError(t, err)

	var out reporter.JSONOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.True(t, out.DryRun)
	require.Len(t, out.Files, 1)
	assert.Equal(t, reporter.StatusDryRun, out.Files[0].Status)
	require.Len(t, out.Files[0].Blocks, 1)
	assert.Equal(t, "go", out.Files[0].Blocks[0].Language)

	assert.False(t, fsutil.Exists(filepath.Join(dir, "index.html")))
}

func TestConvert_OutputDirAndExt(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.gmi"), []byte("hi\n"), 0o644))

	_, _, err := execute(t, "", "convert", "-o", "public", "--ext", ".htm", "--format", "summary", "--color", "never", ".")
	require.NoError(t, err)
	assert.True(t, fsutil.Exists(filepath.Join(dir, "public", "index.htm")))
}

func TestConvert_ExitCodes(t *testing.T) {
	dir := isolate(t)

	_, _, err := execute(t, "", "convert", "missing.gmi")
	require.Error(t, err)
	assert.Equal(t, cli.ExitIOError, cli.ExitCode(err))

	_, _, err = execute(t, "", "convert", "--format", "sarif", ".")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err), "format is validated with the config")

	_, _, err = execute(t, "", "convert", "--jobs", "many", ".")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".gmi2html.yml"), []byte("backups:\n  mode: cloud\n"), 0o644))
	_, _, err = execute(t, "", "convert", ".")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))
}

func TestConvert_OutputExtensionMatchesInput(t *testing.T) {
	dir := isolate(t)
	source := filepath.Join(dir, "page.gmi")
	require.NoError(t, os.WriteFile(source, []byte("# Title\n"), 0o644))

	_, _, err := execute(t, "", "convert", "--ext", ".gmi", ".")
	require.Error(t, err)
	assert.Equal(t, cli.ExitConfigError, cli.ExitCode(err))

	got, err := os.ReadFile(source)
	require.NoError(t, err)
	assert.Equal(t, "# Title\n", string(got))

	_, _, err = execute(t, "", "convert", "--ext", ".gmi", "--output-dir", "public", ".")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "public", "page.gmi"))
}

func TestRoot_DebugLoggerOnContext(t *testing.T) {
	// Not parallel: replaces the package-level logger.
	original := logging.Default()
	defer logging.SetDefault(original)

	var captured *log.Logger
	cmd := cli.NewRootCommand(testInfo)
	cmd.AddCommand(&cobra.Command{
		Use: "capture",
		Run: func(cmd *cobra.Command, _ []string) {
			captured = logging.FromContext(cmd.Context())
		},
	})
	cmd.SetArgs([]string{"--debug", "capture"})
	require.NoError(t, cmd.Execute())

	require.NotNil(t, captured)
	assert.Equal(t, log.DebugLevel, captured.GetLevel())
	assert.Same(t, captured, logging.Default())
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitSuccess},
		{"conversion failed", fmt.Errorf("run: %w", cli.ErrConversionFailed), cli.ExitConversionFailed},
		{"usage", &cli.UsageError{Err: errors.New("bad flag")}, cli.ExitInvalidUsage},
		{"config", &cli.ConfigError{Err: &configloader.ValidationError{Field: "jobs"}}, cli.ExitConfigError},
		{"not found", fmt.Errorf("read: %w", fsutil.ErrNotFound), cli.ExitIOError},
		{"path error", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, cli.ExitIOError},
		{"other", errors.New("boom"), cli.ExitInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestInit(t *testing.T) {
	dir := isolate(t)

	_, _, err := execute(t, "", "init")
	require.NoError(t, err)

	content, err := os.ReadFile(filepath.Join(dir, ".gmi2html.yml"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "# gmi2html configuration")

	_, _, err = execute(t, "", "init")
	require.Error(t, err)
	assert.Equal(t, cli.ExitInvalidUsage, cli.ExitCode(err))

	_, _, err = execute(t, "", "init", "--force", "--full")
	require.NoError(t, err)

	// The generated file loads cleanly.
	_, _, err = execute(t, "x\n")
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "test-version")
	assert.Contains(t, stdout, "test-commit")
}

func TestHelp(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "", "convert", "--help")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Convert Gemtext files to HTML")
	assert.Contains(t, stdout, "Flags:")
	assert.Contains(t, stdout, "--output-dir")
	assert.Contains(t, stdout, "Global Flags:")
	assert.Contains(t, stdout, "Environment:")
	assert.Contains(t, stdout, "GMI2HTML_OUTPUT_DIR")
	assert.Contains(t, stdout, "GMI2HTML_CLOSE_CONTAINERS")
}
