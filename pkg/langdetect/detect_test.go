package langdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/gmi2html/pkg/langdetect"
)

func TestDetect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		altText  string
		content  string
		expected string
	}{
		{"alt text go", "go", "x := 1", "go"},
		{"alt text is case insensitive", "Python", "print(1)", "python"},
		{"alt text bash alias", "bash", "ls", "bash"},
		{"descriptive alt text falls back to content", "the main file", "package main\n\nfunc main() {}", "go"},
		{"shebang", "", "#!/bin/sh\necho hello", "bash"},
		{"python by pattern", "", "def foo():\n    pass", "python"},
		{"json by pattern", "", `{"key": "value"}`, "json"},
		{"html by pattern", "", "<!DOCTYPE html>\n<html></html>", "html"},
		{"rust by pattern", "", "fn main() {\n    println!(\"hi\");\n}", "rust"},
		{"sql by pattern", "", "select * from capsules;", "sql"},
		{"empty block", "", "", langdetect.Text},
		{"whitespace block", "", "  \n\t\n", langdetect.Text},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := langdetect.Detect(testCase.altText, []byte(testCase.content))
			assert.Equal(t, testCase.expected, got)
		})
	}
}

func TestDetect_NeverEmpty(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"  /\\_/\\\n ( o.o )\n  > ^ <",
		"just some prose that happens to be preformatted",
	}

	for _, in := range inputs {
		assert.NotEmpty(t, langdetect.Detect("ASCII art", []byte(in)))
	}
}
