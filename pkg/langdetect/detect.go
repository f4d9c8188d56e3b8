// Package langdetect guesses the language of preformatted blocks.
//
// Gemtext lets authors put alt text after the opening fence, which is often a
// language name. That hint is trusted first; otherwise go-enry inspects the
// block body.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Text is returned when no language can be determined.
const Text = "text"

// classifierCandidates limits the classifier to languages commonly found in
// capsule code blocks.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Lua", "Haskell", "Lisp",
}

// Detect returns a lowercase language name for a preformatted block with the
// given alt text and body, or Text when detection fails or is unsure.
func Detect(altText string, content []byte) string {
	if lang, ok := byAltText(altText); ok {
		return lang
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return Text
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := byPattern(content); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return Text
}

// byAltText resolves single-word alt text such as "go" or "bash" through
// the linguist alias table.
func byAltText(altText string) (string, bool) {
	fields := strings.Fields(altText)
	if len(fields) != 1 {
		return "", false
	}

	lang, ok := enry.GetLanguageByAlias(strings.ToLower(fields[0]))
	if !ok || lang == "" {
		return "", false
	}
	return normalize(lang), true
}

// byPattern catches snippets too short for the classifier to be confident about.
func byPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	text := string(content)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return "go"
	case strings.Contains(text, "def ") && strings.Contains(text, "):"),
		strings.Contains(text, "__name__"):
		return "python"
	case bytes.Contains(bytes.ToLower(trimmed), []byte("<html")),
		bytes.Contains(bytes.ToLower(trimmed), []byte("<!doctype html")):
		return "html"
	case (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)):
		return "json"
	case strings.Contains(text, "fn main()"), strings.Contains(text, "println!"):
		return "rust"
	case hasSQLPrefix(text):
		return "sql"
	}

	return ""
}

func hasSQLPrefix(text string) bool {
	upper := strings.ToUpper(strings.TrimSpace(text))
	for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
		if strings.HasPrefix(upper, kw) {
			return true
		}
	}
	return false
}

// normalize converts go-enry language names to short lowercase tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
