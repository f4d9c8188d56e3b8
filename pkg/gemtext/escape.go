package gemtext

import "strings"

// htmlEscaper escapes text and attribute values. Quotes are escaped so the
// same replacer can be used inside href="...".
//
//nolint:gochecknoglobals // Read-only replacer.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#x27;",
)

// shorthand is a literal sequence and the entity that replaces it.
type shorthand struct {
	literal     string
	replacement string
}

// shorthands are applied one after another, longest literal first, so a
// triple dash never turns into an en dash followed by a hyphen.
//
//nolint:gochecknoglobals // Read-only lookup table.
var shorthands = []shorthand{
	{literal: "---", replacement: "&mdash;"},
	{literal: "--", replacement: "&ndash;"},
}

// EscapeHTML escapes &, <, >, " and ' in s.
func EscapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}

// ApplyShorthands replaces dash sequences with their typographic entities.
func ApplyShorthands(s string) string {
	for _, sh := range shorthands {
		s = strings.ReplaceAll(s, sh.literal, sh.replacement)
	}
	return s
}
