// Package gemtext transcodes Gemtext documents into HTML fragment lines.
//
// The transcoder is a single-pass state machine. Each input line is classified
// into a State, container open/close tags are emitted when the state changes,
// and the line's text is rendered with HTML escaping and dash shorthands.
// Lists, quotes and preformatted blocks are containers; at most one container
// is open at a time and there is no nesting.
//
// Blank lines between two normal lines become "<br />" auto-breaks. An
// auto-break directly followed by a link or any other new block (except
// preformatted text) is retracted again.
//
// Preformatted text is copied verbatim: it is neither escaped nor indented.
package gemtext
