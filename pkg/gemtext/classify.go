package gemtext

import (
	"strings"
	"unicode"
)

// Line markers.
const (
	FenceMarker      = "```"
	LinkMarker       = "=>"
	ListMarker       = "*"
	QuoteMarker      = ">"
	Header1Marker    = "#"
	Header2Marker    = "##"
	Header3Marker    = "###"
	linkTextSplitter = " "
)

// Line is the classification of one input line.
type Line struct {
	// State is the state the transcoder moves into for this line.
	State State

	// Text is the renderable content. Only meaningful when HasText is set.
	Text string

	// HasText is false for fence lines, which produce no content.
	HasText bool

	// Target is the link destination for Link lines.
	Target string
}

// Classify determines the state and content of line. inPreformatted tells
// whether the previous line left the transcoder inside a preformatted block.
//
// Rules are checked in a fixed order and the first match wins: fence close
// (inside preformatted), list, quote, fence open, headers from longest marker
// to shortest, link, and finally normal text.
func Classify(line string, inPreformatted bool) Line {
	if inPreformatted {
		if line == FenceMarker {
			return Line{State: Normal}
		}
		return Line{State: Preformatted, Text: line, HasText: true}
	}

	switch {
	case strings.HasPrefix(line, ListMarker):
		return textLine(List, line[len(ListMarker):])
	case strings.HasPrefix(line, QuoteMarker):
		return textLine(Blockquote, line[len(QuoteMarker):])
	case strings.HasPrefix(line, FenceMarker):
		return Line{State: Preformatted}
	case strings.HasPrefix(line, Header3Marker):
		return textLine(Header3, line[len(Header3Marker):])
	case strings.HasPrefix(line, Header2Marker):
		return textLine(Header2, line[len(Header2Marker):])
	case strings.HasPrefix(line, Header1Marker):
		return textLine(Header1, line[len(Header1Marker):])
	case strings.HasPrefix(line, LinkMarker):
		return linkLine(line[len(LinkMarker):])
	default:
		return textLine(Normal, line)
	}
}

// trimText strips surrounding whitespace. The file, group, record and unit
// separators U+001C to U+001F count as whitespace too.
func trimText(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

func isTrimSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

func textLine(state State, rest string) Line {
	return Line{State: state, Text: trimText(rest), HasText: true}
}

// linkLine splits "target label" at the first space. Without a space the
// target doubles as the label.
func linkLine(rest string) Line {
	raw := trimText(rest)
	target, label, found := strings.Cut(raw, linkTextSplitter)
	if !found {
		return Line{State: Link, Text: raw, HasText: true, Target: raw}
	}
	return Line{State: Link, Text: trimText(label), HasText: true, Target: target}
}
