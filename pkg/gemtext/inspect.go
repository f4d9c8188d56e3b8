package gemtext

import "strings"

// Heading is a header line found in a document.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
	Line  int    `json:"line"`
}

// LinkRef is a link line found in a document.
type LinkRef struct {
	Target string `json:"target"`
	Label  string `json:"label"`
	Line   int    `json:"line"`
}

// Block is a preformatted block. AltText is whatever followed the opening
// fence marker. Lines holds the raw body.
type Block struct {
	AltText string   `json:"altText,omitempty"`
	Lines   []string `json:"lines"`
	Line    int      `json:"line"`

	// Unterminated is set when the document ended inside the block.
	Unterminated bool `json:"unterminated,omitempty"`
}

// Content returns the block body joined with newlines.
func (b Block) Content() string {
	return strings.Join(b.Lines, "\n")
}

// Outline summarises the structure of a document as the transcoder sees it.
type Outline struct {
	// Lines is the number of input lines.
	Lines int `json:"lines"`

	// ByState counts input lines per state. Fence lines count towards
	// the state they switch into.
	ByState map[State]int `json:"-"`

	Headings []Heading `json:"headings,omitempty"`
	Links    []LinkRef `json:"links,omitempty"`
	Blocks   []Block   `json:"blocks,omitempty"`

	// OpenContainer is the container left open at end of input, or Normal
	// when the document ends outside any container.
	OpenContainer State `json:"-"`
}

// Inspect classifies lines exactly like the transcoder and records what it finds.
// Line numbers are 1-based.
func Inspect(lines []string) *Outline {
	outline := &Outline{
		Lines:   len(lines),
		ByState: make(map[State]int),
	}

	current := Normal
	var block *Block

	for idx, line := range lines {
		lineNo := idx + 1
		cl := Classify(line, current == Preformatted)
		outline.ByState[cl.State]++

		switch cl.State {
		case Header1, Header2, Header3:
			outline.Headings = append(outline.Headings, Heading{
				Level: headingLevel(cl.State),
				Text:  cl.Text,
				Line:  lineNo,
			})
		case Link:
			outline.Links = append(outline.Links, LinkRef{Target: cl.Target, Label: cl.Text, Line: lineNo})
		case Preformatted:
			if !cl.HasText {
				block = &Block{
					AltText: strings.TrimSpace(strings.TrimPrefix(line, FenceMarker)),
					Line:    lineNo,
				}
			} else if block != nil {
				block.Lines = append(block.Lines, cl.Text)
			}
		case Normal, List, Blockquote:
		}

		// Closing fence.
		if current == Preformatted && cl.State != Preformatted && block != nil {
			outline.Blocks = append(outline.Blocks, *block)
			block = nil
		}

		current = cl.State
	}

	if block != nil {
		block.Unterminated = true
		outline.Blocks = append(outline.Blocks, *block)
	}

	if current.IsContainer() {
		outline.OpenContainer = current
	}

	return outline
}

// Count returns the number of lines classified as state.
func (o *Outline) Count(state State) int {
	if o == nil {
		return 0
	}
	return o.ByState[state]
}

func headingLevel(state State) int {
	switch state {
	case Header1:
		return 1
	case Header2:
		return 2
	case Header3:
		return 3
	case Normal, Link, List, Blockquote, Preformatted:
		return 0
	default:
		return 0
	}
}
