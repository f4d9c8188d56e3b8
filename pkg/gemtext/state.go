package gemtext

// State is the classification of a Gemtext line.
type State int

// Parser states.
const (
	Normal State = iota
	Link
	List
	Blockquote
	Header1
	Header2
	Header3
	Preformatted
)

// String returns the lowercase name of the state.
func (s State) String() string {
	switch s {
	case Normal:
		return "normal"
	case Link:
		return "link"
	case List:
		return "list"
	case Blockquote:
		return "blockquote"
	case Header1:
		return "header1"
	case Header2:
		return "header2"
	case Header3:
		return "header3"
	case Preformatted:
		return "preformatted"
	default:
		return "unknown"
	}
}

// ContainerTag returns the element wrapping consecutive lines of this state.
// The second result is false for states that are not containers.
func (s State) ContainerTag() (string, bool) {
	switch s {
	case List:
		return "ul", true
	case Blockquote:
		return "blockquote", true
	case Preformatted:
		return "pre", true
	case Normal, Link, Header1, Header2, Header3:
		return "", false
	default:
		return "", false
	}
}

// IsContainer reports whether lines of this state share an open/close block element.
func (s State) IsContainer() bool {
	_, ok := s.ContainerTag()
	return ok
}

// LeafTag returns the element wrapping a single line of this state.
// Links and preformatted lines have no leaf tag; they are rendered specially.
func (s State) LeafTag() (string, bool) {
	switch s {
	case Normal, Blockquote:
		return "p", true
	case List:
		return "li", true
	case Header1:
		return "h1", true
	case Header2:
		return "h2", true
	case Header3:
		return "h3", true
	case Link, Preformatted:
		return "", false
	default:
		return "", false
	}
}

// AllStates lists every state in declaration order.
func AllStates() []State {
	return []State{Normal, Link, List, Blockquote, Header1, Header2, Header3, Preformatted}
}
