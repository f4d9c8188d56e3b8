package gemtext

import "fmt"

// StyleLine is the first line of every transcoded document.
const StyleLine = "<style>a { display: block; }</style>"

const (
	containerIndent = "  "
	lineBreak       = "<br />"
)

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithCloseContainers makes Close emit the close tag of a container that is
// still open at end of input. Off by default, in which case the output can
// end with an unbalanced open tag.
func WithCloseContainers(enabled bool) Option {
	return func(t *Transcoder) {
		t.closeContainers = enabled
	}
}

// Transcoder converts Gemtext lines to HTML lines, one line at a time.
// A Transcoder is not safe for concurrent use; create one per document.
type Transcoder struct {
	previous  State
	current   State
	autoBreak bool

	// out holds lines not yet handed out by Drain or Close.
	out []string

	closeContainers bool
	closed          bool
}

// New returns a Transcoder in the Normal state with the style line queued.
func New(opts ...Option) *Transcoder {
	t := &Transcoder{
		previous: Normal,
		current:  Normal,
		out:      []string{StyleLine},
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Push processes one input line. The line must not contain its terminator.
// Pushing after Close panics.
func (t *Transcoder) Push(line string) {
	if t.closed {
		panic("gemtext: Push after Close")
	}

	cl := Classify(line, t.current == Preformatted)
	t.current = cl.State

	emitted := Transition(t.previous, t.current)
	retract := false

	if cl.HasText {
		emitted, retract = t.render(cl, emitted)
	} else {
		t.autoBreak = false
	}

	if retract {
		t.retract()
	}
	t.out = append(t.out, emitted...)
	t.previous = t.current
}

// render appends the content line(s) for cl to emitted and updates the
// auto-break flag. It reports whether the previous output line must be retracted.
func (t *Transcoder) render(cl Line, emitted []string) ([]string, bool) {
	indent := ""
	if cl.State.IsContainer() {
		indent = containerIndent
	}

	escaped := EscapeHTML(cl.Text)
	if cl.State != Preformatted {
		escaped = ApplyShorthands(escaped)
	}

	wasBreak := t.autoBreak
	t.autoBreak = false

	if cl.Text == "" && cl.State == Normal && t.previous == Normal {
		t.autoBreak = true
		return append(emitted, indent+lineBreak), false
	}

	if cl.State == Link {
		anchor := fmt.Sprintf(`%s<a href="%s">%s</a>`, indent, EscapeHTML(cl.Target), escaped)
		return append(emitted, anchor), wasBreak
	}

	retract := wasBreak && cl.State != Preformatted
	if tag, ok := cl.State.LeafTag(); ok {
		return append(emitted, fmt.Sprintf("%s<%s>%s</%s>", indent, tag, escaped, tag)), retract
	}

	// Preformatted text is copied as is.
	return append(emitted, cl.Text), retract
}

// retract drops the most recently emitted line, which is always an auto-break.
func (t *Transcoder) retract() {
	if len(t.out) > 0 {
		t.out = t.out[:len(t.out)-1]
	}
}

// Drain returns the output lines that can no longer change and forgets them.
// The last emitted line is held back because the next Push may retract it.
func (t *Transcoder) Drain() []string {
	if len(t.out) <= 1 {
		return nil
	}
	return t.take(len(t.out) - 1)
}

// Close finishes the document and returns every line not yet drained. With
// WithCloseContainers, a container left open by the last line is closed
// first. Calling Close again returns nil.
func (t *Transcoder) Close() []string {
	if !t.closed {
		t.closed = true
		if t.closeContainers {
			if tag, ok := t.current.ContainerTag(); ok {
				t.out = append(t.out, "</"+tag+">")
			}
		}
	}
	return t.take(len(t.out))
}

func (t *Transcoder) take(n int) []string {
	if n == 0 {
		return nil
	}
	lines := make([]string, n)
	copy(lines, t.out[:n])
	t.out = append(t.out[:0], t.out[n:]...)
	return lines
}

// Transition returns the tags emitted when moving from prev to next: the
// close tag of prev if it is a container, then the open tag of next if it is
// one. Nothing is emitted when the state does not change.
func Transition(prev, next State) []string {
	if prev == next {
		return nil
	}

	var tags []string
	if tag, ok := prev.ContainerTag(); ok {
		tags = append(tags, "</"+tag+">")
	}
	if tag, ok := next.ContainerTag(); ok {
		tags = append(tags, "<"+tag+">")
	}
	return tags
}

// Transcode converts a whole document. It never fails.
func Transcode(lines []string, opts ...Option) []string {
	t := New(opts...)
	for _, line := range lines {
		t.Push(line)
	}
	return t.Close()
}
