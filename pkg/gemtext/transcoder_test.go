package gemtext_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gmi2html/pkg/gemtext"
)

func withStyle(lines ...string) []string {
	return append([]string{gemtext.StyleLine}, lines...)
}

func TestTranscode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "empty input yields only the style line",
			input: nil,
			want:  withStyle(),
		},
		{
			name:  "plain line",
			input: []string{"  hello world  "},
			want:  withStyle("<p>hello world</p>"),
		},
		{
			name:  "list opens container after normal line",
			input: []string{"intro", "* item"},
			want:  withStyle("<p>intro</p>", "<ul>", "  <li>item</li>"),
		},
		{
			name:  "consecutive list items share one container",
			input: []string{"* one", "*two"},
			want:  withStyle("<ul>", "  <li>one</li>", "  <li>two</li>"),
		},
		{
			name:  "link with label",
			input: []string{"=> gemini://x label text"},
			want:  withStyle(`<a href="gemini://x">label text</a>`),
		},
		{
			name:  "link without label",
			input: []string{"=> gemini://x"},
			want:  withStyle(`<a href="gemini://x">gemini://x</a>`),
		},
		{
			name:  "link splits at first space only",
			input: []string{"=>  /path   label  text "},
			want:  withStyle(`<a href="/path">label  text</a>`),
		},
		{
			name:  "empty link",
			input: []string{"=>"},
			want:  withStyle(`<a href=""></a>`),
		},
		{
			name:  "link target is escaped",
			input: []string{"=> /a?b=1&c=2 x"},
			want:  withStyle(`<a href="/a?b=1&amp;c=2">x</a>`),
		},
		{
			name:  "headers",
			input: []string{"# One", "##Two", "### Three"},
			want:  withStyle("<h1>One</h1>", "<h2>Two</h2>", "<h3>Three</h3>"),
		},
		{
			name:  "quote",
			input: []string{"> hi"},
			want:  withStyle("<blockquote>", "  <p>hi</p>"),
		},
		{
			name:  "list to blockquote closes then opens",
			input: []string{"* a", "> b"},
			want:  withStyle("<ul>", "  <li>a</li>", "</ul>", "<blockquote>", "  <p>b</p>"),
		},
		{
			name:  "preformatted block is verbatim and unindented",
			input: []string{"```", "<b> & --", "  indented", "```", "after"},
			want:  withStyle("<pre>", "<b> & --", "  indented", "</pre>", "<p>after</p>"),
		},
		{
			name:  "fence with alt text opens block",
			input: []string{"``` go", "x := 1"},
			want:  withStyle("<pre>", "x := 1"),
		},
		{
			name:  "longer fence inside block is content",
			input: []string{"```", "````", "``` "},
			want:  withStyle("<pre>", "````", "``` "),
		},
		{
			name:  "list marker wins over header marker",
			input: []string{"*# x"},
			want:  withStyle("<ul>", "  <li># x</li>"),
		},
		{
			name:  "escaping",
			input: []string{`a < b & "c" 'd' > e`},
			want:  withStyle("<p>a &lt; b &amp; &quot;c&quot; &#x27;d&#x27; &gt; e</p>"),
		},
		{
			name:  "dash shorthands",
			input: []string{"a -- b", "a --- b", "----", "-----"},
			want: withStyle(
				"<p>a &ndash; b</p>",
				"<p>a &mdash; b</p>",
				"<p>&mdash;-</p>",
				"<p>&mdash;&ndash;</p>",
			),
		},
		{
			name:  "shorthands apply in headers and lists",
			input: []string{"# a -- b", "* c --- d"},
			want:  withStyle("<h1>a &ndash; b</h1>", "<ul>", "  <li>c &mdash; d</li>"),
		},
		{
			name:  "auto-break between paragraphs is retracted",
			input: []string{"foo", "", "bar"},
			want:  withStyle("<p>foo</p>", "<p>bar</p>"),
		},
		{
			name:  "consecutive blanks each emit a break",
			input: []string{"", ""},
			want:  withStyle("<br />", "<br />"),
		},
		{
			name:  "only the last break is retracted",
			input: []string{"a", "", "", "b"},
			want:  withStyle("<p>a</p>", "<br />", "<p>b</p>"),
		},
		{
			name:  "break before link is retracted",
			input: []string{"foo", "", "=> /x"},
			want:  withStyle("<p>foo</p>", `<a href="/x">/x</a>`),
		},
		{
			name:  "break before header is retracted",
			input: []string{"a", "", "# H"},
			want:  withStyle("<p>a</p>", "<h1>H</h1>"),
		},
		{
			name:  "break before list is retracted after the open tag is queued",
			input: []string{"a", "", "* x"},
			want:  withStyle("<p>a</p>", "<ul>", "  <li>x</li>"),
		},
		{
			name:  "break before fence survives",
			input: []string{"foo", "", "```", "code"},
			want:  withStyle("<p>foo</p>", "<br />", "<pre>", "code"),
		},
		{
			name:  "blank after list is an empty paragraph",
			input: []string{"* a", ""},
			want:  withStyle("<ul>", "  <li>a</li>", "</ul>", "<p></p>"),
		},
		{
			name:  "blank after header is an empty paragraph",
			input: []string{"# T", ""},
			want:  withStyle("<h1>T</h1>", "<p></p>"),
		},
		{
			name:  "blank after link is an empty paragraph",
			input: []string{"=> /x", ""},
			want:  withStyle(`<a href="/x">/x</a>`, "<p></p>"),
		},
		{
			name:  "blank inside preformatted block is kept",
			input: []string{"```", "", "```"},
			want:  withStyle("<pre>", "", "</pre>"),
		},
		{
			name:  "open container is left unbalanced",
			input: []string{"* a"},
			want:  withStyle("<ul>", "  <li>a</li>"),
		},
		{
			name:  "empty header",
			input: []string{"#"},
			want:  withStyle("<h1></h1>"),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := gemtext.Transcode(testCase.input)
			if diff := cmp.Diff(testCase.want, got); diff != "" {
				t.Errorf("Transcode() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTranscode_CloseContainers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "closes list",
			input: []string{"* a"},
			want:  withStyle("<ul>", "  <li>a</li>", "</ul>"),
		},
		{
			name:  "closes unterminated preformatted block",
			input: []string{"```", "code"},
			want:  withStyle("<pre>", "code", "</pre>"),
		},
		{
			name:  "nothing to close",
			input: []string{"text"},
			want:  withStyle("<p>text</p>"),
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			got := gemtext.Transcode(testCase.input, gemtext.WithCloseContainers(true))
			assert.Equal(t, testCase.want, got)
		})
	}
}

func TestTranscode_Deterministic(t *testing.T) {
	t.Parallel()

	input := []string{"# Title", "", "text -- more", "* a", "* b", "> q", "```", "<raw>", "```", "", "=> /x y"}

	first := gemtext.Transcode(input)
	for range 5 {
		assert.Equal(t, first, gemtext.Transcode(input))
	}
}

func TestTranscoder_Drain(t *testing.T) {
	t.Parallel()

	tr := gemtext.New()

	tr.Push("foo")
	assert.Equal(t, []string{gemtext.StyleLine}, tr.Drain())

	tr.Push("")
	assert.Equal(t, []string{"<p>foo</p>"}, tr.Drain(), "break must be held back")

	tr.Push("bar")
	assert.Nil(t, tr.Drain(), "break was retracted, only the new line is pending")

	assert.Equal(t, []string{"<p>bar</p>"}, tr.Close())
	assert.Nil(t, tr.Close(), "second Close returns nothing")
}

func TestTranscoder_PushAfterClose(t *testing.T) {
	t.Parallel()

	tr := gemtext.New()
	tr.Close()
	require.Panics(t, func() { tr.Push("x") })
}

func TestTransition(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		prev gemtext.State
		next gemtext.State
		want []string
	}{
		{"same state", gemtext.List, gemtext.List, nil},
		{"leaf to leaf", gemtext.Normal, gemtext.Header1, nil},
		{"enter container", gemtext.Normal, gemtext.Preformatted, []string{"<pre>"}},
		{"leave container", gemtext.Blockquote, gemtext.Link, []string{"</blockquote>"}},
		{"container to container", gemtext.List, gemtext.Blockquote, []string{"</ul>", "<blockquote>"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, testCase.want, gemtext.Transition(testCase.prev, testCase.next))
		})
	}
}
