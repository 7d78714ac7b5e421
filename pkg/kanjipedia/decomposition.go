package kanjipedia

import (
	"bytes"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Decomposition is the structural breakdown of a character as parsed
// from its formation (naritachi) fragment.
type Decomposition struct {
	Classification Set
	Semantic       Set
	Phonetic       string
}

// Parenthetical asides (full-width and ASCII) carry glosses and
// readings that break positional extraction.
var reParenthetical = regexp.MustCompile(`（[^（）]*）|\([^()]*\)`)

var reLineBreak = regexp.MustCompile(`<br\s*/?>`)

// componentCursor hands out the fragment's element children one at a
// time for component slots whose textual position is an embedded
// image. The cursor only advances when a slot actually consumes a
// child, so two image-valued components resolve to two distinct
// children in document order.
type componentCursor struct {
	children []*html.Node
	next     int
}

func newComponentCursor(fragment *html.Node) *componentCursor {
	c := &componentCursor{}
	if fragment == nil {
		return c
	}
	for n := fragment.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && n.Data == "img" {
			c.children = append(c.children, n)
		}
	}
	return c
}

// take returns the serialized form of the next unconsumed element
// child, or "" when none remain.
func (c *componentCursor) take() string {
	if c.next >= len(c.children) {
		return ""
	}
	n := c.children[c.next]
	c.next++
	return renderNode(n)
}

func renderNode(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}

// ExtractDecomposition derives classification tags and semantic /
// phonetic components from a formation fragment. A nil fragment or
// one with no recognizable classification marker yields the zero
// Decomposition; extraction never fails.
func ExtractDecomposition(fragment *html.Node) Decomposition {
	var d Decomposition
	if fragment == nil {
		return d
	}

	// Only the text after the final line break is authoritative;
	// earlier segments describe alternate or historical explanations.
	raw := renderNode(fragment)
	segments := reLineBreak.Split(raw, -1)
	text := reParenthetical.ReplaceAllString(segments[len(segments)-1], "")

	d.Classification = ClassifyFormation(text)
	cursor := newComponentCursor(fragment)

	switch {
	case d.Classification.Has(PhonoSemantic):
		sem := runeAfter(text, markerSemantic)
		if sem == "" {
			sem = runeBefore(text, markerConnective)
		}
		if isMarkupDelim(sem) {
			sem = cursor.take()
		}
		d.Semantic.Add(sem)

		phon := runeAfter(text, markerPhonetic)
		if d.Classification.Has(CompoundIdeographic) {
			// 会意形声: the clause after 音符 restates the semantic
			// reading; the real phonetic sits past the connective.
			phon = runeAfter(text, markerConnective)
		}
		if isMarkupDelim(phon) {
			phon = cursor.take()
		}
		if phon != "" {
			// The phonetic element also contributes meaning.
			d.Phonetic = phon
			d.Semantic.Add(phon)
		}

	case d.Classification.Has(CompoundIdeographic):
		first := runeBefore(text, markerConnective)
		if isMarkupDelim(first) {
			first = cursor.take()
		}
		d.Semantic.Add(first)

		second := runeAfter(text, markerConnective)
		if isMarkupDelim(second) {
			second = cursor.take()
		}
		d.Semantic.Add(second)
	}

	return d
}

// runeAfter returns the rune immediately following the first
// occurrence of marker, or "" when the marker is absent or the text
// ends first.
func runeAfter(text, marker string) string {
	i := strings.Index(text, marker)
	if i < 0 {
		return ""
	}
	r, size := utf8.DecodeRuneInString(text[i+len(marker):])
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// runeBefore returns the rune immediately preceding the first
// occurrence of marker, or "" when absent.
func runeBefore(text, marker string) string {
	i := strings.Index(text, marker)
	if i <= 0 {
		return ""
	}
	r, size := utf8.DecodeLastRuneInString(text[:i])
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// isMarkupDelim reports whether the extracted position landed on a tag
// delimiter, meaning the component is an embedded image rather than a
// literal character.
func isMarkupDelim(s string) bool { return s == "<" || s == ">" }
