package kanjipedia

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// Readings holds the primary and extended reading sets extracted from
// one on/kun fragment.
type Readings struct {
	Primary  Set
	Extended Set
}

// All returns the union of primary and extended readings.
func (r Readings) All() Set { return r.Primary.Union(r.Extended) }

// splitReadings breaks a text run into individual readings on the
// ・ separator and whitespace. The separator never survives into a
// returned piece.
func splitReadings(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == readingSeparator || unicode.IsSpace(r)
	})
}

// ExtractOnyomi walks the on-reading fragment in document order with a
// sticky extended-mode flag. Text runs are split on the separator and
// routed to the active set; an <img> marker carrying the 外 glyph
// switches all subsequent readings (including descendants of later
// siblings) to the extended set. The flag never resets.
func ExtractOnyomi(fragment *html.Node) Readings {
	var r Readings
	if fragment == nil {
		return r
	}
	onyomiWalk(fragment, false, &r)
	return r
}

func onyomiWalk(n *html.Node, extended bool, r *Readings) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			for _, piece := range splitReadings(c.Data) {
				if extended {
					r.Extended.Add(piece)
				} else {
					r.Primary.Add(piece)
				}
			}
		case c.Type == html.ElementNode && c.Data == "img":
			if strings.Contains(attr(c, "alt"), extendedAltGlyph) {
				extended = true
			}
		case c.Type == html.ElementNode:
			extended = onyomiWalk(c, extended, r)
		}
	}
	return extended
}

// kunState is the fold state threaded through a kun-fragment walk:
// text accumulated since the last flush, and which set flushes go to.
type kunState struct {
	pending  string
	extended bool
}

func (st *kunState) flush(r *Readings) {
	for _, piece := range splitReadings(st.pending) {
		if st.extended {
			r.Extended.Add(piece)
		} else {
			r.Primary.Add(piece)
		}
	}
	st.pending = ""
}

// ExtractKunyomi walks the kun-reading fragment as an explicit fold.
// Plain inline spans carry okurigana suffixes and are fused onto the
// accumulated stem with a period boundary (か + える → か.える). A span
// styled with the extended marker flushes everything accumulated so
// far to the primary set and routes the rest of the walk to the
// extended set. The walk never aborts; unexpected structure degrades
// to whatever segmentation is derivable.
func ExtractKunyomi(fragment *html.Node) Readings {
	var r Readings
	if fragment == nil {
		return r
	}
	st := &kunState{}
	kunyomiWalk(fragment, st, &r)
	st.flush(&r)
	return r
}

func kunyomiWalk(n *html.Node, st *kunState, r *Readings) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			st.pending += c.Data
		case c.Type == html.ElementNode && c.Data == "span":
			if strings.Contains(attr(c, "style"), extendedStyleMarker) {
				st.flush(r)
				st.extended = true
				kunyomiWalk(c, st, r)
				continue
			}
			suffix := trim(textContent(c))
			if suffix == "" {
				continue
			}
			if trim(st.pending) == "" {
				// No stem to fuse with; keep the suffix as-is.
				st.pending += suffix
			} else {
				st.pending += okuriganaBoundary + suffix
			}
		case c.Type == html.ElementNode && c.Data == "img":
			// Marker images carry no reading text.
		case c.Type == html.ElementNode:
			kunyomiWalk(c, st, r)
		}
	}
}

// attr returns the value of the named attribute, or "".
func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

// textContent concatenates all text nodes under n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
