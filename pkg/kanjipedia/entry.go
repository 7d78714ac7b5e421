package kanjipedia

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Entry is the unit of record: everything extracted from one
// kanjipedia entry page. Entries are immutable after assembly.
type Entry struct {
	Character          string
	OriginRef          string
	OldForms           Set
	Radical            string
	SemanticComponents Set
	PhoneticComponent  string
	Classification     Set
	RelatedKanji       Set
	Onyomi             Set
	OnyomiExt          Set
	Kunyomi            Set
	KunyomiExt         Set
}

// OnyomiAll returns the union of primary and extended on readings.
func (e *Entry) OnyomiAll() Set { return e.Onyomi.Union(e.OnyomiExt) }

// KunyomiAll returns the union of primary and extended kun readings.
func (e *Entry) KunyomiAll() Set { return e.Kunyomi.Union(e.KunyomiExt) }

// ParseEntryHTML parses a kanjipedia entry page into an Entry.
// originRef is recorded verbatim as the entry's source identifier.
//
// A missing character anchor is the only fatal condition; every other
// absent anchor degrades the affected field to empty.
func ParseEntryHTML(r io.Reader, originRef string) (*Entry, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse entry page: %w", err)
	}
	return parseEntry(doc, originRef)
}

func parseEntry(doc *goquery.Document, originRef string) (*Entry, error) {
	e := &Entry{OriginRef: originRef}

	e.Character = trim(doc.Find("p#" + idOyaji).First().Text())
	if e.Character == "" {
		return nil, fmt.Errorf("entry page has no %s anchor", idOyaji)
	}

	doc.Find("p." + classSubKanji).Each(func(_ int, sel *goquery.Selection) {
		if trim(sel.Text()) == e.Character {
			return
		}
		e.OldForms.Add(firstChildContent(sel))
	})

	e.Radical = firstChildContent(doc.Find("p." + classBushu).First())

	if o, ok := LookupDecompositionOverride(e.Character); ok {
		e.Classification = NewSet(o.Classification...)
		e.SemanticComponents = NewSet(o.Semantic...)
		e.PhoneticComponent = o.Phonetic
	} else {
		d := ExtractDecomposition(naritachiFragment(doc))
		e.Classification = d.Classification
		e.SemanticComponents = d.Semantic
		e.PhoneticComponent = d.Phonetic
	}

	if o, ok := LookupReadingOverride(e.Character); ok {
		e.Onyomi = NewSet(o.Onyomi...)
		e.OnyomiExt = NewSet(o.OnyomiExt...)
		e.Kunyomi = NewSet(o.Kunyomi...)
		e.KunyomiExt = NewSet(o.KunyomiExt...)
	} else {
		lists := doc.Find("p." + classOnkunYomi)
		on := ExtractOnyomi(nodeAt(lists, 0))
		kun := ExtractKunyomi(nodeAt(lists, 1))
		e.Onyomi = on.Primary
		e.OnyomiExt = on.Extended
		e.Kunyomi = kun.Primary
		e.KunyomiExt = kun.Extended
	}

	doc.Find("ul."+classSameBushi+" a").Each(func(_ int, sel *goquery.Selection) {
		t := trim(sel.Text())
		if utf8.RuneCountInString(t) == 1 && t != e.Character {
			e.RelatedKanji.Add(t)
		}
	})

	return e, nil
}

// naritachiFragment locates the formation fragment: the second-to-last
// child of the naritachi list item, then that node's second child.
// Any missing step yields nil, which the extractor treats as absent
// formation text.
func naritachiFragment(doc *goquery.Document) *html.Node {
	sel := doc.Find("li." + classNaritachi).First()
	if len(sel.Nodes) == 0 {
		return nil
	}
	return childAt(childFromEnd(sel.Nodes[0], 1), 1)
}

// nodeAt returns the i-th node of a selection, or nil.
func nodeAt(sel *goquery.Selection, i int) *html.Node {
	if i >= len(sel.Nodes) {
		return nil
	}
	return sel.Nodes[i]
}

// childAt returns the i-th child node (all node types counted), or nil.
func childAt(n *html.Node, i int) *html.Node {
	if n == nil {
		return nil
	}
	c := n.FirstChild
	for ; c != nil && i > 0; i-- {
		c = c.NextSibling
	}
	return c
}

// childFromEnd returns the i-th child counting from the last (0 is the
// last child), or nil.
func childFromEnd(n *html.Node, i int) *html.Node {
	if n == nil {
		return nil
	}
	c := n.LastChild
	for ; c != nil && i > 0; i-- {
		c = c.PrevSibling
	}
	return c
}

// firstChildContent returns the first child of the selection's first
// node: trimmed text for a text node, serialized markup for an element
// (the radical and old forms are often embedded images).
func firstChildContent(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	for c := sel.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			if t := trim(c.Data); t != "" {
				return t
			}
		case html.ElementNode:
			return renderNode(c)
		}
	}
	return ""
}

// Record is the flat key-value form of an Entry: all set fields as
// sorted lists. It round-trips losslessly through Entry and is the
// shape stored in the kanji table and exported to JSON.
type Record struct {
	Character          string   `json:"kanji"`
	OriginRef          string   `json:"origin_url"`
	OldForms           []string `json:"old_forms"`
	Radical            string   `json:"radical"`
	SemanticComponents []string `json:"semantic_comp"`
	PhoneticComponent  string   `json:"phonetic_comp"`
	Classification     []string `json:"types"`
	RelatedKanji       []string `json:"related_kanji"`
	Onyomi             []string `json:"onyomi"`
	OnyomiExt          []string `json:"onyomi_ext"`
	Kunyomi            []string `json:"kunyomi"`
	KunyomiExt         []string `json:"kunyomi_ext"`
}

// ToRecord serializes the entry to its key-value form.
func (e *Entry) ToRecord() Record {
	return Record{
		Character:          e.Character,
		OriginRef:          e.OriginRef,
		OldForms:           e.OldForms.Members(),
		Radical:            e.Radical,
		SemanticComponents: e.SemanticComponents.Members(),
		PhoneticComponent:  e.PhoneticComponent,
		Classification:     e.Classification.Members(),
		RelatedKanji:       e.RelatedKanji.Members(),
		Onyomi:             e.Onyomi.Members(),
		OnyomiExt:          e.OnyomiExt.Members(),
		Kunyomi:            e.Kunyomi.Members(),
		KunyomiExt:         e.KunyomiExt.Members(),
	}
}

// FromRecord rebuilds an Entry from its key-value form, restoring set
// semantics for every list field.
func FromRecord(r Record) *Entry {
	return &Entry{
		Character:          r.Character,
		OriginRef:          r.OriginRef,
		OldForms:           NewSet(r.OldForms...),
		Radical:            r.Radical,
		SemanticComponents: NewSet(r.SemanticComponents...),
		PhoneticComponent:  r.PhoneticComponent,
		Classification:     NewSet(r.Classification...),
		RelatedKanji:       NewSet(r.RelatedKanji...),
		Onyomi:             NewSet(r.Onyomi...),
		OnyomiExt:          NewSet(r.OnyomiExt...),
		Kunyomi:            NewSet(r.Kunyomi...),
		KunyomiExt:         NewSet(r.KunyomiExt...),
	}
}
