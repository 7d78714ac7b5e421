// Package kanjipedia extracts structured kanji data from kanjipedia.jp
// entry pages: old forms, radical, structural decomposition and
// on/kun readings split into primary and extended sets.
package kanjipedia

import "strings"

// BaseURL is the kanjipedia site root. Relative entry URLs and image
// references are resolved against it.
const BaseURL = "https://www.kanjipedia.jp"

// Markup anchors on a kanjipedia entry page.
const (
	idOyaji        = "kanjiOyaji"
	classSubKanji  = "subKanji"
	classBushu     = "kanjiBushu"
	classNaritachi = "naritachi"
	classOnkunYomi = "onkunYomi"
	classSameBushi = "sameBushiList"
)

const (
	// readingSeparator delimits readings within a single text run.
	readingSeparator = '・'
	// okuriganaBoundary separates a kun reading stem from its
	// inflectional suffix in stored form (か.える).
	okuriganaBoundary = "."
	// extendedAltGlyph marks the start of the extended on-reading
	// region: an <img> whose alt carries it.
	extendedAltGlyph = "外"
	// extendedStyleMarker marks the start of the extended kun-reading
	// region: a <span> whose style attribute carries it.
	extendedStyleMarker = "font-weight:normal"
)

// Markers inside formation (naritachi) text.
const (
	markerSemantic   = "意符"
	markerPhonetic   = "音符"
	markerConnective = "と、"
)

// Classification tags describing how a character's form was constructed.
const (
	Pictographic        = "pictographic"         // 象形
	Indicative          = "indicative"           // 指事
	CompoundIdeographic = "compound-ideographic" // 会意
	PhonoSemantic       = "phono-semantic"       // 形声
	Derivative          = "derivative"           // 転注
	Rebus               = "rebus"                // 仮借
)

var classificationMarkers = map[string]string{
	Pictographic:        "象形",
	Indicative:          "指事",
	CompoundIdeographic: "会意",
	PhonoSemantic:       "形声",
	Derivative:          "転注",
	Rebus:               "仮借",
}

// ClassifyFormation returns every classification tag whose marker
// appears in the given formation text. Multiple tags may match; text
// with no recognizable marker yields an empty set.
func ClassifyFormation(text string) Set {
	var tags Set
	for tag, marker := range classificationMarkers {
		if strings.Contains(text, marker) {
			tags.Add(tag)
		}
	}
	return tags
}
