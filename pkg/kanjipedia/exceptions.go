package kanjipedia

// A handful of entry pages encode their formation or reading data in
// forms the general grammar cannot parse: diagram images instead of
// text, kokuji with no formation clause, non-standard separators.
// Those characters are keyed in here as declarative data and consulted
// before the extractors. The two tables are independent: a character
// may override decomposition, readings, or both.

// DecompositionOverride supplies decomposition values directly.
type DecompositionOverride struct {
	Classification []string
	Semantic       []string
	Phonetic       string
}

// ReadingOverride supplies reading sets directly.
type ReadingOverride struct {
	Onyomi     []string
	OnyomiExt  []string
	Kunyomi    []string
	KunyomiExt []string
}

var decompositionOverrides = map[string]DecompositionOverride{
	// Kokuji: the naritachi clause describes the coinage in prose with
	// no 意符/音符 markers.
	"働": {
		Classification: []string{CompoundIdeographic},
		Semantic:       []string{"人", "動"},
	},
	// Kokuji with three components; the grammar only ever yields two.
	"峠": {
		Classification: []string{CompoundIdeographic},
		Semantic:       []string{"山", "上", "下"},
	},
	// Formation rendered as a diagram image with no parsable text.
	"麻": {
		Classification: []string{CompoundIdeographic},
		Semantic:       []string{"广", "林"},
	},
}

var readingOverrides = map[string]ReadingOverride{
	// Kokuji: no on readings exist; the reading line uses a layout the
	// extractor cannot segment.
	"畑": {Kunyomi: []string{"はた", "はたけ"}},
	"峠": {Kunyomi: []string{"とうげ"}},
	"匁": {Kunyomi: []string{"もんめ"}},
	"込": {Kunyomi: []string{"こ.む", "こ.める"}},
}

// LookupDecompositionOverride returns the hardcoded decomposition for
// a known-irregular character, if one exists.
func LookupDecompositionOverride(character string) (DecompositionOverride, bool) {
	o, ok := decompositionOverrides[character]
	return o, ok
}

// LookupReadingOverride returns the hardcoded readings for a
// known-irregular character, if one exists.
func LookupReadingOverride(character string) (ReadingOverride, bool) {
	o, ok := readingOverrides[character]
	return o, ok
}
