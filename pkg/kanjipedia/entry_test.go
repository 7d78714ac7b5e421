package kanjipedia

import (
	"os"
	"reflect"
	"strings"
	"testing"
)

func parseFixture(t *testing.T, name, originRef string) *Entry {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	if err != nil {
		t.Fatalf("open fixture: %v", err)
	}
	defer f.Close()
	e, err := ParseEntryHTML(f, originRef)
	if err != nil {
		t.Fatalf("ParseEntryHTML: %v", err)
	}
	return e
}

func TestParseEntryPage(t *testing.T) {
	e := parseFixture(t, "kou_entry.html", "https://www.kanjipedia.jp/kanji/0000100200")

	if e.Character != "江" {
		t.Fatalf("character = %q, want 江", e.Character)
	}
	if e.OriginRef != "https://www.kanjipedia.jp/kanji/0000100200" {
		t.Errorf("origin ref = %q", e.OriginRef)
	}

	// Old forms: the subKanji block matching the subject itself is
	// skipped; the image-valued one is kept as markup.
	old := e.OldForms.Members()
	if len(old) != 1 || !strings.Contains(old[0], "kyuji/kou.png") {
		t.Errorf("old forms = %v", old)
	}

	if !strings.Contains(e.Radical, "bushu/sanzui.png") {
		t.Errorf("radical = %q, want the bushu image", e.Radical)
	}

	if !e.Onyomi.Equal(NewSet("コウ")) {
		t.Errorf("onyomi = %v, want [コウ]", e.Onyomi.Members())
	}
	if !e.OnyomiExt.Equal(NewSet("ゴウ")) {
		t.Errorf("onyomi_ext = %v, want [ゴウ]", e.OnyomiExt.Members())
	}
	if !e.Kunyomi.Equal(NewSet("え")) {
		t.Errorf("kunyomi = %v, want [え]", e.Kunyomi.Members())
	}
	if !e.KunyomiExt.Equal(NewSet("いりえ")) {
		t.Errorf("kunyomi_ext = %v, want [いりえ]", e.KunyomiExt.Members())
	}

	if !e.Classification.Equal(NewSet(PhonoSemantic)) {
		t.Errorf("classification = %v", e.Classification.Members())
	}
	if e.PhoneticComponent != "工" {
		t.Errorf("phonetic = %q, want 工", e.PhoneticComponent)
	}
	var hasImage bool
	for _, m := range e.SemanticComponents.Members() {
		if strings.Contains(m, "naritachi/sanzui_small.png") {
			hasImage = true
		}
	}
	if !hasImage {
		t.Errorf("semantic = %v, missing image component", e.SemanticComponents.Members())
	}

	// Related characters: single-grapheme same-radical entries, the
	// subject and navigation links excluded.
	if !e.RelatedKanji.Equal(NewSet("海", "汽")) {
		t.Errorf("related = %v, want [汽 海]", e.RelatedKanji.Members())
	}
}

func TestParseEntryMissingCharacterFails(t *testing.T) {
	_, err := ParseEntryHTML(strings.NewReader("<html><body><p>nothing here</p></body></html>"), "x")
	if err == nil {
		t.Fatalf("expected error for page without the character anchor")
	}
}

// A known-irregular character takes its hardcoded values even when
// formation text is present alongside.
func TestParseEntryExceptionTableWins(t *testing.T) {
	page := `<html><body>
<p id="kanjiOyaji">畑</p>
<p class="onkunYomi">デン</p>
<p class="onkunYomi">はた・はたけ・やまばた</p>
<ul><li class="naritachi">
<div><h3>なりたち</h3><p>会意。火と、田とから成る。</p></div>
</li></ul>
</body></html>`
	e, err := ParseEntryHTML(strings.NewReader(page), "x")
	if err != nil {
		t.Fatalf("ParseEntryHTML: %v", err)
	}
	if e.Onyomi.Len() != 0 {
		t.Errorf("onyomi = %v, want empty (override)", e.Onyomi.Members())
	}
	if !e.Kunyomi.Equal(NewSet("はた", "はたけ")) {
		t.Errorf("kunyomi = %v, want the override values", e.Kunyomi.Members())
	}
}

func TestReadingUnions(t *testing.T) {
	e := parseFixture(t, "kou_entry.html", "x")

	if !e.OnyomiAll().Equal(e.Onyomi.Union(e.OnyomiExt)) {
		t.Errorf("OnyomiAll must equal the union of its constituents")
	}
	if !e.KunyomiAll().Equal(e.Kunyomi.Union(e.KunyomiExt)) {
		t.Errorf("KunyomiAll must equal the union of its constituents")
	}
	if !e.OnyomiAll().Equal(NewSet("コウ", "ゴウ")) {
		t.Errorf("onyomi_all = %v", e.OnyomiAll().Members())
	}
}

func TestRecordRoundTrip(t *testing.T) {
	e := parseFixture(t, "kou_entry.html", "https://www.kanjipedia.jp/kanji/0000100200")

	got := FromRecord(e.ToRecord())
	if !reflect.DeepEqual(got.ToRecord(), e.ToRecord()) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got.ToRecord(), e.ToRecord())
	}
	if !got.Onyomi.Equal(e.Onyomi) || !got.KunyomiExt.Equal(e.KunyomiExt) {
		t.Errorf("set semantics lost in round trip")
	}
}
