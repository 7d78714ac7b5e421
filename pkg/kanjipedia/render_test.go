package kanjipedia

import (
	"strings"
	"testing"
)

func TestRenderHTML(t *testing.T) {
	e := parseFixture(t, "kou_entry.html", "https://www.kanjipedia.jp/kanji/0000100200")

	block, err := e.RenderHTML()
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}

	if !strings.Contains(block, `<a href="https://www.kanjipedia.jp/kanji/0000100200">江</a>`) {
		t.Errorf("missing linked character:\n%s", block)
	}
	if !strings.Contains(block, "コウ") || !strings.Contains(block, "（外）ゴウ") {
		t.Errorf("missing grouped on readings:\n%s", block)
	}
	if !strings.Contains(block, "<th>部首</th><th>意符</th><th>音符</th>") {
		t.Errorf("missing component table header:\n%s", block)
	}
	// Relative image references must come out absolute.
	if strings.Contains(block, `src="/common/`) {
		t.Errorf("relative image reference survived:\n%s", block)
	}
	if !strings.Contains(block, `src="`+BaseURL+`/common/images/bushu/sanzui.png"`) {
		t.Errorf("radical image not absolutized:\n%s", block)
	}
}

func TestRenderHTMLPlaceholders(t *testing.T) {
	e := &Entry{Character: "山", OriginRef: "https://www.kanjipedia.jp/kanji/1", Classification: NewSet(Pictographic)}

	block, err := e.RenderHTML()
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	if strings.Count(block, "<td>N/A</td>") != 3 {
		t.Errorf("expected N/A in all three component cells:\n%s", block)
	}
	if strings.Contains(block, "同部首") {
		t.Errorf("related line must be omitted when empty:\n%s", block)
	}
}
