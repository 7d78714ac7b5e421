package build

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/morg/kanjidex/pkg/db"
	"github.com/morg/kanjidex/pkg/kanjipedia"
)

func TestWriteIndexPage(t *testing.T) {
	conn := setupTestDB(t)

	rec := kanjipedia.Record{
		Character:          "江",
		OriginRef:          "https://www.kanjipedia.jp/kanji/0000100200",
		Radical:            `<img src="/common/images/bushu/sanzui.png"/>`,
		SemanticComponents: []string{"水"},
		PhoneticComponent:  "工",
		Classification:     []string{kanjipedia.PhonoSemantic},
		Onyomi:             []string{"コウ"},
		Kunyomi:            []string{"え"},
	}
	if err := db.UpsertKanji(conn, rec); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	dir := t.TempDir()
	if err := WriteIndexPage(conn, dir); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "index.html"))
	if err != nil {
		t.Fatalf("read page: %v", err)
	}
	page := string(data)

	if !strings.Contains(page, "<meta charset='utf-8'/>") {
		t.Errorf("missing charset declaration")
	}
	if !strings.Contains(page, ">江</a>") {
		t.Errorf("missing entry block:\n%s", page)
	}
	if !strings.Contains(page, "<hr />") {
		t.Errorf("entries must be separated by horizontal rules")
	}
	if strings.Contains(page, `src="/common/`) {
		t.Errorf("relative image reference survived into the page")
	}
}
