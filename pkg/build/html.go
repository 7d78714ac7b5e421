package build

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/morg/kanjidex/pkg/db"
	"github.com/morg/kanjidex/pkg/kanjipedia"
)

const pageHeader = `<html>
<head>
<title>Morg's POGGERS kanji list</title>
<style> table, th, td { padding: 10px; border: 1px solid black; border-collapse: collapse; } </style>
<meta charset='utf-8'/>
</head>
<body>
`

const pageFooter = `</body>
</html>
`

// RenderIndexPage concatenates every stored entry's HTML block into a
// single page, entries separated by horizontal rules.
func RenderIndexPage(conn *sql.DB) (string, error) {
	records, err := db.AllKanji(conn)
	if err != nil {
		return "", fmt.Errorf("load kanji records: %w", err)
	}

	var b strings.Builder
	b.WriteString(pageHeader)
	for _, rec := range records {
		entry := kanjipedia.FromRecord(rec)
		block, err := entry.RenderHTML()
		if err != nil {
			return "", fmt.Errorf("render %s: %w", rec.Character, err)
		}
		b.WriteString(block)
		b.WriteString("\n<hr />\n")
	}
	b.WriteString(pageFooter)
	return b.String(), nil
}

// WriteIndexPage writes the page to index.html under outDir.
func WriteIndexPage(conn *sql.DB, outDir string) error {
	page, err := RenderIndexPage(conn)
	if err != nil {
		return err
	}
	path := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(path, []byte(page), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
