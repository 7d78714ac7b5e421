// Package db stores kanji entries and the derived reading map in
// SQLite. Set-valued fields are stored as JSON arrays and queried with
// the JSON1 json_each table-valued function.
package db

import (
	"database/sql"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

const migrationsSQL = `
CREATE TABLE IF NOT EXISTS kanji (
	kanji TEXT PRIMARY KEY,
	origin_url TEXT NOT NULL DEFAULT '',
	old_forms TEXT NOT NULL DEFAULT '[]',
	radical TEXT NOT NULL DEFAULT '',
	semantic_comp TEXT NOT NULL DEFAULT '[]',
	phonetic_comp TEXT NOT NULL DEFAULT '',
	types TEXT NOT NULL DEFAULT '[]',
	related_kanji TEXT NOT NULL DEFAULT '[]',
	onyomi TEXT NOT NULL DEFAULT '[]',
	onyomi_ext TEXT NOT NULL DEFAULT '[]',
	kunyomi TEXT NOT NULL DEFAULT '[]',
	kunyomi_ext TEXT NOT NULL DEFAULT '[]'
);

CREATE INDEX IF NOT EXISTS idx_kanji_phonetic ON kanji(phonetic_comp);

CREATE TABLE IF NOT EXISTS kunyomi (
	reading TEXT PRIMARY KEY,
	characters_primary TEXT NOT NULL DEFAULT '[]',
	characters_extended TEXT NOT NULL DEFAULT '[]'
)
`

// InitDB runs migrations on the given DB connection using the embedded SQL.
func InitDB(db *sql.DB) error {
	stmts := strings.Split(migrationsSQL, ";")
	for _, s := range stmts {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}
