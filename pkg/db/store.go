package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/morg/kanjidex/pkg/kanjipedia"
)

// DBExecutor is an interface that allows methods to accept either *sql.DB or *sql.Tx
type DBExecutor interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

const kanjiColumns = `kanji, origin_url, old_forms, radical, semantic_comp, phonetic_comp,
	types, related_kanji, onyomi, onyomi_ext, kunyomi, kunyomi_ext`

// marshalList encodes a string list as a JSON array, never null.
func marshalList(values []string) string {
	if values == nil {
		values = []string{}
	}
	b, _ := json.Marshal(values)
	return string(b)
}

func unmarshalList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// UpsertKanji inserts the record or replaces the existing row for the
// same character.
func UpsertKanji(db DBExecutor, rec kanjipedia.Record) error {
	if strings.TrimSpace(rec.Character) == "" {
		return fmt.Errorf("kanji must be non-empty")
	}
	_, err := db.Exec(`INSERT INTO kanji (`+kanjiColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(kanji) DO UPDATE SET
		  origin_url = excluded.origin_url,
		  old_forms = excluded.old_forms,
		  radical = excluded.radical,
		  semantic_comp = excluded.semantic_comp,
		  phonetic_comp = excluded.phonetic_comp,
		  types = excluded.types,
		  related_kanji = excluded.related_kanji,
		  onyomi = excluded.onyomi,
		  onyomi_ext = excluded.onyomi_ext,
		  kunyomi = excluded.kunyomi,
		  kunyomi_ext = excluded.kunyomi_ext`,
		rec.Character, rec.OriginRef, marshalList(rec.OldForms), rec.Radical,
		marshalList(rec.SemanticComponents), rec.PhoneticComponent,
		marshalList(rec.Classification), marshalList(rec.RelatedKanji),
		marshalList(rec.Onyomi), marshalList(rec.OnyomiExt),
		marshalList(rec.Kunyomi), marshalList(rec.KunyomiExt))
	if err != nil {
		return fmt.Errorf("upsert kanji %s: %w", rec.Character, err)
	}
	return nil
}

// RemoveKanji deletes the row for the given character, if present.
func RemoveKanji(db DBExecutor, character string) error {
	_, err := db.Exec(`DELETE FROM kanji WHERE kanji = ?`, character)
	return err
}

func scanRecord(rows *sql.Rows) (kanjipedia.Record, error) {
	var rec kanjipedia.Record
	var oldForms, semantic, types, related, on, onExt, kun, kunExt string
	err := rows.Scan(&rec.Character, &rec.OriginRef, &oldForms, &rec.Radical,
		&semantic, &rec.PhoneticComponent, &types, &related,
		&on, &onExt, &kun, &kunExt)
	if err != nil {
		return rec, err
	}
	rec.OldForms = unmarshalList(oldForms)
	rec.SemanticComponents = unmarshalList(semantic)
	rec.Classification = unmarshalList(types)
	rec.RelatedKanji = unmarshalList(related)
	rec.Onyomi = unmarshalList(on)
	rec.OnyomiExt = unmarshalList(onExt)
	rec.Kunyomi = unmarshalList(kun)
	rec.KunyomiExt = unmarshalList(kunExt)
	return rec, nil
}

func queryRecords(db DBExecutor, where string, args ...interface{}) ([]kanjipedia.Record, error) {
	q := `SELECT ` + kanjiColumns + ` FROM kanji`
	if where != "" {
		q += ` WHERE ` + where
	}
	q += ` ORDER BY kanji`
	rows, err := db.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []kanjipedia.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// GetKanji returns the record for one character. sql.ErrNoRows is
// wrapped when the character is absent.
func GetKanji(db DBExecutor, character string) (kanjipedia.Record, error) {
	recs, err := queryRecords(db, `kanji = ?`, character)
	if err != nil {
		return kanjipedia.Record{}, err
	}
	if len(recs) == 0 {
		return kanjipedia.Record{}, fmt.Errorf("kanji %s: %w", character, sql.ErrNoRows)
	}
	return recs[0], nil
}

// AllKanji returns every stored record ordered by character.
func AllKanji(db DBExecutor) ([]kanjipedia.Record, error) {
	return queryRecords(db, "")
}

// FindByPhonetic returns records whose phonetic component exactly
// matches comp.
func FindByPhonetic(db DBExecutor, comp string) ([]kanjipedia.Record, error) {
	return queryRecords(db, `phonetic_comp = ? AND phonetic_comp != ''`, comp)
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

// FindTypesAny returns records whose classification contains at least
// one of the given tags.
func FindTypesAny(db DBExecutor, types ...string) ([]kanjipedia.Record, error) {
	if len(types) == 0 {
		return nil, nil
	}
	args := make([]interface{}, len(types))
	for i, t := range types {
		args[i] = t
	}
	where := `EXISTS (SELECT 1 FROM json_each(kanji.types)
		WHERE json_each.value IN (` + placeholders(len(types)) + `))`
	return queryRecords(db, where, args...)
}

// FindTypesAll returns records whose classification contains every one
// of the given tags.
func FindTypesAll(db DBExecutor, types ...string) ([]kanjipedia.Record, error) {
	if len(types) == 0 {
		return nil, nil
	}
	where := `NOT EXISTS (SELECT 1 FROM json_each(?) AS want
		WHERE want.value NOT IN (SELECT value FROM json_each(kanji.types)))`
	return queryRecords(db, where, marshalList(types))
}

// FindKunyomi returns records whose primary or extended kun readings
// contain the given reading.
func FindKunyomi(db DBExecutor, reading string) ([]kanjipedia.Record, error) {
	where := `EXISTS (SELECT 1 FROM json_each(kanji.kunyomi) WHERE json_each.value = ?)
		OR EXISTS (SELECT 1 FROM json_each(kanji.kunyomi_ext) WHERE json_each.value = ?)`
	return queryRecords(db, where, reading, reading)
}

// KunyomiRecord is one row of the derived reading map: the characters
// whose primary / extended kun readings equal the key reading.
type KunyomiRecord struct {
	Reading            string
	CharactersPrimary  []string
	CharactersExtended []string
}

// UpsertKunyomiRecord inserts or replaces one reading-map row.
func UpsertKunyomiRecord(db DBExecutor, rec KunyomiRecord) error {
	if strings.TrimSpace(rec.Reading) == "" {
		return fmt.Errorf("reading must be non-empty")
	}
	_, err := db.Exec(`INSERT INTO kunyomi (reading, characters_primary, characters_extended)
		VALUES (?, ?, ?)
		ON CONFLICT(reading) DO UPDATE SET
		  characters_primary = excluded.characters_primary,
		  characters_extended = excluded.characters_extended`,
		rec.Reading, marshalList(rec.CharactersPrimary), marshalList(rec.CharactersExtended))
	if err != nil {
		return fmt.Errorf("upsert kunyomi %s: %w", rec.Reading, err)
	}
	return nil
}

// ClearKunyomi empties the reading map ahead of a wholesale rebuild.
func ClearKunyomi(db DBExecutor) error {
	_, err := db.Exec(`DELETE FROM kunyomi`)
	return err
}

// AllKunyomiRecords returns the whole reading map ordered by reading.
func AllKunyomiRecords(db DBExecutor) ([]KunyomiRecord, error) {
	rows, err := db.Query(`SELECT reading, characters_primary, characters_extended
		FROM kunyomi ORDER BY reading`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []KunyomiRecord
	for rows.Next() {
		var rec KunyomiRecord
		var primary, extended string
		if err := rows.Scan(&rec.Reading, &primary, &extended); err != nil {
			return nil, err
		}
		rec.CharactersPrimary = unmarshalList(primary)
		rec.CharactersExtended = unmarshalList(extended)
		out = append(out, rec)
	}
	return out, rows.Err()
}
