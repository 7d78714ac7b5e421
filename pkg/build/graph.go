package build

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/morg/kanjidex/pkg/db"
)

const okuriganaBoundary = "."

// KunMapRecord is one reading in the graph JSON export. The WithSuffix
// variants append the okurigana portion to each character when the
// reading carries exactly one boundary marker; otherwise they equal
// the plain lists.
type KunMapRecord struct {
	Reading                      string   `json:"reading"`
	ReadingWithoutBoundary       string   `json:"reading_without_boundary_marker"`
	CharactersPrimary            []string `json:"characters_primary"`
	CharactersPrimaryWithSuffix  []string `json:"characters_primary_with_suffix"`
	CharactersExtended           []string `json:"characters_extended"`
	CharactersExtendedWithSuffix []string `json:"characters_extended_with_suffix"`
}

// GraphData builds the export records from the stored reading map.
func GraphData(conn *sql.DB) ([]KunMapRecord, error) {
	rows, err := db.AllKunyomiRecords(conn)
	if err != nil {
		return nil, fmt.Errorf("load kunyomi map: %w", err)
	}
	out := make([]KunMapRecord, 0, len(rows))
	for _, row := range rows {
		rec := KunMapRecord{
			Reading:                row.Reading,
			ReadingWithoutBoundary: strings.ReplaceAll(row.Reading, okuriganaBoundary, ""),
			CharactersPrimary:      emptyIfNil(row.CharactersPrimary),
			CharactersExtended:     emptyIfNil(row.CharactersExtended),
		}
		rec.CharactersPrimaryWithSuffix = withSuffix(row.Reading, rec.CharactersPrimary)
		rec.CharactersExtendedWithSuffix = withSuffix(row.Reading, rec.CharactersExtended)
		out = append(out, rec)
	}
	return out, nil
}

// WriteGraphData writes the export to kun_map.json under outDir.
func WriteGraphData(conn *sql.DB, outDir string) error {
	records, err := GraphData(conn)
	if err != nil {
		return err
	}
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode graph data: %w", err)
	}
	path := filepath.Join(outDir, "kun_map.json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// withSuffix appends the okurigana (the text after the boundary) to
// each character. Readings with zero or multiple boundaries have no
// well-defined suffix and pass the list through unchanged.
func withSuffix(reading string, characters []string) []string {
	if strings.Count(reading, okuriganaBoundary) != 1 {
		return characters
	}
	suffix := reading[strings.Index(reading, okuriganaBoundary)+len(okuriganaBoundary):]
	out := make([]string, len(characters))
	for i, c := range characters {
		out[i] = c + suffix
	}
	return out
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
