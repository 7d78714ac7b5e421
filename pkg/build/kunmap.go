// Package build produces the derived artifacts of the kanji store:
// the kun-reading relationship map, its JSON export for graph
// visualizers, and the static HTML index page.
package build

import (
	"database/sql"
	"fmt"
	"log"
	"sort"
	"time"

	"github.com/morg/kanjidex/pkg/db"
)

// RebuildKunyomiMap aggregates kun readings across every stored entry
// and rewrites the kunyomi table wholesale. The map is derived data;
// there is no incremental update path.
func RebuildKunyomiMap(conn *sql.DB, logger *log.Logger) (int, error) {
	start := time.Now()
	if logger != nil {
		logger.Println("Retrieving kunyomi data...")
	}

	records, err := db.AllKanji(conn)
	if err != nil {
		return 0, fmt.Errorf("load kanji records: %w", err)
	}

	primary := map[string][]string{}
	extended := map[string][]string{}
	for _, rec := range records {
		for _, kun := range rec.Kunyomi {
			primary[kun] = append(primary[kun], rec.Character)
		}
		for _, kun := range rec.KunyomiExt {
			extended[kun] = append(extended[kun], rec.Character)
		}
	}

	readings := map[string]bool{}
	for kun := range primary {
		readings[kun] = true
	}
	for kun := range extended {
		readings[kun] = true
	}
	ordered := make([]string, 0, len(readings))
	for kun := range readings {
		ordered = append(ordered, kun)
	}
	sort.Strings(ordered)

	if logger != nil {
		logger.Printf("Done. (Elapsed: %dms)", time.Since(start).Milliseconds())
		logger.Println("Populating database with new kunyomi data...")
	}
	start = time.Now()

	tx, err := conn.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin rebuild tx: %w", err)
	}
	defer tx.Rollback()

	if err := db.ClearKunyomi(tx); err != nil {
		return 0, fmt.Errorf("clear kunyomi map: %w", err)
	}
	for _, kun := range ordered {
		rec := db.KunyomiRecord{
			Reading:            kun,
			CharactersPrimary:  sorted(primary[kun]),
			CharactersExtended: sorted(extended[kun]),
		}
		if err := db.UpsertKunyomiRecord(tx, rec); err != nil {
			return 0, err
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit rebuild tx: %w", err)
	}

	if logger != nil {
		logger.Printf("Done. (Elapsed: %dms)", time.Since(start).Milliseconds())
	}
	return len(ordered), nil
}

func sorted(values []string) []string {
	out := make([]string, len(values))
	copy(out, values)
	sort.Strings(out)
	return out
}
