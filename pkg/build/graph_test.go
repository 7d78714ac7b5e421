package build

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/morg/kanjidex/pkg/db"
)

func TestGraphDataSuffixes(t *testing.T) {
	conn := setupTestDB(t)

	for _, rec := range []db.KunyomiRecord{
		{Reading: "か.える", CharactersPrimary: []string{"変"}, CharactersExtended: []string{"換"}},
		{Reading: "やま", CharactersPrimary: []string{"山"}},
		{Reading: "お.き.る", CharactersPrimary: []string{"起"}},
	} {
		if err := db.UpsertKunyomiRecord(conn, rec); err != nil {
			t.Fatalf("upsert %s: %v", rec.Reading, err)
		}
	}

	records, err := GraphData(conn)
	if err != nil {
		t.Fatalf("GraphData: %v", err)
	}
	byReading := map[string]KunMapRecord{}
	for _, r := range records {
		byReading[r.Reading] = r
	}

	kaeru := byReading["か.える"]
	if kaeru.ReadingWithoutBoundary != "かえる" {
		t.Errorf("reading_without_boundary = %q", kaeru.ReadingWithoutBoundary)
	}
	if !reflect.DeepEqual(kaeru.CharactersPrimaryWithSuffix, []string{"変える"}) {
		t.Errorf("primary_with_suffix = %v", kaeru.CharactersPrimaryWithSuffix)
	}
	if !reflect.DeepEqual(kaeru.CharactersExtendedWithSuffix, []string{"換える"}) {
		t.Errorf("extended_with_suffix = %v", kaeru.CharactersExtendedWithSuffix)
	}

	// No boundary marker: the suffixed list equals the plain list.
	yama := byReading["やま"]
	if !reflect.DeepEqual(yama.CharactersPrimaryWithSuffix, []string{"山"}) {
		t.Errorf("yama primary_with_suffix = %v", yama.CharactersPrimaryWithSuffix)
	}

	// Multiple boundary markers: no well-defined suffix.
	okiru := byReading["お.き.る"]
	if !reflect.DeepEqual(okiru.CharactersPrimaryWithSuffix, []string{"起"}) {
		t.Errorf("okiru primary_with_suffix = %v", okiru.CharactersPrimaryWithSuffix)
	}
}

func TestWriteGraphData(t *testing.T) {
	conn := setupTestDB(t)
	if err := db.UpsertKunyomiRecord(conn, db.KunyomiRecord{
		Reading:           "やま",
		CharactersPrimary: []string{"山"},
	}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	dir := t.TempDir()
	if err := WriteGraphData(conn, dir); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "kun_map.json"))
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	var records []KunMapRecord
	if err := json.Unmarshal(data, &records); err != nil {
		t.Fatalf("decode export: %v", err)
	}
	if len(records) != 1 || records[0].Reading != "やま" {
		t.Fatalf("export = %+v", records)
	}
	// Lists must encode as arrays, never null.
	if records[0].CharactersExtended == nil {
		t.Errorf("characters_extended decoded as null")
	}
}
