package airtablemock

import (
	"encoding/json"
	"io"
	"slices"

	"golang.org/x/exp/maps"
)

// ExportJSON writes every base, table and record as one indented JSON
// document shaped base ID, then table name, then records in insertion
// order. Together with ImportJSON it turns the whole registry into a test
// fixture file.
func ExportJSON(w io.Writer) error {
	store.mu.Lock()
	snapshot := make(map[string]map[string][]Record, len(store.bases))
	for baseID, b := range store.bases {
		tables := make(map[string][]Record, len(b.tables))
		for tableName, t := range b.tables {
			tables[tableName] = t.records()
		}
		snapshot[baseID] = tables
	}
	store.mu.Unlock()

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(snapshot)
}

// ImportJSON loads a document in the ExportJSON shape into the registry on
// top of what is already there. Records keep their IDs; a record without
// one gets a fresh random ID. Bases and tables load in name order so that a
// seeded random source yields the same IDs on every run.
func ImportJSON(r io.Reader) error {
	var snapshot map[string]map[string][]Record
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return err
	}

	store.mu.Lock()
	defer store.mu.Unlock()

	baseIDs := maps.Keys(snapshot)
	slices.Sort(baseIDs)
	for _, baseID := range baseIDs {
		tableNames := maps.Keys(snapshot[baseID])
		slices.Sort(tableNames)
		for _, tableName := range tableNames {
			t := store.ensureTable(baseID, tableName)
			for _, record := range snapshot[baseID][tableName] {
				id := record.ID
				if id == "" {
					fresh, err := t.freshID()
					if err != nil {
						return err
					}
					id = fresh
				}
				t.insert(id, cloneFields(record.Fields))
			}
		}
	}
	return nil
}
