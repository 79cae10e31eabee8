// Package planedb holds the static plane-alert database: one row per known
// airframe, keyed by ICAO hex address.
package planedb

import (
	"io"
	"os"
	"strings"

	"github.com/planefence/planealert/pkg/csvfile"
)

// ReferenceEntry is one row of the database. Only ICAO is guaranteed to be
// set: the column list has grown over the years and older rows are shorter,
// so every other field may be empty.
type ReferenceEntry struct {
	ICAO      string
	TailNum   string
	Owner     string
	Type      string
	ICAOType  string
	Authority string
	Tag1      string
	Tag2      string
	Tag3      string
	Category  string
	Link      string
}

// Registry is the loaded database. It is built once at startup and read-only
// afterwards.
type Registry struct {
	entries map[string]ReferenceEntry
}

// Load reads a comma-delimited database file. Lines whose first field starts
// with '#' are comments. Short rows load with empty trailing fields, and a
// duplicated ICAO keeps the later row.
func Load(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

// Read is Load for an already opened stream.
func Read(r io.Reader) (*Registry, error) {
	rows, err := csvfile.ReadAll(r)
	if err != nil {
		return nil, err
	}

	db := &Registry{entries: make(map[string]ReferenceEntry, len(rows))}

	for _, row := range rows {
		if len(row) == 0 || strings.HasPrefix(row[0], "#") {
			continue
		}

		e := ReferenceEntry{
			ICAO:      row[0],
			TailNum:   col(row, 1),
			Owner:     col(row, 2),
			Type:      col(row, 3),
			ICAOType:  col(row, 4),
			Authority: col(row, 5),
			Tag1:      col(row, 6),
			Tag2:      col(row, 7),
			Tag3:      col(row, 8),
			Category:  col(row, 9),
			Link:      col(row, 10),
		}

		db.entries[e.ICAO] = e
	}

	return db, nil
}

// Lookup returns the entry for icao, or an all-empty entry when the address
// is not in the database. Callers check field emptiness, not presence.
func (db *Registry) Lookup(icao string) ReferenceEntry {
	return db.entries[icao]
}

func (db *Registry) Len() int {
	return len(db.entries)
}

func col(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}

	return ""
}
