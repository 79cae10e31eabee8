// Package feed parses the sighting feed written by the plane-alert capture
// process.
package feed

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/planefence/planealert/pkg/csvfile"
)

// ErrFeedUnavailable means the feed file could not be opened. It is distinct
// from an empty feed: "no alerts" is a normal run, "no feed" is not.
var ErrFeedUnavailable = errors.New("alert feed unavailable")

// AlertRecord is one sighting row.
//
// PlaneDesc, Date, Time, Lat, Long and AdsbxURL keep their source bytes
// untouched: they end up in display text and URLs where added or removed
// whitespace changes meaning.
type AlertRecord struct {
	ICAO      string
	TailNum   string
	Owner     string
	PlaneDesc string
	Date      string
	Time      string
	Lat       string
	Long      string
	Callsign  string
	AdsbxURL  string
	Squawk    string
}

const minFields = 10

// IsValidRow is the single validity bar for sighting rows. The capture
// process occasionally emits partial rows, those are dropped here rather
// than treated as errors.
func IsValidRow(row []string) bool {
	if len(row) < minFields {
		return false
	}

	return !strings.HasPrefix(row[0], "#")
}

// Load reads the alert feed at path, in file order. Invalid rows are
// silently skipped.
func Load(path string) ([]AlertRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrFeedUnavailable, err.Error())
	}
	defer f.Close()

	return Read(f)
}

// Read is Load for an already opened stream.
func Read(r io.Reader) ([]AlertRecord, error) {
	rows, err := csvfile.ReadAll(r)
	if err != nil {
		return nil, err
	}

	alerts := make([]AlertRecord, 0, len(rows))

	for _, row := range rows {
		if !IsValidRow(row) {
			continue
		}

		// ICAO,TailNr,Owner,PlaneDescription,date,time,lat,lon,callsign,adsbx_url,squawk
		rec := AlertRecord{
			ICAO:      strings.TrimSpace(row[0]),
			TailNum:   strings.TrimSpace(row[1]),
			Owner:     strings.TrimSpace(row[2]),
			PlaneDesc: row[3],
			Date:      row[4],
			Time:      row[5],
			Lat:       row[6],
			Long:      row[7],
			Callsign:  strings.TrimSpace(row[8]),
			AdsbxURL:  row[9],
		}

		if len(row) > 10 {
			rec.Squawk = strings.TrimSpace(row[10])
		}

		alerts = append(alerts, rec)
	}

	return alerts, nil
}
