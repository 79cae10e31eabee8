// Package alert turns raw sightings into enriched, displayable alerts.
package alert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/planefence/planealert/pkg/feed"
	"github.com/planefence/planealert/pkg/planedb"
	"github.com/planefence/planealert/pkg/util"
)

// Embed colors, 24-bit RGB. Red for emergencies, planefence yellow for
// everything else.
const (
	ColorEmergency = 0xff0000
	ColorRoutine   = 0xf2e718
)

// ErrNoICAO means a record without an ICAO address reached enrichment. The
// feed loader's validity bar should make that impossible.
var ErrNoICAO = errors.New("alert record has no icao address")

var emergencySquawks = util.NewStringSet("7700", "7600", "7500")

// IsEmergency reports whether squawk is one of the reserved emergency codes.
// Codes compare as 4-character strings, "0500" is not "500".
func IsEmergency(squawk string) bool {
	return emergencySquawks.Has(squawk)
}

// EnrichedAlert is a sighting joined with its database entry plus the
// derived display fields.
type EnrichedAlert struct {
	feed.AlertRecord

	Ref planedb.ReferenceEntry

	IsEmergency  bool
	TrackingLink string
	Title        string
	Color        int
	Description  string
}

// Enrich joins rec with its database entry and computes the display fields.
// A miss in the database is fine, the entry is just empty.
func Enrich(rec feed.AlertRecord, db *planedb.Registry) (EnrichedAlert, error) {
	if rec.ICAO == "" {
		return EnrichedAlert{}, ErrNoICAO
	}

	ea := EnrichedAlert{
		AlertRecord:  rec,
		Ref:          db.Lookup(rec.ICAO),
		IsEmergency:  IsEmergency(rec.Squawk),
		TrackingLink: FlightAwareLink(rec.ICAO, rec.TailNum),
	}

	if ea.IsEmergency {
		ea.Title = fmt.Sprintf("Air Emergency! %s squawked %s", rec.TailNum, rec.Squawk)
		ea.Color = ColorEmergency
	} else {
		ea.Title = "Plane Alert - " + rec.PlaneDesc
		ea.Color = ColorRoutine
	}

	ea.Description = description(rec)

	return ea, nil
}

func description(rec feed.AlertRecord) string {
	sb := strings.Builder{}

	if rec.Owner != "" {
		sb.WriteString("Operated by **" + rec.Owner + "**\n")
	}

	sb.WriteString("[Track on ADS-B Exchange](" + rec.AdsbxURL + ")")

	return sb.String()
}

// FlightAwareLink builds the canonical tracking URL for an airframe.
// Brackets show up in both ids in upstream data and break the path segments,
// so they are stripped along with any surrounding whitespace.
func FlightAwareLink(icao, tailNum string) string {
	return fmt.Sprintf("https://flightaware.com/live/modes/%s/ident/%s/redirect",
		cleanID(icao), cleanID(tailNum))
}

func cleanID(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "[", "")

	return strings.ReplaceAll(s, "]", "")
}
