package notify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planefence/planealert/pkg/alert"
	"github.com/planefence/planealert/pkg/feed"
	"github.com/planefence/planealert/pkg/planedb"
)

const (
	dbRow    = "A51316,N426NA,NASA,Lockheed P-3B Orion,P3,Gov,Sce To Aux,Airborne Science,Wallops Flight Facility,Distinctive,https://nasa.gov\n"
	alertRow = "A51316,N426NA,NASA,Lockheed P-3B Orion,2022-01-01,12:00:00,10.0,-70.0,NASA1,https://adsbexchange.com/x,1200\n"
)

func enrichedFromRows(t *testing.T, dbData, alertData string) alert.EnrichedAlert {
	t.Helper()

	db, err := planedb.Read(strings.NewReader(dbData))
	require.NoError(t, err)

	alerts, err := feed.Read(strings.NewReader(alertData))
	require.NoError(t, err)
	require.Len(t, alerts, 1)

	ea, err := alert.Enrich(alerts[0], db)
	require.NoError(t, err)

	return ea
}

func TestBuildPayload(t *testing.T) {
	ea := enrichedFromRows(t, dbRow, alertRow)
	p := BuildPayload(ea, "")

	assert.Equal(t, "Plane Alert - Lockheed P-3B Orion", p.Title)
	assert.Equal(t, alert.ColorRoutine, p.Color)

	require.Len(t, p.Fields, 8)
	assert.Equal(t, Field{"ICAO", "A51316"}, p.Fields[0])
	assert.Equal(t, Field{"Tail Number", "[N426NA](https://flightaware.com/live/modes/A51316/ident/N426NA/redirect)"}, p.Fields[1])
	assert.Equal(t, Field{"Callsign", "NASA1"}, p.Fields[2])
	assert.Equal(t, Field{"Category", "Distinctive"}, p.Fields[3])
	assert.Equal(t, Field{"Tag", "Sce To Aux"}, p.Fields[4])
	assert.Equal(t, Field{"Tag", "Airborne Science"}, p.Fields[5])
	assert.Equal(t, Field{"Tag", "Wallops Flight Facility"}, p.Fields[6])
	assert.Equal(t, Field{"Link", "[Learn More](https://nasa.gov)"}, p.Fields[7])
}

func TestBuildPayloadEmergency(t *testing.T) {
	row := strings.Replace(alertRow, ",1200", ",7500", 1)
	ea := enrichedFromRows(t, dbRow, row)
	p := BuildPayload(ea, "")

	assert.Equal(t, "Air Emergency! N426NA squawked 7500", p.Title)
	assert.Equal(t, alert.ColorEmergency, p.Color)

	// everything but title and color is unchanged
	require.Len(t, p.Fields, 8)
	assert.Equal(t, Field{"ICAO", "A51316"}, p.Fields[0])
	assert.Equal(t, Field{"Link", "[Learn More](https://nasa.gov)"}, p.Fields[7])
}

func TestBuildPayloadFeeder(t *testing.T) {
	ea := enrichedFromRows(t, dbRow, alertRow)
	p := BuildPayload(ea, "My Feeder")

	require.NotEmpty(t, p.Fields)
	assert.Equal(t, Field{"Feeder", "My Feeder"}, p.Fields[0])
	assert.Equal(t, Field{"ICAO", "A51316"}, p.Fields[1])
}

func TestBuildPayloadNoDbEntry(t *testing.T) {
	ea := enrichedFromRows(t, "", alertRow)
	p := BuildPayload(ea, "")

	// no category, tags or link without a db hit
	require.Len(t, p.Fields, 3)
	assert.Equal(t, "ICAO", p.Fields[0].Name)
	assert.Equal(t, "Tail Number", p.Fields[1].Name)
	assert.Equal(t, "Callsign", p.Fields[2].Name)
}

func TestBuildPayloadPartialTags(t *testing.T) {
	db := "A51316,N426NA,NASA,P-3,P3,Gov,,Airborne Science\n"
	ea := enrichedFromRows(t, db, alertRow)
	p := BuildPayload(ea, "")

	// tag fields are independent: an empty tag1 does not hide tag2
	require.Len(t, p.Fields, 4)
	assert.Equal(t, Field{"Tag", "Airborne Science"}, p.Fields[3])
}
