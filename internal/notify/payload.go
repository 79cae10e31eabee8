// Package notify builds notification payloads and delivers them to the
// configured chat webhooks.
package notify

import (
	"fmt"

	"github.com/planefence/planealert/pkg/alert"
)

// Field is one label/value pair of a payload. Order matters: the delivery
// channel must render fields in slice order.
type Field struct {
	Name  string
	Value string
}

// Payload is one outbound message, channel-agnostic.
type Payload struct {
	Title       string
	Description string
	Color       int
	Fields      []Field
	ImageURL    string
}

func (p *Payload) addField(name, value string) {
	p.Fields = append(p.Fields, Field{Name: name, Value: value})
}

// BuildPayload assembles the message for one enriched alert. A field is
// included only when its value is non-empty; inclusion order is fixed.
func BuildPayload(ea alert.EnrichedAlert, feederName string) Payload {
	p := Payload{
		Title:       ea.Title,
		Description: ea.Description,
		Color:       ea.Color,
	}

	if feederName != "" {
		p.addField("Feeder", feederName)
	}

	p.addField("ICAO", ea.ICAO)
	p.addField("Tail Number", fmt.Sprintf("[%s](%s)", ea.TailNum, ea.TrackingLink))

	if ea.Callsign != "" {
		p.addField("Callsign", ea.Callsign)
	}

	if ea.Ref.Category != "" {
		p.addField("Category", ea.Ref.Category)
	}

	if ea.Ref.Tag1 != "" {
		p.addField("Tag", ea.Ref.Tag1)
	}

	if ea.Ref.Tag2 != "" {
		p.addField("Tag", ea.Ref.Tag2)
	}

	if ea.Ref.Tag3 != "" {
		p.addField("Tag", ea.Ref.Tag3)
	}

	if ea.Ref.Link != "" {
		p.addField("Link", fmt.Sprintf("[Learn More](%s)", ea.Ref.Link))
	}

	return p
}
