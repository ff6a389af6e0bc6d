package ics

import (
	"strings"
)

// Event is one VEVENT block. Fields holds the stored content lines in
// serialization order: the BEGIN marker, the caller's fields in insertion
// order, the four generated defaults and the END marker. All values are
// already sanitized; serialization emits them verbatim.
type Event struct {
	Fields []EventField
}

// UID returns the generated unique identifier assigned when the event was
// added. It is assigned exactly once and never reassigned.
func (e *Event) UID() string {
	for i := range e.Fields {
		if e.Fields[i].Key == fieldUID {
			return e.Fields[i].Value
		}
	}
	return ""
}

// GetField returns the stored value for the given output key, matched
// case-insensitively.
func (e *Event) GetField(key string) (string, bool) {
	for i := range e.Fields {
		if strings.EqualFold(e.Fields[i].Key, key) {
			return e.Fields[i].Value, true
		}
	}
	return "", false
}

// Output property names for the marker and the generated default fields.
const (
	componentVEvent = "VEVENT"

	fieldUID          = "UID"
	fieldDtstamp      = "DTSTAMP"
	fieldLastModified = "LAST-MODIFIED"
	fieldStatus       = "STATUS"
)

// ObjectStatus enumerates STATUS property values (RFC 5545 section 3.8.1.11).
// Generated events are always CONFIRMED.
type ObjectStatus string

const (
	ObjectStatusConfirmed ObjectStatus = "CONFIRMED"
	ObjectStatusTentative ObjectStatus = "TENTATIVE"
	ObjectStatusCancelled ObjectStatus = "CANCELLED"
)

// AddEvent appends one event block built from the given fields, preserving
// their order. Recognized keys are sanitized (and description values folded);
// url and the date-only start/end keys are rewritten with their VALUE
// parameter; every other key passes through verbatim. Final key names are
// upper-cased. Four generated defaults follow the caller's fields:
// LAST-MODIFIED and DTSTAMP (the builder clock, as UTC timestamps), a fresh
// UID and STATUS:CONFIRMED.
//
// A date expression that cannot be parsed fails here with ErrDateParse and
// leaves the builder unchanged.
func (b *Builder) AddEvent(fields ...Field) error {
	e := &Event{
		Fields: []EventField{{Key: "BEGIN", Value: componentVEvent}},
	}
	for _, f := range fields {
		key := strings.ToLower(f.Key)
		var value string
		if recognizedProperty(key) {
			v, err := b.sanitize(key, f.Value)
			if err != nil {
				return err
			}
			value = v
		} else {
			value = stringify(f.Value)
		}
		if Property(key) == PropertyDescription {
			value = foldValue(value, foldWidth)
		}
		outKey := f.Key
		switch Property(key) {
		case PropertyUrl:
			outKey = key + ";VALUE=URI"
		case PropertyDtstartDate:
			outKey = "DTSTART;VALUE=DATE"
		case PropertyDtendDate:
			outKey = "DTEND;VALUE=DATE"
		}
		e.Fields = append(e.Fields, EventField{Key: strings.ToUpper(outKey), Value: value})
	}
	stamp := b.now().UTC().Format(icalTimestampFormatUtc)
	e.Fields = append(e.Fields,
		EventField{Key: fieldLastModified, Value: stamp},
		EventField{Key: fieldDtstamp, Value: stamp},
		EventField{Key: fieldUID, Value: b.newUID()},
		EventField{Key: fieldStatus, Value: string(ObjectStatusConfirmed)},
		EventField{Key: "END", Value: componentVEvent},
	)
	b.events = append(b.events, e)
	return nil
}

// Events returns the owned event sequence in append order.
func (b *Builder) Events() []*Event {
	return b.events
}

// EventCount returns the number of events added so far.
func (b *Builder) EventCount() int {
	return len(b.events)
}
