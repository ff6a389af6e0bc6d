package ics

import (
	"strings"
	"unicode/utf8"
)

// Field is a single key/value input to a Builder, either a calendar-level
// property or one entry of an event definition. Keys are matched
// case-insensitively against the recognized property names; anything else is
// carried through to the output as a custom iCalendar property. Value may be
// a string, a time.Time (for the timestamp and date properties) or anything
// printable.
type Field struct {
	Key   string
	Value any
}

// EventField is one stored content line of a serialized component, already
// sanitized and formatted. Serialization emits it as Key + ":" + Value.
type EventField struct {
	Key   string
	Value string
}

// Property enumerates the recognized calendar property keys. Input keys
// outside this set are silently ignored by Set; on events they pass through
// verbatim as custom properties.
type Property string

const (
	PropertyDescription Property = "description"
	PropertyDtstart     Property = "dtstart"
	PropertyDtend       Property = "dtend"
	PropertyDtstartDate Property = "dtstart_date"
	PropertyDtendDate   Property = "dtend_date"
	PropertyLocation    Property = "location"
	PropertySummary     Property = "summary"
	PropertyUrl         Property = "url"
)

// recognizedProperties is the closed set of keys that go through the value
// sanitizer. Lookup keys must be lower-cased first.
var recognizedProperties = map[Property]struct{}{
	PropertyDescription: {},
	PropertyDtstart:     {},
	PropertyDtend:       {},
	PropertyDtstartDate: {},
	PropertyDtendDate:   {},
	PropertyLocation:    {},
	PropertySummary:     {},
	PropertyUrl:         {},
}

func recognizedProperty(key string) bool {
	_, ok := recognizedProperties[Property(key)]
	return ok
}

// textEscaper prefixes the iCalendar value delimiters with a backslash.
// This set is deliberately narrower than the TEXT escaping of RFC 5545
// section 3.3.11, which also covers backslash and newline; existing consumers
// of the produced documents depend on those passing through untouched.
var textEscaper = strings.NewReplacer(
	`,`, `\,`,
	`;`, `\;`,
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

const (
	// foldWidth is the chunk length used when folding long description
	// values.
	foldWidth = 60
	// foldedLineSeparator starts a continuation line per RFC 5545 section
	// 3.1: a CRLF followed by a single space.
	foldedLineSeparator = "\r\n "
)

// foldValue splits s into consecutive chunks of width runes joined by the
// continuation separator. Values of width runes or fewer come back unchanged,
// so short descriptions serialize as a single content line.
func foldValue(s string, width int) string {
	if utf8.RuneCountInString(s) <= width {
		return s
	}
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + len(foldedLineSeparator)*(len(runes)/width))
	for i := 0; i < len(runes); i += width {
		if i > 0 {
			b.WriteString(foldedLineSeparator)
		}
		end := i + width
		if end > len(runes) {
			end = len(runes)
		}
		b.WriteString(string(runes[i:end]))
	}
	return b.String()
}
