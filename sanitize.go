package ics

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

const (
	icalTimestampFormatUtc = "20060102T150405Z"
	icalDateFormatLocal    = "20060102"
)

// sanitize transforms a raw property value according to its key. Timestamp
// keys produce a full UTC timestamp, date keys a local date, and everything
// else is treated as free text: delimiter-escaped and coerced to UTF-8.
func (b *Builder) sanitize(key string, value any) (string, error) {
	switch Property(key) {
	case PropertyDtstart, PropertyDtend, "dtstamp":
		t, err := b.resolveTime(value)
		if err != nil {
			return "", err
		}
		return t.UTC().Format(icalTimestampFormatUtc), nil
	case PropertyDtstartDate, PropertyDtendDate:
		t, err := b.resolveTime(value)
		if err != nil {
			return "", err
		}
		return t.In(b.loc).Format(icalDateFormatLocal), nil
	default:
		return toUTF8(escapeText(stringify(value))), nil
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// toUTF8 converts legacy single-byte text to UTF-8. Windows-1252 covers the
// non-UTF-8 sources seen in practice (and is a superset of Latin-1's printable
// range); when decoding fails the original bytes pass through unchanged
// rather than raising an error.
func toUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	converted, err := charmap.Windows1252.NewDecoder().String(s)
	if err != nil {
		return s
	}
	return converted
}
