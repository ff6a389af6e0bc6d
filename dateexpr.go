package ics

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// relativeExpression matches the supported relative date grammar: the word
// "now", optionally followed by a signed offset such as "+ 1 hour" or
// "- 30 minutes".
var relativeExpression = regexp.MustCompile(`(?i)^now(?:\s*([+-])\s*([0-9]+)\s*(second|minute|hour|day|week|month|year)s?)?$`)

// absoluteLayouts are tried in order when an expression is not relative.
// Layouts without a zone marker are interpreted in the builder's location;
// the trailing-Z layout is taken as UTC.
var absoluteLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"20060102T150405Z",
	"2006-01-02",
	"20060102",
}

func (b *Builder) resolveTime(value any) (time.Time, error) {
	switch v := value.(type) {
	case time.Time:
		return v, nil
	case *time.Time:
		return *v, nil
	case string:
		return b.parseDateExpression(v)
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported value type %T", ErrDateParse, value)
	}
}

// parseDateExpression interprets expr as a point in time anchored to the
// builder's clock and location. The accepted grammar is either one of the
// absolute layouts above or a relative expression such as "now + 1 hour".
// Expressions outside the grammar fail wrapping ErrDateParse.
func (b *Builder) parseDateExpression(expr string) (time.Time, error) {
	s := strings.TrimSpace(expr)
	if m := relativeExpression.FindStringSubmatch(s); m != nil {
		t := b.now().In(b.loc)
		if m[1] == "" {
			return t, nil
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, expr)
		}
		if m[1] == "-" {
			n = -n
		}
		switch strings.ToLower(m[3]) {
		case "second":
			return t.Add(time.Duration(n) * time.Second), nil
		case "minute":
			return t.Add(time.Duration(n) * time.Minute), nil
		case "hour":
			return t.Add(time.Duration(n) * time.Hour), nil
		case "day":
			return t.AddDate(0, 0, n), nil
		case "week":
			return t.AddDate(0, 0, 7*n), nil
		case "month":
			return t.AddDate(0, n, 0), nil
		case "year":
			return t.AddDate(n, 0, 0), nil
		}
	}
	for _, layout := range absoluteLayouts {
		loc := b.loc
		if strings.HasSuffix(layout, "Z") {
			loc = time.UTC
		}
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, expr)
}
