package ics

import (
	"errors"
)

var (
	// ErrDateParse is the error returned when a value handed to a timestamp
	// or date property cannot be interpreted as a point in time. It is
	// surfaced from Set or AddEvent, never deferred to serialization.
	ErrDateParse = errors.New("unparseable date expression")
)
