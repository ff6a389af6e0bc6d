package ics

import (
	"fmt"
	"io"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Builder accumulates calendar-level properties and event blocks and renders
// them as an iCalendar (RFC 5545) document. It owns an append-only event
// sequence; there is no removal or update operation. A Builder has ordinary
// mutable-object semantics and is not safe for concurrent mutation without
// external synchronization.
type Builder struct {
	properties []EventField
	events     []*Event

	now    func() time.Time
	loc    *time.Location
	newUID func() string
}

// Option adjusts a Builder's injected dependencies at construction time.
type Option func(*Builder)

// WithClock replaces the clock used for DTSTAMP, LAST-MODIFIED and
// "now"-relative date expressions. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		b.now = now
	}
}

// WithLocation replaces the timezone that anchors date expressions and names
// the timezone lines of the document header. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return func(b *Builder) {
		b.loc = loc
	}
}

// WithUIDGenerator replaces the UID source used for added events. Defaults to
// uuid.NewString.
func WithUIDGenerator(gen func() string) Option {
	return func(b *Builder) {
		b.newUID = gen
	}
}

// New constructs a Builder. The optional arguments may be Field or []Field
// values, applied in order as initial calendar properties, and Option values
// for the injected clock, location and UID generator. Unsupported argument
// types, and initial date properties that fail to parse, return an error.
func New(opts ...any) (*Builder, error) {
	b := &Builder{
		now:    time.Now,
		loc:    time.Local,
		newUID: uuid.NewString,
	}
	var initial []Field
	for opti, opt := range opts {
		switch opt := opt.(type) {
		case Field:
			initial = append(initial, opt)
		case []Field:
			initial = append(initial, opt...)
		case Option:
			opt(b)
		case func(*Builder):
			opt(b)
		default:
			return nil, fmt.Errorf("unknown optional argument %d on New: %s", opti, reflect.TypeOf(opt))
		}
	}
	if err := b.SetFields(initial...); err != nil {
		return nil, err
	}
	return b, nil
}

// Set stores one calendar-level property. Keys outside the recognized set are
// a silent no-op. Recognized values go through the sanitizer keyed by the
// property name and overwrite any prior value for the same key.
func (b *Builder) Set(key string, value any) error {
	k := strings.ToLower(key)
	if !recognizedProperty(k) {
		return nil
	}
	v, err := b.sanitize(k, value)
	if err != nil {
		return err
	}
	b.setProperty(k, v)
	return nil
}

// SetFields applies each field as an individual Set call, in order.
func (b *Builder) SetFields(fields ...Field) error {
	for _, f := range fields {
		if err := b.Set(f.Key, f.Value); err != nil {
			return err
		}
	}
	return nil
}

func (b *Builder) setProperty(key, value string) {
	for i := range b.properties {
		if b.properties[i].Key == key {
			b.properties[i].Value = value
			return
		}
	}
	b.properties = append(b.properties, EventField{Key: key, Value: value})
}

// GetProperty returns the stored, sanitized value of a calendar-level
// property.
func (b *Builder) GetProperty(key string) (string, bool) {
	k := strings.ToLower(key)
	for i := range b.properties {
		if b.properties[i].Key == k {
			return b.properties[i].Value, true
		}
	}
	return "", false
}

// Fixed header lines. The product identifier and calendar name are constants
// of the generator, not derived from calendar properties.
const (
	headerVersion  = "VERSION:2.0"
	headerProdId   = "PRODID:-//icsforge//icsgen//EN"
	headerCalName  = "X-WR-CALNAME:Calendar"
	headerCalScale = "CALSCALE:GREGORIAN"
	headerMethod   = "METHOD:PUBLISH"
)

// WithNewLine selects the line terminator used between content lines when
// serializing. RFC 5545 section 3.1 requires CRLF, which is the default;
// WithNewLineUnix exists for tooling that post-processes the output.
type WithNewLine string

const (
	WithNewLineUnix    WithNewLine = "\n"
	WithNewLineWindows WithNewLine = "\r\n"
)

// SerializationConfiguration controls how the document is written out.
// NewLine is the separator placed between content lines; there is no
// terminator after the final line. Folded description values always embed
// CRLF continuations regardless of this setting, as they are part of the
// stored value.
type SerializationConfiguration struct {
	NewLine string
}

func defaultSerializationOptions() *SerializationConfiguration {
	return &SerializationConfiguration{
		NewLine: string(WithNewLineWindows),
	}
}

// parseSerializeOps interprets the optional arguments provided to Serialize
// or SerializeTo. It accepts WithNewLine or a *SerializationConfiguration.
// Unsupported types return an error.
func parseSerializeOps(ops []any) (*SerializationConfiguration, error) {
	serializeConfig := defaultSerializationOptions()
	for opi, op := range ops {
		switch op := op.(type) {
		case WithNewLine:
			serializeConfig.NewLine = string(op)
		case *SerializationConfiguration:
			return op, nil
		case error:
			return nil, op
		default:
			return nil, fmt.Errorf("unknown op %d of type %s", opi, reflect.TypeOf(op))
		}
	}
	return serializeConfig, nil
}

// Serialize renders the document as a single string. Rendering is a pure
// function of the builder state: DTSTAMP, LAST-MODIFIED and UID values were
// fixed when each event was added, so repeated calls with no mutation in
// between produce byte-identical output.
func (b *Builder) Serialize(ops ...any) string {
	sb := &strings.Builder{}
	// We are intentionally ignoring the return value. _ used to communicate this to lint.
	_ = b.SerializeTo(sb, ops...)
	return sb.String()
}

// SerializeTo writes the rendered document to w. The output is, in order: the
// fixed calendar header, the timezone-name line for the builder's location,
// the VTIMEZONE block, every event's stored fields in append order, and the
// END:VCALENDAR footer.
func (b *Builder) SerializeTo(w io.Writer, ops ...any) error {
	serializeConfig, err := parseSerializeOps(ops)
	if err != nil {
		return err
	}
	tzid := b.loc.String()
	lines := make([]string, 0, 26+len(b.events)*8)
	lines = append(lines,
		"BEGIN:VCALENDAR",
		headerVersion,
		headerProdId,
		headerCalName,
		headerCalScale,
		headerMethod,
		"X-WR-TIMEZONE:"+tzid,
	)
	lines = append(lines, timezoneBlock(tzid)...)
	for _, e := range b.events {
		for _, f := range e.Fields {
			lines = append(lines, f.Key+":"+f.Value)
		}
	}
	lines = append(lines, "END:VCALENDAR")
	_, err = io.WriteString(w, strings.Join(lines, serializeConfig.NewLine))
	return err
}
