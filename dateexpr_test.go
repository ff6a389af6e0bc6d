package ics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateExpressionRelative(t *testing.T) {
	b := newTestBuilder(t)
	now := fixedClock()
	tests := []struct {
		expr     string
		expected time.Time
	}{
		{expr: "now", expected: now},
		{expr: "NOW", expected: now},
		{expr: "now + 1 hour", expected: now.Add(time.Hour)},
		{expr: "now+1hour", expected: now.Add(time.Hour)},
		{expr: "now + 30 minutes", expected: now.Add(30 * time.Minute)},
		{expr: "now + 45 seconds", expected: now.Add(45 * time.Second)},
		{expr: "now - 2 hours", expected: now.Add(-2 * time.Hour)},
		{expr: "now + 1 day", expected: now.AddDate(0, 0, 1)},
		{expr: "now + 2 weeks", expected: now.AddDate(0, 0, 14)},
		{expr: "now + 1 month", expected: now.AddDate(0, 1, 0)},
		{expr: "now - 1 year", expected: now.AddDate(-1, 0, 0)},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := b.parseDateExpression(tc.expr)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected=%v given=%v", tc.expected, got)
		})
	}
}

func TestParseDateExpressionAbsolute(t *testing.T) {
	b := newTestBuilder(t)
	tests := []struct {
		expr     string
		expected time.Time
	}{
		{expr: "2024-01-01 09:00:00", expected: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{expr: "2024-01-01T09:00:00", expected: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{expr: "2024-01-01T09:00:00+02:00", expected: time.Date(2024, 1, 1, 7, 0, 0, 0, time.UTC)},
		{expr: "20240101T090000Z", expected: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)},
		{expr: "2024-06-01", expected: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{expr: "20240601", expected: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{expr: "  2024-06-01  ", expected: time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.expr, func(t *testing.T) {
			got, err := b.parseDateExpression(tc.expr)
			require.NoError(t, err)
			assert.True(t, tc.expected.Equal(got), "expected=%v given=%v", tc.expected, got)
		})
	}
}

func TestParseDateExpressionAnchoredToLocation(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)
	b, err := New(WithClock(fixedClock), WithLocation(loc))
	require.NoError(t, err)

	got, err := b.parseDateExpression("2024-01-01 09:00:00")
	require.NoError(t, err)
	assert.Equal(t, "20240101T080000Z", got.UTC().Format(icalTimestampFormatUtc))
}

func TestParseDateExpressionErrors(t *testing.T) {
	b := newTestBuilder(t)
	for _, expr := range []string{
		"",
		"tomorrow",
		"now plus 1 hour",
		"now + hour",
		"now + 1 fortnight",
		"01/02/2024",
		"2024-13-01",
	} {
		t.Run(expr, func(t *testing.T) {
			_, err := b.parseDateExpression(expr)
			require.ErrorIs(t, err, ErrDateParse)
		})
	}
}

func TestResolveTimeValues(t *testing.T) {
	b := newTestBuilder(t)
	at := time.Date(2024, 3, 15, 18, 30, 0, 0, time.UTC)

	got, err := b.resolveTime(at)
	require.NoError(t, err)
	assert.True(t, at.Equal(got))

	got, err = b.resolveTime(&at)
	require.NoError(t, err)
	assert.True(t, at.Equal(got))

	_, err = b.resolveTime(12345)
	require.ErrorIs(t, err, ErrDateParse)
}
