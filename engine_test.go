package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.DefaultSpanYears)
	assert.Equal(t, time.Monday, cfg.DefaultWeekStart)
}

func TestNewConfigRejectsNonPositiveSpan(t *testing.T) {
	_, err := NewConfig(WithDefaultSpanYears(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestParseRDateOnlyEventWithNoRRule(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:rdate-only@test
DTSTART:20240101T090000
RDATE:20240108T090000,20240115T090000
END:VEVENT
END:VCALENDAR
`
	events, err := Parse(strings.NewReader(cal), WithDefaultTimeZone("UTC"))
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "20240101T090000", events[0].DTStart.Raw)
	assert.Equal(t, "20240108T090000", events[1].DTStart.Raw)
	assert.Equal(t, "20240115T090000", events[2].DTStart.Raw)
}

func TestParseRDateSupplementsRRule(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:rdate-plus-rrule@test
DTSTART:20240101T090000
RRULE:FREQ=DAILY;COUNT=2
RDATE:20240301T090000
END:VEVENT
END:VCALENDAR
`
	events, err := Parse(strings.NewReader(cal), WithDefaultTimeZone("UTC"))
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "20240101T090000", events[0].DTStart.Raw)
	assert.Equal(t, "20240102T090000", events[1].DTStart.Raw)
	assert.Equal(t, "20240301T090000", events[2].DTStart.Raw)
}

func TestParseRecurrenceIDOverrideSplicesIn(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:series@test
DTSTART:20240101T090000
RRULE:FREQ=DAILY;COUNT=3
END:VEVENT
BEGIN:VEVENT
UID:series@test
RECURRENCE-ID:20240102T090000
DTSTART:20240102T150000
SUMMARY:Moved occurrence
END:VEVENT
END:VCALENDAR
`
	events, err := Parse(strings.NewReader(cal), WithDefaultTimeZone("UTC"))
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "20240101T090000", events[0].DTStart.Raw)
	assert.Equal(t, "20240102T150000", events[1].DTStart.Raw)
	assert.Equal(t, "Moved occurrence", events[1].Summary)
	assert.Equal(t, "20240103T090000", events[2].DTStart.Raw)
}

func TestParseSkipRecurrenceReturnsBaseOnly(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:skip@test
DTSTART:20240101T090000
RRULE:FREQ=DAILY;COUNT=5
END:VEVENT
END:VCALENDAR
`
	events, err := Parse(strings.NewReader(cal), WithDefaultTimeZone("UTC"), WithSkipRecurrence(true))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "20240101T090000", events[0].DTStart.Raw)
}

func TestParseWithConfigReusesConfig(t *testing.T) {
	cfg, err := NewConfig(WithDefaultTimeZone("UTC"))
	require.NoError(t, err)

	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:reuse@test
DTSTART:20240101T090000
END:VEVENT
END:VCALENDAR
`
	first, err := ParseWithConfig(strings.NewReader(cal), cfg)
	require.NoError(t, err)
	second, err := ParseWithConfig(strings.NewReader(cal), cfg)
	require.NoError(t, err)
	assert.Len(t, first, 1)
	assert.Len(t, second, 1)
}

func TestParseInvalidCalendarBodyIsTolerant(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:malformed@test
DTSTART:not-a-real-date
SUMMARY:still counted
END:VEVENT
END:VCALENDAR
`
	events, err := Parse(strings.NewReader(cal), WithDefaultTimeZone("UTC"))
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "still counted", events[0].Summary)
}
