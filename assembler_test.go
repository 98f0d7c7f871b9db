package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultTestConfig(t *testing.T) *Config {
	t.Helper()
	cfg, err := NewConfig(WithDefaultTimeZone("UTC"))
	require.NoError(t, err)
	return cfg
}

func TestAssembleCountsComponents(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:e1@test
DTSTART:20240101T090000
BEGIN:VALARM
ACTION:DISPLAY
TRIGGER:-PT15M
DESCRIPTION:Reminder
END:VALARM
END:VEVENT
BEGIN:VTODO
END:VTODO
BEGIN:VJOURNAL
END:VJOURNAL
BEGIN:VFREEBUSY
END:VFREEBUSY
END:VCALENDAR
`
	res, err := Assemble(strings.NewReader(cal), defaultTestConfig(t))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Counts.VEvent)
	assert.Equal(t, 1, res.Counts.VTodo)
	assert.Equal(t, 1, res.Counts.VJournal)
	assert.Equal(t, 1, res.Counts.VFreeBusy)
	assert.Equal(t, 1, res.Counts.VAlarm)
	require.Len(t, res.Events, 1)
	require.Len(t, res.Events[0].Alarms, 1)
	assert.Equal(t, "DISPLAY", res.Events[0].Alarms[0].Action)
	assert.Equal(t, "Reminder", res.Events[0].Alarms[0].Description)
}

func TestAssembleSkipsVTimezonePayload(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VTIMEZONE
TZID:Europe/Berlin
BEGIN:STANDARD
TZOFFSETFROM:+0200
TZOFFSETTO:+0100
END:STANDARD
END:VTIMEZONE
BEGIN:VEVENT
UID:e1@test
DTSTART:20240101T090000
END:VEVENT
END:VCALENDAR
`
	res, err := Assemble(strings.NewReader(cal), defaultTestConfig(t))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Counts.VTimezone)
	require.Len(t, res.Events, 1)
	assert.Empty(t, res.Events[0].Extra)
}

func TestAssembleLastKeywordCarryOver(t *testing.T) {
	// A value-only line (one with a colon but no property name before it) is
	// attributed to whatever property this VEVENT last saw.
	cal := "BEGIN:VCALENDAR\r\nBEGIN:VEVENT\r\nUID:e1@test\r\nDESCRIPTION:first line\r\n:replacement via carry-over\r\nDTSTART:20240101T090000\r\nEND:VEVENT\r\nEND:VCALENDAR\r\n"
	res, err := Assemble(strings.NewReader(cal), defaultTestConfig(t))
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "replacement via carry-over", res.Events[0].Description)
}

func TestAssembleUnknownPropertyLandsInExtra(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:e1@test
DTSTART:20240101T090000
X-CUSTOM-PROP: padded value \n with escape
END:VEVENT
END:VCALENDAR
`
	res, err := Assemble(strings.NewReader(cal), defaultTestConfig(t))
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "padded value \n with escape", res.Events[0].Extra["X-CUSTOM-PROP"])
}

func TestAssembleDropsNonRecurringEventOutsideWindow(t *testing.T) {
	cfg, err := NewConfig(WithDefaultTimeZone("UTC"), WithFilterDaysBefore(1), WithFilterDaysAfter(1), WithClock(mustDate("20240115T000000Z")))
	require.NoError(t, err)
	cfg.prepareWindow(cfg.nowFunc())

	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:too-old@test
DTSTART:20230101T090000
END:VEVENT
BEGIN:VEVENT
UID:in-range@test
DTSTART:20240115T090000
END:VEVENT
END:VCALENDAR
`
	res, err := Assemble(strings.NewReader(cal), cfg)
	require.NoError(t, err)
	require.Len(t, res.Events, 1)
	assert.Equal(t, "in-range@test", res.Events[0].UID)
}

func mustDate(v string) time.Time {
	mom, err := ParseMoment(v, DefaultZoneResolver{}, "UTC")
	if err != nil {
		panic(err)
	}
	return mom.Time()
}
