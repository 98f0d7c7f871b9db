package ics

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, body string, opts ...Option) []*Event {
	t.Helper()
	base := []Option{
		WithDefaultTimeZone("UTC"),
		WithClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
	}
	events, err := Parse(strings.NewReader(body), append(base, opts...)...)
	require.NoError(t, err)
	return events
}

func TestScenario1YearlyDateOnly(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:scenario1@test
DTSTART;VALUE=DATE:20000301
RRULE:FREQ=YEARLY;WKST=SU;COUNT=3
END:VEVENT
END:VCALENDAR
`
	events := mustParse(t, cal)
	require.Len(t, events, 3)
	assert.Equal(t, "20000301", events[0].DTStart.Raw)
	assert.Equal(t, "20010301T000000", events[1].DTStart.Raw)
	assert.Equal(t, "20020301T000000", events[2].DTStart.Raw)
}

func TestScenario2DailyAcrossDST(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:scenario2@test
DTSTART;VALUE=DATE:20000301
RRULE:FREQ=DAILY;COUNT=31
END:VEVENT
END:VCALENDAR
`
	events := mustParse(t, cal)
	require.Len(t, events, 31)
	assert.Equal(t, "20000301", events[0].DTStart.Raw)
	assert.Equal(t, "20000331T000000", events[30].DTStart.Raw)
}

func TestScenario3WeeklyWithExdatesEqualDTStart(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:scenario3@test
DTSTART;TZID=Europe/London:20190911T095000
RRULE:FREQ=WEEKLY;BYDAY=WE;COUNT=7
EXDATE;VALUE=DATE:20190911,20190925,20191009,20191023
END:VEVENT
END:VCALENDAR
`
	events := mustParse(t, cal)
	require.Len(t, events, 3)
	assert.Equal(t, "20190918T095000", events[0].DTStart.Raw)
	assert.Equal(t, "20191002T095000", events[1].DTStart.Raw)
	assert.Equal(t, "20191016T095000", events[2].DTStart.Raw)
}

func TestScenario4YearlyBySetPos(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:scenario4@test
DTSTART;TZID=America/New_York:19970306T090000
RRULE:FREQ=YEARLY;COUNT=10;BYMONTH=3;BYDAY=TU,TH;BYSETPOS=2,4,-2
END:VEVENT
END:VCALENDAR
`
	events := mustParse(t, cal)
	require.Len(t, events, 10)
	assert.Equal(t, "19970306T090000", events[0].DTStart.Raw)
	assert.Equal(t, "19970313T090000", events[1].DTStart.Raw)
	assert.Equal(t, "19970325T090000", events[2].DTStart.Raw)
	assert.Equal(t, "20000307T090000", events[9].DTStart.Raw)
}

func TestScenario5DailyByMonthDayAcrossMonthBoundary(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:scenario5@test
DTSTART:20000206T120000
RRULE:FREQ=DAILY;BYMONTHDAY=1,6,11,16,21,26,31;COUNT=16
END:VEVENT
END:VCALENDAR
`
	events := mustParse(t, cal)
	require.Len(t, events, 16)

	got := make([]string, len(events))
	for i, ev := range events {
		got[i] = ev.DTStart.Raw
	}
	want := []string{
		"20000206T120000", "20000211T120000", "20000216T120000", "20000221T120000",
		"20000226T120000", "20000301T120000", "20000306T120000", "20000311T120000",
		"20000316T120000", "20000321T120000", "20000326T120000", "20000331T120000",
		"20000401T120000", "20000406T120000", "20000411T120000", "20000416T120000",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("DTSTART sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestScenario6CountOneEmitsBaseOnly(t *testing.T) {
	cal := `BEGIN:VCALENDAR
BEGIN:VEVENT
UID:scenario6@test
DTSTART:20240115T100000
RRULE:FREQ=DAILY;COUNT=1
END:VEVENT
END:VCALENDAR
`
	events := mustParse(t, cal)
	require.Len(t, events, 1)
	assert.Equal(t, "20240115T100000", events[0].DTStart.Raw)
}
