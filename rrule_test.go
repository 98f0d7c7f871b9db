package ics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teambition/rrule-go"
)

func TestParseRRuleDaily(t *testing.T) {
	r, err := ParseRRule("FREQ=DAILY;INTERVAL=2;COUNT=5", DefaultZoneResolver{}, "UTC")
	require.NoError(t, err)
	assert.Equal(t, rrule.DAILY, r.Freq)
	assert.Equal(t, 2, r.Interval)
	assert.Equal(t, 5, r.Count)
}

func TestParseRRuleDefaultsIntervalAndWKST(t *testing.T) {
	r, err := ParseRRule("FREQ=WEEKLY", DefaultZoneResolver{}, "UTC")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Interval)
	assert.Equal(t, time.Monday, r.WKST)
}

func TestParseRRuleByDayOrdinal(t *testing.T) {
	r, err := ParseRRule("FREQ=MONTHLY;BYDAY=2MO,-1FR", DefaultZoneResolver{}, "UTC")
	require.NoError(t, err)
	require.Len(t, r.ByDay, 2)
	assert.Equal(t, Weekday{Ordinal: 2, Day: time.Monday}, r.ByDay[0])
	assert.Equal(t, Weekday{Ordinal: -1, Day: time.Friday}, r.ByDay[1])
}

func TestParseRRuleBareByDayHasZeroOrdinal(t *testing.T) {
	r, err := ParseRRule("FREQ=WEEKLY;BYDAY=MO,WE,FR", DefaultZoneResolver{}, "UTC")
	require.NoError(t, err)
	for _, wd := range r.ByDay {
		assert.Zero(t, wd.Ordinal)
	}
}

func TestParseRRuleUntil(t *testing.T) {
	r, err := ParseRRule("FREQ=DAILY;UNTIL=20240601T000000Z", DefaultZoneResolver{}, "UTC")
	require.NoError(t, err)
	require.NotNil(t, r.Until)
	assert.True(t, r.Until.IsUTC)
}

func TestParseRRuleMissingFreqIsError(t *testing.T) {
	_, err := ParseRRule("INTERVAL=2", DefaultZoneResolver{}, "UTC")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRRule)
}

func TestParseRRuleOrdinalByDayUnderDailyIsInvalid(t *testing.T) {
	_, err := ParseRRule("FREQ=DAILY;BYDAY=2MO", DefaultZoneResolver{}, "UTC")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRRule)
}

func TestParseRRuleByWeekNoWithOrdinalByDayIsInvalid(t *testing.T) {
	_, err := ParseRRule("FREQ=YEARLY;BYWEEKNO=20;BYDAY=1MO", DefaultZoneResolver{}, "UTC")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRRule)
}

func TestParseRRuleUnknownExtensionStanzaIgnored(t *testing.T) {
	r, err := ParseRRule("FREQ=DAILY;X-FUTURE-THING=whatever", DefaultZoneResolver{}, "UTC")
	require.NoError(t, err)
	assert.Equal(t, rrule.DAILY, r.Freq)
}

func TestParseRRuleMalformedStanza(t *testing.T) {
	_, err := ParseRRule("FREQ", DefaultZoneResolver{}, "UTC")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidRRule)
}
