package ics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostProcessResolvesMoments(t *testing.T) {
	cfg := defaultTestConfig(t)
	re := newRawEvent()
	re.UID = "e1"
	re.DTStart = PropertyValueWithParams{Raw: "20240101T090000"}

	survivors, _, err := PostProcess([]*RawEvent{re}, cfg)
	require.NoError(t, err)
	require.Len(t, survivors, 1)
	assert.False(t, survivors[0].DTStart.Moment.IsDateOnly)
	assert.NotZero(t, survivors[0].DTStart.Epoch)
}

func TestPostProcessBuildsIndexAndDropsColliding(t *testing.T) {
	cfg := defaultTestConfig(t)

	base := newRawEvent()
	base.UID = "series"
	base.DTStart = PropertyValueWithParams{Raw: "20240101T090000"}

	override := newRawEvent()
	override.UID = "series"
	override.DTStart = PropertyValueWithParams{Raw: "20240101T150000"}
	recID := PropertyValueWithParams{Raw: "20240101T090000"}
	override.RecurrenceID = &recID

	survivors, index, err := PostProcess([]*RawEvent{base, override}, cfg)
	require.NoError(t, err)

	// base is dropped: its DTSTART collides with the override's RECURRENCE-ID
	require.Len(t, survivors, 0)

	overridesForUID := index.forUID("series")
	require.Len(t, overridesForUID, 1)
	for _, ov := range overridesForUID {
		assert.Equal(t, "20240101T150000", ov.DTStart.Raw)
	}
}

func TestPostProcessKeepsNonCollidingBase(t *testing.T) {
	cfg := defaultTestConfig(t)

	base := newRawEvent()
	base.UID = "series"
	base.DTStart = PropertyValueWithParams{Raw: "20240101T090000"}

	override := newRawEvent()
	override.UID = "series"
	override.DTStart = PropertyValueWithParams{Raw: "20240105T150000"}
	recID := PropertyValueWithParams{Raw: "20240102T090000"}
	override.RecurrenceID = &recID

	survivors, _, err := PostProcess([]*RawEvent{base, override}, cfg)
	require.NoError(t, err)
	require.Len(t, survivors, 1)
	assert.Equal(t, "20240101T090000", survivors[0].DTStart.Raw)
}

func TestPostProcessDropsInvalidRecurrenceID(t *testing.T) {
	cfg := defaultTestConfig(t)

	override := newRawEvent()
	override.UID = "series"
	override.DTStart = PropertyValueWithParams{Raw: "20240101T090000"}
	recID := PropertyValueWithParams{Raw: "garbage"}
	override.RecurrenceID = &recID

	survivors, index, err := PostProcess([]*RawEvent{override}, cfg)
	require.NoError(t, err)
	require.Len(t, survivors, 1) // no longer treated as an override, expands on its own
	assert.Empty(t, index.forUID("series"))
}
