package ics

import (
	"strings"
	"time"
)

// Event is the final, exported occurrence record (spec §3): either the
// original VEVENT as written, or one recurrence instance produced by the
// expander. DTStart/DTEnd carry the full four-tuple so a caller can recover
// the original TZID/Z form; DTStartTZ/DTEndTZ are the zone-adjusted
// time.Time copies spec.md names directly.
type Event struct {
	UID              string
	Summary          string
	DTStart          PropertyValueWithParams
	DTEnd            PropertyValueWithParams
	DTEndSynthesized bool // true when neither DTEND nor DURATION was present
	Duration         *Duration
	DTStamp          string
	Created          string
	LastModified     string
	Description      string
	Location         string
	Sequence         int
	Status           string
	Transp           string
	Organizer        string
	Attendees        []string
	Extra            map[string]string

	DTStartTZ time.Time
	DTEndTZ   time.Time

	RecurrenceID *PropertyValueWithParams

	// Recurring marks an occurrence produced from (or as the base of) an
	// RRULE- or RDATE-bearing event, so the window filter's second pass (spec §4.H)
	// leaves it alone rather than re-checking it against windowMin/windowMax.
	Recurring bool
}

// defaultEventSpan is the fallback length spec.md §9's open question
// resolves to: an event with neither DTEND nor DURATION is treated as a
// one-day event for display purposes only, never for window filtering or
// recurrence length (window.go looks only at DTSTART, and expand.go reads
// raw.DTEnd directly, so neither sees this synthesis).
const defaultEventSpan = 24 * time.Hour

// buildEvent assembles the exported Event for one occurrence (base or
// generated) from its RawEvent and a fully resolved DTSTART/DTEND pair.
// recurring marks whether this occurrence belongs to an RRULE- or
// RDATE-bearing series (including its overrides), which the window filter (spec §4.H)
// treats differently from a plain one-off event.
func buildEvent(raw *RawEvent, dtstart PropertyValueWithParams, dtend *PropertyValueWithParams, recurring bool) (*Event, error) {
	ev := &Event{
		UID:          raw.UID,
		Summary:      raw.Summary,
		DTStart:      dtstart,
		Duration:     raw.Duration,
		DTStamp:      raw.DTStamp,
		Created:      raw.Created,
		LastModified: raw.LastModified,
		Description:  raw.Description,
		Location:     raw.Location,
		Sequence:     raw.Sequence,
		Status:       raw.Status,
		Transp:       raw.Transp,
		Organizer:    raw.Organizer,
		Attendees:    raw.Attendees,
		Extra:        raw.Extra,
		RecurrenceID: raw.RecurrenceID,
		DTStartTZ:    dtstart.Moment.Time(),
		Recurring:    recurring,
	}

	switch {
	case dtend != nil:
		ev.DTEnd = *dtend
	case raw.Duration != nil:
		end := raw.Duration.AddTo(dtstart.Moment.Time())
		mom := momentFromTime(end, dtstart.Moment)
		ev.DTEnd = PropertyValueWithParams{
			Moment: mom,
			Epoch:  mom.Epoch(),
			Raw:    formatMoment(mom, dtstart.Moment.IsUTC),
		}
	default:
		ev.DTEndSynthesized = true
		end := dtstart.Moment.Time().Add(defaultEventSpan)
		mom := momentFromTime(end, dtstart.Moment)
		ev.DTEnd = PropertyValueWithParams{
			Moment: mom,
			Epoch:  mom.Epoch(),
			Raw:    formatMoment(mom, dtstart.Moment.IsUTC),
		}
	}
	ev.DTEndTZ = ev.DTEnd.Moment.Time()

	return ev, nil
}

// unescapeText reverses RFC 5545 TEXT escaping ("\," "\;" "\n"/"\N" "\\\\")
// on SUMMARY/DESCRIPTION/LOCATION-style values, the same handling
// arran4/golang-ical and onsigntv/go-ics both apply on read.
func unescapeText(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i == len(s)-1 {
			b.WriteByte(s[i])
			continue
		}
		switch s[i+1] {
		case 'n', 'N':
			b.WriteByte('\n')
		case ',':
			b.WriteByte(',')
		case ';':
			b.WriteByte(';')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte(s[i])
			continue
		}
		i++
	}
	return b.String()
}

// normalizeCustomProperty implements spec.md §9's "prepare custom property"
// rule for anything landing in Event.Extra: trim surrounding whitespace and
// unescape literal newlines the same way a known TEXT property would be.
func normalizeCustomProperty(v string) string {
	return unescapeText(strings.TrimSpace(v))
}
