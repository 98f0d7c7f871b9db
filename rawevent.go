package ics

import (
	"strings"
	"time"
)

// LogicalLine is the output of the content-line tokenizer (spec §4.B): a
// property name, its parameters (a map, so the order of parameter names is
// not kept; keys are unique per line, and each value list keeps its order)
// and its raw value.
type LogicalLine struct {
	Property string
	Params   map[string][]string
	Value    string
}

// Param returns the first value of a parameter, or "" if absent.
func (l *LogicalLine) Param(name string) string {
	if l == nil {
		return ""
	}
	v := l.Params[name]
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// ZonedMoment is a calendar point together with the zone it was written
// against (spec §3). For IsUTC, Zone is always UTC; for IsDateOnly, the time
// fields are zero and conversions treat the moment as 00:00:00 in Zone.
type ZonedMoment struct {
	Year, Month, Day       int
	Hour, Minute, Second   int
	IsDateOnly             bool
	IsUTC                  bool
	Zone                   *ZoneInfo
}

// Time materialises the moment into a time.Time in its resolved zone.
func (m ZonedMoment) Time() time.Time {
	loc := m.location()
	return time.Date(m.Year, time.Month(m.Month), m.Day, m.Hour, m.Minute, m.Second, 0, loc)
}

// Epoch returns Unix seconds for the moment.
func (m ZonedMoment) Epoch() int64 {
	return m.Time().Unix()
}

func (m ZonedMoment) location() *time.Location {
	if m.Zone != nil && m.Zone.Location != nil {
		return m.Zone.Location
	}
	return time.UTC
}

// PropertyValueWithParams is the four-tuple the post-processor (spec §4.F)
// produces for DTSTART/DTEND/RECURRENCE-ID: parameters, the raw value as
// written, the resolved epoch, and the TZID-prefixed reconstruction used to
// re-feed the date/time parser.
type PropertyValueWithParams struct {
	Params        map[string][]string
	Raw           string
	Epoch         int64
	Reconstructed string
	Moment        ZonedMoment
}

// RawEvent is the assembled-but-unexpanded VEVENT (spec §3). Known
// properties get explicit fields; anything the engine doesn't special-case
// lands in Extra, normalised per the "prepare custom property" rule in
// spec.md §9 (trim, unescape literal \n).
type RawEvent struct {
	UID          string
	Summary      string
	DTStart      PropertyValueWithParams
	DTEnd        *PropertyValueWithParams
	Duration     *Duration
	RawDuration  string
	RecurrenceID *PropertyValueWithParams
	RRule        string
	RDates       []PropertyValueWithParams
	ExDates      []PropertyValueWithParams
	Description  string
	Location     string
	Status       string
	Transp       string
	Organizer    string
	Attendees    []string
	DTStamp      string
	Created      string
	LastModified string
	Sequence     int
	Alarms       []RawAlarm

	Extra map[string]string

	// lastKeyword implements the fault-tolerance carry-over from spec.md §9:
	// a value-only line with no recognisable property name is attributed to
	// whatever property the assembler last saw, scoped to this component.
	lastKeyword string
}

// RawAlarm is recognised at the framing level only (spec §1): its payload is
// not expanded. The raw values of ACTION, TRIGGER, DESCRIPTION, SUMMARY,
// REPEAT and DURATION are kept; their parameters and any other VALARM
// property are dropped.
type RawAlarm struct {
	Action      string
	Trigger     string
	Description string
	Summary     string
	Repeat      string
	Duration    string
}

func newRawEvent() *RawEvent {
	return &RawEvent{Extra: make(map[string]string)}
}

// firstParam returns the first value of a named parameter from a raw params
// map (as opposed to LogicalLine.Param, which reads off a whole line).
func firstParam(params map[string][]string, name string) string {
	if params == nil {
		return ""
	}
	v := params[name]
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// escapeParamValue quotes a parameter value if it contains a character that
// would otherwise be read as structural (',', ';', ':').
func escapeParamValue(s string) string {
	if strings.ContainsAny(s, ",;:") {
		return `"` + s + `"`
	}
	return s
}
