package ics

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// Weekday is an ordinal/day pair used by BYDAY ("-1SU", "2MO", or a bare
// "WE" with Ordinal 0 meaning "every such weekday").
type Weekday struct {
	Ordinal int
	Day     time.Weekday
}

var weekdayNames = map[string]time.Weekday{
	"SU": time.Sunday,
	"MO": time.Monday,
	"TU": time.Tuesday,
	"WE": time.Wednesday,
	"TH": time.Thursday,
	"FR": time.Friday,
	"SA": time.Saturday,
}

// isoWeekday maps time.Weekday (Sunday=0) to the ISO convention (Monday=1..Sunday=7).
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// RRule is the parsed recurrence rule (spec §3). Freq reuses
// github.com/teambition/rrule-go's exported Frequency type/constants rather
// than a local enum, since that's the vocabulary the rest of the Go iCal
// ecosystem already speaks.
type RRule struct {
	Freq       rrule.Frequency
	Interval   int
	Count      int // 0 means unset
	Until      *ZonedMoment
	ByMonth    []int
	ByMonthDay []int
	ByYearDay  []int
	ByWeekNo   []int
	ByDay      []Weekday
	BySetPos   []int
	WKST       time.Weekday
}

// ParseRRule splits the RRULE value on ';' then '=' and its list-valued
// parts on ',' (spec §4.G step 1).
func ParseRRule(value string, resolver ZoneResolver, defaultZone string) (*RRule, error) {
	r := &RRule{Interval: 1, WKST: time.Monday}
	sawFreq := false

	for _, stanza := range strings.Split(value, ";") {
		stanza = strings.TrimSpace(stanza)
		if stanza == "" {
			continue
		}
		eq := strings.IndexByte(stanza, '=')
		if eq < 0 {
			return nil, fmt.Errorf("%w: malformed stanza %q", ErrInvalidRRule, stanza)
		}
		key := strings.ToUpper(strings.TrimSpace(stanza[:eq]))
		val := strings.TrimSpace(stanza[eq+1:])

		var err error
		switch key {
		case "FREQ":
			r.Freq, err = parseFreq(val)
			sawFreq = true
		case "INTERVAL":
			r.Interval, err = strconv.Atoi(val)
		case "COUNT":
			r.Count, err = strconv.Atoi(val)
		case "UNTIL":
			var m ZonedMoment
			m, err = ParseMoment(val, resolver, defaultZone)
			r.Until = &m
		case "BYMONTH":
			r.ByMonth, err = parseIntList(val)
		case "BYMONTHDAY":
			r.ByMonthDay, err = parseIntList(val)
		case "BYYEARDAY":
			r.ByYearDay, err = parseIntList(val)
		case "BYWEEKNO":
			r.ByWeekNo, err = parseIntList(val)
		case "BYDAY":
			r.ByDay, err = parseWeekdayList(val)
		case "BYSETPOS":
			r.BySetPos, err = parseIntList(val)
		case "WKST":
			wd, ok := weekdayNames[strings.ToUpper(val)]
			if !ok {
				err = fmt.Errorf("unknown WKST %q", val)
			}
			r.WKST = wd
		default:
			// Unknown stanzas (X-prefixed extensions, future RFC additions)
			// are ignored rather than rejected.
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidRRule, err)
		}
	}

	if !sawFreq {
		return nil, fmt.Errorf("%w: missing FREQ", ErrInvalidRRule)
	}
	if r.Interval <= 0 {
		r.Interval = 1
	}

	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func parseFreq(val string) (rrule.Frequency, error) {
	switch strings.ToUpper(val) {
	case "DAILY":
		return rrule.DAILY, nil
	case "WEEKLY":
		return rrule.WEEKLY, nil
	case "MONTHLY":
		return rrule.MONTHLY, nil
	case "YEARLY":
		return rrule.YEARLY, nil
	default:
		return 0, fmt.Errorf("unsupported FREQ %q", val)
	}
}

func parseIntList(val string) ([]int, error) {
	parts := strings.Split(val, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("bad integer %q", p)
		}
		out = append(out, n)
	}
	return out, nil
}

func parseWeekdayList(val string) ([]Weekday, error) {
	parts := strings.Split(val, ",")
	out := make([]Weekday, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) < 2 {
			return nil, fmt.Errorf("bad BYDAY entry %q", p)
		}
		dayCode := strings.ToUpper(p[len(p)-2:])
		wd, ok := weekdayNames[dayCode]
		if !ok {
			return nil, fmt.Errorf("bad BYDAY weekday %q", p)
		}
		ordPart := p[:len(p)-2]
		ord := 0
		if ordPart != "" {
			n, err := strconv.Atoi(ordPart)
			if err != nil {
				return nil, fmt.Errorf("bad BYDAY ordinal %q", p)
			}
			ord = n
		}
		out = append(out, Weekday{Ordinal: ord, Day: wd})
	}
	return out, nil
}

// validate implements spec §4.G step 2: a numeric BYDAY ordinal is only
// legal under MONTHLY/YEARLY, and a YEARLY rule can't mix BYWEEKNO with a
// numeric-prefixed BYDAY.
func (r *RRule) validate() error {
	hasOrdinalByDay := false
	for _, d := range r.ByDay {
		if d.Ordinal != 0 {
			hasOrdinalByDay = true
			break
		}
	}

	if hasOrdinalByDay && r.Freq != rrule.MONTHLY && r.Freq != rrule.YEARLY {
		return fmt.Errorf("%w: numeric BYDAY ordinal requires FREQ=MONTHLY or FREQ=YEARLY", ErrInvalidRRule)
	}
	if hasOrdinalByDay && r.Freq == rrule.YEARLY && len(r.ByWeekNo) > 0 {
		return fmt.Errorf("%w: BYWEEKNO with a numeric-prefixed BYDAY is not permitted", ErrInvalidRRule)
	}
	return nil
}
