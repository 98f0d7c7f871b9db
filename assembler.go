package ics

import (
	"io"
	"strconv"
	"strings"
)

// ComponentCounts tallies how many of each top-level component the calendar
// carried, independent of how many VEVENTs survived the window filter.
type ComponentCounts struct {
	VEvent    int
	VTodo     int
	VJournal  int
	VFreeBusy int
	VAlarm    int
	VTimezone int
}

// AssembleResult is the output of the calendar assembler (spec §4.E): the
// raw, unexpanded events plus component counters.
type AssembleResult struct {
	Events []*RawEvent
	Counts ComponentCounts
}

// Assemble drives the BEGIN/END state machine of spec §4.E over r, turning
// unfolded, tokenized content lines into RawEvents. VTODO/VJOURNAL/VFREEBUSY
// are recognised only enough to count them (spec.md §1 scopes their payload
// out); VALARM blocks are captured onto their enclosing event; VTIMEZONE's
// STANDARD/DAYLIGHT sub-blocks are skipped at the framing level, since the
// zone resolver (spec §4.D) never needs a VTIMEZONE's own offset rules.
func Assemble(r io.Reader, cfg *Config) (*AssembleResult, error) {
	unfolder := NewUnfolder(r)
	res := &AssembleResult{}

	var stack []string
	var current *RawEvent
	var currentAlarm *RawAlarm
	tzDepth := 0

	for {
		line, err := unfolder.ReadLine()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		ll, ok := Tokenize(*line)
		if !ok {
			continue // spec §7: an unparsable content line is skipped, not fatal.
		}

		switch ll.Property {
		case "BEGIN":
			comp := strings.ToUpper(strings.TrimSpace(ll.Value))
			stack = append(stack, comp)
			switch comp {
			case "VEVENT":
				current = newRawEvent()
				res.Counts.VEvent++
			case "VALARM":
				if current != nil {
					currentAlarm = &RawAlarm{}
				}
			case "VTODO":
				res.Counts.VTodo++
			case "VJOURNAL":
				res.Counts.VJournal++
			case "VFREEBUSY":
				res.Counts.VFreeBusy++
			case "VTIMEZONE":
				res.Counts.VTimezone++
				tzDepth++
			case "STANDARD", "DAYLIGHT":
				if tzDepth > 0 {
					tzDepth++
				}
			}
			continue
		case "END":
			comp := strings.ToUpper(strings.TrimSpace(ll.Value))
			if n := len(stack); n > 0 && stack[n-1] == comp {
				stack = stack[:n-1]
			}
			switch comp {
			case "VALARM":
				if current != nil && currentAlarm != nil {
					current.Alarms = append(current.Alarms, *currentAlarm)
					res.Counts.VAlarm++
				}
				currentAlarm = nil
			case "VEVENT":
				if current != nil {
					if keepEvent(current, cfg) {
						res.Events = append(res.Events, current)
					}
					current = nil
				}
			case "VTIMEZONE", "STANDARD", "DAYLIGHT":
				if tzDepth > 0 {
					tzDepth--
				}
			}
			continue
		}

		switch {
		case currentAlarm != nil:
			handleAlarmProperty(currentAlarm, ll)
		case tzDepth > 0:
			// VTIMEZONE payload (TZOFFSETFROM/TZOFFSETTO/RRULE/...) is
			// framing-level only, per spec.md §1.
		case current != nil:
			handleEventProperty(current, ll, cfg)
		}
	}

	return res, nil
}

// handleEventProperty dispatches one VEVENT content line, including the
// lastKeyword carry-over fault-tolerance rule from spec.md §9: a line whose
// tokenizer found no property name before the colon is attributed to
// whatever property this component last saw.
func handleEventProperty(re *RawEvent, ll *LogicalLine, cfg *Config) {
	name := ll.Property
	if name == "" {
		name = re.lastKeyword
		if name == "" {
			return
		}
	} else {
		re.lastKeyword = name
	}

	value := ll.Value

	switch name {
	case "UID":
		re.UID = value
	case "SUMMARY":
		re.Summary = unescapeText(value)
	case "DTSTART":
		re.DTStart = PropertyValueWithParams{Params: ll.Params, Raw: value}
	case "DTEND":
		pv := PropertyValueWithParams{Params: ll.Params, Raw: value}
		re.DTEnd = &pv
	case "DURATION":
		re.RawDuration = value
		if d, err := ParseDuration(value); err == nil {
			re.Duration = d
		} else {
			logf(cfg.logger(), "assembler: invalid DURATION on UID %s: %v", re.UID, err)
		}
	case "RECURRENCE-ID":
		pv := PropertyValueWithParams{Params: ll.Params, Raw: value}
		re.RecurrenceID = &pv
	case "RRULE":
		re.RRule = value
	case "EXDATE":
		for _, v := range splitUnquoted(value, ',') {
			re.ExDates = append(re.ExDates, PropertyValueWithParams{Params: ll.Params, Raw: strings.TrimSpace(v)})
		}
	case "RDATE":
		for _, v := range splitUnquoted(value, ',') {
			re.RDates = append(re.RDates, PropertyValueWithParams{Params: ll.Params, Raw: strings.TrimSpace(v)})
		}
	case "DESCRIPTION":
		re.Description = unescapeText(value)
	case "LOCATION":
		re.Location = unescapeText(value)
	case "STATUS":
		re.Status = strings.ToUpper(value)
	case "TRANSP":
		re.Transp = strings.ToUpper(value)
	case "ORGANIZER":
		re.Organizer = value
	case "ATTENDEE":
		re.Attendees = append(re.Attendees, value)
	case "DTSTAMP":
		re.DTStamp = value
	case "CREATED":
		re.Created = value
	case "LAST-MODIFIED":
		re.LastModified = value
	case "SEQUENCE":
		if n, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			re.Sequence = n
		}
	default:
		re.Extra[name] = normalizeCustomProperty(value)
	}
}

func handleAlarmProperty(al *RawAlarm, ll *LogicalLine) {
	switch ll.Property {
	case "ACTION":
		al.Action = ll.Value
	case "TRIGGER":
		al.Trigger = ll.Value
	case "DESCRIPTION":
		al.Description = unescapeText(ll.Value)
	case "SUMMARY":
		al.Summary = unescapeText(ll.Value)
	case "REPEAT":
		al.Repeat = ll.Value
	case "DURATION":
		al.Duration = ll.Value
	}
}

// keepEvent implements the window check spec §4.E runs when leaving VEVENT:
// a non-recurring event (no RRULE) outside [windowMin, windowMax] never
// makes it into the assembled event list in the first place. An event whose
// DTSTART can't be parsed is kept rather than silently dropped — spec §7's
// "recoverable, event kept as-is" policy for a malformed moment.
func keepEvent(re *RawEvent, cfg *Config) bool {
	if re.RRule != "" {
		return true
	}
	lo, hi, ok := cfg.window()
	if !ok {
		return true
	}
	mom, err := ParseMoment(reconstructRaw(re.DTStart), cfg.resolver(), cfg.DefaultTimeZone)
	if err != nil {
		logf(cfg.logger(), "assembler: invalid DTSTART on UID %s: %v", re.UID, err)
		return true
	}
	epoch := mom.Epoch()
	return epoch >= lo && epoch <= hi
}

// reconstructRaw rebuilds the "TZID=...:value" form ParseMoment expects from
// a PropertyValueWithParams that has only been assembled, not yet
// post-processed (spec §4.F does this properly; the assembler's window check
// needs the same trick a step early).
func reconstructRaw(pv PropertyValueWithParams) string {
	if tz := firstParam(pv.Params, "TZID"); tz != "" {
		return "TZID=" + escapeParamValue(tz) + ":" + pv.Raw
	}
	return pv.Raw
}
