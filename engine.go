package ics

import (
	"fmt"
	"io"
	"time"
)

// Config holds every recognised option from spec.md §6, built through
// functional Options the way a Go library configures itself (no CLI/env
// framework — this package has no main).
type Config struct {
	DefaultSpanYears            int
	DefaultTimeZone             string
	DefaultWeekStart            time.Weekday
	SkipRecurrence              bool
	DisableCharacterReplacement bool
	FilterDaysBefore            *int
	FilterDaysAfter             *int

	Resolver ZoneResolver
	Log      Logger

	nowFunc func() time.Time

	windowMin *int64
	windowMax *int64
}

// Option configures a Config; see With* constructors below.
type Option func(*Config)

// WithDefaultSpanYears sets the UNTIL fallback span for unbounded
// recurrences (spec.md §6 "defaultSpan", default 2).
func WithDefaultSpanYears(years int) Option {
	return func(c *Config) { c.DefaultSpanYears = years }
}

// WithDefaultTimeZone sets the IANA zone used when no TZID/Z resolves
// (spec.md §6 "defaultTimeZone", default: the host's local zone).
func WithDefaultTimeZone(tz string) Option {
	return func(c *Config) { c.DefaultTimeZone = tz }
}

// WithDefaultWeekStart sets the week-start day an RRULE without an explicit
// WKST falls back to (spec.md §6 "defaultWeekStart", default Monday).
func WithDefaultWeekStart(wd time.Weekday) Option {
	return func(c *Config) { c.DefaultWeekStart = wd }
}

// WithSkipRecurrence bypasses the Expander entirely: every event with an
// RRULE is returned exactly as its base occurrence (spec.md §6 "skipRecurrence").
func WithSkipRecurrence(skip bool) Option {
	return func(c *Config) { c.SkipRecurrence = skip }
}

// WithDisableCharacterReplacement is accepted for configuration-surface
// parity with spec.md §6's "disableCharacterReplacement", but the
// smart-quote normaliser it would toggle is out of this engine's scope
// (SPEC_FULL.md §1) — this option is a recognised no-op, not silently
// dropped.
func WithDisableCharacterReplacement(disable bool) Option {
	return func(c *Config) { c.DisableCharacterReplacement = disable }
}

// WithFilterDaysBefore sets windowMin to now - days (spec.md §6 "filterDaysBefore").
func WithFilterDaysBefore(days int) Option {
	return func(c *Config) { c.FilterDaysBefore = &days }
}

// WithFilterDaysAfter sets windowMax to now + days (spec.md §6 "filterDaysAfter").
func WithFilterDaysAfter(days int) Option {
	return func(c *Config) { c.FilterDaysAfter = &days }
}

// WithLogger installs the diagnostic sink described in spec.md §6. A nil
// Logger (the default) silently discards every message.
func WithLogger(l Logger) Option {
	return func(c *Config) { c.Log = l }
}

// WithZoneResolver overrides the injected CLDR/Windows/IANA lookup
// (DefaultZoneResolver is used otherwise).
func WithZoneResolver(r ZoneResolver) Option {
	return func(c *Config) { c.Resolver = r }
}

// WithClock overrides "now" for UNTIL-fallback and window computation.
// Intended for deterministic tests; production callers never need it.
func WithClock(now time.Time) Option {
	return func(c *Config) { c.nowFunc = func() time.Time { return now } }
}

// NewConfig builds a Config from opts, applying spec.md §6's defaults.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		DefaultSpanYears: 2,
		DefaultTimeZone:  time.Local.String(),
		DefaultWeekStart: time.Monday,
		Resolver:         DefaultZoneResolver{},
		nowFunc:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.DefaultSpanYears <= 0 {
		return nil, fmt.Errorf("%w: defaultSpan must be a positive integer", ErrConfiguration)
	}
	if c.Resolver == nil {
		c.Resolver = DefaultZoneResolver{}
	}
	return c, nil
}

func (c *Config) resolver() ZoneResolver {
	if c.Resolver == nil {
		return DefaultZoneResolver{}
	}
	return c.Resolver
}

func (c *Config) logger() Logger {
	if c.Log == nil {
		return nullLogger{}
	}
	return c.Log
}

func (c *Config) effectiveDefaultSpan() int {
	if c.DefaultSpanYears <= 0 {
		return 2
	}
	return c.DefaultSpanYears
}

// prepareWindow computes windowMin/windowMax once per Parse call from
// FilterDaysBefore/After relative to now, per spec.md §6.
func (c *Config) prepareWindow(now time.Time) {
	if c.FilterDaysBefore != nil {
		v := now.AddDate(0, 0, -*c.FilterDaysBefore).Unix()
		c.windowMin = &v
	}
	if c.FilterDaysAfter != nil {
		v := now.AddDate(0, 0, *c.FilterDaysAfter).Unix()
		c.windowMax = &v
	}
}

// window reports the active [min, max] bound, if any side was configured.
func (c *Config) window() (lo, hi int64, ok bool) {
	if c.windowMin == nil && c.windowMax == nil {
		return 0, 0, false
	}
	lo, hi = minInt64, maxInt64
	if c.windowMin != nil {
		lo = *c.windowMin
	}
	if c.windowMax != nil {
		hi = *c.windowMax
	}
	return lo, hi, true
}

const (
	minInt64 = -1 << 63
	maxInt64 = 1<<63 - 1
)

// Parse implements spec.md §2's control flow end to end: unfold and
// tokenize (A, B) while assembling components (E, consulting the zone
// resolver D for the window check), post-process DTSTART/DTEND/RECURRENCE-ID
// and build the modified-instance index (F), expand every RRULE-bearing
// event (G, using C for EXDATE moments), apply the window filter a second
// time (H), and sort/flatten the result (I).
func Parse(r io.Reader, opts ...Option) ([]*Event, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	return ParseWithConfig(r, cfg)
}

// ParseWithConfig runs the same pipeline as Parse against an
// already-built Config, letting a caller reuse one Config (and its
// resolver's IANA cache) across many parses.
func ParseWithConfig(r io.Reader, cfg *Config) ([]*Event, error) {
	now := cfg.nowFunc()
	if now.IsZero() {
		now = time.Now()
	}
	cfg.prepareWindow(now)

	assembled, err := Assemble(r, cfg)
	if err != nil {
		return nil, err
	}

	survivors, index, err := PostProcess(assembled.Events, cfg)
	if err != nil {
		return nil, err
	}

	consumed := make(map[string]map[int64]bool)

	var out []*Event
	for _, raw := range survivors {
		hasRecurrence := raw.RRule != "" || len(raw.RDates) > 0
		if !hasRecurrence || cfg.SkipRecurrence {
			ev, err := buildEvent(raw, raw.DTStart, raw.DTEnd, raw.RRule != "")
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
			continue
		}

		occurrences, err := ExpandEvent(raw, cfg, index, now)
		if err != nil {
			return nil, err
		}
		out = append(out, occurrences...)

		for _, ev := range occurrences {
			if ev.RecurrenceID == nil {
				continue
			}
			m, ok := consumed[raw.UID]
			if !ok {
				m = make(map[int64]bool)
				consumed[raw.UID] = m
			}
			m[ev.RecurrenceID.Epoch] = true
		}
	}

	for uid, overrides := range index.overrides {
		for epoch, ov := range overrides {
			if consumed[uid] != nil && consumed[uid][epoch] {
				continue
			}
			ev, err := buildEvent(ov, ov.DTStart, ov.DTEnd, true)
			if err != nil {
				return nil, err
			}
			out = append(out, ev)
		}
	}

	out = WindowFilter(out, cfg)
	out = Export(out)

	return out, nil
}
