package ics

import "errors"

// Error taxonomy. InvalidMoment/InvalidDuration/InvalidRRule are recoverable:
// callers skip the offending line, event or recurrence and keep parsing.
// ConfigurationError is the only one that is ever fatal.
var (
	// ErrInvalidMoment is returned when a date/date-time string does not
	// match the RFC 5545 grammar.
	ErrInvalidMoment = errors.New("ics: invalid date-time value")

	// ErrInvalidDuration is returned for a malformed DURATION value.
	ErrInvalidDuration = errors.New("ics: invalid duration value")

	// ErrInvalidRRule is returned for a structurally unparseable or
	// semantically illegal RRULE (e.g. a numeric BYDAY ordinal under FREQ=DAILY).
	ErrInvalidRRule = errors.New("ics: invalid recurrence rule")

	// ErrConfiguration is returned when a recognised option carries a value
	// of the wrong kind. Unlike the other three, this is fatal to the parse.
	ErrConfiguration = errors.New("ics: invalid configuration")
)
