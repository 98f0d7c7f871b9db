package ics

import (
	"sort"
	"strings"
	"time"

	"github.com/teambition/rrule-go"
)

// ExpandEvent implements spec §4.G: given a RawEvent carrying an RRULE
// and/or explicit RDATEs, it produces the ordered occurrence sequence — the
// base event itself (unless excluded) followed by every generated
// recurrence and every explicit RDATE — splicing in RECURRENCE-ID overrides
// and honouring EXDATE, COUNT, UNTIL, WKST and the BY-parts. If the RRULE
// fails validation the recurrence is skipped and the base event alone is
// returned, per spec §7's InvalidRRule policy; RDATEs are still honoured in
// that case, since they don't depend on a valid RRULE.
func ExpandEvent(raw *RawEvent, cfg *Config, index *ModifiedInstanceIndex, now time.Time) ([]*Event, error) {
	dtstart := raw.DTStart
	exdates, err := materializeExDates(raw, cfg)
	if err != nil {
		return nil, err
	}
	overrides := index.forUID(raw.UID)

	var out []*Event
	emitted := map[int64]bool{dtstart.Epoch: true}

	emit := func(mom ZonedMoment) error {
		epoch := mom.Epoch()
		if emitted[epoch] || exdates.contains(mom) {
			return nil
		}
		if ov, ok := overrides[epoch]; ok {
			ovEvent, err := buildEvent(ov, dtStartOr(ov, dtstart), ov.DTEnd, true)
			if err != nil {
				return err
			}
			out = append(out, ovEvent)
			emitted[epoch] = true
			return nil
		}
		occDTStart, occDTEnd := rewriteOccurrence(raw, dtstart.Moment, mom)
		occ, err := buildEvent(raw, occDTStart, occDTEnd, true)
		if err != nil {
			return err
		}
		out = append(out, occ)
		emitted[epoch] = true
		return nil
	}

	if !exdates.contains(dtstart.Moment) {
		base, err := buildEvent(raw, dtstart, raw.DTEnd, true)
		if err != nil {
			return nil, err
		}
		out = append(out, base)
	}

	if raw.RRule != "" {
		rule, err := ParseRRule(raw.RRule, cfg.resolver(), cfg.DefaultTimeZone)
		if err != nil {
			logf(cfg.logger(), "rrule: skipping recurrence for UID %s: %v", raw.UID, err)
		} else {
			if !strings.Contains(strings.ToUpper(raw.RRule), "WKST=") {
				rule.WKST = cfg.DefaultWeekStart
			}
			if err := expandRRule(raw, rule, dtstart, now, cfg, exdates, overrides, emitted, &out); err != nil {
				return nil, err
			}
		}
	}

	for _, pv := range raw.RDates {
		value := pv.Raw
		if tz := firstParam(pv.Params, "TZID"); tz != "" {
			value = "TZID=" + escapeParamValue(tz) + ":" + pv.Raw
		}
		mom, err := ParseMoment(value, cfg.resolver(), cfg.DefaultTimeZone)
		if err != nil {
			logf(cfg.logger(), "rdate: skipping invalid RDATE for UID %s: %v", raw.UID, err)
			continue
		}
		if err := emit(mom); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// expandRRule runs the ADVANCE/EXPAND/FILTER/EMIT state machine of spec
// §4.G's RRULE loop, appending survivors to *out.
func expandRRule(raw *RawEvent, rule *RRule, dtstart PropertyValueWithParams, now time.Time, cfg *Config,
	exdates exDateSet, overrides map[int64]*RawEvent, emitted map[int64]bool, out *[]*Event) error {

	until := computeUntil(rule, dtstart.Moment, now, cfg.effectiveDefaultSpan())
	countLimit := rule.Count
	counter := 1 // spec §9: COUNT counts the initial DTSTART too.

	if countLimit > 0 && counter >= countLimit {
		return nil
	}

	gen := newCandidateGenerator(dtstart.Moment, rule)

	// The anchor's own period is expanded first (step 0, before any advance):
	// a multi-candidate-per-period rule (e.g. YEARLY with BYMONTH/BYDAY/
	// BYSETPOS) can produce further occurrences that land in DTSTART's own
	// year/month/week, alongside DTSTART itself.
	const maxOuterSteps = 200000
	for step := 0; step < maxOuterSteps; step++ {
		if gen.cursorAfter(until) {
			break
		}

		candidates := gen.expand()
		sort.Slice(candidates, func(i, j int) bool { return candidates[i].Before(candidates[j]) })

		stop := false
		for _, cTime := range candidates {
			mom := momentFromTime(cTime, dtstart.Moment)
			epoch := mom.Epoch()

			// A candidate coinciding with or preceding DTSTART (the
			// generator re-surfacing the anchor's own day) never competes
			// for COUNT — only genuinely new candidates do.
			if epoch <= dtstart.Epoch || epoch > until.Unix() {
				continue
			}
			if countLimit > 0 && counter >= countLimit {
				stop = true
				break
			}
			counter++

			if exdates.contains(mom) || emitted[epoch] {
				continue
			}

			if ov, ok := overrides[epoch]; ok {
				ovEvent, err := buildEvent(ov, dtStartOr(ov, dtstart), ov.DTEnd, true)
				if err != nil {
					return err
				}
				*out = append(*out, ovEvent)
				emitted[epoch] = true
				continue
			}

			occDTStart, occDTEnd := rewriteOccurrence(raw, dtstart.Moment, mom)
			occ, err := buildEvent(raw, occDTStart, occDTEnd, true)
			if err != nil {
				return err
			}
			*out = append(*out, occ)
			emitted[epoch] = true
		}

		if stop {
			break
		}
		if countLimit > 0 && counter >= countLimit {
			break
		}
		gen.advance()
	}

	return nil
}

// dtStartOr lets an override RawEvent (which always carries its own
// RECURRENCE-ID/DTSTART) stand in for the colliding base occurrence. It's a
// tiny accessor rather than a full method set because only the expander
// needs it.
func dtStartOr(r *RawEvent, fallback PropertyValueWithParams) PropertyValueWithParams {
	if r.RecurrenceID != nil {
		return r.DTStart
	}
	return fallback
}

// computeUntil implements spec §4.G step 5: "now + defaultSpan years at
// 23:59:59", capped by a literal UNTIL if present.
func computeUntil(rule *RRule, dtstart ZonedMoment, now time.Time, defaultSpanYears int) time.Time {
	loc := dtstart.location()
	fallback := time.Date(now.Year()+defaultSpanYears, now.Month(), now.Day(), 23, 59, 59, 0, loc)
	if rule.Until == nil {
		return fallback
	}
	lit := rule.Until.Time()
	if lit.Before(fallback) {
		return lit
	}
	return fallback
}

// exDateSet holds the parsed EXDATE values for one event, split by whether
// each was written as a DATE or a DATE-TIME. A DATE-TIME EXDATE must match an
// occurrence's exact moment, but a DATE EXDATE carries no time-of-day at all:
// per spec §8 scenario 3, it excludes whichever occurrence falls on that
// civil date, regardless of the occurrence's own time-of-day.
type exDateSet struct {
	exact map[int64]bool
	dates map[int]bool
}

// civilDateKey collapses a moment's year/month/day into a single comparable
// int, independent of time-of-day or zone.
func civilDateKey(m ZonedMoment) int {
	return m.Year*10000 + m.Month*100 + m.Day
}

func (s exDateSet) contains(m ZonedMoment) bool {
	if s.exact[m.Epoch()] {
		return true
	}
	return s.dates[civilDateKey(m)]
}

// materializeExDates implements spec §4.G step 3: parse every EXDATE into a
// ZonedMoment, honouring per-line TZID and Z. Each content line's TZID only
// ever applies to that line's own comma-separated values — spec.md's "reset
// to the configured default at end of block" describes exactly that
// per-line scoping, since LogicalLine parameters never carry over between
// lines.
func materializeExDates(raw *RawEvent, cfg *Config) (exDateSet, error) {
	out := exDateSet{
		exact: make(map[int64]bool, len(raw.ExDates)),
		dates: make(map[int]bool, len(raw.ExDates)),
	}
	for _, pv := range raw.ExDates {
		value := pv.Raw
		if tz := firstParam(pv.Params, "TZID"); tz != "" {
			value = "TZID=" + escapeParamValue(tz) + ":" + pv.Raw
		}
		mom, err := ParseMoment(value, cfg.resolver(), cfg.DefaultTimeZone)
		if err != nil {
			logf(cfg.logger(), "exdate: skipping invalid EXDATE for UID %s: %v", raw.UID, err)
			continue
		}
		if mom.IsDateOnly {
			out.dates[civilDateKey(mom)] = true
		} else {
			out.exact[mom.Epoch()] = true
		}
	}
	return out, nil
}

// candidateGenerator walks the outer ADVANCE/EXPAND loop of spec §4.G's
// state machine for one event.
type candidateGenerator struct {
	rule       *RRule
	anchor     time.Time // DTSTART's wall-clock moment, in its own zone
	anchorDay  int
	anchorMon  int
	cursor     time.Time // the current outer-loop cursor
	cursorYear int
	cursorMon  int
}

func newCandidateGenerator(dtstart ZonedMoment, rule *RRule) *candidateGenerator {
	t := dtstart.Time()
	return &candidateGenerator{
		rule:       rule,
		anchor:     t,
		anchorDay:  dtstart.Day,
		anchorMon:  dtstart.Month,
		cursor:     t,
		cursorYear: dtstart.Year,
		cursorMon:  dtstart.Month,
	}
}

func (g *candidateGenerator) cursorAfter(until time.Time) bool {
	return g.cursor.After(until)
}

// advance moves the cursor by interval x frequency-unit (spec §4.G step 7).
func (g *candidateGenerator) advance() {
	switch g.rule.Freq {
	case rrule.DAILY:
		g.cursor = g.cursor.AddDate(0, 0, g.rule.Interval)
	case rrule.WEEKLY:
		g.cursor = g.cursor.AddDate(0, 0, 7*g.rule.Interval)
	case rrule.MONTHLY:
		total := g.cursorYear*12 + (g.cursorMon - 1) + g.rule.Interval
		g.cursorYear = total / 12
		g.cursorMon = total%12 + 1
		day := g.anchorDay
		if ml := daysInMonth(g.cursorYear, g.cursorMon); day > ml {
			// Month-advance fixup (spec §4.G): pin e.g. 31 January to
			// 28/29 February instead of letting the day field overflow
			// into March the way naive time.AddDate would.
			day = ml
		}
		g.cursor = time.Date(g.cursorYear, time.Month(g.cursorMon), day,
			g.anchor.Hour(), g.anchor.Minute(), g.anchor.Second(), 0, g.anchor.Location())
	case rrule.YEARLY:
		g.cursorYear += g.rule.Interval
		day := g.anchorDay
		if ml := daysInMonth(g.cursorYear, g.anchorMon); day > ml {
			day = ml // same pin, applied to the Feb-29-on-a-non-leap-year case
		}
		g.cursor = time.Date(g.cursorYear, time.Month(g.anchorMon), day,
			g.anchor.Hour(), g.anchor.Minute(), g.anchor.Second(), 0, g.anchor.Location())
	}
}

// expand produces this step's candidate set per spec §4.G's per-frequency rules.
func (g *candidateGenerator) expand() []time.Time {
	switch g.rule.Freq {
	case rrule.DAILY:
		return g.expandDaily()
	case rrule.WEEKLY:
		return g.expandWeekly()
	case rrule.MONTHLY:
		return g.expandMonthly()
	case rrule.YEARLY:
		return g.expandYearly()
	default:
		return nil
	}
}

func (g *candidateGenerator) expandDaily() []time.Time {
	if len(g.rule.ByMonthDay) == 0 {
		return []time.Time{g.cursor}
	}
	ml := daysInMonth(g.cursor.Year(), int(g.cursor.Month()))
	days := resolveMonthDays(g.rule.ByMonthDay, ml)
	for _, d := range days {
		if d == g.cursor.Day() {
			return []time.Time{g.cursor}
		}
	}
	return nil
}

func (g *candidateGenerator) expandWeekly() []time.Time {
	if len(g.rule.ByDay) == 0 {
		return []time.Time{g.cursor}
	}
	cursorISO := isoWeekday(g.cursor.Weekday())
	wkstISO := isoWeekday(g.rule.WKST)

	out := make([]time.Time, 0, len(g.rule.ByDay))
	for _, wd := range g.rule.ByDay {
		targetISO := isoWeekday(wd.Day)
		offset := targetISO - cursorISO
		if g.rule.WKST != time.Monday && g.rule.Interval > 1 && targetISO >= wkstISO {
			offset += 7 * (g.rule.Interval - 1)
		}
		out = append(out, g.cursor.AddDate(0, 0, offset))
	}
	return out
}

func (g *candidateGenerator) expandMonthly() []time.Time {
	y, m := g.cursorYear, g.cursorMon
	ml := daysInMonth(y, m)

	var days []int
	switch {
	case len(g.rule.ByMonthDay) > 0:
		days = resolveMonthDays(g.rule.ByMonthDay, ml)
		if len(g.rule.ByDay) > 0 {
			days = intersectInts(days, weekdaySetForMonth(y, m, g.rule.ByDay))
		}
	case len(g.rule.ByDay) > 0:
		days = byDayOrdinalDaysInMonth(y, m, g.rule.ByDay)
	default:
		if g.anchorDay <= ml {
			days = []int{g.anchorDay}
		}
	}

	sort.Ints(days)
	if len(g.rule.BySetPos) > 0 {
		days = applyBySetPos(days, g.rule.BySetPos)
	}

	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		if d < 1 || d > ml {
			continue
		}
		out = append(out, time.Date(y, time.Month(m), d,
			g.anchor.Hour(), g.anchor.Minute(), g.anchor.Second(), 0, g.anchor.Location()))
	}
	return out
}

func (g *candidateGenerator) expandYearly() []time.Time {
	year := g.cursorYear
	doys := yearlyCandidateDaysOfYear(year, g.rule, g.anchorMon, g.anchorDay)

	out := make([]time.Time, 0, len(doys))
	yearLen := 365
	if isLeapYear(year) {
		yearLen = 366
	}
	for _, doy := range doys {
		if doy < 1 || doy > yearLen {
			continue
		}
		out = append(out, dateFromDayOfYear(year, doy,
			g.anchor.Hour(), g.anchor.Minute(), g.anchor.Second(), g.anchor.Location()))
	}
	return out
}

// momentFromTime rebuilds a ZonedMoment from a generated time.Time, carrying
// over the original event's zone/UTC flags. A generated moment is always
// rendered with a time-of-day (spec §8 scenarios 1-2: a DATE-only DTSTART's
// own recurrences print as DTSTART-with-T000000, only the base occurrence
// keeps the literal DATE form it was written in).
func momentFromTime(t time.Time, like ZonedMoment) ZonedMoment {
	m := ZonedMoment{
		Year: t.Year(), Month: int(t.Month()), Day: t.Day(),
		Hour: t.Hour(), Minute: t.Minute(), Second: t.Second(),
		IsUTC: like.IsUTC,
		Zone:  like.Zone,
	}
	return m
}

// rewriteOccurrence implements the emission post-conditions of spec §4.G:
// the candidate's DTSTART/DTEND are the candidate moment plus the original
// event length, with TZID/Z preservation.
func rewriteOccurrence(raw *RawEvent, origDTStart ZonedMoment, candidate ZonedMoment) (PropertyValueWithParams, *PropertyValueWithParams) {
	dtstart := reconstructOccurrence(origDTStart, candidate)

	if raw.DTEnd == nil && raw.Duration == nil {
		return dtstart, nil
	}

	var end time.Time
	if raw.Duration != nil {
		end = raw.Duration.AddTo(candidate.Time())
	} else {
		length := raw.DTEnd.Moment.Time().Sub(origDTStart.Time())
		end = candidate.Time().Add(length)
	}
	endMoment := momentFromTime(end, origDTStart)
	dtend := reconstructOccurrence(origDTStart, endMoment)
	return dtstart, &dtend
}

func reconstructOccurrence(orig ZonedMoment, candidate ZonedMoment) PropertyValueWithParams {
	pv := PropertyValueWithParams{Moment: candidate, Epoch: candidate.Epoch()}
	switch {
	case orig.IsUTC:
		pv.Raw = formatMoment(candidate, true)
		pv.Reconstructed = pv.Raw
	case orig.Zone != nil && orig.Zone.IANA != "" && orig.Zone.IANA != "UTC":
		pv.Raw = formatMoment(candidate, false)
		pv.Params = map[string][]string{"TZID": {orig.Zone.IANA}}
		pv.Reconstructed = "TZID=" + escapeParamValue(orig.Zone.IANA) + ":" + pv.Raw
	default:
		pv.Raw = formatMoment(candidate, false)
		pv.Reconstructed = pv.Raw
	}
	return pv
}

func formatMoment(m ZonedMoment, utc bool) string {
	const dateLayout = "20060102"
	const dateTimeLayout = "20060102T150405"
	t := m.Time()
	if m.IsDateOnly {
		return t.Format(dateLayout)
	}
	s := t.Format(dateTimeLayout)
	if utc {
		s += "Z"
	}
	return s
}

// --- calendar arithmetic helpers, grounded on the BY-part rules of §4.G ---

func daysInMonth(year, month int) int {
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func dayOfYearFromDate(year, month, day int) int {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).YearDay()
}

func dateFromDayOfYear(year, doy, hour, minute, second int, loc *time.Location) time.Time {
	return time.Date(year, 1, doy, hour, minute, second, 0, loc)
}

// isoWeeksInYear implements the boundary case from spec §8: a year starting
// on Thursday (or on Wednesday in a leap year) has 53 ISO weeks, otherwise 52.
func isoWeeksInYear(year int) int {
	jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	wd := jan1.Weekday()
	if wd == time.Thursday || (isLeapYear(year) && wd == time.Wednesday) {
		return 53
	}
	return 52
}

func resolveMonthDays(entries []int, monthLen int) []int {
	out := make([]int, 0, len(entries))
	for _, n := range entries {
		switch {
		case n > 0 && n <= monthLen:
			out = append(out, n)
		case n < 0:
			d := monthLen + n + 1
			if d >= 1 {
				out = append(out, d)
			}
		}
	}
	return out
}

func resolveYearDays(entries []int, year int) []int {
	yearLen := 365
	if isLeapYear(year) {
		yearLen = 366
	}
	out := make([]int, 0, len(entries))
	for _, n := range entries {
		switch {
		case n > 0 && n <= yearLen:
			out = append(out, n)
		case n < 0:
			d := yearLen + n + 1
			if d >= 1 {
				out = append(out, d)
			}
		}
	}
	return out
}

func weekdaySetForMonth(year, month int, byday []Weekday) []int {
	wanted := make(map[time.Weekday]bool, len(byday))
	for _, wd := range byday {
		wanted[wd.Day] = true
	}
	ml := daysInMonth(year, month)
	out := make([]int, 0, ml/7+2)
	for d := 1; d <= ml; d++ {
		wd := time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Weekday()
		if wanted[wd] {
			out = append(out, d)
		}
	}
	return out
}

// byDayOrdinalDaysInMonth implements the ordinal BYDAY rule for MONTHLY
// (spec §4.G): "first/last of the month, then shift by |ord|-1 weeks".
func byDayOrdinalDaysInMonth(year, month int, byday []Weekday) []int {
	ml := daysInMonth(year, month)
	var out []int
	for _, wd := range byday {
		if wd.Ordinal == 0 {
			out = append(out, weekdaySetForMonth(year, month, []Weekday{wd})...)
			continue
		}
		if wd.Ordinal > 0 {
			first := firstWeekdayOnOrAfter(year, month, 1, wd.Day)
			d := first + 7*(wd.Ordinal-1)
			if d >= 1 && d <= ml {
				out = append(out, d)
			}
		} else {
			last := lastWeekdayOnOrBefore(year, month, ml, wd.Day)
			d := last - 7*(-wd.Ordinal-1)
			if d >= 1 && d <= ml {
				out = append(out, d)
			}
		}
	}
	return dedupeInts(out)
}

func firstWeekdayOnOrAfter(year, month, fromDay int, target time.Weekday) int {
	for d := fromDay; d <= daysInMonth(year, month); d++ {
		if time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Weekday() == target {
			return d
		}
	}
	return 0
}

func lastWeekdayOnOrBefore(year, month, fromDay int, target time.Weekday) int {
	for d := fromDay; d >= 1; d-- {
		if time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.UTC).Weekday() == target {
			return d
		}
	}
	return 0
}

// yearlyCandidateDaysOfYear implements the four-branch priority order of
// spec §4.G's YEARLY rule, then the BYDAY intersect/union and BYSETPOS pass.
func yearlyCandidateDaysOfYear(year int, rule *RRule, anchorMonth, anchorDay int) []int {
	var base []int
	contributed := false

	switch {
	case len(rule.ByMonth) > 0:
		contributed = true
		for _, mo := range rule.ByMonth {
			ml := daysInMonth(year, mo)
			var days []int
			switch {
			case len(rule.ByMonthDay) > 0:
				days = resolveMonthDays(rule.ByMonthDay, ml)
			case len(rule.ByDay) > 0:
				days = byDayOrdinalDaysInMonth(year, mo, rule.ByDay)
			default:
				if anchorDay <= ml {
					days = []int{anchorDay}
				}
			}
			for _, d := range days {
				base = append(base, dayOfYearFromDate(year, mo, d))
			}
		}
	case len(rule.ByWeekNo) > 0:
		contributed = true
		base = expandByWeekNo(year, rule.ByWeekNo)
	case len(rule.ByYearDay) > 0:
		contributed = true
		base = resolveYearDays(rule.ByYearDay, year)
	case len(rule.ByMonthDay) > 0:
		contributed = true
		for mo := 1; mo <= 12; mo++ {
			ml := daysInMonth(year, mo)
			for _, d := range resolveMonthDays(rule.ByMonthDay, ml) {
				base = append(base, dayOfYearFromDate(year, mo, d))
			}
		}
	}

	if len(rule.ByDay) > 0 {
		byDaySet := expandByDayYearly(year, rule.ByDay)
		if contributed {
			base = intersectInts(base, byDaySet)
		} else {
			base = byDaySet
		}
	} else if !contributed {
		ml := daysInMonth(year, anchorMonth)
		if anchorDay <= ml {
			base = []int{dayOfYearFromDate(year, anchorMonth, anchorDay)}
		}
	}

	sort.Ints(base)
	if len(rule.BySetPos) > 0 {
		base = applyBySetPos(base, rule.BySetPos)
	}
	return base
}

// expandByDayYearly resolves BYDAY entries across a whole year: an ordinal
// is relative to the year (e.g. "-1SU" = last Sunday of the year), a bare
// weekday expands to every matching day of the year.
func expandByDayYearly(year int, byday []Weekday) []int {
	perWeekday := make(map[time.Weekday][]int)
	jan1 := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	yearLen := 365
	if isLeapYear(year) {
		yearLen = 366
	}
	for doy := 1; doy <= yearLen; doy++ {
		wd := jan1.AddDate(0, 0, doy-1).Weekday()
		perWeekday[wd] = append(perWeekday[wd], doy)
	}

	var out []int
	for _, wd := range byday {
		days := perWeekday[wd.Day]
		if wd.Ordinal == 0 {
			out = append(out, days...)
			continue
		}
		idx := 0
		if wd.Ordinal > 0 {
			idx = wd.Ordinal - 1
		} else {
			idx = len(days) + wd.Ordinal
		}
		if idx >= 0 && idx < len(days) {
			out = append(out, days[idx])
		}
	}
	return dedupeInts(out)
}

// expandByWeekNo converts each (possibly negative) ISO week number into its
// seven days-of-year, using Go's ISO-8601 week numbering.
func expandByWeekNo(year int, weeknos []int) []int {
	total := isoWeeksInYear(year)
	// ISO week 1 is the week containing Jan 4; its Monday falls between
	// Dec 29 of the previous year and Jan 4.
	jan4 := time.Date(year, 1, 4, 0, 0, 0, 0, time.UTC)
	week1Monday := jan4.AddDate(0, 0, -(isoWeekday(jan4.Weekday()) - 1))

	var out []int
	for _, n := range weeknos {
		wn := n
		if wn < 0 {
			wn = total + wn + 1
		}
		if wn < 1 || wn > total {
			continue
		}
		weekStart := week1Monday.AddDate(0, 0, 7*(wn-1))
		for i := 0; i < 7; i++ {
			d := weekStart.AddDate(0, 0, i)
			if d.Year() == year {
				out = append(out, d.YearDay())
			}
		}
	}
	return out
}

func applyBySetPos(days []int, pos []int) []int {
	n := len(days)
	seen := make(map[int]bool, len(pos))
	var out []int
	for _, p := range pos {
		var idx int
		switch {
		case p > 0:
			idx = p - 1
		case p < 0:
			idx = n + p
		default:
			continue
		}
		if idx < 0 || idx >= n {
			continue
		}
		if !seen[days[idx]] {
			seen[days[idx]] = true
			out = append(out, days[idx])
		}
	}
	sort.Ints(out)
	return out
}

func intersectInts(a, b []int) []int {
	set := make(map[int]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	var out []int
	for _, v := range a {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}

func dedupeInts(in []int) []int {
	seen := make(map[int]bool, len(in))
	out := make([]int, 0, len(in))
	for _, v := range in {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Ints(out)
	return out
}
