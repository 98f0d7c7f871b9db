package ics

// WindowFilter implements spec §4.H: a second pass over the final, expanded
// event list that drops anything whose DTSTART falls outside
// [windowMin, windowMax]. Events belonging to a recurring series are left
// alone here — they were already bounded by COUNT/UNTIL and the per-candidate
// epoch check inside the Expander.
func WindowFilter(events []*Event, cfg *Config) []*Event {
	lo, hi, ok := cfg.window()
	if !ok {
		return events
	}

	out := make([]*Event, 0, len(events))
	for _, ev := range events {
		if ev.Recurring {
			out = append(out, ev)
			continue
		}
		if ev.DTStart.Epoch >= lo && ev.DTStart.Epoch <= hi {
			out = append(out, ev)
		}
	}
	return out
}
