package ics

import "sort"

// Export implements spec §4.I: sort the merged event list by DTSTART epoch.
// Ties keep their original relative order (spec §5's ordering guarantee —
// "the order they were produced by the expansion loop per source event,
// concatenated to the base-event list").
func Export(events []*Event) []*Event {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].DTStart.Epoch < events[j].DTStart.Epoch
	})
	return events
}
