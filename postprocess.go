package ics

// ModifiedInstanceIndex maps a UID to the set of its RECURRENCE-ID overrides,
// keyed by the original occurrence's epoch (spec §3). The expander consults
// it to (a) suppress a generated occurrence whose epoch matches an override
// and (b) emit the override in its place.
type ModifiedInstanceIndex struct {
	overrides map[string]map[int64]*RawEvent
}

func newModifiedInstanceIndex() *ModifiedInstanceIndex {
	return &ModifiedInstanceIndex{overrides: make(map[string]map[int64]*RawEvent)}
}

func (idx *ModifiedInstanceIndex) add(uid string, epoch int64, re *RawEvent) {
	m, ok := idx.overrides[uid]
	if !ok {
		m = make(map[int64]*RawEvent)
		idx.overrides[uid] = m
	}
	m[epoch] = re
}

func (idx *ModifiedInstanceIndex) forUID(uid string) map[int64]*RawEvent {
	return idx.overrides[uid]
}

// PostProcess implements spec §4.F: materialise DTSTART/DTEND/RECURRENCE-ID
// into fully-resolved four-tuples, build the ModifiedInstanceIndex from
// every event carrying a RECURRENCE-ID, and nullify in place any base
// occurrence (an event with no RECURRENCE-ID of its own) whose DTSTART
// epoch collides with one of its own UID's overrides.
//
// It returns the events that still need independent expansion — overrides
// are never expanded as their own recurrence master, and a colliding base
// occurrence is dropped entirely since its override stands in for it.
func PostProcess(events []*RawEvent, cfg *Config) ([]*RawEvent, *ModifiedInstanceIndex, error) {
	index := newModifiedInstanceIndex()

	for _, re := range events {
		if err := resolveMoment(&re.DTStart, cfg); err != nil {
			logf(cfg.logger(), "postprocess: invalid DTSTART on UID %s: %v", re.UID, err)
			continue
		}
		if re.DTEnd != nil {
			if err := resolveMoment(re.DTEnd, cfg); err != nil {
				logf(cfg.logger(), "postprocess: invalid DTEND on UID %s: %v", re.UID, err)
				re.DTEnd = nil
			}
		}
		if re.RecurrenceID != nil {
			if err := resolveMoment(re.RecurrenceID, cfg); err != nil {
				logf(cfg.logger(), "postprocess: invalid RECURRENCE-ID on UID %s: %v", re.UID, err)
				re.RecurrenceID = nil
			}
		}
	}

	for _, re := range events {
		if re.RecurrenceID != nil {
			index.add(re.UID, re.RecurrenceID.Epoch, re)
		}
	}

	out := make([]*RawEvent, 0, len(events))
	for _, re := range events {
		if re.RecurrenceID != nil {
			continue // handled via the index, not expanded on its own
		}
		if overrides, ok := index.overrides[re.UID]; ok {
			if _, collides := overrides[re.DTStart.Epoch]; collides {
				continue // base occurrence nullified in place (spec §4.F)
			}
		}
		out = append(out, re)
	}

	return out, index, nil
}

// resolveMoment fills in Epoch/Moment/Reconstructed on a partially-assembled
// PropertyValueWithParams (Params+Raw only, set by the assembler).
func resolveMoment(pv *PropertyValueWithParams, cfg *Config) error {
	pv.Reconstructed = reconstructRaw(*pv)
	mom, err := ParseMoment(pv.Reconstructed, cfg.resolver(), cfg.DefaultTimeZone)
	if err != nil {
		return err
	}
	pv.Moment = mom
	pv.Epoch = mom.Epoch()
	return nil
}
