package ics

import (
	"html"
	"strings"
	"sync"
	"time"
)

// ZoneInfo is a tagged value resolving to one IANA zone identifier (spec §3).
type ZoneInfo struct {
	IANA     string
	Location *time.Location
}

// ZoneResolver implements spec §4.D: map a candidate zone string (IANA,
// CLDR display name, or Windows zone ID) to a canonical IANA zone, falling
// back to defaultZone. It never errors — an unresolvable candidate and an
// unresolvable default both fall through to UTC.
type ZoneResolver interface {
	Resolve(candidate, defaultZone string) *ZoneInfo
}

// DefaultZoneResolver is the injected lookup spec.md §1/§9 calls out: the
// CLDR/Windows mapping tables (zonedata.go) are pure data, consulted here
// rather than inlined into the resolution logic.
type DefaultZoneResolver struct{}

// ianaCache is the "validIanaTimeZones" cache from spec §5: append-only,
// shared across resolutions, protected by a mutex so a concurrent embedding
// (multiple goroutines each running their own parse) stays safe without each
// needing its own resolver instance.
var ianaCache = struct {
	mu    sync.RWMutex
	valid map[string]bool
}{valid: make(map[string]bool)}

// Resolve implements the four-step chain from spec §4.D.
func (DefaultZoneResolver) Resolve(candidate, defaultZone string) *ZoneInfo {
	candidate = cleanZoneCandidate(candidate)

	if candidate != "" {
		if loc, ok := lookupIANA(candidate); ok {
			return &ZoneInfo{IANA: candidate, Location: loc}
		}
		if iana, ok := cldrDisplayNames[strings.ToLower(candidate)]; ok {
			if loc, ok2 := lookupIANA(iana); ok2 {
				return &ZoneInfo{IANA: iana, Location: loc}
			}
		}
		if iana, ok := windowsZoneNames[candidate]; ok {
			if loc, ok2 := lookupIANA(iana); ok2 {
				return &ZoneInfo{IANA: iana, Location: loc}
			}
		}
	}

	def := cleanZoneCandidate(defaultZone)
	if loc, ok := lookupIANA(def); ok {
		return &ZoneInfo{IANA: def, Location: loc}
	}

	return &ZoneInfo{IANA: "UTC", Location: time.UTC}
}

// cleanZoneCandidate strips surrounding double quotes and decodes HTML
// entities, both of which show up in zone strings lifted out of calendars
// exported by web-based clients.
func cleanZoneCandidate(s string) string {
	s = strings.TrimSpace(s)
	s = unquote(s)
	return html.UnescapeString(s)
}

func lookupIANA(name string) (*time.Location, bool) {
	if name == "" {
		return nil, false
	}

	ianaCache.mu.RLock()
	valid, seen := ianaCache.valid[name]
	ianaCache.mu.RUnlock()

	if seen {
		if !valid {
			return nil, false
		}
		loc, err := time.LoadLocation(name)
		return loc, err == nil
	}

	loc, err := time.LoadLocation(name)

	ianaCache.mu.Lock()
	ianaCache.valid[name] = err == nil
	ianaCache.mu.Unlock()

	if err != nil {
		return nil, false
	}
	return loc, true
}
