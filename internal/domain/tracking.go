package domain

import "strings"

// Counter field names shared by the daily and lifetime aggregates.
const (
	FieldViews       = "views"
	FieldImpressions = "impressions"
	FieldClicks      = "clicks"

	// CustomFieldPrefix namespaces counters for events outside the built-in
	// taxonomy.
	CustomFieldPrefix = "events."
)

// Built-in event names. Any other string is a custom event.
const (
	EventView       = "view"
	EventImpression = "impression"
	EventClick      = "click"
)

const maxCustomEventLen = 64

// ClassifyEvent maps an event name to the counter fields it increments.
// view and impression are synonyms: an impression is always also counted as
// a view, so both move together. click moves clicks only. Anything else is a
// custom event stored under a namespaced key derived from the literal name.
func ClassifyEvent(event string) []string {
	switch event {
	case EventView, EventImpression:
		return []string{FieldViews, FieldImpressions}
	case EventClick:
		return []string{FieldClicks}
	default:
		return []string{CustomFieldPrefix + safeEventKey(event)}
	}
}

// safeEventKey normalizes a custom event name into a key-safe counter name:
// lowercased, anything outside [a-z0-9_-] mapped to '_', capped at 64 chars.
func safeEventKey(name string) string {
	name = strings.ToLower(name)
	if len(name) > maxCustomEventLen {
		name = name[:maxCustomEventLen]
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// Counters is the shared counter shape of one aggregate scope.
type Counters struct {
	Views       int64            `json:"views"`
	Impressions int64            `json:"impressions"`
	Clicks      int64            `json:"clicks"`
	Events      map[string]int64 `json:"events,omitempty"`
}

// AdStats is the read model for a creative's engagement: the lifetime
// aggregate plus the current UTC day's aggregate.
type AdStats struct {
	AdID     string   `json:"ad_id"`
	Lifetime Counters `json:"lifetime"`
	Today    Counters `json:"today"`
}
