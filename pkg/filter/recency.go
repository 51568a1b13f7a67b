// Package filter provides the gates applied to fetched items before the bot
// acts on them: a recency check and a keyword relevance check.
package filter

import (
	"log"
	"strings"
	"time"
)

// DefaultRecencyWindow is the maximum age for an item to be eligible for a
// comment.
const DefaultRecencyWindow = 2 * time.Hour

// timestampLayouts are tried in order; the first successful parse wins.
var timestampLayouts = []string{
	time.RubyDate,              // "Mon Jan 02 15:04:05 -0700 2006" (platform created_at)
	"2006-01-02 15:04:05",      // plain
	"2006-01-02T15:04:05.999Z", // ISO fractional UTC (profile <time> datetime attr)
	time.RFC3339,
}

// IsRecent reports whether raw parses to a time within window of now.
// Unparsable or empty timestamps are never recent; the failure is logged,
// not returned. Offsets are honored during parsing and then dropped, so the
// comparison is between wall-clock instants.
func IsRecent(raw string, window time.Duration, now time.Time) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}

	parsed, ok := parseTimestamp(raw)
	if !ok {
		log.Printf("filter: could not parse timestamp %q", raw)
		return false
	}

	return stripZone(parsed).After(now.Add(-window))
}

func parseTimestamp(raw string) (time.Time, bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// stripZone discards offset information, keeping the wall-clock fields.
func stripZone(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}
