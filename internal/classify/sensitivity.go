package classify

import "time"

// TimeSensitivity is the urgency tier of a deadline, ordered from least to
// most urgent: none < moderate < urgent < critical.
type TimeSensitivity string

// Time-sensitivity tiers.
const (
	SensitivityNone     TimeSensitivity = "none"
	SensitivityModerate TimeSensitivity = "moderate"
	SensitivityUrgent   TimeSensitivity = "urgent"
	SensitivityCritical TimeSensitivity = "critical"
)

// isoDateLayouts are the date shapes the upstream extractor emits. Date-only
// is the common case; timestamps appear when the extractor found an exact
// hearing time.
var isoDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// ParseISODate parses an ISO-ish date string. The second return is false if
// the string is empty or matches none of the accepted layouts.
func ParseISODate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range isoDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DaysBetween returns the whole days from now's calendar date to the
// deadline's calendar date. Both instants are truncated to midnight first,
// so a 9am deadline checked at 4pm the same day is 0 days, not negative.
func DaysBetween(deadline, now time.Time) int {
	d := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)
	n := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(n).Hours() / 24)
}

// DaysUntil parses dateISO and returns the signed day count from now to it.
// The second return is false when dateISO does not parse.
func DaysUntil(dateISO string, now time.Time) (int, bool) {
	deadline, ok := ParseISODate(dateISO)
	if !ok {
		return 0, false
	}
	return DaysBetween(deadline, now), true
}

// ClassifySensitivity maps a deadline to its urgency tier relative to now.
// A missing or unparseable deadline is SensitivityNone. An overdue deadline
// is always SensitivityCritical.
func ClassifySensitivity(deadlineISO string, now time.Time) TimeSensitivity {
	days, ok := DaysUntil(deadlineISO, now)
	if !ok {
		return SensitivityNone
	}

	switch {
	case days <= 2: // includes overdue
		return SensitivityCritical
	case days <= 6:
		return SensitivityUrgent
	case days <= 14:
		return SensitivityModerate
	default:
		return SensitivityNone
	}
}
