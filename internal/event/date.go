package event

import "time"

// dateLayouts are tried in order by ParseDate
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"02/01/2006",
}

// ParseDate attempts to parse an API date string into a time.Time.
// Returns time.Time{} (zero value) if parsing fails.
// Supports formats: "2026-03-14", "2026-03-14T09:00:00+10:00",
// "2026-03-14T09:00:00", "2026-03-14 09:00:00", "14/03/2026"
func ParseDate(dateText string) time.Time {
	if dateText == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateText); err == nil {
			return t
		}
	}

	// Could not parse, return zero time
	return time.Time{}
}
