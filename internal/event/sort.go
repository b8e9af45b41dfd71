package event

import (
	"sort"
	"strings"
)

// SortByStart sorts events by start date. Events with a parseable date come
// first; ties and undated events are ordered by state then name.
func SortByStart(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return compareByStart(events[i], events[j])
	})
}

// compareByStart returns true if event i should come before event j
func compareByStart(i, j *Event) bool {
	dateI := i.Start()
	dateJ := j.Start()

	// If both dates are valid, compare them
	if !dateI.IsZero() && !dateJ.IsZero() && !dateI.Equal(dateJ) {
		return dateI.Before(dateJ)
	}

	// If only one date is valid, put the valid one first
	if !dateI.IsZero() && dateJ.IsZero() {
		return true
	}
	if dateI.IsZero() && !dateJ.IsZero() {
		return false
	}

	if i.State != j.State {
		return i.State < j.State
	}
	return strings.ToLower(i.Name) < strings.ToLower(j.Name)
}
