// Package filter narrows a list of events before it is exported.
//
// A filter combines any of the following criteria; an event must satisfy all
// of the active ones:
//   - Date range (from/to dates, matched against the event start date)
//   - Keywords (substring match on name and venue, case-insensitive)
//   - States (state code, case-insensitive)
//   - Divisions (substring match on any available division, case-insensitive)
//   - Weekends only (event starts on Saturday or Sunday)
//
// Example usage:
//
//	f := filter.NewFilter()
//	f.WeekendsOnly = true
//	f.Divisions = []string{"Rescue"}
//	filtered := f.Apply(events)
package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/rcja-events/internal/event"
)

// Filter represents event filtering criteria
type Filter struct {
	// Date range filtering
	DateFrom *time.Time `json:"date_from,omitempty" yaml:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty" yaml:"date_to,omitempty"`

	// Name and venue keyword filtering (case-insensitive substring match)
	Keywords []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`

	States    []string `json:"states,omitempty" yaml:"states,omitempty"`
	Divisions []string `json:"divisions,omitempty" yaml:"divisions,omitempty"`

	WeekendsOnly bool `json:"weekends_only,omitempty" yaml:"weekends_only,omitempty"`
}

// NewFilter creates a new empty filter with no active criteria.
// The filter will match all events until criteria are added.
func NewFilter() *Filter {
	return &Filter{
		Keywords:  []string{},
		States:    []string{},
		Divisions: []string{},
	}
}

// IsEmpty checks if the filter has any active criteria
func (f *Filter) IsEmpty() bool {
	return f.DateFrom == nil &&
		f.DateTo == nil &&
		len(f.Keywords) == 0 &&
		len(f.States) == 0 &&
		len(f.Divisions) == 0 &&
		!f.WeekendsOnly
}

// Matches checks if an event matches all active filter criteria.
// Date criteria reject events without a parseable start date.
func (f *Filter) Matches(evt *event.Event) bool {
	if f.IsEmpty() {
		return true
	}

	if f.DateFrom != nil || f.DateTo != nil || f.WeekendsOnly {
		start := evt.Start()
		if start.IsZero() {
			return false
		}
		if f.DateFrom != nil && start.Before(*f.DateFrom) {
			return false
		}
		if f.DateTo != nil && start.After(*f.DateTo) {
			return false
		}
		if f.WeekendsOnly {
			weekday := start.Weekday()
			if weekday != time.Saturday && weekday != time.Sunday {
				return false
			}
		}
	}

	if len(f.Keywords) > 0 && !containsAny(evt.SearchText(), f.Keywords) {
		return false
	}

	if len(f.States) > 0 {
		matched := false
		for _, state := range f.States {
			if strings.EqualFold(evt.State, state) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.Divisions) > 0 && !containsAny(strings.ToLower(evt.Divisions()), f.Divisions) {
		return false
	}

	return true
}

// containsAny reports whether lowered text contains any of the needles
func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, strings.ToLower(n)) {
			return true
		}
	}
	return false
}

// Apply returns the events matching the filter. An empty filter returns the
// original list unchanged.
func (f *Filter) Apply(events []*event.Event) []*event.Event {
	if f.IsEmpty() {
		return events
	}

	filtered := make([]*event.Event, 0, len(events))
	for _, evt := range events {
		if f.Matches(evt) {
			filtered = append(filtered, evt)
		}
	}
	return filtered
}

// String returns a human-readable description of the active filter criteria.
// Format: "From: Mar 1, 2026 | To: Mar 15, 2026 | Keywords: brisbane | Weekends only"
func (f *Filter) String() string {
	if f.IsEmpty() {
		return "No active filters"
	}

	var parts []string
	if f.DateFrom != nil {
		parts = append(parts, fmt.Sprintf("From: %s", f.DateFrom.Format("Jan 2, 2006")))
	}
	if f.DateTo != nil {
		parts = append(parts, fmt.Sprintf("To: %s", f.DateTo.Format("Jan 2, 2006")))
	}
	if len(f.Keywords) > 0 {
		parts = append(parts, fmt.Sprintf("Keywords: %s", strings.Join(f.Keywords, ", ")))
	}
	if len(f.States) > 0 {
		parts = append(parts, fmt.Sprintf("States: %s", strings.Join(f.States, ", ")))
	}
	if len(f.Divisions) > 0 {
		parts = append(parts, fmt.Sprintf("Divisions: %s", strings.Join(f.Divisions, ", ")))
	}
	if f.WeekendsOnly {
		parts = append(parts, "Weekends only")
	}
	return strings.Join(parts, " | ")
}
