package filter

import (
	"testing"
	"time"

	"github.com/pfrederiksen/rcja-events/internal/event"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func testEvents() []*event.Event {
	return []*event.Event{
		{
			ID:                 "1",
			State:              "QLD",
			Name:               "Brisbane Regional",
			StartDate:          "2026-03-14", // Saturday
			Venue:              &event.Venue{Name: "QUT", Address: "2 George St, Brisbane"},
			AvailableDivisions: []event.Division{{Name: "Rescue Line"}, {Name: "OnStage"}},
		},
		{
			ID:                 "2",
			State:              "NSW",
			Name:               "Sydney Workshop",
			StartDate:          "2026-03-18", // Wednesday
			AvailableDivisions: []event.Division{{Name: "Soccer Lightweight"}},
		},
		{
			ID:    "3",
			State: "QLD",
			Name:  "Cairns Open Day",
		},
	}
}

func TestFilter_IsEmpty(t *testing.T) {
	tests := []struct {
		name   string
		filter *Filter
		want   bool
	}{
		{"empty filter", NewFilter(), true},
		{"date from", &Filter{DateFrom: timePtr(time.Now())}, false},
		{"weekends only", &Filter{WeekendsOnly: true}, false},
		{"keyword", &Filter{Keywords: []string{"brisbane"}}, false},
		{"division", &Filter{Divisions: []string{"rescue"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.IsEmpty(); got != tt.want {
				t.Errorf("Filter.IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	tests := []struct {
		name    string
		filter  *Filter
		wantIDs []event.ID
	}{
		{
			name:    "empty filter keeps everything",
			filter:  NewFilter(),
			wantIDs: []event.ID{"1", "2", "3"},
		},
		{
			name: "date range drops undated events",
			filter: &Filter{
				DateFrom: timePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
				DateTo:   timePtr(time.Date(2026, 3, 15, 23, 59, 59, 0, time.UTC)),
			},
			wantIDs: []event.ID{"1"},
		},
		{
			name:    "weekends only",
			filter:  &Filter{WeekendsOnly: true},
			wantIDs: []event.ID{"1"},
		},
		{
			name:    "keyword matches venue address",
			filter:  &Filter{Keywords: []string{"GEORGE ST"}},
			wantIDs: []event.ID{"1"},
		},
		{
			name:    "any keyword matches",
			filter:  &Filter{Keywords: []string{"sydney", "cairns"}},
			wantIDs: []event.ID{"2", "3"},
		},
		{
			name:    "state",
			filter:  &Filter{States: []string{"qld"}},
			wantIDs: []event.ID{"1", "3"},
		},
		{
			name:    "division",
			filter:  &Filter{Divisions: []string{"soccer"}},
			wantIDs: []event.ID{"2"},
		},
		{
			name:    "criteria combine",
			filter:  &Filter{States: []string{"QLD"}, Divisions: []string{"soccer"}},
			wantIDs: []event.ID{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(testEvents())
			if len(got) != len(tt.wantIDs) {
				t.Fatalf("Apply() returned %d events, want %d", len(got), len(tt.wantIDs))
			}
			for i, evt := range got {
				if evt.ID != tt.wantIDs[i] {
					t.Errorf("event[%d].ID = %s, want %s", i, evt.ID, tt.wantIDs[i])
				}
			}
		})
	}
}

func TestFilter_String(t *testing.T) {
	if got := NewFilter().String(); got != "No active filters" {
		t.Errorf("String() = %q", got)
	}

	f := &Filter{
		DateFrom:     timePtr(time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)),
		Keywords:     []string{"brisbane"},
		WeekendsOnly: true,
	}
	want := "From: Mar 1, 2026 | Keywords: brisbane | Weekends only"
	if got := f.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
