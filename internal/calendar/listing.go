package calendar

import (
	"time"

	"github.com/pfrederiksen/rcja-events/internal/event"
)

// ListingEvent is one entry of the flat JSON event listing used by calendar widgets
type ListingEvent struct {
	ID                     event.ID `json:"id"`
	Title                  string   `json:"title"`
	RegistrationsOpenDate  string   `json:"registrationsOpenDate"`
	RegistrationsCloseDate string   `json:"registrationsCloseDate"`
	StartDate              string   `json:"startDate"`
	EndDate                string   `json:"endDate"`
	Start                  string   `json:"start"`
	End                    string   `json:"end"`
	Enquiries              string   `json:"enquiries"`
	AvailableDivisions     string   `json:"availableDivisions"`
	Venue                  string   `json:"venue"`
	State                  string   `json:"state"`
	EventType              string   `json:"eventType"`
	RegistrationURL        string   `json:"registrationURL"`
	BleachedEventDetails   string   `json:"bleachedEventDetails"`
	AllDay                 bool     `json:"allDay"`
}

// Listing converts the included events into listing entries. Start and End are
// ISO 8601 UTC timestamps; End is the day after the end date, matching the
// exclusive DTEND of the .ics export. Undated events are skipped.
func Listing(events []*event.Event, hide string) []ListingEvent {
	out := make([]ListingEvent, 0, len(events))
	for _, evt := range events {
		if !Include(evt, hide) {
			continue
		}
		start := evt.Start()
		if start.IsZero() {
			continue
		}

		out = append(out, ListingEvent{
			ID:                     evt.ID,
			Title:                  evt.Title(),
			RegistrationsOpenDate:  evt.RegistrationsOpenDate,
			RegistrationsCloseDate: evt.RegistrationsCloseDate,
			StartDate:              evt.StartDate,
			EndDate:                evt.EndDate,
			Start:                  formatISO(start),
			End:                    formatISO(evt.End().AddDate(0, 0, 1)),
			Enquiries:              evt.Enquiries(),
			AvailableDivisions:     evt.Divisions(),
			Venue:                  evt.Location(),
			State:                  evt.State,
			EventType:              evt.EventType,
			RegistrationURL:        evt.RegistrationURL,
			BleachedEventDetails:   evt.BleachedEventDetails,
			AllDay:                 true,
		})
	}
	return out
}

func formatISO(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
