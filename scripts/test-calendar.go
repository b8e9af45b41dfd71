package main

import (
	"fmt"
	"os"
	"time"

	"github.com/pfrederiksen/rcja-events/internal/calendar"
	"github.com/pfrederiksen/rcja-events/internal/event"
)

func main() {
	// Create a sample event
	evt := &event.Event{
		ID:                     "1001",
		State:                  "QLD",
		Name:                   "Brisbane Regional Competition",
		EventType:              event.TypeCompetition,
		StartDate:              time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
		EndDate:                time.Now().AddDate(0, 1, 1).Format("2006-01-02"),
		RegistrationsOpenDate:  time.Now().Format("2006-01-02"),
		RegistrationsCloseDate: time.Now().AddDate(0, 0, 21).Format("2006-01-02"),
		Venue:                  &event.Venue{Name: "QUT Gardens Point", Address: "2 George St, Brisbane"},
		DirectEnquiriesTo:      event.Contact{FullName: "Event Coordinator", Email: "qld@example.com"},
		AvailableDivisions:     []event.Division{{Name: "Rescue Line"}, {Name: "Soccer Lightweight"}, {Name: "OnStage"}},
		EventDetails:           "<p>Teams must bring their own robots.</p><p>Lunch is <b>not</b> provided.</p>",
	}

	// Generate .ics file
	icsContent := calendar.GenerateICS([]*event.Event{evt}, calendar.Options{}, time.Now())

	// Write to file (owner read/write only)
	filename := "test-rcja-event.ics"
	if err := os.WriteFile(filename, []byte(icsContent), 0600); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing file: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ Generated calendar file: %s\n\n", filename)
	fmt.Println("Test it by:")
	fmt.Println("1. Open the .ics file with your calendar app (double-click)")
	fmt.Println("2. Or import it into Google Calendar, Apple Calendar, or Outlook")
	fmt.Println("\nFile contents preview:")
	fmt.Println("---")
	fmt.Println(icsContent)
}
