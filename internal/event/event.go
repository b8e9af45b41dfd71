package event

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Event types reported by the entry system
const (
	TypeCompetition = "competition"
	TypeWorkshop    = "workshop"
)

// ID is an event identifier. The API sends numbers, but strings are accepted too.
type ID string

// UnmarshalJSON accepts either a JSON number or a JSON string
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("event id: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Venue is where an event is held
type Venue struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Contact is the person enquiries should be directed to
type Contact struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Division is a competition division offered at an event
type Division struct {
	Name string `json:"name"`
}

// Event represents a single event record from the entry system
type Event struct {
	ID                     ID         `json:"id"`
	Name                   string     `json:"name"`
	EventType              string     `json:"eventType"`
	StartDate              string     `json:"startDate"`
	EndDate                string     `json:"endDate"`
	RegistrationsOpenDate  string     `json:"registrationsOpenDate"`
	RegistrationsCloseDate string     `json:"registrationsCloseDate"`
	Venue                  *Venue     `json:"venue"`
	DirectEnquiriesTo      Contact    `json:"directEnquiriesTo"`
	AvailableDivisions     []Division `json:"availabledivisions"`
	RegistrationURL        string     `json:"registrationURL"`
	BleachedEventDetails   string     `json:"bleachedEventDetails"`
	EventDetails           string     `json:"eventDetails"`

	// State is the upper-case region code the event was fetched under
	State string `json:"-"`
}

// Title returns the event name followed by its state, e.g. "Brisbane Regional (QLD)"
func (e *Event) Title() string {
	return fmt.Sprintf("%s (%s)", e.Name, e.State)
}

// Start returns the parsed start date, or the zero time if it cannot be parsed
func (e *Event) Start() time.Time {
	return ParseDate(e.StartDate)
}

// End returns the parsed end date, falling back to the start date
func (e *Event) End() time.Time {
	if end := ParseDate(e.EndDate); !end.IsZero() {
		return end
	}
	return e.Start()
}

// Location returns "venue name, venue address", or "" when no venue is set
func (e *Event) Location() string {
	if e.Venue == nil {
		return ""
	}
	return e.Venue.Name + ", " + e.Venue.Address
}

// Enquiries returns "Full Name (email)"
func (e *Event) Enquiries() string {
	return fmt.Sprintf("%s (%s)", e.DirectEnquiriesTo.FullName, e.DirectEnquiriesTo.Email)
}

// Divisions returns the comma separated list of available division names
func (e *Event) Divisions() string {
	names := make([]string, 0, len(e.AvailableDivisions))
	for _, d := range e.AvailableDivisions {
		names = append(names, d.Name)
	}
	return strings.Join(names, ", ")
}

// Details returns the plain-text event details. The pre-bleached text is
// preferred; otherwise the HTML details are reduced to text.
func (e *Event) Details() string {
	if e.BleachedEventDetails != "" {
		return e.BleachedEventDetails
	}
	if e.EventDetails == "" {
		return ""
	}
	text, err := PlainText(e.EventDetails)
	if err != nil {
		return e.EventDetails
	}
	return text
}

// TypeLabel returns the event type in title case, e.g. "Competition"
func (e *Event) TypeLabel() string {
	words := strings.Fields(strings.ToLower(e.EventType))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}

// IsHighlight reports whether the event is a state or national event
func (e *Event) IsHighlight() bool {
	name := strings.ToLower(e.Name)
	return strings.Contains(name, "state") || strings.Contains(name, "national")
}

// SearchText returns the lower-cased name and venue used for keyword matching
func (e *Event) SearchText() string {
	text := e.Name
	if e.Venue != nil {
		text += " " + e.Venue.Name + " " + e.Venue.Address
	}
	return strings.ToLower(text)
}
