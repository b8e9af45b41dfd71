package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/pfrederiksen/rcja-events/internal/event"
)

const (
	DefaultName     = "RoboCup Junior Australia: Calendar"
	DefaultTimezone = "Australia/Melbourne"
	DefaultDomain   = "rcja.app/calendar"

	eventURLPrefix = "https://enter.robocupjunior.org.au/events/"
)

// Hide values accepted by Options.Hide
const (
	HideNone         = ""
	HideCompetitions = "competitions"
	HideWorkshops    = "workshops"
)

// titlePrefixes maps state codes to the organising body's short name
var titlePrefixes = map[string]string{
	"VIC": "RCJV",
	"NSW": "RCJNSW",
	"QLD": "RCJQ",
	"SA":  "RCJSA",
	"WA":  "RCJWA",
	"NT":  "RCJNT",
	"ACT": "RCJACT",
	"TAS": "RCJTAS",
	"NAT": "RCJA",
	"NZ":  "RCJNZ",
}

// Options controls calendar generation
type Options struct {
	Name     string
	Timezone string
	Domain   string
	// Hide drops one event type: "competitions" or "workshops"
	Hide string
}

func (o Options) withDefaults() Options {
	if o.Name == "" {
		o.Name = DefaultName
	}
	if o.Timezone == "" {
		o.Timezone = DefaultTimezone
	}
	if o.Domain == "" {
		o.Domain = DefaultDomain
	}
	return o
}

// ValidateHide checks a --hide value
func ValidateHide(hide string) error {
	switch hide {
	case HideNone, HideCompetitions, HideWorkshops:
		return nil
	default:
		return fmt.Errorf("invalid hide value: %s (must be '%s' or '%s')", hide, HideCompetitions, HideWorkshops)
	}
}

// TitlePrefix returns the organising body for a state, defaulting to "RCJA"
func TitlePrefix(state string) string {
	if prefix, ok := titlePrefixes[state]; ok {
		return prefix
	}
	return "RCJA"
}

// Include reports whether an event belongs in a calendar with the given hide setting.
// Only competitions and workshops are published.
func Include(evt *event.Event, hide string) bool {
	switch evt.EventType {
	case event.TypeCompetition:
		return hide != HideCompetitions
	case event.TypeWorkshop:
		return hide != HideWorkshops
	default:
		return false
	}
}

// GenerateICS generates an iCalendar (.ics) document containing every included event
func GenerateICS(events []*event.Event, opts Options, now time.Time) string {
	opts = opts.withDefaults()

	var ics strings.Builder

	ics.WriteString("BEGIN:VCALENDAR\r\n")
	ics.WriteString("VERSION:2.0\r\n")
	ics.WriteString("PRODID:-//RoboCup Junior Australia//rcja-events//EN\r\n")
	ics.WriteString("CALSCALE:GREGORIAN\r\n")
	ics.WriteString("METHOD:PUBLISH\r\n")
	writeLine(&ics, "X-WR-CALNAME:"+escapeICS(opts.Name))
	writeLine(&ics, "X-WR-TIMEZONE:"+opts.Timezone)

	for _, evt := range events {
		if !Include(evt, opts.Hide) {
			continue
		}
		writeEvent(&ics, evt, opts, now)
	}

	ics.WriteString("END:VCALENDAR\r\n")
	return ics.String()
}

// writeEvent writes one all-day VEVENT. DTEND is exclusive, so it is the day after the end date.
func writeEvent(ics *strings.Builder, evt *event.Event, opts Options, now time.Time) {
	start := evt.Start()
	if start.IsZero() {
		return
	}
	end := evt.End().AddDate(0, 0, 1)

	ics.WriteString("BEGIN:VEVENT\r\n")
	writeLine(ics, fmt.Sprintf("UID:%s-%s@%s", strings.ToLower(evt.State), evt.ID, opts.Domain))
	writeLine(ics, "DTSTAMP:"+formatICSTime(now))
	writeLine(ics, "DTSTART;VALUE=DATE:"+formatICSDate(start))
	writeLine(ics, "DTEND;VALUE=DATE:"+formatICSDate(end))

	summary := fmt.Sprintf("%s %s", TitlePrefix(evt.State), evt.Title())
	writeLine(ics, "SUMMARY:"+escapeICS(summary))
	writeLine(ics, "DESCRIPTION:"+escapeICS(describe(evt)))
	writeLine(ics, "LOCATION:"+escapeICS(evt.Location()))
	writeLine(ics, "URL:"+eventURLPrefix+string(evt.ID))
	ics.WriteString("STATUS:CONFIRMED\r\n")
	ics.WriteString("TRANSP:TRANSPARENT\r\n")
	ics.WriteString("END:VEVENT\r\n")
}

// describe builds the event description shown in calendar clients
func describe(evt *event.Event) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", evt.Title())
	fmt.Fprintf(&b, "Event type: %s\n\n", evt.TypeLabel())
	fmt.Fprintf(&b, "Start date: %s\n", evt.StartDate)
	fmt.Fprintf(&b, "End date: %s\n", evt.EndDate)
	fmt.Fprintf(&b, "Registrations open: %s\n", evt.RegistrationsOpenDate)
	fmt.Fprintf(&b, "Registrations close: %s\n\n", evt.RegistrationsCloseDate)
	fmt.Fprintf(&b, "Direct enquiries to: %s\n", evt.Enquiries())
	fmt.Fprintf(&b, "Available divisions: %s\n\n", evt.Divisions())
	fmt.Fprintf(&b, "%s\n\n\n", evt.Details())
	b.WriteString(evt.RegistrationURL)
	return b.String()
}

// formatICSTime formats a time.Time as an iCalendar datetime string
func formatICSTime(t time.Time) string {
	return t.UTC().Format("20060102T150405Z")
}

// formatICSDate formats a time.Time as an iCalendar date value
func formatICSDate(t time.Time) string {
	return t.Format("20060102")
}

// escapeICS escapes special characters for iCalendar format
func escapeICS(s string) string {
	// Replace special characters according to RFC 5545
	s = strings.ReplaceAll(s, "\\", "\\\\")
	s = strings.ReplaceAll(s, ",", "\\,")
	s = strings.ReplaceAll(s, ";", "\\;")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\n", "\\n")
	return s
}

// writeLine writes a content line folded at 75 octets, without splitting UTF-8 sequences
func writeLine(ics *strings.Builder, line string) {
	const limit = 75
	first := true
	for len(line) > 0 {
		max := limit
		if !first {
			max = limit - 1 // continuation lines start with a space
		}
		if len(line) <= max {
			if !first {
				ics.WriteString(" ")
			}
			ics.WriteString(line)
			break
		}

		cut := max
		for cut > 0 && !isRuneStart(line[cut]) {
			cut--
		}
		if !first {
			ics.WriteString(" ")
		}
		ics.WriteString(line[:cut])
		ics.WriteString("\r\n")
		line = line[cut:]
		first = false
	}
	ics.WriteString("\r\n")
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}
