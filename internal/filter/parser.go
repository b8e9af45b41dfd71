package filter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const monthPattern = `(jan|january|feb|february|mar|march|apr|april|may|jun|june|jul|july|aug|august|sep|sept|september|oct|october|nov|november|dec|december)`

var (
	sameMonthRange  = regexp.MustCompile(`(?i)^` + monthPattern + `\s+(\d{1,2})\s*-\s*(\d{1,2})$`)
	crossMonthRange = regexp.MustCompile(`(?i)^` + monthPattern + `\s+(\d{1,2})\s*-\s*` + monthPattern + `\s+(\d{1,2})$`)
	wholeMonth      = regexp.MustCompile(`(?i)^` + monthPattern + `$`)
	isoRange        = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s*\.\.\s*(\d{4}-\d{2}-\d{2})$`)
)

// ParseDateRange parses a date range string into start and end times.
//
// Supported formats:
//   - "Mar 1-15" or "March 1-15" - Same month, different days
//   - "March 1 - April 15" - Different months
//   - "March" - Entire month
//   - "2026-03-01..2026-04-15" - Explicit ISO dates
//
// Month-based formats infer the year from now: a month earlier than the
// current one is taken to be next year, and a range whose end month precedes
// its start month ends in the following year.
//
// Times are in UTC. Start time is at 00:00:00, end time is at 23:59:59.
func ParseDateRange(input string, now time.Time) (*time.Time, *time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("date range cannot be empty")
	}

	if m := sameMonthRange.FindStringSubmatch(input); m != nil {
		month := parseMonth(m[1])
		year := yearForMonth(month, now)
		day1, err := parseDay(m[2], year, month)
		if err != nil {
			return nil, nil, err
		}
		day2, err := parseDay(m[3], year, month)
		if err != nil {
			return nil, nil, err
		}

		return span(time.Date(year, month, day1, 0, 0, 0, 0, time.UTC), time.Date(year, month, day2, 23, 59, 59, 0, time.UTC))
	}

	if m := crossMonthRange.FindStringSubmatch(input); m != nil {
		month1, month2 := parseMonth(m[1]), parseMonth(m[3])
		year1 := yearForMonth(month1, now)
		year2 := year1
		if month2 < month1 {
			year2++
		}

		day1, err := parseDay(m[2], year1, month1)
		if err != nil {
			return nil, nil, err
		}
		day2, err := parseDay(m[4], year2, month2)
		if err != nil {
			return nil, nil, err
		}

		return span(time.Date(year1, month1, day1, 0, 0, 0, 0, time.UTC), time.Date(year2, month2, day2, 23, 59, 59, 0, time.UTC))
	}

	if m := wholeMonth.FindStringSubmatch(input); m != nil {
		month := parseMonth(m[1])
		year := yearForMonth(month, now)
		return span(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC), time.Date(year, month, daysIn(year, month), 23, 59, 59, 0, time.UTC))
	}

	if m := isoRange.FindStringSubmatch(input); m != nil {
		from, err := time.Parse("2006-01-02", m[1])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid date: %s", m[1])
		}
		to, err := time.Parse("2006-01-02", m[2])
		if err != nil {
			return nil, nil, fmt.Errorf("invalid date: %s", m[2])
		}
		return span(from, to.Add(24*time.Hour-time.Second))
	}

	return nil, nil, fmt.Errorf("invalid date range format. Use 'Mar 1-15', 'March 1 - April 15', 'March' or '2026-03-01..2026-03-15'")
}

func span(from, to time.Time) (*time.Time, *time.Time, error) {
	if from.After(to) {
		return nil, nil, fmt.Errorf("start date must be before end date")
	}
	return &from, &to, nil
}

// parseDay parses a day of month, rejecting days past the end of month
func parseDay(s string, year int, month time.Month) (int, error) {
	day, err := strconv.Atoi(s)
	if err != nil || day < 1 || day > daysIn(year, month) {
		return 0, fmt.Errorf("invalid day: %s %s", month, s)
	}
	return day, nil
}

func daysIn(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// parseMonth converts a month name to time.Month
func parseMonth(name string) time.Month {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "sept" {
		name = "sep"
	}
	for m := time.January; m <= time.December; m++ {
		full := strings.ToLower(m.String())
		if name == full || name == full[:3] {
			return m
		}
	}
	return 0
}

// yearForMonth returns now's year, or the next one if month has already passed
func yearForMonth(month time.Month, now time.Time) int {
	if month < now.Month() {
		return now.Year() + 1
	}
	return now.Year()
}
