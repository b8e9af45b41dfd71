// Package calendar exports snapshot events as an iCalendar (.ics) feed.
package calendar
