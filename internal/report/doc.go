// Package report implements runner.Reporter for the command line.
//
// Console is the default: a progress line before each request, a success
// line with the event count or a failure line with the error, and a final
// completion line. JSON suppresses progress and prints the run summary as a
// single document for scripts.
package report
