// Package runner implements the fetch-and-snapshot loop.
//
// Regions are processed strictly in order and one at a time: announce, fetch,
// decode, write, report. Every failure is scoped to its region and the loop
// always continues, so a run completes even when every region fails. The
// returned Summary lists each region's outcome for callers that need more than
// the console log.
package runner
