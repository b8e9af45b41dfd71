// Package event provides types and functions for RoboCup Junior event payloads.
//
// A region's API response is treated as an opaque JSON value (Payload) that is
// validated and re-serialized without interpretation. The only structural
// question asked of it is its Shape: either a bare array of events, or an
// object wrapping an "events" array. Consumers that need event fields, such as
// the calendar and regional page generators, decode a Payload into typed Event
// values with Events.
package event
