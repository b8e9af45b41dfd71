// Package fetcher provides the HTTP client for the RoboCup Junior entry system's public API.
//
// Each region's events are served at {baseURL}/{region}/allEventsDetailed/. The
// client sends a browser-like User-Agent, bounds every request with a fixed
// timeout, treats any non-2xx status as a failure, and hands back the response
// body as a validated event.Payload.
package fetcher
