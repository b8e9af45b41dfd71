// Package config loads rcja-events settings.
//
// Settings are layered: built-in defaults, then an optional YAML file, then
// RCJA_* environment variables (optionally from a .env file), then command
// line flags, which the cli package applies last.
package config
