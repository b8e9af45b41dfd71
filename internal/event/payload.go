package event

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Shape identifies which of the two supported payload layouts a response has
type Shape int

const (
	// ShapeOther is any JSON value that is neither an array nor an object
	ShapeOther Shape = iota
	// ShapeList is a top-level array of events
	ShapeList
	// ShapeObject is a top-level object, optionally with an "events" array
	ShapeObject
)

// String returns a readable name for the shape
func (s Shape) String() string {
	switch s {
	case ShapeList:
		return "list"
	case ShapeObject:
		return "object"
	default:
		return "other"
	}
}

// ErrInvalidUTF8 is returned when a response body is not valid UTF-8 text
var ErrInvalidUTF8 = errors.New("body is not valid UTF-8")

// Payload is one region's decoded response body.
// The JSON is kept verbatim; only whitespace is normalized.
type Payload struct {
	raw   json.RawMessage
	shape Shape
}

// DecodePayload validates data as UTF-8 encoded JSON and returns it as a Payload
func DecodePayload(data []byte) (*Payload, error) {
	if !utf8.Valid(data) {
		return nil, ErrInvalidUTF8
	}

	if !json.Valid(data) {
		var probe any
		return nil, fmt.Errorf("parsing JSON: %w", json.Unmarshal(data, &probe))
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	raw := buf.Bytes()
	return &Payload{
		raw:   raw,
		shape: detectShape(raw),
	}, nil
}

func detectShape(raw []byte) Shape {
	if len(raw) == 0 {
		return ShapeOther
	}
	switch raw[0] {
	case '[':
		return ShapeList
	case '{':
		return ShapeObject
	default:
		return ShapeOther
	}
}

// Shape returns the layout of the payload
func (p *Payload) Shape() Shape {
	return p.shape
}

// Bytes returns the compact JSON encoding of the payload
func (p *Payload) Bytes() []byte {
	return p.raw
}

// Indent returns the payload re-serialized with two-space indentation
func (p *Payload) Indent() ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, p.raw, "", "  "); err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}
	return buf.Bytes(), nil
}

// MarshalJSON implements json.Marshaler
func (p *Payload) MarshalJSON() ([]byte, error) {
	return p.raw, nil
}

// items returns the raw event entries: the array itself for a list, or the
// "events" field of an object. A missing or non-array "events" field yields nil.
func (p *Payload) items() []json.RawMessage {
	switch p.shape {
	case ShapeList:
		var list []json.RawMessage
		if err := json.Unmarshal(p.raw, &list); err != nil {
			return nil
		}
		return list
	case ShapeObject:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(p.raw, &obj); err != nil {
			return nil
		}
		field, ok := obj["events"]
		if !ok {
			return nil
		}
		var list []json.RawMessage
		if err := json.Unmarshal(field, &list); err != nil {
			return nil
		}
		return list
	default:
		return nil
	}
}

// Count returns the displayed item count: the array length for a list payload,
// and for an object payload the number of entries in its "events" field, which
// may be an array or an object. Anything else counts as zero.
func (p *Payload) Count() int {
	if p.shape != ShapeObject {
		return len(p.items())
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(p.raw, &obj); err != nil {
		return 0
	}
	field := bytes.TrimSpace(obj["events"])
	if len(field) == 0 {
		return 0
	}
	switch field[0] {
	case '[':
		var list []json.RawMessage
		if err := json.Unmarshal(field, &list); err != nil {
			return 0
		}
		return len(list)
	case '{':
		var entries map[string]json.RawMessage
		if err := json.Unmarshal(field, &entries); err != nil {
			return 0
		}
		return len(entries)
	default:
		return 0
	}
}

// Events decodes the payload's entries into typed events tagged with state.
// Entries that are not JSON objects are skipped.
func (p *Payload) Events(state string) ([]*Event, error) {
	items := p.items()
	events := make([]*Event, 0, len(items))
	for i, item := range items {
		if len(item) == 0 || item[0] != '{' {
			continue
		}
		var evt Event
		if err := json.Unmarshal(item, &evt); err != nil {
			return nil, fmt.Errorf("decoding event %d: %w", i, err)
		}
		evt.State = state
		events = append(events, &evt)
	}
	return events, nil
}
