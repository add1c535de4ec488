package activity

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// Document is a parsed bulk export: the verbatim source bytes plus the
// decoded activity list. Metadata and any other top-level fields stay
// inside Raw untouched.
type Document struct {
	Raw        json.RawMessage
	Activities []*Activity
}

// Load reads and parses a bulk export from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("activity: read %q: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a bulk export. The expected shape is an object with an
// "activities" array; any other valid-JSON top-level shape yields a
// document with zero activities. Malformed JSON, or a record whose
// fields cannot decode, is an error: a bad record must never silently
// empty a well-formed export.
func Parse(data []byte) (*Document, error) {
	var envelope struct {
		Activities json.RawMessage `json:"activities"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		if !json.Valid(data) {
			return nil, fmt.Errorf("activity: parse document: %w", err)
		}
		// Valid JSON that is not an object: zero activities.
		return &Document{Raw: data}, nil
	}

	list := bytes.TrimSpace(envelope.Activities)
	if len(list) == 0 || list[0] != '[' {
		// Missing, null, or non-array "activities": another shape,
		// zero activities.
		return &Document{Raw: data}, nil
	}

	var records []*Activity
	if err := json.Unmarshal(list, &records); err != nil {
		return nil, fmt.Errorf("activity: parse activities: %w", err)
	}
	// JSON null entries decode to nil pointers; drop them.
	acts := make([]*Activity, 0, len(records))
	for _, a := range records {
		if a == nil {
			continue
		}
		a.Index = len(acts)
		acts = append(acts, a)
	}
	return &Document{Raw: data, Activities: acts}, nil
}
