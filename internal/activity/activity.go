// Package activity defines the activity data model and the bulk-export
// loader: one immutable record per source activity, decoded just far
// enough to classify and score, with the original JSON bytes retained
// so artifacts re-emit the source verbatim.
package activity

import (
	"encoding/json"
	"strings"
)

// BestEffort marks a notable segment performance within an activity.
// PRRank is 1 for a personal record, nil when unranked.
type BestEffort struct {
	Name   string `json:"name,omitempty"`
	PRRank *int   `json:"pr_rank"`
}

// RouteMap carries the encoded GPS trace. An empty polyline means the
// activity has no GPS data.
type RouteMap struct {
	SummaryPolyline string `json:"summary_polyline"`
}

// Comprehensive holds the auxiliary data fetched alongside an activity.
// Photos, comments, and streams are kept opaque: the pipeline only
// counts them, never inspects their contents.
type Comprehensive struct {
	Photos   []json.RawMessage          `json:"photos"`
	Comments []json.RawMessage          `json:"comments"`
	Streams  map[string]json.RawMessage `json:"streams"`
}

// Activity is one record from the bulk export. Decoded fields cover
// what classification and scoring need; Raw holds the untouched source
// bytes and Index the position in the source document. Index is the
// record's identity: two structurally equal records at different
// positions are distinct.
type Activity struct {
	Index int             `json:"-"`
	Raw   json.RawMessage `json:"-"`

	Name           string        `json:"name"`
	Type           string        `json:"type"`
	WorkoutType    *int          `json:"workout_type"`
	Distance       float64       `json:"distance"`
	MovingTime     float64       `json:"moving_time"`
	ElevationGain  float64       `json:"total_elevation_gain"`
	Description    string        `json:"description"`
	StartDateLocal string        `json:"start_date_local"`
	KudosCount     int           `json:"kudos_count"`
	BestEfforts    []BestEffort  `json:"best_efforts"`
	Map            RouteMap      `json:"map"`
	Comprehensive  Comprehensive `json:"comprehensiveData"`
}

// UnmarshalJSON decodes the known fields and keeps a private copy of
// the source bytes for verbatim re-emission.
func (a *Activity) UnmarshalJSON(data []byte) error {
	type plain Activity
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*a = Activity(p)
	a.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// DistanceKm returns the distance in kilometers.
func (a *Activity) DistanceKm() float64 { return a.Distance / 1000 }

// DurationMin returns the moving time in fractional minutes.
func (a *Activity) DurationMin() float64 { return a.MovingTime / 60 }

// IsRun reports whether the activity type is exactly "Run".
func (a *Activity) IsRun() bool { return a.Type == "Run" }

// HasWorkoutType reports whether workout_type is present and equals code.
// An absent field matches no code.
func (a *Activity) HasWorkoutType(code int) bool {
	return a.WorkoutType != nil && *a.WorkoutType == code
}

// PhotoCount returns the number of attached photos.
func (a *Activity) PhotoCount() int { return len(a.Comprehensive.Photos) }

// CommentCount returns the number of attached comments.
func (a *Activity) CommentCount() int { return len(a.Comprehensive.Comments) }

// HasStreams reports whether any data stream was fetched.
func (a *Activity) HasStreams() bool { return len(a.Comprehensive.Streams) > 0 }

// HasDescription reports whether the description is non-empty.
func (a *Activity) HasDescription() bool { return a.Description != "" }

// DescriptionLen returns the length of the trimmed description.
func (a *Activity) DescriptionLen() int {
	return len(strings.TrimSpace(a.Description))
}

// HasPR reports whether any best effort is ranked as a personal record.
func (a *Activity) HasPR() bool {
	for _, e := range a.BestEfforts {
		if e.PRRank != nil && *e.PRRank == 1 {
			return true
		}
	}
	return false
}
