package fixture

import (
	"curator/internal/activity"
	"curator/internal/classify"
)

// Fixture keys emitted by Select, in selection order.
const (
	KeyRaceUltra         = "race_ultramarathon"
	KeyRaceMarathon      = "race_marathon"
	KeyRaceHalfMarathon  = "race_half_marathon"
	KeyRace10K           = "race_10k"
	KeyRace5K            = "race_5k"
	KeyRaceOther         = "race_other"
	KeyTrainingLongRun   = "training_long_run"
	KeyTrainingTempo     = "training_tempo"
	KeyTrainingIntervals = "training_intervals"
	KeyTrainingEasy      = "training_easy"
	KeyOtherWorkout      = "other_workout"
	KeyOtherSwim         = "other_swim"
	KeyOtherRide         = "other_ride"
	KeyOtherWalk         = "other_walk"
	KeyOtherHike         = "other_hike"
	KeyEdgeNoGPS         = "edge_no_gps"
	KeyEdgeVeryLong      = "edge_very_long"
	KeyEdgeVeryShort     = "edge_very_short"
	KeyEdgeHighElevation = "edge_high_elevation"
	KeyRichFullContent   = "rich_full_content"
	KeyRichWithPRs       = "rich_with_prs"
)

// Selection maps fixture keys to their chosen records, preserving
// insertion order. Keys with empty source buckets are absent.
type Selection struct {
	keys  []string
	byKey map[string]*activity.Activity
}

// NewSelection returns an empty Selection.
func NewSelection() *Selection {
	return &Selection{byKey: make(map[string]*activity.Activity)}
}

// Add records a pick under key. Nil picks are ignored so callers can
// pass PickBest results straight through.
func (s *Selection) Add(key string, a *activity.Activity) {
	if a == nil {
		return
	}
	if _, dup := s.byKey[key]; !dup {
		s.keys = append(s.keys, key)
	}
	s.byKey[key] = a
}

// Keys returns the fixture keys in insertion order.
func (s *Selection) Keys() []string { return s.keys }

// Get returns the record for key, or nil and false when absent.
func (s *Selection) Get(key string) (*activity.Activity, bool) {
	a, ok := s.byKey[key]
	return a, ok
}

// Len returns the number of selected fixtures.
func (s *Selection) Len() int { return len(s.keys) }

// Select picks one representative record per fixture key. Most keys
// take the highest-scoring record of their bucket; the exceptions are
// edge_very_short (first element), edge_no_gps (first Run in the
// bucket), and rich_full_content (first record present in all three of
// with_many_photos, with_comments, and with_description).
func Select(c *classify.Categories) *Selection {
	s := NewSelection()

	s.Add(KeyRaceUltra, PickBest(c.Races[classify.RaceUltraMarathon]))
	s.Add(KeyRaceMarathon, PickBest(c.Races[classify.RaceMarathon]))
	s.Add(KeyRaceHalfMarathon, PickBest(c.Races[classify.RaceHalfMarathon]))
	s.Add(KeyRace10K, PickBest(c.Races[classify.RaceTenK]))
	s.Add(KeyRace5K, PickBest(c.Races[classify.RaceFiveK]))
	s.Add(KeyRaceOther, PickBest(c.Races[classify.RaceOther]))

	s.Add(KeyTrainingLongRun, PickBest(c.Training[classify.TrainingLongRun]))
	s.Add(KeyTrainingTempo, PickBest(c.Training[classify.TrainingTempoRun]))
	s.Add(KeyTrainingIntervals, PickBest(c.Training[classify.TrainingIntervalRun]))
	s.Add(KeyTrainingEasy, PickBest(c.Training[classify.TrainingEasyRun]))

	s.Add(KeyOtherWorkout, PickBest(c.Other[classify.OtherWorkout]))
	s.Add(KeyOtherSwim, PickBest(c.Other[classify.OtherSwim]))
	s.Add(KeyOtherRide, PickBest(c.Other[classify.OtherRide]))
	s.Add(KeyOtherWalk, PickBest(c.Other[classify.OtherWalk]))
	s.Add(KeyOtherHike, PickBest(c.Other[classify.OtherHike]))

	s.Add(KeyEdgeNoGPS, firstRun(c.Special[classify.SpecialNoGPS]))
	s.Add(KeyEdgeVeryLong, PickBest(c.Special[classify.SpecialVeryLong]))
	s.Add(KeyEdgeVeryShort, first(c.Special[classify.SpecialVeryShort]))
	s.Add(KeyEdgeHighElevation, PickBest(c.Special[classify.SpecialHighElevation]))

	s.Add(KeyRichFullContent, richFullContent(c))
	s.Add(KeyRichWithPRs, PickBest(c.Special[classify.SpecialWithPRs]))

	return s
}

func first(bucket []*activity.Activity) *activity.Activity {
	if len(bucket) == 0 {
		return nil
	}
	return bucket[0]
}

func firstRun(bucket []*activity.Activity) *activity.Activity {
	for _, a := range bucket {
		if a.IsRun() {
			return a
		}
	}
	return nil
}

// richFullContent finds the first record that sits in with_many_photos,
// with_comments, and with_description at once. Membership is tracked by
// source index, so structurally equal records stay distinct.
func richFullContent(c *classify.Categories) *activity.Activity {
	withComments := indexSet(c.Special[classify.SpecialWithComments])
	withDesc := indexSet(c.Special[classify.SpecialWithDescription])

	for _, a := range c.Special[classify.SpecialWithManyPhotos] {
		if withComments[a.Index] && withDesc[a.Index] {
			return a
		}
	}
	return nil
}

func indexSet(bucket []*activity.Activity) map[int]bool {
	set := make(map[int]bool, len(bucket))
	for _, a := range bucket {
		set[a.Index] = true
	}
	return set
}
