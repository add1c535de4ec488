// Package classify sorts activities into named category buckets.
//
// Race and training buckets are mutually exclusive per record; special
// buckets overlap freely. Buckets hold references into the source
// document, never copies.
package classify

import (
	"strings"

	"curator/internal/activity"
)

// Workout type codes from the source data.
const (
	WorkoutTypeRace     = 1
	WorkoutTypeTempo    = 3
	WorkoutTypeInterval = 5
)

// Race sub-buckets, chosen by distance.
const (
	RaceUltraMarathon = "ultra_marathon"
	RaceMarathon      = "marathon"
	RaceHalfMarathon  = "half_marathon"
	RaceTenK          = "ten_k"
	RaceFiveK         = "five_k"
	RaceOther         = "other"
)

// Training sub-buckets for non-race runs.
const (
	TrainingLongRun     = "long_run"
	TrainingTempoRun    = "tempo_run"
	TrainingIntervalRun = "interval_run"
	TrainingEasyRun     = "easy_run"
)

// Non-run activity buckets.
const (
	OtherWorkout = "workout"
	OtherSwim    = "swim"
	OtherRide    = "ride"
	OtherWalk    = "walk"
	OtherHike    = "hike"
	OtherOther   = "other"
)

// Special buckets; a record may land in any number of them.
const (
	SpecialWithPhotos      = "with_photos"
	SpecialWithManyPhotos  = "with_many_photos"
	SpecialWithComments    = "with_comments"
	SpecialWithDescription = "with_description"
	SpecialWithBestEfforts = "with_best_efforts"
	SpecialWithPRs         = "with_prs"
	SpecialHighElevation   = "high_elevation"
	SpecialNoGPS           = "no_gps"
	SpecialVeryLong        = "very_long"
	SpecialVeryShort       = "very_short"
)

// Reporting order for each bucket group.
var (
	RaceOrder     = []string{RaceUltraMarathon, RaceMarathon, RaceHalfMarathon, RaceTenK, RaceFiveK, RaceOther}
	TrainingOrder = []string{TrainingLongRun, TrainingTempoRun, TrainingIntervalRun, TrainingEasyRun}
	OtherOrder    = []string{OtherWorkout, OtherSwim, OtherRide, OtherWalk, OtherHike, OtherOther}
	SpecialOrder  = []string{
		SpecialWithPhotos, SpecialWithManyPhotos, SpecialWithComments,
		SpecialWithDescription, SpecialWithBestEfforts, SpecialWithPRs,
		SpecialHighElevation, SpecialNoGPS, SpecialVeryLong, SpecialVeryShort,
	}
)

// Categories holds the classified buckets, one map per group.
type Categories struct {
	Races    map[string][]*activity.Activity
	Training map[string][]*activity.Activity
	Other    map[string][]*activity.Activity
	Special  map[string][]*activity.Activity
}

// NewCategories returns Categories with every bucket present and empty.
func NewCategories() *Categories {
	c := &Categories{
		Races:    make(map[string][]*activity.Activity),
		Training: make(map[string][]*activity.Activity),
		Other:    make(map[string][]*activity.Activity),
		Special:  make(map[string][]*activity.Activity),
	}
	for _, n := range RaceOrder {
		c.Races[n] = nil
	}
	for _, n := range TrainingOrder {
		c.Training[n] = nil
	}
	for _, n := range OtherOrder {
		c.Other[n] = nil
	}
	for _, n := range SpecialOrder {
		c.Special[n] = nil
	}
	return c
}

// Categorize classifies every activity, preserving input order within
// each bucket. Missing record fields classify as zero values.
func Categorize(activities []*activity.Activity) *Categories {
	c := NewCategories()
	for _, a := range activities {
		c.addTypeBucket(a)
		c.addSpecialBuckets(a)
	}
	return c
}

// addTypeBucket assigns the single mutually-exclusive race, training,
// or other bucket for the record.
func (c *Categories) addTypeBucket(a *activity.Activity) {
	isRace := a.HasWorkoutType(WorkoutTypeRace)

	switch {
	case isRace && a.IsRun():
		name := raceBucket(a.DistanceKm())
		c.Races[name] = append(c.Races[name], a)
	case a.IsRun():
		name := trainingBucket(a)
		c.Training[name] = append(c.Training[name], a)
	default:
		name := otherBucket(a.Type)
		c.Other[name] = append(c.Other[name], a)
	}
}

// raceBucket picks the race sub-bucket by distance, first match wins.
func raceBucket(km float64) string {
	switch {
	case km >= 50:
		return RaceUltraMarathon
	case km >= 40:
		return RaceMarathon
	case km >= 20:
		return RaceHalfMarathon
	case km >= 9 && km <= 11:
		return RaceTenK
	case km >= 4 && km <= 6:
		return RaceFiveK
	default:
		return RaceOther
	}
}

func trainingBucket(a *activity.Activity) string {
	switch {
	case a.DistanceKm() >= 20:
		return TrainingLongRun
	case a.HasWorkoutType(WorkoutTypeTempo):
		return TrainingTempoRun
	case a.HasWorkoutType(WorkoutTypeInterval):
		return TrainingIntervalRun
	default:
		return TrainingEasyRun
	}
}

// otherBucket matches the activity type case-insensitively against
// known substrings, first match wins.
func otherBucket(activityType string) string {
	t := strings.ToLower(activityType)
	switch {
	case strings.Contains(t, "workout") || strings.Contains(t, "weight"):
		return OtherWorkout
	case strings.Contains(t, "swim"):
		return OtherSwim
	case strings.Contains(t, "ride") || strings.Contains(t, "cycling"):
		return OtherRide
	case strings.Contains(t, "walk"):
		return OtherWalk
	case strings.Contains(t, "hike"):
		return OtherHike
	default:
		return OtherOther
	}
}

func (c *Categories) addSpecialBuckets(a *activity.Activity) {
	add := func(name string) {
		c.Special[name] = append(c.Special[name], a)
	}

	if a.PhotoCount() > 0 {
		add(SpecialWithPhotos)
		if a.PhotoCount() >= 3 {
			add(SpecialWithManyPhotos)
		}
	}
	if a.CommentCount() > 0 {
		add(SpecialWithComments)
	}
	if a.DescriptionLen() > 20 {
		add(SpecialWithDescription)
	}
	if len(a.BestEfforts) > 0 {
		add(SpecialWithBestEfforts)
		if a.HasPR() {
			add(SpecialWithPRs)
		}
	}
	if a.ElevationGain >= 500 {
		add(SpecialHighElevation)
	}
	if a.Map.SummaryPolyline == "" {
		add(SpecialNoGPS)
	}
	if a.DurationMin() >= 240 {
		add(SpecialVeryLong)
	}
	if a.DurationMin() < 20 {
		add(SpecialVeryShort)
	}
}
