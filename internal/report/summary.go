package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"curator/internal/activity"
	"curator/internal/classify"
	"curator/internal/fixture"
	"curator/internal/format"
)

// Human-readable row labels for the category count tables. Codes stay
// in JSON and map keys; words go in reports.
var (
	raceTitles = map[string]string{
		classify.RaceUltraMarathon: "Ultra Marathon (50km+)",
		classify.RaceMarathon:      "Marathon",
		classify.RaceHalfMarathon:  "Half Marathon",
		classify.RaceTenK:          "10K",
		classify.RaceFiveK:         "5K",
		classify.RaceOther:         "Other races",
	}
	trainingTitles = map[string]string{
		classify.TrainingLongRun:     "Long runs (20km+)",
		classify.TrainingTempoRun:    "Tempo runs",
		classify.TrainingIntervalRun: "Interval runs",
		classify.TrainingEasyRun:     "Easy runs",
	}
	otherTitles = map[string]string{
		classify.OtherWorkout: "Workouts",
		classify.OtherSwim:    "Swims",
		classify.OtherRide:    "Rides",
		classify.OtherWalk:    "Walks",
		classify.OtherHike:    "Hikes",
		classify.OtherOther:   "Other",
	}
	specialTitles = map[string]string{
		classify.SpecialWithPhotos:      "With photos",
		classify.SpecialWithManyPhotos:  "With 3+ photos",
		classify.SpecialWithComments:    "With comments",
		classify.SpecialWithDescription: "With description",
		classify.SpecialWithBestEfforts: "With best efforts",
		classify.SpecialWithPRs:         "With PRs",
		classify.SpecialHighElevation:   "High elevation (500m+)",
		classify.SpecialNoGPS:           "No GPS",
		classify.SpecialVeryLong:        "Very long (4h+)",
		classify.SpecialVeryShort:       "Very short (<20m)",
	}
)

// Summary renders the markdown curation summary: category counts in
// fixed bucket order, then one subsection per fixture key in selection
// order.
func Summary(c *classify.Categories, sel *fixture.Selection, generated time.Time) string {
	var b strings.Builder

	b.WriteString("# Fixture Curation Summary\n\n")
	fmt.Fprintf(&b, "Generated: %s\n\n", generated.Format(time.RFC3339))

	b.WriteString("## Category Counts\n\n")
	b.WriteString("### Races\n\n")
	b.WriteString(countTable(classify.RaceOrder, raceTitles, c.Races))
	b.WriteString("\n\n### Training Runs\n\n")
	b.WriteString(countTable(classify.TrainingOrder, trainingTitles, c.Training))
	b.WriteString("\n\n### Other Activities\n\n")
	b.WriteString(countTable(classify.OtherOrder, otherTitles, c.Other))
	b.WriteString("\n\n### Special Characteristics\n\n")
	b.WriteString(countTable(classify.SpecialOrder, specialTitles, c.Special))
	b.WriteString("\n\n## Selected Fixtures\n\n")

	for _, key := range sel.Keys() {
		a, _ := sel.Get(key)
		writeFixtureSection(&b, key, a)
	}

	return b.String()
}

func countTable(order []string, titles map[string]string, buckets map[string][]*activity.Activity) string {
	t := format.NewTable(format.Markdown)
	t.Header("Category", "Count")
	t.RightAlign(2)
	for _, name := range order {
		t.Row(titles[name], len(buckets[name]))
	}
	return t.String()
}

func writeFixtureSection(b *strings.Builder, key string, a *activity.Activity) {
	fmt.Fprintf(b, "### %s\n", key)
	fmt.Fprintf(b, "- **Name:** %s\n", a.Name)
	fmt.Fprintf(b, "- **Date:** %s\n", firstN(a.StartDateLocal, 10))
	fmt.Fprintf(b, "- **Type:** %s (workout_type: %s)\n", a.Type, workoutTypeLabel(a.WorkoutType))
	fmt.Fprintf(b, "- **Distance:** %.1f km\n", a.DistanceKm())
	fmt.Fprintf(b, "- **Duration:** %d min\n", int(a.MovingTime)/60)
	fmt.Fprintf(b, "- **Elevation:** %s m\n", trimFloat(a.ElevationGain))
	fmt.Fprintf(b, "- **Photos:** %d, Comments: %d, Kudos: %d\n", a.PhotoCount(), a.CommentCount(), a.KudosCount)
	fmt.Fprintf(b, "- **Description:** %s\n", yesNo(a.HasDescription()))
	fmt.Fprintf(b, "- **Best efforts:** %d\n\n", len(a.BestEfforts))
}

func firstN(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}

func workoutTypeLabel(wt *int) string {
	if wt == nil {
		return "None"
	}
	return strconv.Itoa(*wt)
}

// trimFloat drops a trailing ".0" style fraction when the value is
// whole, so elevations read "150" rather than "150.000000".
func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
