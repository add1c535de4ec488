// Package fixture scores classified activities and selects one
// representative record per fixture key.
package fixture

import "curator/internal/activity"

// Score weights for auxiliary data richness.
const (
	photoWeight   = 3
	commentWeight = 2
)

// Score measures how much auxiliary data a record carries. Higher is
// richer. Photos count triple, comments double; a description, each
// best effort, and the presence of any stream count once.
func Score(a *activity.Activity) int {
	score := a.PhotoCount() * photoWeight
	score += a.CommentCount() * commentWeight
	if a.HasDescription() {
		score++
	}
	score += len(a.BestEfforts)
	if a.HasStreams() {
		score++
	}
	return score
}

// PickBest returns the highest-scoring record in the bucket, or nil for
// an empty bucket. Ties go to the earliest record, so the pick is
// deterministic for a given bucket order.
func PickBest(bucket []*activity.Activity) *activity.Activity {
	var best *activity.Activity
	bestScore := -1
	for _, a := range bucket {
		if s := Score(a); s > bestScore {
			best, bestScore = a, s
		}
	}
	return best
}
