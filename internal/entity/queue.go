package entity

import "sort"

// SortReviewQueue orders due items for presentation: struggling items first
// (LapseCount descending), then most overdue first (NextReview ascending),
// then TaskID ascending so the order is deterministic.
func SortReviewQueue(items []SpacedRepetitionItem) {
	sort.Slice(items, func(i, j int) bool {
		a, b := &items[i], &items[j]
		if a.Metadata.LapseCount != b.Metadata.LapseCount {
			return a.Metadata.LapseCount > b.Metadata.LapseCount
		}
		if !a.Schedule.NextReview.Equal(b.Schedule.NextReview) {
			return a.Schedule.NextReview.Before(b.Schedule.NextReview)
		}
		return a.TaskID < b.TaskID
	})
}
