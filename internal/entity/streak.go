package entity

import "time"

// StreakMilestones are the fixed day counts a streak can reach, ascending.
var StreakMilestones = []int32{7, 14, 30, 60, 100, 180, 365}

// StreakSummary is derived analytics over completed-session history.
type StreakSummary struct {
	CurrentStreak     int32
	BestStreak        int32
	LastPracticeDate  *time.Time
	NextMilestone     int32
	PreviousMilestone int32
	// MilestoneProgress is the percentage of the way from the previous
	// milestone to the next one, in [0, 100].
	MilestoneProgress float64
}

// SchedulingStatistics aggregates the learner's scheduling state.
type SchedulingStatistics struct {
	TotalItems        int64
	DueItems          int64
	GraduatedItems    int64
	TotalLapses       int64
	AverageEaseFactor float64
	AverageAccuracy   float64
}

// ReviewForecastDay is the projected review load for one calendar day.
type ReviewForecastDay struct {
	Date             time.Time
	ItemCount        int32
	EstimatedSeconds int64
}

// ReviewQueueEntry pairs a due scheduling item with its hydrated task.
type ReviewQueueEntry struct {
	Item SpacedRepetitionItem
	Task Task
}
