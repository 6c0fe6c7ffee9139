package entity

import (
	"math"
	"time"
)

// SM-2 tuning constants.
const (
	InitialEaseFactor    = 2.5
	MinEaseFactor        = 1.3
	MaxIntervalDays      = 365
	GraduationRepetition = 2

	// DefaultAverageTimeMs is assumed for items that have never reported a
	// review duration, e.g. when projecting future review load.
	DefaultAverageTimeMs = 30000
)

// ReviewAlgorithm holds the raw SM-2 state driving interval growth.
type ReviewAlgorithm struct {
	IntervalDays int32
	Repetition   int32
	EFactor      float64
}

// ReviewSchedule tracks when an item was and will be reviewed.
type ReviewSchedule struct {
	NextReview         time.Time
	LastReviewed       *time.Time
	TotalReviews       int32
	ConsecutiveCorrect int32
}

// ReviewPerformance aggregates recall quality over the item's history.
type ReviewPerformance struct {
	AverageAccuracy  float64
	AverageTimeMs    float64
	DifficultyRating int32
	LastGrade        int32
}

// ReviewMetadata captures lifecycle facts that never drive scheduling directly.
type ReviewMetadata struct {
	Introduced time.Time
	Graduated  bool
	LapseCount int32
}

// SpacedRepetitionItem is the SM-2 scheduling state for one (task, learner)
// pair. It is created lazily on the first recorded answer and mutated only
// through ApplyReview.
type SpacedRepetitionItem struct {
	ID        int64
	UserID    int64
	TaskID    int64
	Algorithm ReviewAlgorithm
	Schedule  ReviewSchedule

	Performance ReviewPerformance
	Metadata    ReviewMetadata

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Due reports whether the item's next review is at or before now.
func (it *SpacedRepetitionItem) Due(now time.Time) bool {
	return !it.Schedule.NextReview.After(now)
}

// NewSpacedRepetitionItem seeds scheduling state for a task the learner has
// never answered before. The interval stays zero until the first review is
// applied.
func NewSpacedRepetitionItem(userID, taskID int64, now time.Time) SpacedRepetitionItem {
	return SpacedRepetitionItem{
		UserID: userID,
		TaskID: taskID,
		Algorithm: ReviewAlgorithm{
			EFactor: InitialEaseFactor,
		},
		Performance: ReviewPerformance{
			DifficultyRating: difficultyFromEase(InitialEaseFactor),
		},
		Metadata: ReviewMetadata{
			Introduced: now,
		},
		CreatedAt: now,
	}
}

// ApplyReview returns the item state after grading one recall. It is a pure
// transition: prev is never mutated, and a nil prev means the task is being
// answered for the first time.
//
// quality grades follow SM-2: 0 (blackout) to 5 (perfect recollection). A
// grade below 3 counts as a lapse and resets repetition progress.
func ApplyReview(prev *SpacedRepetitionItem, grade int32, timeSpentMs int64, now time.Time) (SpacedRepetitionItem, error) {
	if grade < 0 || grade > 5 {
		return SpacedRepetitionItem{}, ErrInvalidGrade
	}

	var item SpacedRepetitionItem
	if prev == nil {
		item = NewSpacedRepetitionItem(0, 0, now)
	} else {
		item = *prev
	}

	// EF' = EF + (0.1 - (5-q) * (0.08 + (5-q)*0.02)), floored at 1.3.
	// Applied on every answer, success or lapse.
	q := float64(grade)
	ease := item.Algorithm.EFactor + (0.1 - (5-q)*(0.08+(5-q)*0.02))
	if ease < MinEaseFactor {
		ease = MinEaseFactor
	}
	item.Algorithm.EFactor = ease

	success := grade >= 3
	if success {
		item.Algorithm.Repetition++
		switch item.Algorithm.Repetition {
		case 1:
			item.Algorithm.IntervalDays = 1
		case 2:
			item.Algorithm.IntervalDays = 6
		default:
			item.Algorithm.IntervalDays = clampInterval(math.Round(float64(item.Algorithm.IntervalDays) * ease))
		}
		item.Schedule.ConsecutiveCorrect++
	} else {
		item.Algorithm.Repetition = 0
		item.Algorithm.IntervalDays = 1
		item.Schedule.ConsecutiveCorrect = 0
		item.Metadata.LapseCount++
	}

	// Graduation is sticky: a later lapse resets repetition but the item
	// keeps its graduated mark (LapseCount records the struggle).
	if item.Algorithm.Repetition >= GraduationRepetition {
		item.Metadata.Graduated = true
	}

	reviewed := now
	item.Schedule.LastReviewed = &reviewed
	item.Schedule.NextReview = now.AddDate(0, 0, int(item.Algorithm.IntervalDays))
	item.Schedule.TotalReviews++

	// Running averages over TotalReviews, updated incrementally rather than
	// recomputed from the full answer history.
	n := float64(item.Schedule.TotalReviews)
	score := 0.0
	if success {
		score = 100
	}
	item.Performance.AverageAccuracy += (score - item.Performance.AverageAccuracy) / n
	item.Performance.AverageTimeMs += (float64(timeSpentMs) - item.Performance.AverageTimeMs) / n
	item.Performance.LastGrade = grade
	item.Performance.DifficultyRating = difficultyFromEase(ease)

	item.UpdatedAt = now
	return item, nil
}

func clampInterval(days float64) int32 {
	if days > MaxIntervalDays {
		return MaxIntervalDays
	}
	if days < 1 {
		return 1
	}
	return int32(days)
}

// difficultyFromEase maps the ease factor inversely from [1.3, 2.5] onto the
// 1..5 difficulty scale; ease factors above 2.5 stay at difficulty 1.
func difficultyFromEase(ease float64) int32 {
	rating := int32(math.Round(1 + 4*(InitialEaseFactor-ease)/(InitialEaseFactor-MinEaseFactor)))
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}
