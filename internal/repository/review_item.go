package repository

import (
	"context"
	"time"

	"github.com/eslsoft/drillnet/internal/entity"
)

// ReviewItemRepository abstracts persistence for spaced-repetition items,
// keeping the scheduling usecases storage agnostic.
type ReviewItemRepository interface {
	Create(ctx context.Context, item *entity.SpacedRepetitionItem) (*entity.SpacedRepetitionItem, error)

	// Update writes the item back conditioned on the stored TotalReviews
	// still matching expectedTotalReviews. A mismatch returns
	// entity.ErrConcurrentUpdate and leaves the stored row untouched.
	Update(ctx context.Context, item *entity.SpacedRepetitionItem, expectedTotalReviews int32) (*entity.SpacedRepetitionItem, error)

	// UpdateSchedule overwrites only Schedule.NextReview for the item.
	UpdateSchedule(ctx context.Context, userID, taskID int64, nextReview time.Time) error

	// FindByTaskID returns (nil, nil) when the learner has no scheduling
	// state for the task yet.
	FindByTaskID(ctx context.Context, userID, taskID int64) (*entity.SpacedRepetitionItem, error)

	// ListDue returns all items with NextReview at or before now.
	ListDue(ctx context.Context, userID int64, now time.Time) ([]entity.SpacedRepetitionItem, error)

	// ListScheduledBetween returns items whose NextReview falls in [from, to).
	ListScheduledBetween(ctx context.Context, userID int64, from, to time.Time) ([]entity.SpacedRepetitionItem, error)

	// Stats aggregates scheduling state storage-side; implementations should
	// avoid full-table scans in application memory.
	Stats(ctx context.Context, userID int64, now time.Time) (*entity.SchedulingStatistics, error)
}
