package usecase

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/drillnet/internal/entity"
	"github.com/eslsoft/drillnet/internal/repository"
)

// SchedulingUsecase exposes the review-queue side of the scheduler: which
// tasks are due, in what order, and how the future review load looks.
type SchedulingUsecase interface {
	// GetNextTasks returns up to count due entries, struggling and overdue
	// items first, with their tasks hydrated in a single batched fetch.
	GetNextTasks(ctx context.Context, userID int64, count int32) ([]entity.ReviewQueueEntry, error)

	// GetTasksDue returns every due entry without a count limit.
	GetTasksDue(ctx context.Context, userID int64) ([]entity.ReviewQueueEntry, error)

	// GetRepetitionData returns the scheduling state for one task.
	GetRepetitionData(ctx context.Context, userID, taskID int64) (*entity.SpacedRepetitionItem, error)

	// GetReviewSchedule projects the review load for each of the next days
	// calendar days. Overdue items count toward the first day.
	GetReviewSchedule(ctx context.Context, userID int64, days int32) ([]entity.ReviewForecastDay, error)

	// RescheduleTask overwrites only the item's next review timestamp.
	RescheduleTask(ctx context.Context, userID, taskID int64, newDate time.Time) error

	GetStatistics(ctx context.Context, userID int64) (*entity.SchedulingStatistics, error)
}

// NewSchedulingUsecase wires the repositories with default behaviour.
func NewSchedulingUsecase(items repository.ReviewItemRepository, tasks repository.TaskRepository) SchedulingUsecase {
	return &schedulingUsecase{
		items: items,
		tasks: tasks,
		clock: time.Now,
	}
}

type schedulingUsecase struct {
	items repository.ReviewItemRepository
	tasks repository.TaskRepository
	clock func() time.Time
}

func (u *schedulingUsecase) GetNextTasks(ctx context.Context, userID int64, count int32) ([]entity.ReviewQueueEntry, error) {
	if count <= 0 {
		return []entity.ReviewQueueEntry{}, nil
	}
	entries, err := u.dueEntries(ctx, userID)
	if err != nil {
		return nil, err
	}
	if int32(len(entries)) > count {
		entries = entries[:count]
	}
	return entries, nil
}

func (u *schedulingUsecase) GetTasksDue(ctx context.Context, userID int64) ([]entity.ReviewQueueEntry, error) {
	return u.dueEntries(ctx, userID)
}

// dueEntries loads due items, orders them and hydrates tasks with one
// batched fetch, silently skipping items whose task no longer exists.
func (u *schedulingUsecase) dueEntries(ctx context.Context, userID int64) ([]entity.ReviewQueueEntry, error) {
	due, err := u.items.ListDue(ctx, userID, u.clock())
	if err != nil {
		return nil, err
	}
	entity.SortReviewQueue(due)

	taskIDs := lo.Map(due, func(item entity.SpacedRepetitionItem, _ int) int64 {
		return item.TaskID
	})
	tasks, err := u.tasks.ListByIDs(ctx, taskIDs)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(tasks, func(task entity.Task) int64 { return task.ID })

	entries := make([]entity.ReviewQueueEntry, 0, len(due))
	for _, item := range due {
		task, ok := byID[item.TaskID]
		if !ok {
			continue
		}
		entries = append(entries, entity.ReviewQueueEntry{Item: item, Task: task})
	}
	return entries, nil
}

func (u *schedulingUsecase) GetRepetitionData(ctx context.Context, userID, taskID int64) (*entity.SpacedRepetitionItem, error) {
	item, err := u.items.FindByTaskID(ctx, userID, taskID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, entity.ErrReviewItemNotFound
	}
	return item, nil
}

func (u *schedulingUsecase) GetReviewSchedule(ctx context.Context, userID int64, days int32) ([]entity.ReviewForecastDay, error) {
	if days <= 0 {
		return []entity.ReviewForecastDay{}, nil
	}

	now := u.clock()
	horizon := endOfDay(now.AddDate(0, 0, int(days-1)))
	// The zero lower bound folds overdue items into the first day.
	items, err := u.items.ListScheduledBetween(ctx, userID, time.Time{}, horizon)
	if err != nil {
		return nil, err
	}

	forecast := make([]entity.ReviewForecastDay, days)
	for i := range forecast {
		forecast[i].Date = startOfDay(now.AddDate(0, 0, i))
	}

	firstBoundary := endOfDay(now)
	for _, item := range items {
		idx := 0
		if item.Schedule.NextReview.After(firstBoundary) {
			idx = calendarDaysBetween(startOfDay(now), startOfDay(item.Schedule.NextReview))
		}
		if idx < 0 || idx >= int(days) {
			continue
		}
		avgMs := item.Performance.AverageTimeMs
		if avgMs <= 0 {
			avgMs = entity.DefaultAverageTimeMs
		}
		forecast[idx].ItemCount++
		forecast[idx].EstimatedSeconds += int64(avgMs / 1000)
	}
	return forecast, nil
}

func (u *schedulingUsecase) RescheduleTask(ctx context.Context, userID, taskID int64, newDate time.Time) error {
	if newDate.IsZero() {
		return entity.ErrInvalidScheduleDate
	}
	return u.items.UpdateSchedule(ctx, userID, taskID, newDate)
}

func (u *schedulingUsecase) GetStatistics(ctx context.Context, userID int64) (*entity.SchedulingStatistics, error) {
	return u.items.Stats(ctx, userID, u.clock())
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return startOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// calendarDaysBetween counts whole calendar days from a to b. Rounding keeps
// DST-shortened days from truncating to the wrong bucket.
func calendarDaysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours()/24 + 0.5)
}
