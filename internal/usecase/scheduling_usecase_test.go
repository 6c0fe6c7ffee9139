package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eslsoft/drillnet/internal/entity"
)

var fixedNow = time.Date(2025, time.June, 2, 9, 30, 0, 0, time.UTC)

const testUserID int64 = 42

func newSchedulingFixture() (*schedulingUsecase, *fakeReviewItemRepo, *fakeTaskRepo) {
	items := newFakeReviewItemRepo()
	tasks := newFakeTaskRepo(items)
	u := &schedulingUsecase{
		items: items,
		tasks: tasks,
		clock: func() time.Time { return fixedNow },
	}
	return u, items, tasks
}

func seedTask(t *testing.T, tasks *fakeTaskRepo, topicID int64, difficulty int32, tags ...string) *entity.Task {
	t.Helper()
	task, err := tasks.Create(context.Background(), &entity.Task{
		TopicID:    topicID,
		Prompt:     "prompt",
		Answer:     "answer",
		Difficulty: difficulty,
		Tags:       tags,
	})
	if err != nil {
		t.Fatalf("seed task: %v", err)
	}
	return task
}

func seedItem(t *testing.T, items *fakeReviewItemRepo, taskID int64, nextReview time.Time, lapses int32, avgTimeMs float64) *entity.SpacedRepetitionItem {
	t.Helper()
	item, err := items.Create(context.Background(), &entity.SpacedRepetitionItem{
		UserID:    testUserID,
		TaskID:    taskID,
		Algorithm: entity.ReviewAlgorithm{IntervalDays: 1, Repetition: 1, EFactor: 2.5},
		Schedule:  entity.ReviewSchedule{NextReview: nextReview, TotalReviews: 1},
		Performance: entity.ReviewPerformance{
			AverageTimeMs: avgTimeMs,
		},
		Metadata: entity.ReviewMetadata{LapseCount: lapses},
	})
	if err != nil {
		t.Fatalf("seed item: %v", err)
	}
	return item
}

func TestGetNextTasksOrdering(t *testing.T) {
	u, items, tasks := newSchedulingFixture()
	ctx := context.Background()

	a := seedTask(t, tasks, 1, 2)
	b := seedTask(t, tasks, 1, 2)
	c := seedTask(t, tasks, 1, 2)
	d := seedTask(t, tasks, 1, 2)

	overdue := fixedNow.AddDate(0, 0, -2)
	recent := fixedNow.Add(-time.Hour)

	seedItem(t, items, a.ID, recent, 0, 0)
	seedItem(t, items, b.ID, overdue, 2, 0)  // most lapses, first
	seedItem(t, items, c.ID, overdue, 0, 0)  // tied lapses with a, more overdue
	seedItem(t, items, d.ID, recent, 2, 0)   // tied lapses with b, less overdue
	seedItem(t, items, 999, overdue, 99, 0)  // task no longer exists, skipped

	entries, err := u.GetNextTasks(ctx, testUserID, 10)
	if err != nil {
		t.Fatalf("GetNextTasks: %v", err)
	}

	want := []int64{b.ID, d.ID, c.ID, a.ID}
	if len(entries) != len(want) {
		t.Fatalf("got %d entries, want %d", len(entries), len(want))
	}
	for i, entry := range entries {
		if entry.Task.ID != want[i] {
			t.Errorf("entry[%d].Task.ID = %d, want %d", i, entry.Task.ID, want[i])
		}
	}

	limited, err := u.GetNextTasks(ctx, testUserID, 2)
	if err != nil {
		t.Fatalf("GetNextTasks limited: %v", err)
	}
	if len(limited) != 2 || limited[0].Task.ID != b.ID || limited[1].Task.ID != d.ID {
		t.Errorf("limited queue = %v, want [%d %d]", limited, b.ID, d.ID)
	}
}

func TestGetTasksDueExcludesFuture(t *testing.T) {
	u, items, tasks := newSchedulingFixture()
	ctx := context.Background()

	due := seedTask(t, tasks, 1, 1)
	future := seedTask(t, tasks, 1, 1)
	seedItem(t, items, due.ID, fixedNow, 0, 0)
	seedItem(t, items, future.ID, fixedNow.Add(time.Minute), 0, 0)

	entries, err := u.GetTasksDue(ctx, testUserID)
	if err != nil {
		t.Fatalf("GetTasksDue: %v", err)
	}
	if len(entries) != 1 || entries[0].Task.ID != due.ID {
		t.Fatalf("due entries = %+v, want only task %d", entries, due.ID)
	}
}

func TestGetRepetitionDataIsIdempotent(t *testing.T) {
	u, items, tasks := newSchedulingFixture()
	ctx := context.Background()

	task := seedTask(t, tasks, 1, 1)
	seedItem(t, items, task.ID, fixedNow, 1, 1234)

	first, err := u.GetRepetitionData(ctx, testUserID, task.ID)
	if err != nil {
		t.Fatalf("GetRepetitionData: %v", err)
	}
	second, err := u.GetRepetitionData(ctx, testUserID, task.ID)
	if err != nil {
		t.Fatalf("GetRepetitionData (second read): %v", err)
	}
	if *first != *second {
		t.Errorf("repeated reads differ: %+v vs %+v", first, second)
	}
}

func TestGetRepetitionDataNotFound(t *testing.T) {
	u, _, _ := newSchedulingFixture()
	if _, err := u.GetRepetitionData(context.Background(), testUserID, 777); !errors.Is(err, entity.ErrReviewItemNotFound) {
		t.Errorf("got %v, want ErrReviewItemNotFound", err)
	}
}

func TestGetReviewSchedule(t *testing.T) {
	u, items, tasks := newSchedulingFixture()
	ctx := context.Background()

	t1 := seedTask(t, tasks, 1, 1)
	t2 := seedTask(t, tasks, 1, 1)
	t3 := seedTask(t, tasks, 1, 1)
	t4 := seedTask(t, tasks, 1, 1)

	seedItem(t, items, t1.ID, fixedNow.AddDate(0, 0, -3), 0, 0)     // overdue, folds into today
	seedItem(t, items, t2.ID, fixedNow.Add(2*time.Hour), 0, 60000)  // later today
	seedItem(t, items, t3.ID, fixedNow.AddDate(0, 0, 2), 0, 0)      // day 2
	seedItem(t, items, t4.ID, fixedNow.AddDate(0, 0, 30), 0, 0)     // outside horizon

	forecast, err := u.GetReviewSchedule(ctx, testUserID, 3)
	if err != nil {
		t.Fatalf("GetReviewSchedule: %v", err)
	}
	if len(forecast) != 3 {
		t.Fatalf("forecast length = %d, want 3", len(forecast))
	}

	if forecast[0].ItemCount != 2 {
		t.Errorf("day 0 count = %d, want 2", forecast[0].ItemCount)
	}
	// One item without timing data uses the 30s default; the other reports 60s.
	if forecast[0].EstimatedSeconds != 90 {
		t.Errorf("day 0 estimate = %ds, want 90s", forecast[0].EstimatedSeconds)
	}
	if forecast[1].ItemCount != 0 {
		t.Errorf("day 1 count = %d, want 0", forecast[1].ItemCount)
	}
	if forecast[2].ItemCount != 1 || forecast[2].EstimatedSeconds != 30 {
		t.Errorf("day 2 = (%d items, %ds), want (1, 30s)", forecast[2].ItemCount, forecast[2].EstimatedSeconds)
	}
}

func TestRescheduleTask(t *testing.T) {
	u, items, tasks := newSchedulingFixture()
	ctx := context.Background()

	task := seedTask(t, tasks, 1, 1)
	seeded := seedItem(t, items, task.ID, fixedNow, 3, 500)

	newDate := fixedNow.AddDate(0, 0, 14)
	if err := u.RescheduleTask(ctx, testUserID, task.ID, newDate); err != nil {
		t.Fatalf("RescheduleTask: %v", err)
	}

	item, err := u.GetRepetitionData(ctx, testUserID, task.ID)
	if err != nil {
		t.Fatalf("GetRepetitionData: %v", err)
	}
	if !item.Schedule.NextReview.Equal(newDate) {
		t.Errorf("nextReview = %v, want %v", item.Schedule.NextReview, newDate)
	}
	// Only the schedule may change.
	if item.Metadata.LapseCount != seeded.Metadata.LapseCount || item.Performance.AverageTimeMs != seeded.Performance.AverageTimeMs {
		t.Error("reschedule touched fields other than nextReview")
	}

	if err := u.RescheduleTask(ctx, testUserID, 12345, newDate); !errors.Is(err, entity.ErrReviewItemNotFound) {
		t.Errorf("unknown task: got %v, want ErrReviewItemNotFound", err)
	}
	if err := u.RescheduleTask(ctx, testUserID, task.ID, time.Time{}); !errors.Is(err, entity.ErrInvalidScheduleDate) {
		t.Errorf("zero date: got %v, want ErrInvalidScheduleDate", err)
	}
}

func TestGetStatistics(t *testing.T) {
	u, items, tasks := newSchedulingFixture()
	ctx := context.Background()

	t1 := seedTask(t, tasks, 1, 1)
	t2 := seedTask(t, tasks, 1, 1)
	seedItem(t, items, t1.ID, fixedNow.Add(-time.Hour), 2, 0)
	seedItem(t, items, t2.ID, fixedNow.AddDate(0, 0, 5), 1, 0)

	stats, err := u.GetStatistics(ctx, testUserID)
	if err != nil {
		t.Fatalf("GetStatistics: %v", err)
	}
	if stats.TotalItems != 2 || stats.DueItems != 1 || stats.TotalLapses != 3 {
		t.Errorf("stats = %+v, want total=2 due=1 lapses=3", stats)
	}
}
