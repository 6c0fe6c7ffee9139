package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/eslsoft/drillnet/internal/entity"
)

func newStreakFixture(completions ...time.Time) *streakUsecase {
	sessions := newFakeSessionRepo()
	for _, completedAt := range completions {
		done := completedAt
		session := &entity.PracticeSession{
			UserID: testUserID,
			Config: entity.SessionConfig{TargetCount: 1},
			Execution: entity.SessionExecution{
				TaskIDs:     []int64{1},
				Status:      entity.SessionCompleted,
				CompletedAt: &done,
			},
		}
		if _, err := sessions.Create(context.Background(), session); err != nil {
			panic(err)
		}
	}
	return &streakUsecase{
		sessions: sessions,
		clock:    func() time.Time { return fixedNow },
		location: time.UTC,
	}
}

func day(offset int) time.Time {
	return fixedNow.AddDate(0, 0, offset)
}

func TestGetStreaksEmptyHistory(t *testing.T) {
	u := newStreakFixture()
	summary, err := u.GetStreaks(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("GetStreaks: %v", err)
	}
	if summary.CurrentStreak != 0 || summary.BestStreak != 0 {
		t.Errorf("streaks = (%d, %d), want (0, 0)", summary.CurrentStreak, summary.BestStreak)
	}
	if summary.NextMilestone != 7 {
		t.Errorf("nextMilestone = %d, want 7", summary.NextMilestone)
	}
	if summary.LastPracticeDate != nil {
		t.Error("lastPracticeDate set for empty history")
	}
}

func TestGetStreaksCurrentRun(t *testing.T) {
	u := newStreakFixture(day(0), day(-1), day(-2), day(-5), day(-6))
	summary, err := u.GetStreaks(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("GetStreaks: %v", err)
	}
	if summary.CurrentStreak != 3 {
		t.Errorf("currentStreak = %d, want 3", summary.CurrentStreak)
	}
	if summary.BestStreak != 3 {
		t.Errorf("bestStreak = %d, want 3", summary.BestStreak)
	}
}

func TestGetStreaksAnchoredAtYesterday(t *testing.T) {
	u := newStreakFixture(day(-1), day(-2))
	summary, err := u.GetStreaks(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("GetStreaks: %v", err)
	}
	if summary.CurrentStreak != 2 {
		t.Errorf("currentStreak = %d, want 2 (run ending yesterday still counts)", summary.CurrentStreak)
	}
}

func TestGetStreaksBrokenRun(t *testing.T) {
	u := newStreakFixture(day(-3), day(-4), day(-5))
	summary, err := u.GetStreaks(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("GetStreaks: %v", err)
	}
	if summary.CurrentStreak != 0 {
		t.Errorf("currentStreak = %d, want 0 after a gap", summary.CurrentStreak)
	}
	if summary.BestStreak != 3 {
		t.Errorf("bestStreak = %d, want 3 from history", summary.BestStreak)
	}
}

func TestGetStreaksBestRunInMiddle(t *testing.T) {
	u := newStreakFixture(day(0), day(-10), day(-11), day(-12), day(-13), day(-20))
	summary, err := u.GetStreaks(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("GetStreaks: %v", err)
	}
	if summary.CurrentStreak != 1 {
		t.Errorf("currentStreak = %d, want 1", summary.CurrentStreak)
	}
	if summary.BestStreak != 4 {
		t.Errorf("bestStreak = %d, want 4", summary.BestStreak)
	}
}

func TestGetStreaksDeduplicatesSameDay(t *testing.T) {
	u := newStreakFixture(day(0), day(0).Add(-2*time.Hour), day(-1))
	summary, err := u.GetStreaks(context.Background(), testUserID)
	if err != nil {
		t.Fatalf("GetStreaks: %v", err)
	}
	if summary.CurrentStreak != 2 {
		t.Errorf("currentStreak = %d, want 2 (same-day sessions collapse)", summary.CurrentStreak)
	}
}

func TestGetStreaksMilestoneProgress(t *testing.T) {
	cases := []struct {
		days         int
		wantPrev     int32
		wantNext     int32
		wantProgress float64
	}{
		{3, 0, 7, 3.0 / 7.0 * 100},
		{7, 7, 14, 0},
		{10, 7, 14, 3.0 / 7.0 * 100},
		{100, 100, 180, 0},
	}
	for _, tc := range cases {
		var completions []time.Time
		for i := 0; i < tc.days; i++ {
			completions = append(completions, day(-i))
		}
		u := newStreakFixture(completions...)
		summary, err := u.GetStreaks(context.Background(), testUserID)
		if err != nil {
			t.Fatalf("GetStreaks(%d days): %v", tc.days, err)
		}
		if summary.CurrentStreak != int32(tc.days) {
			t.Errorf("%d days: currentStreak = %d", tc.days, summary.CurrentStreak)
		}
		if summary.PreviousMilestone != tc.wantPrev || summary.NextMilestone != tc.wantNext {
			t.Errorf("%d days: milestones = (%d, %d), want (%d, %d)",
				tc.days, summary.PreviousMilestone, summary.NextMilestone, tc.wantPrev, tc.wantNext)
		}
		if diff := summary.MilestoneProgress - tc.wantProgress; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("%d days: progress = %v, want %v", tc.days, summary.MilestoneProgress, tc.wantProgress)
		}
	}
}
