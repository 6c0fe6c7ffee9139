package usecase

import (
	"context"
	"sort"
	"time"

	"github.com/eslsoft/drillnet/internal/entity"
	"github.com/eslsoft/drillnet/internal/repository"
)

// StreakUsecase derives consecutive-day streaks and milestone progress from
// completed-session history. It depends only on session data, never on the
// scheduler.
type StreakUsecase interface {
	GetStreaks(ctx context.Context, userID int64) (*entity.StreakSummary, error)
}

// NewStreakUsecase wires the repository with default behaviour. Dates are
// bucketed in the process-local timezone.
func NewStreakUsecase(sessions repository.PracticeSessionRepository) StreakUsecase {
	return &streakUsecase{
		sessions: sessions,
		clock:    time.Now,
		location: time.Local,
	}
}

type streakUsecase struct {
	sessions repository.PracticeSessionRepository
	clock    func() time.Time
	location *time.Location
}

func (u *streakUsecase) GetStreaks(ctx context.Context, userID int64) (*entity.StreakSummary, error) {
	completions, err := u.sessions.ListCompletionTimes(ctx, userID)
	if err != nil {
		return nil, err
	}

	dates := uniqueLocalDates(completions, u.location)
	summary := &entity.StreakSummary{}
	if len(dates) == 0 {
		summary.NextMilestone = entity.StreakMilestones[0]
		return summary, nil
	}

	last := dates[0]
	summary.LastPracticeDate = &last
	summary.CurrentStreak = currentStreak(dates, startOfDay(u.clock().In(u.location)))
	summary.BestStreak = bestStreak(dates)
	fillMilestones(summary)
	return summary, nil
}

// uniqueLocalDates reduces timestamps to unique calendar dates in loc,
// newest first.
func uniqueLocalDates(times []time.Time, loc *time.Location) []time.Time {
	seen := make(map[time.Time]struct{}, len(times))
	dates := make([]time.Time, 0, len(times))
	for _, t := range times {
		day := startOfDay(t.In(loc))
		if _, dup := seen[day]; dup {
			continue
		}
		seen[day] = struct{}{}
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].After(dates[j]) })
	return dates
}

// currentStreak counts consecutive days ending at today or yesterday.
func currentStreak(dates []time.Time, today time.Time) int32 {
	if len(dates) == 0 {
		return 0
	}
	anchor := dates[0]
	if !anchor.Equal(today) && !anchor.Equal(today.AddDate(0, 0, -1)) {
		return 0
	}
	var streak int32 = 1
	expected := anchor.AddDate(0, 0, -1)
	for _, date := range dates[1:] {
		if !date.Equal(expected) {
			break
		}
		streak++
		expected = expected.AddDate(0, 0, -1)
	}
	return streak
}

// bestStreak scans the full date list for the longest consecutive run.
func bestStreak(dates []time.Time) int32 {
	var best, run int32
	for i, date := range dates {
		if i == 0 || !date.Equal(dates[i-1].AddDate(0, 0, -1)) {
			run = 1
		} else {
			run++
		}
		if run > best {
			best = run
		}
	}
	return best
}

func fillMilestones(summary *entity.StreakSummary) {
	milestones := entity.StreakMilestones
	current := summary.CurrentStreak

	var prev int32
	next := milestones[len(milestones)-1]
	for _, m := range milestones {
		if current < m {
			next = m
			break
		}
		prev = m
	}
	summary.PreviousMilestone = prev
	summary.NextMilestone = next

	if current >= next {
		summary.MilestoneProgress = 100
		return
	}
	summary.MilestoneProgress = float64(current-prev) / float64(next-prev) * 100
}
