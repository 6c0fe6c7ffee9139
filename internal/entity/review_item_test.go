package entity

import (
	"math"
	"testing"
	"time"
)

var reviewNow = time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

func applyOrFail(t *testing.T, prev *SpacedRepetitionItem, grade int32, timeSpentMs int64, now time.Time) SpacedRepetitionItem {
	t.Helper()
	item, err := ApplyReview(prev, grade, timeSpentMs, now)
	if err != nil {
		t.Fatalf("ApplyReview(grade=%d): %v", grade, err)
	}
	return item
}

func TestApplyReviewRejectsOutOfRangeGrades(t *testing.T) {
	for _, grade := range []int32{-1, 6, 100} {
		if _, err := ApplyReview(nil, grade, 1000, reviewNow); err != ErrInvalidGrade {
			t.Errorf("grade %d: got err %v, want ErrInvalidGrade", grade, err)
		}
	}
}

func TestApplyReviewFirstSuccess(t *testing.T) {
	item := applyOrFail(t, nil, 5, 4000, reviewNow)

	if item.Algorithm.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", item.Algorithm.IntervalDays)
	}
	if item.Algorithm.Repetition != 1 {
		t.Errorf("repetition = %d, want 1", item.Algorithm.Repetition)
	}
	if got, want := item.Algorithm.EFactor, 2.6; math.Abs(got-want) > 1e-9 {
		t.Errorf("efactor = %v, want %v", got, want)
	}
	if want := reviewNow.AddDate(0, 0, 1); !item.Schedule.NextReview.Equal(want) {
		t.Errorf("nextReview = %v, want %v", item.Schedule.NextReview, want)
	}
	if item.Schedule.TotalReviews != 1 || item.Schedule.ConsecutiveCorrect != 1 {
		t.Errorf("counters = (%d, %d), want (1, 1)", item.Schedule.TotalReviews, item.Schedule.ConsecutiveCorrect)
	}
	if item.Performance.AverageAccuracy != 100 {
		t.Errorf("averageAccuracy = %v, want 100", item.Performance.AverageAccuracy)
	}
	if item.Metadata.Graduated {
		t.Error("item graduated after a single success")
	}
}

func TestApplyReviewIntervalProgression(t *testing.T) {
	// grade 5, grade 5, grade 4: the interval sequence must follow
	// 1, 6, round(6 * efactor).
	first := applyOrFail(t, nil, 5, 3000, reviewNow)
	second := applyOrFail(t, &first, 5, 3000, reviewNow.AddDate(0, 0, 1))
	third := applyOrFail(t, &second, 4, 3000, reviewNow.AddDate(0, 0, 7))

	if second.Algorithm.IntervalDays != 6 {
		t.Fatalf("second interval = %d, want 6", second.Algorithm.IntervalDays)
	}
	if second.Algorithm.Repetition != 2 {
		t.Fatalf("second repetition = %d, want 2", second.Algorithm.Repetition)
	}
	if !second.Metadata.Graduated {
		t.Error("item not graduated after two consecutive successes")
	}

	// efactor after 5,5 is 2.7; a grade of 4 leaves it unchanged.
	want := int32(math.Round(6 * 2.7))
	if third.Algorithm.IntervalDays != want {
		t.Errorf("third interval = %d, want %d", third.Algorithm.IntervalDays, want)
	}
	if third.Algorithm.Repetition != 3 {
		t.Errorf("third repetition = %d, want 3", third.Algorithm.Repetition)
	}
}

func TestApplyReviewLapseResetsProgress(t *testing.T) {
	item := applyOrFail(t, nil, 5, 3000, reviewNow)
	item = applyOrFail(t, &item, 5, 3000, reviewNow)
	item = applyOrFail(t, &item, 4, 3000, reviewNow) // interval now > 6

	lapsed := applyOrFail(t, &item, 2, 3000, reviewNow)
	if lapsed.Algorithm.Repetition != 0 {
		t.Errorf("repetition = %d, want 0", lapsed.Algorithm.Repetition)
	}
	if lapsed.Algorithm.IntervalDays != 1 {
		t.Errorf("interval = %d, want 1", lapsed.Algorithm.IntervalDays)
	}
	if lapsed.Metadata.LapseCount != item.Metadata.LapseCount+1 {
		t.Errorf("lapseCount = %d, want %d", lapsed.Metadata.LapseCount, item.Metadata.LapseCount+1)
	}
	if lapsed.Schedule.ConsecutiveCorrect != 0 {
		t.Errorf("consecutiveCorrect = %d, want 0", lapsed.Schedule.ConsecutiveCorrect)
	}
	if !lapsed.Metadata.Graduated {
		t.Error("graduation mark lost on lapse")
	}
}

func TestApplyReviewEaseFactorFloor(t *testing.T) {
	for grade := int32(0); grade <= 5; grade++ {
		item := applyOrFail(t, nil, grade, 1000, reviewNow)
		for i := 0; i < 10; i++ {
			item = applyOrFail(t, &item, grade, 1000, reviewNow)
		}
		if item.Algorithm.EFactor < MinEaseFactor {
			t.Errorf("grade %d: efactor %v dropped below %v", grade, item.Algorithm.EFactor, MinEaseFactor)
		}
	}
}

func TestApplyReviewIntervalCap(t *testing.T) {
	item := SpacedRepetitionItem{
		Algorithm: ReviewAlgorithm{IntervalDays: 300, Repetition: 5, EFactor: 2.5},
	}
	next := applyOrFail(t, &item, 4, 1000, reviewNow)
	if next.Algorithm.IntervalDays != MaxIntervalDays {
		t.Errorf("interval = %d, want cap %d", next.Algorithm.IntervalDays, MaxIntervalDays)
	}
}

func TestApplyReviewRunningAverages(t *testing.T) {
	item := applyOrFail(t, nil, 5, 4000, reviewNow)
	item = applyOrFail(t, &item, 1, 2000, reviewNow)

	if got := item.Performance.AverageAccuracy; math.Abs(got-50) > 1e-9 {
		t.Errorf("averageAccuracy = %v, want 50", got)
	}
	if got := item.Performance.AverageTimeMs; math.Abs(got-3000) > 1e-9 {
		t.Errorf("averageTimeMs = %v, want 3000", got)
	}
	if item.Performance.LastGrade != 1 {
		t.Errorf("lastGrade = %d, want 1", item.Performance.LastGrade)
	}
}

func TestApplyReviewDoesNotMutateInput(t *testing.T) {
	item := applyOrFail(t, nil, 5, 3000, reviewNow)
	snapshot := item

	if _, err := ApplyReview(&item, 2, 1000, reviewNow); err != nil {
		t.Fatalf("ApplyReview: %v", err)
	}
	if item.Algorithm != snapshot.Algorithm || item.Schedule.TotalReviews != snapshot.Schedule.TotalReviews {
		t.Error("ApplyReview mutated its input")
	}
}

func TestDifficultyFromEase(t *testing.T) {
	cases := []struct {
		ease float64
		want int32
	}{
		{2.5, 1},
		{2.8, 1}, // no ceiling on ease, difficulty stays at the floor
		{1.9, 3},
		{1.3, 5},
	}
	for _, tc := range cases {
		if got := difficultyFromEase(tc.ease); got != tc.want {
			t.Errorf("difficultyFromEase(%v) = %d, want %d", tc.ease, got, tc.want)
		}
	}
}

func TestDue(t *testing.T) {
	item := SpacedRepetitionItem{Schedule: ReviewSchedule{NextReview: reviewNow}}
	if !item.Due(reviewNow) {
		t.Error("item scheduled exactly now should be due")
	}
	if item.Due(reviewNow.Add(-time.Second)) {
		t.Error("item scheduled in the future should not be due")
	}
}
