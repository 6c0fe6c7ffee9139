package cmd

import (
	"testing"
	"time"

	"github.com/eslsoft/drillnet/internal/entity"
)

func TestClampTimeSpent(t *testing.T) {
	cases := []struct {
		name    string
		elapsed time.Duration
		want    int64
	}{
		{"normal answer", 5 * time.Second, 5000},
		{"negative clock skew", -time.Second, 0},
		{"exactly one hour", time.Hour, entity.MaxAnswerTimeMs},
		{"walked away overnight", 9 * time.Hour, entity.MaxAnswerTimeMs},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := clampTimeSpent(tc.elapsed); got != tc.want {
				t.Errorf("clampTimeSpent(%v) = %d, want %d", tc.elapsed, got, tc.want)
			}
		})
	}

	// The clamped value must always pass record validation.
	record := entity.AnswerRecord{
		TaskID:      1,
		UserAnswer:  "hola",
		Grade:       3,
		TimeSpentMs: clampTimeSpent(48 * time.Hour),
		Confidence:  3,
	}
	if err := record.Validate(); err != nil {
		t.Errorf("clamped record failed validation: %v", err)
	}
}

func TestGradeFor(t *testing.T) {
	cases := []struct {
		name    string
		correct bool
		elapsed time.Duration
		want    int32
	}{
		{"wrong answer", false, time.Second, 1},
		{"fast recall", true, 2 * time.Second, 5},
		{"medium recall", true, 10 * time.Second, 4},
		{"slow recall", true, time.Minute, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := gradeFor(tc.correct, tc.elapsed); got != tc.want {
				t.Errorf("gradeFor(%v, %v) = %d, want %d", tc.correct, tc.elapsed, got, tc.want)
			}
		})
	}
}
