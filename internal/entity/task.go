package entity

import (
	"strings"
	"time"
)

// Task is one practice exercise presented to learners.
type Task struct {
	ID              int64
	TopicID         int64
	LearningPathIDs []int64
	Prompt          string
	Answer          string
	Language        Language
	Difficulty      int32 // 1 (easiest) to 5 (hardest)
	Tags            []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Normalize ensures defaults & constraints before persistence.
func (t *Task) Normalize(now time.Time) {
	t.Prompt = strings.TrimSpace(t.Prompt)
	t.Answer = strings.TrimSpace(t.Answer)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	t.UpdatedAt = now
	if t.Language == "" {
		t.Language = LanguageEnglish
	}
	if t.Difficulty < 1 {
		t.Difficulty = 1
	}
	if t.Difficulty > 5 {
		t.Difficulty = 5
	}
	if t.LearningPathIDs == nil {
		t.LearningPathIDs = []int64{}
	}
	if t.Tags == nil {
		t.Tags = []string{}
	}
}
