package entity

import "time"

// Answer validation bounds.
const (
	MaxAnswerTimeMs = 3_600_000
	MinConfidence   = 1
	MaxConfidence   = 5
)

// AnswerRecord is one submitted answer. Records are append-only and never
// mutated once persisted.
type AnswerRecord struct {
	ID            int64
	SessionID     int64
	TaskID        int64
	UserID        int64
	UserAnswer    string
	IsCorrect     bool
	Grade         int32
	TimeSpentMs   int64
	Confidence    int32
	AttemptNumber int32
	AnsweredAt    time.Time
}

// Validate checks the caller-supplied fields before anything is persisted.
func (a *AnswerRecord) Validate() error {
	if a.Grade < 0 || a.Grade > 5 {
		return ErrInvalidGrade
	}
	if a.TimeSpentMs < 0 || a.TimeSpentMs > MaxAnswerTimeMs {
		return ErrInvalidTimeSpent
	}
	if a.Confidence < MinConfidence || a.Confidence > MaxConfidence {
		return ErrInvalidConfidence
	}
	return nil
}
