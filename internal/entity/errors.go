package entity

import "errors"

// Domain errors for scheduling items, practice sessions and answer records.
var (
	ErrInvalidGrade         = errors.New("grade must be between 0 and 5")
	ErrInvalidTimeSpent     = errors.New("time spent must be between 0 and 3600 seconds")
	ErrInvalidConfidence    = errors.New("confidence must be between 1 and 5")
	ErrInvalidTargetCount   = errors.New("target count must be at least 1")
	ErrInvalidScheduleDate  = errors.New("schedule date must not be zero")
	ErrTaskNotFound         = errors.New("task not found")
	ErrReviewItemNotFound   = errors.New("review item not found")
	ErrSessionNotFound      = errors.New("practice session not found")
	ErrSessionStateConflict = errors.New("practice session state does not allow this transition")
	ErrSessionFull          = errors.New("practice session already reached its target count")
	ErrSessionNotAnswerable = errors.New("practice session does not accept answers in its current state")
	ErrConcurrentUpdate     = errors.New("concurrent update detected")
)
