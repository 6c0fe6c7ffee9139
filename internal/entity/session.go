package entity

import (
	"math"
	"time"
)

// SessionStatus enumerates the practice session lifecycle.
type SessionStatus string

const (
	SessionPlanned   SessionStatus = "planned"
	SessionActive    SessionStatus = "active"
	SessionPaused    SessionStatus = "paused"
	SessionCompleted SessionStatus = "completed"
	SessionAbandoned SessionStatus = "abandoned"
)

// sessionTransitions is the single source of truth for legal lifecycle moves.
// Transitions are monotonic except for the active/paused pair.
var sessionTransitions = map[SessionStatus][]SessionStatus{
	SessionPlanned:   {SessionActive, SessionAbandoned},
	SessionActive:    {SessionPaused, SessionCompleted, SessionAbandoned},
	SessionPaused:    {SessionActive, SessionCompleted, SessionAbandoned},
	SessionCompleted: {},
	SessionAbandoned: {},
}

// CanTransition reports whether moving from s to next is a legal lifecycle move.
func (s SessionStatus) CanTransition(next SessionStatus) bool {
	for _, allowed := range sessionTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether the status permits no further transitions.
func (s SessionStatus) Terminal() bool {
	return len(sessionTransitions[s]) == 0
}

// SessionConfig is the learner's request shaping a practice session.
type SessionConfig struct {
	TopicID          int64
	LearningPathIDs  []int64
	TargetCount      int32
	IncludeReview    bool
	DifficultyFilter *int32
}

// SessionExecution is the live progress of a session.
type SessionExecution struct {
	TaskIDs          []int64
	CompletedCount   int32
	CorrectCount     int32
	Status           SessionStatus
	StartedAt        *time.Time
	CompletedAt      *time.Time
	TotalTimeSpentMs int64
}

// SessionResults is computed once at completion and never afterwards.
type SessionResults struct {
	Accuracy               int32
	AverageTimeMs          float64
	DifficultyDistribution map[int32]int32
	ImprovementAreas       []string
}

// PracticeSession is one practice attempt by a learner.
type PracticeSession struct {
	ID        int64
	UserID    int64
	Config    SessionConfig
	Execution SessionExecution
	Results   *SessionResults
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transition moves the session to next, enforcing the lifecycle table.
func (s *PracticeSession) Transition(next SessionStatus) error {
	if !s.Execution.Status.CanTransition(next) {
		return ErrSessionStateConflict
	}
	s.Execution.Status = next
	return nil
}

// AcceptAnswer validates that the session can absorb one more answer right now.
func (s *PracticeSession) AcceptAnswer() error {
	switch s.Execution.Status {
	case SessionPlanned, SessionActive:
	default:
		return ErrSessionNotAnswerable
	}
	if s.Execution.CompletedCount >= s.Config.TargetCount {
		return ErrSessionFull
	}
	return nil
}

// Accuracy returns the rounded percentage of correct answers so far,
// 0 when nothing has been completed.
func (s *PracticeSession) Accuracy() int32 {
	if s.Execution.CompletedCount == 0 {
		return 0
	}
	return int32(math.Round(float64(s.Execution.CorrectCount) / float64(s.Execution.CompletedCount) * 100))
}
