package repository

import (
	"context"
	"time"

	"github.com/eslsoft/drillnet/internal/entity"
)

// ListSessionQuery holds parameters for listing practice sessions.
type ListSessionQuery struct {
	Pagination
	FilterOrder

	UserID int64
}

// PracticeSessionRepository abstracts persistence for practice sessions.
type PracticeSessionRepository interface {
	Create(ctx context.Context, session *entity.PracticeSession) (*entity.PracticeSession, error)
	Update(ctx context.Context, session *entity.PracticeSession) (*entity.PracticeSession, error)
	GetByID(ctx context.Context, userID, id int64) (*entity.PracticeSession, error)
	ListByStatus(ctx context.Context, userID int64, statuses ...entity.SessionStatus) ([]entity.PracticeSession, error)
	// ListByDateRange returns sessions completed in [from, to).
	ListByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]entity.PracticeSession, error)
	ListRecent(ctx context.Context, userID int64, limit int32) ([]entity.PracticeSession, error)
	List(ctx context.Context, query *ListSessionQuery) ([]entity.PracticeSession, int64, error)

	// ListCompletionTimes returns CompletedAt values of completed sessions,
	// newest first. Kept separate so streak math never loads full sessions.
	ListCompletionTimes(ctx context.Context, userID int64) ([]time.Time, error)
}
