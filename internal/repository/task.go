package repository

import (
	"context"

	"github.com/eslsoft/drillnet/internal/entity"
)

// UnseenTaskQuery selects tasks the learner has no scheduling state for yet.
type UnseenTaskQuery struct {
	UserID          int64
	TopicID         int64
	LearningPathIDs []int64
	Difficulty      *int32
	Limit           int32
}

// TaskRepository abstracts persistence for practice tasks.
type TaskRepository interface {
	GetByID(ctx context.Context, id int64) (*entity.Task, error)

	// ListByIDs hydrates tasks in one batched fetch. Missing ids are simply
	// absent from the result; callers decide whether that is an error.
	ListByIDs(ctx context.Context, ids []int64) ([]entity.Task, error)

	// ListUnseen returns tasks matching the query that have no
	// spaced-repetition item for the user, up to the limit.
	ListUnseen(ctx context.Context, query *UnseenTaskQuery) ([]entity.Task, error)

	Create(ctx context.Context, task *entity.Task) (*entity.Task, error)
}
