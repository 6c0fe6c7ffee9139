package repository

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/samber/lo"

	"github.com/eslsoft/drillnet/internal/entity"
	entdb "github.com/eslsoft/drillnet/internal/infrastructure/database/ent"
	entpracticesession "github.com/eslsoft/drillnet/internal/infrastructure/database/ent/practicesession"
	"github.com/eslsoft/drillnet/internal/repository"
	"github.com/eslsoft/drillnet/pkg/filterexpr"
)

type PracticeSessionRepository struct {
	client *entdb.Client
}

// NewPracticeSessionRepository constructs an ent-backed repository.
func NewPracticeSessionRepository(client *entdb.Client) repository.PracticeSessionRepository {
	return &PracticeSessionRepository{client: client}
}

type listSessionsParams struct {
	Status          string
	Statuses        []string
	TopicID         *int64
	CreatedAfter    *time.Time
	CreatedBefore   *time.Time
	CompletedAfter  *time.Time
	CompletedBefore *time.Time
	OrderKey        string
	OrderDesc       bool
}

func (r *PracticeSessionRepository) Create(ctx context.Context, session *entity.PracticeSession) (*entity.PracticeSession, error) {
	builder := txClient(ctx, r.client).PracticeSession.Create().
		SetUserID(session.UserID).
		SetTopicID(session.Config.TopicID).
		SetLearningPaths(emptyWhenNil(session.Config.LearningPathIDs)).
		SetTargetCount(session.Config.TargetCount).
		SetIncludeReview(session.Config.IncludeReview).
		SetNillableDifficultyFilter(session.Config.DifficultyFilter).
		SetTasks(emptyWhenNil(session.Execution.TaskIDs)).
		SetCompletedCount(session.Execution.CompletedCount).
		SetCorrectCount(session.Execution.CorrectCount).
		SetStatus(string(session.Execution.Status)).
		SetNillableStartedAt(session.Execution.StartedAt).
		SetNillableCompletedAt(session.Execution.CompletedAt).
		SetTotalTimeSpentMs(session.Execution.TotalTimeSpentMs)

	if session.Results != nil {
		builder.SetResults(session.Results)
	}
	if !session.CreatedAt.IsZero() {
		builder.SetCreatedAt(session.CreatedAt)
	}
	if !session.UpdatedAt.IsZero() {
		builder.SetUpdatedAt(session.UpdatedAt)
	}

	rec, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create practice session: %w", err)
	}
	return mapEntPracticeSession(rec), nil
}

func (r *PracticeSessionRepository) Update(ctx context.Context, session *entity.PracticeSession) (*entity.PracticeSession, error) {
	mutation := txClient(ctx, r.client).PracticeSession.UpdateOneID(int(session.ID)).
		Where(entpracticesession.UserIDEQ(session.UserID)).
		SetTargetCount(session.Config.TargetCount).
		SetTasks(emptyWhenNil(session.Execution.TaskIDs)).
		SetCompletedCount(session.Execution.CompletedCount).
		SetCorrectCount(session.Execution.CorrectCount).
		SetStatus(string(session.Execution.Status)).
		SetNillableStartedAt(session.Execution.StartedAt).
		SetNillableCompletedAt(session.Execution.CompletedAt).
		SetTotalTimeSpentMs(session.Execution.TotalTimeSpentMs).
		SetUpdatedAt(session.UpdatedAt)

	if session.Results != nil {
		mutation.SetResults(session.Results)
	}

	rec, err := mutation.Save(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrSessionNotFound
		}
		return nil, fmt.Errorf("update practice session: %w", err)
	}
	return mapEntPracticeSession(rec), nil
}

func (r *PracticeSessionRepository) GetByID(ctx context.Context, userID, id int64) (*entity.PracticeSession, error) {
	rec, err := txClient(ctx, r.client).PracticeSession.Query().
		Where(
			entpracticesession.IDEQ(int(id)),
			entpracticesession.UserIDEQ(userID),
		).
		First(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get practice session: %w", err)
	}
	return mapEntPracticeSession(rec), nil
}

func (r *PracticeSessionRepository) ListByStatus(ctx context.Context, userID int64, statuses ...entity.SessionStatus) ([]entity.PracticeSession, error) {
	values := lo.Map(statuses, func(status entity.SessionStatus, _ int) string { return string(status) })

	rows, err := txClient(ctx, r.client).PracticeSession.Query().
		Where(
			entpracticesession.UserIDEQ(userID),
			entpracticesession.StatusIn(values...),
		).
		Order(entpracticesession.ByCreatedAt(sql.OrderDesc()), entpracticesession.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions by status: %w", err)
	}
	return mapEntPracticeSessions(rows), nil
}

func (r *PracticeSessionRepository) ListByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]entity.PracticeSession, error) {
	rows, err := txClient(ctx, r.client).PracticeSession.Query().
		Where(
			entpracticesession.UserIDEQ(userID),
			entpracticesession.CompletedAtGTE(from),
			entpracticesession.CompletedAtLT(to),
		).
		Order(entpracticesession.ByCompletedAt(sql.OrderDesc(), sql.OrderNullsLast()), entpracticesession.ByID()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions by date range: %w", err)
	}
	return mapEntPracticeSessions(rows), nil
}

func (r *PracticeSessionRepository) ListRecent(ctx context.Context, userID int64, limit int32) ([]entity.PracticeSession, error) {
	q := txClient(ctx, r.client).PracticeSession.Query().
		Where(entpracticesession.UserIDEQ(userID)).
		Order(entpracticesession.ByCreatedAt(sql.OrderDesc()), entpracticesession.ByID(sql.OrderDesc()))
	if limit > 0 {
		q.Limit(int(limit))
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recent sessions: %w", err)
	}
	return mapEntPracticeSessions(rows), nil
}

func (r *PracticeSessionRepository) List(ctx context.Context, query *repository.ListSessionQuery) ([]entity.PracticeSession, int64, error) {
	var params listSessionsParams
	if err := filterexpr.Bind(query, &params, listSessionsSchema); err != nil {
		return nil, 0, err
	}

	qbuilder := txClient(ctx, r.client).PracticeSession.Query().
		Where(entpracticesession.UserIDEQ(query.UserID))

	applySessionFilters(qbuilder, params)

	total, err := qbuilder.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	applySessionOrdering(qbuilder, params)

	offset := query.Offset()
	if offset > 0 {
		qbuilder.Offset(int(offset))
	}
	if query.PageSize > 0 {
		qbuilder.Limit(int(query.PageSize))
	}

	rows, err := qbuilder.All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("list sessions: %w", err)
	}
	return mapEntPracticeSessions(rows), int64(total), nil
}

func (r *PracticeSessionRepository) ListCompletionTimes(ctx context.Context, userID int64) ([]time.Time, error) {
	var times []time.Time
	err := txClient(ctx, r.client).PracticeSession.Query().
		Where(
			entpracticesession.UserIDEQ(userID),
			entpracticesession.StatusEQ(string(entity.SessionCompleted)),
			entpracticesession.CompletedAtNotNil(),
		).
		Order(entpracticesession.ByCompletedAt(sql.OrderDesc())).
		Select(entpracticesession.FieldCompletedAt).
		Scan(ctx, &times)
	if err != nil {
		return nil, fmt.Errorf("list completion times: %w", err)
	}
	return times, nil
}

func applySessionFilters(q *entdb.PracticeSessionQuery, params listSessionsParams) {
	if params.Status != "" {
		q.Where(entpracticesession.StatusEQ(params.Status))
	}
	if len(params.Statuses) > 0 {
		q.Where(entpracticesession.StatusIn(params.Statuses...))
	}
	if params.TopicID != nil {
		q.Where(entpracticesession.TopicIDEQ(*params.TopicID))
	}
	if params.CreatedAfter != nil {
		q.Where(entpracticesession.CreatedAtGTE(*params.CreatedAfter))
	}
	if params.CreatedBefore != nil {
		q.Where(entpracticesession.CreatedAtLTE(*params.CreatedBefore))
	}
	if params.CompletedAfter != nil {
		q.Where(entpracticesession.CompletedAtGTE(*params.CompletedAfter))
	}
	if params.CompletedBefore != nil {
		q.Where(entpracticesession.CompletedAtLTE(*params.CompletedBefore))
	}
}

func applySessionOrdering(q *entdb.PracticeSessionQuery, params listSessionsParams) {
	direction := sql.OrderAsc()
	if params.OrderDesc {
		direction = sql.OrderDesc()
	}

	switch params.OrderKey {
	case "completed_at":
		q.Order(entpracticesession.ByCompletedAt(direction, sql.OrderNullsLast()))
	case "id":
		q.Order(entpracticesession.ByID(direction))
	default:
		q.Order(entpracticesession.ByCreatedAt(direction))
	}

	q.Order(entpracticesession.ByID())
}

func mapEntPracticeSessions(rows []*entdb.PracticeSession) []entity.PracticeSession {
	sessions := make([]entity.PracticeSession, 0, len(rows))
	for _, row := range rows {
		if mapped := mapEntPracticeSession(row); mapped != nil {
			sessions = append(sessions, *mapped)
		}
	}
	return sessions
}

func mapEntPracticeSession(rec *entdb.PracticeSession) *entity.PracticeSession {
	if rec == nil {
		return nil
	}

	return &entity.PracticeSession{
		ID:     int64(rec.ID),
		UserID: rec.UserID,
		Config: entity.SessionConfig{
			TopicID:          rec.TopicID,
			LearningPathIDs:  rec.LearningPaths,
			TargetCount:      rec.TargetCount,
			IncludeReview:    rec.IncludeReview,
			DifficultyFilter: rec.DifficultyFilter,
		},
		Execution: entity.SessionExecution{
			TaskIDs:          rec.Tasks,
			CompletedCount:   rec.CompletedCount,
			CorrectCount:     rec.CorrectCount,
			Status:           entity.SessionStatus(rec.Status),
			StartedAt:        rec.StartedAt,
			CompletedAt:      rec.CompletedAt,
			TotalTimeSpentMs: rec.TotalTimeSpentMs,
		},
		Results:   rec.Results,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func emptyWhenNil(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}
