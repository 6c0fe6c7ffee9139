package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/eslsoft/drillnet/internal/entity"
	"github.com/eslsoft/drillnet/internal/repository"
)

// improvementAccuracyThreshold marks a tag as an improvement area when the
// session accuracy for that tag stays below it.
const improvementAccuracyThreshold = 70.0

// SessionUsecase owns the practice-session lifecycle state machine.
type SessionUsecase interface {
	// CreateSession composes the task list for a new session, mixing due
	// review tasks (when the config asks for them) with unseen tasks up to
	// the target count. The session starts in the planned state.
	CreateSession(ctx context.Context, userID int64, config entity.SessionConfig) (*entity.PracticeSession, error)

	GetSession(ctx context.Context, userID, id int64) (*entity.PracticeSession, error)
	PauseSession(ctx context.Context, userID, id int64) (*entity.PracticeSession, error)
	ResumeSession(ctx context.Context, userID, id int64) (*entity.PracticeSession, error)

	// CompleteSession computes results from the recorded answers and moves
	// the session to its completed terminal state.
	CompleteSession(ctx context.Context, userID, id int64) (*entity.PracticeSession, error)

	// AbandonSession terminates the session without computing results.
	AbandonSession(ctx context.Context, userID, id int64) (*entity.PracticeSession, error)

	GetActiveSessions(ctx context.Context, userID int64) ([]entity.PracticeSession, error)
	GetRecentSessions(ctx context.Context, userID int64, limit int32) ([]entity.PracticeSession, error)
	ListSessions(ctx context.Context, query *repository.ListSessionQuery) ([]entity.PracticeSession, int64, error)
}

// NewSessionUsecase wires the repositories with default behaviour.
func NewSessionUsecase(
	sessions repository.PracticeSessionRepository,
	items repository.ReviewItemRepository,
	tasks repository.TaskRepository,
	answers repository.AnswerRecordRepository,
) SessionUsecase {
	return &sessionUsecase{
		sessions: sessions,
		items:    items,
		tasks:    tasks,
		answers:  answers,
		clock:    time.Now,
	}
}

type sessionUsecase struct {
	sessions repository.PracticeSessionRepository
	items    repository.ReviewItemRepository
	tasks    repository.TaskRepository
	answers  repository.AnswerRecordRepository
	clock    func() time.Time
}

func (u *sessionUsecase) CreateSession(ctx context.Context, userID int64, config entity.SessionConfig) (*entity.PracticeSession, error) {
	if config.TargetCount < 1 {
		return nil, entity.ErrInvalidTargetCount
	}

	taskIDs, err := u.composeTaskIDs(ctx, userID, config)
	if err != nil {
		return nil, err
	}
	if len(taskIDs) == 0 {
		return nil, fmt.Errorf("compose session tasks: %w", entity.ErrTaskNotFound)
	}
	// Not enough matching tasks shrinks the session rather than failing it.
	if int32(len(taskIDs)) < config.TargetCount {
		config.TargetCount = int32(len(taskIDs))
	}

	now := u.clock()
	session := &entity.PracticeSession{
		UserID: userID,
		Config: config,
		Execution: entity.SessionExecution{
			TaskIDs: taskIDs,
			Status:  entity.SessionPlanned,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.sessions.Create(ctx, session)
}

// composeTaskIDs picks due review tasks first, then fills the remainder with
// tasks the learner has never seen, deduplicated, up to the target count.
func (u *sessionUsecase) composeTaskIDs(ctx context.Context, userID int64, config entity.SessionConfig) ([]int64, error) {
	taskIDs := make([]int64, 0, config.TargetCount)
	seen := make(map[int64]struct{}, config.TargetCount)

	if config.IncludeReview {
		due, err := u.items.ListDue(ctx, userID, u.clock())
		if err != nil {
			return nil, err
		}
		entity.SortReviewQueue(due)

		ids := lo.Map(due, func(item entity.SpacedRepetitionItem, _ int) int64 { return item.TaskID })
		tasks, err := u.tasks.ListByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		existing := lo.KeyBy(tasks, func(task entity.Task) int64 { return task.ID })

		for _, item := range due {
			if int32(len(taskIDs)) >= config.TargetCount {
				break
			}
			task, ok := existing[item.TaskID]
			if !ok {
				continue
			}
			if config.DifficultyFilter != nil && task.Difficulty != *config.DifficultyFilter {
				continue
			}
			taskIDs = append(taskIDs, item.TaskID)
			seen[item.TaskID] = struct{}{}
		}
	}

	remaining := config.TargetCount - int32(len(taskIDs))
	if remaining <= 0 {
		return taskIDs, nil
	}

	fresh, err := u.tasks.ListUnseen(ctx, &repository.UnseenTaskQuery{
		UserID:          userID,
		TopicID:         config.TopicID,
		LearningPathIDs: config.LearningPathIDs,
		Difficulty:      config.DifficultyFilter,
		Limit:           remaining,
	})
	if err != nil {
		return nil, err
	}
	for _, task := range fresh {
		if _, dup := seen[task.ID]; dup {
			continue
		}
		taskIDs = append(taskIDs, task.ID)
	}
	return taskIDs, nil
}

func (u *sessionUsecase) GetSession(ctx context.Context, userID, id int64) (*entity.PracticeSession, error) {
	return u.sessions.GetByID(ctx, userID, id)
}

func (u *sessionUsecase) PauseSession(ctx context.Context, userID, id int64) (*entity.PracticeSession, error) {
	return u.transition(ctx, userID, id, entity.SessionPaused, func(session *entity.PracticeSession) error {
		// Pausing is only meaningful for a session that is running.
		if session.Execution.Status != entity.SessionActive {
			return entity.ErrSessionStateConflict
		}
		return nil
	})
}

func (u *sessionUsecase) ResumeSession(ctx context.Context, userID, id int64) (*entity.PracticeSession, error) {
	return u.transition(ctx, userID, id, entity.SessionActive, func(session *entity.PracticeSession) error {
		if session.Execution.Status != entity.SessionPaused {
			return entity.ErrSessionStateConflict
		}
		return nil
	})
}

func (u *sessionUsecase) CompleteSession(ctx context.Context, userID, id int64) (*entity.PracticeSession, error) {
	session, err := u.sessions.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if !session.Execution.Status.CanTransition(entity.SessionCompleted) {
		return nil, entity.ErrSessionStateConflict
	}

	results, err := u.computeResults(ctx, session)
	if err != nil {
		return nil, err
	}

	now := u.clock()
	session.Execution.Status = entity.SessionCompleted
	session.Execution.CompletedAt = &now
	session.Results = results
	session.UpdatedAt = now
	return u.sessions.Update(ctx, session)
}

func (u *sessionUsecase) AbandonSession(ctx context.Context, userID, id int64) (*entity.PracticeSession, error) {
	return u.transition(ctx, userID, id, entity.SessionAbandoned, nil)
}

func (u *sessionUsecase) GetActiveSessions(ctx context.Context, userID int64) ([]entity.PracticeSession, error) {
	return u.sessions.ListByStatus(ctx, userID, entity.SessionActive, entity.SessionPaused)
}

func (u *sessionUsecase) GetRecentSessions(ctx context.Context, userID int64, limit int32) ([]entity.PracticeSession, error) {
	if limit <= 0 {
		limit = 10
	}
	return u.sessions.ListRecent(ctx, userID, limit)
}

func (u *sessionUsecase) ListSessions(ctx context.Context, query *repository.ListSessionQuery) ([]entity.PracticeSession, int64, error) {
	return u.sessions.List(ctx, query)
}

// transition loads, guards, applies and persists a status change. The guard
// runs before the generic transition table so callers can produce a stricter
// error than the table alone would.
func (u *sessionUsecase) transition(ctx context.Context, userID, id int64, next entity.SessionStatus, guard func(*entity.PracticeSession) error) (*entity.PracticeSession, error) {
	session, err := u.sessions.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if guard != nil {
		if err := guard(session); err != nil {
			return nil, err
		}
	}
	if err := session.Transition(next); err != nil {
		return nil, err
	}
	session.UpdatedAt = u.clock()
	return u.sessions.Update(ctx, session)
}

// computeResults derives the completion results from the recorded answers.
func (u *sessionUsecase) computeResults(ctx context.Context, session *entity.PracticeSession) (*entity.SessionResults, error) {
	records, err := u.answers.ListBySession(ctx, session.ID)
	if err != nil {
		return nil, err
	}

	results := &entity.SessionResults{
		Accuracy:               session.Accuracy(),
		DifficultyDistribution: map[int32]int32{},
		ImprovementAreas:       []string{},
	}
	if len(records) == 0 {
		return results, nil
	}

	var totalMs int64
	for _, record := range records {
		totalMs += record.TimeSpentMs
	}
	results.AverageTimeMs = float64(totalMs) / float64(len(records))

	taskIDs := lo.Uniq(lo.Map(records, func(record entity.AnswerRecord, _ int) int64 {
		return record.TaskID
	}))
	tasks, err := u.tasks.ListByIDs(ctx, taskIDs)
	if err != nil {
		return nil, err
	}
	byID := lo.KeyBy(tasks, func(task entity.Task) int64 { return task.ID })

	type tally struct{ correct, total int32 }
	tagTallies := map[string]*tally{}
	for _, record := range records {
		task, ok := byID[record.TaskID]
		if !ok {
			continue
		}
		results.DifficultyDistribution[task.Difficulty]++

		tags := task.Tags
		if len(tags) == 0 {
			tags = []string{fmt.Sprintf("topic:%d", task.TopicID)}
		}
		for _, tag := range tags {
			t, ok := tagTallies[tag]
			if !ok {
				t = &tally{}
				tagTallies[tag] = t
			}
			t.total++
			if record.IsCorrect {
				t.correct++
			}
		}
	}

	for tag, t := range tagTallies {
		accuracy := math.Round(float64(t.correct) / float64(t.total) * 100)
		if accuracy < improvementAccuracyThreshold {
			results.ImprovementAreas = append(results.ImprovementAreas, tag)
		}
	}
	sort.Strings(results.ImprovementAreas)
	return results, nil
}
