package usecase

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/eslsoft/drillnet/internal/entity"
	"github.com/eslsoft/drillnet/internal/repository"
)

// fakeTransactor imitates transactional rollback over the in-memory fakes: it
// snapshots their state before running fn and restores the snapshots when fn
// fails, so a failed unit leaves no write visible.
type fakeTransactor struct {
	items    *fakeReviewItemRepo
	sessions *fakeSessionRepo
	answers  *fakeAnswerRepo
}

func (t *fakeTransactor) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	itemsSnap, itemsSeq := t.items.snapshot()
	sessionsSnap, sessionsSeq := t.sessions.snapshot()
	answersSnap, answersSeq := t.answers.snapshot()
	if err := fn(ctx); err != nil {
		t.items.restore(itemsSnap, itemsSeq)
		t.sessions.restore(sessionsSnap, sessionsSeq)
		t.answers.restore(answersSnap, answersSeq)
		return err
	}
	return nil
}

// fakeReviewItemRepo is an in-memory ReviewItemRepository with clone-on-access
// semantics and an optional injected CAS conflict budget.
type fakeReviewItemRepo struct {
	mu    sync.RWMutex
	seq   int64
	items map[int64]*entity.SpacedRepetitionItem

	// forcedConflicts makes the next N Update calls fail with
	// entity.ErrConcurrentUpdate regardless of the expected value.
	forcedConflicts int
	updateCalls     int
}

func newFakeReviewItemRepo() *fakeReviewItemRepo {
	return &fakeReviewItemRepo{items: make(map[int64]*entity.SpacedRepetitionItem)}
}

func cloneItem(item *entity.SpacedRepetitionItem) *entity.SpacedRepetitionItem {
	if item == nil {
		return nil
	}
	copy := *item
	if item.Schedule.LastReviewed != nil {
		reviewed := *item.Schedule.LastReviewed
		copy.Schedule.LastReviewed = &reviewed
	}
	return &copy
}

func (r *fakeReviewItemRepo) snapshot() (map[int64]*entity.SpacedRepetitionItem, int64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap := make(map[int64]*entity.SpacedRepetitionItem, len(r.items))
	for id, item := range r.items {
		snap[id] = cloneItem(item)
	}
	return snap, r.seq
}

func (r *fakeReviewItemRepo) restore(snap map[int64]*entity.SpacedRepetitionItem, seq int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = snap
	r.seq = seq
}

func (r *fakeReviewItemRepo) Create(ctx context.Context, item *entity.SpacedRepetitionItem) (*entity.SpacedRepetitionItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := cloneItem(item)
	copy.ID = r.seq
	r.items[copy.ID] = copy
	return cloneItem(copy), nil
}

func (r *fakeReviewItemRepo) Update(ctx context.Context, item *entity.SpacedRepetitionItem, expectedTotalReviews int32) (*entity.SpacedRepetitionItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.updateCalls++
	if r.forcedConflicts > 0 {
		r.forcedConflicts--
		return nil, entity.ErrConcurrentUpdate
	}
	existing, ok := r.items[item.ID]
	if !ok {
		return nil, entity.ErrReviewItemNotFound
	}
	if existing.Schedule.TotalReviews != expectedTotalReviews {
		return nil, entity.ErrConcurrentUpdate
	}
	copy := cloneItem(item)
	r.items[copy.ID] = copy
	return cloneItem(copy), nil
}

func (r *fakeReviewItemRepo) UpdateSchedule(ctx context.Context, userID, taskID int64, nextReview time.Time) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.UserID == userID && item.TaskID == taskID {
			item.Schedule.NextReview = nextReview
			return nil
		}
	}
	return entity.ErrReviewItemNotFound
}

func (r *fakeReviewItemRepo) FindByTaskID(ctx context.Context, userID, taskID int64) (*entity.SpacedRepetitionItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, item := range r.items {
		if item.UserID == userID && item.TaskID == taskID {
			return cloneItem(item), nil
		}
	}
	return nil, nil
}

func (r *fakeReviewItemRepo) ListDue(ctx context.Context, userID int64, now time.Time) ([]entity.SpacedRepetitionItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var due []entity.SpacedRepetitionItem
	for _, item := range r.items {
		if item.UserID == userID && !item.Schedule.NextReview.After(now) {
			due = append(due, *cloneItem(item))
		}
	}
	return due, nil
}

func (r *fakeReviewItemRepo) ListScheduledBetween(ctx context.Context, userID int64, from, to time.Time) ([]entity.SpacedRepetitionItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var scheduled []entity.SpacedRepetitionItem
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		next := item.Schedule.NextReview
		if !from.IsZero() && next.Before(from) {
			continue
		}
		if next.After(to) {
			continue
		}
		scheduled = append(scheduled, *cloneItem(item))
	}
	return scheduled, nil
}

func (r *fakeReviewItemRepo) Stats(ctx context.Context, userID int64, now time.Time) (*entity.SchedulingStatistics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	stats := &entity.SchedulingStatistics{}
	var easeSum, accuracySum float64
	for _, item := range r.items {
		if item.UserID != userID {
			continue
		}
		stats.TotalItems++
		if !item.Schedule.NextReview.After(now) {
			stats.DueItems++
		}
		if item.Metadata.Graduated {
			stats.GraduatedItems++
		}
		stats.TotalLapses += int64(item.Metadata.LapseCount)
		easeSum += item.Algorithm.EFactor
		accuracySum += item.Performance.AverageAccuracy
	}
	if stats.TotalItems > 0 {
		stats.AverageEaseFactor = easeSum / float64(stats.TotalItems)
		stats.AverageAccuracy = accuracySum / float64(stats.TotalItems)
	}
	return stats, nil
}

// fakeTaskRepo serves tasks and, when linked to a review-item fake, can tell
// which tasks the learner has already seen.
type fakeTaskRepo struct {
	mu    sync.RWMutex
	seq   int64
	tasks map[int64]*entity.Task
	items *fakeReviewItemRepo
}

func newFakeTaskRepo(items *fakeReviewItemRepo) *fakeTaskRepo {
	return &fakeTaskRepo{tasks: make(map[int64]*entity.Task), items: items}
}

func cloneTask(task *entity.Task) *entity.Task {
	copy := *task
	copy.LearningPathIDs = append([]int64(nil), task.LearningPathIDs...)
	copy.Tags = append([]string(nil), task.Tags...)
	return &copy
}

func (r *fakeTaskRepo) Create(ctx context.Context, task *entity.Task) (*entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := cloneTask(task)
	copy.ID = r.seq
	r.tasks[copy.ID] = copy
	return cloneTask(copy), nil
}

func (r *fakeTaskRepo) GetByID(ctx context.Context, id int64) (*entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	task, ok := r.tasks[id]
	if !ok {
		return nil, entity.ErrTaskNotFound
	}
	return cloneTask(task), nil
}

func (r *fakeTaskRepo) ListByIDs(ctx context.Context, ids []int64) ([]entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	tasks := make([]entity.Task, 0, len(ids))
	for _, id := range ids {
		if task, ok := r.tasks[id]; ok {
			tasks = append(tasks, *cloneTask(task))
		}
	}
	return tasks, nil
}

func (r *fakeTaskRepo) ListUnseen(ctx context.Context, query *repository.UnseenTaskQuery) ([]entity.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	seen := map[int64]struct{}{}
	if r.items != nil {
		r.items.mu.RLock()
		for _, item := range r.items.items {
			if item.UserID == query.UserID {
				seen[item.TaskID] = struct{}{}
			}
		}
		r.items.mu.RUnlock()
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]int64, 0, len(r.tasks))
	for id := range r.tasks {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var unseen []entity.Task
	for _, id := range ids {
		if query.Limit > 0 && int32(len(unseen)) >= query.Limit {
			break
		}
		if _, ok := seen[id]; ok {
			continue
		}
		task := r.tasks[id]
		if query.TopicID != 0 && task.TopicID != query.TopicID {
			continue
		}
		if query.Difficulty != nil && task.Difficulty != *query.Difficulty {
			continue
		}
		unseen = append(unseen, *cloneTask(task))
	}
	return unseen, nil
}

// fakeSessionRepo is an in-memory PracticeSessionRepository.
type fakeSessionRepo struct {
	mu       sync.RWMutex
	seq      int64
	sessions map[int64]*entity.PracticeSession

	// forcedUpdateErr makes the next Update call fail with this error.
	forcedUpdateErr error
}

func (r *fakeSessionRepo) snapshot() (map[int64]*entity.PracticeSession, int64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	snap := make(map[int64]*entity.PracticeSession, len(r.sessions))
	for id, session := range r.sessions {
		snap[id] = cloneSession(session)
	}
	return snap, r.seq
}

func (r *fakeSessionRepo) restore(snap map[int64]*entity.PracticeSession, seq int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions = snap
	r.seq = seq
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[int64]*entity.PracticeSession)}
}

func cloneSession(session *entity.PracticeSession) *entity.PracticeSession {
	copy := *session
	copy.Config.LearningPathIDs = append([]int64(nil), session.Config.LearningPathIDs...)
	copy.Execution.TaskIDs = append([]int64(nil), session.Execution.TaskIDs...)
	if session.Execution.StartedAt != nil {
		started := *session.Execution.StartedAt
		copy.Execution.StartedAt = &started
	}
	if session.Execution.CompletedAt != nil {
		completed := *session.Execution.CompletedAt
		copy.Execution.CompletedAt = &completed
	}
	if session.Results != nil {
		results := *session.Results
		results.DifficultyDistribution = make(map[int32]int32, len(session.Results.DifficultyDistribution))
		for k, v := range session.Results.DifficultyDistribution {
			results.DifficultyDistribution[k] = v
		}
		results.ImprovementAreas = append([]string(nil), session.Results.ImprovementAreas...)
		copy.Results = &results
	}
	return &copy
}

func (r *fakeSessionRepo) Create(ctx context.Context, session *entity.PracticeSession) (*entity.PracticeSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := cloneSession(session)
	copy.ID = r.seq
	r.sessions[copy.ID] = copy
	return cloneSession(copy), nil
}

func (r *fakeSessionRepo) Update(ctx context.Context, session *entity.PracticeSession) (*entity.PracticeSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.forcedUpdateErr != nil {
		err := r.forcedUpdateErr
		r.forcedUpdateErr = nil
		return nil, err
	}
	existing, ok := r.sessions[session.ID]
	if !ok || existing.UserID != session.UserID {
		return nil, entity.ErrSessionNotFound
	}
	copy := cloneSession(session)
	r.sessions[copy.ID] = copy
	return cloneSession(copy), nil
}

func (r *fakeSessionRepo) GetByID(ctx context.Context, userID, id int64) (*entity.PracticeSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	session, ok := r.sessions[id]
	if !ok || session.UserID != userID {
		return nil, entity.ErrSessionNotFound
	}
	return cloneSession(session), nil
}

func (r *fakeSessionRepo) ListByStatus(ctx context.Context, userID int64, statuses ...entity.SessionStatus) ([]entity.PracticeSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []entity.PracticeSession
	for _, session := range r.sessions {
		if session.UserID != userID {
			continue
		}
		for _, status := range statuses {
			if session.Execution.Status == status {
				matched = append(matched, *cloneSession(session))
				break
			}
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (r *fakeSessionRepo) ListByDateRange(ctx context.Context, userID int64, from, to time.Time) ([]entity.PracticeSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []entity.PracticeSession
	for _, session := range r.sessions {
		if session.UserID != userID {
			continue
		}
		if session.Execution.CompletedAt == nil {
			continue
		}
		completed := *session.Execution.CompletedAt
		if completed.Before(from) || !completed.Before(to) {
			continue
		}
		matched = append(matched, *cloneSession(session))
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID < matched[j].ID })
	return matched, nil
}

func (r *fakeSessionRepo) ListRecent(ctx context.Context, userID int64, limit int32) ([]entity.PracticeSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []entity.PracticeSession
	for _, session := range r.sessions {
		if session.UserID == userID {
			matched = append(matched, *cloneSession(session))
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	if int32(len(matched)) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

func (r *fakeSessionRepo) List(ctx context.Context, query *repository.ListSessionQuery) ([]entity.PracticeSession, int64, error) {
	sessions, err := r.ListRecent(ctx, query.UserID, int32(len(r.sessions)))
	if err != nil {
		return nil, 0, err
	}
	return sessions, int64(len(sessions)), nil
}

func (r *fakeSessionRepo) ListCompletionTimes(ctx context.Context, userID int64) ([]time.Time, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var times []time.Time
	for _, session := range r.sessions {
		if session.UserID != userID || session.Execution.Status != entity.SessionCompleted {
			continue
		}
		if session.Execution.CompletedAt != nil {
			times = append(times, *session.Execution.CompletedAt)
		}
	}
	sort.Slice(times, func(i, j int) bool { return times[i].After(times[j]) })
	return times, nil
}

// fakeAnswerRepo is an append-only AnswerRecordRepository.
type fakeAnswerRepo struct {
	mu      sync.RWMutex
	seq     int64
	records []entity.AnswerRecord
}

func newFakeAnswerRepo() *fakeAnswerRepo {
	return &fakeAnswerRepo{}
}

func (r *fakeAnswerRepo) snapshot() ([]entity.AnswerRecord, int64) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]entity.AnswerRecord(nil), r.records...), r.seq
}

func (r *fakeAnswerRepo) restore(snap []entity.AnswerRecord, seq int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = snap
	r.seq = seq
}

func (r *fakeAnswerRepo) Create(ctx context.Context, record *entity.AnswerRecord) (*entity.AnswerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	copy := *record
	copy.ID = r.seq
	r.records = append(r.records, copy)
	return &copy, nil
}

func (r *fakeAnswerRepo) ListBySession(ctx context.Context, sessionID int64) ([]entity.AnswerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []entity.AnswerRecord
	for _, record := range r.records {
		if record.SessionID == sessionID {
			matched = append(matched, record)
		}
	}
	return matched, nil
}
