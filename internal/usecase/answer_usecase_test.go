package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/eslsoft/drillnet/internal/entity"
)

type answerFixture struct {
	u        *answerUsecase
	answers  *fakeAnswerRepo
	items    *fakeReviewItemRepo
	sessions *fakeSessionRepo
	tasks    *fakeTaskRepo
}

func newAnswerFixture() *answerFixture {
	items := newFakeReviewItemRepo()
	f := &answerFixture{
		answers:  newFakeAnswerRepo(),
		items:    items,
		sessions: newFakeSessionRepo(),
		tasks:    newFakeTaskRepo(items),
	}
	f.u = &answerUsecase{
		answers:  f.answers,
		items:    f.items,
		sessions: f.sessions,
		tx:       &fakeTransactor{items: f.items, sessions: f.sessions, answers: f.answers},
		clock:    func() time.Time { return fixedNow },
	}
	return f
}

func (f *answerFixture) seedSession(t *testing.T, targetCount int32, taskIDs []int64) *entity.PracticeSession {
	t.Helper()
	session, err := f.sessions.Create(context.Background(), &entity.PracticeSession{
		UserID: testUserID,
		Config: entity.SessionConfig{TargetCount: targetCount},
		Execution: entity.SessionExecution{
			TaskIDs: taskIDs,
			Status:  entity.SessionPlanned,
		},
	})
	if err != nil {
		t.Fatalf("seed session: %v", err)
	}
	return session
}

func answerFor(sessionID, taskID int64, correct bool, grade int32) *entity.AnswerRecord {
	return &entity.AnswerRecord{
		SessionID:   sessionID,
		TaskID:      taskID,
		UserID:      testUserID,
		UserAnswer:  "hola",
		IsCorrect:   correct,
		Grade:       grade,
		TimeSpentMs: 5000,
		Confidence:  3,
	}
}

func TestRecordAnswerValidation(t *testing.T) {
	f := newAnswerFixture()
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*entity.AnswerRecord)
		want   error
	}{
		{"grade too high", func(a *entity.AnswerRecord) { a.Grade = 6 }, entity.ErrInvalidGrade},
		{"grade negative", func(a *entity.AnswerRecord) { a.Grade = -1 }, entity.ErrInvalidGrade},
		{"time negative", func(a *entity.AnswerRecord) { a.TimeSpentMs = -1 }, entity.ErrInvalidTimeSpent},
		{"time above hour", func(a *entity.AnswerRecord) { a.TimeSpentMs = entity.MaxAnswerTimeMs + 1 }, entity.ErrInvalidTimeSpent},
		{"confidence low", func(a *entity.AnswerRecord) { a.Confidence = 0 }, entity.ErrInvalidConfidence},
		{"confidence high", func(a *entity.AnswerRecord) { a.Confidence = 6 }, entity.ErrInvalidConfidence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			answer := answerFor(1, 1, true, 4)
			tc.mutate(answer)
			if _, err := f.u.RecordAnswer(ctx, answer); !errors.Is(err, tc.want) {
				t.Errorf("got %v, want %v", err, tc.want)
			}
		})
	}

	// Nothing may be persisted on validation failure.
	if len(f.answers.records) != 0 {
		t.Errorf("%d answers persisted after validation failures, want 0", len(f.answers.records))
	}
	if len(f.items.items) != 0 {
		t.Errorf("%d items persisted after validation failures, want 0", len(f.items.items))
	}
}

func TestRecordAnswerActivatesPlannedSession(t *testing.T) {
	f := newAnswerFixture()
	ctx := context.Background()

	session := f.seedSession(t, 3, []int64{10, 11, 12})

	item, err := f.u.RecordAnswer(ctx, answerFor(session.ID, 10, true, 5))
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if item.Algorithm.Repetition != 1 || item.Algorithm.IntervalDays != 1 {
		t.Errorf("item = rep %d interval %d, want rep 1 interval 1", item.Algorithm.Repetition, item.Algorithm.IntervalDays)
	}

	updated, err := f.sessions.GetByID(ctx, testUserID, session.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if updated.Execution.Status != entity.SessionActive {
		t.Errorf("status = %s, want active", updated.Execution.Status)
	}
	if updated.Execution.StartedAt == nil {
		t.Error("startedAt not set on activation")
	}
	if updated.Execution.CompletedCount != 1 || updated.Execution.CorrectCount != 1 {
		t.Errorf("counts = (%d, %d), want (1, 1)", updated.Execution.CompletedCount, updated.Execution.CorrectCount)
	}
	if updated.Execution.TotalTimeSpentMs != 5000 {
		t.Errorf("totalTimeSpent = %d, want 5000", updated.Execution.TotalTimeSpentMs)
	}
}

func TestRecordAnswerIncorrectCountsCompletedOnly(t *testing.T) {
	f := newAnswerFixture()
	ctx := context.Background()

	session := f.seedSession(t, 3, []int64{10, 11, 12})

	if _, err := f.u.RecordAnswer(ctx, answerFor(session.ID, 10, false, 1)); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	updated, _ := f.sessions.GetByID(ctx, testUserID, session.ID)
	if updated.Execution.CompletedCount != 1 || updated.Execution.CorrectCount != 0 {
		t.Errorf("counts = (%d, %d), want (1, 0)", updated.Execution.CompletedCount, updated.Execution.CorrectCount)
	}

	item, err := f.items.FindByTaskID(ctx, testUserID, 10)
	if err != nil || item == nil {
		t.Fatalf("item missing after lapse answer: %v", err)
	}
	if item.Metadata.LapseCount != 1 {
		t.Errorf("lapseCount = %d, want 1", item.Metadata.LapseCount)
	}
}

func TestRecordAnswerRejectsFullSession(t *testing.T) {
	f := newAnswerFixture()
	ctx := context.Background()

	session := f.seedSession(t, 1, []int64{10})

	if _, err := f.u.RecordAnswer(ctx, answerFor(session.ID, 10, true, 4)); err != nil {
		t.Fatalf("first answer: %v", err)
	}
	if _, err := f.u.RecordAnswer(ctx, answerFor(session.ID, 10, true, 4)); !errors.Is(err, entity.ErrSessionFull) {
		t.Errorf("got %v, want ErrSessionFull", err)
	}

	updated, _ := f.sessions.GetByID(ctx, testUserID, session.ID)
	if updated.Execution.CompletedCount != updated.Config.TargetCount {
		t.Errorf("completedCount %d exceeds targetCount %d", updated.Execution.CompletedCount, updated.Config.TargetCount)
	}
}

func TestRecordAnswerRejectsPausedAndTerminalSessions(t *testing.T) {
	f := newAnswerFixture()
	ctx := context.Background()

	for _, status := range []entity.SessionStatus{entity.SessionPaused, entity.SessionCompleted, entity.SessionAbandoned} {
		session := f.seedSession(t, 3, []int64{10})
		session.Execution.Status = status
		if _, err := f.sessions.Update(ctx, session); err != nil {
			t.Fatalf("seed status %s: %v", status, err)
		}
		if _, err := f.u.RecordAnswer(ctx, answerFor(session.ID, 10, true, 4)); !errors.Is(err, entity.ErrSessionNotAnswerable) {
			t.Errorf("status %s: got %v, want ErrSessionNotAnswerable", status, err)
		}
	}
}

func TestRecordAnswerUnknownSession(t *testing.T) {
	f := newAnswerFixture()
	if _, err := f.u.RecordAnswer(context.Background(), answerFor(9999, 10, true, 4)); !errors.Is(err, entity.ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound", err)
	}
}

func TestRecordAnswerStandaloneReview(t *testing.T) {
	f := newAnswerFixture()
	ctx := context.Background()

	answer := answerFor(0, 10, true, 5)
	item, err := f.u.RecordAnswer(ctx, answer)
	if err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if item.Algorithm.IntervalDays != 1 || item.Algorithm.Repetition != 1 {
		t.Errorf("item = interval %d rep %d, want 1/1", item.Algorithm.IntervalDays, item.Algorithm.Repetition)
	}
	if len(f.answers.records) != 1 {
		t.Errorf("%d answer records, want 1", len(f.answers.records))
	}
}

func TestRecordAnswerRetriesOnConcurrentUpdate(t *testing.T) {
	f := newAnswerFixture()
	ctx := context.Background()

	// Seed existing scheduling state so the update path (not create) runs.
	if _, err := f.u.RecordAnswer(ctx, answerFor(0, 10, true, 5)); err != nil {
		t.Fatalf("seed review: %v", err)
	}

	f.items.forcedConflicts = 2
	before := f.items.updateCalls
	if _, err := f.u.RecordAnswer(ctx, answerFor(0, 10, true, 5)); err != nil {
		t.Fatalf("RecordAnswer under contention: %v", err)
	}
	if got := f.items.updateCalls - before; got != 3 {
		t.Errorf("update attempts = %d, want 3 (two conflicts, one success)", got)
	}

	f.items.forcedConflicts = casRetryLimit
	if _, err := f.u.RecordAnswer(ctx, answerFor(0, 10, true, 5)); !errors.Is(err, entity.ErrConcurrentUpdate) {
		t.Errorf("exhausted retries: got %v, want ErrConcurrentUpdate", err)
	}
}

func TestRecordAnswerLeavesNoPartialStateOnSessionWriteFailure(t *testing.T) {
	f := newAnswerFixture()
	ctx := context.Background()

	session := f.seedSession(t, 3, []int64{10, 11, 12})

	f.sessions.forcedUpdateErr = errors.New("connection reset by peer")
	if _, err := f.u.RecordAnswer(ctx, answerFor(session.ID, 10, true, 5)); err == nil {
		t.Fatal("RecordAnswer succeeded although the session write failed")
	}

	// None of the three writes may be visible after the failed unit.
	item, err := f.items.FindByTaskID(ctx, testUserID, 10)
	if err != nil {
		t.Fatalf("FindByTaskID: %v", err)
	}
	if item != nil {
		t.Errorf("scheduling item visible (totalReviews=%d) after failed unit, want none", item.Schedule.TotalReviews)
	}
	if len(f.answers.records) != 0 {
		t.Errorf("%d answer records after failed unit, want 0", len(f.answers.records))
	}
	unchanged, _ := f.sessions.GetByID(ctx, testUserID, session.ID)
	if unchanged.Execution.Status != entity.SessionPlanned || unchanged.Execution.CompletedCount != 0 {
		t.Errorf("session advanced after failed unit: status=%s completed=%d",
			unchanged.Execution.Status, unchanged.Execution.CompletedCount)
	}

	// The same answer applies cleanly once the storage recovers, with no
	// double-applied repetition.
	item, err = f.u.RecordAnswer(ctx, answerFor(session.ID, 10, true, 5))
	if err != nil {
		t.Fatalf("RecordAnswer after recovery: %v", err)
	}
	if item.Schedule.TotalReviews != 1 || item.Algorithm.Repetition != 1 {
		t.Errorf("item = totalReviews %d rep %d, want 1/1", item.Schedule.TotalReviews, item.Algorithm.Repetition)
	}

	// Same guarantee on the update path: a failed unit must not bump an
	// existing item.
	f.sessions.forcedUpdateErr = errors.New("connection reset by peer")
	if _, err := f.u.RecordAnswer(ctx, answerFor(session.ID, 10, true, 5)); err == nil {
		t.Fatal("second RecordAnswer succeeded although the session write failed")
	}
	item, _ = f.items.FindByTaskID(ctx, testUserID, 10)
	if item.Schedule.TotalReviews != 1 {
		t.Errorf("totalReviews = %d after failed unit, want 1", item.Schedule.TotalReviews)
	}
}

func TestRecordAnswerSerializesSameSession(t *testing.T) {
	f := newAnswerFixture()
	ctx := context.Background()

	const answers = 16
	taskIDs := make([]int64, answers)
	for i := range taskIDs {
		taskIDs[i] = int64(100 + i)
	}
	session := f.seedSession(t, answers, taskIDs)

	var wg sync.WaitGroup
	errs := make(chan error, answers)
	for _, taskID := range taskIDs {
		wg.Add(1)
		go func(taskID int64) {
			defer wg.Done()
			if _, err := f.u.RecordAnswer(ctx, answerFor(session.ID, taskID, true, 4)); err != nil {
				errs <- err
			}
		}(taskID)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("concurrent RecordAnswer: %v", err)
	}

	updated, _ := f.sessions.GetByID(ctx, testUserID, session.ID)
	if updated.Execution.CompletedCount != answers || updated.Execution.CorrectCount != answers {
		t.Errorf("counts = (%d, %d), want (%d, %d)",
			updated.Execution.CompletedCount, updated.Execution.CorrectCount, answers, answers)
	}
	if len(f.answers.records) != answers {
		t.Errorf("%d answer records, want %d", len(f.answers.records), answers)
	}
}

func TestLockForStripes(t *testing.T) {
	f := newAnswerFixture()
	if f.u.lockFor(1) != f.u.lockFor(1+sessionLockStripes) {
		t.Error("sessions on the same stripe must share a mutex")
	}
	if f.u.lockFor(1) == f.u.lockFor(2) {
		t.Error("adjacent sessions must not share a stripe")
	}
}

func TestRecordAnswerSequenceScenarios(t *testing.T) {
	f := newAnswerFixture()
	ctx := context.Background()

	// grade 5 -> interval 1, rep 1; grade 5 -> interval 6, rep 2;
	// grade 4 -> interval round(6*ef), rep 3; lapse -> reset.
	item, err := f.u.RecordAnswer(ctx, answerFor(0, 10, true, 5))
	if err != nil {
		t.Fatalf("step 1: %v", err)
	}
	if item.Algorithm.IntervalDays != 1 || item.Algorithm.Repetition != 1 {
		t.Fatalf("step 1 = interval %d rep %d, want 1/1", item.Algorithm.IntervalDays, item.Algorithm.Repetition)
	}

	item, err = f.u.RecordAnswer(ctx, answerFor(0, 10, true, 5))
	if err != nil {
		t.Fatalf("step 2: %v", err)
	}
	if item.Algorithm.IntervalDays != 6 || item.Algorithm.Repetition != 2 {
		t.Fatalf("step 2 = interval %d rep %d, want 6/2", item.Algorithm.IntervalDays, item.Algorithm.Repetition)
	}

	item, err = f.u.RecordAnswer(ctx, answerFor(0, 10, true, 4))
	if err != nil {
		t.Fatalf("step 3: %v", err)
	}
	if item.Algorithm.IntervalDays < 15 || item.Algorithm.IntervalDays > 16 {
		t.Fatalf("step 3 interval = %d, want about 15", item.Algorithm.IntervalDays)
	}
	if item.Algorithm.Repetition != 3 {
		t.Fatalf("step 3 rep = %d, want 3", item.Algorithm.Repetition)
	}

	lapses := item.Metadata.LapseCount
	item, err = f.u.RecordAnswer(ctx, answerFor(0, 10, false, 2))
	if err != nil {
		t.Fatalf("step 4: %v", err)
	}
	if item.Algorithm.Repetition != 0 || item.Algorithm.IntervalDays != 1 {
		t.Errorf("step 4 = interval %d rep %d, want 1/0", item.Algorithm.IntervalDays, item.Algorithm.Repetition)
	}
	if item.Metadata.LapseCount != lapses+1 {
		t.Errorf("lapseCount = %d, want %d", item.Metadata.LapseCount, lapses+1)
	}
}
