package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/eslsoft/drillnet/internal/entity"
)

type sessionFixture struct {
	u        *sessionUsecase
	answerUC *answerUsecase
	sessions *fakeSessionRepo
	items    *fakeReviewItemRepo
	tasks    *fakeTaskRepo
	answers  *fakeAnswerRepo
}

func newSessionFixture() *sessionFixture {
	items := newFakeReviewItemRepo()
	f := &sessionFixture{
		sessions: newFakeSessionRepo(),
		items:    items,
		tasks:    newFakeTaskRepo(items),
		answers:  newFakeAnswerRepo(),
	}
	clock := func() time.Time { return fixedNow }
	f.u = &sessionUsecase{
		sessions: f.sessions,
		items:    f.items,
		tasks:    f.tasks,
		answers:  f.answers,
		clock:    clock,
	}
	f.answerUC = &answerUsecase{
		answers:  f.answers,
		items:    f.items,
		sessions: f.sessions,
		tx:       &fakeTransactor{items: f.items, sessions: f.sessions, answers: f.answers},
		clock:    clock,
	}
	return f
}

func TestCreateSessionValidatesTargetCount(t *testing.T) {
	f := newSessionFixture()
	for _, count := range []int32{0, -5} {
		_, err := f.u.CreateSession(context.Background(), testUserID, entity.SessionConfig{TargetCount: count})
		if !errors.Is(err, entity.ErrInvalidTargetCount) {
			t.Errorf("targetCount %d: got %v, want ErrInvalidTargetCount", count, err)
		}
	}
}

func TestCreateSessionMixesReviewAndNewTasks(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	reviewTask := seedTask(t, f.tasks, 1, 2)
	seedTask(t, f.tasks, 1, 2) // unseen
	seedTask(t, f.tasks, 1, 2) // unseen
	seedItem(t, f.items, reviewTask.ID, fixedNow.Add(-time.Hour), 1, 0)

	session, err := f.u.CreateSession(ctx, testUserID, entity.SessionConfig{
		TopicID:       1,
		TargetCount:   3,
		IncludeReview: true,
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if session.Execution.Status != entity.SessionPlanned {
		t.Errorf("status = %s, want planned", session.Execution.Status)
	}
	if len(session.Execution.TaskIDs) != 3 {
		t.Fatalf("taskIDs length = %d, want 3", len(session.Execution.TaskIDs))
	}
	if session.Execution.TaskIDs[0] != reviewTask.ID {
		t.Errorf("first task = %d, want due review task %d", session.Execution.TaskIDs[0], reviewTask.ID)
	}
	for i, id := range session.Execution.TaskIDs {
		for j := i + 1; j < len(session.Execution.TaskIDs); j++ {
			if session.Execution.TaskIDs[j] == id {
				t.Errorf("duplicate task %d in session", id)
			}
		}
	}
}

func TestCreateSessionWithoutReview(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	reviewed := seedTask(t, f.tasks, 1, 2)
	fresh := seedTask(t, f.tasks, 1, 2)
	seedItem(t, f.items, reviewed.ID, fixedNow.Add(-time.Hour), 0, 0)

	session, err := f.u.CreateSession(ctx, testUserID, entity.SessionConfig{
		TopicID:     1,
		TargetCount: 5,
	})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	// Only unseen tasks qualify; the session shrinks to what exists.
	if len(session.Execution.TaskIDs) != 1 || session.Execution.TaskIDs[0] != fresh.ID {
		t.Fatalf("taskIDs = %v, want [%d]", session.Execution.TaskIDs, fresh.ID)
	}
	if session.Config.TargetCount != 1 {
		t.Errorf("targetCount = %d, want shrunk to 1", session.Config.TargetCount)
	}
}

func TestCreateSessionNoTasksAvailable(t *testing.T) {
	f := newSessionFixture()
	_, err := f.u.CreateSession(context.Background(), testUserID, entity.SessionConfig{TargetCount: 5})
	if !errors.Is(err, entity.ErrTaskNotFound) {
		t.Errorf("got %v, want ErrTaskNotFound", err)
	}
}

func TestPauseResumePreservesCounts(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	seedTask(t, f.tasks, 1, 2)
	seedTask(t, f.tasks, 1, 2)
	session, err := f.u.CreateSession(ctx, testUserID, entity.SessionConfig{TopicID: 1, TargetCount: 2})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if _, err := f.answerUC.RecordAnswer(ctx, answerFor(session.ID, session.Execution.TaskIDs[0], true, 4)); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	paused, err := f.u.PauseSession(ctx, testUserID, session.ID)
	if err != nil {
		t.Fatalf("PauseSession: %v", err)
	}
	if paused.Execution.Status != entity.SessionPaused {
		t.Errorf("status = %s, want paused", paused.Execution.Status)
	}

	resumed, err := f.u.ResumeSession(ctx, testUserID, session.ID)
	if err != nil {
		t.Fatalf("ResumeSession: %v", err)
	}
	if resumed.Execution.Status != entity.SessionActive {
		t.Errorf("status = %s, want active", resumed.Execution.Status)
	}
	if resumed.Execution.CompletedCount != 1 || resumed.Execution.CorrectCount != 1 {
		t.Errorf("counts = (%d, %d), want unchanged (1, 1)", resumed.Execution.CompletedCount, resumed.Execution.CorrectCount)
	}
}

func TestPauseRequiresActive(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	seedTask(t, f.tasks, 1, 2)
	session, err := f.u.CreateSession(ctx, testUserID, entity.SessionConfig{TopicID: 1, TargetCount: 1})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if _, err := f.u.PauseSession(ctx, testUserID, session.ID); !errors.Is(err, entity.ErrSessionStateConflict) {
		t.Errorf("pausing planned session: got %v, want ErrSessionStateConflict", err)
	}
	if _, err := f.u.ResumeSession(ctx, testUserID, session.ID); !errors.Is(err, entity.ErrSessionStateConflict) {
		t.Errorf("resuming planned session: got %v, want ErrSessionStateConflict", err)
	}
}

func TestCompleteSessionAllCorrect(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		seedTask(t, f.tasks, 1, 2, "vocab")
	}
	session, err := f.u.CreateSession(ctx, testUserID, entity.SessionConfig{TopicID: 1, TargetCount: 10})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	for _, taskID := range session.Execution.TaskIDs {
		if _, err := f.answerUC.RecordAnswer(ctx, answerFor(session.ID, taskID, true, 5)); err != nil {
			t.Fatalf("RecordAnswer(task %d): %v", taskID, err)
		}
	}

	completed, err := f.u.CompleteSession(ctx, testUserID, session.ID)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if completed.Execution.Status != entity.SessionCompleted {
		t.Errorf("status = %s, want completed", completed.Execution.Status)
	}
	if completed.Execution.CompletedAt == nil {
		t.Error("completedAt not set")
	}
	if completed.Results == nil {
		t.Fatal("results not computed")
	}
	if completed.Results.Accuracy != 100 {
		t.Errorf("accuracy = %d, want 100", completed.Results.Accuracy)
	}
	if completed.Results.AverageTimeMs != 5000 {
		t.Errorf("averageTime = %v, want 5000", completed.Results.AverageTimeMs)
	}
	if len(completed.Results.ImprovementAreas) != 0 {
		t.Errorf("improvementAreas = %v, want none for a perfect session", completed.Results.ImprovementAreas)
	}
	if completed.Results.DifficultyDistribution[2] != 10 {
		t.Errorf("difficultyDistribution = %v, want 10 at difficulty 2", completed.Results.DifficultyDistribution)
	}
}

func TestCompleteSessionFlagsImprovementAreas(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	grammar := seedTask(t, f.tasks, 1, 3, "grammar")
	vocab := seedTask(t, f.tasks, 1, 2, "vocab")
	session, err := f.u.CreateSession(ctx, testUserID, entity.SessionConfig{TopicID: 1, TargetCount: 2})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	if _, err := f.answerUC.RecordAnswer(ctx, answerFor(session.ID, grammar.ID, false, 1)); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	if _, err := f.answerUC.RecordAnswer(ctx, answerFor(session.ID, vocab.ID, true, 5)); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	completed, err := f.u.CompleteSession(ctx, testUserID, session.ID)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if completed.Results.Accuracy != 50 {
		t.Errorf("accuracy = %d, want 50", completed.Results.Accuracy)
	}
	if len(completed.Results.ImprovementAreas) != 1 || completed.Results.ImprovementAreas[0] != "grammar" {
		t.Errorf("improvementAreas = %v, want [grammar]", completed.Results.ImprovementAreas)
	}
}

func TestCompleteSessionFromTerminalFails(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	seedTask(t, f.tasks, 1, 2)
	session, err := f.u.CreateSession(ctx, testUserID, entity.SessionConfig{TopicID: 1, TargetCount: 1})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := f.u.AbandonSession(ctx, testUserID, session.ID); err != nil {
		t.Fatalf("AbandonSession: %v", err)
	}

	if _, err := f.u.CompleteSession(ctx, testUserID, session.ID); !errors.Is(err, entity.ErrSessionStateConflict) {
		t.Errorf("completing abandoned session: got %v, want ErrSessionStateConflict", err)
	}
	if _, err := f.u.AbandonSession(ctx, testUserID, session.ID); !errors.Is(err, entity.ErrSessionStateConflict) {
		t.Errorf("abandoning twice: got %v, want ErrSessionStateConflict", err)
	}
}

func TestCompleteSessionEmptyAccuracyZero(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	seedTask(t, f.tasks, 1, 2)
	session, err := f.u.CreateSession(ctx, testUserID, entity.SessionConfig{TopicID: 1, TargetCount: 1})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	// Drive planned -> active -> paused without answers, then complete.
	stored, _ := f.sessions.GetByID(ctx, testUserID, session.ID)
	stored.Execution.Status = entity.SessionActive
	if _, err := f.sessions.Update(ctx, stored); err != nil {
		t.Fatalf("force active: %v", err)
	}

	completed, err := f.u.CompleteSession(ctx, testUserID, session.ID)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if completed.Results.Accuracy != 0 {
		t.Errorf("accuracy = %d, want 0 with no answers", completed.Results.Accuracy)
	}
}

func TestAbandonSessionSkipsResults(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	seedTask(t, f.tasks, 1, 2)
	session, err := f.u.CreateSession(ctx, testUserID, entity.SessionConfig{TopicID: 1, TargetCount: 1})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}

	abandoned, err := f.u.AbandonSession(ctx, testUserID, session.ID)
	if err != nil {
		t.Fatalf("AbandonSession: %v", err)
	}
	if abandoned.Execution.Status != entity.SessionAbandoned {
		t.Errorf("status = %s, want abandoned", abandoned.Execution.Status)
	}
	if abandoned.Results != nil {
		t.Error("abandoned session must not carry results")
	}
}

func TestGetActiveSessions(t *testing.T) {
	f := newSessionFixture()
	ctx := context.Background()

	seedTask(t, f.tasks, 1, 2)
	seedTask(t, f.tasks, 1, 2)
	active, err := f.u.CreateSession(ctx, testUserID, entity.SessionConfig{TopicID: 1, TargetCount: 2})
	if err != nil {
		t.Fatalf("CreateSession: %v", err)
	}
	if _, err := f.answerUC.RecordAnswer(ctx, answerFor(active.ID, active.Execution.TaskIDs[0], true, 4)); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}

	sessions, err := f.u.GetActiveSessions(ctx, testUserID)
	if err != nil {
		t.Fatalf("GetActiveSessions: %v", err)
	}
	if len(sessions) != 1 || sessions[0].ID != active.ID {
		t.Errorf("active sessions = %v, want [%d]", sessions, active.ID)
	}
}
