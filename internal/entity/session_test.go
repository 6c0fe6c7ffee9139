package entity

import "testing"

func TestSessionTransitionTable(t *testing.T) {
	cases := []struct {
		from  SessionStatus
		to    SessionStatus
		legal bool
	}{
		{SessionPlanned, SessionActive, true},
		{SessionPlanned, SessionPaused, false},
		{SessionPlanned, SessionCompleted, false},
		{SessionPlanned, SessionAbandoned, true},
		{SessionActive, SessionPaused, true},
		{SessionActive, SessionCompleted, true},
		{SessionActive, SessionAbandoned, true},
		{SessionPaused, SessionActive, true},
		{SessionPaused, SessionCompleted, true},
		{SessionPaused, SessionAbandoned, true},
		{SessionCompleted, SessionActive, false},
		{SessionCompleted, SessionAbandoned, false},
		{SessionAbandoned, SessionActive, false},
		{SessionAbandoned, SessionCompleted, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransition(tc.to); got != tc.legal {
			t.Errorf("CanTransition(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.legal)
		}
	}
}

func TestSessionTerminal(t *testing.T) {
	for status, terminal := range map[SessionStatus]bool{
		SessionPlanned:   false,
		SessionActive:    false,
		SessionPaused:    false,
		SessionCompleted: true,
		SessionAbandoned: true,
	} {
		if got := status.Terminal(); got != terminal {
			t.Errorf("%s.Terminal() = %v, want %v", status, got, terminal)
		}
	}
}

func TestAcceptAnswer(t *testing.T) {
	session := PracticeSession{
		Config:    SessionConfig{TargetCount: 2},
		Execution: SessionExecution{Status: SessionPlanned},
	}
	if err := session.AcceptAnswer(); err != nil {
		t.Errorf("planned session rejected an answer: %v", err)
	}

	session.Execution.Status = SessionPaused
	if err := session.AcceptAnswer(); err != ErrSessionNotAnswerable {
		t.Errorf("paused session: got %v, want ErrSessionNotAnswerable", err)
	}

	session.Execution.Status = SessionActive
	session.Execution.CompletedCount = 2
	if err := session.AcceptAnswer(); err != ErrSessionFull {
		t.Errorf("full session: got %v, want ErrSessionFull", err)
	}
}

func TestAccuracy(t *testing.T) {
	cases := []struct {
		completed, correct int32
		want               int32
	}{
		{0, 0, 0},
		{10, 10, 100},
		{3, 2, 67},
		{8, 3, 38},
	}
	for _, tc := range cases {
		session := PracticeSession{
			Execution: SessionExecution{CompletedCount: tc.completed, CorrectCount: tc.correct},
		}
		if got := session.Accuracy(); got != tc.want {
			t.Errorf("accuracy(%d/%d) = %d, want %d", tc.correct, tc.completed, got, tc.want)
		}
	}
}
