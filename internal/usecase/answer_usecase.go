package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/eslsoft/drillnet/internal/entity"
	"github.com/eslsoft/drillnet/internal/repository"
)

// casRetryLimit bounds re-runs of the recording unit when a concurrent answer
// to the same item wins the conditioned write race.
const casRetryLimit = 3

// sessionLockStripes sizes the keyed-mutex table. Sessions hashing to the
// same stripe serialize together, which is harmless and keeps the table
// bounded for the life of the process.
const sessionLockStripes = 64

// AnswerUsecase records a single answer event: it persists the answer,
// applies the SM-2 transition to the task's scheduling item, and advances the
// owning session — all inside one storage transaction, so a failure leaves
// none of the three writes visible.
type AnswerUsecase interface {
	// RecordAnswer validates and records one answer. A zero SessionID records
	// a standalone review that only updates scheduling state.
	RecordAnswer(ctx context.Context, answer *entity.AnswerRecord) (*entity.SpacedRepetitionItem, error)
}

// NewAnswerUsecase wires the repositories with default behaviour.
func NewAnswerUsecase(
	answers repository.AnswerRecordRepository,
	items repository.ReviewItemRepository,
	sessions repository.PracticeSessionRepository,
	tx repository.Transactor,
) AnswerUsecase {
	return &answerUsecase{
		answers:  answers,
		items:    items,
		sessions: sessions,
		tx:       tx,
		clock:    time.Now,
	}
}

type answerUsecase struct {
	answers  repository.AnswerRecordRepository
	items    repository.ReviewItemRepository
	sessions repository.PracticeSessionRepository
	tx       repository.Transactor
	clock    func() time.Time

	sessionLocks [sessionLockStripes]sync.Mutex
}

func (u *answerUsecase) RecordAnswer(ctx context.Context, answer *entity.AnswerRecord) (*entity.SpacedRepetitionItem, error) {
	if answer == nil {
		return nil, entity.ErrInvalidGrade
	}
	if err := answer.Validate(); err != nil {
		return nil, err
	}

	if answer.SessionID == 0 {
		return u.recordWithRetry(ctx, u.recordStandalone, answer)
	}

	// Per-session critical section: concurrent submissions against the same
	// session must not interleave the session counters.
	lock := u.lockFor(answer.SessionID)
	lock.Lock()
	defer lock.Unlock()

	return u.recordWithRetry(ctx, u.recordInSession, answer)
}

// recordWithRetry runs one recording unit, re-running it from scratch when a
// concurrent writer to the same scheduling item invalidates the conditioned
// write. Each attempt is its own transaction, so a lost race leaves nothing
// behind.
func (u *answerUsecase) recordWithRetry(
	ctx context.Context,
	record func(ctx context.Context, answer *entity.AnswerRecord) (*entity.SpacedRepetitionItem, error),
	answer *entity.AnswerRecord,
) (*entity.SpacedRepetitionItem, error) {
	for attempt := 0; attempt < casRetryLimit; attempt++ {
		item, err := record(ctx, answer)
		if errors.Is(err, entity.ErrConcurrentUpdate) {
			continue
		}
		return item, err
	}
	return nil, entity.ErrConcurrentUpdate
}

// recordInSession executes the three writes of a session answer — answer
// record, scheduling item, session counters — as one unit of work.
func (u *answerUsecase) recordInSession(ctx context.Context, answer *entity.AnswerRecord) (*entity.SpacedRepetitionItem, error) {
	var item *entity.SpacedRepetitionItem
	err := u.tx.InTx(ctx, func(ctx context.Context) error {
		session, err := u.sessions.GetByID(ctx, answer.UserID, answer.SessionID)
		if err != nil {
			return err
		}
		if err := session.AcceptAnswer(); err != nil {
			return err
		}

		record := *answer
		record.AnsweredAt = u.clock()
		record.AttemptNumber = session.Execution.CompletedCount + 1
		if _, err := u.answers.Create(ctx, &record); err != nil {
			return fmt.Errorf("persist answer: %w", err)
		}

		item, err = u.applyToItem(ctx, answer)
		if err != nil {
			return err
		}

		now := u.clock()
		if session.Execution.Status == entity.SessionPlanned {
			if err := session.Transition(entity.SessionActive); err != nil {
				return err
			}
			session.Execution.StartedAt = &now
		}
		session.Execution.CompletedCount++
		if answer.IsCorrect {
			session.Execution.CorrectCount++
		}
		session.Execution.TotalTimeSpentMs += answer.TimeSpentMs
		session.UpdatedAt = now
		if _, err := u.sessions.Update(ctx, session); err != nil {
			return fmt.Errorf("advance session: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (u *answerUsecase) recordStandalone(ctx context.Context, answer *entity.AnswerRecord) (*entity.SpacedRepetitionItem, error) {
	var item *entity.SpacedRepetitionItem
	err := u.tx.InTx(ctx, func(ctx context.Context) error {
		record := *answer
		record.AnsweredAt = u.clock()
		if _, err := u.answers.Create(ctx, &record); err != nil {
			return fmt.Errorf("persist answer: %w", err)
		}
		var err error
		item, err = u.applyToItem(ctx, answer)
		return err
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// applyToItem reads, transitions and conditionally writes the scheduling
// item. A lost race on either the unique (user, task) pair or the
// TotalReviews condition surfaces as ErrConcurrentUpdate, which aborts the
// surrounding transaction so the whole unit re-runs.
func (u *answerUsecase) applyToItem(ctx context.Context, answer *entity.AnswerRecord) (*entity.SpacedRepetitionItem, error) {
	prev, err := u.items.FindByTaskID(ctx, answer.UserID, answer.TaskID)
	if err != nil {
		return nil, err
	}

	next, err := entity.ApplyReview(prev, answer.Grade, answer.TimeSpentMs, u.clock())
	if err != nil {
		return nil, err
	}

	if prev == nil {
		next.UserID = answer.UserID
		next.TaskID = answer.TaskID
		created, err := u.items.Create(ctx, &next)
		if err != nil {
			if errors.Is(err, entity.ErrConcurrentUpdate) {
				return nil, err
			}
			return nil, fmt.Errorf("create review item: %w", err)
		}
		return created, nil
	}

	next.ID = prev.ID
	updated, err := u.items.Update(ctx, &next, prev.Schedule.TotalReviews)
	if err != nil {
		if errors.Is(err, entity.ErrConcurrentUpdate) {
			return nil, err
		}
		return nil, fmt.Errorf("update review item: %w", err)
	}
	return updated, nil
}

func (u *answerUsecase) lockFor(sessionID int64) *sync.Mutex {
	return &u.sessionLocks[uint64(sessionID)%sessionLockStripes]
}
